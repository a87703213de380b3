package tps55288

import "tps55288-go/x/mathx"

// ModePreset is one MODE pin strap option from the datasheet table.
// The strap resistor fixes the VCC source, the I2C address and the
// default light-load behaviour before any register write.
type ModePreset struct {
	// ResistorOhm is the strap resistor to GND; -1 means pin left open.
	ResistorOhm int32
	Vcc         VccSource
	Address     uint16
	LightLoad   LightLoad
}

// ModePresets lists the datasheet strap rows in ascending resistor order.
var ModePresets = [8]ModePreset{
	{0, VccInternalLDO, AddressDefault, LightLoadFPWM},
	{6_190, VccInternalLDO, AddressDefault, LightLoadPFM},
	{14_300, VccInternalLDO, AddressAlt, LightLoadFPWM},
	{24_900, VccInternalLDO, AddressAlt, LightLoadPFM},
	{51_100, VccExternal5V, AddressDefault, LightLoadFPWM},
	{75_000, VccExternal5V, AddressDefault, LightLoadPFM},
	{105_000, VccExternal5V, AddressAlt, LightLoadFPWM},
	{-1, VccExternal5V, AddressAlt, LightLoadPFM},
}

// PresetForResistor returns the strap row matching ohm most closely.
// Anything above 150kΩ (or a negative value) matches the open-pin row.
func PresetForResistor(ohm int32) ModePreset {
	if ohm < 0 || ohm > 150_000 {
		return ModePresets[7]
	}
	best := 0
	for i := 1; i < 7; i++ {
		if mathx.Abs(ohm-ModePresets[i].ResistorOhm) < mathx.Abs(ohm-ModePresets[best].ResistorOhm) {
			best = i
		}
	}
	return ModePresets[best]
}
