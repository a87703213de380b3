// Package tps55288 provides constants for register addresses and bitfields
// used in the operation of the TPS55288 buck-boost converter.
package tps55288

const (
	// 7-bit I2C addresses selected by the MODE pin strap (111_0100b / 111_0101b).
	AddressDefault = 0x74
	AddressAlt     = 0x75
)

// --- Register sub-addresses (8-bit registers; REF is a 2-register pair) ---
const (
	RegRefLSB    = 0x00 // R/W, REF[7:0]
	RegRefMSB    = 0x01 // R/W, REF[9:8]
	RegIoutLimit = 0x02 // R/W, current limit enable + setting
	RegVoutSR    = 0x03 // R/W, OCP response delay + slew rate
	RegVoutFS    = 0x04 // R/W, feedback source + internal ratio
	RegCDC       = 0x05 // R/W, fault masks + cable droop compensation
	RegMode      = 0x06 // R/W, output enable + converter mode control
	RegStatus    = 0x07 // fault bits W1C, operating status RO
	RegSwFreq    = 0x08 // R/W, switching frequency select
	RegSoftStart = 0x09 // R/W, soft-start time select
)

// Access describes how a bitfield may be used.
type Access uint8

const (
	AccessRO  Access = iota // read-only status
	AccessRW                // read/write configuration
	AccessW1C               // latched; write 1 to clear
)

// Field is a named bit range within one register. Get/Put extract and
// insert the field without disturbing adjacent bits.
type Field struct {
	Reg    uint8
	Shift  uint8
	Width  uint8
	Access Access
}

func (f Field) Mask() uint8 { return (uint8(1)<<f.Width - 1) << f.Shift }

func (f Field) Get(reg uint8) uint8 { return (reg & f.Mask()) >> f.Shift }

// Put returns reg with the field set to val (read-modify-write insert).
func (f Field) Put(reg, val uint8) uint8 {
	return (reg &^ f.Mask()) | (val << f.Shift & f.Mask())
}

// Bitfield descriptors.
var (
	FieldRefLow  = Field{RegRefLSB, 0, 8, AccessRW}
	FieldRefHigh = Field{RegRefMSB, 0, 2, AccessRW}

	FieldCLEnable = Field{RegIoutLimit, 7, 1, AccessRW}
	FieldILim     = Field{RegIoutLimit, 0, 7, AccessRW}

	FieldOCPDelay = Field{RegVoutSR, 4, 2, AccessRW}
	FieldSlewRate = Field{RegVoutSR, 0, 2, AccessRW}

	FieldFBSource = Field{RegVoutFS, 7, 1, AccessRW}
	FieldIntFB    = Field{RegVoutFS, 0, 2, AccessRW}

	FieldSCMask    = Field{RegCDC, 7, 1, AccessRW}
	FieldOCPMask   = Field{RegCDC, 6, 1, AccessRW}
	FieldOVPMask   = Field{RegCDC, 5, 1, AccessRW}
	FieldCDCOption = Field{RegCDC, 3, 1, AccessRW}
	FieldCDCLevel  = Field{RegCDC, 0, 3, AccessRW}

	FieldOE     = Field{RegMode, 7, 1, AccessRW}
	FieldFswDbl = Field{RegMode, 6, 1, AccessRW}
	FieldHiccup = Field{RegMode, 5, 1, AccessRW}
	FieldDischg = Field{RegMode, 4, 1, AccessRW}
	FieldForce  = Field{RegMode, 2, 2, AccessRW}
	FieldFPWM   = Field{RegMode, 1, 1, AccessRW}
	FieldI2CCtl = Field{RegMode, 0, 1, AccessRW}

	FieldFaults   = Field{RegStatus, 2, 6, AccessW1C}
	FieldOpStatus = Field{RegStatus, 0, 2, AccessRO}

	FieldFsw       = Field{RegSwFreq, 0, 3, AccessRW}
	FieldSoftStart = Field{RegSoftStart, 0, 2, AccessRW}
)

// fieldList groups every descriptor for the overlap check in tests.
var fieldList = []Field{
	FieldRefLow, FieldRefHigh,
	FieldCLEnable, FieldILim,
	FieldOCPDelay, FieldSlewRate,
	FieldFBSource, FieldIntFB,
	FieldSCMask, FieldOCPMask, FieldOVPMask, FieldCDCOption, FieldCDCLevel,
	FieldOE, FieldFswDbl, FieldHiccup, FieldDischg, FieldForce, FieldFPWM, FieldI2CCtl,
	FieldFaults, FieldOpStatus,
	FieldFsw, FieldSoftStart,
}

// ModeBits is the MODE register (0x06) as a typed bitmask.
type ModeBits uint8

const (
	ModeOE     ModeBits = 1 << 7 // output stage enable
	ModeFswDbl ModeBits = 1 << 6 // double switching frequency in buck-boost
	ModeHiccup ModeBits = 1 << 5 // hiccup on over-current
	ModeDischg ModeBits = 1 << 4 // discharge VOUT when disabled
	ModeFPWM   ModeBits = 1 << 1 // forced PWM at light load
	ModeI2CCtl ModeBits = 1 << 0 // light-load behaviour from register, not strap
)

func (b ModeBits) Has(flag ModeBits) bool { return b&flag != 0 }

// StatusBits is the STATUS register (0x07) as a typed bitmask.
// Bits 7..2 are latched faults (write 1 to clear); bits 1..0 report the
// live power-stage operating mode and are read-only.
type StatusBits uint8

const (
	StatusSCP StatusBits = 1 << 7 // short-circuit protection tripped
	StatusOCP StatusBits = 1 << 6 // current limit engaged
	StatusOVP StatusBits = 1 << 5 // output over-voltage
	StatusUVP StatusBits = 1 << 4 // output under-voltage
	StatusOTP StatusBits = 1 << 3 // thermal shutdown
	StatusWD  StatusBits = 1 << 2 // watchdog expired
)

func (b StatusBits) Has(flag StatusBits) bool { return b&flag != 0 }
