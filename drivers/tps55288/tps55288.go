// Package tps55288 provides a TinyGo-friendly driver for the TPS55288
// I2C-controlled synchronous buck-boost converter.
//
// Design notes (datasheet references):
//   - I2C up to 400kHz; 8-bit registers, REF as a 10-bit pair at 0x00/0x01.
//   - Default 7-bit address 0x74; 0x75 selectable via the MODE pin strap.
//   - Integer-only unit scaling (mV, mA, Hz, µs); no floats on the hot path.
//   - Fault bits in STATUS are latched and cleared by writing 1s.
//   - The chip applies voltage/current targets the moment the output stage
//     enables, so all configuration must happen before EnableOutput. The
//     driver tracks an enabled flag and rejects configuration writes that
//     are unsafe while the output is live. VOUT and current-limit steps
//     remain legal while enabled (the PPS-style dynamic adjustment path).
//
// Every operation has a blocking form and a ...Ctx form. The Ctx form
// checks the context at each transaction boundary; a transaction already
// handed to the bus is never interrupted. The driver holds no cached
// register state: every get re-reads the device.
package tps55288

import (
	"context"

	"tinygo.org/x/drivers"

	"tps55288-go/errcode"
)

// Lifecycle state tracked by the driver (the device itself is the source
// of truth for everything else).
type devState uint8

const (
	stateUninitialized devState = iota
	stateDisabled               // configured, output stage off
	stateEnabled                // output stage live
)

// Config holds construction-time options.
type Config struct {
	// Address is the 7-bit device address; AddressDefault if zero.
	Address uint16
	// Force selects auto/buck/boost operation written at Init.
	Force ForceMode
	// LightLoad selects PFM or forced PWM written at Init.
	LightLoad LightLoad
	// Discharge enables the output discharge FET while disabled.
	Discharge bool
	// Hiccup enables hiccup restart after an over-current trip.
	Hiccup bool
}

// DefaultConfig matches the chip's safe power-on behaviour.
func DefaultConfig() Config {
	return Config{
		Address:   AddressDefault,
		Force:     ForceAuto,
		LightLoad: LightLoadPFM,
		Discharge: true,
		Hiccup:    true,
	}
}

// Validate rejects configurations Init cannot encode.
func (c Config) Validate() error {
	if c.Address != 0 && c.Address != AddressDefault && c.Address != AddressAlt {
		return &errcode.E{C: errcode.OutOfRange, Op: "config", Msg: "address must be 0x74 or 0x75"}
	}
	if c.Force > ForceBoost {
		return &errcode.E{C: errcode.OutOfRange, Op: "config", Msg: "reserved force mode"}
	}
	return nil
}

// Device represents a TPS55288 instance on an I²C bus. It assumes
// single-owner exclusive access; no internal locking is performed.
type Device struct {
	bus   drivers.I2C
	addr  uint16
	cfg   Config
	state devState

	// Fixed buffers to avoid per-call heap allocations.
	w [3]byte
	r [2]byte
}

// New constructs a Device. The I2C bus must already be configured.
// No transaction is issued until Init.
func New(bus drivers.I2C, cfg Config) *Device {
	if cfg.Address == 0 {
		cfg.Address = AddressDefault
	}
	return &Device{bus: bus, addr: cfg.Address, cfg: cfg}
}

// Introspection.
func (d *Device) Address() uint16 { return d.addr }
func (d *Device) Enabled() bool   { return d.state == stateEnabled }

func (d *Device) conn() busTx                       { return busTx{d} }
func (d *Device) ctxConn(ctx context.Context) ctxTx { return ctxTx{d, ctx} }

// State guards. These consult only the tracked flag; no device access.

func (d *Device) requireInit(op string) error {
	if d.state == stateUninitialized {
		return &errcode.E{C: errcode.InvalidState, Op: op, Msg: "device not initialised"}
	}
	return nil
}

func (d *Device) requireDisabled(op string) error {
	if err := d.requireInit(op); err != nil {
		return err
	}
	if d.state == stateEnabled {
		return &errcode.E{C: errcode.InvalidState, Op: op, Msg: "output is enabled"}
	}
	return nil
}

// wrap attaches the operation name to a conversion error.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &errcode.E{C: errcode.Of(err), Op: op, Err: err}
}

// ---------------- Lifecycle ----------------

// Init probes the device and writes safe defaults with the output stage
// disabled. Callers configure targets afterwards and only then enable.
func (d *Device) Init() error                       { return d.init(d.conn()) }
func (d *Device) InitCtx(ctx context.Context) error { return d.init(d.ctxConn(ctx)) }

func (d *Device) init(t transactor) error {
	if err := d.cfg.Validate(); err != nil {
		return err
	}
	// Presence probe; surfaces TransportFailure before any write.
	if _, err := d.readReg(t, RegStatus); err != nil {
		return err
	}
	mode := uint8(ModeI2CCtl) // light-load behaviour from register
	mode = FieldForce.Put(mode, uint8(d.cfg.Force))
	mode = FieldFPWM.Put(mode, uint8(d.cfg.LightLoad))
	if d.cfg.Discharge {
		mode |= uint8(ModeDischg)
	}
	if d.cfg.Hiccup {
		mode |= uint8(ModeHiccup)
	}
	// OE stays 0: the output stage must remain disabled through Init.
	if err := d.writeReg(t, RegMode, mode); err != nil {
		return err
	}
	d.state = stateDisabled
	return nil
}

// EnableOutput turns the power stage on at the configured targets.
func (d *Device) EnableOutput() error                       { return d.enableOutput(d.conn()) }
func (d *Device) EnableOutputCtx(ctx context.Context) error { return d.enableOutput(d.ctxConn(ctx)) }

func (d *Device) enableOutput(t transactor) error {
	if err := d.requireInit("enable_output"); err != nil {
		return err
	}
	if err := d.updateReg(t, RegMode, uint8(ModeOE), 0); err != nil {
		return err
	}
	d.state = stateEnabled
	return nil
}

// DisableOutput turns the power stage off; configuration is preserved.
func (d *Device) DisableOutput() error                       { return d.disableOutput(d.conn()) }
func (d *Device) DisableOutputCtx(ctx context.Context) error { return d.disableOutput(d.ctxConn(ctx)) }

func (d *Device) disableOutput(t transactor) error {
	if err := d.requireInit("disable_output"); err != nil {
		return err
	}
	if err := d.updateReg(t, RegMode, 0, uint8(ModeOE)); err != nil {
		return err
	}
	d.state = stateDisabled
	return nil
}

// ---------------- Output voltage ----------------

// SetVout_mV programs the output voltage target. Legal while enabled:
// the chip slews to the new target at the configured slew rate.
func (d *Device) SetVout_mV(mv int32) error { return d.setVout(d.conn(), mv) }
func (d *Device) SetVout_mVCtx(ctx context.Context, mv int32) error {
	return d.setVout(d.ctxConn(ctx), mv)
}

func (d *Device) setVout(t transactor, mv int32) error {
	if err := d.requireInit("set_vout"); err != nil {
		return err
	}
	code, err := quantVout.ToRaw(mv)
	if err != nil {
		return wrap("set_vout", err)
	}
	return d.writeWord(t, RegRefLSB, code)
}

// SetVoutClamped_mV is the explicit clamp-to-range variant.
func (d *Device) SetVoutClamped_mV(mv int32) error {
	return d.setVoutClamped(d.conn(), mv)
}
func (d *Device) SetVoutClamped_mVCtx(ctx context.Context, mv int32) error {
	return d.setVoutClamped(d.ctxConn(ctx), mv)
}

func (d *Device) setVoutClamped(t transactor, mv int32) error {
	if err := d.requireInit("set_vout"); err != nil {
		return err
	}
	return d.writeWord(t, RegRefLSB, quantVout.ToRawClamped(mv))
}

// Vout_mV reads back the programmed voltage target.
func (d *Device) Vout_mV() (int32, error) { return d.vout(d.conn()) }
func (d *Device) Vout_mVCtx(ctx context.Context) (int32, error) {
	return d.vout(d.ctxConn(ctx))
}

func (d *Device) vout(t transactor) (int32, error) {
	if err := d.requireInit("get_vout"); err != nil {
		return 0, err
	}
	raw, err := d.readWord(t, RegRefLSB)
	if err != nil {
		return 0, err
	}
	return quantVout.FromRaw(raw & 0x03FF), nil
}

// ---------------- Current limit ----------------

// SetCurrentLimit_mA programs the output current limit and whether the
// limiter is active. Legal while enabled.
func (d *Device) SetCurrentLimit_mA(ma int32, enable bool) error {
	return d.setCurrentLimit(d.conn(), ma, enable)
}
func (d *Device) SetCurrentLimit_mACtx(ctx context.Context, ma int32, enable bool) error {
	return d.setCurrentLimit(d.ctxConn(ctx), ma, enable)
}

func (d *Device) setCurrentLimit(t transactor, ma int32, enable bool) error {
	if err := d.requireInit("set_current_limit"); err != nil {
		return err
	}
	code, err := quantILim.ToRaw(ma)
	if err != nil {
		return wrap("set_current_limit", err)
	}
	reg := FieldILim.Put(0, uint8(code))
	if enable {
		reg = FieldCLEnable.Put(reg, 1)
	}
	return d.writeReg(t, RegIoutLimit, reg)
}

// CurrentLimit_mA reads back the limit and whether the limiter is active.
func (d *Device) CurrentLimit_mA() (int32, bool, error) {
	return d.currentLimit(d.conn())
}
func (d *Device) CurrentLimit_mACtx(ctx context.Context) (int32, bool, error) {
	return d.currentLimit(d.ctxConn(ctx))
}

func (d *Device) currentLimit(t transactor) (int32, bool, error) {
	if err := d.requireInit("get_current_limit"); err != nil {
		return 0, false, err
	}
	reg, err := d.readReg(t, RegIoutLimit)
	if err != nil {
		return 0, false, err
	}
	ma := quantILim.FromRaw(uint16(FieldILim.Get(reg)))
	return ma, FieldCLEnable.Get(reg) == 1, nil
}

// ---------------- Disabled-only configuration ----------------

// SetOperatingMode selects auto/buck/boost and the light-load behaviour.
// Rejected while the output is enabled: a mode change under load can
// command a transient at an unintended operating point.
func (d *Device) SetOperatingMode(force ForceMode, ll LightLoad) error {
	return d.setOperatingMode(d.conn(), force, ll)
}
func (d *Device) SetOperatingModeCtx(ctx context.Context, force ForceMode, ll LightLoad) error {
	return d.setOperatingMode(d.ctxConn(ctx), force, ll)
}

func (d *Device) setOperatingMode(t transactor, force ForceMode, ll LightLoad) error {
	if err := d.requireDisabled("set_mode"); err != nil {
		return err
	}
	if force > ForceBoost {
		return &errcode.E{C: errcode.OutOfRange, Op: "set_mode", Msg: "reserved force mode"}
	}
	cur, err := d.readReg(t, RegMode)
	if err != nil {
		return err
	}
	cur = FieldForce.Put(cur, uint8(force))
	cur = FieldFPWM.Put(cur, uint8(ll))
	cur = FieldI2CCtl.Put(cur, 1)
	return d.writeReg(t, RegMode, cur)
}

// OperatingMode reads back the configured mode selection.
func (d *Device) OperatingMode() (ForceMode, LightLoad, error) {
	return d.operatingMode(d.conn())
}
func (d *Device) OperatingModeCtx(ctx context.Context) (ForceMode, LightLoad, error) {
	return d.operatingMode(d.ctxConn(ctx))
}

func (d *Device) operatingMode(t transactor) (ForceMode, LightLoad, error) {
	if err := d.requireInit("get_mode"); err != nil {
		return 0, 0, err
	}
	reg, err := d.readReg(t, RegMode)
	if err != nil {
		return 0, 0, err
	}
	return ForceMode(FieldForce.Get(reg)), LightLoad(FieldFPWM.Get(reg)), nil
}

// SetSwitchingFrequency_Hz selects the nearest allowed switching
// frequency (ties round down). Disabled state only.
func (d *Device) SetSwitchingFrequency_Hz(hz int32) error {
	return d.setSwitchingFrequency(d.conn(), hz)
}
func (d *Device) SetSwitchingFrequency_HzCtx(ctx context.Context, hz int32) error {
	return d.setSwitchingFrequency(d.ctxConn(ctx), hz)
}

func (d *Device) setSwitchingFrequency(t transactor, hz int32) error {
	if err := d.requireDisabled("set_switching_frequency"); err != nil {
		return err
	}
	code, err := tableFsw.ToRaw(hz)
	if err != nil {
		return wrap("set_switching_frequency", err)
	}
	return d.writeReg(t, RegSwFreq, FieldFsw.Put(0, uint8(code)))
}

// SwitchingFrequency_Hz reads back the selected frequency.
func (d *Device) SwitchingFrequency_Hz() (int32, error) {
	return d.switchingFrequency(d.conn())
}
func (d *Device) SwitchingFrequency_HzCtx(ctx context.Context) (int32, error) {
	return d.switchingFrequency(d.ctxConn(ctx))
}

func (d *Device) switchingFrequency(t transactor) (int32, error) {
	if err := d.requireInit("get_switching_frequency"); err != nil {
		return 0, err
	}
	reg, err := d.readReg(t, RegSwFreq)
	if err != nil {
		return 0, err
	}
	return tableFsw.FromRaw(uint16(FieldFsw.Get(reg))), nil
}

// SetSoftStart_us selects the nearest allowed soft-start ramp time
// (ties round down). Disabled state only; takes effect at enable.
func (d *Device) SetSoftStart_us(us int32) error {
	return d.setSoftStart(d.conn(), us)
}
func (d *Device) SetSoftStart_usCtx(ctx context.Context, us int32) error {
	return d.setSoftStart(d.ctxConn(ctx), us)
}

func (d *Device) setSoftStart(t transactor, us int32) error {
	if err := d.requireDisabled("set_soft_start"); err != nil {
		return err
	}
	code, err := tableSoftStart.ToRaw(us)
	if err != nil {
		return wrap("set_soft_start", err)
	}
	return d.writeReg(t, RegSoftStart, FieldSoftStart.Put(0, uint8(code)))
}

// SetFeedback selects the feedback network and the internal divider
// ratio. Disabled state only: switching the feedback source under load
// momentarily leaves the output unregulated.
func (d *Device) SetFeedback(src FeedbackSource, ratio FeedbackRatio) error {
	return d.setFeedback(d.conn(), src, ratio)
}
func (d *Device) SetFeedbackCtx(ctx context.Context, src FeedbackSource, ratio FeedbackRatio) error {
	return d.setFeedback(d.ctxConn(ctx), src, ratio)
}

func (d *Device) setFeedback(t transactor, src FeedbackSource, ratio FeedbackRatio) error {
	if err := d.requireDisabled("set_feedback_source"); err != nil {
		return err
	}
	reg := FieldFBSource.Put(0, uint8(src))
	reg = FieldIntFB.Put(reg, uint8(ratio))
	return d.writeReg(t, RegVoutFS, reg)
}

// SetCableComp configures cable droop compensation and the CDC fault
// mask bits. Disabled state only.
func (d *Device) SetCableComp(opt CableCompOption, level_mV int32, masks CDCMasks) error {
	return d.setCableComp(d.conn(), opt, level_mV, masks)
}
func (d *Device) SetCableCompCtx(ctx context.Context, opt CableCompOption, level_mV int32, masks CDCMasks) error {
	return d.setCableComp(d.ctxConn(ctx), opt, level_mV, masks)
}

func (d *Device) setCableComp(t transactor, opt CableCompOption, level_mV int32, masks CDCMasks) error {
	if err := d.requireDisabled("set_cable_compensation"); err != nil {
		return err
	}
	code, err := quantCDC.ToRaw(level_mV)
	if err != nil {
		return wrap("set_cable_compensation", err)
	}
	reg := FieldCDCLevel.Put(0, uint8(code))
	reg = FieldCDCOption.Put(reg, uint8(opt))
	if masks.ShortCircuit {
		reg = FieldSCMask.Put(reg, 1)
	}
	if masks.OverCurrent {
		reg = FieldOCPMask.Put(reg, 1)
	}
	if masks.OverVoltage {
		reg = FieldOVPMask.Put(reg, 1)
	}
	return d.writeReg(t, RegCDC, reg)
}

// ---------------- Always-legal tuning ----------------

// SetSlewRate programs the VOUT transition rate and the over-current
// response delay. Legal while enabled (it shapes live voltage steps).
func (d *Device) SetSlewRate(sr SlewRate, od OcpDelay) error {
	return d.setSlewRate(d.conn(), sr, od)
}
func (d *Device) SetSlewRateCtx(ctx context.Context, sr SlewRate, od OcpDelay) error {
	return d.setSlewRate(d.ctxConn(ctx), sr, od)
}

func (d *Device) setSlewRate(t transactor, sr SlewRate, od OcpDelay) error {
	if err := d.requireInit("set_slew_rate"); err != nil {
		return err
	}
	reg := FieldSlewRate.Put(0, uint8(sr))
	reg = FieldOCPDelay.Put(reg, uint8(od))
	return d.writeReg(t, RegVoutSR, reg)
}

// SetFrequencyDoubling toggles FSWDBL (doubled switching frequency in
// the buck-boost region). Disabled state only.
func (d *Device) SetFrequencyDoubling(on bool) error {
	return d.setModeBit(d.conn(), "set_frequency_doubling", ModeFswDbl, on)
}
func (d *Device) SetFrequencyDoublingCtx(ctx context.Context, on bool) error {
	return d.setModeBit(d.ctxConn(ctx), "set_frequency_doubling", ModeFswDbl, on)
}

// SetDischarge toggles the output discharge FET used while disabled.
func (d *Device) SetDischarge(on bool) error {
	return d.setModeBit(d.conn(), "set_discharge", ModeDischg, on)
}
func (d *Device) SetDischargeCtx(ctx context.Context, on bool) error {
	return d.setModeBit(d.ctxConn(ctx), "set_discharge", ModeDischg, on)
}

// SetHiccup toggles hiccup restart after an over-current trip.
func (d *Device) SetHiccup(on bool) error {
	return d.setModeBit(d.conn(), "set_hiccup", ModeHiccup, on)
}
func (d *Device) SetHiccupCtx(ctx context.Context, on bool) error {
	return d.setModeBit(d.ctxConn(ctx), "set_hiccup", ModeHiccup, on)
}

func (d *Device) setModeBit(t transactor, op string, bit ModeBits, on bool) error {
	if err := d.requireDisabled(op); err != nil {
		return err
	}
	if on {
		return d.updateReg(t, RegMode, uint8(bit), 0)
	}
	return d.updateReg(t, RegMode, 0, uint8(bit))
}

// ---------------- Raw passthrough (advanced callers) ----------------

// ReadRegister reads one register byte. Not state-gated.
func (d *Device) ReadRegister(reg uint8) (uint8, error) {
	return d.readReg(d.conn(), reg)
}
func (d *Device) ReadRegisterCtx(ctx context.Context, reg uint8) (uint8, error) {
	return d.readReg(d.ctxConn(ctx), reg)
}

// WriteRegister writes one register byte. Not state-gated.
func (d *Device) WriteRegister(reg, val uint8) error {
	return d.writeReg(d.conn(), reg, val)
}
func (d *Device) WriteRegisterCtx(ctx context.Context, reg, val uint8) error {
	return d.writeReg(d.ctxConn(ctx), reg, val)
}

// UpdateRegisterMasked performs read-modify-write: (reg | set) &^ clear.
func (d *Device) UpdateRegisterMasked(reg, set, clear uint8) error {
	return d.updateReg(d.conn(), reg, set, clear)
}
func (d *Device) UpdateRegisterMaskedCtx(ctx context.Context, reg, set, clear uint8) error {
	return d.updateReg(d.ctxConn(ctx), reg, set, clear)
}
