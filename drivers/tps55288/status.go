package tps55288

import (
	"context"

	"tps55288-go/x/conv"
)

// FaultMask selects latched fault bits for a write-1-to-clear
// transaction. Bit positions match the STATUS register, so a mask built
// from a snapshot clears exactly the bits that snapshot observed.
type FaultMask uint8

const (
	FaultShortCircuit FaultMask = FaultMask(StatusSCP)
	FaultCurrentLimit FaultMask = FaultMask(StatusOCP)
	FaultOverVoltage  FaultMask = FaultMask(StatusOVP)
	FaultUnderVoltage FaultMask = FaultMask(StatusUVP)
	FaultThermal      FaultMask = FaultMask(StatusOTP)
	FaultWatchdog     FaultMask = FaultMask(StatusWD)

	// FaultAll covers every latched fault bit.
	FaultAll = FaultShortCircuit | FaultCurrentLimit | FaultOverVoltage |
		FaultUnderVoltage | FaultThermal | FaultWatchdog
)

func (m FaultMask) Has(flag FaultMask) bool { return m&flag != 0 }

func (m FaultMask) String() string {
	if m == 0 {
		return "none"
	}
	buf := make([]byte, 0, 32)
	names := []struct {
		bit  FaultMask
		name string
	}{
		{FaultShortCircuit, "scp"},
		{FaultCurrentLimit, "ocp"},
		{FaultOverVoltage, "ovp"},
		{FaultUnderVoltage, "uvp"},
		{FaultThermal, "otp"},
		{FaultWatchdog, "wd"},
	}
	for _, n := range names {
		if m.Has(n.bit) {
			if len(buf) > 0 {
				buf = append(buf, '|')
			}
			buf = append(buf, n.name...)
		}
	}
	return string(buf)
}

// Status is a point-in-time decode of the STATUS register plus the
// commanded output-enable bit. It is created fresh on every ReadStatus
// and never cached; the device is the source of truth.
type Status struct {
	OutputEnabled  bool            `json:"output_enabled"`
	Operating      OperatingStatus `json:"operating"`
	ShortCircuit   bool            `json:"short_circuit"`
	InCurrentLimit bool            `json:"in_current_limit"`
	OverVoltage    bool            `json:"over_voltage"`
	UnderVoltage   bool            `json:"under_voltage"`
	Thermal        bool            `json:"thermal"`
	Watchdog       bool            `json:"watchdog"`
	Raw            uint8           `json:"raw"`
}

// Faults returns the mask of fault bits latched in this snapshot.
func (s Status) Faults() FaultMask {
	return FaultMask(s.Raw) & FaultAll
}

// String renders a stable single-line form for diagnostic logging.
func (s Status) String() string {
	buf := make([]byte, 0, 96)
	buf = append(buf, "tps55288{oe="...)
	buf = conv.AppendBool(buf, s.OutputEnabled)
	buf = append(buf, " mode="...)
	buf = append(buf, s.Operating.String()...)
	buf = append(buf, " faults="...)
	buf = append(buf, s.Faults().String()...)
	buf = append(buf, " raw=0x"...)
	buf = conv.AppendByteHex(buf, s.Raw)
	buf = append(buf, '}')
	return string(buf)
}

func decodeStatus(statusReg, modeReg uint8) Status {
	bits := StatusBits(statusReg)
	return Status{
		OutputEnabled:  ModeBits(modeReg).Has(ModeOE),
		Operating:      OperatingStatus(FieldOpStatus.Get(statusReg)),
		ShortCircuit:   bits.Has(StatusSCP),
		InCurrentLimit: bits.Has(StatusOCP),
		OverVoltage:    bits.Has(StatusOVP),
		UnderVoltage:   bits.Has(StatusUVP),
		Thermal:        bits.Has(StatusOTP),
		Watchdog:       bits.Has(StatusWD),
		Raw:            statusReg,
	}
}

// ReadStatus decodes a fresh snapshot. It never clears fault latches:
// observation and acknowledgement are separate transactions so a fault
// arriving between them is never silently lost.
func (d *Device) ReadStatus() (Status, error) { return d.readStatus(d.conn()) }
func (d *Device) ReadStatusCtx(ctx context.Context) (Status, error) {
	return d.readStatus(d.ctxConn(ctx))
}

func (d *Device) readStatus(t transactor) (Status, error) {
	if err := d.requireInit("read_status"); err != nil {
		return Status{}, err
	}
	statusReg, err := d.readReg(t, RegStatus)
	if err != nil {
		return Status{}, err
	}
	modeReg, err := d.readReg(t, RegMode)
	if err != nil {
		return Status{}, err
	}
	return decodeStatus(statusReg, modeReg), nil
}

// ClearFaults acknowledges exactly the faults in mask with a single
// write-1-to-clear transaction. Bits outside the mask stay set for the
// next read, including faults latched after the mask was built.
// An empty mask issues no transaction.
func (d *Device) ClearFaults(mask FaultMask) error { return d.clearFaults(d.conn(), mask) }
func (d *Device) ClearFaultsCtx(ctx context.Context, mask FaultMask) error {
	return d.clearFaults(d.ctxConn(ctx), mask)
}

func (d *Device) clearFaults(t transactor, mask FaultMask) error {
	if err := d.requireInit("clear_faults"); err != nil {
		return err
	}
	bits := uint8(mask & FaultAll)
	if bits == 0 {
		return nil
	}
	// RO status bits receive zeros; a zero write to a W1C bit is a no-op.
	return d.writeReg(t, RegStatus, bits)
}

// ClearAllFaults reads a fresh snapshot and clears exactly the faults
// it observed.
func (d *Device) ClearAllFaults() error { return d.clearAllFaults(d.conn()) }
func (d *Device) ClearAllFaultsCtx(ctx context.Context) error {
	return d.clearAllFaults(d.ctxConn(ctx))
}

func (d *Device) clearAllFaults(t transactor) error {
	st, err := d.readStatus(t)
	if err != nil {
		return err
	}
	return d.clearFaults(t, st.Faults())
}
