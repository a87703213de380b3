package tps55288

import (
	"tps55288-go/errcode"
	"tps55288-go/x/mathx"
)

// Quant describes a linear code scale:
//
//	physical = code*LSB + Off
//
// Min/Max are the datasheet-documented physical bounds; MaxCode is the
// largest code the field width can hold. All maths is integer-only.
type Quant struct {
	LSB     int32
	Off     int32
	Min     int32
	Max     int32
	MaxCode uint16
}

// ToRaw converts a physical value to the nearest legal code.
// Values outside [Min, Max] fail with OutOfRange before any rounding.
// Ties round half to even so exact step multiples round-trip stably.
func (q Quant) ToRaw(v int32) (uint16, error) {
	if !mathx.Between(v, q.Min, q.Max) {
		return 0, errcode.OutOfRange
	}
	code := roundHalfEven(v-q.Off, q.LSB)
	return uint16(mathx.Clamp(code, 0, int32(q.MaxCode))), nil
}

// ToRawClamped is the explicit clamp-to-range variant; it never fails.
func (q Quant) ToRawClamped(v int32) uint16 {
	code, _ := q.ToRaw(mathx.Clamp(v, q.Min, q.Max))
	return code
}

// ToRawExact refuses to round: v must sit exactly on a step.
func (q Quant) ToRawExact(v int32) (uint16, error) {
	code, err := q.ToRaw(v)
	if err != nil {
		return 0, err
	}
	if q.FromRaw(code) != v {
		return 0, errcode.NotRepresentable
	}
	return code, nil
}

func (q Quant) FromRaw(code uint16) int32 { return int32(code)*q.LSB + q.Off }

// roundHalfEven returns round(num/den) with ties going to the even
// quotient. den > 0; num < 0 clamps to 0 (codes are unsigned).
func roundHalfEven(num, den int32) int32 {
	if num <= 0 {
		return 0
	}
	quot := num / den
	rem := num % den
	switch {
	case 2*rem < den:
		return quot
	case 2*rem > den:
		return quot + 1
	default: // exactly half a step
		if quot&1 == 0 {
			return quot
		}
		return quot + 1
	}
}

// Table is a non-uniform code scale: a sorted ascending list of allowed
// physical values where the code is the index.
type Table []int32

// ToRaw selects the nearest allowed entry for v. A value exactly between
// two entries rounds down to the lower entry. Values outside the table
// span fail with OutOfRange.
func (t Table) ToRaw(v int32) (uint16, error) {
	if v < t[0] || v > t[len(t)-1] {
		return 0, errcode.OutOfRange
	}
	best := 0
	for i := 1; i < len(t); i++ {
		if mathx.Abs(v-t[i]) < mathx.Abs(v-t[best]) {
			best = i
		}
	}
	return uint16(best), nil
}

// ToRawExact requires v to be one of the allowed entries.
func (t Table) ToRawExact(v int32) (uint16, error) {
	if v < t[0] || v > t[len(t)-1] {
		return 0, errcode.OutOfRange
	}
	for i, entry := range t {
		if entry == v {
			return uint16(i), nil
		}
	}
	return 0, errcode.NotRepresentable
}

func (t Table) FromRaw(code uint16) int32 {
	if int(code) >= len(t) {
		return t[len(t)-1]
	}
	return t[code]
}

// Documented physical bounds.
const (
	VoutMin_mV = 800   // REF code 0
	VoutMax_mV = 21000 // ceiling with the 0.0564 internal divider
	ILimMax_mA = 6350  // 7-bit code, 50 mA/LSB
)

// Datasheet scales for each configurable quantity.
var (
	// REF: 20 mV/LSB from 800 mV, 10-bit code split across two registers.
	quantVout = Quant{LSB: 20, Off: VoutMin_mV, Min: VoutMin_mV, Max: VoutMax_mV, MaxCode: 0x3FF}

	// IOUT_LIMIT: 50 mA/LSB from 0, 7-bit code.
	quantILim = Quant{LSB: 50, Off: 0, Min: 0, Max: ILimMax_mA, MaxCode: 0x7F}

	// CDC level: 100 mV/LSB of droop compensation, 3-bit code.
	quantCDC = Quant{LSB: 100, Off: 0, Min: 0, Max: 700, MaxCode: 0x07}

	// VOUT slew rate in µV/µs (SR[1:0]).
	tableSlew = Table{1250, 2500, 5000, 10000}

	// Over-current response delay in µs (OCP_DELAY[5:4]).
	tableOcpDelay = Table{128, 3072, 6144, 12288}

	// Switching frequency in Hz (FSW[2:0]).
	tableFsw = Table{200_000, 400_000, 600_000, 800_000, 1_000_000, 1_200_000, 1_600_000, 2_200_000}

	// Soft-start ramp time in µs (SS[1:0]).
	tableSoftStart = Table{1024, 2048, 4096, 8192}
)
