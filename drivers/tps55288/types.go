package tps55288

// ForceMode selects the converter power-stage mode (FORCE[3:2]).
type ForceMode uint8

const (
	ForceAuto  ForceMode = 0 // buck, boost or buck-boost as VIN/VOUT demand
	ForceBuck  ForceMode = 1
	ForceBoost ForceMode = 2
)

func (m ForceMode) String() string {
	switch m {
	case ForceAuto:
		return "auto"
	case ForceBuck:
		return "buck"
	case ForceBoost:
		return "boost"
	}
	return "reserved"
}

// LightLoad selects the light-load switching behaviour (FPWM bit).
type LightLoad uint8

const (
	LightLoadPFM  LightLoad = 0 // pulse-frequency modulation at light load
	LightLoadFPWM LightLoad = 1 // forced PWM at light load
)

func (l LightLoad) String() string {
	if l == LightLoadFPWM {
		return "fpwm"
	}
	return "pfm"
}

// SlewRate is the VOUT transition rate (SR[1:0]).
type SlewRate uint8

const (
	SlewRate1p25mV SlewRate = 0 // 1.25 mV/µs
	SlewRate2p5mV  SlewRate = 1 // 2.5 mV/µs
	SlewRate5mV    SlewRate = 2 // 5 mV/µs
	SlewRate10mV   SlewRate = 3 // 10 mV/µs
)

// MicrovoltsPerUs returns the rate in µV/µs.
func (s SlewRate) MicrovoltsPerUs() int32 { return tableSlew.FromRaw(uint16(s)) }

// SlewRateNearest picks the nearest selectable rate for uvPerUs (µV/µs).
// A request exactly between two rates selects the slower one.
func SlewRateNearest(uvPerUs int32) (SlewRate, error) {
	code, err := tableSlew.ToRaw(uvPerUs)
	if err != nil {
		return 0, err
	}
	return SlewRate(code), nil
}

// OcpDelay is the over-current response delay (OCP_DELAY[5:4]).
type OcpDelay uint8

const (
	OcpDelay128us OcpDelay = 0
	OcpDelay3ms   OcpDelay = 1 // 3.072 ms
	OcpDelay6ms   OcpDelay = 2 // 6.144 ms
	OcpDelay12ms  OcpDelay = 3 // 12.288 ms
)

// Microseconds returns the delay in µs.
func (o OcpDelay) Microseconds() int32 { return tableOcpDelay.FromRaw(uint16(o)) }

// FeedbackSource selects the output voltage feedback network (FB bit).
type FeedbackSource uint8

const (
	FeedbackInternal FeedbackSource = 0 // internal divider from the REF DAC
	FeedbackExternal FeedbackSource = 1 // external resistor network on FB
)

func (f FeedbackSource) String() string {
	if f == FeedbackExternal {
		return "external"
	}
	return "internal"
}

// FeedbackRatio is the internal feedback divider (INTFB[1:0]).
// Smaller ratios map the 10-bit REF DAC onto a wider output range.
type FeedbackRatio uint8

const (
	FeedbackRatio0p2256 FeedbackRatio = 0
	FeedbackRatio0p1128 FeedbackRatio = 1
	FeedbackRatio0p0752 FeedbackRatio = 2
	FeedbackRatio0p0564 FeedbackRatio = 3 // full 800 mV – 21 V span
)

// Ratio_1e4 returns the divider ratio scaled by 10⁴ (0.2256 → 2256).
func (r FeedbackRatio) Ratio_1e4() int32 {
	switch r {
	case FeedbackRatio0p2256:
		return 2256
	case FeedbackRatio0p1128:
		return 1128
	case FeedbackRatio0p0752:
		return 752
	default:
		return 564
	}
}

// CableCompOption selects internal or external cable droop compensation.
type CableCompOption uint8

const (
	CableCompInternal CableCompOption = 0
	CableCompExternal CableCompOption = 1
)

// CDCMasks selects which fault indications the CDC register suppresses.
type CDCMasks struct {
	ShortCircuit bool `json:"short_circuit"`
	OverCurrent  bool `json:"over_current"`
	OverVoltage  bool `json:"over_voltage"`
}

// VccSource is the internal circuitry supply, preset by the MODE pin strap.
type VccSource uint8

const (
	VccInternalLDO VccSource = 0
	VccExternal5V  VccSource = 1
)

// OperatingStatus is the live power-stage mode reported in STAT[1:0].
type OperatingStatus uint8

const (
	OperatingBoost     OperatingStatus = 0
	OperatingBuck      OperatingStatus = 1
	OperatingBuckBoost OperatingStatus = 2
	OperatingReserved  OperatingStatus = 3
)

func (s OperatingStatus) String() string {
	switch s {
	case OperatingBoost:
		return "boost"
	case OperatingBuck:
		return "buck"
	case OperatingBuckBoost:
		return "buck-boost"
	}
	return "reserved"
}
