package errcode

// Code is a stable, caller-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// TransportFailure: the underlying I2C transaction failed (or the
	// suspending call surface was cancelled before the transaction was
	// handed to the bus). Never retried by the driver.
	TransportFailure Code = "transport_failure"
	// OutOfRange: a requested physical value is outside the
	// datasheet-documented bounds.
	OutOfRange Code = "out_of_range"
	// NotRepresentable: a value inside the bounds cannot be encoded as
	// an exact register step under a strict (non-rounding) call.
	NotRepresentable Code = "not_representable"
	// InvalidState: the operation is not permitted in the device's
	// current lifecycle state (uninitialised / output enabled).
	InvalidState Code = "invalid_state"

	Error Code = "error" // generic fallback
)

// E is an optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.OutOfRange) match through the wrapper.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
