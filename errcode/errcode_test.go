package errcode

import (
	"errors"
	"testing"
)

func TestCodeIsError(t *testing.T) {
	var err error = OutOfRange
	if err.Error() != "out_of_range" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !errors.Is(err, OutOfRange) {
		t.Fatal("bare code must match itself")
	}
}

func TestWrapperMatchesCode(t *testing.T) {
	cause := errors.New("nak on address")
	err := error(&E{C: TransportFailure, Op: "i2c.write", Err: cause})

	if !errors.Is(err, TransportFailure) {
		t.Fatal("wrapper must match its code")
	}
	if errors.Is(err, InvalidState) {
		t.Fatal("wrapper matched the wrong code")
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause must stay reachable through Unwrap")
	}
}

func TestWrapperMessage(t *testing.T) {
	for _, tc := range []struct {
		e    E
		want string
	}{
		{E{C: InvalidState, Op: "set_mode", Msg: "output is enabled"}, "set_mode: invalid_state: output is enabled"},
		{E{C: OutOfRange, Op: "set_vout"}, "set_vout: out_of_range"},
		{E{C: NotRepresentable}, "not_representable"},
	} {
		if got := tc.e.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("nil must map to OK")
	}
	if Of(OutOfRange) != OutOfRange {
		t.Fatal("bare code must pass through")
	}
	if Of(&E{C: TransportFailure}) != TransportFailure {
		t.Fatal("wrapper code must be extracted")
	}
	if Of(errors.New("plain")) != Error {
		t.Fatal("unknown errors must map to the generic code")
	}
}
