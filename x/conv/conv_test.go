package conv

import "testing"

func TestAppendInt(t *testing.T) {
	for _, tc := range []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{5000, "5000"},
		{-800, "-800"},
		{9223372036854775807, "9223372036854775807"},
		{-9223372036854775808, "-9223372036854775808"},
	} {
		got := string(AppendInt([]byte("v="), tc.n))
		if got != "v="+tc.want {
			t.Errorf("AppendInt(%d) = %q", tc.n, got)
		}
	}
}

func TestAppendByteHex(t *testing.T) {
	if got := string(AppendByteHex(nil, 0xA1)); got != "A1" {
		t.Fatalf("AppendByteHex(0xA1) = %q", got)
	}
	if got := string(AppendByteHex(nil, 0x07)); got != "07" {
		t.Fatalf("AppendByteHex(0x07) = %q", got)
	}
}

func TestAppendBool(t *testing.T) {
	if got := string(AppendBool(nil, true)); got != "true" {
		t.Fatalf("AppendBool(true) = %q", got)
	}
	if got := string(AppendBool([]byte("x="), false)); got != "x=false" {
		t.Fatalf("AppendBool = %q", got)
	}
}
