package mathx

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("Clamp(-3,0,10) = %d", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Fatalf("Clamp(42,0,10) = %d", got)
	}
	// Swapped bounds behave the same.
	if got := Clamp(42, 10, 0); got != 10 {
		t.Fatalf("Clamp(42,10,0) = %d", got)
	}
}

func TestBetween(t *testing.T) {
	if !Between(800, 800, 21000) || !Between(21000, 800, 21000) {
		t.Fatal("bounds are inclusive")
	}
	if Between(799, 800, 21000) || Between(21001, 800, 21000) {
		t.Fatal("outside the bounds")
	}
	if !Between(5, 10, 0) {
		t.Fatal("swapped bounds")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(2, 7) != 2 || Max(2, 7) != 7 {
		t.Fatal("Min/Max")
	}
	if Abs(-40) != 40 || Abs(int32(40)) != 40 || Abs(0) != 0 {
		t.Fatal("Abs")
	}
}
