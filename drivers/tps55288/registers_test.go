package tps55288

import "testing"

func TestFieldPutPreservesAdjacentBits(t *testing.T) {
	// Set the 3-bit CDC level inside a register full of ones.
	got := FieldCDCLevel.Put(0xFF, 0)
	if got != 0xF8 {
		t.Fatalf("Put cleared adjacent bits: got %#02x, want 0xF8", got)
	}
	// Set FORCE in a register of zeros.
	got = FieldForce.Put(0x00, uint8(ForceBoost))
	if got != 0x08 {
		t.Fatalf("FORCE insert: got %#02x, want 0x08", got)
	}
	// Oversized values are truncated to the field width.
	got = FieldFPWM.Put(0x00, 0xFF)
	if got != 0x02 {
		t.Fatalf("width truncation: got %#02x, want 0x02", got)
	}
}

func TestFieldGet(t *testing.T) {
	reg := uint8(0b1010_0001)
	if FieldOpStatus.Get(reg) != uint8(OperatingBuck) {
		t.Fatalf("STAT decode: got %d", FieldOpStatus.Get(reg))
	}
	if FieldFaults.Get(reg) != 0b101000 {
		t.Fatalf("fault field: got %#b", FieldFaults.Get(reg))
	}
}

func TestFieldsDoNotOverlap(t *testing.T) {
	// The aggregate fault field aliases the individual W1C bits by design;
	// everything else must be disjoint within its register.
	seen := map[uint8]uint8{}
	for _, f := range fieldList {
		if f == FieldFaults {
			continue
		}
		if prev := seen[f.Reg]; prev&f.Mask() != 0 {
			t.Fatalf("overlapping fields in register %#02x (mask %#02x)", f.Reg, f.Mask())
		}
		seen[f.Reg] |= f.Mask()
	}
}

func TestAccessKinds(t *testing.T) {
	if FieldFaults.Access != AccessW1C {
		t.Fatal("fault bits must be write-1-to-clear")
	}
	if FieldOpStatus.Access != AccessRO {
		t.Fatal("operating status must be read-only")
	}
	for _, f := range []Field{FieldRefLow, FieldILim, FieldOE, FieldFsw, FieldSoftStart} {
		if f.Access != AccessRW {
			t.Fatalf("register %#02x field expected RW", f.Reg)
		}
	}
}

func TestFaultMaskMatchesStatusBits(t *testing.T) {
	if uint8(FaultAll) != FieldFaults.Mask() {
		t.Fatalf("FaultAll %#02x does not match the W1C field mask %#02x",
			uint8(FaultAll), FieldFaults.Mask())
	}
}
