package vcode

import "testing"

func TestRoundTrip(t *testing.T) {
	tbl := NewTable()
	codes := []uint16{VCA, VCZ, VC1, VC0, VCEnter, VCShiftL, VCF1, VCF12, VCKP5}
	for _, vc := range codes {
		native, ok := tbl.VirtualToNative(vc)
		if !ok {
			t.Fatalf("VirtualToNative(%#x): no mapping", vc)
		}
		back := tbl.NativeToVirtual(native, true)
		if back&^KeypadMask != vc {
			t.Errorf("round trip %#x -> native %#x -> %#x, want %#x", vc, native, back, vc)
		}
	}
}

func TestKeypadDisambiguation(t *testing.T) {
	tbl := NewTable()
	native, ok := tbl.VirtualToNative(VCKP1)
	if !ok {
		t.Skip("platform table has no KP1 mapping")
	}
	withNumLock := tbl.NativeToVirtual(native, true)
	withoutNumLock := tbl.NativeToVirtual(native, false)
	if withNumLock&KeypadMask != 0 {
		t.Errorf("NumLock on: expected no keypad mask, got %#x", withNumLock)
	}
	if withoutNumLock&KeypadMask == 0 {
		t.Errorf("NumLock off: expected keypad mask set, got %#x", withoutNumLock)
	}
}
