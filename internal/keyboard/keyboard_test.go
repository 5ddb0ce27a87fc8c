package keyboard

import "testing"

func TestPressReleaseIsDown(t *testing.T) {
	var k Keyboard
	if k.IsDown(KeyL) {
		t.Fatal("fresh keyboard reports a key down")
	}
	k.Press(KeyL)
	if !k.IsDown(KeyL) {
		t.Fatal("IsDown false after Press")
	}
	k.Release(KeyL)
	if k.IsDown(KeyL) {
		t.Fatal("IsDown true after Release")
	}
}

func TestReadHalfRowsNoKeysPressed(t *testing.T) {
	var k Keyboard
	if got := k.ReadHalfRows(0xFE); got != 0x1F {
		t.Fatalf("ReadHalfRows(0xFE) = 0x%02X, want 0x1F", got)
	}
}

func TestReadHalfRowsSingleKey(t *testing.T) {
	var k Keyboard
	k.Press(KeyZ) // half-row 0, bit 1

	// selector 0xFE selects half-row 0 (bit 0 clear); Z held pulls D1 low.
	if got := k.ReadHalfRows(0xFE); got != 0x1D {
		t.Fatalf("ReadHalfRows(0xFE) with Z held = 0x%02X, want 0x1D", got)
	}

	// selector with half-row 0's bit set (not selected) should not see it.
	if got := k.ReadHalfRows(0xFF &^ 0x02); got != 0x1F {
		t.Fatalf("ReadHalfRows for an unselected row should read all released, got 0x%02X", got)
	}
}

func TestReadHalfRowsANDsAcrossSelectedRows(t *testing.T) {
	var k Keyboard
	k.Press(KeyZ)    // half-row 0, bit 1
	k.Press(KeyEnter) // half-row 6, bit 0

	selector := byte(0xFF) &^ (1 << 0) &^ (1 << 6) // select half-rows 0 and 6
	got := k.ReadHalfRows(selector)
	want := byte(0x1D) & byte(0x1E) // row0 with Z held AND row6 with Enter held
	if got != want {
		t.Fatalf("ReadHalfRows across two selected rows = 0x%02X, want 0x%02X", got, want)
	}
}

func TestReleaseAll(t *testing.T) {
	var k Keyboard
	k.Press(KeyA)
	k.Press(KeyEnter)
	k.ReleaseAll()
	if k.IsDown(KeyA) || k.IsDown(KeyEnter) {
		t.Fatal("ReleaseAll left a key down")
	}
}

func TestInBoundsKeyCoverage(t *testing.T) {
	for key := Key(0); key < keyCount; key++ {
		var k Keyboard
		k.Press(key)
		if !k.IsDown(key) {
			t.Fatalf("key %d not reported down after Press", key)
		}
	}
}
