package memory

import "testing"

func TestNewRegionRejectsInvertedRange(t *testing.T) {
	if _, err := NewRegion(0x2000, 0x1000); err == nil {
		t.Error("NewRegion(0x2000, 0x1000) succeeded, want error")
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	r, err := NewRegion(0x0000, 0x07FF)
	if err != nil {
		t.Fatalf("NewRegion: %v", err)
	}
	r.Write8(0x0123, 0xAB)
	if got := r.Read8(0x0123); got != 0xAB {
		t.Errorf("Read8 = %.2X, want AB", got)
	}
}

func TestReadOutsideWindowReturnsZero(t *testing.T) {
	r, err := NewRegion(0x2000, 0x2FFF)
	if err != nil {
		t.Fatalf("NewRegion: %v", err)
	}
	if got := r.Read8(0x1000); got != 0x00 {
		t.Errorf("Read8 outside window = %.2X, want 00", got)
	}
}

func TestWriteOutsideWindowIsSilentlyDropped(t *testing.T) {
	r, err := NewRegion(0x2000, 0x2FFF)
	if err != nil {
		t.Fatalf("NewRegion: %v", err)
	}
	r.Write8(0x1000, 0xFF) // should not panic, should not be visible anywhere
	if r.Validate8(0x1000) {
		t.Error("Validate8 claims an address outside the window")
	}
}

func TestMirrorReflectsPrimaryWindow(t *testing.T) {
	// Classic NES internal RAM: 0x0000-0x07FF mirrored three times up
	// to 0x1FFF.
	r, err := NewRegion(0x0000, 0x07FF)
	if err != nil {
		t.Fatalf("NewRegion: %v", err)
	}
	r.Mirror(0x0800, 3)

	r.Write8(0x0010, 0x42)
	for _, mirror := range []uint16{0x0810, 0x1010, 0x1810} {
		if got := r.Read8(mirror); got != 0x42 {
			t.Errorf("Read8(%.4X) = %.2X, want 42", mirror, got)
		}
	}

	// A write through a mirror is visible at the primary address too,
	// since both resolve to the same backing byte.
	r.Write8(0x1010, 0x99)
	if got := r.Read8(0x0010); got != 0x99 {
		t.Errorf("Read8(0x0010) after mirror write = %.2X, want 99", got)
	}
}

func TestMirrorsAccessorReturnsRegisteredBases(t *testing.T) {
	r, _ := NewRegion(0x0000, 0x00FF)
	r.Mirror(0x0100, 2)
	got := r.Mirrors()
	want := []uint16{0x0100, 0x0200}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Mirrors() = %v, want %v", got, want)
	}
}

func TestRead16LittleEndian(t *testing.T) {
	r, _ := NewRegion(0x0000, 0x00FF)
	r.Write8(0x0010, 0x34)
	r.Write8(0x0011, 0x12)
	if got := r.Read16(0x0010); got != 0x1234 {
		t.Errorf("Read16 = %.4X, want 1234", got)
	}
}

func TestSetTruncatesAtBufferEnd(t *testing.T) {
	r, _ := NewRegion(0x0000, 0x000F)
	r.Set(0x000C, []uint8{1, 2, 3, 4, 5, 6})
	if got := r.Read8(0x000F); got != 4 {
		t.Errorf("Read8(0x0F) = %d, want 4 (truncated at buffer end)", got)
	}
	// the 5 and 6 fell off the end and should not wrap to 0x0000
	if got := r.Read8(0x0000); got != 0 {
		t.Errorf("Set wrapped into the start of the buffer, got %d", got)
	}
}

func TestValidate16RequiresBothBytesCovered(t *testing.T) {
	r, _ := NewRegion(0x0000, 0x00FF)
	if !r.Validate16(0x00FE) {
		t.Error("Validate16(0x00FE) = false, want true (both bytes in range)")
	}
	if r.Validate16(0x00FF) {
		t.Error("Validate16(0x00FF) = true, want false (second byte outside region)")
	}
}
