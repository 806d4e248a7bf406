package disassemble

import "testing"

type flatMemory [65536]uint8

func (m *flatMemory) Read8(a uint16) uint8 { return m[a] }

func TestStepImmediate(t *testing.T) {
	var m flatMemory
	m[0x8000] = 0xA9 // LDA #imm
	m[0x8001] = 0x42
	line, n := Step(0x8000, &m)
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	want := "8000  A9 42   LDA #$42"
	if line != want {
		t.Errorf("line = %q, want %q", line, want)
	}
}

func TestStepAbsoluteIndexed(t *testing.T) {
	var m flatMemory
	m[0x8000] = 0xBD // LDA abs,X
	m[0x8001] = 0x00
	m[0x8002] = 0x20
	line, n := Step(0x8000, &m)
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
	want := "8000  BD 00 20 LDA $2000,X"
	if line != want {
		t.Errorf("line = %q, want %q", line, want)
	}
}

func TestStepImplied(t *testing.T) {
	var m flatMemory
	m[0x8000] = 0xEA // NOP
	line, n := Step(0x8000, &m)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
	want := "8000  EA       NOP"
	if line != want {
		t.Errorf("line = %q, want %q", line, want)
	}
}

func TestStepAccumulator(t *testing.T) {
	var m flatMemory
	m[0x8000] = 0x0A // ASL A
	line, _ := Step(0x8000, &m)
	want := "8000  0A       ASL A"
	if line != want {
		t.Errorf("line = %q, want %q", line, want)
	}
}

func TestStepRelativeShowsTarget(t *testing.T) {
	var m flatMemory
	m[0x80F0] = 0xF0 // BEQ +16
	m[0x80F1] = 0x10
	line, n := Step(0x80F0, &m)
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	want := "80F0  F0 10   BEQ $10 (8102)"
	if line != want {
		t.Errorf("line = %q, want %q", line, want)
	}
}

func TestStepIllegalOpcodeDisassemblesAsXXX(t *testing.T) {
	var m flatMemory
	m[0x8000] = 0x02 // never assigned in the documented table
	line, n := Step(0x8000, &m)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
	want := "8000  02       XXX"
	if line != want {
		t.Errorf("line = %q, want %q", line, want)
	}
}

func TestListingAdvancesPastEachInstruction(t *testing.T) {
	var m flatMemory
	m[0x8000] = 0xA9 // LDA #imm (2 bytes)
	m[0x8001] = 0x01
	m[0x8002] = 0xAA // TAX (1 byte)
	m[0x8003] = 0xEA // NOP (1 byte)

	lines := Listing(0x8000, &m, 3)
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	if lines[1] != "8002  AA       TAX" {
		t.Errorf("lines[1] = %q, want TAX at 8002", lines[1])
	}
	if lines[2] != "8003  EA       NOP" {
		t.Errorf("lines[2] = %q, want NOP at 8003", lines[2])
	}
}
