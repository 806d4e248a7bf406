package cpu

import "testing"

func TestAddressingModeMatchesTableEntry(t *testing.T) {
	tests := []struct {
		op   uint8
		want Addressing
	}{
		{0xA9, Imm},  // LDA #imm
		{0xBD, AbsX}, // LDA abs,X
		{0x6C, Ind},  // JMP (ind)
		{0xF0, Rel},  // BEQ
		{0x0A, Acc},  // ASL A
		{0xEA, Imp},  // NOP
	}
	for _, tc := range tests {
		if got := AddressingMode(tc.op); got != tc.want {
			t.Errorf("AddressingMode(%.2X) = %v, want %v", tc.op, got, tc.want)
		}
	}
}

func TestPagePenaltyMatchesIndexedVariants(t *testing.T) {
	if !PagePenalty(0xBD) { // LDA abs,X
		t.Error("PagePenalty(0xBD) = false, want true")
	}
	if PagePenalty(0xAD) { // LDA abs
		t.Error("PagePenalty(0xAD) = true, want false")
	}
}
