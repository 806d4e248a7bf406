package cpu

import "reflect"

// opDef is one entry of the fixed 256-slot dispatch table: how to
// resolve the operand address, what to do with it, and the byte
// length / base cycle count / page-cross penalty eligibility a real
// 6502 bills for that opcode.
type opDef struct {
	mnemonic    string
	resolve     func(*Chip)
	execute     func(*Chip)
	bytes       uint8
	cycles      uint8
	pagePenalty bool
}

// resolverAddressing maps a resolve function to the Addressing mode it
// implements, keyed by function pointer. Built once so diagnostic
// tooling (the disassembler) can ask "what mode is opcode X" without
// needing a live Chip to invoke the resolver against.
var resolverAddressing = func() map[uintptr]Addressing {
	ptr := func(f func(*Chip)) uintptr { return reflect.ValueOf(f).Pointer() }
	return map[uintptr]Addressing{
		ptr(resolveImp):  Imp,
		ptr(resolveAcc):  Acc,
		ptr(resolveImm):  Imm,
		ptr(resolveZp):   Zp,
		ptr(resolveZpX):  ZpX,
		ptr(resolveZpY):  ZpY,
		ptr(resolveRel):  Rel,
		ptr(resolveAbs):  Abs,
		ptr(resolveAbsX): AbsX,
		ptr(resolveAbsY): AbsY,
		ptr(resolveInd):  Ind,
		ptr(resolveIndX): IndX,
		ptr(resolveIndY): IndY,
	}
}()

// illegal is the default for any of the 256 opcode slots the
// documented instruction set doesn't define. It's billed as a single
// byte, 2 cycle no-op; the handful of well known undocumented
// opcodes that behave as wider NOPs are given their own explicit
// entries below instead of falling through to this one.
var illegal = opDef{"XXX", resolveImp, (*Chip).nop, 1, 2, false}

var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]opDef {
	var t [256]opDef
	for i := range t {
		t[i] = illegal
	}

	def := func(op uint8, mnemonic string, resolve func(*Chip), execute func(*Chip), bytes, cycles uint8, pagePenalty bool) {
		t[op] = opDef{mnemonic, resolve, execute, bytes, cycles, pagePenalty}
	}

	// LDA
	def(0xA9, "LDA", resolveImm, (*Chip).lda, 2, 2, false)
	def(0xA5, "LDA", resolveZp, (*Chip).lda, 2, 3, false)
	def(0xB5, "LDA", resolveZpX, (*Chip).lda, 2, 4, false)
	def(0xAD, "LDA", resolveAbs, (*Chip).lda, 3, 4, false)
	def(0xBD, "LDA", resolveAbsX, (*Chip).lda, 3, 4, true)
	def(0xB9, "LDA", resolveAbsY, (*Chip).lda, 3, 4, true)
	def(0xA1, "LDA", resolveIndX, (*Chip).lda, 2, 6, false)
	def(0xB1, "LDA", resolveIndY, (*Chip).lda, 2, 5, true)

	// LDX
	def(0xA2, "LDX", resolveImm, (*Chip).ldx, 2, 2, false)
	def(0xA6, "LDX", resolveZp, (*Chip).ldx, 2, 3, false)
	def(0xB6, "LDX", resolveZpY, (*Chip).ldx, 2, 4, false)
	def(0xAE, "LDX", resolveAbs, (*Chip).ldx, 3, 4, false)
	def(0xBE, "LDX", resolveAbsY, (*Chip).ldx, 3, 4, true)

	// LDY
	def(0xA0, "LDY", resolveImm, (*Chip).ldy, 2, 2, false)
	def(0xA4, "LDY", resolveZp, (*Chip).ldy, 2, 3, false)
	def(0xB4, "LDY", resolveZpX, (*Chip).ldy, 2, 4, false)
	def(0xAC, "LDY", resolveAbs, (*Chip).ldy, 3, 4, false)
	def(0xBC, "LDY", resolveAbsX, (*Chip).ldy, 3, 4, true)

	// STA
	def(0x85, "STA", resolveZp, (*Chip).sta, 2, 3, false)
	def(0x95, "STA", resolveZpX, (*Chip).sta, 2, 4, false)
	def(0x8D, "STA", resolveAbs, (*Chip).sta, 3, 4, false)
	def(0x9D, "STA", resolveAbsX, (*Chip).sta, 3, 5, false)
	def(0x99, "STA", resolveAbsY, (*Chip).sta, 3, 5, false)
	def(0x81, "STA", resolveIndX, (*Chip).sta, 2, 6, false)
	def(0x91, "STA", resolveIndY, (*Chip).sta, 2, 6, false)

	// STX / STY
	def(0x86, "STX", resolveZp, (*Chip).stx, 2, 3, false)
	def(0x96, "STX", resolveZpY, (*Chip).stx, 2, 4, false)
	def(0x8E, "STX", resolveAbs, (*Chip).stx, 3, 4, false)
	def(0x84, "STY", resolveZp, (*Chip).sty, 2, 3, false)
	def(0x94, "STY", resolveZpX, (*Chip).sty, 2, 4, false)
	def(0x8C, "STY", resolveAbs, (*Chip).sty, 3, 4, false)

	// Register transfers
	def(0xAA, "TAX", resolveImp, (*Chip).tax, 1, 2, false)
	def(0xA8, "TAY", resolveImp, (*Chip).tay, 1, 2, false)
	def(0xBA, "TSX", resolveImp, (*Chip).tsx, 1, 2, false)
	def(0x8A, "TXA", resolveImp, (*Chip).txa, 1, 2, false)
	def(0x98, "TYA", resolveImp, (*Chip).tya, 1, 2, false)
	def(0x9A, "TXS", resolveImp, (*Chip).txs, 1, 2, false)

	// Stack
	def(0x48, "PHA", resolveImp, (*Chip).pha, 1, 3, false)
	def(0x68, "PLA", resolveImp, (*Chip).pla, 1, 4, false)
	def(0x08, "PHP", resolveImp, (*Chip).php, 1, 3, false)
	def(0x28, "PLP", resolveImp, (*Chip).plp, 1, 4, false)

	// Logic
	def(0x29, "AND", resolveImm, (*Chip).and, 2, 2, false)
	def(0x25, "AND", resolveZp, (*Chip).and, 2, 3, false)
	def(0x35, "AND", resolveZpX, (*Chip).and, 2, 4, false)
	def(0x2D, "AND", resolveAbs, (*Chip).and, 3, 4, false)
	def(0x3D, "AND", resolveAbsX, (*Chip).and, 3, 4, true)
	def(0x39, "AND", resolveAbsY, (*Chip).and, 3, 4, true)
	def(0x21, "AND", resolveIndX, (*Chip).and, 2, 6, false)
	def(0x31, "AND", resolveIndY, (*Chip).and, 2, 5, true)

	def(0x09, "ORA", resolveImm, (*Chip).ora, 2, 2, false)
	def(0x05, "ORA", resolveZp, (*Chip).ora, 2, 3, false)
	def(0x15, "ORA", resolveZpX, (*Chip).ora, 2, 4, false)
	def(0x0D, "ORA", resolveAbs, (*Chip).ora, 3, 4, false)
	def(0x1D, "ORA", resolveAbsX, (*Chip).ora, 3, 4, true)
	def(0x19, "ORA", resolveAbsY, (*Chip).ora, 3, 4, true)
	def(0x01, "ORA", resolveIndX, (*Chip).ora, 2, 6, false)
	def(0x11, "ORA", resolveIndY, (*Chip).ora, 2, 5, true)

	def(0x49, "EOR", resolveImm, (*Chip).eor, 2, 2, false)
	def(0x45, "EOR", resolveZp, (*Chip).eor, 2, 3, false)
	def(0x55, "EOR", resolveZpX, (*Chip).eor, 2, 4, false)
	def(0x4D, "EOR", resolveAbs, (*Chip).eor, 3, 4, false)
	def(0x5D, "EOR", resolveAbsX, (*Chip).eor, 3, 4, true)
	def(0x59, "EOR", resolveAbsY, (*Chip).eor, 3, 4, true)
	def(0x41, "EOR", resolveIndX, (*Chip).eor, 2, 6, false)
	def(0x51, "EOR", resolveIndY, (*Chip).eor, 2, 5, true)

	// Shifts / rotates
	def(0x0A, "ASL", resolveAcc, (*Chip).asl, 1, 2, false)
	def(0x06, "ASL", resolveZp, (*Chip).asl, 2, 5, false)
	def(0x16, "ASL", resolveZpX, (*Chip).asl, 2, 6, false)
	def(0x0E, "ASL", resolveAbs, (*Chip).asl, 3, 6, false)
	def(0x1E, "ASL", resolveAbsX, (*Chip).asl, 3, 7, false)

	def(0x4A, "LSR", resolveAcc, (*Chip).lsr, 1, 2, false)
	def(0x46, "LSR", resolveZp, (*Chip).lsr, 2, 5, false)
	def(0x56, "LSR", resolveZpX, (*Chip).lsr, 2, 6, false)
	def(0x4E, "LSR", resolveAbs, (*Chip).lsr, 3, 6, false)
	def(0x5E, "LSR", resolveAbsX, (*Chip).lsr, 3, 7, false)

	def(0x2A, "ROL", resolveAcc, (*Chip).rol, 1, 2, false)
	def(0x26, "ROL", resolveZp, (*Chip).rol, 2, 5, false)
	def(0x36, "ROL", resolveZpX, (*Chip).rol, 2, 6, false)
	def(0x2E, "ROL", resolveAbs, (*Chip).rol, 3, 6, false)
	def(0x3E, "ROL", resolveAbsX, (*Chip).rol, 3, 7, false)

	def(0x6A, "ROR", resolveAcc, (*Chip).ror, 1, 2, false)
	def(0x66, "ROR", resolveZp, (*Chip).ror, 2, 5, false)
	def(0x76, "ROR", resolveZpX, (*Chip).ror, 2, 6, false)
	def(0x6E, "ROR", resolveAbs, (*Chip).ror, 3, 6, false)
	def(0x7E, "ROR", resolveAbsX, (*Chip).ror, 3, 7, false)

	// Arithmetic
	def(0x69, "ADC", resolveImm, (*Chip).adc, 2, 2, false)
	def(0x65, "ADC", resolveZp, (*Chip).adc, 2, 3, false)
	def(0x75, "ADC", resolveZpX, (*Chip).adc, 2, 4, false)
	def(0x6D, "ADC", resolveAbs, (*Chip).adc, 3, 4, false)
	def(0x7D, "ADC", resolveAbsX, (*Chip).adc, 3, 4, true)
	def(0x79, "ADC", resolveAbsY, (*Chip).adc, 3, 4, true)
	def(0x61, "ADC", resolveIndX, (*Chip).adc, 2, 6, false)
	def(0x71, "ADC", resolveIndY, (*Chip).adc, 2, 5, true)

	def(0xE9, "SBC", resolveImm, (*Chip).sbc, 2, 2, false)
	def(0xE5, "SBC", resolveZp, (*Chip).sbc, 2, 3, false)
	def(0xF5, "SBC", resolveZpX, (*Chip).sbc, 2, 4, false)
	def(0xED, "SBC", resolveAbs, (*Chip).sbc, 3, 4, false)
	def(0xFD, "SBC", resolveAbsX, (*Chip).sbc, 3, 4, true)
	def(0xF9, "SBC", resolveAbsY, (*Chip).sbc, 3, 4, true)
	def(0xE1, "SBC", resolveIndX, (*Chip).sbc, 2, 6, false)
	def(0xF1, "SBC", resolveIndY, (*Chip).sbc, 2, 5, true)

	// Increment / decrement
	def(0xE6, "INC", resolveZp, (*Chip).inc, 2, 5, false)
	def(0xF6, "INC", resolveZpX, (*Chip).inc, 2, 6, false)
	def(0xEE, "INC", resolveAbs, (*Chip).inc, 3, 6, false)
	def(0xFE, "INC", resolveAbsX, (*Chip).inc, 3, 7, false)
	def(0xC6, "DEC", resolveZp, (*Chip).dec, 2, 5, false)
	def(0xD6, "DEC", resolveZpX, (*Chip).dec, 2, 6, false)
	def(0xCE, "DEC", resolveAbs, (*Chip).dec, 3, 6, false)
	def(0xDE, "DEC", resolveAbsX, (*Chip).dec, 3, 7, false)
	def(0xE8, "INX", resolveImp, (*Chip).inx, 1, 2, false)
	def(0xC8, "INY", resolveImp, (*Chip).iny, 1, 2, false)
	def(0xCA, "DEX", resolveImp, (*Chip).dex, 1, 2, false)
	def(0x88, "DEY", resolveImp, (*Chip).dey, 1, 2, false)

	// Compare
	def(0xC9, "CMP", resolveImm, (*Chip).cmp, 2, 2, false)
	def(0xC5, "CMP", resolveZp, (*Chip).cmp, 2, 3, false)
	def(0xD5, "CMP", resolveZpX, (*Chip).cmp, 2, 4, false)
	def(0xCD, "CMP", resolveAbs, (*Chip).cmp, 3, 4, false)
	def(0xDD, "CMP", resolveAbsX, (*Chip).cmp, 3, 4, true)
	def(0xD9, "CMP", resolveAbsY, (*Chip).cmp, 3, 4, true)
	def(0xC1, "CMP", resolveIndX, (*Chip).cmp, 2, 6, false)
	def(0xD1, "CMP", resolveIndY, (*Chip).cmp, 2, 5, true)
	def(0xE0, "CPX", resolveImm, (*Chip).cpx, 2, 2, false)
	def(0xE4, "CPX", resolveZp, (*Chip).cpx, 2, 3, false)
	def(0xEC, "CPX", resolveAbs, (*Chip).cpx, 3, 4, false)
	def(0xC0, "CPY", resolveImm, (*Chip).cpy, 2, 2, false)
	def(0xC4, "CPY", resolveZp, (*Chip).cpy, 2, 3, false)
	def(0xCC, "CPY", resolveAbs, (*Chip).cpy, 3, 4, false)

	// BIT
	def(0x24, "BIT", resolveZp, (*Chip).bit, 2, 3, false)
	def(0x2C, "BIT", resolveAbs, (*Chip).bit, 3, 4, false)

	// Branches: base cost is 2, branch() itself bills the extra 1-2
	// for taken / page-crossing branches.
	def(0x90, "BCC", resolveRel, (*Chip).bcc, 2, 2, false)
	def(0xB0, "BCS", resolveRel, (*Chip).bcs, 2, 2, false)
	def(0xF0, "BEQ", resolveRel, (*Chip).beq, 2, 2, false)
	def(0xD0, "BNE", resolveRel, (*Chip).bne, 2, 2, false)
	def(0x30, "BMI", resolveRel, (*Chip).bmi, 2, 2, false)
	def(0x10, "BPL", resolveRel, (*Chip).bpl, 2, 2, false)
	def(0x50, "BVC", resolveRel, (*Chip).bvc, 2, 2, false)
	def(0x70, "BVS", resolveRel, (*Chip).bvs, 2, 2, false)

	// Jumps / subroutines
	def(0x4C, "JMP", resolveAbs, (*Chip).jmp, 3, 3, false)
	def(0x6C, "JMP", resolveInd, (*Chip).jmp, 3, 5, false)
	def(0x20, "JSR", resolveAbs, (*Chip).jsr, 3, 6, false)
	def(0x60, "RTS", resolveImp, (*Chip).rts, 1, 6, false)

	// Flags
	def(0x18, "CLC", resolveImp, (*Chip).clc, 1, 2, false)
	def(0x38, "SEC", resolveImp, (*Chip).sec, 1, 2, false)
	def(0xD8, "CLD", resolveImp, (*Chip).cld, 1, 2, false)
	def(0xF8, "SED", resolveImp, (*Chip).sed, 1, 2, false)
	def(0x58, "CLI", resolveImp, (*Chip).cli, 1, 2, false)
	def(0x78, "SEI", resolveImp, (*Chip).sei, 1, 2, false)
	def(0xB8, "CLV", resolveImp, (*Chip).clv, 1, 2, false)

	// Software interrupt / return
	def(0x00, "BRK", resolveImp, (*Chip).brk, 2, 7, false)
	def(0x40, "RTI", resolveImp, (*Chip).rti, 1, 6, false)

	// NOP
	def(0xEA, "NOP", resolveImp, (*Chip).nop, 1, 2, false)

	// Commonly modeled undocumented opcodes: real silicon decodes
	// these as wider no-ops rather than the illegal default's single
	// byte. Their semantic effects (if any) are not reproduced, only
	// the byte length and cycle count a program relying on them would
	// observe.
	for _, op := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		def(op, "NOP", resolveImp, (*Chip).nop, 1, 2, false)
	}
	for _, op := range []uint8{0x04, 0x44, 0x64} {
		def(op, "NOP", resolveZp, (*Chip).nop, 2, 3, false)
	}
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		def(op, "NOP", resolveZpX, (*Chip).nop, 2, 4, false)
	}
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		def(op, "NOP", resolveImm, (*Chip).nop, 2, 2, false)
	}
	def(0x0C, "NOP", resolveAbs, (*Chip).nop, 3, 4, false)
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		def(op, "NOP", resolveAbsX, (*Chip).nop, 3, 4, true)
	}

	return t
}

// Mnemonic returns the table mnemonic for opcode, "XXX" for any slot
// left at the illegal default.
func Mnemonic(opcode uint8) string {
	return opcodeTable[opcode].mnemonic
}

// Bytes returns the instruction length in bytes for opcode.
func Bytes(opcode uint8) uint8 {
	return opcodeTable[opcode].bytes
}

// BaseCycles returns the table cycle count for opcode, not including
// any branch-taken or page-cross penalty.
func BaseCycles(opcode uint8) uint8 {
	return opcodeTable[opcode].cycles
}

// AddressingMode returns the addressing mode opcode decodes under.
// Used by disassemblers and other diagnostic tooling that need to know
// operand shape without actually resolving an address.
func AddressingMode(opcode uint8) Addressing {
	return resolverAddressing[reflect.ValueOf(opcodeTable[opcode].resolve).Pointer()]
}

// PagePenalty reports whether opcode is one of the indexed addressing
// variants that bills an extra cycle when indexing crosses a page.
func PagePenalty(opcode uint8) bool {
	return opcodeTable[opcode].pagePenalty
}
