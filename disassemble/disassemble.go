// Package disassemble formats the documented 6502 instruction stream
// into human-readable listings. It decodes straight off the same
// 256-entry table the cpu package uses to execute, so a disassembly
// and a live run always agree about mnemonic, operand shape and byte
// length for a given opcode.
package disassemble

import (
	"fmt"

	"github.com/chacovskyle/nes6502core/cpu"
)

// Reader is the minimal bus contract the disassembler needs: enough
// to read the opcode byte and its operand bytes. memory.Region,
// bus.Bus and cpu.Bus all satisfy it.
type Reader interface {
	Read8(addr uint16) uint8
}

// Step disassembles the instruction at pc and returns its text
// listing plus the number of bytes to advance to reach the next
// instruction. It does not follow control flow: a JMP, BRK or branch
// disassembles as that one instruction, not its target.
//
// Step always reads the two bytes after pc, whatever the opcode's
// length, so the caller must ensure those addresses are valid on r
// even near the end of a buffer.
func Step(pc uint16, r Reader) (string, int) {
	opcode := r.Read8(pc)
	op1 := r.Read8(pc + 1)
	op2 := r.Read8(pc + 2)

	mnemonic := cpu.Mnemonic(opcode)
	bytes := int(cpu.Bytes(opcode))
	mode := cpu.AddressingMode(opcode)

	hex := fmt.Sprintf("%.4X  %.2X ", pc, opcode)
	switch bytes {
	case 1:
		hex += "     "
	case 2:
		hex += fmt.Sprintf("%.2X  ", op1)
	case 3:
		hex += fmt.Sprintf("%.2X %.2X", op1, op2)
	}

	var operand string
	switch mode {
	case cpu.Imp:
		operand = ""
	case cpu.Acc:
		operand = "A"
	case cpu.Imm:
		operand = fmt.Sprintf("#$%.2X", op1)
	case cpu.Zp:
		operand = fmt.Sprintf("$%.2X", op1)
	case cpu.ZpX:
		operand = fmt.Sprintf("$%.2X,X", op1)
	case cpu.ZpY:
		operand = fmt.Sprintf("$%.2X,Y", op1)
	case cpu.IndX:
		operand = fmt.Sprintf("($%.2X,X)", op1)
	case cpu.IndY:
		operand = fmt.Sprintf("($%.2X),Y", op1)
	case cpu.Abs:
		operand = fmt.Sprintf("$%.2X%.2X", op2, op1)
	case cpu.AbsX:
		operand = fmt.Sprintf("$%.2X%.2X,X", op2, op1)
	case cpu.AbsY:
		operand = fmt.Sprintf("$%.2X%.2X,Y", op2, op1)
	case cpu.Ind:
		operand = fmt.Sprintf("($%.2X%.2X)", op2, op1)
	case cpu.Rel:
		target := pc + 2 + uint16(int8(op1))
		operand = fmt.Sprintf("$%.2X (%.4X)", op1, target)
	}

	if operand == "" {
		return fmt.Sprintf("%s %s", hex, mnemonic), bytes
	}
	return fmt.Sprintf("%s %s %s", hex, mnemonic, operand), bytes
}

// Listing disassembles count instructions starting at pc, one per
// returned line. Useful for a static dump of a ROM image or a small
// scrolling window in a debugger view.
func Listing(pc uint16, r Reader, count int) []string {
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		line, n := Step(pc, r)
		lines = append(lines, line)
		if n <= 0 {
			n = 1
		}
		pc += uint16(n)
	}
	return lines
}
