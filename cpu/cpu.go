// Package cpu implements a cycle-approximate MOS 6502 core: the
// documented instruction set, all 13 addressing modes including the
// indirect-JMP page-wrap bug, and the reset/NMI/IRQ/BRK interrupt
// sequences. Undocumented opcodes are accepted but their semantic
// effects are not modeled; they execute as no-ops. A set of common
// undocumented NOPs carry the byte and cycle counts a real chip gives
// them; every other undocumented opcode is billed as a one-byte,
// two-cycle no-op whatever its real length and timing.
//
// The core does no bus arbitration of its own. It talks to memory
// through the Bus interface, so callers can plug in a bare
// memory.Region for tests or a fully populated bus.Bus for a real
// system.
package cpu

import (
	"fmt"

	"github.com/chacovskyle/nes6502core/irq"
)

// Bus is the address space contract the CPU needs. memory.Region and
// bus.Bus both satisfy it directly.
type Bus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, val uint8)
	Read16(addr uint16) uint16
	Write16(addr uint16, val uint16)
}

// Flag bits within the P register.
const (
	FlagC uint8 = 1 << 0 // carry
	FlagZ uint8 = 1 << 1 // zero
	FlagI uint8 = 1 << 2 // interrupt disable
	FlagD uint8 = 1 << 3 // decimal (unused on the NES's 2A03, still settable)
	FlagB uint8 = 1 << 4 // break, only meaningful in the byte pushed to the stack
	FlagU uint8 = 1 << 5 // unused, always reads 1
	FlagV uint8 = 1 << 6 // overflow
	FlagN uint8 = 1 << 7 // negative
)

// Addressing mode taken by the instruction currently resolved on the
// chip. Exported so a disassembler or debugger can inspect it.
type Addressing int

const (
	Imp Addressing = iota
	Acc
	Imm
	Zp
	ZpX
	ZpY
	Rel
	Abs
	AbsX
	AbsY
	Ind
	IndX
	IndY
)

func (a Addressing) String() string {
	switch a {
	case Imp:
		return "IMP"
	case Acc:
		return "ACC"
	case Imm:
		return "IMM"
	case Zp:
		return "ZP"
	case ZpX:
		return "ZPX"
	case ZpY:
		return "ZPY"
	case Rel:
		return "REL"
	case Abs:
		return "ABS"
	case AbsX:
		return "ABX"
	case AbsY:
		return "ABY"
	case Ind:
		return "IND"
	case IndX:
		return "IZX"
	case IndY:
		return "IZY"
	}
	return "???"
}

const (
	stackPage    uint16 = 0x0100
	nmiVector    uint16 = 0xFFFA
	resetVector  uint16 = 0xFFFC
	irqVector    uint16 = 0xFFFE
	stackResetSP uint8  = 0xFD
)

// InvalidCPUState describes a chip found in a state an operation can't
// act on. No function in this package returns it.
type InvalidCPUState struct {
	Reason string
}

func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// Chip is a single 6502 core. Zero value is not ready to run; use New.
type Chip struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	P  uint8
	PC uint16

	bus Bus

	// NMILine and IRQLine are optional level-triggered sources polled
	// on each Clock call that fetches (idle ticks do not poll them), in
	// addition to the edge-triggered NMI/IRQ
	// entry points below. Either may be left nil.
	NMILine irq.Sender
	IRQLine irq.Sender

	nmiPending bool
	irqPending bool

	// cycles is the number of idle ticks remaining before the chip will
	// fetch its next opcode. The whole instruction executes on its
	// first tick; the rest of its ticks are idle,
	// matching real silicon's external cycle count without modeling
	// the internal microarchitecture cycle by cycle.
	cycles uint16

	addressing Addressing
	address    uint16
	penalty    bool

	opcode uint8
}

// New returns a Chip wired to bus, with registers at their post-reset
// values. Callers that want power-on-reset semantics (PC loaded from
// the reset vector) should call Reset immediately after.
func New(bus Bus) *Chip {
	return &Chip{
		bus: bus,
		SP:  stackResetSP,
		P:   FlagU | FlagI,
	}
}

// Bus returns the address space this chip is attached to.
func (c *Chip) Bus() Bus { return c.bus }

// PageCrossed reports whether the most recently resolved addressing
// mode crossed a page boundary forming its effective address.
func (c *Chip) PageCrossed() bool { return c.penalty }

// Addressing returns the addressing mode of the instruction last
// decoded by Clock.
func (c *Chip) Addressing() Addressing { return c.addressing }

// Flag reports whether the named bit is set in P. Exported for
// diagnostics and tests outside the package; instruction bodies use
// the unexported getFlag alias below.
func (c *Chip) Flag(flag uint8) bool {
	return c.P&flag != 0
}

// getFlag is the in-package alias instruction bodies were written
// against before Flag was exported.
func (c *Chip) getFlag(flag uint8) bool {
	return c.Flag(flag)
}

// setFlag sets or clears the named bit in P.
func (c *Chip) setFlag(flag uint8, v bool) {
	if v {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

// setZN sets the Z and N flags from v, the common tail of most
// load/arithmetic/logic instructions.
func (c *Chip) setZN(v uint8) {
	c.setFlag(FlagZ, v == 0)
	c.setFlag(FlagN, v&0x80 != 0)
}

func (c *Chip) push8(v uint8) {
	c.bus.Write8(stackPage+uint16(c.SP), v)
	c.SP--
}

func (c *Chip) pop8() uint8 {
	c.SP++
	return c.bus.Read8(stackPage + uint16(c.SP))
}

func (c *Chip) push16(v uint16) {
	c.push8(uint8(v >> 8))
	c.push8(uint8(v & 0xFF))
}

func (c *Chip) pop16() uint16 {
	lo := uint16(c.pop8())
	hi := uint16(c.pop8())
	return hi<<8 | lo
}

// read16Bug reproduces the indirect-JMP hardware bug: when the low
// byte of the pointer sits at the end of a page, the high byte is
// fetched from the start of the SAME page rather than the next one.
func (c *Chip) read16Bug(ptr uint16) uint16 {
	lo := c.bus.Read8(ptr)
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := c.bus.Read8(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

// operand returns the value an instruction should operate on given
// the addressing mode just resolved: the accumulator itself for Acc,
// otherwise whatever is stored at the resolved address.
func (c *Chip) operand() uint8 {
	if c.addressing == Acc {
		return c.A
	}
	return c.bus.Read8(c.address)
}

// setOperand writes v back to wherever operand() read from.
func (c *Chip) setOperand(v uint8) {
	if c.addressing == Acc {
		c.A = v
		return
	}
	c.bus.Write8(c.address, v)
}

// Reset loads PC from the reset vector and puts the chip into its
// documented post-reset register state: A, X and Y cleared, P at 0x24
// (I set, U set, everything else clear) and SP at 0xFD. Takes the
// canonical 7 cycles.
func (c *Chip) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = stackResetSP
	c.P = FlagU | FlagI
	c.PC = c.bus.Read16(resetVector)
	c.cycles = 7
	c.nmiPending = false
	c.irqPending = false
}

// NMI requests a non-maskable interrupt. Recognized on the next Clock
// call once any in-flight instruction finishes.
func (c *Chip) NMI() {
	c.nmiPending = true
}

// IRQ requests a maskable interrupt. Ignored if the I flag is set,
// recognized on the next Clock call once any in-flight instruction
// finishes.
func (c *Chip) IRQ() {
	if c.getFlag(FlagI) {
		return
	}
	c.irqPending = true
}

// serviceInterrupt runs the push-PC/push-P/load-vector sequence used
// by NMI and IRQ (the BRK instruction runs its own copy in brk). brk
// selects whether the B flag is set in the byte pushed to the stack.
func (c *Chip) serviceInterrupt(vector uint16, brk bool) {
	c.push16(c.PC)
	pushed := c.P | FlagU
	if brk {
		pushed |= FlagB
	} else {
		pushed &^= FlagB
	}
	c.push8(pushed)
	c.setFlag(FlagI, true)
	c.PC = c.bus.Read16(vector)
	c.cycles = 7
}

// Clock advances the chip by one tick. When force is true, the chip
// decodes and executes the next instruction immediately regardless of
// how many idle ticks remain, which is how Reset/NMI/IRQ kick off a
// fresh sequence. Returns true on the tick that an instruction (or
// interrupt sequence) actually ran, false on an idle tick.
func (c *Chip) Clock(force bool) bool {
	if c.cycles > 0 && !force {
		c.cycles--
		return false
	}

	if c.nmiPending {
		c.nmiPending = false
		c.serviceInterrupt(nmiVector, false)
		return true
	}
	if c.NMILine != nil && c.NMILine.Raised() {
		c.serviceInterrupt(nmiVector, false)
		return true
	}
	if (c.irqPending || (c.IRQLine != nil && c.IRQLine.Raised())) && !c.getFlag(FlagI) {
		c.irqPending = false
		c.serviceInterrupt(irqVector, false)
		return true
	}

	c.opcode = c.bus.Read8(c.PC)
	entry := opcodeTable[c.opcode]

	entry.resolve(c)
	c.cycles = uint16(entry.cycles)
	if c.penalty && entry.pagePenalty {
		c.cycles++
	}
	c.PC += uint16(entry.bytes)

	entry.execute(c)

	c.cycles--
	return true
}
