package cpu

// Each resolve function sets addressing, address and penalty on the
// chip from the operand bytes following the opcode at PC. None of
// them advance PC themselves: Clock advances PC by the whole
// instruction's byte length in one step once the opcode table entry
// is known, matching the single-shot execution model instructions run
// under.

func resolveImp(c *Chip) {
	c.addressing = Imp
	c.penalty = false
}

func resolveAcc(c *Chip) {
	c.addressing = Acc
	c.penalty = false
}

func resolveImm(c *Chip) {
	c.addressing = Imm
	c.address = c.PC + 1
	c.penalty = false
}

func resolveZp(c *Chip) {
	c.addressing = Zp
	c.address = uint16(c.bus.Read8(c.PC + 1))
	c.penalty = false
}

func resolveZpX(c *Chip) {
	c.addressing = ZpX
	c.address = uint16(c.bus.Read8(c.PC+1) + c.X)
	c.penalty = false
}

func resolveZpY(c *Chip) {
	c.addressing = ZpY
	c.address = uint16(c.bus.Read8(c.PC+1) + c.Y)
	c.penalty = false
}

func resolveRel(c *Chip) {
	offset := int8(c.bus.Read8(c.PC + 1))
	c.addressing = Rel
	c.address = uint16(int32(c.PC) + 2 + int32(offset))
	c.penalty = false
}

func resolveAbs(c *Chip) {
	c.addressing = Abs
	c.address = c.bus.Read16(c.PC + 1)
	c.penalty = false
}

func resolveAbsX(c *Chip) {
	base := c.bus.Read16(c.PC + 1)
	eff := base + uint16(c.X)
	c.addressing = AbsX
	c.address = eff
	c.penalty = base&0xFF00 != eff&0xFF00
}

func resolveAbsY(c *Chip) {
	base := c.bus.Read16(c.PC + 1)
	eff := base + uint16(c.Y)
	c.addressing = AbsY
	c.address = eff
	c.penalty = base&0xFF00 != eff&0xFF00
}

// resolveInd is JMP (ind)'s addressing mode, subject to the page-wrap
// bug: if the pointer's low byte is 0xFF the high byte wraps within
// the same page instead of crossing into the next one.
func resolveInd(c *Chip) {
	ptr := c.bus.Read16(c.PC + 1)
	c.addressing = Ind
	c.address = c.read16Bug(ptr)
	c.penalty = false
}

func resolveIndX(c *Chip) {
	zp := c.bus.Read8(c.PC+1) + c.X
	c.addressing = IndX
	c.address = c.read16Bug(uint16(zp))
	c.penalty = false
}

func resolveIndY(c *Chip) {
	zp := c.bus.Read8(c.PC + 1)
	base := c.read16Bug(uint16(zp))
	eff := base + uint16(c.Y)
	c.addressing = IndY
	c.address = eff
	c.penalty = base&0xFF00 != eff&0xFF00
}
