// Package bus implements the address-space aggregation the CPU reads and
// writes through. A Bus holds no memory of its own; it routes requests to
// the first connected Device whose Validate8 predicate accepts the
// address.
package bus

// Device is the contract a Bus requires of anything connected to it: a
// memory.Region, a register block, a mapper, a PPU/APU register window,
// etc. Mirror is optional; most devices that don't mirror can embed
// memory.Region, whose Mirror method already satisfies it, or leave it a
// no-op.
type Device interface {
	// Read8 returns the byte stored at addr.
	Read8(addr uint16) uint8
	// Write8 stores val at addr. Implementations for read-only devices
	// (ROM) are expected to make this a no-op.
	Write8(addr uint16, val uint8)
	// Validate8 reports whether this device claims addr.
	Validate8(addr uint16) bool
	// Mirror registers count additional mirror windows starting at base.
	// Devices that don't support mirroring may leave this a no-op.
	Mirror(base uint16, count int)
}

// Bus aggregates devices in connection order and dispatches every
// read/write to the first device whose Validate8 accepts the address.
// Devices are expected not to overlap if deterministic routing matters;
// the bus does not enforce this.
type Bus struct {
	devices []Device
}

// New returns an empty Bus with no devices connected.
func New() *Bus {
	return &Bus{}
}

// Connect attaches a device to the bus. Devices are tried in the order
// they were connected.
func (b *Bus) Connect(d Device) {
	b.devices = append(b.devices, d)
}

// find returns the first connected device that validates addr, or nil.
func (b *Bus) find(addr uint16) Device {
	for _, d := range b.devices {
		if d.Validate8(addr) {
			return d
		}
	}
	return nil
}

// Read8 returns the byte at addr from the first device that claims it,
// or 0x00 if no device does.
func (b *Bus) Read8(addr uint16) uint8 {
	if d := b.find(addr); d != nil {
		return d.Read8(addr)
	}
	return 0x00
}

// Write8 stores val at addr on the first device that claims it. Writes
// to unrouted addresses are silently dropped.
func (b *Bus) Write8(addr uint16, val uint8) {
	if d := b.find(addr); d != nil {
		d.Write8(addr, val)
	}
}

// Read16 performs two 8 bit reads through the bus at addr and addr+1 and
// combines them little-endian. This matches hardware: a 16 bit access
// may legitimately straddle two different devices.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 performs two 8 bit writes through the bus at addr and addr+1,
// little-endian.
func (b *Bus) Write16(addr uint16, val uint16) {
	b.Write8(addr, uint8(val&0xFF))
	b.Write8(addr+1, uint8(val>>8))
}

// Validate8 reports whether any connected device claims addr.
func (b *Bus) Validate8(addr uint16) bool {
	return b.find(addr) != nil
}

// Validate16 reports whether both addr and addr+1 are claimed by some
// connected device (not necessarily the same one).
func (b *Bus) Validate16(addr uint16) bool {
	return b.Validate8(addr) && b.Validate8(addr+1)
}
