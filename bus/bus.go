// Package bus implements the flat 64 KiB memory space the Processor fetches
// instructions and operands from.
package bus

import "nes6502/mask"

// PageSize is the number of bytes in one 256-byte page.
const PageSize = 256

// A Bus is the central (global) object that connects multiple 'hardware'
// components together, enabling communication between them. It has no
// banking or mirroring of its own; a loader is responsible for deciding how
// a program image is placed into it.
//
// In the NES, there are 2 buses: a 64 KiB one for the CPU, RAM, APU, and
// cartridge, and a much smaller one for the PPU's graphics memory. Only the
// CPU-facing bus is modeled here.
type Bus struct {
	ram [64 * 1024]byte // zeroed on init
}

// New returns a Bus with every byte initialized to zero.
func New() *Bus {
	return &Bus{}
}

// Read returns the byte stored at addr. Reading an address that was never
// written returns zero; there is no error for an uninitialized read.
func (b *Bus) Read(addr uint16) byte {
	return b.ram[addr]
}

// ReadSigned reinterprets the byte at addr as a signed 8-bit value, used by
// relative addressing.
func (b *Bus) ReadSigned(addr uint16) int8 {
	return int8(b.ram[addr])
}

// ReadWord reads a little-endian 16-bit value starting at addr. The pointer
// used for the high byte wraps within the 16-bit address space, so
// ReadWord(0xFFFF) reads its high byte from 0x0000.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return mask.Word(hi, lo)
}

// Write stores data at addr.
func (b *Bus) Write(addr uint16, data byte) {
	b.ram[addr] = data
}

// DumpPage returns a copy of the 256 bytes making up the given page, for use
// by debuggers and tests.
func (b *Bus) DumpPage(page byte) [PageSize]byte {
	var out [PageSize]byte
	start := int(page) << 8
	copy(out[:], b.ram[start:start+PageSize])
	return out
}
