package cpu

import "nes6502/bus"

// An AddressingMode tells the Processor where to find the byte an
// instruction operates on. There are 13 modes in total.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator

	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY

	Relative

	Absolute
	AbsoluteX
	AbsoluteY

	Indirect // JMP only
	IndirectX
	IndirectY
)

// AccessKind records how an instruction uses the byte its addressing mode
// resolves, which determines whether a page-crossing penalty applies.
// Reads pay the penalty on AbsoluteX/AbsoluteY/IndirectY; writes and
// read-modify-write instructions never do, even though they share the same
// addressing mode.
type AccessKind int

const (
	AccessRead AccessKind = iota
	AccessWrite
	AccessRMW
)

// decode resolves the effective address for mode, advances PC past the
// instruction's operand bytes, and (for AccessRead) applies the dynamic
// page-crossing cycle penalty. It populates c.addr, c.operand, and
// c.useAccumulator for the instruction about to run.
func (c *Processor) decode(b *bus.Bus, mode AddressingMode, access AccessKind) {
	c.useAccumulator = false

	switch mode {
	case Implied:
		return

	case Accumulator:
		c.useAccumulator = true
		return

	case Immediate:
		c.addr = c.PC
		c.PC++

	case ZeroPage:
		c.addr = uint16(b.Read(c.PC))
		c.PC++

	case ZeroPageX:
		c.addr = uint16(b.Read(c.PC) + c.X)
		c.PC++

	case ZeroPageY:
		c.addr = uint16(b.Read(c.PC) + c.Y)
		c.PC++

	case Relative:
		offset := b.ReadSigned(c.PC)
		c.PC++
		c.addr = uint16(int32(c.PC) + int32(offset))

	case Absolute:
		c.addr = b.ReadWord(c.PC)
		c.PC += 2

	case AbsoluteX:
		base := b.ReadWord(c.PC)
		c.PC += 2
		c.addr = base + uint16(c.X)
		c.maybePenalize(access, base, c.addr)

	case AbsoluteY:
		base := b.ReadWord(c.PC)
		c.PC += 2
		c.addr = base + uint16(c.Y)
		c.maybePenalize(access, base, c.addr)

	case Indirect:
		ptr := b.ReadWord(c.PC)
		c.PC += 2
		c.addr = readIndirectWithPageWrapBug(b, ptr)

	case IndirectX:
		zp := b.Read(c.PC)
		c.PC++
		ptr := uint16(zp + c.X)
		lo := b.Read(ptr & 0x00FF)
		hi := b.Read((ptr + 1) & 0x00FF)
		c.addr = uint16(hi)<<8 | uint16(lo)

	case IndirectY:
		zp := b.Read(c.PC)
		c.PC++
		lo := b.Read(uint16(zp) & 0x00FF)
		hi := b.Read(uint16(zp+1) & 0x00FF)
		base := uint16(hi)<<8 | uint16(lo)
		c.addr = base + uint16(c.Y)
		c.maybePenalize(access, base, c.addr)
	}

	if mode != Relative {
		c.operand = b.Read(c.addr)
	}
}

// maybePenalize adds the page-crossing cycle, and records PageCrossed, when
// access is a read and the effective address lands on a different page
// than the unindexed base. Writes and read-modify-write accesses never pay
// this penalty even though they share the same addressing computation.
func (c *Processor) maybePenalize(access AccessKind, base uint16, effective uint16) {
	if access != AccessRead {
		return
	}
	if base&0xFF00 != effective&0xFF00 {
		c.Cycles++
		c.PageCrossed = true
	}
}

// readIndirectWithPageWrapBug reproduces the 6502's indirect-JMP bug: when
// the low byte of ptr is 0xFF, the high byte is read from the start of the
// same page instead of the next page.
func readIndirectWithPageWrapBug(b *bus.Bus, ptr uint16) uint16 {
	lo := b.Read(ptr)
	var hi byte
	if ptr&0x00FF == 0x00FF {
		hi = b.Read(ptr & 0xFF00)
	} else {
		hi = b.Read(ptr + 1)
	}
	return uint16(hi)<<8 | uint16(lo)
}
