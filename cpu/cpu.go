// Package cpu implements the MOS Technology 6502 / Ricoh 2A03 microprocessor,
// as used in the NES.
package cpu

import (
	"fmt"

	"nes6502/bus"
)

// The Processor has no memory of its own beyond its register file. Instead,
// it interfaces with a Bus, supplied fresh to every Step call, that provides
// memory.
type Processor struct {
	A byte // Accumulator
	X byte
	Y byte

	// S is the stack pointer. The true stack address is always 0x0100 | S.
	// Stack instructions (PHA, PLA, PHP, PLP, JSR, RTS, BRK, RTI) operate
	// exclusively on page one.
	S byte

	// PC is the 16-bit program counter; it increments (almost)
	// continuously and wraps within the 16-bit address space.
	PC uint16

	flags flags

	// Cycles is the number of cycles the most recently retired
	// instruction consumed, including any dynamic penalty. It is not a
	// running total; a driver reports it to a video.Clock after every
	// Step.
	Cycles byte

	// PageCrossed reports whether the most recently retired instruction
	// incurred a page-crossing penalty (either a read-class addressing
	// mode or a taken branch).
	PageCrossed bool

	// addr and operand are the effective address and fetched operand
	// value for the instruction currently executing; useAccumulator
	// records whether the operand source/sink is the Accumulator rather
	// than a Bus address. decode sets useAccumulator on every Step; it
	// sets addr and operand for every mode except Implied and Accumulator
	// (Relative sets addr only), leaving them unchanged otherwise.
	addr           uint16
	operand        byte
	useAccumulator bool
}

// NewProcessor returns a Processor in the generic reset state: A=X=Y=0,
// S=0xFF, PC=0x8000, P=0x00.
func NewProcessor() *Processor {
	return &Processor{
		S:  0xFF,
		PC: 0x8000,
	}
}

// NewNESProcessor returns a Processor in the 2A03/nestest reset state:
// A=X=Y=0, S=0xFD, PC=0xC000, P=0x24 (only I and U set). This is the profile
// the published nestest reference log expects.
func NewNESProcessor() *Processor {
	p := &Processor{
		S:  0xFD,
		PC: 0xC000,
	}
	p.flags.interruptDisable = true
	return p
}

// IllegalOpcodeError reports that Step encountered a byte outside the
// documented and required-illegal opcode sets.
type IllegalOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode $%02X at PC=$%04X", e.Opcode, e.PC)
}

// P returns the status register as observed from outside the CPU: bit U is
// always 1, and bit B reads as 0 (B only ever appears in pushed copies of
// P, never in the live register).
func (c *Processor) P() byte {
	return c.flags.compose(false)
}

// Step fetches, decodes, and executes exactly one instruction, publishing
// its cycle cost in Cycles. An unknown opcode is the only failure mode; it
// returns an *IllegalOpcodeError and leaves the Processor unmodified (PC
// still points at the opcode byte).
func (c *Processor) Step(b *bus.Bus) error {
	opcodePC := c.PC
	opcode := b.Read(c.PC)
	entry := opcodeTable[opcode]
	if entry.op == nil {
		return &IllegalOpcodeError{Opcode: opcode, PC: opcodePC}
	}

	c.PageCrossed = false
	c.Cycles = baseCycles[opcode]
	c.PC++

	c.decode(b, entry.mode, entry.access)
	entry.op(c, b)

	return nil
}

// Trace renders "PC A X Y P S" as uppercase hex, space-separated, matching
// the column layout of the published nestest reference log.
func (c *Processor) Trace() string {
	return fmt.Sprintf("%04X %02X %02X %02X %02X %02X", c.PC, c.A, c.X, c.Y, c.P(), c.S)
}

// source returns the byte an instruction should operate on: the Accumulator
// for Accumulator-mode instructions, or the operand fetched by decode.
func (c *Processor) source() byte {
	if c.useAccumulator {
		return c.A
	}
	return c.operand
}

// storeResult writes an instruction's result back to wherever source read
// it from.
func (c *Processor) storeResult(b *bus.Bus, value byte) {
	if c.useAccumulator {
		c.A = value
		return
	}
	b.Write(c.addr, value)
}

func (c *Processor) setZN(v byte) {
	c.flags.zero = v == 0
	c.flags.negative = v&0x80 != 0
}

func (c *Processor) setCompareFlags(register byte, operand byte) {
	c.flags.carry = register >= operand
	result := register - operand
	c.flags.zero = result == 0
	c.flags.negative = result&0x80 != 0
}
