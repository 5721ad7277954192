package cpu

import "nes6502/bus"

// The undocumented ("illegal") 2A03 opcodes required to replay the nestest
// reference log. Each is a documented operation's building block reused
// verbatim (shiftLeft, rotateRight, addWithCarry, ...), composed the way
// real 6502 silicon happens to compose them: as two micro-ops sharing one
// read-modify-write memory cycle.

// opLAX loads A and X with the same memory byte.
func opLAX(c *Processor, b *bus.Bus) {
	v := c.source()
	c.A = v
	c.X = v
	c.setZN(v)
}

// opSAX stores A AND X to memory. It touches no flags.
func opSAX(c *Processor, b *bus.Bus) {
	c.storeResult(b, c.A&c.X)
}

// opDCP decrements memory by one, then compares A against the new value.
func opDCP(c *Processor, b *bus.Bus) {
	result := c.source() - 1
	c.storeResult(b, result)
	c.setCompareFlags(c.A, result)
}

// opISC increments memory by one, then performs SBC against the new value.
func opISC(c *Processor, b *bus.Bus) {
	result := c.source() + 1
	c.storeResult(b, result)
	c.addWithCarry(result ^ 0xFF)
}

// opSLO shifts memory left, then ORs A with the shifted value.
func opSLO(c *Processor, b *bus.Bus) {
	result := shiftLeft(c, c.source())
	c.storeResult(b, result)
	c.A |= result
	c.setZN(c.A)
}

// opRLA rotates memory left, then ANDs A with the rotated value.
func opRLA(c *Processor, b *bus.Bus) {
	result := rotateLeft(c, c.source())
	c.storeResult(b, result)
	c.A &= result
	c.setZN(c.A)
}

// opSRE shifts memory right, then XORs A with the shifted value.
func opSRE(c *Processor, b *bus.Bus) {
	result := shiftRight(c, c.source())
	c.storeResult(b, result)
	c.A ^= result
	c.setZN(c.A)
}

// opRRA rotates memory right, then performs ADC against the rotated value.
func opRRA(c *Processor, b *bus.Bus) {
	result := rotateRight(c, c.source())
	c.storeResult(b, result)
	c.addWithCarry(result)
}
