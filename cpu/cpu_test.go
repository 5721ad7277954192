package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nes6502/bus"
)

func newTestProcessor() (*Processor, *bus.Bus) {
	c := NewProcessor()
	c.PC = 0x0200
	return c, bus.New()
}

func TestLDAImmediate(t *testing.T) {
	c, b := newTestProcessor()
	b.Write(0x0200, 0xA9) // LDA #$42
	b.Write(0x0201, 0x42)

	err := c.Step(b)

	assert.NoError(t, err)
	assert.Equal(t, byte(0x42), c.A)
	assert.False(t, c.flags.zero)
	assert.False(t, c.flags.negative)
	assert.Equal(t, byte(2), c.Cycles)
}

func TestLDAZeroSetsZeroFlag(t *testing.T) {
	c, b := newTestProcessor()
	b.Write(0x0200, 0xA9)
	b.Write(0x0201, 0x00)

	assert.NoError(t, c.Step(b))
	assert.True(t, c.flags.zero)
	assert.False(t, c.flags.negative)
}

func TestLDANegativeSetsNegativeFlag(t *testing.T) {
	c, b := newTestProcessor()
	b.Write(0x0200, 0xA9)
	b.Write(0x0201, 0x80)

	assert.NoError(t, c.Step(b))
	assert.True(t, c.flags.negative)
}

func TestADCSetsOverflowOnSignedWrap(t *testing.T) {
	c, b := newTestProcessor()
	c.A = 0x50
	b.Write(0x0200, 0x69) // ADC #$50
	b.Write(0x0201, 0x50)

	assert.NoError(t, c.Step(b))
	assert.Equal(t, byte(0xA0), c.A)
	assert.True(t, c.flags.overflow)
	assert.True(t, c.flags.negative)
	assert.False(t, c.flags.carry)
}

func TestSBCIsADCWithInvertedOperand(t *testing.T) {
	adc, bAdc := newTestProcessor()
	adc.A = 0x10
	adc.flags.carry = true
	bAdc.Write(0x0200, 0x69) // ADC #$F0
	bAdc.Write(0x0201, 0xF0)
	assert.NoError(t, adc.Step(bAdc))

	sbc, bSbc := newTestProcessor()
	sbc.A = 0x10
	sbc.flags.carry = true
	bSbc.Write(0x0200, 0xE9) // SBC #$0F
	bSbc.Write(0x0201, 0x0F)
	assert.NoError(t, sbc.Step(bSbc))

	assert.Equal(t, adc.A, sbc.A)
	assert.Equal(t, adc.flags, sbc.flags)
}

func TestAbsoluteXPageCrossAddsCycleOnRead(t *testing.T) {
	c, b := newTestProcessor()
	c.X = 0xFF
	b.Write(0x0200, 0xBD) // LDA $0201,X -> crosses into page 3
	b.Write(0x0201, 0x01)
	b.Write(0x0202, 0x02)
	b.Write(0x0300, 0x99)

	assert.NoError(t, c.Step(b))
	assert.Equal(t, byte(0x99), c.A)
	assert.True(t, c.PageCrossed)
	assert.Equal(t, byte(5), c.Cycles) // base 4 + 1 page-cross
}

func TestAbsoluteXStoreNeverPenalized(t *testing.T) {
	c, b := newTestProcessor()
	c.X = 0xFF
	c.A = 0x7E
	b.Write(0x0200, 0x9D) // STA $0201,X -> crosses into page 3
	b.Write(0x0201, 0x01)
	b.Write(0x0202, 0x02)

	assert.NoError(t, c.Step(b))
	assert.False(t, c.PageCrossed)
	assert.Equal(t, byte(5), c.Cycles) // base cost only, no dynamic penalty
	assert.Equal(t, byte(0x7E), b.Read(0x0300))
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, b := newTestProcessor()
	b.Write(0x0210, 0x6C) // JMP ($02FF)
	b.Write(0x0211, 0xFF)
	b.Write(0x0212, 0x02)
	b.Write(0x02FF, 0x34)  // low byte of the target
	b.Write(0x0300, 0x12)  // correct high byte; hardware never reads this
	b.Write(0x0200, 0x56)  // wrapped-to high byte, read from start of the same page
	c.PC = 0x0210

	assert.NoError(t, c.Step(b))
	assert.Equal(t, uint16(0x5634), c.PC)
}

func TestBranchTakenAcrossPageBoundary(t *testing.T) {
	c, b := newTestProcessor()
	c.PC = 0x02FD
	c.flags.carry = false
	b.Write(0x02FD, 0x90) // BCC +2 -> lands at 0x0301, crossing from page 2 into page 3
	b.Write(0x02FE, 0x02)

	assert.NoError(t, c.Step(b))
	assert.Equal(t, uint16(0x0301), c.PC)
	assert.True(t, c.PageCrossed)
	assert.Equal(t, byte(4), c.Cycles) // base 2 + taken 1 + page-cross 1
}

func TestJSRThenRTSRoundTrips(t *testing.T) {
	c, b := newTestProcessor()
	b.Write(0x0200, 0x20) // JSR $0300
	b.Write(0x0201, 0x00)
	b.Write(0x0202, 0x03)
	b.Write(0x0300, 0x60) // RTS

	assert.NoError(t, c.Step(b))
	assert.Equal(t, uint16(0x0300), c.PC)

	assert.NoError(t, c.Step(b))
	assert.Equal(t, uint16(0x0203), c.PC)
}

func TestStatusByteAlwaysHasUnusedBitSet(t *testing.T) {
	c, _ := newTestProcessor()
	assert.NotZero(t, c.P()&bitUnused)
}

func TestBRKPushesStatusWithBSetButLiveRegisterNeverShowsIt(t *testing.T) {
	c, b := newTestProcessor()
	b.Write(0x0200, 0x00) // BRK

	assert.NoError(t, c.Step(b))

	pushed := b.Read(0x0100 | uint16(c.S+1))
	assert.NotZero(t, pushed&bitB)
	assert.Zero(t, c.P()&bitB)
}

func TestUnknownOpcodeIsFatal(t *testing.T) {
	c, b := newTestProcessor()
	b.Write(0x0200, 0x02) // JAM, never implemented

	err := c.Step(b)

	var illegal *IllegalOpcodeError
	assert.ErrorAs(t, err, &illegal)
	assert.Equal(t, byte(0x02), illegal.Opcode)
}

func TestLAXLoadsBothAAndX(t *testing.T) {
	c, b := newTestProcessor()
	b.Write(0x0200, 0xA7) // LAX $10
	b.Write(0x0201, 0x10)
	b.Write(0x0010, 0x37)

	assert.NoError(t, c.Step(b))
	assert.Equal(t, byte(0x37), c.A)
	assert.Equal(t, byte(0x37), c.X)
}

func TestDCPDecrementsThenCompares(t *testing.T) {
	c, b := newTestProcessor()
	c.A = 0x10
	b.Write(0x0200, 0xC7) // DCP $10
	b.Write(0x0201, 0x10)
	b.Write(0x0010, 0x11)

	assert.NoError(t, c.Step(b))
	assert.Equal(t, byte(0x10), b.Read(0x0010))
	assert.True(t, c.flags.zero)
	assert.True(t, c.flags.carry)
}
