package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleLine = "C000  4C F5 C5  JMP $C5F5                      A:00 X:00 Y:00 P:24 SP:FD CYC:0"

func TestParseLineExtractsAllFields(t *testing.T) {
	line, ok := ParseLine(sampleLine)

	assert.True(t, ok)
	assert.Equal(t, uint16(0xC000), line.PC)
	assert.Equal(t, byte(0x00), line.A)
	assert.Equal(t, byte(0x00), line.X)
	assert.Equal(t, byte(0x00), line.Y)
	assert.Equal(t, byte(0x24), line.P)
	assert.Equal(t, byte(0xFD), line.SP)
	assert.Equal(t, uint32(0), line.CYC)
}

func TestParseLineRejectsBlankLine(t *testing.T) {
	_, ok := ParseLine("")
	assert.False(t, ok)
}

func TestParseLineRejectsMissingFields(t *testing.T) {
	_, ok := ParseLine("C000  4C F5 C5  JMP $C5F5")
	assert.False(t, ok)
}

func TestDiffReportsNoMismatchOnIdenticalLines(t *testing.T) {
	line, ok := ParseLine(sampleLine)
	assert.True(t, ok)

	assert.Empty(t, Diff(line, line))
}

func TestDiffReportsEachMismatchingField(t *testing.T) {
	want, _ := ParseLine(sampleLine)
	got := want
	got.A = 0x42
	got.PC = 0xC005

	diffs := Diff(got, want)

	assert.NotEmpty(t, diffs)
}
