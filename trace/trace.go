// Package trace parses the published nestest reference log and diffs it
// against a live Processor, the mechanism the `nestest replay` command uses
// to validate cycle-for-cycle and register-for-register accuracy against
// real hardware.
package trace

import (
	"strconv"
	"strings"

	"github.com/go-test/deep"
)

// A Line is one parsed row of the nestest reference log: the CPU-visible
// state expected immediately before the instruction at PC executes, plus
// the PPU dot column the reference emulator had reached.
type Line struct {
	PC  uint16
	A   byte
	X   byte
	Y   byte
	P   byte
	SP  byte
	CYC uint32
}

// ParseLine extracts a Line from one row of nestest.log. Lines lacking any
// of the required fields (blank lines, stray header text) return ok=false
// rather than an error; callers simply skip them.
func ParseLine(raw string) (line Line, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < 4 {
		return Line{}, false
	}

	pc, err := strconv.ParseUint(trimmed[0:4], 16, 16)
	if err != nil {
		return Line{}, false
	}
	line.PC = uint16(pc)

	have := 0
	for _, field := range strings.Fields(trimmed) {
		switch {
		case strings.HasPrefix(field, "A:"):
			line.A = parseByte(field[2:])
			have++
		case strings.HasPrefix(field, "X:"):
			line.X = parseByte(field[2:])
			have++
		case strings.HasPrefix(field, "Y:"):
			line.Y = parseByte(field[2:])
			have++
		case strings.HasPrefix(field, "P:"):
			line.P = parseByte(field[2:])
			have++
		case strings.HasPrefix(field, "SP:"):
			line.SP = parseByte(field[3:])
			have++
		}
	}
	if have != 5 {
		return Line{}, false
	}

	if idx := strings.Index(trimmed, "CYC:"); idx >= 0 {
		rest := strings.Fields(trimmed[idx+len("CYC:"):])
		if len(rest) == 0 {
			return Line{}, false
		}
		cyc, err := strconv.ParseUint(rest[0], 10, 32)
		if err != nil {
			return Line{}, false
		}
		line.CYC = uint32(cyc)
		have++
	}

	return line, have == 6
}

func parseByte(s string) byte {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return byte(v)
}

// Diff reports every field where got disagrees with want, formatted for a
// test failure message. A nil/empty result means the lines are identical.
func Diff(got, want Line) []string {
	return deep.Equal(want, got)
}
