// Package video implements the companion dot clock that tracks the PPU's
// position from the sequence of CPU cycles the Processor reports.
package video

// DotsPerScanline is the number of dots (columns) in one scanline, per the
// NES PPU timing model.
const DotsPerScanline = 341

// dotsPerCPUCycle is the fixed 3:1 PPU:CPU clock ratio.
const dotsPerCPUCycle = 3

// A Clock is a monotonic dot counter driven exclusively by reports of CPU
// cycles consumed. It has no notion of CPU state; it only counts.
type Clock struct {
	dots uint64
}

// New returns a Clock starting at dot zero.
func New() *Clock {
	return &Clock{}
}

// Advance adds 3 dots per reported CPU cycle to the running total. Callers
// must invoke this with exactly the cycle count published by the Processor
// for each retired instruction, in retire order.
func (c *Clock) Advance(cpuCycles byte) {
	c.dots += uint64(cpuCycles) * dotsPerCPUCycle
}

// Column reports the current horizontal position within a 341-dot
// scanline, in the range [0, 340].
func (c *Clock) Column() uint16 {
	return uint16(c.dots % DotsPerScanline)
}

// Scanline reports the current scanline index. It is provided for external
// observers only; the core makes no use of it.
func (c *Clock) Scanline() uint64 {
	return c.dots / DotsPerScanline
}
