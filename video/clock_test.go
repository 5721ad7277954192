package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceRatio(t *testing.T) {
	c := New()
	c.Advance(7)
	assert.Equal(t, uint16(21), c.Column())
	assert.Equal(t, uint64(0), c.Scanline())
}

func TestColumnWrapsAtScanlineBoundary(t *testing.T) {
	c := New()
	// 341 dots is one full scanline; 114 cpu cycles is 342 dots.
	c.Advance(114)
	assert.Equal(t, uint16(1), c.Column())
	assert.Equal(t, uint64(1), c.Scanline())
}

func TestAdvanceAccumulatesAcrossCalls(t *testing.T) {
	c := New()
	for i := 0; i < 10; i++ {
		c.Advance(2) // 6 dots per call, 60 dots total
	}
	assert.Equal(t, uint16(60), c.Column())
	assert.Equal(t, uint64(0), c.Scanline())
}
