package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nes6502/bus"
)

func TestLoadRawWrapsAt16Bits(t *testing.T) {
	b := bus.New()
	LoadRaw(b, []byte{0x11, 0x22, 0x33}, 0xFFFF)

	assert.Equal(t, byte(0x11), b.Read(0xFFFF))
	assert.Equal(t, byte(0x22), b.Read(0x0000))
	assert.Equal(t, byte(0x33), b.Read(0x0001))
}

func TestLoadMirroredRepeatsAcrossBothHalves(t *testing.T) {
	prg := make([]byte, 16*1024)
	prg[0] = 0xEA
	prg[len(prg)-1] = 0x4C

	b := bus.New()
	LoadMirrored(b, prg)

	assert.Equal(t, byte(0xEA), b.Read(0x8000))
	assert.Equal(t, byte(0xEA), b.Read(0xC000))
	assert.Equal(t, byte(0x4C), b.Read(0xBFFF))
	assert.Equal(t, byte(0x4C), b.Read(0xFFFF))
}

func buildINES(prgBanks int, trainer bool) []byte {
	header := make([]byte, iNESHeaderLen)
	header[0], header[1], header[2], header[3] = 'N', 'E', 'S', 0x1A
	header[4] = byte(prgBanks)
	if trainer {
		header[6] = 1 << 2
	}

	rom := header
	if trainer {
		rom = append(rom, make([]byte, 512)...)
	}
	prg := make([]byte, prgBanks*prgBankSize)
	for i := range prg {
		prg[i] = byte(i/prgBankSize + 1) // bank k holds k+1, never zero
	}
	return append(rom, prg...)
}

func TestLoadINESSingleBankIsMirrored(t *testing.T) {
	rom := buildINES(1, false)
	b := bus.New()

	err := LoadINES(b, rom)

	assert.NoError(t, err)
	assert.Equal(t, b.Read(0x8000), b.Read(0xC000))
	assert.Equal(t, byte(1), b.Read(0x8000))
}

func TestLoadINESDoubleBankFillsLinearly(t *testing.T) {
	rom := buildINES(2, false)
	b := bus.New()

	err := LoadINES(b, rom)

	assert.NoError(t, err)
	assert.Equal(t, byte(1), b.Read(0x8000))
	assert.NotEqual(t, b.Read(0x8000), b.Read(0xC000))
}

func TestLoadINESSkipsTrainer(t *testing.T) {
	rom := buildINES(1, true)
	b := bus.New()

	assert.NoError(t, LoadINES(b, rom))
	assert.Equal(t, byte(1), b.Read(0x8000))
}

func TestLoadINESRejectsUnsupportedBankCount(t *testing.T) {
	rom := buildINES(4, false)
	b := bus.New()

	err := LoadINES(b, rom)

	var unsupported ErrUnsupportedPRGSize
	assert.ErrorAs(t, err, &unsupported)
	assert.Equal(t, 4, unsupported.Banks)
}

func TestLoadINESRejectsBadMagic(t *testing.T) {
	rom := buildINES(1, false)
	rom[0] = 'X'
	b := bus.New()

	assert.Error(t, LoadINES(b, rom))
}
