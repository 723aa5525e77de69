package bitfield

import (
	"encoding/binary"

	"github.com/PiRSquared17/glu-genetics/format"
)

// Word is the word-at-a-time engine. A field is read by loading the (at most eight) bytes
// that cover it as one big-endian uint64 and shifting it into place. Fields that would
// need a ninth byte, which only happens for widths above 57, use the Reference loop.
type Word struct{}

var _ Engine = Word{}

// Type returns format.EngineWord.
func (Word) Type() format.EngineType {
	return format.EngineWord
}

// Get reads a width-bit field starting at bit start.
func (Word) Get(buf []byte, start, width int) uint64 {
	if width == 0 {
		return 0
	}

	i := start >> 3
	shift := uint(start & 7)
	if int(shift)+width > MaxWidth {
		return Reference{}.Get(buf, start, width)
	}

	w := loadWord(buf, i)

	return (w << shift) >> uint(MaxWidth-width)
}

// Set writes the low width bits of value at bit start.
func (Word) Set(buf []byte, start int, value uint64, width int) {
	if width == 0 {
		return
	}

	i := start >> 3
	shift := uint(start & 7)
	if int(shift)+width > MaxWidth {
		Reference{}.Set(buf, start, value, width)
		return
	}

	// field mask and value, both aligned so that bit 63 is the first bit of byte i
	tail := uint(MaxWidth-width) - shift
	mask := lowMask(width) << tail
	v := (value & lowMask(width)) << tail

	if i+8 <= len(buf) {
		w := binary.BigEndian.Uint64(buf[i:])
		binary.BigEndian.PutUint64(buf[i:], (w&^mask)|v)

		return
	}

	n := (int(shift) + width + 7) / 8
	for k := 0; k < n; k++ {
		s := uint(56 - 8*k)
		m := byte(mask >> s)
		buf[i+k] = (buf[i+k] &^ m) | byte(v>>s)
	}
}

// loadWord returns the eight bytes starting at buf[i] as a big-endian uint64, padding
// with zeros past the end of buf.
func loadWord(buf []byte, i int) uint64 {
	if i+8 <= len(buf) {
		return binary.BigEndian.Uint64(buf[i:])
	}

	var w uint64
	for k := 0; i+k < len(buf); k++ {
		w |= uint64(buf[i+k]) << uint(56-8*k)
	}

	return w
}
