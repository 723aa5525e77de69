package bitfield

import "github.com/PiRSquared17/glu-genetics/format"

// Reference is the bit-at-a-time engine. It is slow but obviously correct, and serves as
// the oracle for the Word engine.
type Reference struct{}

var _ Engine = Reference{}

// Type returns format.EngineReference.
func (Reference) Type() format.EngineType {
	return format.EngineReference
}

// Get reads a width-bit field starting at bit start, most significant bit first.
func (Reference) Get(buf []byte, start, width int) uint64 {
	var v uint64
	for k := 0; k < width; k++ {
		p := start + k
		v <<= 1
		if buf[p>>3]&(0x80>>uint(p&7)) != 0 {
			v |= 1
		}
	}

	return v
}

// Set writes the low width bits of value at bit start, most significant bit first.
func (Reference) Set(buf []byte, start int, value uint64, width int) {
	for k := 0; k < width; k++ {
		p := start + k
		mask := byte(0x80 >> uint(p&7))
		if (value>>uint(width-1-k))&1 != 0 {
			buf[p>>3] |= mask
		} else {
			buf[p>>3] &^= mask
		}
	}
}
