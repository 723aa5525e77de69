package bitfield

import (
	"fmt"

	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/format"
)

// MaxWidth is the widest field the engines can read or write.
const MaxWidth = 64

// Engine reads and writes bit fields in a byte slice.
type Engine interface {
	// Get returns the width-bit field starting at bit start.
	Get(buf []byte, start, width int) uint64

	// Set stores the low width bits of value at bit start, leaving every other bit untouched.
	Set(buf []byte, start int, value uint64, width int)

	// Type identifies the engine.
	Type() format.EngineType
}

var (
	referenceEngine Engine = Reference{}
	wordEngine      Engine = Word{}
)

// ForType returns the engine for the given type.
//
// Returns:
//   - Engine: The engine instance
//   - error: ErrInvalidEngine if the type is unknown
func ForType(t format.EngineType) (Engine, error) {
	switch t {
	case format.EngineReference:
		return referenceEngine, nil
	case format.EngineWord:
		return wordEngine, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidEngine, t)
	}
}

// ByteCount returns the number of bytes needed to hold bits bits.
func ByteCount(bits int) int {
	return (bits + 7) / 8
}

// Get reads a width-bit field at bit start using the Word engine.
func Get(buf []byte, start, width int) uint64 {
	return Word{}.Get(buf, start, width)
}

// Set writes value into the width-bit field at bit start using the Word engine.
func Set(buf []byte, start int, value uint64, width int) {
	Word{}.Set(buf, start, value, width)
}

// lowMask returns a mask with the low width bits set.
func lowMask(width int) uint64 {
	if width >= MaxWidth {
		return ^uint64(0)
	}

	return (uint64(1) << uint(width)) - 1
}
