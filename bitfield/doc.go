// Package bitfield reads and writes unsigned integer fields of arbitrary width at arbitrary
// bit offsets inside a byte slice.
//
// Bits are numbered most-significant-bit first: bit 0 of a buffer is the high bit of byte 0,
// bit 7 is the low bit of byte 0 and bit 8 is the high bit of byte 1. A field of width w
// starting at bit s occupies bits s..s+w-1, with the value's most significant bit at s.
// Fields may straddle byte boundaries, and writing a field never alters bits outside it.
//
// Two engines implement the same contract and always produce identical buffers:
//
//   - Reference walks the field one bit at a time.
//   - Word loads the bytes covering the field as a single big-endian uint64 and shifts.
//
// The package-level Get and Set use the Word engine.
//
// # Usage
//
//	buf := make([]byte, bitfield.ByteCount(10))
//	bitfield.Set(buf, 3, 0b101, 3)
//	v := bitfield.Get(buf, 3, 3) // 5
//
// Callers must guarantee that start+width does not exceed 8*len(buf). Values wider than
// width are truncated to their low width bits.
package bitfield
