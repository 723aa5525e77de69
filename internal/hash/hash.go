// Package hash provides the checksums and fingerprints used to identify marker models and
// to protect persisted blobs.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-farm"
)

// Checksum computes the xxHash64 of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Key computes a farm fingerprint of an ordered list of strings. Each part is length
// prefixed so that ["ab", "c"] and ["a", "bc"] produce different keys.
func Key(parts []string) uint64 {
	size := 0
	for _, p := range parts {
		size += binary.MaxVarintLen64 + len(p)
	}
	buf := make([]byte, 0, size)
	for _, p := range parts {
		buf = binary.AppendUvarint(buf, uint64(len(p)))
		buf = append(buf, p...)
	}

	return farm.Fingerprint64(buf)
}

// Digest accumulates a streaming xxHash64 over length-prefixed fields.
type Digest struct {
	d       *xxhash.Digest
	scratch [binary.MaxVarintLen64]byte
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteString adds a length-prefixed string to the digest.
func (d *Digest) WriteString(s string) {
	d.WriteUint(uint64(len(s)))
	_, _ = d.d.WriteString(s)
}

// WriteUint adds an unsigned integer to the digest.
func (d *Digest) WriteUint(v uint64) {
	n := binary.PutUvarint(d.scratch[:], v)
	_, _ = d.d.Write(d.scratch[:n])
}

// WriteBool adds a boolean to the digest.
func (d *Digest) WriteBool(v bool) {
	if v {
		d.WriteUint(1)
	} else {
		d.WriteUint(0)
	}
}

// Sum64 returns the current digest value.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
