// Package glu packs biallelic and multiallelic genotypes into compact bit arrays and
// persists them as self-describing blobs.
//
// A marker.Model assigns every genotype of a locus a small integer code. A
// genoarray.Descriptor lays out one fixed-width bit field per locus, and a
// genoarray.Array stores one code per field. The blob package writes many arrays
// of one descriptor, together with their models, into a checksummed binary format.
//
// # Basic Usage
//
// Building models and packing genotypes:
//
//	import "github.com/PiRSquared17/glu-genetics"
//
//	snp, _ := glu.NewModelFromAlleles("A", "G")
//	desc, _ := glu.NewDescriptor(snp, snp, snp)
//
//	sample1, _ := glu.NewArray(desc, marker.Pair{"A", "A"}, marker.Pair{"A", "G"}, marker.MissingPair)
//	sample2, _ := glu.NewArray(desc, marker.Pair{"A", "A"}, marker.Pair{"G", "G"}, marker.Pair{"G", "G"})
//
//	concordant, comparisons, _ := glu.Concordance(sample1, sample2) // 1, 2
//
// Persisting arrays:
//
//	enc, _ := glu.NewDefaultEncoder(desc)
//	_ = enc.Add(sample1)
//	_ = enc.Add(sample2)
//	data, _ := enc.Finish()
//
//	dec, _ := glu.NewDecoder(data)
//	row, _ := dec.Row(1)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the marker, genoarray
// and blob packages for the most common use cases. For fine-grained control, use
// those packages directly.
package glu

import (
	"github.com/PiRSquared17/glu-genetics/blob"
	"github.com/PiRSquared17/glu-genetics/format"
	"github.com/PiRSquared17/glu-genetics/genoarray"
	"github.com/PiRSquared17/glu-genetics/marker"
)

var defaultEncoderOptions = []blob.EncoderOption{
	blob.WithLittleEndian(),
	blob.WithCompression(format.CompressionZstd),
}

// NewModelFromAlleles creates a model registering every genotype that can be formed from
// alleles, with as many allele slots as alleles given.
//
// Example:
//
//	snp, err := glu.NewModelFromAlleles("A", "G")
func NewModelFromAlleles(alleles ...marker.Allele) (*marker.Model, error) {
	return marker.FromAlleles(alleles)
}

// NewModelFromGenotypes creates a model from the genotypes observed at a locus. Pairs
// with one missing allele enable hemizygous genotypes.
func NewModelFromGenotypes(genotypes ...marker.Pair) (*marker.Model, error) {
	return marker.FromGenotypes(genotypes)
}

// NewDescriptor creates a descriptor with one field per model, using the word engine and
// no initial offset.
//
// Use genoarray.NewDescriptor for an initial offset or another engine.
func NewDescriptor(models ...*marker.Model) (*genoarray.Descriptor, error) {
	return genoarray.NewDescriptor(models)
}

// NewArray creates an array laid out by desc holding the given genotypes.
//
// Returns:
//   - *genoarray.Array: the packed array
//   - error: errs.ErrLengthMismatch if len(pairs) != desc.Len(), or a model error
//     when a pair cannot be registered at its position
func NewArray(desc *genoarray.Descriptor, pairs ...marker.Pair) (*genoarray.Array, error) {
	return genoarray.FromPairs(desc, pairs)
}

// Concordance counts positions where a and b carry the same genotype among those where
// both are called.
//
// Returns:
//   - concordant: the number of matching called positions
//   - comparisons: the number of positions called in both arrays
//   - error: errs.ErrLengthMismatch if the arrays differ in length
func Concordance(a, b *genoarray.Array) (concordant, comparisons int, err error) {
	return a.Concordance(b)
}

// NewEncoder creates a blob encoder for arrays laid out by desc.
//
// Available options:
//   - blob.WithLittleEndian() / blob.WithBigEndian()
//   - blob.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - blob.WithLogger(logger)
func NewEncoder(desc *genoarray.Descriptor, opts ...blob.EncoderOption) (*blob.Encoder, error) {
	return blob.NewEncoder(desc, opts...)
}

// NewDefaultEncoder creates a little-endian, Zstd-compressed blob encoder.
func NewDefaultEncoder(desc *genoarray.Descriptor) (*blob.Encoder, error) {
	return blob.NewEncoder(desc, defaultEncoderOptions...)
}

// NewDecoder decodes a blob produced by an Encoder.
func NewDecoder(data []byte, opts ...blob.DecoderOption) (*blob.Decoder, error) {
	return blob.NewDecoder(data, opts...)
}
