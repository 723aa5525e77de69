// Package errs defines the sentinel errors returned by the genotype packing packages.
//
// Errors fall into four categories that callers can test with errors.Is:
//
//   - ErrModel: a marker model rejected an allele or genotype
//   - ErrLookup: an allele, genotype or index is not known
//   - ErrLength: two sequences that must line up do not
//   - ErrReference: a genotype was used with a model that does not own it
//
// Every specific error wraps exactly one category, so
//
//	if errors.Is(err, errs.ErrModel) { ... }
//
// matches ErrBitWidthExceeded, ErrHemizygoteNotAllowed and the other model errors.
// Blob decoding errors are standalone sentinels.
package errs

import (
	"errors"
	"fmt"
)

// Error categories.
var (
	ErrModel     = errors.New("genotype model error")
	ErrLookup    = errors.New("lookup error")
	ErrLength    = errors.New("length error")
	ErrReference = errors.New("reference error")
)

// Model errors.
var (
	// ErrBitWidthExceeded is returned when adding an allele would need more bits per
	// genotype than the model was constructed with.
	ErrBitWidthExceeded = fmt.Errorf("%w: allele cannot be added to model due to fixed bit width", ErrModel)
	// ErrHemizygoteNotAllowed is returned when a hemizygous genotype is added to a model
	// built without hemizygote support.
	ErrHemizygoteNotAllowed = fmt.Errorf("%w: genotype model does not allow hemizygous genotypes", ErrModel)
	// ErrAlleleIdentity is returned when two distinct allele slots hold equal alleles.
	ErrAlleleIdentity = fmt.Errorf("%w: attempt to add non-singleton alleles", ErrModel)
	// ErrTooManyAlleles is returned by model builders when more alleles are supplied than
	// the requested maximum.
	ErrTooManyAlleles = fmt.Errorf("%w: too many alleles for model", ErrModel)
)

// Lookup errors.
var (
	ErrGenotypeNotFound = fmt.Errorf("%w: genotype not registered in model", ErrLookup)
	ErrAlleleNotFound   = fmt.Errorf("%w: allele not registered in model", ErrLookup)
	ErrIndexOutOfRange  = fmt.Errorf("%w: index out of range", ErrLookup)
)

// ErrLengthMismatch is returned when a slice assignment, a concordance computation or a
// raw buffer does not have the expected length.
var ErrLengthMismatch = fmt.Errorf("%w: length mismatch", ErrLength)

// ErrForeignGenotype is returned when writing a genotype owned by a different model than
// the one governing the target position.
var ErrForeignGenotype = fmt.Errorf("%w: genotype does not belong to the position's model", ErrReference)

// Slice and configuration errors.
var (
	ErrInvalidSlice        = errors.New("slice step cannot be zero")
	ErrInvalidMaxAlleles   = errors.New("max alleles out of range")
	ErrInvalidOffset       = errors.New("initial bit offset cannot be negative")
	ErrInvalidEngine       = errors.New("invalid bit engine type")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrNilModel            = errors.New("descriptor model cannot be nil")
	ErrDescriptorMismatch  = errors.New("array descriptor does not match encoder descriptor")
	ErrEncoderFinished     = errors.New("encoder already finished")
	ErrRowIndexOutOfRange  = errors.New("row index out of range")
	ErrAlleleTooLong       = errors.New("allele length exceeds maximum")
	ErrNoDescriptor        = errors.New("descriptor cannot be nil")
)

// Blob errors.
var (
	ErrInvalidHeaderSize    = errors.New("invalid header size")
	ErrInvalidMagicNumber   = errors.New("invalid magic number")
	ErrInvalidHeaderFlags   = errors.New("invalid header flags")
	ErrInvalidSectionOffset = errors.New("invalid section offset")
	ErrChecksumMismatch     = errors.New("blob checksum mismatch")
	ErrCorruptModelTable    = errors.New("corrupt model table")
	ErrCorruptPositionTable = errors.New("corrupt position table")
	ErrInvalidPayloadSize   = errors.New("payload size does not match row count and row size")
)
