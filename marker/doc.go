// Package marker implements per-locus genotype models.
//
// A Model maps alleles and unordered allele pairs (genotypes) at one locus to dense
// integer codes. Codes are assigned in registration order and never change, and the
// number of bits needed to store any code of the model is fixed when the model is
// created. Packed genotype arrays store these codes; see package genoarray.
//
// # Alleles and genotypes
//
// Alleles are strings. The empty string, Missing, is reserved for a missing allele and is
// always allele slot 0 of every model. A Pair is a raw, possibly unordered, pair of
// alleles. Registering a Pair with Model.AddGenotype yields an interned *Genotype:
// the same model always returns the same pointer for the same unordered pair, so
// genotypes of one model can be compared with ==. Genotypes of different models are
// never equal, even when their alleles are.
//
// The Missing/Missing genotype is registered when a model is created and always has
// code 0.
//
// # Bit width
//
// The width is derived from n = max(2, maxAlleles):
//
//	m = (n+1)(n+2)/2   if hemizygous genotypes are allowed
//	m = n(n+1)/2 + 1   otherwise
//	width = ceil(log2(m))
//
// Adding an allele fails with errs.ErrBitWidthExceeded when the model would need more
// bits than it was created with.
//
// # Reproducible models
//
// Persisted packed data can only be decoded by a model with exactly the same code
// assignment. The builders FromAlleles, FromGenotypes and FromAllelesAndGenotypes sort
// their inputs before registering anything, so two models built from equivalent inputs
// are identical. FromDefinition replays a Definition taken from an existing model.
//
// # Concurrency
//
// Models are mutated only while they are being built. Once built, a model may be read
// from any number of goroutines. Mutating a model or a Registry concurrently is not safe.
package marker
