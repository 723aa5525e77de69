package genoarray

import (
	"fmt"

	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/marker"
)

// Concordance compares two genotype sequences position by position.
//
// A position is compared when both genotypes are called. It is concordant when both are
// the same interned genotype, so genotypes of different models never agree.
//
// Returns:
//   - concordant: number of compared positions holding the same genotype
//   - comparisons: number of compared positions
//   - err: errs.ErrLengthMismatch if the sequences differ in length
func Concordance(a, b []*marker.Genotype) (concordant, comparisons int, err error) {
	if len(a) != len(b) {
		return 0, 0, fmt.Errorf("%w: %d and %d genotypes", errs.ErrLengthMismatch, len(a), len(b))
	}

	for i := range a {
		if !a[i].Called() || !b[i].Called() {
			continue
		}
		comparisons++
		if a[i] == b[i] {
			concordant++
		}
	}

	return concordant, comparisons, nil
}

// Concordance compares a with other. Arrays sharing a descriptor are compared by the
// descriptor's backend without decoding; otherwise both are decoded and compared as
// genotype sequences.
func (a *Array) Concordance(other *Array) (concordant, comparisons int, err error) {
	if a.Len() != other.Len() {
		return 0, 0, fmt.Errorf("%w: %d and %d positions", errs.ErrLengthMismatch, a.Len(), other.Len())
	}

	if a.d == other.d {
		concordant, comparisons = a.d.backend.Concordance(a.d, a.data, other.data)
		return concordant, comparisons, nil
	}

	return Concordance(a.Genotypes(), other.Genotypes())
}
