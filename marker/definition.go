package marker

import (
	"fmt"

	"github.com/PiRSquared17/glu-genetics/errs"
)

// Definition is the complete, order-preserving description of a model. Replaying a
// definition with FromDefinition yields a model with identical allele slots and genotype
// codes.
type Definition struct {
	// Alleles holds the non-missing alleles in slot order, starting at slot 1.
	Alleles []Allele
	// Genotypes holds the allele slot pairs of codes 1 and up. Code 0 is always
	// Missing/Missing and is not listed.
	Genotypes       [][2]int
	AllowHemizygote bool
	MaxAlleles      int
}

// Definition returns the definition of m.
func (m *Model) Definition() Definition {
	def := Definition{
		Alleles:         make([]Allele, len(m.alleles)-1),
		Genotypes:       make([][2]int, len(m.genotypes)-1),
		AllowHemizygote: m.allowHemizygote,
		MaxAlleles:      m.maxAlleles,
	}
	copy(def.Alleles, m.alleles[1:])
	for i, g := range m.genotypes[1:] {
		def.Genotypes[i] = [2]int{g.lo, g.hi}
	}

	return def
}

// FromDefinition rebuilds a model from def, registering alleles and genotypes in the
// listed order.
//
// Returns:
//   - *Model: a model whose Definition equals def
//   - error: model errors when def does not fit its own bit width, errs.ErrAlleleIdentity
//     for repeated or missing alleles, errs.ErrAlleleNotFound for slots out of range
func FromDefinition(def Definition) (*Model, error) {
	m, err := NewModel(WithHemizygotes(def.AllowHemizygote), WithMaxAlleles(def.MaxAlleles))
	if err != nil {
		return nil, err
	}

	for i, a := range def.Alleles {
		slot, err := m.AddAllele(a)
		if err != nil {
			return nil, err
		}
		if slot != i+1 {
			return nil, fmt.Errorf("%w: allele %q listed at slot %d is already slot %d",
				errs.ErrAlleleIdentity, a, i+1, slot)
		}
	}

	for i, slots := range def.Genotypes {
		lo, hi := slots[0], slots[1]
		if lo < 0 || hi < 0 || lo >= len(m.alleles) || hi >= len(m.alleles) {
			return nil, fmt.Errorf("%w: genotype %d refers to slots %d/%d of %d",
				errs.ErrAlleleNotFound, i+1, lo, hi, len(m.alleles))
		}

		g, err := m.AddGenotype(Pair{m.alleles[lo], m.alleles[hi]})
		if err != nil {
			return nil, err
		}
		if g.code != i+1 {
			return nil, fmt.Errorf("%w: genotype %s listed as code %d is already code %d",
				errs.ErrModel, g, i+1, g.code)
		}
	}

	return m, nil
}
