package marker

import (
	"fmt"

	"github.com/PiRSquared17/glu-genetics/errs"
)

// Class classifies a genotype by how many and which alleles it carries.
type Class uint8

const (
	ClassMissing      Class = iota // both alleles missing
	ClassHemizygous                // exactly one allele missing
	ClassHeterozygous              // two different alleles
	ClassHomozygous                // the same allele twice
)

func (c Class) String() string {
	switch c {
	case ClassMissing:
		return "Missing"
	case ClassHemizygous:
		return "Hemizygous"
	case ClassHeterozygous:
		return "Heterozygous"
	case ClassHomozygous:
		return "Homozygous"
	default:
		return "Unknown"
	}
}

// Value is anything that can be stored at a position governed by a model: an interned
// *Genotype of that model or a raw Pair registered in it.
type Value interface {
	Resolve(m *Model) (*Genotype, error)
}

var (
	_ Value = (*Genotype)(nil)
	_ Value = Pair{}
)

// Genotype is an interned, classified genotype owned by a Model.
//
// Genotypes are only created by their model. Two genotypes of the same model are equal
// exactly when they are the same pointer.
type Genotype struct {
	model *Model // owning model, not owned by the genotype
	lo    int    // allele slot of the smaller allele
	hi    int    // allele slot of the larger allele
	code  int
	class Class
}

// newGenotype classifies the allele slots lo and hi of m.
func newGenotype(m *Model, lo, hi, code int) (*Genotype, error) {
	a1, a2 := m.alleles[lo], m.alleles[hi]

	g := &Genotype{model: m, lo: lo, hi: hi, code: code}
	switch {
	case a1.IsMissing() && a2.IsMissing():
		g.class = ClassMissing
	case a1.IsMissing() || a2.IsMissing():
		g.class = ClassHemizygous
	case lo == hi:
		g.class = ClassHomozygous
	default:
		if a1 == a2 {
			return nil, fmt.Errorf("%w: allele %q occupies slots %d and %d", errs.ErrAlleleIdentity, a1, lo, hi)
		}
		g.class = ClassHeterozygous
	}

	return g, nil
}

// Model returns the model that owns g.
func (g *Genotype) Model() *Model {
	return g.model
}

// Code returns the code of g in its model.
func (g *Genotype) Code() int {
	return g.code
}

// Class returns the genotype class.
func (g *Genotype) Class() Class {
	return g.class
}

// Alleles returns the alleles of g, smallest first.
func (g *Genotype) Alleles() Pair {
	return Pair{g.model.alleles[g.lo], g.model.alleles[g.hi]}
}

// First returns the smaller allele.
func (g *Genotype) First() Allele {
	return g.model.alleles[g.lo]
}

// Second returns the larger allele.
func (g *Genotype) Second() Allele {
	return g.model.alleles[g.hi]
}

// AlleleSlots returns the model allele slots of the two alleles.
func (g *Genotype) AlleleSlots() (int, int) {
	return g.lo, g.hi
}

// At returns allele i (0 or 1).
func (g *Genotype) At(i int) Allele {
	return g.Alleles()[i]
}

// Len returns the number of non-missing alleles.
func (g *Genotype) Len() int {
	switch g.class {
	case ClassMissing:
		return 0
	case ClassHemizygous:
		return 1
	default:
		return 2
	}
}

// Contains reports whether a is one of the alleles of g.
func (g *Genotype) Contains(a Allele) bool {
	p := g.Alleles()
	return p[0] == a || p[1] == a
}

func (g *Genotype) IsMissing() bool {
	return g.class == ClassMissing
}

func (g *Genotype) IsHemizygous() bool {
	return g.class == ClassHemizygous
}

func (g *Genotype) IsHomozygous() bool {
	return g.class == ClassHomozygous
}

func (g *Genotype) IsHeterozygous() bool {
	return g.class == ClassHeterozygous
}

// Called reports whether g carries at least one allele.
func (g *Genotype) Called() bool {
	return g.class != ClassMissing
}

// Compare orders genotypes by their allele pairs. It does not consider the owning model,
// so genotypes of different models with the same alleles compare as 0 while still being
// unequal.
func (g *Genotype) Compare(other *Genotype) int {
	return g.Alleles().Compare(other.Alleles())
}

// ComparePair orders g against a raw pair, compared as given without canonicalizing it.
func (g *Genotype) ComparePair(p Pair) int {
	return g.Alleles().Compare(p)
}

// Less reports whether g sorts before other.
func (g *Genotype) Less(other *Genotype) bool {
	return g.Compare(other) < 0
}

// Resolve returns g if it is owned by m.
func (g *Genotype) Resolve(m *Model) (*Genotype, error) {
	if g.model != m {
		return nil, fmt.Errorf("%w: %s", errs.ErrForeignGenotype, g)
	}

	return g, nil
}

// String formats g as "A/B", printing missing alleles as "-".
func (g *Genotype) String() string {
	return g.Alleles().String()
}
