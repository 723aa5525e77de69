package marker

import (
	"cmp"
	"slices"
)

// Allele is one variant form at a locus.
type Allele string

// Missing is the missing allele.
const Missing Allele = ""

// IsMissing reports whether a is the missing allele.
func (a Allele) IsMissing() bool {
	return a == Missing
}

// Pair is a raw genotype: two alleles in any order.
type Pair [2]Allele

// MissingPair is the Missing/Missing genotype.
var MissingPair = Pair{Missing, Missing}

// Canonical returns p with its alleles in ascending order.
func (p Pair) Canonical() Pair {
	if p[1] < p[0] {
		return Pair{p[1], p[0]}
	}

	return p
}

// Class returns the genotype class p would have once registered.
func (p Pair) Class() Class {
	switch {
	case p[0].IsMissing() && p[1].IsMissing():
		return ClassMissing
	case p[0].IsMissing() || p[1].IsMissing():
		return ClassHemizygous
	case p[0] == p[1]:
		return ClassHomozygous
	default:
		return ClassHeterozygous
	}
}

// Compare compares p and q lexicographically, allele by allele.
func (p Pair) Compare(q Pair) int {
	if c := cmp.Compare(p[0], q[0]); c != 0 {
		return c
	}

	return cmp.Compare(p[1], q[1])
}

// Resolve returns the genotype registered for p in m.
func (p Pair) Resolve(m *Model) (*Genotype, error) {
	return m.Genotype(p)
}

// String formats p as "A/B", printing missing alleles as "-".
func (p Pair) String() string {
	return alleleString(p[0]) + "/" + alleleString(p[1])
}

func alleleString(a Allele) string {
	if a.IsMissing() {
		return "-"
	}

	return string(a)
}

// sortedAlleles returns the distinct non-missing alleles of alleles in ascending order.
func sortedAlleles(alleles []Allele) []Allele {
	out := make([]Allele, 0, len(alleles))
	for _, a := range alleles {
		if !a.IsMissing() {
			out = append(out, a)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// enumerate returns every unordered pair over alleles in nested i <= j order.
func enumerate(alleles []Allele) []Pair {
	n := len(alleles)
	pairs := make([]Pair, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			pairs = append(pairs, Pair{alleles[i], alleles[j]})
		}
	}

	return pairs
}
