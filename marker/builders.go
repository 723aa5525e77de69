package marker

import (
	"fmt"
	"slices"

	"github.com/PiRSquared17/glu-genetics/errs"
)

// FromAlleles builds a model registering every genotype over alleles.
//
// Alleles are de-duplicated and sorted, so the result does not depend on input order.
// Genotypes are registered for each pair i <= j of the sorted alleles, with Missing
// prepended when hemizygotes are enabled. The maximum allele count defaults to the number
// of distinct alleles.
//
// Example:
//
//	m, _ := marker.FromAlleles([]marker.Allele{"B", "A"})
//	// codes: 0 -/-, 1 A/A, 2 A/B, 3 B/B; bit width 2
func FromAlleles(alleles []Allele, opts ...ModelOption) (*Model, error) {
	cfg, err := newModelConfig(opts)
	if err != nil {
		return nil, err
	}

	sorted := sortedAlleles(alleles)
	if cfg.maxAlleles == 0 {
		cfg.maxAlleles = len(sorted)
	}

	m := newModel(cfg)
	if err := m.addAll(sorted, nil); err != nil {
		return nil, err
	}

	return m, nil
}

// FromGenotypes builds a model from explicit genotypes, collecting the alleles from them.
// See FromAllelesAndGenotypes.
func FromGenotypes(genotypes []Pair, opts ...ModelOption) (*Model, error) {
	alleles := make([]Allele, 0, 2*len(genotypes))
	for _, p := range genotypes {
		alleles = append(alleles, p[0], p[1])
	}

	return FromAllelesAndGenotypes(alleles, genotypes, opts...)
}

// FromAllelesAndGenotypes builds a model in which the explicit genotypes receive the
// lowest codes after Missing/Missing, followed by every other genotype over alleles.
//
// Hemizygous genotypes among genotypes enable hemizygotes unless WithHemizygotes(false)
// was given, in which case errs.ErrHemizygoteNotAllowed is returned. More distinct
// alleles than WithMaxAlleles allows fail with errs.ErrTooManyAlleles.
func FromAllelesAndGenotypes(alleles []Allele, genotypes []Pair, opts ...ModelOption) (*Model, error) {
	cfg, err := newModelConfig(opts)
	if err != nil {
		return nil, err
	}

	explicit := make([]Pair, 0, len(genotypes))
	hemizygous := false
	for _, p := range genotypes {
		p = p.Canonical()
		if p.Class() == ClassHemizygous {
			hemizygous = true
		}
		explicit = append(explicit, p)
	}
	slices.SortFunc(explicit, Pair.Compare)
	explicit = slices.Compact(explicit)

	if hemizygous && !cfg.allowHemizygote {
		if cfg.hemizygoteSet {
			return nil, fmt.Errorf("%w: explicit genotypes are hemizygous", errs.ErrHemizygoteNotAllowed)
		}
		cfg.allowHemizygote = true
	}

	sorted := sortedAlleles(alleles)
	switch {
	case cfg.maxAlleles == 0:
		cfg.maxAlleles = len(sorted)
	case len(sorted) > cfg.maxAlleles:
		return nil, fmt.Errorf("%w: %d alleles, at most %d allowed", errs.ErrTooManyAlleles, len(sorted), cfg.maxAlleles)
	}

	m := newModel(cfg)
	if err := m.addAll(sorted, explicit); err != nil {
		return nil, err
	}

	return m, nil
}

// FromCompleteAllelesAndGenotypes builds a model registering exactly the given alleles and
// genotypes in the given order, without sorting or enumerating anything else.
func FromCompleteAllelesAndGenotypes(alleles []Allele, genotypes []Pair, opts ...ModelOption) (*Model, error) {
	cfg, err := newModelConfig(opts)
	if err != nil {
		return nil, err
	}
	if cfg.maxAlleles == 0 {
		cfg.maxAlleles = len(sortedAlleles(alleles))
	}

	m := newModel(cfg)
	for _, a := range alleles {
		if _, err := m.AddAllele(a); err != nil {
			return nil, err
		}
	}
	for _, p := range genotypes {
		if _, err := m.AddGenotype(p); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// addAll registers sorted, then explicit, then every pair over sorted.
func (m *Model) addAll(sorted []Allele, explicit []Pair) error {
	for _, a := range sorted {
		if _, err := m.AddAllele(a); err != nil {
			return err
		}
	}

	for _, p := range explicit {
		if _, err := m.AddGenotype(p); err != nil {
			return err
		}
	}

	seq := sorted
	if m.allowHemizygote {
		seq = append([]Allele{Missing}, sorted...)
	}
	for _, p := range enumerate(seq) {
		if _, err := m.AddGenotype(p); err != nil {
			return err
		}
	}

	return nil
}
