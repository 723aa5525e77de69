package marker

import (
	"slices"

	"github.com/PiRSquared17/glu-genetics/internal/collision"
	"github.com/PiRSquared17/glu-genetics/internal/hash"
)

// Registry shares models between loci with the same allele set. All models of a registry
// are built by FromAlleles with the registry's options.
type Registry struct {
	opts  []ModelOption
	index *collision.Index[registryEntry]
}

type registryEntry struct {
	alleles []Allele // sorted, distinct, non-missing
	model   *Model
}

// NewRegistry creates an empty registry whose models are built with opts.
func NewRegistry(opts ...ModelOption) *Registry {
	return &Registry{
		opts:  opts,
		index: collision.NewIndex[registryEntry](),
	}
}

// ForAlleles returns the model of the allele set of alleles, building it on first use.
// Order and repetition of alleles do not matter.
func (r *Registry) ForAlleles(alleles []Allele) (*Model, error) {
	sorted := sortedAlleles(alleles)

	parts := make([]string, len(sorted))
	for i, a := range sorted {
		parts[i] = string(a)
	}
	key := hash.Key(parts)

	entry, ok := r.index.Lookup(key, func(e registryEntry) bool {
		return slices.Equal(e.alleles, sorted)
	})
	if ok {
		return entry.model, nil
	}

	m, err := FromAlleles(sorted, r.opts...)
	if err != nil {
		return nil, err
	}
	r.index.Insert(key, registryEntry{alleles: sorted, model: m})

	return m, nil
}

// Len returns the number of distinct models.
func (r *Registry) Len() int {
	return r.index.Count()
}

// Models returns the models in the order they were first requested.
func (r *Registry) Models() []*Model {
	entries := r.index.Values()
	models := make([]*Model, len(entries))
	for i, e := range entries {
		models[i] = e.model
	}

	return models
}
