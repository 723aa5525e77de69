package genoarray

import (
	"github.com/PiRSquared17/glu-genetics/bitfield"
	"github.com/PiRSquared17/glu-genetics/format"
	"github.com/PiRSquared17/glu-genetics/marker"
)

// Backend moves genotype codes in and out of packed buffers and counts concordance
// between two buffers of the same layout.
type Backend interface {
	// Type identifies the backend.
	Type() format.EngineType

	// Engine returns the bit engine used for field access.
	Engine() bitfield.Engine

	// Encode writes the code of g into field i of buf.
	Encode(d *Descriptor, buf []byte, i int, g *marker.Genotype)

	// Decode returns the genotype stored in field i of buf, or nil if the stored code is
	// not registered in the position's model.
	Decode(d *Descriptor, buf []byte, i int) *marker.Genotype

	// Concordance counts the positions where both buffers hold a called genotype, and
	// among those the positions holding the same genotype.
	Concordance(d *Descriptor, a, b []byte) (concordant, comparisons int)
}

var (
	_ Backend = (*referenceBackend)(nil)
	_ Backend = (*wordBackend)(nil)
)

func backendFor(t format.EngineType) (Backend, error) {
	engine, err := bitfield.ForType(t)
	if err != nil {
		return nil, err
	}

	if t == format.EngineReference {
		return &referenceBackend{codec{engine: engine}}, nil
	}

	return &wordBackend{codec{engine: engine}}, nil
}

// codec implements the field access shared by both backends.
type codec struct {
	engine bitfield.Engine
}

func (c codec) Type() format.EngineType {
	return c.engine.Type()
}

func (c codec) Engine() bitfield.Engine {
	return c.engine
}

func (c codec) Encode(d *Descriptor, buf []byte, i int, g *marker.Genotype) {
	start, width := d.field(i)
	c.engine.Set(buf, start, uint64(g.Code()), width)
}

func (c codec) Decode(d *Descriptor, buf []byte, i int) *marker.Genotype {
	return d.models[i].GenotypeAt(c.code(d, buf, i))
}

func (c codec) code(d *Descriptor, buf []byte, i int) int {
	start, width := d.field(i)
	return int(c.engine.Get(buf, start, width))
}

// referenceBackend decodes every position and compares interned genotypes.
type referenceBackend struct {
	codec
}

func (b *referenceBackend) Concordance(d *Descriptor, a, c []byte) (int, int) {
	concordant, comparisons := 0, 0
	for i := range d.models {
		ga := b.Decode(d, a, i)
		gc := b.Decode(d, c, i)
		if ga == nil || gc == nil || !ga.Called() || !gc.Called() {
			continue
		}
		comparisons++
		if ga == gc {
			concordant++
		}
	}

	return concordant, comparisons
}

// wordBackend compares raw codes. Code 0 is the missing genotype of every model, and two
// equal codes under the same model are the same interned genotype.
type wordBackend struct {
	codec
}

func (b *wordBackend) Concordance(d *Descriptor, a, c []byte) (int, int) {
	concordant, comparisons := 0, 0
	for i, m := range d.models {
		ca := b.code(d, a, i)
		cc := b.code(d, c, i)
		n := m.NumGenotypes()
		if ca == 0 || cc == 0 || ca >= n || cc >= n {
			continue
		}
		comparisons++
		if ca == cc {
			concordant++
		}
	}

	return concordant, comparisons
}
