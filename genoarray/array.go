package genoarray

import (
	"fmt"
	"iter"
	"strings"

	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/marker"
)

// Array is a packed genotype array laid out by a Descriptor.
//
// An Array is not safe for concurrent use while it is being written. Concurrent reads
// are safe.
type Array struct {
	d    *Descriptor
	data []byte
}

// New returns an array with every position set to the Missing genotype.
func New(d *Descriptor) *Array {
	return &Array{d: d, data: make([]byte, d.ByteSize())}
}

// FromValues returns an array holding values, one per position.
//
// Returns:
//   - *Array: the packed array
//   - error: errs.ErrLengthMismatch if len(values) != d.Len(), or the first error of Set
func FromValues(d *Descriptor, values []marker.Value) (*Array, error) {
	a := New(d)
	if err := a.SetSlice(Full, values); err != nil {
		return nil, err
	}

	return a, nil
}

// FromGenotypes returns an array holding genotypes, one per position.
func FromGenotypes(d *Descriptor, genotypes []*marker.Genotype) (*Array, error) {
	return FromValues(d, toValues(genotypes))
}

// FromPairs returns an array holding the genotypes registered for pairs.
func FromPairs(d *Descriptor, pairs []marker.Pair) (*Array, error) {
	return FromValues(d, toValues(pairs))
}

// FromBytes returns an array holding a copy of buf, typically read back from storage.
//
// Returns errs.ErrLengthMismatch if len(buf) != d.ByteSize() and errs.ErrGenotypeNotFound
// if a field holds a code its model has not registered.
func FromBytes(d *Descriptor, buf []byte) (*Array, error) {
	if len(buf) != d.ByteSize() {
		return nil, fmt.Errorf("%w: got %d bytes, descriptor needs %d", errs.ErrLengthMismatch, len(buf), d.ByteSize())
	}

	a := &Array{d: d, data: make([]byte, len(buf))}
	copy(a.data, buf)

	for i := range d.models {
		if a.d.backend.Decode(d, a.data, i) == nil {
			code, _ := a.Code(i)
			return nil, fmt.Errorf("%w: code %d at position %d", errs.ErrGenotypeNotFound, code, i)
		}
	}

	return a, nil
}

// FromArray returns a copy of src laid out by d. Genotypes are carried over by their
// alleles, so d may use different models than src as long as they register the same
// genotypes.
func FromArray(d *Descriptor, src *Array) (*Array, error) {
	if src.Len() != d.Len() {
		return nil, fmt.Errorf("%w: source has %d positions, descriptor %d", errs.ErrLengthMismatch, src.Len(), d.Len())
	}

	dst := New(d)
	for i := range d.models {
		g := src.d.backend.Decode(src.d, src.data, i)

		var v marker.Value = g
		if g.Model() != d.models[i] {
			v = g.Alleles()
		}
		if err := dst.Set(i, v); err != nil {
			return nil, err
		}
	}

	return dst, nil
}

func toValues[V marker.Value](in []V) []marker.Value {
	out := make([]marker.Value, len(in))
	for i, v := range in {
		out[i] = v
	}

	return out
}

// Clone returns an independent copy of a.
func (a *Array) Clone() *Array {
	data := make([]byte, len(a.data))
	copy(data, a.data)

	return &Array{d: a.d, data: data}
}

// Descriptor returns the layout of a.
func (a *Array) Descriptor() *Descriptor {
	return a.d
}

// Len returns the number of positions.
func (a *Array) Len() int {
	return a.d.Len()
}

// Bytes returns the packed buffer. The returned slice must not be modified.
func (a *Array) Bytes() []byte {
	return a.data
}

// index normalizes a possibly negative position.
func (a *Array) index(i int) (int, error) {
	n := a.d.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: position %d of %d", errs.ErrIndexOutOfRange, i, n)
	}

	return i, nil
}

// Get returns the genotype at position i. Negative positions count from the end.
func (a *Array) Get(i int) (*marker.Genotype, error) {
	i, err := a.index(i)
	if err != nil {
		return nil, err
	}

	return a.d.backend.Decode(a.d, a.data, i), nil
}

// Code returns the raw genotype code at position i.
func (a *Array) Code(i int) (int, error) {
	i, err := a.index(i)
	if err != nil {
		return 0, err
	}
	start, width := a.d.field(i)

	return int(a.d.backend.Engine().Get(a.data, start, width)), nil
}

// Set stores v at position i. Negative positions count from the end.
//
// Returns:
//   - error: errs.ErrIndexOutOfRange, errs.ErrForeignGenotype for a genotype of another
//     model, or errs.ErrGenotypeNotFound for a pair the position's model has not registered
func (a *Array) Set(i int, v marker.Value) error {
	i, err := a.index(i)
	if err != nil {
		return err
	}

	g, err := v.Resolve(a.d.models[i])
	if err != nil {
		return fmt.Errorf("position %d: %w", i, err)
	}
	a.d.backend.Encode(a.d, a.data, i, g)

	return nil
}

// SetGenotype stores g at position i.
func (a *Array) SetGenotype(i int, g *marker.Genotype) error {
	return a.Set(i, g)
}

// SetPair stores the genotype registered for p at position i.
func (a *Array) SetPair(i int, p marker.Pair) error {
	return a.Set(i, p)
}

// Slice returns the genotypes at the positions selected by s.
func (a *Array) Slice(s Slice) ([]*marker.Genotype, error) {
	idx, err := s.Indices(a.Len())
	if err != nil {
		return nil, err
	}

	out := make([]*marker.Genotype, len(idx))
	for k, i := range idx {
		out[k] = a.d.backend.Decode(a.d, a.data, i)
	}

	return out, nil
}

// SetSlice stores values at the positions selected by s, in selection order. The number
// of values must equal the number of selected positions. Every value is resolved before
// anything is written, so a failed call leaves a unchanged.
func (a *Array) SetSlice(s Slice, values []marker.Value) error {
	idx, err := s.Indices(a.Len())
	if err != nil {
		return err
	}
	if len(values) != len(idx) {
		return fmt.Errorf("%w: %d values for %d positions", errs.ErrLengthMismatch, len(values), len(idx))
	}

	resolved := make([]*marker.Genotype, len(idx))
	for k, i := range idx {
		g, err := values[k].Resolve(a.d.models[i])
		if err != nil {
			return fmt.Errorf("position %d: %w", i, err)
		}
		resolved[k] = g
	}

	for k, i := range idx {
		a.d.backend.Encode(a.d, a.data, i, resolved[k])
	}

	return nil
}

// Genotypes decodes every position.
func (a *Array) Genotypes() []*marker.Genotype {
	out := make([]*marker.Genotype, a.Len())
	for i := range out {
		out[i] = a.d.backend.Decode(a.d, a.data, i)
	}

	return out
}

// All iterates over positions and their genotypes.
func (a *Array) All() iter.Seq2[int, *marker.Genotype] {
	return func(yield func(int, *marker.Genotype) bool) {
		for i := range a.d.models {
			if !yield(i, a.d.backend.Decode(a.d, a.data, i)) {
				return
			}
		}
	}
}

// String formats a as "[A/A A/B -/-]".
func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, g := range a.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(g.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
