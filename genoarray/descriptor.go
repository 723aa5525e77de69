package genoarray

import (
	"fmt"

	"github.com/PiRSquared17/glu-genetics/bitfield"
	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/format"
	"github.com/PiRSquared17/glu-genetics/internal/options"
	"github.com/PiRSquared17/glu-genetics/marker"
)

type descriptorConfig struct {
	initialOffset int
	engine        format.EngineType
}

// DescriptorOption configures a Descriptor.
type DescriptorOption = options.Option[*descriptorConfig]

// WithInitialOffset reserves bits leading bits before the first field.
func WithInitialOffset(bits int) DescriptorOption {
	return options.New(func(c *descriptorConfig) error {
		if bits < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidOffset, bits)
		}
		c.initialOffset = bits

		return nil
	})
}

// WithEngine selects the backend. The default is format.EngineWord.
func WithEngine(engine format.EngineType) DescriptorOption {
	return options.New(func(c *descriptorConfig) error {
		if !engine.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidEngine, engine)
		}
		c.engine = engine

		return nil
	})
}

// Descriptor is the immutable layout of a packed genotype array.
type Descriptor struct {
	models  []*marker.Model
	offsets []int // len(models)+1 bit offsets; offsets[0] is the initial offset
	backend Backend
}

// NewDescriptor creates the layout for one position per model.
//
// The models are borrowed, not copied: they must stay alive and must not gain alleles
// beyond their bit width while the descriptor is in use.
//
// Parameters:
//   - models: model of each position; the same model may govern many positions
//   - opts: WithInitialOffset and WithEngine
//
// Returns:
//   - *Descriptor: the layout
//   - error: errs.ErrNilModel for a nil model, or an option error
func NewDescriptor(models []*marker.Model, opts ...DescriptorOption) (*Descriptor, error) {
	cfg := &descriptorConfig{engine: format.EngineWord}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	backend, err := backendFor(cfg.engine)
	if err != nil {
		return nil, err
	}

	d := &Descriptor{
		models:  make([]*marker.Model, len(models)),
		offsets: make([]int, len(models)+1),
		backend: backend,
	}
	copy(d.models, models)

	offset := cfg.initialOffset
	d.offsets[0] = offset
	for i, m := range models {
		if m == nil {
			return nil, fmt.Errorf("%w: position %d", errs.ErrNilModel, i)
		}
		offset += m.BitWidth()
		d.offsets[i+1] = offset
	}

	return d, nil
}

// Len returns the number of positions.
func (d *Descriptor) Len() int {
	return len(d.models)
}

// Models returns the model of each position. The returned slice must not be modified.
func (d *Descriptor) Models() []*marker.Model {
	return d.models
}

// Model returns the model of position i.
func (d *Descriptor) Model(i int) *marker.Model {
	return d.models[i]
}

// Offsets returns the Len()+1 field boundaries in bits. The returned slice must not be
// modified.
func (d *Descriptor) Offsets() []int {
	return d.offsets
}

// Offset returns the first bit of field i. Offset(Len()) is the end of the last field.
func (d *Descriptor) Offset(i int) int {
	return d.offsets[i]
}

// InitialOffset returns the number of bits reserved before the first field.
func (d *Descriptor) InitialOffset() int {
	return d.offsets[0]
}

// BitSize returns the total number of bits, including the initial offset.
func (d *Descriptor) BitSize() int {
	return d.offsets[len(d.offsets)-1]
}

// ByteSize returns the size in bytes of an array with this layout.
func (d *Descriptor) ByteSize() int {
	return bitfield.ByteCount(d.BitSize())
}

func (d *Descriptor) Backend() Backend {
	return d.backend
}

// field returns the start bit and width of position i.
func (d *Descriptor) field(i int) (int, int) {
	return d.offsets[i], d.offsets[i+1] - d.offsets[i]
}
