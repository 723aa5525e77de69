package encoding

import (
	"fmt"

	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/marker"
)

const flagHemizygote = 0x01

// ModelTableEncoder encodes marker model definitions into a model table.
type ModelTableEncoder struct {
	vs *VarStringEncoder
}

// NewModelTableEncoder creates an empty model table encoder.
// Call Finish to release its buffer.
func NewModelTableEncoder() *ModelTableEncoder {
	return &ModelTableEncoder{vs: NewVarStringEncoder()}
}

// WriteModel appends the definition of m.
func (e *ModelTableEncoder) WriteModel(m *marker.Model) error {
	return e.Write(m.Definition())
}

// Write appends one model record.
//
// Returns:
//   - error: errs.ErrAlleleTooLong if an allele exceeds MaxTextLength bytes
func (e *ModelTableEncoder) Write(def marker.Definition) error {
	alleles := make([]string, len(def.Alleles))
	for i, a := range def.Alleles {
		alleles[i] = string(a)
	}

	var flags byte
	if def.AllowHemizygote {
		flags |= flagHemizygote
	}
	_ = e.vs.WriteByte(flags)
	e.vs.WriteUvarint(uint64(def.MaxAlleles))  //nolint:gosec
	e.vs.WriteUvarint(uint64(len(def.Alleles))) //nolint:gosec
	if err := e.vs.WriteSlice(alleles); err != nil {
		return err
	}

	e.vs.WriteUvarint(uint64(len(def.Genotypes))) //nolint:gosec
	for _, slots := range def.Genotypes {
		e.vs.WriteUvarint(uint64(slots[0])) //nolint:gosec
		e.vs.WriteUvarint(uint64(slots[1])) //nolint:gosec
	}

	return nil
}

// Bytes returns the encoded table, valid until Finish.
func (e *ModelTableEncoder) Bytes() []byte {
	return e.vs.Bytes()
}

// Size returns the encoded size in bytes.
func (e *ModelTableEncoder) Size() int {
	return e.vs.Size()
}

// Finish releases the encoder's buffer.
func (e *ModelTableEncoder) Finish() {
	e.vs.Finish()
}

// DecodeModelTable decodes count model records that must fill data exactly.
//
// Returns:
//   - []marker.Definition: the decoded definitions in table order
//   - error: errs.ErrCorruptModelTable if data is truncated, has trailing bytes or holds
//     counts beyond model limits
func DecodeModelTable(data []byte, count int) ([]marker.Definition, error) {
	d := NewVarStringDecoder(data)

	// every record takes at least four bytes
	defs := make([]marker.Definition, 0, min(count, len(data)/4))
	for i := range count {
		def, err := decodeModel(d)
		if err != nil {
			return nil, fmt.Errorf("%w: model %d: %w", errs.ErrCorruptModelTable, i, err)
		}
		defs = append(defs, def)
	}

	if d.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrCorruptModelTable, d.Remaining())
	}

	return defs, nil
}

func decodeModel(d *VarStringDecoder) (marker.Definition, error) {
	var def marker.Definition

	flags, err := d.ReadByte()
	if err != nil {
		return def, err
	}
	if flags&^flagHemizygote != 0 {
		return def, fmt.Errorf("unknown model flags 0x%02x", flags)
	}
	def.AllowHemizygote = flags&flagHemizygote != 0

	if def.MaxAlleles, err = d.ReadInt(marker.AlleleLimit); err != nil {
		return def, err
	}

	nAlleles, err := d.ReadInt(min(marker.AlleleLimit, d.Remaining()))
	if err != nil {
		return def, err
	}
	def.Alleles = make([]marker.Allele, nAlleles)
	for i := range def.Alleles {
		s, err := d.ReadString()
		if err != nil {
			return def, err
		}
		def.Alleles[i] = marker.Allele(s)
	}

	// every genotype takes at least two bytes
	nGenotypes, err := d.ReadInt(d.Remaining() / 2)
	if err != nil {
		return def, err
	}
	def.Genotypes = make([][2]int, nGenotypes)
	for i := range def.Genotypes {
		for k := range 2 {
			if def.Genotypes[i][k], err = d.ReadInt(nAlleles); err != nil {
				return def, err
			}
		}
	}

	return def, nil
}
