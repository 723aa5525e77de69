package blob

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/PiRSquared17/glu-genetics/compress"
	"github.com/PiRSquared17/glu-genetics/encoding"
	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/format"
	"github.com/PiRSquared17/glu-genetics/genoarray"
	"github.com/PiRSquared17/glu-genetics/internal/hash"
	"github.com/PiRSquared17/glu-genetics/marker"
	"github.com/PiRSquared17/glu-genetics/section"
)

// Decoder reads rows back from a blob produced by Encoder.
//
// A Decoder is immutable after construction and safe for concurrent use.
type Decoder struct {
	header  section.Header
	desc    *genoarray.Descriptor
	models  []*marker.Model
	payload []byte
}

// NewDecoder verifies and decodes the sections of data.
//
// The models are rebuilt from their stored definitions, so every genotype code in the
// payload means the same genotype it meant to the encoder. Rows are decoded lazily by Row
// and Rows.
//
// Parameters:
//   - data: the blob; the decoder keeps a reference to it when the payload is uncompressed
//   - opts: WithDecoderEngine and WithDecoderLogger
//
// Returns:
//   - *Decoder: the decoder
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber, errs.ErrInvalidHeaderFlags,
//     errs.ErrInvalidSectionOffset, errs.ErrChecksumMismatch, errs.ErrCorruptModelTable,
//     errs.ErrCorruptPositionTable or errs.ErrInvalidPayloadSize
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	cfg, err := newDecoderConfig(opts)
	if err != nil {
		return nil, err
	}

	if len(data) < section.HeaderSize+section.ChecksumSize {
		return nil, fmt.Errorf("%w: blob is %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	dec := &Decoder{}
	if err := dec.header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, err
	}
	if err := dec.header.ValidateOffsets(len(data)); err != nil {
		return nil, err
	}

	body := data[:len(data)-section.ChecksumSize]
	stored := dec.header.GetEndianEngine().Uint64(data[len(body):])
	if hash.Checksum(body) != stored {
		return nil, errs.ErrChecksumMismatch
	}

	if err := dec.decodeModels(body[dec.header.ModelTableOffset:dec.header.PositionTableOffset]); err != nil {
		return nil, err
	}

	engine := dec.header.Flag.GetEngine()
	if cfg.hasEngine {
		engine = cfg.engine
	}
	if err := dec.decodeDescriptor(body[dec.header.PositionTableOffset:dec.header.PayloadOffset], engine); err != nil {
		return nil, err
	}

	if err := dec.decodePayload(body[dec.header.PayloadOffset:]); err != nil {
		return nil, err
	}

	cfg.logger.Debug("decoded genotype blob",
		slog.Int("models", len(dec.models)),
		slog.Int("positions", dec.desc.Len()),
		slog.Int("rows", dec.Len()),
		slog.String("compression", dec.header.Flag.GetCompression().String()),
		slog.String("engine", engine.String()),
	)

	return dec, nil
}

func (dec *Decoder) decodeModels(table []byte) error {
	defs, err := encoding.DecodeModelTable(table, int(dec.header.ModelCount))
	if err != nil {
		return err
	}

	dec.models = make([]*marker.Model, len(defs))
	for i, def := range defs {
		if dec.models[i], err = marker.FromDefinition(def); err != nil {
			return fmt.Errorf("%w: model %d: %w", errs.ErrCorruptModelTable, i, err)
		}
	}

	return nil
}

func (dec *Decoder) decodeDescriptor(table []byte, engine format.EngineType) error {
	initialOffset, modelIndex, err := encoding.DecodePositionTable(
		table, int(dec.header.PositionCount), len(dec.models))
	if err != nil {
		return err
	}

	models := make([]*marker.Model, len(modelIndex))
	for i, idx := range modelIndex {
		models[i] = dec.models[idx]
	}

	dec.desc, err = genoarray.NewDescriptor(models,
		genoarray.WithInitialOffset(initialOffset),
		genoarray.WithEngine(engine),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrCorruptPositionTable, err)
	}

	if dec.desc.ByteSize() != int(dec.header.RowSize) {
		return fmt.Errorf("%w: header row size %d, descriptor needs %d",
			errs.ErrInvalidPayloadSize, dec.header.RowSize, dec.desc.ByteSize())
	}

	return nil
}

func (dec *Decoder) decodePayload(payload []byte) error {
	codec, err := compress.GetCodec(dec.header.Flag.GetCompression())
	if err != nil {
		return err
	}

	dec.payload, err = codec.Decompress(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidPayloadSize, err)
	}

	want := uint64(dec.header.RowCount) * uint64(dec.header.RowSize)
	if uint64(len(dec.payload)) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidPayloadSize, len(dec.payload), want)
	}

	return nil
}

// Descriptor returns the descriptor rebuilt from the blob.
func (dec *Decoder) Descriptor() *genoarray.Descriptor {
	return dec.desc
}

// Models returns the distinct models stored in the blob, in table order.
func (dec *Decoder) Models() []*marker.Model {
	return dec.models
}

// Header returns a copy of the parsed blob header.
func (dec *Decoder) Header() section.Header {
	return dec.header
}

// Len returns the number of rows in the blob.
func (dec *Decoder) Len() int {
	return int(dec.header.RowCount)
}

// Row decodes row i into a new array.
//
// Returns errs.ErrRowIndexOutOfRange for i outside [0, Len()) and errs.ErrGenotypeNotFound
// if the row holds a code its model does not register.
func (dec *Decoder) Row(i int) (*genoarray.Array, error) {
	if i < 0 || i >= dec.Len() {
		return nil, fmt.Errorf("%w: %d of %d", errs.ErrRowIndexOutOfRange, i, dec.Len())
	}

	size := int(dec.header.RowSize)

	return genoarray.FromBytes(dec.desc, dec.payload[i*size:(i+1)*size])
}

// Rows returns an iterator over all rows in order. Iteration stops after the first error.
func (dec *Decoder) Rows() iter.Seq2[*genoarray.Array, error] {
	return func(yield func(*genoarray.Array, error) bool) {
		for i := range dec.Len() {
			row, err := dec.Row(i)
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}
