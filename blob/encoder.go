package blob

import (
	"fmt"
	"log/slog"

	"github.com/PiRSquared17/glu-genetics/compress"
	"github.com/PiRSquared17/glu-genetics/encoding"
	"github.com/PiRSquared17/glu-genetics/endian"
	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/genoarray"
	"github.com/PiRSquared17/glu-genetics/internal/hash"
	"github.com/PiRSquared17/glu-genetics/internal/pool"
	"github.com/PiRSquared17/glu-genetics/marker"
	"github.com/PiRSquared17/glu-genetics/section"
)

// Encoder accumulates packed rows of one descriptor and serializes them into a blob.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	cfg      *encoderConfig
	codec    compress.Codec
	desc     *genoarray.Descriptor
	rows     *pool.ByteBuffer
	rowCount int
	stats    compress.CompressionStats
	finished bool
}

// NewEncoder creates an encoder for rows laid out by desc.
//
// Parameters:
//   - desc: the descriptor every added row must use
//   - opts: WithCompression, WithLittleEndian / WithBigEndian and WithLogger
//
// Returns:
//   - *Encoder: the encoder
//   - error: errs.ErrNoDescriptor for a nil descriptor, or an option error
func NewEncoder(desc *genoarray.Descriptor, opts ...EncoderOption) (*Encoder, error) {
	if desc == nil {
		return nil, errs.ErrNoDescriptor
	}

	cfg, err := newEncoderConfig(opts)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		cfg:   cfg,
		codec: codec,
		desc:  desc,
		rows:  pool.GetRowsBuffer(),
	}, nil
}

// Add appends a copy of the packed bytes of row.
//
// Returns:
//   - error: errs.ErrDescriptorMismatch if row uses another descriptor,
//     errs.ErrEncoderFinished after Finish
func (e *Encoder) Add(row *genoarray.Array) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if row.Descriptor() != e.desc {
		return errs.ErrDescriptorMismatch
	}

	e.rows.MustWrite(row.Bytes())
	e.rowCount++

	return nil
}

// Len returns the number of rows added so far.
func (e *Encoder) Len() int {
	return e.rowCount
}

// Stats returns the payload compression statistics of the last Finish.
func (e *Encoder) Stats() compress.CompressionStats {
	return e.stats
}

// Finish serializes the blob. The encoder cannot be used afterwards.
//
// Returns:
//   - []byte: the blob
//   - error: errs.ErrEncoderFinished on a second call, errs.ErrAlleleTooLong for alleles
//     longer than 255 bytes, or a compression error
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true
	defer func() {
		pool.PutRowsBuffer(e.rows)
		e.rows = nil
	}()

	models, modelIndex := distinctModels(e.desc.Models())

	table := encoding.NewModelTableEncoder()
	defer table.Finish()
	for i, m := range models {
		if err := table.WriteModel(m); err != nil {
			return nil, fmt.Errorf("model %d: %w", i, err)
		}
	}

	positions := pool.GetTableBuffer()
	defer pool.PutTableBuffer(positions)
	encoding.EncodePositionTable(positions, e.desc.InitialOffset(), modelIndex)

	payload, err := e.codec.Compress(e.rows.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress rows: %w", err)
	}
	e.stats = compress.CompressionStats{
		Algorithm:      e.cfg.compression,
		OriginalSize:   int64(e.rows.Len()),
		CompressedSize: int64(len(payload)),
	}

	header := section.NewHeader()
	if endian.IsBigEndian(e.cfg.engine) {
		header.Flag.WithBigEndian()
	}
	header.Flag.SetEngine(e.desc.Backend().Type())
	header.Flag.SetCompression(e.cfg.compression)
	header.ModelCount = uint32(len(models))                                      //nolint:gosec
	header.PositionCount = uint32(e.desc.Len())                                  //nolint:gosec
	header.RowCount = uint32(e.rowCount)                                         //nolint:gosec
	header.RowSize = uint32(e.desc.ByteSize())                                   //nolint:gosec
	header.PositionTableOffset = section.ModelTableOffset + uint32(table.Size()) //nolint:gosec
	header.PayloadOffset = header.PositionTableOffset + uint32(positions.Len())  //nolint:gosec

	size := int(header.PayloadOffset) + len(payload) + section.ChecksumSize
	out := make([]byte, 0, size)
	out = append(out, header.Bytes()...)
	out = append(out, table.Bytes()...)
	out = append(out, positions.Bytes()...)
	out = append(out, payload...)
	out = header.GetEndianEngine().AppendUint64(out, hash.Checksum(out))

	e.cfg.logger.Debug("encoded genotype blob",
		slog.Int("models", len(models)),
		slog.Int("positions", e.desc.Len()),
		slog.Int("rows", e.rowCount),
		slog.String("compression", e.cfg.compression.String()),
		slog.Float64("ratio", e.stats.CompressionRatio()),
		slog.Int("bytes", len(out)),
	)

	return out, nil
}

// distinctModels returns the models of a descriptor in first-use order and the index of
// each position's model in that list.
func distinctModels(perPosition []*marker.Model) ([]*marker.Model, []int) {
	seen := make(map[*marker.Model]int)
	models := make([]*marker.Model, 0)
	modelIndex := make([]int, len(perPosition))

	for i, m := range perPosition {
		idx, ok := seen[m]
		if !ok {
			idx = len(models)
			seen[m] = idx
			models = append(models, m)
		}
		modelIndex[i] = idx
	}

	return models, modelIndex
}
