package section

import (
	"github.com/PiRSquared17/glu-genetics/endian"
	"github.com/PiRSquared17/glu-genetics/errs"
)

// Header is the fixed 32-byte header of a genotype blob.
type Header struct {
	Flag Flag // 4 bytes, offset 0-3

	// ModelCount is the number of records in the model table.
	ModelCount uint32 // 4 bytes, offset 4-7
	// PositionCount is the number of positions of the descriptor.
	PositionCount uint32 // 4 bytes, offset 8-11
	// RowCount is the number of packed rows.
	RowCount uint32 // 4 bytes, offset 12-15
	// RowSize is the size of one packed row in bytes.
	RowSize uint32 // 4 bytes, offset 16-19
	// ModelTableOffset is the byte offset to the start of the model table.
	ModelTableOffset uint32 // 4 bytes, offset 20-23
	// PositionTableOffset is the byte offset to the start of the position table.
	PositionTableOffset uint32 // 4 bytes, offset 24-27
	// PayloadOffset is the byte offset to the start of the row payload.
	PayloadOffset uint32 // 4 bytes, offset 28-31
}

// NewHeader creates a header with a default flag and the model table offset set.
func NewHeader() *Header {
	return &Header{
		Flag:             NewFlag(),
		ModelTableOffset: ModelTableOffset,
	}
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly 32 bytes or if the flags are invalid.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// the options field is always little-endian so the byte order can be read first
	h.Flag.Options = endian.GetLittleEndianEngine().Uint16(data[0:2])
	h.Flag.Engine = data[2]
	h.Flag.Compression = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()
	h.ModelCount = engine.Uint32(data[4:8])
	h.PositionCount = engine.Uint32(data[8:12])
	h.RowCount = engine.Uint32(data[12:16])
	h.RowSize = engine.Uint32(data[16:20])
	h.ModelTableOffset = engine.Uint32(data[20:24])
	h.PositionTableOffset = engine.Uint32(data[24:28])
	h.PayloadOffset = engine.Uint32(data[28:32])

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.GetEndianEngine()

	endian.GetLittleEndianEngine().PutUint16(b[0:2], h.Flag.Options)
	b[2] = h.Flag.Engine
	b[3] = h.Flag.Compression
	engine.PutUint32(b[4:8], h.ModelCount)
	engine.PutUint32(b[8:12], h.PositionCount)
	engine.PutUint32(b[12:16], h.RowCount)
	engine.PutUint32(b[16:20], h.RowSize)
	engine.PutUint32(b[20:24], h.ModelTableOffset)
	engine.PutUint32(b[24:28], h.PositionTableOffset)
	engine.PutUint32(b[28:32], h.PayloadOffset)

	return b
}

// GetEndianEngine returns the appropriate endian engine based on the header flags.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// ValidateOffsets checks that the sections are ordered and lie within a blob of size bytes,
// including the checksum trailer.
func (h *Header) ValidateOffsets(size int) error {
	end := uint64(size) - ChecksumSize //nolint:gosec
	if size < HeaderSize+ChecksumSize ||
		h.ModelTableOffset != ModelTableOffset ||
		h.PositionTableOffset < h.ModelTableOffset ||
		h.PayloadOffset < h.PositionTableOffset ||
		uint64(h.PayloadOffset) > end {
		return errs.ErrInvalidSectionOffset
	}

	return nil
}
