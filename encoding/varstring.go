package encoding

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/internal/pool"
)

// MaxTextLength is the maximum length for allele strings.
// This limit ensures compatibility with uint8 length prefix encoding.
const MaxTextLength = 255

// VarStringEncoder encodes length-prefixed strings and unsigned varints into a pooled buffer.
//
// Each string is encoded as:
//   - 1 byte: length (0-255)
//   - N bytes: string data
type VarStringEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewVarStringEncoder creates a new encoder backed by a pooled table buffer.
// Call Finish to return the buffer to the pool.
func NewVarStringEncoder() *VarStringEncoder {
	return &VarStringEncoder{
		buf: pool.GetTableBuffer(),
	}
}

// Write encodes a single string with uint8 length prefix.
//
// Parameters:
//   - text: String to encode (must not exceed 255 bytes)
//
// Returns:
//   - error: errs.ErrAlleleTooLong if the string exceeds MaxTextLength
func (e *VarStringEncoder) Write(text string) error {
	if len(text) > MaxTextLength {
		return fmt.Errorf("%w: length %d exceeds maximum %d", errs.ErrAlleleTooLong, len(text), MaxTextLength)
	}

	e.count++

	// Pre-grow buffer for length byte + string data
	e.buf.Grow(1 + len(text))
	_ = e.buf.WriteByte(uint8(len(text))) //nolint:gosec
	e.buf.MustWrite([]byte(text))

	return nil
}

// WriteSlice encodes a slice of strings. Nothing is written if any string is too long.
func (e *VarStringEncoder) WriteSlice(texts []string) error {
	totalSize := 0
	for _, text := range texts {
		if len(text) > MaxTextLength {
			return fmt.Errorf("%w: length %d exceeds maximum %d", errs.ErrAlleleTooLong, len(text), MaxTextLength)
		}
		totalSize += 1 + len(text) // length byte + string data
	}

	e.buf.Grow(totalSize)
	for _, text := range texts {
		_ = e.buf.WriteByte(uint8(len(text))) //nolint:gosec
		e.buf.MustWrite([]byte(text))
		e.count++
	}

	return nil
}

// WriteUvarint encodes v as an unsigned varint.
func (e *VarStringEncoder) WriteUvarint(v uint64) {
	e.buf.WriteUvarint(v)
}

// WriteByte writes a single raw byte.
func (e *VarStringEncoder) WriteByte(c byte) error {
	return e.buf.WriteByte(c)
}

// Bytes returns the encoded data. The returned slice shares the encoder's buffer and is
// valid until Finish.
func (e *VarStringEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of strings encoded.
func (e *VarStringEncoder) Len() int {
	return e.count
}

// Size returns the total size of encoded data in bytes.
func (e *VarStringEncoder) Size() int {
	return e.buf.Len()
}

// Finish returns the buffer to the pool. The encoder must not be used afterwards.
func (e *VarStringEncoder) Finish() {
	if e.buf != nil {
		pool.PutTableBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// VarStringDecoder reads values written by VarStringEncoder from a byte slice.
type VarStringDecoder struct {
	data   []byte
	offset int
}

// NewVarStringDecoder creates a decoder reading data from the start.
func NewVarStringDecoder(data []byte) *VarStringDecoder {
	return &VarStringDecoder{data: data}
}

// ReadString reads one length-prefixed string.
func (d *VarStringDecoder) ReadString() (string, error) {
	n, err := d.ReadByte()
	if err != nil {
		return "", err
	}

	end := d.offset + int(n)
	if end > len(d.data) {
		return "", fmt.Errorf("string of %d bytes at offset %d: %w", n, d.offset, io.ErrUnexpectedEOF)
	}
	s := string(d.data[d.offset:end])
	d.offset = end

	return s, nil
}

// ReadUvarint reads one unsigned varint.
func (d *VarStringDecoder) ReadUvarint() (uint64, error) {
	v, n := binary.Uvarint(d.data[d.offset:])
	if n <= 0 {
		return 0, fmt.Errorf("uvarint at offset %d: %w", d.offset, io.ErrUnexpectedEOF)
	}
	d.offset += n

	return v, nil
}

// ReadInt reads one unsigned varint that must not exceed limit.
func (d *VarStringDecoder) ReadInt(limit int) (int, error) {
	v, err := d.ReadUvarint()
	if err != nil {
		return 0, err
	}
	if limit < 0 || v > uint64(limit) { //nolint:gosec
		return 0, fmt.Errorf("value %d at offset %d exceeds %d", v, d.offset, limit)
	}

	return int(v), nil //nolint:gosec
}

// ReadByte reads one raw byte.
func (d *VarStringDecoder) ReadByte() (byte, error) {
	if d.offset >= len(d.data) {
		return 0, fmt.Errorf("byte at offset %d: %w", d.offset, io.ErrUnexpectedEOF)
	}
	c := d.data[d.offset]
	d.offset++

	return c, nil
}

// Offset returns the number of bytes consumed.
func (d *VarStringDecoder) Offset() int {
	return d.offset
}

// Remaining returns the number of unread bytes.
func (d *VarStringDecoder) Remaining() int {
	return len(d.data) - d.offset
}
