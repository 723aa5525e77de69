package pool

import (
	"encoding/binary"
	"io"
	"sync"
)

// Default sizes for pooled buffers. Model tables are small; row payloads hold every packed
// row of a blob and are sized accordingly.
const (
	TableBufferDefaultSize   = 1024 * 4         // 4KiB
	TableBufferMaxThreshold  = 1024 * 64        // 64KiB
	RowsBufferDefaultSize    = 1024 * 64        // 64KiB
	RowsBufferMaxThreshold   = 1024 * 1024 * 8  // 8MiB
	growthSmallBufferDivisor = 4
)

// ByteBuffer is an append-only byte slice wrapper that can be recycled through a ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes written.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data, growing the buffer as needed.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteByte appends a single byte.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// WriteUvarint appends v as an unsigned varint.
func (bb *ByteBuffer) WriteUvarint(v uint64) {
	bb.B = binary.AppendUvarint(bb.B, v)
}

// Grow makes room for at least requiredBytes more bytes without reallocating.
//
// Small buffers grow by a fixed step; buffers larger than four steps grow by a quarter of
// their capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := TableBufferDefaultSize
	if cap(bb.B) > 4*TableBufferDefaultSize {
		growBy = cap(bb.B) / growthSmallBufferDivisor
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data and implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the buffer contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool recycles ByteBuffers. Buffers that grew past maxThreshold are dropped
// instead of being returned to the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose new buffers start with defaultSize capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	tableDefaultPool = NewByteBufferPool(TableBufferDefaultSize, TableBufferMaxThreshold)
	rowsDefaultPool  = NewByteBufferPool(RowsBufferDefaultSize, RowsBufferMaxThreshold)
)

// GetTableBuffer retrieves a buffer sized for model and position tables.
func GetTableBuffer() *ByteBuffer {
	return tableDefaultPool.Get()
}

// PutTableBuffer returns a table buffer to its pool.
func PutTableBuffer(bb *ByteBuffer) {
	tableDefaultPool.Put(bb)
}

// GetRowsBuffer retrieves a buffer sized for packed row payloads.
func GetRowsBuffer() *ByteBuffer {
	return rowsDefaultPool.Get()
}

// PutRowsBuffer returns a row payload buffer to its pool.
func PutRowsBuffer(bb *ByteBuffer) {
	rowsDefaultPool.Put(bb)
}
