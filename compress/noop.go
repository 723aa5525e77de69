package compress

// NoOpCompressor stores the payload as is. Blobs written with it can be decoded without
// copying the rows.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data. The result shares memory with the input.
func (NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data. The result shares memory with the input.
func (NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
