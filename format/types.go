package format

type (
	EngineType      uint8
	CompressionType uint8
)

const (
	EngineReference EngineType = 0x1 // EngineReference reads and writes one bit at a time.
	EngineWord      EngineType = 0x2 // EngineWord reads and writes whole 64-bit words.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EngineType) String() string {
	switch e {
	case EngineReference:
		return "Reference"
	case EngineWord:
		return "Word"
	default:
		return "Unknown"
	}
}

// Valid reports whether e names a known bit engine.
func (e EngineType) Valid() bool {
	return e == EngineReference || e == EngineWord
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c names a known compression algorithm.
func (c CompressionType) Valid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}
