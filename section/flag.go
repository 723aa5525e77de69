package section

import (
	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/format"
)

// Flag holds the packed options and the engine and compression bytes of the header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved for future use, must be set to 0.
	// Bits 4-15 are magic number to identify the blob format:
	//   - 0xE610: genotype blob format v1
	Options uint16

	// Engine is the format.EngineType of the stored descriptor.
	Engine uint8

	// Compression is the format.CompressionType of the row payload.
	Compression uint8
}

// NewFlag creates a little-endian flag for an uncompressed payload written by the word engine.
func NewFlag() Flag {
	return Flag{
		Options:     MagicGenotypeV1,
		Engine:      uint8(format.EngineWord),
		Compression: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether the data is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the data is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number in the Options field is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicGenotypeV1
}

func (f *Flag) SetEngine(engine format.EngineType) {
	f.Engine = uint8(engine)
}

func (f Flag) GetEngine() format.EngineType {
	return format.EngineType(f.Engine)
}

func (f *Flag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

func (f Flag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks the magic number, the reserved bits and the engine and compression types.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.GetEngine().Valid() || !f.GetCompression().Valid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
