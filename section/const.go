package section

const (
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2 and 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicGenotypeV1 identifies version 1 of the genotype blob format.
	MagicGenotypeV1 = 0xE610
)

// offset and section sizes in the blob file
const (
	HeaderSize       = 32         // fixed header size in bytes
	ChecksumSize     = 8          // xxHash64 trailer size in bytes
	ModelTableOffset = HeaderSize // the model table always follows the header
)
