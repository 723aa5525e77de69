// Package section defines the binary header of a persisted genotype blob.
//
// A blob stores the marker models of a descriptor, the model of each position and any
// number of packed genotype rows:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Model table (variable)                                  │
//	│  - One record per distinct model                        │
//	│  - Alleles and genotypes in code order                  │
//	├─────────────────────────────────────────────────────────┤
//	│ Position table (variable)                               │
//	│  - Initial bit offset, model index per position         │
//	├─────────────────────────────────────────────────────────┤
//	│ Row payload (variable)                                  │
//	│  - RowCount rows of RowSize bytes, compressed           │
//	├─────────────────────────────────────────────────────────┤
//	│ Checksum (8 bytes, xxHash64 of everything before it)    │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field               | Type   | Description
//	-------|---------------------|--------|----------------------------------
//	0-1    | Options             | uint16 | Magic number and flags
//	2      | Engine              | uint8  | Bit engine of the descriptor
//	3      | Compression         | uint8  | Row payload compression
//	4-7    | ModelCount          | uint32 | Records in the model table
//	8-11   | PositionCount       | uint32 | Positions per row
//	12-15  | RowCount            | uint32 | Packed rows in the payload
//	16-19  | RowSize             | uint32 | Bytes per packed row
//	20-23  | ModelTableOffset    | uint32 | Byte offset to the model table
//	24-27  | PositionTableOffset | uint32 | Byte offset to the position table
//	28-31  | PayloadOffset       | uint32 | Byte offset to the row payload
//
// The Options field is always little-endian. Bit 1 selects the byte order of every other
// multi-byte field, bits 4-15 hold the magic number and the remaining bits are reserved.
package section
