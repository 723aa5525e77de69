// Package encoding serializes the variable-length tables of a genotype blob.
//
// Strings are written with a one-byte length prefix and integers as unsigned varints, so
// both tables are independent of the blob's byte order.
//
// # Model table
//
// One record per distinct marker model, in the order the models are first used:
//
//	flags         uint8   bit 0: hemizygotes allowed
//	maxAlleles    uvarint
//	alleleCount   uvarint number of non-missing alleles
//	alleles       alleleCount × (uint8 length, bytes), slot order from slot 1
//	genotypeCount uvarint number of genotypes after Missing/Missing
//	genotypes     genotypeCount × (uvarint lo slot, uvarint hi slot), code order from code 1
//
// A record is exactly a marker.Definition, so decoding it with marker.FromDefinition
// reproduces every genotype code of the encoded model.
//
// # Position table
//
//	initialOffset uvarint leading bits before the first field
//	modelIndex    positionCount × uvarint index into the model table
package encoding
