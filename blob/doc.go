// Package blob persists packed genotype rows together with the marker models needed to
// read them back.
//
// An Encoder collects rows sharing one genoarray.Descriptor and writes a self-contained
// blob: the distinct models, the model of each position, the compressed rows and an
// xxHash64 checksum. A Decoder verifies the checksum, rebuilds every model with
// marker.FromDefinition so that genotype codes match the encoder's exactly, and hands
// out rows as genoarray.Array values.
//
// Example:
//
//	enc, err := blob.NewEncoder(desc, blob.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	for _, row := range rows {
//	    if err := enc.Add(row); err != nil {
//	        return err
//	    }
//	}
//	data, err := enc.Finish()
//
//	dec, err := blob.NewDecoder(data)
//	if err != nil {
//	    return err
//	}
//	first, err := dec.Row(0)
//
// See package section for the binary layout.
package blob
