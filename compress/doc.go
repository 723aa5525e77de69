// Package compress provides the codecs applied to the packed row payload of a genotype blob.
//
// Packed genotype rows are dominated by a few codes (usually the common homozygote and
// the missing genotype), so general purpose compressors shrink them well. Four codecs are
// available through GetCodec:
//
//   - format.CompressionNone: pass-through
//   - format.CompressionZstd: best ratio; pure Go by default, the cgo gozstd binding when
//     built with the gozstd tag
//   - format.CompressionS2: fast, moderate ratio
//   - format.CompressionLZ4: fastest decompression
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// All codecs are safe for concurrent use. Encoders and decoders with internal state are
// pooled with sync.Pool.
package compress
