package compress

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/format"
)

var compressionTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// packedRows returns size bytes shaped like packed 2-bit genotype rows: mostly one
// homozygous code with scattered heterozygous and missing calls.
func packedRows(size int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	data := make([]byte, size)
	for i := range data {
		var b byte
		for k := 0; k < 4; k++ {
			code := byte(1)
			switch r := rng.Intn(100); {
			case r < 5:
				code = 0
			case r < 20:
				code = 2
			case r < 25:
				code = 3
			}
			b = b<<2 | code
		}
		data[i] = b
	}

	return data
}

func TestGetCodec(t *testing.T) {
	for _, ct := range compressionTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err, ct.String())
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"single byte":    {0x55},
		"small rows":     packedRows(64, 1),
		"large rows":     packedRows(256*1024, 2),
		"all missing":    make([]byte, 100000),
		"incompressible": func() []byte { b := make([]byte, 4096); rand.New(rand.NewSource(3)).Read(b); return b }(),
	}

	for _, ct := range compressionTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, payload := range payloads {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				restored, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.True(t, bytes.Equal(payload, restored))
			})
		}
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for _, ct := range compressionTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			restored, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, restored)

			compressed, err := codec.Compress([]byte{})
			require.NoError(t, err)
			restored, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestAllCodecs_CompressGenotypeRows(t *testing.T) {
	payload := packedRows(64*1024, 4)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)

		stats := CompressionStats{
			Algorithm:      ct,
			OriginalSize:   int64(len(payload)),
			CompressedSize: int64(len(compressed)),
		}
		require.Less(t, stats.CompressionRatio(), 1.0, ct.String())
		require.Positive(t, stats.SpaceSavings(), ct.String())
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	garbage := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB, 0xFA, 0xF9, 0xF8}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	for _, ct := range compressionTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			var wg sync.WaitGroup
			failures := make(chan string, 16)
			for g := range 16 {
				wg.Add(1)
				go func(seed int64) {
					defer wg.Done()
					payload := packedRows(8192, seed)
					compressed, err := codec.Compress(payload)
					if err != nil {
						failures <- err.Error()
						return
					}
					restored, err := codec.Decompress(compressed)
					if err != nil {
						failures <- err.Error()
						return
					}
					if !bytes.Equal(payload, restored) {
						failures <- "round trip mismatch"
					}
				}(int64(g))
			}
			wg.Wait()
			close(failures)

			for f := range failures {
				t.Error(f)
			}
		})
	}
}

func TestCompressionStats(t *testing.T) {
	stats := CompressionStats{Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 250}
	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	require.Zero(t, CompressionStats{}.CompressionRatio())
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	data := []byte{1, 2, 3}
	out, err := NewNoOpCompressor().Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}

func BenchmarkAllCodecs(b *testing.B) {
	payload := packedRows(64*1024, 5)

	for _, ct := range compressionTypes {
		codec, err := GetCodec(ct)
		require.NoError(b, err)
		compressed, err := codec.Compress(payload)
		require.NoError(b, err)

		b.Run(ct.String()+"/Compress", func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				_, _ = codec.Compress(payload)
			}
		})
		b.Run(ct.String()+"/Decompress", func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				_, _ = codec.Decompress(compressed)
			}
		})
	}
}

func TestS2_RejectsOversizedBlock(t *testing.T) {
	// an S2 block starts with its decoded length as a uvarint
	block := binary.AppendUvarint(nil, MaxDecompressedSize+1)
	block = append(block, 0x00, 0x01)

	_, err := NewS2Compressor().Decompress(block)
	require.Error(t, err)
}
