package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/format"
)

func sampleHeader() *Header {
	h := NewHeader()
	h.Flag.SetEngine(format.EngineReference)
	h.Flag.SetCompression(format.CompressionZstd)
	h.ModelCount = 3
	h.PositionCount = 1000
	h.RowCount = 42
	h.RowSize = 250
	h.PositionTableOffset = 80
	h.PayloadOffset = 1090

	return h
}

func TestHeader_RoundTrip(t *testing.T) {
	for _, big := range []bool{false, true} {
		h := sampleHeader()
		if big {
			h.Flag.WithBigEndian()
		}

		data := h.Bytes()
		require.Len(t, data, HeaderSize)

		var parsed Header
		require.NoError(t, parsed.Parse(data))
		require.Equal(t, *h, parsed)
	}
}

func TestHeader_Layout(t *testing.T) {
	h := sampleHeader()
	data := h.Bytes()

	require.Equal(t, []byte{0x10, 0xE6}, data[0:2])
	require.Equal(t, byte(format.EngineReference), data[2])
	require.Equal(t, byte(format.CompressionZstd), data[3])
	require.Equal(t, []byte{3, 0, 0, 0}, data[4:8])
	require.Equal(t, []byte{0xE8, 0x03, 0, 0}, data[8:12])
	require.Equal(t, []byte{32, 0, 0, 0}, data[20:24])

	h.Flag.WithBigEndian()
	data = h.Bytes()
	require.Equal(t, []byte{0x12, 0xE6}, data[0:2])
	require.Equal(t, []byte{0, 0, 0x03, 0xE8}, data[8:12])
}

func TestHeader_ParseErrors(t *testing.T) {
	var h Header

	require.ErrorIs(t, h.Parse(make([]byte, 31)), errs.ErrInvalidHeaderSize)
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize)), errs.ErrInvalidMagicNumber)

	data := sampleHeader().Bytes()
	data[3] = 0xFF
	require.ErrorIs(t, h.Parse(data), errs.ErrInvalidHeaderFlags)
}

func TestHeader_ValidateOffsets(t *testing.T) {
	h := sampleHeader()
	require.NoError(t, h.ValidateOffsets(2000))
	require.NoError(t, h.ValidateOffsets(1098))
	require.ErrorIs(t, h.ValidateOffsets(1097), errs.ErrInvalidSectionOffset)
	require.ErrorIs(t, h.ValidateOffsets(10), errs.ErrInvalidSectionOffset)

	h.PositionTableOffset = 20
	require.ErrorIs(t, h.ValidateOffsets(2000), errs.ErrInvalidSectionOffset)

	h = sampleHeader()
	h.PayloadOffset = 70
	require.ErrorIs(t, h.ValidateOffsets(2000), errs.ErrInvalidSectionOffset)
}
