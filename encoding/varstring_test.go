package encoding

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PiRSquared17/glu-genetics/errs"
)

func TestVarStringEncoder_Write(t *testing.T) {
	encoder := NewVarStringEncoder()
	defer encoder.Finish()

	require.NoError(t, encoder.Write(""))
	require.Equal(t, 1, encoder.Len())
	require.Equal(t, 1, encoder.Size())

	require.NoError(t, encoder.Write("ACGT"))
	require.Equal(t, 2, encoder.Len())
	require.Equal(t, 6, encoder.Size())
	require.Equal(t, []byte{0, 4, 'A', 'C', 'G', 'T'}, encoder.Bytes())
}

func TestVarStringEncoder_Write_MaxLength(t *testing.T) {
	encoder := NewVarStringEncoder()
	defer encoder.Finish()

	maxStr := strings.Repeat("A", MaxTextLength)
	require.NoError(t, encoder.Write(maxStr))
	require.Equal(t, 256, encoder.Size())
	require.Equal(t, byte(MaxTextLength), encoder.Bytes()[0])

	err := encoder.Write(maxStr + "C")
	require.ErrorIs(t, err, errs.ErrAlleleTooLong)
	require.Equal(t, 1, encoder.Len())
	require.Equal(t, 256, encoder.Size())
}

func TestVarStringEncoder_WriteSlice(t *testing.T) {
	encoder := NewVarStringEncoder()
	defer encoder.Finish()

	require.NoError(t, encoder.WriteSlice([]string{"A", "TT"}))
	require.Equal(t, 2, encoder.Len())
	require.Equal(t, []byte{1, 'A', 2, 'T', 'T'}, encoder.Bytes())

	err := encoder.WriteSlice([]string{"G", strings.Repeat("C", MaxTextLength+1)})
	require.ErrorIs(t, err, errs.ErrAlleleTooLong)
	require.Equal(t, 2, encoder.Len())
	require.Equal(t, 5, encoder.Size())

	require.NoError(t, encoder.WriteSlice(nil))
	require.Equal(t, 2, encoder.Len())
}

func TestVarStringEncoder_WriteUvarint(t *testing.T) {
	encoder := NewVarStringEncoder()
	defer encoder.Finish()

	encoder.WriteUvarint(0)
	encoder.WriteUvarint(127)
	encoder.WriteUvarint(300)
	require.Equal(t, []byte{0x00, 0x7F, 0xAC, 0x02}, encoder.Bytes())
	require.Equal(t, 0, encoder.Len())
}

func TestVarStringDecoder(t *testing.T) {
	encoder := NewVarStringEncoder()
	defer encoder.Finish()

	require.NoError(t, encoder.Write("indel"))
	encoder.WriteUvarint(1 << 20)
	require.NoError(t, encoder.WriteByte(0x7E))
	require.NoError(t, encoder.Write(""))

	d := NewVarStringDecoder(encoder.Bytes())

	s, err := d.ReadString()
	require.NoError(t, err)
	require.Equal(t, "indel", s)

	v, err := d.ReadUvarint()
	require.NoError(t, err)
	require.Equal(t, uint64(1<<20), v)

	c, err := d.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0x7E), c)

	s, err = d.ReadString()
	require.NoError(t, err)
	require.Empty(t, s)

	require.Equal(t, 0, d.Remaining())
	require.Equal(t, encoder.Size(), d.Offset())

	_, err = d.ReadByte()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	_, err = d.ReadUvarint()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestVarStringDecoder_Truncated(t *testing.T) {
	_, err := NewVarStringDecoder([]byte{5, 'A', 'C'}).ReadString()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = NewVarStringDecoder([]byte{0x80}).ReadUvarint()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestVarStringDecoder_ReadInt(t *testing.T) {
	d := NewVarStringDecoder([]byte{5, 5, 0})

	v, err := d.ReadInt(5)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	_, err = d.ReadInt(4)
	require.Error(t, err)

	_, err = d.ReadInt(-1)
	require.Error(t, err)
}
