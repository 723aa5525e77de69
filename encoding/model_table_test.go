package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/marker"
)

func TestModelTable_RoundTrip(t *testing.T) {
	biallelic, err := marker.FromAlleles([]marker.Allele{"A", "G"})
	require.NoError(t, err)
	hemizygous, err := marker.FromAlleles([]marker.Allele{"C", "T"}, marker.WithHemizygotes(true))
	require.NoError(t, err)
	indel, err := marker.FromAlleles([]marker.Allele{"DEL", "INS"}, marker.WithMaxAlleles(6))
	require.NoError(t, err)
	empty, err := marker.NewModel()
	require.NoError(t, err)

	models := []*marker.Model{biallelic, hemizygous, indel, empty}

	encoder := NewModelTableEncoder()
	defer encoder.Finish()
	for _, m := range models {
		require.NoError(t, encoder.WriteModel(m))
	}

	defs, err := DecodeModelTable(encoder.Bytes(), len(models))
	require.NoError(t, err)
	require.Len(t, defs, len(models))

	for i, m := range models {
		require.Equal(t, m.Definition(), defs[i])

		reloaded, err := marker.FromDefinition(defs[i])
		require.NoError(t, err)
		require.Equal(t, m.Fingerprint(), reloaded.Fingerprint())
	}
}

func TestModelTable_Layout(t *testing.T) {
	m, err := marker.FromAlleles([]marker.Allele{"A", "B"})
	require.NoError(t, err)

	encoder := NewModelTableEncoder()
	defer encoder.Finish()
	require.NoError(t, encoder.WriteModel(m))

	require.Equal(t, []byte{
		0x00,           // flags
		2,              // max alleles
		2, 1, 'A', 1, 'B', // alleles
		3, 1, 1, 1, 2, 2, 2, // genotypes A/A A/B B/B
	}, encoder.Bytes())
	require.Equal(t, 14, encoder.Size())
}

func TestModelTable_AlleleTooLong(t *testing.T) {
	encoder := NewModelTableEncoder()
	defer encoder.Finish()

	def := marker.Definition{Alleles: []marker.Allele{marker.Allele(strings.Repeat("N", 300))}, MaxAlleles: 2}
	require.ErrorIs(t, encoder.Write(def), errs.ErrAlleleTooLong)
}

func TestDecodeModelTable_Corrupt(t *testing.T) {
	valid := []byte{0x00, 2, 2, 1, 'A', 1, 'B', 3, 1, 1, 1, 2, 2, 2}

	tests := []struct {
		name  string
		data  []byte
		count int
	}{
		{name: "truncated", data: valid[:10], count: 1},
		{name: "trailing bytes", data: append(append([]byte{}, valid...), 0), count: 1},
		{name: "missing record", data: valid, count: 2},
		{name: "unknown flags", data: append([]byte{0x80}, valid[1:]...), count: 1},
		{name: "slot out of range", data: []byte{0x00, 2, 1, 1, 'A', 1, 1, 2}, count: 1},
		{name: "allele count beyond data", data: []byte{0x00, 2, 100, 1, 'A'}, count: 1},
		{name: "max alleles beyond limit", data: []byte{0x00, 0xFF, 0xFF, 0xFF, 0x0F, 0, 0}, count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeModelTable(tt.data, tt.count)
			require.ErrorIs(t, err, errs.ErrCorruptModelTable)
		})
	}
}
