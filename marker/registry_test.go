package marker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_ForAlleles(t *testing.T) {
	r := NewRegistry()

	ac, err := r.ForAlleles([]Allele{"A", "C"})
	require.NoError(t, err)
	same, err := r.ForAlleles([]Allele{"C", "A", "A", Missing})
	require.NoError(t, err)
	require.Same(t, ac, same)

	ag, err := r.ForAlleles([]Allele{"G", "A"})
	require.NoError(t, err)
	require.NotSame(t, ac, ag)

	require.Equal(t, 2, r.Len())
	require.Equal(t, []*Model{ac, ag}, r.Models())
}

func TestRegistry_Options(t *testing.T) {
	r := NewRegistry(WithHemizygotes(true), WithMaxAlleles(4))

	m, err := r.ForAlleles([]Allele{"A", "T"})
	require.NoError(t, err)
	require.True(t, m.AllowHemizygote())
	require.Equal(t, 4, m.MaxAlleles())
	require.Equal(t, BitWidth(4, true), m.BitWidth())
}

func TestRegistry_BuildError(t *testing.T) {
	r := NewRegistry(WithMaxAlleles(2))

	_, err := r.ForAlleles([]Allele{"A", "C", "G"})
	require.Error(t, err)
	require.Equal(t, 0, r.Len())
}
