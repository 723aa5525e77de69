package marker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PiRSquared17/glu-genetics/errs"
)

func TestFromAlleles(t *testing.T) {
	t.Run("biallelic", func(t *testing.T) {
		m, err := FromAlleles([]Allele{"B", "A"})
		require.NoError(t, err)
		require.Equal(t, []string{"-/-", "A/A", "A/B", "B/B"}, genotypeStrings(m))
		require.Equal(t, 2, m.BitWidth())
		require.Equal(t, 2, m.MaxAlleles())
	})

	t.Run("hemizygotes", func(t *testing.T) {
		m, err := FromAlleles([]Allele{"A", "B"}, WithHemizygotes(true))
		require.NoError(t, err)
		require.Equal(t, []string{"-/-", "-/A", "-/B", "A/A", "A/B", "B/B"}, genotypeStrings(m))
		require.Equal(t, 3, m.BitWidth())
	})

	t.Run("reserved alleles widen the model", func(t *testing.T) {
		m, err := FromAlleles([]Allele{"A", "B"}, WithMaxAlleles(5))
		require.NoError(t, err)
		require.Equal(t, 4, m.BitWidth())
		require.Equal(t, 4, m.NumGenotypes())

		for _, a := range []Allele{"C", "G", "T"} {
			_, err := m.AddAllele(a)
			require.NoError(t, err)
		}
		_, err = m.AddAllele("N")
		require.ErrorIs(t, err, errs.ErrBitWidthExceeded)
	})

	t.Run("missing and duplicates are ignored", func(t *testing.T) {
		m, err := FromAlleles([]Allele{"T", Missing, "T", "C"})
		require.NoError(t, err)
		require.Equal(t, []Allele{Missing, "C", "T"}, m.Alleles())
	})

	t.Run("too many alleles for requested width", func(t *testing.T) {
		_, err := FromAlleles([]Allele{"A", "C", "G"}, WithMaxAlleles(2))
		require.ErrorIs(t, err, errs.ErrBitWidthExceeded)
	})

	t.Run("no alleles", func(t *testing.T) {
		m, err := FromAlleles(nil)
		require.NoError(t, err)
		require.Equal(t, 1, m.NumGenotypes())
		require.Equal(t, 2, m.BitWidth())
	})
}

func TestFromAlleles_Deterministic(t *testing.T) {
	m1, err := FromAlleles([]Allele{"C", "A", "G"})
	require.NoError(t, err)
	m2, err := FromAlleles([]Allele{"G", "C", "A", "A"})
	require.NoError(t, err)

	require.Equal(t, m1.Definition(), m2.Definition())
	require.Equal(t, genotypeStrings(m1), genotypeStrings(m2))
	for code, g := range m1.Genotypes() {
		other, err := m2.Genotype(g.Alleles())
		require.NoError(t, err)
		require.Equal(t, code, other.Code())
	}
}

func TestFromGenotypes(t *testing.T) {
	t.Run("alleles collected from genotypes", func(t *testing.T) {
		m, err := FromGenotypes([]Pair{{"B", "A"}, {"A", "A"}})
		require.NoError(t, err)
		require.Equal(t, []string{"-/-", "A/A", "A/B", "B/B"}, genotypeStrings(m))
	})

	t.Run("single allele", func(t *testing.T) {
		m, err := FromGenotypes([]Pair{{"B", "B"}})
		require.NoError(t, err)
		require.Equal(t, []string{"-/-", "B/B"}, genotypeStrings(m))
		require.Equal(t, 2, m.BitWidth())
	})

	t.Run("hemizygous genotypes enable hemizygotes", func(t *testing.T) {
		m, err := FromGenotypes([]Pair{{"A", Missing}})
		require.NoError(t, err)
		require.True(t, m.AllowHemizygote())
		require.Equal(t, []string{"-/-", "-/A", "A/A"}, genotypeStrings(m))
		require.Equal(t, 3, m.BitWidth())
	})

	t.Run("hemizygous genotypes rejected when disabled", func(t *testing.T) {
		_, err := FromGenotypes([]Pair{{"A", Missing}}, WithHemizygotes(false))
		require.ErrorIs(t, err, errs.ErrHemizygoteNotAllowed)
	})
}

func TestFromAllelesAndGenotypes(t *testing.T) {
	t.Run("explicit genotypes first", func(t *testing.T) {
		m, err := FromAllelesAndGenotypes([]Allele{"C", "B", "A"}, []Pair{{"C", "C"}})
		require.NoError(t, err)
		require.Equal(t, []string{"-/-", "C/C", "A/A", "A/B", "A/C", "B/B", "B/C"}, genotypeStrings(m))
		require.Equal(t, 3, m.BitWidth())
	})

	t.Run("explicit genotypes are sorted", func(t *testing.T) {
		m1, err := FromAllelesAndGenotypes([]Allele{"A", "B"}, []Pair{{"B", "B"}, {"B", "A"}})
		require.NoError(t, err)
		m2, err := FromAllelesAndGenotypes([]Allele{"B", "A"}, []Pair{{"A", "B"}, {"B", "B"}, {"A", "B"}})
		require.NoError(t, err)
		require.Equal(t, []string{"-/-", "A/B", "B/B", "A/A"}, genotypeStrings(m1))
		require.Equal(t, m1.Definition(), m2.Definition())
	})

	t.Run("too many alleles", func(t *testing.T) {
		_, err := FromAllelesAndGenotypes([]Allele{"A", "C", "G"}, nil, WithMaxAlleles(2))
		require.ErrorIs(t, err, errs.ErrTooManyAlleles)
		require.ErrorIs(t, err, errs.ErrModel)
	})
}

func TestFromCompleteAllelesAndGenotypes(t *testing.T) {
	m, err := FromCompleteAllelesAndGenotypes([]Allele{"T", "A"}, []Pair{{"T", "T"}, {"A", "T"}})
	require.NoError(t, err)

	require.Equal(t, []Allele{Missing, "T", "A"}, m.Alleles())
	require.Equal(t, []string{"-/-", "T/T", "A/T"}, genotypeStrings(m))

	g := mustGenotype(t, m, Pair{"T", "A"})
	lo, hi := g.AlleleSlots()
	require.Equal(t, 2, lo)
	require.Equal(t, 1, hi)
}
