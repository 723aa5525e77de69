package blob

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PiRSquared17/glu-genetics/format"
	"github.com/PiRSquared17/glu-genetics/genoarray"
	"github.com/PiRSquared17/glu-genetics/marker"
)

var (
	compressions = []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	engines = []format.EngineType{format.EngineReference, format.EngineWord}
)

// fixtureModels returns a biallelic model, a hemizygous model and a model whose genotypes
// were registered in a non-canonical order.
func fixtureModels(t testing.TB) []*marker.Model {
	t.Helper()

	snp, err := marker.FromAlleles([]marker.Allele{"A", "G"})
	require.NoError(t, err)

	hemi, err := marker.FromGenotypes([]marker.Pair{{"C", marker.Missing}, {"T", marker.Missing}, {"C", "T"}})
	require.NoError(t, err)

	custom, err := marker.NewModel(marker.WithMaxAlleles(3))
	require.NoError(t, err)
	for _, p := range []marker.Pair{{"T", "T"}, {"del", "T"}, {"C", "del"}, {"C", "C"}} {
		_, err := custom.AddGenotype(p)
		require.NoError(t, err)
	}

	return []*marker.Model{snp, hemi, custom}
}

// fixtureDescriptor lays the fixture models out over 11 positions, starting 3 bits in.
func fixtureDescriptor(t testing.TB, engine format.EngineType) *genoarray.Descriptor {
	t.Helper()

	m := fixtureModels(t)
	models := []*marker.Model{m[0], m[1], m[2], m[0], m[0], m[2], m[1], m[0], m[2], m[2], m[0]}
	d, err := genoarray.NewDescriptor(models, genoarray.WithInitialOffset(3), genoarray.WithEngine(engine))
	require.NoError(t, err)

	return d
}

// randomRows fills n arrays with genotypes drawn from each position's model.
func randomRows(t testing.TB, d *genoarray.Descriptor, n int, seed int64) []*genoarray.Array {
	t.Helper()

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec
	rows := make([]*genoarray.Array, n)
	for r := range rows {
		genotypes := make([]*marker.Genotype, d.Len())
		for i, m := range d.Models() {
			all := m.Genotypes()
			genotypes[i] = all[rng.Intn(len(all))]
		}

		row, err := genoarray.FromGenotypes(d, genotypes)
		require.NoError(t, err)
		rows[r] = row
	}

	return rows
}

func mustEncode(t testing.TB, d *genoarray.Descriptor, rows []*genoarray.Array, opts ...EncoderOption) []byte {
	t.Helper()

	enc, err := NewEncoder(d, opts...)
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, enc.Add(row))
	}

	data, err := enc.Finish()
	require.NoError(t, err)

	return data
}
