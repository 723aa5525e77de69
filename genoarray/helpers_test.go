package genoarray

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PiRSquared17/glu-genetics/format"
	"github.com/PiRSquared17/glu-genetics/marker"
)

var engines = []format.EngineType{format.EngineReference, format.EngineWord}

// forEachEngine runs fn once per backend.
func forEachEngine(t *testing.T, fn func(t *testing.T, engine format.EngineType)) {
	t.Helper()
	for _, engine := range engines {
		t.Run(engine.String(), func(t *testing.T) {
			fn(t, engine)
		})
	}
}

func biallelic(t testing.TB) *marker.Model {
	t.Helper()
	m, err := marker.FromAlleles([]marker.Allele{"A", "B"})
	require.NoError(t, err)

	return m
}

func repeatModel(m *marker.Model, n int) []*marker.Model {
	models := make([]*marker.Model, n)
	for i := range models {
		models[i] = m
	}

	return models
}

func mustDescriptor(t testing.TB, models []*marker.Model, opts ...DescriptorOption) *Descriptor {
	t.Helper()
	d, err := NewDescriptor(models, opts...)
	require.NoError(t, err)

	return d
}

func mustPairs(t testing.TB, d *Descriptor, pairs []marker.Pair) *Array {
	t.Helper()
	a, err := FromPairs(d, pairs)
	require.NoError(t, err)

	return a
}

var (
	nn = marker.MissingPair
	aa = marker.Pair{"A", "A"}
	ab = marker.Pair{"A", "B"}
	bb = marker.Pair{"B", "B"}
)
