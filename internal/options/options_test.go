package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type modelConfig struct {
	maxAlleles int
	hemizygote bool
	calls      []string
}

var errNegative = errors.New("max alleles cannot be negative")

func withMaxAlleles(n int) Option[*modelConfig] {
	return New(func(c *modelConfig) error {
		if n < 0 {
			return errNegative
		}
		c.maxAlleles = n
		c.calls = append(c.calls, "maxAlleles")

		return nil
	})
}

func withHemizygote(enabled bool) Option[*modelConfig] {
	return NoError(func(c *modelConfig) {
		c.hemizygote = enabled
		c.calls = append(c.calls, "hemizygote")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &modelConfig{}
		err := Apply(cfg, withHemizygote(true), withMaxAlleles(4))
		require.NoError(t, err)
		require.True(t, cfg.hemizygote)
		require.Equal(t, 4, cfg.maxAlleles)
		require.Equal(t, []string{"hemizygote", "maxAlleles"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &modelConfig{}
		err := Apply(cfg, withMaxAlleles(3), withMaxAlleles(-1), withHemizygote(true))
		require.ErrorIs(t, err, errNegative)
		require.Equal(t, 3, cfg.maxAlleles)
		require.False(t, cfg.hemizygote)
		require.Equal(t, []string{"maxAlleles"}, cfg.calls)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &modelConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.calls)
	})

	t.Run("nil options are skipped", func(t *testing.T) {
		cfg := &modelConfig{}
		require.NoError(t, Apply(cfg, nil, withHemizygote(true)))
		require.True(t, cfg.hemizygote)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := &modelConfig{}
		require.NoError(t, Apply(cfg, withMaxAlleles(2), withMaxAlleles(7)))
		require.Equal(t, 7, cfg.maxAlleles)
	})
}
