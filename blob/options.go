package blob

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/PiRSquared17/glu-genetics/endian"
	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/format"
	"github.com/PiRSquared17/glu-genetics/internal/options"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type encoderConfig struct {
	engine      endian.EndianEngine
	compression format.CompressionType
	logger      *slog.Logger
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*encoderConfig]

func newEncoderConfig(opts []EncoderOption) (*encoderConfig, error) {
	cfg := &encoderConfig{
		engine:      endian.GetLittleEndianEngine(),
		compression: format.CompressionZstd,
		logger:      discardLogger(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithLittleEndian writes multi-byte header fields little-endian. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes multi-byte header fields big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithCompression selects the row payload codec. The default is format.CompressionZstd.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		if !compression.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, compression)
		}
		c.compression = compression

		return nil
	})
}

// WithLogger sets the logger for encoding summaries. Nothing is logged by default.
func WithLogger(logger *slog.Logger) EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

type decoderConfig struct {
	engine    format.EngineType
	hasEngine bool
	logger    *slog.Logger
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*decoderConfig]

func newDecoderConfig(opts []DecoderOption) (*decoderConfig, error) {
	cfg := &decoderConfig{logger: discardLogger()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithDecoderEngine overrides the bit engine recorded in the blob for the rebuilt descriptor.
// Both engines read the same bytes, so this only affects speed.
func WithDecoderEngine(engine format.EngineType) DecoderOption {
	return options.New(func(c *decoderConfig) error {
		if !engine.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidEngine, engine)
		}
		c.engine = engine
		c.hasEngine = true

		return nil
	})
}

// WithDecoderLogger sets the logger for decoding summaries. Nothing is logged by default.
func WithDecoderLogger(logger *slog.Logger) DecoderOption {
	return options.NoError(func(c *decoderConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}
