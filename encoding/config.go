package encoding

import (
	"fmt"

	"github.com/arloliu/nbtrock/endian"
	"github.com/arloliu/nbtrock/format"
	"github.com/arloliu/nbtrock/internal/options"
)

// Config holds the settings shared by Decoder and Encoder.
type Config struct {
	engine       endian.EndianEngine
	maxDepth     int
	detectHeader bool
	framed       bool
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		engine:       endian.GetLittleEndianEngine(),
		maxDepth:     format.DefaultMaxDepth,
		detectHeader: true,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Option represents a functional option for configuring a Decoder or Encoder.
type Option = options.Option[*Config]

// WithLittleEndian reads and writes tag payloads little-endian (Bedrock edition).
// It is the default option.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian reads and writes tag payloads big-endian (Java edition).
// The framing header, when present, stays little-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithMaxDepth limits how deeply compounds and lists may nest.
// The root compound is depth 1.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *Config) error {
		if depth <= 0 {
			return fmt.Errorf("invalid max depth: %d", depth)
		}
		c.maxDepth = depth

		return nil
	})
}

// WithHeaderDetection enables or disables skipping a leading framing header when
// decoding. Detection is on by default.
func WithHeaderDetection(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.detectHeader = enabled
	})
}

// WithFramingHeader makes the encoder prepend the 8-byte framing header.
// It is off by default.
func WithFramingHeader(framed bool) Option {
	return options.NoError(func(c *Config) {
		c.framed = framed
	})
}
