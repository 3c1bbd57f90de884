package engine

import "errors"

// ErrInvalidBatchSize is returned by NewConfig when a non-positive batch
// size is supplied explicitly.
var ErrInvalidBatchSize = errors.New("engine: batch size must be positive")

// ErrInvalidCacheSize is returned by NewConfig when a non-positive n-gram
// cache size is supplied explicitly.
var ErrInvalidCacheSize = errors.New("engine: ngram cache size must be positive")

// Config holds the engine's optional, pluggable dependencies. The zero
// value is valid and yields a fully functional engine that degrades to
// the three always-on signals (pattern, script, charset) plus whatever
// SegmenterBackend values are wired in.
type Config struct {
	NeuralModelEnabled bool
	NeuralBackend      NeuralBackend
	BatchSize          int

	NgramBackend   NgramBackend
	NgramCacheSize int

	GPUEnabled bool

	Segmenters Segmenters
}

// ConfigOption configures a Config, in the style of go-pythainlp's
// ManagerOption.
type ConfigOption func(*Config) error

// NewConfig builds a Config from functional options, applying defaults
// first.
func NewConfig(opts ...ConfigOption) (Config, error) {
	cfg := Config{
		BatchSize:      16,
		NgramCacheSize: 4096,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// WithNeuralModel enables or disables the transformer signal. Disabling
// it here is distinct from simply not registering a backend: it lets a
// caller keep a backend configured but temporarily sidelined.
func WithNeuralModel(enabled bool) ConfigOption {
	return func(c *Config) error {
		c.NeuralModelEnabled = enabled
		return nil
	}
}

// WithNeuralBackend registers the transformer backend. Absent a
// call to this option, the neural signal reports Ready()==false and the
// fuser rebalances its weights across the remaining four signals.
func WithNeuralBackend(b NeuralBackend) ConfigOption {
	return func(c *Config) error {
		c.NeuralBackend = b
		c.NeuralModelEnabled = b != nil
		return nil
	}
}

// WithNgramBackend registers the subword n-gram backend.
func WithNgramBackend(b NgramBackend) ConfigOption {
	return func(c *Config) error {
		c.NgramBackend = b
		return nil
	}
}

// WithNgramCacheSize sets the capacity of the per-(token,script) n-gram
// distribution cache.
func WithNgramCacheSize(n int) ConfigOption {
	return func(c *Config) error {
		if n <= 0 {
			return ErrInvalidCacheSize
		}
		c.NgramCacheSize = n
		return nil
	}
}

// WithGPU sets Config.GPUEnabled. The engine has no CUDA dependency; it
// does not read this flag and does not pass it to the NeuralBackend.
func WithGPU(enabled bool) ConfigOption {
	return func(c *Config) error {
		c.GPUEnabled = enabled
		return nil
	}
}

// WithBatchSize sets the transformer backend's batch size.
func WithBatchSize(n int) ConfigOption {
	return func(c *Config) error {
		if n <= 0 {
			return ErrInvalidBatchSize
		}
		c.BatchSize = n
		return nil
	}
}

// WithSegmenters registers the script-specific external tokenizers used
// by the tokenizer's script-segmentation stage.
func WithSegmenters(s Segmenters) ConfigOption {
	return func(c *Config) error {
		c.Segmenters = s
		return nil
	}
}
