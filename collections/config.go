package collections

import "github.com/go-logr/logr"

// Config holds the settings applied by [Install].
type Config struct {
	// Logger receives installation, registration and dispatch events.
	// Defaults to a logger that discards everything.
	Logger logr.Logger

	// MergeStrategy is used by the dynamic "merge" operation when the caller
	// passes none. Defaults to [MergeOverride].
	MergeStrategy MergeStrategy
}

// DefaultConfig returns a [Config] populated with defaults.
func DefaultConfig() Config {
	return Config{
		Logger:        logr.Discard(),
		MergeStrategy: MergeOverride,
	}
}

// Option customises the [Config] used by [Install].
type Option func(*Config)

// WithLogger sets the logger. A logger without a sink is ignored.
func WithLogger(l logr.Logger) Option {
	return func(c *Config) {
		if l.GetSink() != nil {
			c.Logger = l
		}
	}
}

// WithMergeStrategy sets the default strategy of the dynamic "merge"
// operation.
func WithMergeStrategy(m MergeStrategy) Option {
	return func(c *Config) { c.MergeStrategy = m }
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
		if c.Logger.GetSink() == nil {
			c.Logger = logr.Discard()
		}
	}
}
