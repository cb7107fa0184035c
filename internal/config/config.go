// Package config holds the explicit pipeline configuration.
//
// Configuration is a value constructed by the caller and passed into the
// loader, transport, and chunker at construction time. There is no ambient
// process-wide state; tests run with varied configurations in isolation.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Defaults for pipeline knobs.
const (
	// DefaultMaxParallel is the default concurrency ceiling for batch loads.
	DefaultMaxParallel = 4

	// DefaultFetchTimeout bounds one remote fetch.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultEncoding is the assumed text encoding for local files.
	DefaultEncoding = "utf-8"

	// DefaultWindowSize is the chunk window size in characters.
	DefaultWindowSize = 1000

	// DefaultOverlap is the chunk overlap in characters.
	DefaultOverlap = 100
)

// Config carries every tunable the pipeline accepts.
type Config struct {
	// MaxParallel bounds the number of in-flight single-source loads.
	MaxParallel int `toml:"max_parallel"`

	// FetchTimeout bounds one remote fetch end to end.
	FetchTimeout time.Duration `toml:"fetch_timeout"`

	// Encoding is the assumed text encoding for local files.
	Encoding string `toml:"encoding"`

	// WindowSize is the chunk window size in characters.
	WindowSize int `toml:"window_size"`

	// Overlap is the chunk overlap in characters.
	Overlap int `toml:"overlap"`
}

// Default returns the configuration with every knob at its default.
func Default() Config {
	return Config{
		MaxParallel:  DefaultMaxParallel,
		FetchTimeout: DefaultFetchTimeout,
		Encoding:     DefaultEncoding,
		WindowSize:   DefaultWindowSize,
		Overlap:      DefaultOverlap,
	}
}

// Load reads a TOML configuration file over the defaults.
// Keys absent from the file keep their default values. A missing file is
// an error; callers wanting pure defaults use Default directly.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot honour.
// Note overlap >= window size is accepted: the chunker degrades to
// non-overlapping windows rather than rejecting the configuration.
func (c Config) Validate() error {
	if c.MaxParallel < 1 {
		return fmt.Errorf("max_parallel must be positive, got %d", c.MaxParallel)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %s", c.FetchTimeout)
	}
	if c.WindowSize < 1 {
		return fmt.Errorf("window_size must be positive, got %d", c.WindowSize)
	}
	if c.Overlap < 0 {
		return fmt.Errorf("overlap must not be negative, got %d", c.Overlap)
	}
	return nil
}
