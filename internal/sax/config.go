package sax

import (
	"context"

	"github.com/go-sod/sax/internal/alphabet"
	"github.com/go-sod/sax/internal/saxerr"
)

// Config holds the discretisation parameters shared by every node. A zero
// WindowSize selects chunking.
type Config struct {
	WindowSize    int      `envconfig:"SAX_WINDOW_SIZE" default:"30" toml:"window_size" json:"window_size"`
	PAASize       int      `envconfig:"SAX_PAA_SIZE" default:"4" toml:"paa_size" json:"paa_size"`
	AlphabetSize  int      `envconfig:"SAX_ALPHABET_SIZE" default:"3" toml:"alphabet_size" json:"alphabet_size"`
	Strategy      Strategy `envconfig:"SAX_NR_STRATEGY" default:"EXACT" toml:"strategy" json:"strategy"`
	NormThreshold float64  `envconfig:"SAX_NORM_THRESHOLD" default:"0.01" toml:"norm_threshold" json:"norm_threshold"`
}

// DefaultConfig mirrors the envconfig defaults.
func DefaultConfig() Config {
	return Config{
		WindowSize:    30,
		PAASize:       4,
		AlphabetSize:  3,
		Strategy:      StrategyExact,
		NormThreshold: 0.01,
	}
}

func (c Config) Chunking() bool {
	return c.WindowSize == 0
}

func (c Config) Validate() error {
	if c.WindowSize < 0 {
		return saxerr.InvalidParameter("window size %d must not be negative", c.WindowSize)
	}
	if c.PAASize < 1 {
		return saxerr.InvalidParameter("PAA size %d must be positive", c.PAASize)
	}
	if !c.Chunking() && c.PAASize > c.WindowSize {
		return saxerr.InvalidParameter("PAA size %d can't be greater than the window size %d", c.PAASize, c.WindowSize)
	}
	if err := alphabet.Validate(c.AlphabetSize); err != nil {
		return err
	}
	if c.NormThreshold < 0 || c.NormThreshold > 1 {
		return saxerr.InvalidParameter("normalisation threshold %v is out of [0, 1]", c.NormThreshold)
	}
	if _, err := ParseStrategy(string(c.Strategy)); err != nil {
		return err
	}
	return nil
}

// Discretize validates c and runs chunking or sliding-window SAX over series.
func (c Config) Discretize(ctx context.Context, a alphabet.Alphabet, series []float64, opts ...Option) (*Index, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	cuts, err := a.Cuts(c.AlphabetSize)
	if err != nil {
		return nil, err
	}
	if c.Chunking() {
		return ByChunking(series, c.PAASize, cuts, c.NormThreshold, opts...)
	}
	return ViaWindow(ctx, series, c.WindowSize, c.PAASize, cuts, c.Strategy, c.NormThreshold, opts...)
}
