package sax

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sod/sax/internal/alphabet"
	"github.com/go-sod/sax/internal/saxerr"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		valid  bool
	}{
		{name: "defaults", mutate: func(c *Config) {}, valid: true},
		{name: "chunking", mutate: func(c *Config) { c.WindowSize = 0; c.PAASize = 50 }, valid: true},
		{name: "negative window", mutate: func(c *Config) { c.WindowSize = -1 }},
		{name: "paa over window", mutate: func(c *Config) { c.WindowSize = 3; c.PAASize = 4 }},
		{name: "zero paa", mutate: func(c *Config) { c.PAASize = 0 }},
		{name: "alphabet too small", mutate: func(c *Config) { c.AlphabetSize = 1 }},
		{name: "alphabet too large", mutate: func(c *Config) { c.AlphabetSize = 21 }},
		{name: "threshold over one", mutate: func(c *Config) { c.NormThreshold = 1.5 }},
		{name: "negative threshold", mutate: func(c *Config) { c.NormThreshold = -0.1 }},
		{name: "unknown strategy", mutate: func(c *Config) { c.Strategy = "SOMETIMES" }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := DefaultConfig()
			test.mutate(&c)
			err := c.Validate()
			if test.valid && err != nil {
				t.Errorf("the error should not be returned: %v", err)
			}
			if !test.valid && !errors.Is(err, saxerr.ErrInvalidParameter) {
				t.Errorf("got: %v, expected: %v", err, saxerr.ErrInvalidParameter)
			}
		})
	}
}

func TestConfigDiscretize(t *testing.T) {
	series := sine(40, 10)
	c := DefaultConfig()
	c.WindowSize = 10
	idx, err := c.Discretize(context.Background(), alphabet.NewNormal(), series)
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if idx.Count() == 0 {
		t.Errorf("sliding window produced no words")
	}

	c.WindowSize = 0
	idx, err = c.Discretize(context.Background(), alphabet.NewNormal(), series)
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if idx.Count() != c.PAASize {
		t.Errorf("chunking positions, got: %d, expected: %d", idx.Count(), c.PAASize)
	}
}
