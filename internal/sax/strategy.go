package sax

import (
	"strings"

	"github.com/go-sod/sax/internal/saxerr"
	"github.com/go-sod/sax/internal/tsops"
)

// Strategy selects how consecutive sliding-window words are collapsed.
type Strategy string

const (
	StrategyNone    Strategy = "NONE"
	StrategyExact   Strategy = "EXACT"
	StrategyMinDist Strategy = "MINDIST"
)

// ParseStrategy accepts strategy names in any letter case.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToUpper(strings.TrimSpace(s))); st {
	case StrategyNone, StrategyExact, StrategyMinDist:
		return st, nil
	default:
		return "", saxerr.InvalidParameter("unknown numerosity reduction strategy: %q", s)
	}
}

func (s Strategy) String() string {
	return string(s)
}

// UnmarshalText lets env and TOML decoders fill a Strategy.
func (s *Strategy) UnmarshalText(text []byte) error {
	st, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Redundant reports whether word should be dropped after prev.
func (s Strategy) Redundant(prev, word string) bool {
	if prev == "" {
		return false
	}
	switch s {
	case StrategyExact:
		return prev == word
	case StrategyMinDist:
		return minDistZero(prev, word)
	default:
		return false
	}
}

// minDistZero is true when every pair of symbols sits in the same or an
// adjacent region.
func minDistZero(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		d := tsops.SymbolIndex(a[i]) - tsops.SymbolIndex(b[i])
		if d > 1 || d < -1 {
			return false
		}
	}
	return true
}
