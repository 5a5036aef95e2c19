// Package hotsax finds discords, the subsequences farthest from their
// nearest non-overlapping neighbour, using the SAX index of a series to
// order and prune the search.
package hotsax

import (
	"context"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/valyala/fastrand"

	"github.com/go-sod/sax/internal/logging"
	"github.com/go-sod/sax/internal/sax"
	"github.com/go-sod/sax/internal/saxerr"
	"github.com/go-sod/sax/internal/tsops"
)

// DiscordRecord describes one discovered discord.
type DiscordRecord struct {
	Position   int     `json:"position"`
	NNDistance float64 `json:"nn_distance"`
	Word       string  `json:"word"`
	Length     int     `json:"length"`
	RuleID     int     `json:"rule_id"`
	Info       string  `json:"info"`
}

// Result holds discords in discovery order. Degenerate is set when the
// search ran out of candidates before the requested number was found.
type Result struct {
	Discords   []DiscordRecord `json:"discords"`
	Degenerate bool            `json:"degenerate"`
}

type Option func(*Engine)

// WithSeed fixes the shuffle of the random search phase. Zero picks a
// fresh seed on every search.
func WithSeed(seed uint32) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithDistance replaces the euclidean distance between subsequences.
func WithDistance(f func(vec, vec1 []float64) (float64, error)) Option {
	return func(e *Engine) {
		e.distFunc = f
	}
}

type Engine struct {
	seed     uint32
	distFunc func(vec, vec1 []float64) (float64, error)
}

func New(opts ...Option) *Engine {
	e := &Engine{distFunc: tsops.EuclideanDistance}
	for _, f := range opts {
		f(e)
	}
	return e
}

// search is the state of one FindDiscords call.
type search struct {
	series  []float64
	window  int
	idx     *sax.Index
	magic   []MagicEntry
	visited *roaring.Bitmap
	rng     fastrand.RNG
	dist    func(vec, vec1 []float64) (float64, error)
}

type candidate struct {
	position int
	distance float64
	word     string
}

// FindDiscords returns at most k discords of length window. Positions in
// idx are window starts in series.
func (e *Engine) FindDiscords(ctx context.Context, series []float64, window int, idx *sax.Index, k int) (*Result, error) {
	logger := logging.FromContext(ctx)

	if window < 1 {
		return nil, saxerr.InvalidParameter("window size %d must be positive", window)
	}
	if k < 1 {
		return nil, saxerr.InvalidParameter("number of discords %d must be positive", k)
	}
	if len(series) < window {
		return nil, saxerr.InvalidInput("series length %d is shorter than the window %d", len(series), window)
	}
	if idx == nil {
		return nil, saxerr.InvalidInput("empty SAX index")
	}
	if positions := idx.Positions(); len(positions) > 0 && positions[len(positions)-1] > len(series)-window {
		return nil, saxerr.InvalidInput(
			"word position %d exceeds the last window start %d", positions[len(positions)-1], len(series)-window)
	}

	s := &search{
		series:  series,
		window:  window,
		idx:     idx,
		magic:   MagicArray(idx),
		visited: roaring.New(),
		dist:    e.distFunc,
	}
	s.rng.Seed(e.seed)
	logger.Debugf("magic array filled with %d words", len(s.magic))

	res := &Result{}
	for len(res.Discords) < k {
		best, err := s.findBestDiscord(ctx)
		if err != nil {
			return nil, err
		}
		if best.position == -1 || best.distance == 0 {
			res.Degenerate = true
			logger.Warnf("discord search ended with %d of %d discords, no candidate has a positive NN distance",
				len(res.Discords), k)
			break
		}

		d := DiscordRecord{
			Position:   best.position,
			NNDistance: best.distance,
			Word:       best.word,
			Length:     window,
			Info:       fmt.Sprintf("position %d, NN distance %v", best.position, best.distance),
		}
		logger.Infof("discord found: %s", d.Info)
		res.Discords = append(res.Discords, d)

		s.visited.AddRange(bandRange(best.position, window))
	}
	return res, nil
}

// bandRange is [pos-window, pos+window) clipped at zero.
func bandRange(pos, window int) (uint64, uint64) {
	start := pos - window
	if start < 0 {
		start = 0
	}
	return uint64(start), uint64(pos + window)
}

func (s *search) findBestDiscord(ctx context.Context) (candidate, error) {
	best := candidate{position: -1}
	n := len(s.series) - s.window

	for _, entry := range s.magic {
		if err := saxerr.Poll(ctx); err != nil {
			return best, err
		}
		occurrences := s.idx.ByWord(entry.Word).Positions()

		for _, p := range occurrences {
			if s.visited.Contains(uint32(p)) {
				continue
			}
			if err := saxerr.Poll(ctx); err != nil {
				return best, err
			}

			seen := roaring.New()
			seen.AddRange(bandRange(p, s.window))
			cand := s.series[p : p+s.window]

			nn := math.Inf(1)
			exhaustive := true
			for _, q := range occurrences {
				if seen.Contains(uint32(q)) {
					continue
				}
				seen.Add(uint32(q))
				d, err := s.dist(cand, s.series[q:q+s.window])
				if err != nil {
					return best, err
				}
				if d < nn {
					nn = d
				}
				if d < best.distance {
					exhaustive = false
					break
				}
			}

			if exhaustive {
				rest := roaring.New()
				rest.AddRange(0, uint64(n))
				rest.AndNot(seen)
				for _, r := range s.shuffle(rest.ToArray()) {
					d, err := s.dist(cand, s.series[int(r):int(r)+s.window])
					if err != nil {
						return best, err
					}
					if d < nn {
						nn = d
					}
					if d < best.distance {
						break
					}
				}
			}

			if !math.IsInf(nn, 1) && nn > best.distance {
				best = candidate{position: p, distance: nn, word: entry.Word}
			}
		}
	}
	return best, nil
}

// shuffle is an in-place Fisher-Yates permutation.
func (s *search) shuffle(positions []uint32) []uint32 {
	for i := len(positions) - 1; i > 0; i-- {
		j := s.rng.Uint32n(uint32(i + 1))
		positions[i], positions[j] = positions[j], positions[i]
	}
	return positions
}
