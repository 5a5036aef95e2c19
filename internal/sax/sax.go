// Package sax turns numeric series into symbolic words, either one word for
// the whole series split into pieces or one word per sliding window.
package sax

import (
	"context"

	"github.com/go-sod/sax/internal/saxerr"
	"github.com/go-sod/sax/internal/tsops"
)

// PAASink receives the PAA records produced for one window or chunk.
type PAASink func(records []tsops.PAARecord)

type Option func(*options)

type options struct {
	paaSink PAASink
}

// WithPAASink collects PAA records while discretising.
func WithPAASink(sink PAASink) Option {
	return func(o *options) {
		o.paaSink = sink
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, f := range opts {
		f(&o)
	}
	return o
}

// ByChunking normalises the whole series, reduces it to paaSize pieces and
// stores one single-letter word per piece at the piece index.
func ByChunking(series []float64, paaSize int, cuts []float64, threshold float64, opts ...Option) (*Index, error) {
	o := newOptions(opts)
	if len(series) == 0 {
		return nil, saxerr.InvalidInput("empty series")
	}
	paa, records, err := tsops.PAA(tsops.ZNorm(series, threshold), paaSize, 0)
	if err != nil {
		return nil, err
	}
	if o.paaSink != nil {
		o.paaSink(records)
	}

	word := tsops.ToString(paa, cuts)
	idx := NewIndex()
	for i := 0; i < len(word); i++ {
		if err := idx.Add(word[i:i+1], i); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// ViaWindow slides a window of the given size over series and stores the
// word of every window start that survives numerosity reduction. A series
// shorter than the window yields an empty index.
func ViaWindow(
	ctx context.Context,
	series []float64,
	window, paaSize int,
	cuts []float64,
	strategy Strategy,
	threshold float64,
	opts ...Option,
) (*Index, error) {
	o := newOptions(opts)
	if window < 1 {
		return nil, saxerr.InvalidParameter("window size %d must be positive", window)
	}
	if paaSize < 1 || paaSize > window {
		return nil, saxerr.InvalidParameter("PAA size %d must be in [1, %d]", paaSize, window)
	}

	idx := NewIndex()
	prev := ""
	for i := 0; i+window <= len(series); i++ {
		if err := saxerr.Poll(ctx); err != nil {
			return nil, err
		}

		paa, records, err := tsops.PAA(tsops.ZNorm(series[i:i+window], threshold), paaSize, i)
		if err != nil {
			return nil, err
		}
		if o.paaSink != nil {
			o.paaSink(records)
		}

		word := tsops.ToString(paa, cuts)
		if strategy.Redundant(prev, word) {
			continue
		}
		if err := idx.Add(word, i); err != nil {
			return nil, err
		}
		prev = word
	}
	return idx, nil
}
