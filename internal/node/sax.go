package node

import (
	"context"
	"time"

	"github.com/go-sod/sax/internal/logging"
	"github.com/go-sod/sax/internal/metrics"
	"github.com/go-sod/sax/internal/sax"
	"github.com/go-sod/sax/internal/saxerr"
	"github.com/go-sod/sax/internal/tsops"
)

// SAXRow is one emitted word keyed by the timestamp of its position.
type SAXRow struct {
	Timestamp string `json:"timestamp"`
	Position  int    `json:"position"`
	Word      string `json:"word"`
}

type SAXResult struct {
	Rows []SAXRow           `json:"rows"`
	PAA  []tsops.PAARecord `json:"paa,omitempty"`
}

// RunSAX discretises series with cfg. PAA records are collected only when
// withPAA is set.
func (n *Node) RunSAX(ctx context.Context, cfg sax.Config, series Series, withPAA bool) (res *SAXResult, err error) {
	start := time.Now()
	defer func() {
		rows := 0
		if res != nil {
			rows = len(res.Rows)
		}
		metrics.RecordRun(ctx, NameSAX, start, rows, err)
	}()

	logger := logging.FromContext(ctx)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Chunking() && len(series) < cfg.WindowSize {
		return nil, saxerr.InvalidInput("series length %d is shorter than the window %d", len(series), cfg.WindowSize)
	}
	logger.Debugf("SAX run: window %d, paa %d, alphabet %d, strategy %s, threshold %v, rows %d",
		cfg.WindowSize, cfg.PAASize, cfg.AlphabetSize, cfg.Strategy, cfg.NormThreshold, len(series))

	out := &SAXResult{}
	var opts []sax.Option
	if withPAA {
		opts = append(opts, sax.WithPAASink(func(r []tsops.PAARecord) {
			out.PAA = append(out.PAA, r...)
		}))
	}
	idx, err := cfg.Discretize(ctx, n.alphabet, series.Values(), opts...)
	if err != nil {
		return nil, err
	}

	for _, p := range idx.Positions() {
		w, _ := idx.ByPosition(p)
		out.Rows = append(out.Rows, SAXRow{Timestamp: series[p].Timestamp, Position: p, Word: w})
	}
	logger.Infof("SAX run emitted %d words, %d distinct", len(out.Rows), idx.Len())
	return out, nil
}
