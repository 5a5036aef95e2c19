package node

import (
	"context"
	"time"

	"github.com/go-sod/sax/internal/hotsax"
	"github.com/go-sod/sax/internal/logging"
	"github.com/go-sod/sax/internal/metrics"
	"github.com/go-sod/sax/internal/sax"
	"github.com/go-sod/sax/internal/saxerr"
)

// DegenerateWarning is attached to results that hold fewer discords than
// requested.
const DegenerateWarning = "the series is degenerate: every remaining candidate has a trivial match"

type HotSAXResult struct {
	Discords   []hotsax.DiscordRecord `json:"discords"`
	Degenerate bool                   `json:"degenerate"`
	Warning    string                 `json:"warning,omitempty"`
}

// RunHotSAX searches series for discords. words holds one SAX word per
// window start in row order; when it is empty the series is discretised
// with cfg first.
func (n *Node) RunHotSAX(
	ctx context.Context,
	cfg sax.Config,
	hcfg hotsax.Config,
	series Series,
	words []string,
) (res *HotSAXResult, err error) {
	start := time.Now()
	defer func() {
		rows := 0
		if res != nil {
			rows = len(res.Discords)
		}
		metrics.RecordRun(ctx, NameHotSAX, start, rows, err)
	}()

	logger := logging.FromContext(ctx)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Chunking() {
		return nil, saxerr.InvalidParameter("discord search needs a positive window size")
	}
	if err := hcfg.Validate(); err != nil {
		return nil, err
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}
	if len(series) < cfg.WindowSize {
		return nil, saxerr.InvalidInput("series length %d is shorter than the window %d", len(series), cfg.WindowSize)
	}

	var idx *sax.Index
	if len(words) == 0 {
		logger.Debugf("no SAX words supplied, discretising %d values", len(series))
		idx, err = cfg.Discretize(ctx, n.alphabet, series.Values())
	} else {
		if limit := len(series) - cfg.WindowSize + 1; len(words) > limit {
			return nil, saxerr.InvalidInput("%d SAX words for at most %d windows", len(words), limit)
		}
		idx, err = sax.IndexFromWords(words)
	}
	if err != nil {
		return nil, err
	}

	found, err := hotsax.New(hotsax.WithSeed(hcfg.Seed)).FindDiscords(ctx, series.Values(), cfg.WindowSize, idx, hcfg.Discords)
	if err != nil {
		return nil, err
	}
	out := &HotSAXResult{Discords: found.Discords, Degenerate: found.Degenerate}
	if found.Degenerate {
		out.Warning = DegenerateWarning
		logger.Warnf("%s, %d of %d discords reported", DegenerateWarning, len(found.Discords), hcfg.Discords)
	}
	return out, nil
}
