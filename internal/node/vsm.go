package node

import (
	"context"
	"time"

	"github.com/go-sod/sax/internal/logging"
	"github.com/go-sod/sax/internal/metrics"
	"github.com/go-sod/sax/internal/sax"
	"github.com/go-sod/sax/internal/saxerr"
	"github.com/go-sod/sax/internal/vsm"
)

// RunVSM trains SAX-VSM on train and evaluates it on test.
func (n *Node) RunVSM(ctx context.Context, cfg sax.Config, train, test []vsm.Sample) (res *vsm.Evaluation, err error) {
	start := time.Now()
	defer func() {
		rows := 0
		if res != nil {
			rows = len(res.Predictions)
		}
		metrics.RecordRun(ctx, NameVSM, start, rows, err)
	}()

	if err := validateSamples("train", train); err != nil {
		return nil, err
	}
	if err := validateSamples("test", test); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debugf("SAX-VSM run: %d train and %d test series", len(train), len(test))

	c, err := vsm.NewClassifier(cfg, n.alphabet)
	if err != nil {
		return nil, err
	}
	if err := c.Train(ctx, train); err != nil {
		return nil, err
	}
	return c.Evaluate(ctx, test)
}

func validateSamples(name string, samples []vsm.Sample) error {
	if len(samples) == 0 {
		return saxerr.InvalidInput("empty %s table", name)
	}
	for i, s := range samples {
		if len(s.Series) == 0 {
			return saxerr.InvalidInput("%s row %d: empty series", name, i)
		}
		if err := Series(pointsOf(s.Series)).Validate(); err != nil {
			return err
		}
	}
	return nil
}

func pointsOf(values []float64) []Point {
	res := make([]Point, len(values))
	for i, v := range values {
		res[i] = Point{Value: v}
	}
	return res
}
