// Package metrics declares the opencensus measures recorded by node runs
// and exposes them to prometheus.
package metrics

import (
	"context"
	"fmt"
	"time"

	"contrib.go.opencensus.io/exporter/prometheus"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"

	"github.com/go-sod/sax/internal/saxerr"
)

const Namespace = "sax"

var (
	MRuns    = stats.Int64("sax/node_runs", "Number of node runs", stats.UnitDimensionless)
	MLatency = stats.Float64("sax/node_latency", "Node run latency", stats.UnitMilliseconds)
	MRows    = stats.Int64("sax/node_rows", "Rows produced by node runs", stats.UnitDimensionless)

	KeyNode   = tag.MustNewKey("node")
	KeyStatus = tag.MustNewKey("status")
)

var Views = []*view.View{
	{
		Name:        "sax/node_runs_total",
		Description: "Node runs by node and outcome",
		Measure:     MRuns,
		TagKeys:     []tag.Key{KeyNode, KeyStatus},
		Aggregation: view.Count(),
	},
	{
		Name:        "sax/node_latency_ms",
		Description: "Node run latency distribution",
		Measure:     MLatency,
		TagKeys:     []tag.Key{KeyNode},
		Aggregation: view.Distribution(1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000),
	},
	{
		Name:        "sax/node_rows_total",
		Description: "Rows produced by node runs",
		Measure:     MRows,
		TagKeys:     []tag.Key{KeyNode},
		Aggregation: view.Sum(),
	},
}

// Register registers Views and returns an exporter serving them in the
// prometheus text format.
func Register() (*prometheus.Exporter, error) {
	if err := view.Register(Views...); err != nil {
		return nil, fmt.Errorf("unable to register views: %w", err)
	}
	exporter, err := prometheus.NewExporter(prometheus.Options{Namespace: Namespace})
	if err != nil {
		return nil, fmt.Errorf("unable to create prometheus exporter: %w", err)
	}
	return exporter, nil
}

// RecordRun records one finished node run. Recording before Register is a
// no-op.
func RecordRun(ctx context.Context, node string, start time.Time, rows int, err error) {
	status := "ok"
	if err != nil {
		status = saxerr.KindOf(err).String()
	}
	_ = stats.RecordWithTags(ctx,
		[]tag.Mutator{tag.Upsert(KeyNode, node), tag.Upsert(KeyStatus, status)},
		MRuns.M(1),
		MLatency.M(float64(time.Since(start))/float64(time.Millisecond)),
		MRows.M(int64(rows)),
	)
}
