package srvenv

import (
	"context"

	"contrib.go.opencensus.io/exporter/prometheus"

	"github.com/go-sod/sax/internal/database"
	"github.com/go-sod/sax/internal/node"
	reportdb "github.com/go-sod/sax/internal/report/database"
)

type Option func(*SrvEnv) *SrvEnv

func New(opts ...Option) *SrvEnv {
	env := &SrvEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

// SrvEnv holds the shared dependencies of the server handlers.
type SrvEnv struct {
	database *database.DB
	node     *node.Node
	reports  *reportdb.DB
	exporter *prometheus.Exporter
}

func (s *SrvEnv) Database() *database.DB {
	return s.database
}

func (s *SrvEnv) Node() *node.Node {
	return s.node
}

// Reports is nil when no database is configured.
func (s *SrvEnv) Reports() *reportdb.DB {
	return s.reports
}

func (s *SrvEnv) Exporter() *prometheus.Exporter {
	return s.exporter
}

func WithDatabase(db *database.DB) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.database = db
		return s
	}
}

func WithNode(n *node.Node) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.node = n
		return s
	}
}

func WithReports(db *reportdb.DB) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.reports = db
		return s
	}
}

func WithExporter(e *prometheus.Exporter) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.exporter = e
		return s
	}
}

func (s *SrvEnv) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}

	if s.database != nil {
		return s.database.Close(ctx)
	}
	return nil
}
