package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-sod/sax/internal/classify"
	"github.com/go-sod/sax/internal/config"
	"github.com/go-sod/sax/internal/discord"
	"github.com/go-sod/sax/internal/discretize"
	"github.com/go-sod/sax/internal/report"
	"github.com/go-sod/sax/internal/srvenv"
)

const reportsPrefix = "/reports/"

// Routes builds the HTTP API. Report lookup is mounted only when the
// environment carries a report store, /metrics only with an exporter.
func Routes(ctx context.Context, cfg *config.Config, env *srvenv.SrvEnv) (http.Handler, error) {
	var store report.Storer
	if env.Reports() != nil {
		store = env.Reports()
	}

	mux := http.NewServeMux()

	saxHandler, err := discretize.NewHandler(&cfg.Discretize, cfg.SAX, env.Node(), store)
	if err != nil {
		return nil, fmt.Errorf("discretize.NewHandler: %w", err)
	}
	mux.Handle("/sax", saxHandler)

	hotsaxHandler, err := discord.NewHandler(&cfg.Discord, cfg.SAX, cfg.HotSAX, env.Node(), store)
	if err != nil {
		return nil, fmt.Errorf("discord.NewHandler: %w", err)
	}
	mux.Handle("/hotsax", hotsaxHandler)

	vsmHandler, err := classify.NewHandler(&cfg.Classify, cfg.SAX, env.Node(), store)
	if err != nil {
		return nil, fmt.Errorf("classify.NewHandler: %w", err)
	}
	mux.Handle("/vsm", vsmHandler)

	if env.Reports() != nil {
		reportHandler, err := report.NewHandler(&cfg.Report, reportsPrefix, env.Reports())
		if err != nil {
			return nil, fmt.Errorf("report.NewHandler: %w", err)
		}
		mux.Handle(reportsPrefix, reportHandler)
	}

	if env.Exporter() != nil {
		mux.Handle("/metrics", env.Exporter())
	}
	mux.Handle("/health", HandleHealth(ctx))
	return mux, nil
}
