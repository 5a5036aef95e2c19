package setup

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/go-sod/sax/internal/database"
	"github.com/go-sod/sax/internal/hotsax"
	"github.com/go-sod/sax/internal/logging"
	"github.com/go-sod/sax/internal/metrics"
	"github.com/go-sod/sax/internal/node"
	reportdb "github.com/go-sod/sax/internal/report/database"
	"github.com/go-sod/sax/internal/sax"
	"github.com/go-sod/sax/internal/srvenv"
)

type DatabaseConfigProvider interface {
	DatabaseConfig() *database.Config
}

type SAXConfigProvider interface {
	SAXConfig() *sax.Config
}

type HotSAXConfigProvider interface {
	HotSAXConfig() *hotsax.Config
}

// Setup fills config from the environment and builds the server
// dependencies the config asks for.
func Setup(ctx context.Context, config interface{}) (*srvenv.SrvEnv, error) {
	logger := logging.FromContext(ctx)
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	if p, ok := config.(SAXConfigProvider); ok {
		cfg := p.SAXConfig()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid default SAX config: %w", err)
		}
		logger.Infof("Default SAX parameters: window %d, paa %d, alphabet %d, strategy %s",
			cfg.WindowSize, cfg.PAASize, cfg.AlphabetSize, cfg.Strategy)
	}

	if p, ok := config.(HotSAXConfigProvider); ok {
		if err := p.HotSAXConfig().Validate(); err != nil {
			return nil, fmt.Errorf("invalid default HOT-SAX config: %w", err)
		}
	}

	serverEnvOpts := []srvenv.Option{srvenv.WithNode(node.New())}

	if p, ok := config.(DatabaseConfigProvider); ok && p.DatabaseConfig().Enabled() {
		logger.Infof("Configuring report database %s", p.DatabaseConfig().FileName)
		db, err := database.NewFromEnv(ctx, p.DatabaseConfig())
		if err != nil {
			return nil, fmt.Errorf("unable to open database: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithDatabase(db), srvenv.WithReports(reportdb.New(db)))
	}

	exporter, err := metrics.Register()
	if err != nil {
		return nil, fmt.Errorf("unable register metrics: %w", err)
	}
	serverEnvOpts = append(serverEnvOpts, srvenv.WithExporter(exporter))

	return srvenv.New(serverEnvOpts...), nil
}
