package config

import (
	"github.com/go-sod/sax/internal/classify"
	"github.com/go-sod/sax/internal/database"
	"github.com/go-sod/sax/internal/discord"
	"github.com/go-sod/sax/internal/discretize"
	"github.com/go-sod/sax/internal/hotsax"
	"github.com/go-sod/sax/internal/report"
	"github.com/go-sod/sax/internal/sax"
	"github.com/go-sod/sax/internal/setup"
)

var (
	_ setup.DatabaseConfigProvider = (*Config)(nil)
	_ setup.SAXConfigProvider      = (*Config)(nil)
	_ setup.HotSAXConfigProvider   = (*Config)(nil)
)

// Config is the server configuration, read from SAX_* environment variables.
type Config struct {
	SrvAddr    string `envconfig:"SAX_ADDR" default:":8787"`
	GRPCAddr   string `envconfig:"SAX_GRPC_ADDR" default:":8788"`
	SAX        sax.Config
	HotSAX     hotsax.Config
	Database   database.Config
	Discretize discretize.Config
	Discord    discord.Config
	Classify   classify.Config
	Report     report.Config
}

func (c *Config) DatabaseConfig() *database.Config {
	return &c.Database
}

func (c *Config) SAXConfig() *sax.Config {
	return &c.SAX
}

func (c *Config) HotSAXConfig() *hotsax.Config {
	return &c.HotSAX
}
