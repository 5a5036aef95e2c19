package discord

import "time"

type Config struct {
	RequestTimeout time.Duration `envconfig:"SAX_DISCORD_REQUEST_TIMEOUT" default:"2m"`
	MaxSeriesLen   int           `envconfig:"SAX_DISCORD_MAX_SERIES_LEN" default:"200000"`
	MaxDiscords    int           `envconfig:"SAX_DISCORD_MAX_DISCORDS" default:"100"`
}
