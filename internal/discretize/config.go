package discretize

import "time"

type Config struct {
	RequestTimeout time.Duration `envconfig:"SAX_DISCRETIZE_REQUEST_TIMEOUT" default:"30s"`
	MaxSeriesLen   int           `envconfig:"SAX_DISCRETIZE_MAX_SERIES_LEN" default:"1000000"`
}
