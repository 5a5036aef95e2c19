package classify

import "time"

type Config struct {
	RequestTimeout time.Duration `envconfig:"SAX_CLASSIFY_REQUEST_TIMEOUT" default:"1m"`
	MaxSamples     int           `envconfig:"SAX_CLASSIFY_MAX_SAMPLES" default:"10000"`
}
