package hotsax

import "github.com/go-sod/sax/internal/saxerr"

type Config struct {
	Discords int    `envconfig:"SAX_DISCORDS" default:"1" toml:"discords" json:"discords"`
	Seed     uint32 `envconfig:"SAX_SEED" default:"0" toml:"seed" json:"seed"`
}

func (c Config) Validate() error {
	if c.Discords < 1 {
		return saxerr.InvalidParameter("number of discords %d must be positive", c.Discords)
	}
	return nil
}
