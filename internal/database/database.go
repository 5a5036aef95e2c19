// Package database opens the bbolt file backing the report store.
package database

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/go-sod/sax/internal/logging"
)

type Config struct {
	FileName    string        `envconfig:"SAX_DB_FILE" default:""`
	OpenTimeout time.Duration `envconfig:"SAX_DB_OPEN_TIMEOUT" default:"1s"`
}

// Enabled reports whether a database file is configured.
func (c *Config) Enabled() bool {
	return c.FileName != ""
}

type DB struct {
	DB *bolt.DB
}

func NewFromEnv(ctx context.Context, config *Config) (*DB, error) {
	logger := logging.FromContext(ctx)
	logger.Infof("opening report db %s", config.FileName)

	db, err := bolt.Open(config.FileName, 0600, &bolt.Options{Timeout: config.OpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening db %s: %w", config.FileName, err)
	}

	return &DB{DB: db}, nil
}

func (db *DB) Close(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	logger.Infof("closing report db")

	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("error close db: %w", err)
	}

	return nil
}
