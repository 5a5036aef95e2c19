package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/go-sod/sax/internal/database"
	"github.com/go-sod/sax/internal/report/model"
)

const (
	reportKeys = "report:keys:"
	prefix     = "report:"
)

var ErrNotFound = errors.New("report not found")

type FilterFn func(report model.Report) bool

func New(db *database.DB) *DB {
	return &DB{sDB: db}
}

// DB keeps reports in one bucket per node and an id to node index.
type DB struct {
	sDB *database.DB
}

func (db *DB) Store(_ context.Context, report model.Report) error {
	bytes, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("unable marshal report: %w", err)
	}

	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(prefix + report.Node))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		if err := b.Put([]byte(report.ID.String()), bytes); err != nil {
			return fmt.Errorf("put to bucket error: %w", err)
		}
		keys, err := tx.CreateBucketIfNotExists([]byte(reportKeys))
		if err != nil {
			return fmt.Errorf("unable create keys bucket: %w", err)
		}
		if err := keys.Put([]byte(report.ID.String()), []byte(report.Node)); err != nil {
			return fmt.Errorf("unable put to keys bucket: %w", err)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	return nil
}

func (db *DB) Find(_ context.Context, id uuid.UUID) (*model.Report, error) {
	var report *model.Report
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		keys := tx.Bucket([]byte(reportKeys))
		if keys == nil {
			return ErrNotFound
		}
		node := keys.Get([]byte(id.String()))
		if node == nil {
			return ErrNotFound
		}
		b := tx.Bucket([]byte(prefix + string(node)))
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(id.String()))
		if v == nil {
			return ErrNotFound
		}
		var r model.Report
		if err := json.Unmarshal(v, &r); err != nil {
			return fmt.Errorf("json unmarshal error, %w", err)
		}
		report = &r
		return nil
	}); err != nil {
		return nil, fmt.Errorf("view transaction error: %w", err)
	}

	return report, nil
}

func (db *DB) FindByNode(node string, filter FilterFn) ([]model.Report, error) {
	var list []model.Report
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(prefix + node))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var report model.Report
			if err := json.Unmarshal(v, &report); err != nil {
				return fmt.Errorf("json unmarshal error, %w", err)
			}
			if filter == nil || filter(report) {
				list = append(list, report)
			}
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("view transaction error: %w", err)
	}

	return list, nil
}

func (db *DB) CountByNode(node string) (int, error) {
	var length int
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(prefix + node))
		if b == nil {
			return nil
		}
		length = b.Stats().KeyN
		return nil
	}); err != nil {
		return 0, fmt.Errorf("view transaction error: %w", err)
	}

	return length, nil
}

func (db *DB) Delete(_ context.Context, id uuid.UUID) error {
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		keys := tx.Bucket([]byte(reportKeys))
		if keys == nil {
			return nil
		}
		node := keys.Get([]byte(id.String()))
		if node == nil {
			return nil
		}
		if b := tx.Bucket([]byte(prefix + string(node))); b != nil {
			if err := b.Delete([]byte(id.String())); err != nil {
				return fmt.Errorf("unable delete: %w", err)
			}
		}
		return keys.Delete([]byte(id.String()))
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	return nil
}
