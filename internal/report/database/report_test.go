package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-sod/sax/internal/database"
	"github.com/go-sod/sax/internal/report/model"
)

func openDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewFromEnv(ctx, &database.Config{FileName: filepath.Join(t.TempDir(), "reports.db"), OpenTimeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(ctx) })
	return New(db)
}

func newReport(t *testing.T, node string) model.Report {
	t.Helper()
	r, err := model.NewReport(node, map[string]int{"window_size": 30}, []string{"abc"}, time.Now().UTC())
	require.NoError(t, err)
	return r
}

func TestStoreFind(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	sax := newReport(t, "sax")
	require.NoError(t, db.Store(ctx, sax))
	require.NoError(t, db.Store(ctx, newReport(t, "sax")))
	require.NoError(t, db.Store(ctx, newReport(t, "vsm")))

	got, err := db.Find(ctx, sax.ID)
	require.NoError(t, err)
	if got.ID != sax.ID || got.Node != "sax" || string(got.Result) != `["abc"]` {
		t.Errorf("got: %+v, expected: %+v", got, sax)
	}

	if n, err := db.CountByNode("sax"); err != nil || n != 2 {
		t.Errorf("count, got: %d, %v, expected: 2", n, err)
	}
	list, err := db.FindByNode("vsm", nil)
	require.NoError(t, err)
	if len(list) != 1 {
		t.Errorf("reports by node, got: %d, expected: 1", len(list))
	}
	list, err = db.FindByNode("sax", func(r model.Report) bool { return r.ID == sax.ID })
	require.NoError(t, err)
	if len(list) != 1 {
		t.Errorf("filtered reports, got: %d, expected: 1", len(list))
	}
}

func TestFindMissing(t *testing.T) {
	db := openDB(t)
	if _, err := db.Find(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("got: %v, expected: %v", err, ErrNotFound)
	}
}

func TestDelete(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	r := newReport(t, "hotsax")
	require.NoError(t, db.Store(ctx, r))
	require.NoError(t, db.Delete(ctx, r.ID))
	if _, err := db.Find(ctx, r.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("got: %v, expected: %v", err, ErrNotFound)
	}
	if n, _ := db.CountByNode("hotsax"); n != 0 {
		t.Errorf("count after delete, got: %d, expected: 0", n)
	}
	require.NoError(t, db.Delete(ctx, uuid.New()))
}
