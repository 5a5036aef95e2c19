package report

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/go-sod/sax/internal/httputil"
	"github.com/go-sod/sax/internal/logging"
	"github.com/go-sod/sax/internal/report/database"
	"github.com/go-sod/sax/internal/report/model"
)

type Storer interface {
	Store(ctx context.Context, report model.Report) error
}

type Finder interface {
	Find(ctx context.Context, id uuid.UUID) (*model.Report, error)
}

// Keep wraps a finished run into a report and stores it when s is set.
// The returned id is valid either way.
func Keep(ctx context.Context, s Storer, node string, params, result interface{}, warning string) (uuid.UUID, error) {
	r, err := model.NewReport(node, params, result, time.Now().UTC())
	if err != nil {
		return uuid.Nil, err
	}
	r.Warning = warning
	if s == nil {
		return r.ID, nil
	}
	if err := s.Store(ctx, r); err != nil {
		return uuid.Nil, fmt.Errorf("unable store %s report: %w", node, err)
	}
	logging.FromContext(ctx).Debugf("stored %s report %s", node, r.ID)
	return r.ID, nil
}

type Config struct {
	RequestTimeout time.Duration `envconfig:"SAX_REPORT_REQUEST_TIMEOUT" default:"5s"`
}

// NewHandler serves GET <prefix>{id}.
func NewHandler(cfg *Config, prefix string, finder Finder) (http.Handler, error) {
	if finder == nil {
		return nil, errors.New("report finder is required")
	}
	return &handler{cfg: cfg, prefix: prefix, finder: finder}, nil
}

type handler struct {
	cfg    *Config
	prefix string
	finder Finder
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
	defer cancel()

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = fmt.Fprintf(w, `{"error": "method %v is not allowed"}`, r.Method)
		return
	}

	id, err := uuid.Parse(strings.TrimPrefix(r.URL.Path, h.prefix))
	if err != nil {
		httputil.RespBadRequest(ctx, w, `{"error": "invalid report id: %v"}`, err)
		return
	}

	found, err := h.finder.Find(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			http.Error(w, `{"error": "report not found"}`, http.StatusNotFound)
			return
		}
		httputil.RespInternalError(ctx, w, `{"error": "unable find report %s: %v"}`, id, err)
		return
	}
	httputil.RespJSON(ctx, w, http.StatusOK, found)
}
