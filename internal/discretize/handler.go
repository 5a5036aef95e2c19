package discretize

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/go-sod/sax/internal/httputil"
	"github.com/go-sod/sax/internal/logging"
	"github.com/go-sod/sax/internal/node"
	"github.com/go-sod/sax/internal/report"
	"github.com/go-sod/sax/internal/sax"
)

const maxBodyBytes = 64 * 1024 * 1024

type Runner interface {
	RunSAX(ctx context.Context, cfg sax.Config, series node.Series, withPAA bool) (*node.SAXResult, error)
}

type request struct {
	Params sax.Config  `json:"params"`
	Series node.Series `json:"series"`
	PAA    bool        `json:"paa"`
}

type response struct {
	ID uuid.UUID `json:"id"`
	*node.SAXResult
}

// NewHandler serves POST requests that discretise a series. Parameters
// missing from the request keep the values of defaults. store may be nil.
func NewHandler(cfg *Config, defaults sax.Config, runner Runner, store report.Storer) (http.Handler, error) {
	if runner == nil {
		return nil, errors.New("SAX runner is required")
	}
	return &handler{cfg: cfg, defaults: defaults, runner: runner, store: store}, nil
}

type handler struct {
	cfg      *Config
	defaults sax.Config
	runner   Runner
	store    report.Storer
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
	defer cancel()
	logger := logging.FromContext(ctx)

	req := request{Params: h.defaults}
	if !httputil.DecodeJSONRequest(ctx, w, r, maxBodyBytes, &req) {
		return
	}
	if len(req.Series) > h.cfg.MaxSeriesLen {
		httputil.RespBadRequest(ctx, w, `{"error": "series is too large, max allowed len is %d"}`, h.cfg.MaxSeriesLen)
		return
	}

	res, err := h.runner.RunSAX(ctx, req.Params, req.Series, req.PAA)
	if err != nil {
		logger.Debugf("SAX run failed: %v", err)
		httputil.RespError(ctx, w, err)
		return
	}
	id, err := report.Keep(ctx, h.store, node.NameSAX, req.Params, res, "")
	if err != nil {
		httputil.RespInternalError(ctx, w, `{"error": "%v"}`, err)
		return
	}
	httputil.RespJSON(ctx, w, http.StatusOK, response{ID: id, SAXResult: res})
}
