package discord

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/go-sod/sax/internal/hotsax"
	"github.com/go-sod/sax/internal/httputil"
	"github.com/go-sod/sax/internal/logging"
	"github.com/go-sod/sax/internal/node"
	"github.com/go-sod/sax/internal/report"
	"github.com/go-sod/sax/internal/sax"
)

const maxBodyBytes = 64 * 1024 * 1024

type Runner interface {
	RunHotSAX(ctx context.Context, cfg sax.Config, hcfg hotsax.Config, series node.Series, words []string) (*node.HotSAXResult, error)
}

type params struct {
	SAX    sax.Config    `json:"sax"`
	HotSAX hotsax.Config `json:"hotsax"`
}

type request struct {
	Params params      `json:"params"`
	Series node.Series `json:"series"`
	Words  []string    `json:"words"`
}

type response struct {
	ID uuid.UUID `json:"id"`
	*node.HotSAXResult
}

// NewHandler serves POST discord searches. Words, when given, hold the
// precomputed SAX word of every window start. store may be nil.
func NewHandler(cfg *Config, saxDefaults sax.Config, hotDefaults hotsax.Config, runner Runner, store report.Storer) (http.Handler, error) {
	if runner == nil {
		return nil, errors.New("HOT-SAX runner is required")
	}
	return &handler{
		cfg:      cfg,
		defaults: params{SAX: saxDefaults, HotSAX: hotDefaults},
		runner:   runner,
		store:    store,
	}, nil
}

type handler struct {
	cfg      *Config
	defaults params
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
	if req.Params.HotSAX.Discords > h.cfg.MaxDiscords {
		httputil.RespBadRequest(ctx, w, `{"error": "too many discords requested, max allowed is %d"}`, h.cfg.MaxDiscords)
		return
	}

	res, err := h.runner.RunHotSAX(ctx, req.Params.SAX, req.Params.HotSAX, req.Series, req.Words)
	if err != nil {
		logger.Debugf("HOT-SAX run failed: %v", err)
		httputil.RespError(ctx, w, err)
		return
	}
	id, err := report.Keep(ctx, h.store, node.NameHotSAX, req.Params, res, res.Warning)
	if err != nil {
		httputil.RespInternalError(ctx, w, `{"error": "%v"}`, err)
		return
	}
	httputil.RespJSON(ctx, w, http.StatusOK, response{ID: id, HotSAXResult: res})
}
