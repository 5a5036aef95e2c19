package classify

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
	"github.com/go-sod/sax/internal/vsm"
)

const maxBodyBytes = 128 * 1024 * 1024

type Runner interface {
	RunVSM(ctx context.Context, cfg sax.Config, train, test []vsm.Sample) (*vsm.Evaluation, error)
}

type request struct {
	Params sax.Config   `json:"params"`
	Train  []vsm.Sample `json:"train"`
	Test   []vsm.Sample `json:"test"`
}

type response struct {
	ID uuid.UUID `json:"id"`
	*vsm.Evaluation
}

func NewHandler(cfg *Config, defaults sax.Config, runner Runner, store report.Storer) (http.Handler, error) {
	if runner == nil {
		return nil, errors.New("SAX-VSM runner is required")
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
	if n := len(req.Train) + len(req.Test); n > h.cfg.MaxSamples {
		httputil.RespBadRequest(ctx, w, `{"error": "%d samples is too many, max allowed is %d"}`, n, h.cfg.MaxSamples)
		return
	}

	res, err := h.runner.RunVSM(ctx, req.Params, req.Train, req.Test)
	if err != nil {
		logger.Debugf("SAX-VSM run failed: %v", err)
		httputil.RespError(ctx, w, err)
		return
	}
	id, err := report.Keep(ctx, h.store, node.NameVSM, req.Params, res, "")
	if err != nil {
		httputil.RespInternalError(ctx, w, `{"error": "%v"}`, err)
		return
	}
	httputil.RespJSON(ctx, w, http.StatusOK, response{ID: id, Evaluation: res})
}
