package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-sod/sax/internal/logging"
	"github.com/go-sod/sax/internal/saxerr"
)

// DecodeJSONRequest checks method and content type, then decodes a body of
// at most maxBodyBytes into dst. On failure the response is already written
// and false is returned.
func DecodeJSONRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, maxBodyBytes int64, dst interface{}) bool {
	logger := logging.FromContext(ctx)

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		logger.Debugf(`{"error": "method %v is not allowed"}`, r.Method)
		_, _ = fmt.Fprintf(w, `{"error": "method %v is not allowed"}`, r.Method)
		return false
	}

	if t := r.Header.Get("content-type"); !strings.HasPrefix(t, "application/json") {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		logger.Debugf(`{"error": "%v"}`, "content-type is not application/json")
		_, _ = fmt.Fprintf(w, `{"error": "%v"}`, "content-type is not application/json")
		return false
	}

	defer r.Body.Close()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(dst); err != nil {
		DecodeErr(ctx, w, err)
		return false
	}
	return true
}

func DecodeErr(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		syntaxErr      *json.SyntaxError
		unmarshalError *json.UnmarshalTypeError
		maxBytesError  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &syntaxErr):
		RespBadRequest(ctx, w, `{"error": "malformed json at position %v"}`, syntaxErr.Offset)
	case errors.Is(err, io.ErrUnexpectedEOF):
		RespBadRequest(ctx, w, `{"error": "malformed json"}`)
	case errors.As(err, &unmarshalError):
		RespBadRequest(ctx, w, `{"error": "invalid value %v at position %v"}`, unmarshalError.Field, unmarshalError.Offset)
	case strings.HasPrefix(err.Error(), "json: unknown field"):
		fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
		RespBadRequest(ctx, w, `{"error": "unknown field %s"}`, fieldName)
	case errors.Is(err, io.EOF):
		RespBadRequest(ctx, w, `{"error": "body must not be empty"}`)
	case errors.As(err, &maxBytesError):
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	case saxerr.KindOf(err) == saxerr.KindInvalidParameter:
		RespBadRequest(ctx, w, `{"error": "%v"}`, err)
	default:
		RespInternalError(ctx, w, `{"error": "failed to decode json %v"}`, err)
	}
}

// RespError maps a node failure onto a status code: bad parameters and
// inputs are the client's fault, cancellation means the run was cut short.
func RespError(ctx context.Context, w http.ResponseWriter, err error) {
	msg, _ := json.Marshal(map[string]string{"error": err.Error()})
	switch saxerr.KindOf(err) {
	case saxerr.KindInvalidParameter, saxerr.KindInvalidInput:
		RespBadRequest(ctx, w, "%s", msg)
	case saxerr.KindCancelled:
		logging.FromContext(ctx).Warnf("request cancelled: %v", err)
		RespJSON(ctx, w, http.StatusServiceUnavailable, json.RawMessage(msg))
	default:
		RespInternalError(ctx, w, "%s", msg)
	}
}

func RespJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	bytes, err := json.Marshal(v)
	if err != nil {
		RespInternalError(ctx, w, `{"error": "failed to encode output json %v"}`, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(bytes)
}

func RespBadRequest(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logging.FromContext(ctx).Debug(msg)
	http.Error(w, msg, http.StatusBadRequest)
}

func RespInternalError(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	logging.FromContext(ctx).Errorf(format, args...)
	http.Error(w, "Internal error", http.StatusInternalServerError)
}
