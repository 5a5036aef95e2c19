package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-sod/sax/internal/saxerr"
)

func TestRespError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "parameter", err: saxerr.InvalidParameter("alphabet size %d", 30), expected: http.StatusBadRequest},
		{name: "input", err: saxerr.InvalidInput("empty series"), expected: http.StatusBadRequest},
		{name: "cancelled", err: fmt.Errorf("run: %w", context.DeadlineExceeded), expected: http.StatusServiceUnavailable},
		{name: "other", err: errors.New("disk on fire"), expected: http.StatusInternalServerError},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespError(context.Background(), w, test.err)
			if w.Code != test.expected {
				t.Errorf("status, got: %d, expected: %d", w.Code, test.expected)
			}
		})
	}
}

func TestDecodeJSONRequest(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		contentType string
		body        string
		ok          bool
		expected    int
	}{
		{name: "valid", method: http.MethodPost, contentType: "application/json", body: `{"a": 1}`, ok: true, expected: http.StatusOK},
		{name: "method", method: http.MethodGet, contentType: "application/json", body: `{}`, expected: http.StatusMethodNotAllowed},
		{name: "content type", method: http.MethodPost, contentType: "text/plain", body: `{}`, expected: http.StatusUnsupportedMediaType},
		{name: "malformed", method: http.MethodPost, contentType: "application/json", body: `{"a": `, expected: http.StatusBadRequest},
		{name: "unknown field", method: http.MethodPost, contentType: "application/json", body: `{"b": 1}`, expected: http.StatusBadRequest},
		{name: "empty", method: http.MethodPost, contentType: "application/json", body: ``, expected: http.StatusBadRequest},
		{name: "too large", method: http.MethodPost, contentType: "application/json", body: `{"a": 1111111111111111111111}`, expected: http.StatusRequestEntityTooLarge},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var dst struct {
				A int `json:"a"`
			}
			r := httptest.NewRequest(test.method, "/sax", strings.NewReader(test.body))
			r.Header.Set("Content-Type", test.contentType)
			w := httptest.NewRecorder()
			if got := DecodeJSONRequest(context.Background(), w, r, 16, &dst); got != test.ok {
				t.Errorf("decode result, got: %v, expected: %v", got, test.ok)
			}
			if w.Code != test.expected {
				t.Errorf("status, got: %d, expected: %d", w.Code, test.expected)
			}
		})
	}
}

func TestClientConfigValidate(t *testing.T) {
	cfg := HTTPClientConfig{BearerToken: "t", BasicAuth: &BasicAuth{Username: "u"}}
	if err := cfg.Validate(); err == nil {
		t.Errorf("both credentials must be rejected")
	}
	if _, err := NewClientFromConfig(HTTPClientConfig{BearerToken: "t"}, false); err != nil {
		t.Errorf("the error should not be returned: %v", err)
	}
}

func TestDecodeErrParameter(t *testing.T) {
	w := httptest.NewRecorder()
	DecodeErr(context.Background(), w, saxerr.InvalidParameter("unknown numerosity reduction strategy %q", "FUZZY"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status, got: %d, expected: %d", w.Code, http.StatusBadRequest)
	}
}
