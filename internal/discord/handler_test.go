package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/go-sod/sax/internal/hotsax"
	"github.com/go-sod/sax/internal/node"
	"github.com/go-sod/sax/internal/report/model"
	"github.com/go-sod/sax/internal/sax"
	"github.com/go-sod/sax/internal/saxerr"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) RunHotSAX(ctx context.Context, cfg sax.Config, hcfg hotsax.Config, series node.Series, words []string) (*node.HotSAXResult, error) {
	args := m.Called(ctx, cfg, hcfg, series, words)
	res, _ := args.Get(0).(*node.HotSAXResult)
	return res, args.Error(1)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Store(ctx context.Context, report model.Report) error {
	return m.Called(ctx, report).Error(0)
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/hotsax", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHandlerDegenerateWarning(t *testing.T) {
	expectedSAX := sax.DefaultConfig()
	expectedSAX.WindowSize = 3
	expectedHot := hotsax.Config{Discords: 2, Seed: 7}

	runner := &mockRunner{}
	runner.On("RunHotSAX", mock.Anything, expectedSAX, expectedHot, mock.Anything, []string{"ab", "ba"}).
		Return(&node.HotSAXResult{
			Discords:   []hotsax.DiscordRecord{{Position: 1, NNDistance: 0.5, Word: "ba", Length: 3}},
			Degenerate: true,
			Warning:    node.DegenerateWarning,
		}, nil).Once()
	store := &mockStore{}
	store.On("Store", mock.Anything, mock.MatchedBy(func(r model.Report) bool {
		return r.Node == node.NameHotSAX && r.Warning == node.DegenerateWarning
	})).Return(nil).Once()

	h, err := NewHandler(&Config{RequestTimeout: time.Second, MaxSeriesLen: 100, MaxDiscords: 5},
		sax.DefaultConfig(), hotsax.Config{Discords: 1}, runner, store)
	require.NoError(t, err)

	w := post(t, h, `{"params": {"sax": {"window_size": 3}, "hotsax": {"discords": 2, "seed": 7}},
		"series": [{"value": 1}, {"value": 2}, {"value": 3}, {"value": 4}], "words": ["ab", "ba"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got struct {
		ID         string                 `json:"id"`
		Discords   []hotsax.DiscordRecord `json:"discords"`
		Degenerate bool                   `json:"degenerate"`
		Warning    string                 `json:"warning"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotEmpty(t, got.ID)
	require.True(t, got.Degenerate)
	require.Equal(t, node.DegenerateWarning, got.Warning)
	require.Len(t, got.Discords, 1)
	runner.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestHandlerErrors(t *testing.T) {
	runner := &mockRunner{}
	runner.On("RunHotSAX", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, saxerr.InvalidInput("series length %d is shorter than the window %d", 1, 30))

	h, err := NewHandler(&Config{RequestTimeout: time.Second, MaxSeriesLen: 3, MaxDiscords: 2},
		sax.DefaultConfig(), hotsax.Config{Discords: 1}, runner, nil)
	require.NoError(t, err)

	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{name: "short series", body: `{"series": [{"value": 1}]}`, expected: http.StatusBadRequest},
		{name: "too many discords", body: `{"params": {"hotsax": {"discords": 3}}, "series": [{"value": 1}]}`, expected: http.StatusBadRequest},
		{name: "too long", body: `{"series": [{"value": 1}, {"value": 2}, {"value": 3}, {"value": 4}]}`, expected: http.StatusBadRequest},
		{name: "malformed", body: `{"series": [`, expected: http.StatusBadRequest},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := post(t, h, test.body)
			if w.Code != test.expected {
				t.Errorf("status, got: %d, expected: %d", w.Code, test.expected)
			}
		})
	}
}
