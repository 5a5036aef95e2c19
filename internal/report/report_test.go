package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/go-sod/sax/internal/report/database"
	"github.com/go-sod/sax/internal/report/model"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Store(ctx context.Context, report model.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *mockStore) Find(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*model.Report)
	return r, args.Error(1)
}

func TestKeep(t *testing.T) {
	ctx := context.Background()

	t.Run("without store", func(t *testing.T) {
		id, err := Keep(ctx, nil, "sax", map[string]int{"window_size": 30}, []string{"abc"}, "")
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)
	})

	t.Run("stored", func(t *testing.T) {
		s := &mockStore{}
		s.On("Store", mock.Anything, mock.MatchedBy(func(r model.Report) bool {
			return r.Node == "hotsax" && r.Warning == "degenerate" && string(r.Result) == `[1,2]`
		})).Return(nil).Once()
		id, err := Keep(ctx, s, "hotsax", nil, []int{1, 2}, "degenerate")
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)
		s.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		s := &mockStore{}
		s.On("Store", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
		_, err := Keep(ctx, s, "vsm", nil, nil, "")
		require.Error(t, err)
	})
}

func TestHandler(t *testing.T) {
	found, err := model.NewReport("sax", map[string]int{"paa_size": 4}, []string{"abc"}, time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	missing := uuid.New()

	s := &mockStore{}
	s.On("Find", mock.Anything, found.ID).Return(&found, nil)
	s.On("Find", mock.Anything, missing).Return(nil, fmt.Errorf("view transaction error: %w", database.ErrNotFound))

	h, err := NewHandler(&Config{RequestTimeout: time.Second}, "/reports/", s)
	require.NoError(t, err)

	tests := []struct {
		name     string
		method   string
		path     string
		expected int
	}{
		{name: "found", method: http.MethodGet, path: "/reports/" + found.ID.String(), expected: http.StatusOK},
		{name: "missing", method: http.MethodGet, path: "/reports/" + missing.String(), expected: http.StatusNotFound},
		{name: "bad id", method: http.MethodGet, path: "/reports/nope", expected: http.StatusBadRequest},
		{name: "method", method: http.MethodDelete, path: "/reports/" + found.ID.String(), expected: http.StatusMethodNotAllowed},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(test.method, test.path, nil))
			if w.Code != test.expected {
				t.Errorf("status, got: %d, expected: %d", w.Code, test.expected)
			}
			if test.expected != http.StatusOK {
				return
			}
			var got model.Report
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			require.Equal(t, found.ID, got.ID)
			require.JSONEq(t, `["abc"]`, string(got.Result))
		})
	}
}

func TestNewHandlerRequiresFinder(t *testing.T) {
	if _, err := NewHandler(&Config{}, "/reports/", nil); err == nil {
		t.Errorf("nil finder must be rejected")
	}
}
