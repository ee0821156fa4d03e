package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDBPool mocks database.Pool
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

type staticStatus bool

func (s staticStatus) Ready() bool { return bool(s) }

// hasDeadline matches contexts bounded by the readiness timeout
var hasDeadline = mock.MatchedBy(func(ctx context.Context) bool {
	deadline, ok := ctx.Deadline()
	return ok && time.Until(deadline) <= ReadinessTimeout
})

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name     string
		loaded   bool
		withDB   bool
		pingErr  error
		wantCode int
		wantBody string
	}{
		{"file catalog, no database", true, false, nil, http.StatusOK, `{"status":"ok"}`},
		{"catalog missing", false, true, nil, http.StatusServiceUnavailable,
			`{"status":"unavailable","message":"catalog not loaded"}`},
		{"database healthy", true, true, nil, http.StatusOK, `{"status":"ok"}`},
		{"database down", true, true, errors.New("connection refused"), http.StatusServiceUnavailable,
			`{"status":"unavailable","message":"database connection failed"}`},
		{"database slow", true, true, context.DeadlineExceeded, http.StatusServiceUnavailable,
			`{"status":"unavailable","message":"database connection failed"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pool *MockDBPool
			h := HandleReadyz(staticStatus(tt.loaded), nil)
			if tt.withDB {
				pool = &MockDBPool{}
				if tt.loaded {
					pool.On("Ping", hasDeadline).Return(tt.pingErr).Once()
				}
				h = HandleReadyz(staticStatus(tt.loaded), pool)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			if pool != nil {
				pool.AssertExpectations(t)
				if !tt.loaded {
					pool.AssertNotCalled(t, "Ping", mock.Anything)
				}
			}
		})
	}
}
