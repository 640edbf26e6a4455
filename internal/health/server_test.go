package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (c *stubChecker) HealthCheck(_ context.Context) error {
	return c.err
}

func TestHandleHealth(t *testing.T) {
	s := NewServer(Config{ServiceName: "cornerflag-server", Version: "1.2.3"})

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "cornerflag-server", resp.Service)
	assert.Equal(t, "1.2.3", resp.Version)
}

func TestHandleReady(t *testing.T) {
	tests := []struct {
		name       string
		ready      bool
		checkErr   error
		wantStatus int
	}{
		{"ready with healthy database", true, nil, http.StatusOK},
		{"not marked ready", false, nil, http.StatusServiceUnavailable},
		{"database down", true, errors.New("connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer(Config{ServiceName: "cornerflag-server", DB: &stubChecker{err: tt.checkErr}})
			s.SetReady(tt.ready)

			rec := httptest.NewRecorder()
			s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp ReadyResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "ok", resp.Status)
				assert.Equal(t, "ok", resp.Checks["database"])
			} else {
				assert.Equal(t, "not_ready", resp.Status)
			}
		})
	}
}

func TestHandleLive(t *testing.T) {
	s := NewServer(Config{ServiceName: "cornerflag-server"})

	rec := httptest.NewRecorder()
	s.handleLive(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
