package http

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ircfuzz/internal/app/adapters/directives"
	"ircfuzz/internal/app/domain/randx"
	"ircfuzz/internal/app/domain/session"
	"ircfuzz/internal/app/infrastructure/config"
	"ircfuzz/pkg/logger"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
)

type stubTranscript struct{}

func (stubTranscript) Record([]byte) {}
func (stubTranscript) Path() string  { return "sessions/test.log" }
func (stubTranscript) Close() error  { return nil }

func newTestRouter(t *testing.T) *Router {
	gin.SetMode(gin.TestMode)

	manager, err := config.New(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	require.NoError(t, manager.Update(func(cfg *config.Config) {
		cfg.HTTP.AuthToken = "testtoken"
	}))

	sess := session.New(randx.New(), []string{"#general", "alice"})
	dirs := directives.New(16, time.Minute)
	dirs.Add("PING :abc")

	r, err := NewRouter(logger.New(), manager, sess, dirs, stubTranscript{})
	require.NoError(t, err)

	return r
}

func TestRouter_Auth(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{name: "status without token", path: "/api/status", want: http.StatusUnauthorized},
		{name: "status with wrong token", path: "/api/status", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "status with token", path: "/api/status", header: "Bearer testtoken", want: http.StatusOK},
		{name: "directives with token", path: "/api/directives", header: "Bearer testtoken", want: http.StatusOK},
		{name: "metrics without basic auth", path: "/metrics", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			r.router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRouter_StatusBody(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.Header.Set("Authorization", "Bearer testtoken")

	w := httptest.NewRecorder()
	r.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pacing_seed"`)
	assert.Contains(t, w.Body.String(), `"iterations"`)
	assert.Contains(t, w.Body.String(), `"transcript"`)
}

func TestRouter_DirectivesBody(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/directives", nil)
	req.Header.Set("Authorization", "Bearer testtoken")

	w := httptest.NewRecorder()
	r.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "PING :abc")
}
