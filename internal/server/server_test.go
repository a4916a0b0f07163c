// If you are AI: This file contains unit tests for server route wiring.

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hawolt/league-of-legends-rtmp/internal/config"
)

// testConfig returns a minimal valid configuration for route tests.
func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: 8316},
		Inspect: config.InspectConfig{MaxPayloadBytes: 1 << 20},
		API:     config.APIConfig{RecentEntries: 16},
	}
}

// serve routes a single request through a freshly wired server.
func serve(t *testing.T, cfg *config.Config, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	srv := New(cfg)
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	if w := serve(t, testConfig(), http.MethodGet, "/healthz"); w.Code != http.StatusOK {
		t.Errorf("GET /healthz = %d, want 200", w.Code)
	}
	if w := serve(t, testConfig(), http.MethodPost, "/healthz"); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /healthz = %d, want 405", w.Code)
	}
}

func TestAPIRoutesRegistered(t *testing.T) {
	if w := serve(t, testConfig(), http.MethodGet, "/api/server"); w.Code != http.StatusOK {
		t.Errorf("GET /api/server = %d, want 200", w.Code)
	}
	if w := serve(t, testConfig(), http.MethodGet, "/api/recent"); w.Code != http.StatusOK {
		t.Errorf("GET /api/recent = %d, want 200", w.Code)
	}
}

func TestUnknownRouteNotFound(t *testing.T) {
	if w := serve(t, testConfig(), http.MethodGet, "/nope"); w.Code != http.StatusNotFound {
		t.Errorf("GET /nope = %d, want 404", w.Code)
	}
}

func TestAPIDisabled(t *testing.T) {
	disabled := false
	cfg := testConfig()
	cfg.API.Enabled = &disabled

	if w := serve(t, cfg, http.MethodGet, "/api/server"); w.Code != http.StatusNotFound {
		t.Errorf("GET /api/server = %d, want 404 when API is disabled", w.Code)
	}

	// The inspect endpoint stays registered; a plain GET fails the
	// WebSocket upgrade with 400 rather than 404.
	if w := serve(t, cfg, http.MethodGet, "/inspect"); w.Code != http.StatusBadRequest {
		t.Errorf("GET /inspect = %d, want 400", w.Code)
	}
}
