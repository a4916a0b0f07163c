// If you are AI: This file implements the HTTP server lifecycle and routing.

package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hawolt/league-of-legends-rtmp/internal/config"
	"github.com/hawolt/league-of-legends-rtmp/internal/core/journal"
	"github.com/hawolt/league-of-legends-rtmp/internal/core/protocol/amf"
	"github.com/hawolt/league-of-legends-rtmp/internal/svc/api"
	"github.com/hawolt/league-of-legends-rtmp/internal/svc/inspect"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	journal    *journal.Journal
}

// New creates a new server instance with the given configuration.
// The server is not started until Start is called.
func New(cfg *config.Config) *Server {
	mux := http.NewServeMux()

	tracer := amf.NopTracer()
	if cfg.Inspect.Trace {
		tracer = amf.NewLogTracer(nil, true)
	}

	decodes := journal.New(uint32(cfg.API.RecentEntries))

	inspectSvc := inspect.NewService(cfg.Inspect.MaxPayloadBytes, tracer, decodes)
	inspectSvc.RegisterRoutes(mux)

	services := []string{"inspect"}
	if cfg.API.IsEnabled() {
		services = append(services, "api")
		apiSvc := api.NewService(cfg.Inspect.MaxPayloadBytes, tracer, decodes, services)
		apiSvc.RegisterRoutes(mux)
	}

	mux.HandleFunc("/healthz", handleHealth)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: mux,
	}

	return &Server{
		httpServer: httpServer,
		journal:    decodes,
	}
}

// handleHealth responds to health check requests.
// Returns 200 OK to indicate the server is running.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Start begins serving HTTP requests.
// This method blocks until the server is stopped or encounters an error.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server with a timeout.
// Returns an error if shutdown fails or times out.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
