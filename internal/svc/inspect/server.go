// If you are AI: This file provides WebSocket inspection service integration.
// The service is integrated into the main HTTP server.

package inspect

import (
	"net/http"

	"github.com/hawolt/league-of-legends-rtmp/internal/core/journal"
	"github.com/hawolt/league-of-legends-rtmp/internal/core/protocol/amf"
)

// Service provides interactive payload inspection over WebSocket.
type Service struct {
	handler *Handler
}

// NewService creates a new inspection service.
func NewService(maxPayload int64, tracer amf.Tracer, j *journal.Journal) *Service {
	return &Service{
		handler: NewHandler(maxPayload, tracer, j),
	}
}

// RegisterRoutes registers inspection routes on the provided mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.handler.RegisterRoutes(mux)
}
