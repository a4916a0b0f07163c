// If you are AI: This file provides HTTP API service integration.
// The API exposes one-shot decoding and server state over plain HTTP.

package api

import (
	"net/http"
	"time"

	"github.com/hawolt/league-of-legends-rtmp/internal/core/journal"
	"github.com/hawolt/league-of-legends-rtmp/internal/core/protocol/amf"
)

// Service provides HTTP API functionality.
type Service struct {
	maxPayload int64
	tracer     amf.Tracer
	journal    *journal.Journal
	services   []string
	startTime  int64
}

// NewService creates a new API service. The services list names the
// endpoints enabled on this server, reported by /api/server.
func NewService(maxPayload int64, tracer amf.Tracer, j *journal.Journal, services []string) *Service {
	return &Service{
		maxPayload: maxPayload,
		tracer:     tracer,
		journal:    j,
		services:   services,
		startTime:  getCurrentTime(),
	}
}

// RegisterRoutes registers API routes on the provided mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	// API routes
	mux.HandleFunc("/api/server", s.handleServer)
	mux.HandleFunc("/api/decode", s.handleDecode)
	mux.HandleFunc("/api/recent", s.handleRecent)
}

// getCurrentTime returns current Unix timestamp.
// Extracted for testability.
func getCurrentTime() int64 {
	return time.Now().Unix()
}
