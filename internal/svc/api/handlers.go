// If you are AI: This file implements HTTP API handlers.
// All handlers are fast, allocation-light, and decode with a fresh decoder
// per request.

package api

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/hawolt/league-of-legends-rtmp/internal/core/journal"
	"github.com/hawolt/league-of-legends-rtmp/internal/core/protocol/amf"
)

// ServerResponse represents the /api/server response.
type ServerResponse struct {
	Name            string   `json:"name"`
	Version         string   `json:"version"`
	Uptime          int64    `json:"uptime"` // seconds
	GoVersion       string   `json:"go_version"`
	EnabledServices []string `json:"enabled_services"`
}

// DecodeRequest represents the /api/decode request body. Exactly one of
// Hex or Base64 carries the payload.
type DecodeRequest struct {
	Hex    string `json:"hex,omitempty"`
	Base64 string `json:"base64,omitempty"`
}

// DecodeResponse represents a successful /api/decode response.
type DecodeResponse struct {
	OK       bool        `json:"ok"`
	Envelope interface{} `json:"envelope"`
}

// RecordInfo represents one journal record in API responses.
type RecordInfo struct {
	Time   time.Time `json:"time"`
	Source string    `json:"source"`
	Size   int       `json:"size"`
	OK     bool      `json:"ok"`
	Result string    `json:"result,omitempty"`
	Error  string    `json:"error,omitempty"`
}

// RecentResponse represents the /api/recent response.
type RecentResponse struct {
	Records []RecordInfo `json:"records"`
	Evicted uint64       `json:"evicted"`
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// payload extracts the binary payload from the request. Hex payloads may
// contain whitespace between bytes.
func (req *DecodeRequest) payload() ([]byte, error) {
	switch {
	case req.Hex != "" && req.Base64 != "":
		return nil, errors.New("hex and base64 are mutually exclusive")
	case req.Hex != "":
		cleaned := strings.Join(strings.Fields(req.Hex), "")
		payload, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("invalid hex payload: %w", err)
		}
		return payload, nil
	case req.Base64 != "":
		payload, err := base64.StdEncoding.DecodeString(req.Base64)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 payload: %w", err)
		}
		return payload, nil
	default:
		return nil, errors.New("one of hex or base64 is required")
	}
}

// handleServer handles GET /api/server.
// Returns server version, uptime, and enabled services.
// Allocation: JSON encoding only, no per-request heap churn.
func (s *Service) handleServer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	uptime := getCurrentTime() - s.startTime

	response := ServerResponse{
		Name:            "league-of-legends-rtmp",
		Version:         "1.0.0", // TODO: Get from build info
		Uptime:          uptime,
		GoVersion:       runtime.Version(),
		EnabledServices: s.services,
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleDecode handles POST /api/decode.
// Decodes one payload and returns its envelope as JSON. Oversized payloads
// get 413, payloads the decoder rejects 422.
func (s *Service) handleDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Bound the body read; hex doubles the wire size of a payload and the
	// JSON wrapper adds a little on top.
	r.Body = http.MaxBytesReader(w, r.Body, 2*s.maxPayload+1024)

	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payload, err := req.payload()
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if int64(len(payload)) > s.maxPayload {
		s.writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("payload exceeds %d bytes", s.maxPayload))
		return
	}

	record := journal.Record{
		Time:   time.Now(),
		Source: journal.SourceAPI,
		Size:   len(payload),
	}

	decoder := amf.NewDecoder()
	decoder.SetTracer(s.tracer)

	envelope, err := decoder.Decode(payload, nil)
	if err != nil {
		record.Error = err.Error()
		s.journal.Append(record)
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	record.OK = true
	if result, ok := envelope.GetString("result"); ok {
		record.Result = result
	}
	s.journal.Append(record)

	s.writeJSON(w, http.StatusOK, DecodeResponse{OK: true, Envelope: amf.ToNative(envelope)})
}

// handleRecent handles GET /api/recent.
// Returns the most recent decode attempts, newest first. The optional limit
// query caps how many records are returned; zero or absent returns all.
func (s *Service) handleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	recent := s.journal.Recent(limit)
	records := make([]RecordInfo, 0, len(recent))
	for _, rec := range recent {
		records = append(records, RecordInfo{
			Time:   rec.Time,
			Source: rec.Source,
			Size:   rec.Size,
			OK:     rec.OK,
			Result: rec.Result,
			Error:  rec.Error,
		})
	}

	s.writeJSON(w, http.StatusOK, RecentResponse{Records: records, Evicted: s.journal.Evicted()})
}

// writeJSON writes a JSON response.
func (s *Service) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func (s *Service) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: message})
}
