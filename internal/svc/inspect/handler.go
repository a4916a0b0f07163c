// If you are AI: This file implements the WebSocket handler for interactive
// payload inspection. Clients submit message payloads as frames and receive
// decoded envelopes back as JSON.

package inspect

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hawolt/league-of-legends-rtmp/internal/core/journal"
	"github.com/hawolt/league-of-legends-rtmp/internal/core/protocol/amf"

	"github.com/gorilla/websocket"
)

// Handler handles WebSocket inspection sessions.
type Handler struct {
	upgrader   websocket.Upgrader
	maxPayload int64
	tracer     amf.Tracer
	journal    *journal.Journal
}

// Answer is the per-frame response sent back to the client.
type Answer struct {
	OK       bool        `json:"ok"`
	Envelope interface{} `json:"envelope,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// NewHandler creates a new inspection handler.
func NewHandler(maxPayload int64, tracer amf.Tracer, j *journal.Journal) *Handler {
	return &Handler{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Allow all origins for now
				// NOTE: In production, this should be restricted
				return true
			},
		},
		maxPayload: maxPayload,
		tracer:     tracer,
		journal:    j,
	}
}

// ServeHTTP upgrades the connection and decodes client frames until the
// connection closes. Endpoint: GET /inspect
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade failed, response already sent
		return
	}
	defer conn.Close()

	// Hex encoding doubles the wire size of a payload, so the frame limit
	// is twice the payload limit plus slack for whitespace.
	conn.SetReadLimit(2*h.maxPayload + 1024)

	// One decoder per connection. Its reference tables are cleared on every
	// decode, so a failed frame cannot poison the next one.
	decoder := amf.NewDecoder()
	decoder.SetTracer(h.tracer)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			// Client disconnected or frame exceeded the read limit
			return
		}

		payload, err := h.framePayload(messageType, data)
		if err != nil {
			if conn.WriteJSON(Answer{OK: false, Error: err.Error()}) != nil {
				return
			}
			continue
		}

		if conn.WriteJSON(h.decode(decoder, payload)) != nil {
			return
		}
	}
}

// framePayload extracts the binary payload from a client frame. Binary
// frames carry the payload as-is; text frames carry it hex-encoded, with
// whitespace allowed between bytes.
func (h *Handler) framePayload(messageType int, data []byte) ([]byte, error) {
	var payload []byte
	switch messageType {
	case websocket.BinaryMessage:
		payload = data
	case websocket.TextMessage:
		cleaned := strings.Join(strings.Fields(string(data)), "")
		decoded, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("invalid hex payload: %w", err)
		}
		payload = decoded
	default:
		return nil, fmt.Errorf("unsupported frame type %d", messageType)
	}
	if int64(len(payload)) > h.maxPayload {
		return nil, fmt.Errorf("payload exceeds %d bytes", h.maxPayload)
	}
	return payload, nil
}

// decode runs one payload through the decoder, records the outcome in the
// journal and builds the answer for the client.
func (h *Handler) decode(decoder *amf.Decoder, payload []byte) Answer {
	record := journal.Record{
		Time:   time.Now(),
		Source: journal.SourceInspect,
		Size:   len(payload),
	}

	envelope, err := decoder.Decode(payload, nil)
	if err != nil {
		record.Error = err.Error()
		h.journal.Append(record)
		return Answer{OK: false, Error: err.Error()}
	}

	record.OK = true
	if result, ok := envelope.GetString("result"); ok {
		record.Result = result
	}
	h.journal.Append(record)

	return Answer{OK: true, Envelope: amf.ToNative(envelope)}
}

// RegisterRoutes registers the inspection endpoint on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/inspect", h.ServeHTTP)
}
