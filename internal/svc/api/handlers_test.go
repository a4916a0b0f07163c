// If you are AI: This file contains unit tests for API handlers.
// Tests verify JSON responses and error handling.

package api

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hawolt/league-of-legends-rtmp/internal/core/journal"
	"github.com/hawolt/league-of-legends-rtmp/internal/core/protocol/amf"
)

// decodedAnswer mirrors DecodeResponse with a concrete envelope type.
type decodedAnswer struct {
	OK       bool                   `json:"ok"`
	Envelope map[string]interface{} `json:"envelope"`
}

// newTestService builds a service with a small journal for handler tests.
func newTestService(maxPayload int64) *Service {
	return NewService(maxPayload, amf.NopTracer(), journal.New(8), []string{"inspect", "api"})
}

// postDecode routes one decode request through the handler.
func postDecode(t *testing.T, service *Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/decode", strings.NewReader(body))
	w := httptest.NewRecorder()
	service.handleDecode(w, req)
	return w
}

func TestHandleServer(t *testing.T) {
	service := newTestService(1024)

	req := httptest.NewRequest("GET", "/api/server", nil)
	w := httptest.NewRecorder()

	service.handleServer(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response ServerResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Version == "" {
		t.Error("Version should not be empty")
	}
	if response.Uptime < 0 {
		t.Error("Uptime should be non-negative")
	}
	if response.GoVersion == "" {
		t.Error("GoVersion should not be empty")
	}
	if len(response.EnabledServices) != 2 {
		t.Errorf("Expected 2 enabled services, got %d", len(response.EnabledServices))
	}

	// Wrong method
	req2 := httptest.NewRequest("POST", "/api/server", nil)
	w2 := httptest.NewRecorder()
	service.handleServer(w2, req2)
	if w2.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w2.Code)
	}
}

func TestHandleDecodeHex(t *testing.T) {
	service := newTestService(1024)

	w := postDecode(t, service, `{"hex":"00 05 05 05 05"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response decodedAnswer
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !response.OK {
		t.Error("Response should be ok")
	}
	if response.Envelope["version"] != float64(0) {
		t.Errorf("version = %v, want 0", response.Envelope["version"])
	}
	if _, ok := response.Envelope["serviceCall"]; !ok {
		t.Error("Envelope should carry serviceCall")
	}
}

func TestHandleDecodeBase64(t *testing.T) {
	service := newTestService(1024)

	encoded := base64.StdEncoding.EncodeToString([]byte{0x00, 0x05, 0x05, 0x05, 0x05})
	w := postDecode(t, service, fmt.Sprintf(`{"base64":%q}`, encoded))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response decodedAnswer
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !response.OK {
		t.Error("Response should be ok")
	}
}

func TestHandleDecodeBadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"no payload", `{}`},
		{"both payloads", `{"hex":"05","base64":"BQ=="}`},
		{"bad hex", `{"hex":"zz"}`},
		{"bad base64", `{"base64":"!!!"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postDecode(t, newTestService(1024), tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestHandleDecodeMethodNotAllowed(t *testing.T) {
	service := newTestService(1024)

	req := httptest.NewRequest("GET", "/api/decode", nil)
	w := httptest.NewRecorder()
	service.handleDecode(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestHandleDecodeMalformedPayload(t *testing.T) {
	service := newTestService(1024)

	// Trailing byte after a complete envelope.
	w := postDecode(t, service, `{"hex":"000505050505"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Error == "" {
		t.Error("Error should describe the decode failure")
	}
}

func TestHandleDecodeOversize(t *testing.T) {
	service := newTestService(4)

	w := postDecode(t, service, `{"hex":"0005050505"}`)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected status 413, got %d", w.Code)
	}
}

func TestHandleRecent(t *testing.T) {
	service := newTestService(1024)

	// Two decodes: one ok, one failing.
	postDecode(t, service, `{"hex":"0005050505"}`)
	postDecode(t, service, `{"hex":"ff"}`)

	req := httptest.NewRequest("GET", "/api/recent", nil)
	w := httptest.NewRecorder()
	service.handleRecent(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response RecentResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(response.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(response.Records))
	}

	// Newest first: the failing decode is most recent.
	if response.Records[0].OK {
		t.Error("Newest record should be the failed decode")
	}
	if response.Records[0].Error == "" {
		t.Error("Failed record should carry the decode error")
	}
	if !response.Records[1].OK {
		t.Error("Oldest record should be the ok decode")
	}
	if response.Records[0].Source != journal.SourceAPI {
		t.Errorf("Source = %q, want %q", response.Records[0].Source, journal.SourceAPI)
	}
	if response.Evicted != 0 {
		t.Errorf("Evicted = %d, want 0", response.Evicted)
	}

	// Wrong method
	req2 := httptest.NewRequest("POST", "/api/recent", nil)
	w2 := httptest.NewRecorder()
	service.handleRecent(w2, req2)
	if w2.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w2.Code)
	}
}

func TestHandleRecentLimit(t *testing.T) {
	service := newTestService(1024)

	for i := 0; i < 3; i++ {
		postDecode(t, service, `{"hex":"0005050505"}`)
	}

	req := httptest.NewRequest("GET", "/api/recent?limit=2", nil)
	w := httptest.NewRecorder()
	service.handleRecent(w, req)

	var response RecentResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(response.Records))
	}

	for _, raw := range []string{"-1", "abc"} {
		req2 := httptest.NewRequest("GET", "/api/recent?limit="+raw, nil)
		w2 := httptest.NewRecorder()
		service.handleRecent(w2, req2)
		if w2.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: expected status 400, got %d", raw, w2.Code)
		}
	}
}
