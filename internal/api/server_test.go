package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/deckhand/internal/engine"
	"github.com/MikeSquared-Agency/deckhand/internal/knowledge"
	"github.com/MikeSquared-Agency/deckhand/internal/processor"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(apiToken string) *Server {
	eng := engine.New(knowledge.Embedded(), discardLogger())
	proc := processor.New(eng, nil, nil, engine.VariantEnhanced, discardLogger())
	return NewServer(8760, apiToken, proc)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer("")

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := newTestServer("")

	req := httptest.NewRequest("GET", "/api/v1/deckhand/status", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["agent"] != "deckhand" {
		t.Errorf("expected agent deckhand, got %q", body["agent"])
	}
	if body["status"] != "ready" {
		t.Errorf("expected status ready, got %q", body["status"])
	}
}

func TestNotFoundEndpoint(t *testing.T) {
	srv := newTestServer("")

	req := httptest.NewRequest("GET", "/nonexistent", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer("")

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Error("expected default Go collectors in metrics output")
	}
}

func TestCreateSelection(t *testing.T) {
	srv := newTestServer("")

	body := `{"notes":"DOOH near stores","budget_1":"$1,250,000","healthcare":"true"}`
	req := httptest.NewRequest("POST", "/api/v1/selections", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SelectionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.SelectionID == uuid.Nil {
		t.Error("expected a selection id")
	}
	if resp.Variant != engine.VariantEnhanced {
		t.Errorf("expected enhanced variant, got %s", resp.Variant)
	}
	if resp.Output["tactics_detected"] != float64(2) {
		t.Errorf("expected 2 tactics, got %v", resp.Output["tactics_detected"])
	}
	if resp.Output["ai_enhanced"] != true {
		t.Errorf("expected ai_enhanced, got %v", resp.Output["ai_enhanced"])
	}
	if !strings.Contains(resp.Output["industry_context"].(string), `"industry":"Healthcare"`) {
		t.Errorf("unexpected industry context %v", resp.Output["industry_context"])
	}
}

func TestCreateSelection_BooleanFlagIgnored(t *testing.T) {
	srv := newTestServer("")

	req := httptest.NewRequest("POST", "/api/v1/selections", strings.NewReader(`{"healthcare":true,"DOOH":true}`))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp SelectionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Output["ai_enhanced"] != false || resp.Output["confidence"] != float64(70) {
		t.Errorf("boolean flags should not count, got ai_enhanced=%v confidence=%v",
			resp.Output["ai_enhanced"], resp.Output["confidence"])
	}
}

func TestCreateSelection_BasicVariant(t *testing.T) {
	srv := newTestServer("")

	req := httptest.NewRequest("POST", "/api/v1/selections?variant=basic", strings.NewReader(`{"notes":"podcast"}`))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp SelectionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Variant != engine.VariantBasic {
		t.Errorf("expected basic variant, got %s", resp.Variant)
	}
	if len(resp.Output) != 5 {
		t.Errorf("expected 5 output keys for basic, got %d", len(resp.Output))
	}
	if resp.Output["reasoning"] != "Intelligent slide selection, AUDIO detected" {
		t.Errorf("unexpected reasoning %v", resp.Output["reasoning"])
	}
}

func TestCreateSelection_BadRequests(t *testing.T) {
	srv := newTestServer("")

	tests := []struct {
		name string
		path string
		body string
	}{
		{"unknown variant", "/api/v1/selections?variant=premium", `{}`},
		{"not json", "/api/v1/selections", `notes=dooh`},
		{"top-level array", "/api/v1/selections", `["dooh"]`},
		{"nested object", "/api/v1/selections", `{"notes":{"text":"dooh"}}`},
		{"trailing data", "/api/v1/selections", `{} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			srv.router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			var body map[string]string
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode error body: %v", err)
			}
			if body["error"] == "" {
				t.Error("expected an error message")
			}
		})
	}
}

func TestCreateSelection_BearerAuth(t *testing.T) {
	srv := newTestServer("deckhand-secret")

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"wrong scheme", "Basic deckhand-secret", http.StatusUnauthorized},
		{"valid", "Bearer deckhand-secret", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/selections", strings.NewReader(`{}`))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			srv.router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestHealth_NoAuthRequired(t *testing.T) {
	srv := newTestServer("deckhand-secret")

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("health should not require auth, got %d", w.Code)
	}
}
