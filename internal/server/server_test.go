package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/filumlabs/painpoint-agent/internal/catalog"
	"github.com/filumlabs/painpoint-agent/internal/config"
	"github.com/filumlabs/painpoint-agent/internal/db"
	"github.com/filumlabs/painpoint-agent/internal/engine"
	"github.com/filumlabs/painpoint-agent/internal/history"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("loading default catalog: %v", err)
	}

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	cfg := config.ServerConfig{Addr: ":0", AllowedOrigins: []string{"*"}}
	return New(cfg, engine.New(cat), engine.DefaultMaxSolutions, history.NewStore(database))
}

func TestHealthCheck(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestIndexPage(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Pain Point Agent") {
		t.Error("index page missing title")
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv := testServer(t)

	payload := `{"pain_point": {
		"description": "our support team is overwhelmed by repetitive tickets and slow response time",
		"context": {"industry": "retail", "company_size": "medium", "urgency_level": "high"}
	}}`

	req := httptest.NewRequest("POST", "/api/analyze", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		engine.Output
		RecordID string `json:"record_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Solutions) == 0 {
		t.Error("expected at least one solution")
	}
	if resp.RecordID == "" {
		t.Error("expected a history record id")
	}

	// Record should be retrievable from the history endpoint.
	req = httptest.NewRequest("GET", "/api/history/"+resp.RecordID, nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("history lookup: expected 200, got %d", w.Code)
	}
}

func TestAnalyzeValidationError(t *testing.T) {
	srv := testServer(t)

	payload := `{"pain_point": {"description": "too short"}}`
	req := httptest.NewRequest("POST", "/api/analyze", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected an error message")
	}
}

func TestAnalyzeMalformedJSON(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("POST", "/api/analyze", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListFeatures(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/api/features", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var features []featureSummary
	if err := json.Unmarshal(w.Body.Bytes(), &features); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(features) == 0 {
		t.Fatal("expected catalog features")
	}

	// Category filter narrows the list.
	req = httptest.NewRequest("GET", "/api/features?category=VoC", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	var filtered []featureSummary
	if err := json.Unmarshal(w.Body.Bytes(), &filtered); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(filtered) == 0 || len(filtered) >= len(features) {
		t.Errorf("category filter returned %d of %d features", len(filtered), len(features))
	}
	for _, f := range filtered {
		if f.Category != "VoC" {
			t.Errorf("filtered feature %s has category %q", f.ID, f.Category)
		}
	}
}

func TestGetFeature(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/api/features/acs_ai_inbox", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var entry catalog.Entry
	if err := json.Unmarshal(w.Body.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry.ID != "acs_ai_inbox" {
		t.Errorf("feature id = %q", entry.ID)
	}

	req = httptest.NewRequest("GET", "/api/features/no_such_feature", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown feature: expected 404, got %d", w.Code)
	}
}
