package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(DefaultConfig(), config.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = srv.telemetryProvider.Shutdown(context.Background()) })
	return srv
}

func TestNew(t *testing.T) {
	srv := newTestServer(t)
	if srv.httpServer == nil {
		t.Fatal("httpServer is nil")
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	mux := http.NewServeMux()
	srv.registerRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestComputeTrajectoriesEndpoint(t *testing.T) {
	srv := newTestServer(t)
	mux := http.NewServeMux()
	srv.registerRoutes(mux)

	reqBody := ComputeTrajectoriesRequest{
		DAGs: map[string][]string{
			"p1": {"A->-B"},
			"p2": {"B->-A"},
		},
		K: 2,
	}
	raw, err := json.Marshal(reqBody)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/trajectories/compute", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/v1/trajectories/compute status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp ComputeTrajectoriesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !resp.Success {
		t.Fatal("resp.Success = false, want true")
	}
	if len(resp.Trajectories) != 2 {
		t.Fatalf("len(Trajectories) = %d, want 2", len(resp.Trajectories))
	}
}

func TestComputeTrajectoriesEndpoint_RejectsEmptyDAGs(t *testing.T) {
	srv := newTestServer(t)
	mux := http.NewServeMux()
	srv.registerRoutes(mux)

	raw, _ := json.Marshal(ComputeTrajectoriesRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trajectories/compute", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestComputeTrajectoriesEndpoint_RejectsGet(t *testing.T) {
	srv := newTestServer(t)
	mux := http.NewServeMux()
	srv.registerRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trajectories/compute", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
