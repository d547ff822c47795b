package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestHealthHandler_Liveness(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", "")
	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadinessHandler(t *testing.T) {
	ok := DependencyCheck{Name: "postgres", Ping: func(context.Context) error { return nil }}
	down := DependencyCheck{Name: "redis", Ping: func(context.Context) error { return errors.New("connection refused") }}

	tests := []struct {
		name       string
		checks     []DependencyCheck
		wantCode   int
		wantStatus string
	}{
		{"no dependencies", nil, http.StatusOK, "ok"},
		{"all healthy", []DependencyCheck{ok}, http.StatusOK, "ok"},
		{"one down", []DependencyCheck{ok, down}, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/health/ready", "")
			if err := NewReadinessHandler(tt.checks...).Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}

			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Status != tt.wantStatus || len(resp.Dependencies) != len(tt.checks) {
				t.Fatalf("unexpected response: %+v", resp)
			}
		})
	}
}

func TestInfoHandler_Root(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/", "")
	c.Request().Host = "localhost:5000"

	if err := NewInfoHandler("/api-docs/index.html", "1.0.0").Root(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp infoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != serverActive || resp.Version != "1.0.0" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Documentation != "http://localhost:5000/api-docs/index.html" {
		t.Fatalf("unexpected documentation link: %s", resp.Documentation)
	}
}
