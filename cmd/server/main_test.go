package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"interviewmate/internal/app"
	"interviewmate/internal/config"
	"interviewmate/internal/models"
	"interviewmate/internal/store"

	"go.uber.org/zap"
)

type fakeProvider struct{}

func (fakeProvider) GenerateContent(context.Context, string, string) (*models.GenerationResponse, error) {
	return &models.GenerationResponse{}, nil
}
func (fakeProvider) GetProviderName() string { return "fake" }

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	cfg := &config.Config{
		Provider: "gemini",
		Storage:  config.StorageConfig{Driver: "memory"},
		Server:   config.ServerConfig{Port: "0", AllowedOrigins: []string{"http://localhost:5173"}},
		Auth:     config.AuthConfig{JWTSecret: "test"},
	}
	a, err := app.New(context.Background(), cfg, zap.NewNop(),
		app.WithStore(store.NewMemoryStore()), app.WithProvider(fakeProvider{}))
	if err != nil {
		t.Fatalf("app.New returned error: %v", err)
	}
	return a
}

func TestNewRouterServesHealth(t *testing.T) {
	router := newRouter(newTestApp(t))

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected %s to return 200, got %d", path, rec.Code)
		}
	}
}

func TestNewRouterCORS(t *testing.T) {
	router := newRouter(newTestApp(t))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/interviews", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected CORS origin header, got %q", got)
	}
}

func TestNewRouterRejectsAnonymousAPI(t *testing.T) {
	router := newRouter(newTestApp(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interviews", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestNewServerWriteTimeoutCoversRequestTimeout(t *testing.T) {
	server := newServer(":0", http.NotFoundHandler())

	if server.WriteTimeout <= requestTimeout {
		t.Fatalf("expected write timeout above %s, got %s", requestTimeout, server.WriteTimeout)
	}
	if server.ReadTimeout == 0 || server.IdleTimeout == 0 {
		t.Fatalf("expected read and idle timeouts to be set: %+v", server)
	}
}
