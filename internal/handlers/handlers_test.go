package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"interviewmate/internal/app"
	"interviewmate/internal/config"
	"interviewmate/internal/models"
	"interviewmate/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	generateFn func(ctx context.Context, prompt, requestID string) (*models.GenerationResponse, error)
}

func (m *mockProvider) GenerateContent(ctx context.Context, prompt, requestID string) (*models.GenerationResponse, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, prompt, requestID)
	}
	return &models.GenerationResponse{Content: "Tell me about a recent project.", RequestID: requestID}, nil
}

func (m *mockProvider) GetProviderName() string { return "mock" }

type nopRecorder struct{}

func (nopRecorder) ObserveReply(string)   {}
func (nopRecorder) ObserveCompletion(int) {}

func newTestApp(t *testing.T, provider *mockProvider) *app.App {
	t.Helper()
	if provider == nil {
		provider = &mockProvider{}
	}
	cfg := &config.Config{
		Provider: "gemini",
		Storage:  config.StorageConfig{Driver: "memory"},
		Auth:     config.AuthConfig{JWTSecret: "test"},
	}
	a, err := app.New(context.Background(), cfg, nil,
		app.WithStore(store.NewMemoryStore()),
		app.WithProvider(provider),
		app.WithRecorder(nopRecorder{}))
	require.NoError(t, err)
	return a
}

// serve runs h against a request carrying the given chi URL params.
func serve(h http.Handler, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return record(h, req)
}

func record(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}
