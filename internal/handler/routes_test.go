package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"roproxy-gateway/internal/config"
	"roproxy-gateway/internal/metrics"
)

func TestRegisterRoutes_Wiring(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer upstream.Close()

	e := newTestGateway(t, upstream.URL)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"GET /", http.MethodGet, "/", http.StatusOK},
		{"GET /health", http.MethodGet, "/health", http.StatusOK},
		{"GET user games", http.MethodGet, "/api/users/1/games", http.StatusOK},
		{"GET game passes", http.MethodGet, "/api/games/1/game-passes", http.StatusOK},
		{"GET catalog items", http.MethodGet, "/api/catalog/items?creatorId=1", http.StatusOK},
		{"GET catalog items without creator", http.MethodGet, "/api/catalog/items", http.StatusBadRequest},
		{"GET /games/*", http.MethodGet, "/games/v1/games?universeIds=1", http.StatusOK},
		{"GET /catalog/*", http.MethodGet, "/catalog/v1/search/items", http.StatusOK},
		{"GET /users/*", http.MethodGet, "/users/v1/users/1", http.StatusOK},
		{"HEAD /", http.MethodHead, "/", http.StatusOK},
		{"HEAD /health", http.MethodHead, "/health", http.StatusOK},
		{"HEAD user games", http.MethodHead, "/api/users/1/games", http.StatusOK},
		{"HEAD /users/*", http.MethodHead, "/users/v1/users/1", http.StatusOK},
		{"POST is not routed", http.MethodPost, "/games/v1/games", http.StatusMethodNotAllowed},
		{"GET /unknown returns 404", http.MethodGet, "/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRegisterMetrics(t *testing.T) {
	m := metrics.New()

	t.Run("enabled", func(t *testing.T) {
		e := echo.New()
		RegisterMetrics(e, &config.Config{Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"}}, m)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if !strings.Contains(rec.Body.String(), "roproxy_gateway_http_requests_in_flight") {
			t.Error("expected gateway metrics in /metrics output")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		e := echo.New()
		RegisterMetrics(e, &config.Config{Metrics: config.MetricsConfig{Enabled: false, Path: "/metrics"}}, m)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}
