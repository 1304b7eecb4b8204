package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roproxy-gateway/internal/config"
	"roproxy-gateway/internal/metrics"
	"roproxy-gateway/internal/service"
)

// readMethods are served by every gateway route. HEAD runs the GET handler;
// the server discards the body.
var readMethods = []string{http.MethodGet, http.MethodHead}

// RegisterRoutes wires all route handlers onto the Echo instance.
func RegisterRoutes(e *echo.Echo, proxy *ProxyHandler, health *HealthHandler) {
	e.Match(readMethods, "/", health.Index)
	e.Match(readMethods, "/health", health.Health)

	e.Match(readMethods, "/api/users/:userId/games", proxy.UserGames)
	e.Match(readMethods, "/api/games/:universeId/game-passes", proxy.GamePasses)
	e.Match(readMethods, "/api/catalog/items", proxy.CatalogItems)

	e.Match(readMethods, "/games/*", proxy.Passthrough(service.UpstreamGames))
	e.Match(readMethods, "/catalog/*", proxy.Passthrough(service.UpstreamCatalog))
	e.Match(readMethods, "/users/*", proxy.Passthrough(service.UpstreamUsers))
}

// RegisterMetrics exposes the Prometheus registry when metrics are enabled.
func RegisterMetrics(e *echo.Echo, cfg *config.Config, m *metrics.Metrics) {
	if !cfg.Metrics.Enabled {
		return
	}
	e.Match(readMethods, cfg.Metrics.Path, echo.WrapHandler(m.Handler()))
}
