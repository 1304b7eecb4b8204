package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Version is a string type for dependency injection of the build version.
type Version string

// Endpoints lists the semantic routes reported by /health and the startup banner.
var Endpoints = []string{
	"GET /api/users/:userId/games",
	"GET /api/games/:universeId/game-passes",
	"GET /api/catalog/items?creatorId={id}&cursor={cursor}",
}

// isoMillis matches the ISO-8601 form with millisecond precision, e.g. 2024-05-01T12:00:00.000Z.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// HealthHandler serves the local status endpoints.
type HealthHandler struct {
	version Version
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(v Version) *HealthHandler {
	return &HealthHandler{version: v, now: time.Now}
}

type healthResponse struct {
	Status    string   `json:"status"`
	Timestamp string   `json:"timestamp"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// Health returns the online status and the semantic route templates.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "online",
		Timestamp: h.now().UTC().Format(isoMillis),
		Version:   string(h.version),
		Endpoints: Endpoints,
	})
}

type indexResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// Index returns the online status and the wildcard route prefixes.
func (h *HealthHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, indexResponse{
		Status:  "online",
		Message: "Roblox API Proxy is running!",
		Endpoints: map[string]string{
			"games":   "/games/*",
			"catalog": "/catalog/*",
			"users":   "/users/*",
		},
	})
}
