package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"roproxy-gateway/internal/model"
	"roproxy-gateway/internal/service"
)

// errorEnvelope is the body of every failed gateway response.
type errorEnvelope struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details,omitempty"`
}

// ProxyHandler serves the gateway routes that call the platform.
type ProxyHandler struct {
	service *service.GatewayService
	logger  *slog.Logger
}

// NewProxyHandler creates a ProxyHandler.
func NewProxyHandler(svc *service.GatewayService, logger *slog.Logger) *ProxyHandler {
	return &ProxyHandler{
		service: svc,
		logger:  logger.With("component", "proxy_handler"),
	}
}

// UserGames handles GET /api/users/:userId/games.
func (h *ProxyHandler) UserGames(c echo.Context) error {
	relay, err := h.service.UserGames(c.Request().Context(), c.Param("userId"))
	return h.respond(c, relay, err)
}

// GamePasses handles GET /api/games/:universeId/game-passes.
func (h *ProxyHandler) GamePasses(c echo.Context) error {
	params := c.QueryParams()
	q := service.GamePassQuery{
		Cursor: optionalParam(params, "cursor"),
		Limit:  optionalParam(params, "limit"),
	}

	relay, err := h.service.GamePasses(c.Request().Context(), c.Param("universeId"), q)
	return h.respond(c, relay, err)
}

// CatalogItems handles GET /api/catalog/items.
func (h *ProxyHandler) CatalogItems(c echo.Context) error {
	q := service.CatalogQuery{
		CreatorID: c.QueryParam("creatorId"),
		Cursor:    c.QueryParam("cursor"),
	}

	relay, err := h.service.CatalogItems(c.Request().Context(), q)
	return h.respond(c, relay, err)
}

// Passthrough returns a handler that forwards the wildcard tail and raw query
// string to the given upstream.
func (h *ProxyHandler) Passthrough(up service.Upstream) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		relay, err := h.service.Passthrough(req.Context(), up, c.Param("*"), req.URL.RawQuery)
		return h.respond(c, relay, err)
	}
}

// respond writes a relay as 200 regardless of the upstream's 2xx code, or maps err.
func (h *ProxyHandler) respond(c echo.Context, relay *model.Relay, err error) error {
	if err != nil {
		return h.mapError(c, err)
	}
	if json.Valid(relay.Body) {
		return c.JSONBlob(http.StatusOK, relay.Body)
	}
	return c.JSON(http.StatusOK, string(relay.Body))
}

func (h *ProxyHandler) mapError(c echo.Context, err error) error {
	if errors.Is(err, service.ErrCreatorIDRequired) {
		return c.JSON(http.StatusBadRequest, errorEnvelope{Error: err.Error()})
	}

	var ue *service.UpstreamError
	if !errors.As(err, &ue) {
		h.logger.Error("gateway error",
			"err", err,
			"path", c.Request().URL.Path,
		)
		return c.JSON(http.StatusInternalServerError, errorEnvelope{Error: err.Error()})
	}

	h.logger.Error("upstream call failed",
		"url", ue.URL,
		"err", ue.Message,
		"status", ue.StatusCode,
	)

	status := ue.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, errorEnvelope{
		Error:   ue.Message,
		Details: details(ue.StatusCode != 0, ue.Body),
	})
}

// details embeds an upstream body verbatim when it is JSON and as a JSON
// string otherwise. An empty body from a responding upstream becomes "";
// without a response the field is omitted.
func details(responded bool, body []byte) json.RawMessage {
	if !responded {
		return nil
	}
	if len(body) == 0 {
		return json.RawMessage(`""`)
	}
	if json.Valid(body) {
		return body
	}
	quoted, err := json.Marshal(string(body))
	if err != nil {
		return nil
	}
	return quoted
}

// optionalParam distinguishes an absent query parameter (nil) from an empty one.
func optionalParam(params map[string][]string, key string) *string {
	vals, ok := params[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	v := vals[0]
	return &v
}
