// Package service implements outbound URL construction and the forwarding call.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"roproxy-gateway/internal/client"
	"roproxy-gateway/internal/config"
	"roproxy-gateway/internal/model"
)

// Upstream names one of the platform's API hosts.
type Upstream string

const (
	UpstreamGames   Upstream = "games"
	UpstreamCatalog Upstream = "catalog"
	UpstreamUsers   Upstream = "users"
)

// Fixed query values for the semantic routes.
const (
	userGamesLimit      = "50"
	gamePassesSortOrder = "Asc"
	gamePassesLimit     = "100"
	catalogCategory     = "3"
	catalogCreatorType  = "1"
	catalogLimit        = "30"
)

// GamePassQuery carries the optional paging parameters of the game-passes route.
// A nil field means the caller did not send it; an empty string is kept as is.
type GamePassQuery struct {
	Cursor *string
	Limit  *string
}

// CatalogQuery carries the parameters of the catalog items route.
type CatalogQuery struct {
	CreatorID string
	Cursor    string
}

// GatewayService turns gateway requests into platform API calls.
type GatewayService struct {
	client    *client.PlatformClient
	logger    *slog.Logger
	upstreams map[Upstream]string
	header    http.Header
}

// NewGatewayService creates a GatewayService from the upstream configuration.
func NewGatewayService(c *client.PlatformClient, cfg *config.Config, logger *slog.Logger) (*GatewayService, error) {
	header, err := outboundHeader(cfg.Upstream.HeaderProfile)
	if err != nil {
		return nil, fmt.Errorf("outbound headers: %w", err)
	}

	return &GatewayService{
		client: c,
		logger: logger.With("component", "gateway_service"),
		upstreams: map[Upstream]string{
			UpstreamGames:   cfg.Upstream.GamesURL,
			UpstreamCatalog: cfg.Upstream.CatalogURL,
			UpstreamUsers:   cfg.Upstream.UsersURL,
		},
		header: header,
	}, nil
}

// UserGames fetches the games created by a user.
func (s *GatewayService) UserGames(ctx context.Context, userID string) (*model.Relay, error) {
	s.logger.Info("fetching games for user", "user_id", userID)

	return s.fetch(ctx, UpstreamGames, s.userGamesURL(userID))
}

// GamePasses fetches the game passes of a universe.
func (s *GatewayService) GamePasses(ctx context.Context, universeID string, q GamePassQuery) (*model.Relay, error) {
	s.logger.Info("fetching game passes for universe", "universe_id", universeID)

	return s.fetch(ctx, UpstreamGames, s.gamePassesURL(universeID, q))
}

// CatalogItems searches the catalog for items made by a creator.
// It returns ErrCreatorIDRequired without calling upstream when CreatorID is empty.
func (s *GatewayService) CatalogItems(ctx context.Context, q CatalogQuery) (*model.Relay, error) {
	if q.CreatorID == "" {
		return nil, ErrCreatorIDRequired
	}

	s.logger.Info("fetching catalog items for creator", "creator_id", q.CreatorID)

	return s.fetch(ctx, UpstreamCatalog, s.catalogItemsURL(q))
}

// Passthrough forwards an arbitrary path and raw query string to an upstream host.
func (s *GatewayService) Passthrough(ctx context.Context, up Upstream, tail, rawQuery string) (*model.Relay, error) {
	base, ok := s.upstreams[up]
	if !ok {
		return nil, fmt.Errorf("unknown upstream %q", up)
	}
	u := joinURL(base, tail, rawQuery)

	s.logger.Info("fetching", "upstream", up, "url", u)

	return s.fetch(ctx, up, u)
}

func (s *GatewayService) userGamesURL(userID string) string {
	path := "v2/users/" + pathSegment(userID) + "/games"
	return joinURL(s.upstreams[UpstreamGames], path, encodeQuery(
		queryParam{"limit", userGamesLimit},
	))
}

func (s *GatewayService) gamePassesURL(universeID string, q GamePassQuery) string {
	limit := gamePassesLimit
	if q.Limit != nil {
		limit = *q.Limit
	}
	cursor := ""
	if q.Cursor != nil {
		cursor = *q.Cursor
	}

	path := "v1/games/" + pathSegment(universeID) + "/game-passes"
	return joinURL(s.upstreams[UpstreamGames], path, encodeQuery(
		queryParam{"sortOrder", gamePassesSortOrder},
		queryParam{"limit", limit},
		queryParam{"cursor", cursor},
	))
}

func (s *GatewayService) catalogItemsURL(q CatalogQuery) string {
	return joinURL(s.upstreams[UpstreamCatalog], "v1/search/items/details", encodeQuery(
		queryParam{"Category", catalogCategory},
		queryParam{"CreatorTargetId", q.CreatorID},
		queryParam{"CreatorType", catalogCreatorType},
		queryParam{"Limit", catalogLimit},
		queryParam{"Cursor", q.Cursor},
	))
}

// fetch performs the outbound call and classifies the result: 2xx becomes a
// Relay, anything else an *UpstreamError.
func (s *GatewayService) fetch(ctx context.Context, up Upstream, u string) (*model.Relay, error) {
	resp, err := s.client.Do(&model.OutboundRequest{
		Ctx:      ctx,
		Upstream: string(up),
		URL:      u,
		Header:   s.header,
	})
	if err != nil {
		return nil, transportError(u, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(u, resp.StatusCode, resp.Body)
	}

	return &model.Relay{Body: resp.Body}, nil
}
