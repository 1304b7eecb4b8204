// Package model defines shared types for the gateway.
package model

import (
	"context"
	"net/http"
)

// OutboundRequest is a fully built call against one platform upstream.
type OutboundRequest struct {
	Ctx      context.Context
	Upstream string // service name: games, catalog or users
	URL      string
	Header   http.Header
}

// UpstreamResponse is a buffered, decoded upstream response.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

// Relay is the payload returned to the caller on success.
type Relay struct {
	Body []byte
}
