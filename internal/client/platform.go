// Package client provides the upstream HTTP client for the game platform APIs.
package client

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"roproxy-gateway/internal/config"
	"roproxy-gateway/internal/metrics"
	"roproxy-gateway/internal/model"
)

// maxBodyBytes caps how much of an upstream body is buffered.
const maxBodyBytes = 32 << 20

// ErrBodyTooLarge is returned when a decoded upstream body exceeds maxBodyBytes.
var ErrBodyTooLarge = errors.New("upstream body exceeds size limit")

// PlatformClient sends requests to the platform's games, catalog and users hosts.
type PlatformClient struct {
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewPlatformClient creates a PlatformClient with connection pooling and timeouts.
// The metrics parameter is optional; pass nil to disable upstream metrics recording.
func NewPlatformClient(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *PlatformClient {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        cfg.Upstream.IdleConnections,
		MaxIdleConnsPerHost: cfg.Upstream.IdleConnections,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}

	return &PlatformClient{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
		},
		logger:  logger.With("component", "platform_client"),
		metrics: m,
	}
}

// Do issues the outbound GET and buffers the decoded response body.
// Any status code is returned as a response; only transport failures are errors.
func (c *PlatformClient) Do(or *model.OutboundRequest) (*model.UpstreamResponse, error) {
	req, err := http.NewRequestWithContext(or.Ctx, http.MethodGet, or.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	if or.Header != nil {
		req.Header = or.Header.Clone()
	}

	c.logger.Debug("upstream request",
		"upstream", or.Upstream,
		"url", or.URL,
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(or.Upstream, start, 0)
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := readBody(resp)
	c.observe(or.Upstream, start, resp.StatusCode)
	if err != nil {
		return nil, fmt.Errorf("read upstream body: %w", err)
	}

	return &model.UpstreamResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// observe records latency and, when a response arrived, its status code.
func (c *PlatformClient) observe(upstream string, start time.Time, status int) {
	if c.metrics == nil {
		return
	}
	c.metrics.UpstreamDuration.WithLabelValues(upstream).Observe(time.Since(start).Seconds())
	if status != 0 {
		c.metrics.UpstreamResponses.WithLabelValues(upstream, strconv.Itoa(status)).Inc()
	}
}

func readBody(resp *http.Response) ([]byte, error) {
	r, err := decodeBody(resp.Header.Get("Content-Encoding"), resp.Body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	body, err := io.ReadAll(io.LimitReader(r, maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("%w (%d bytes)", ErrBodyTooLarge, maxBodyBytes)
	}
	return body, nil
}
