// Package client provides HTTP adapters for the external enrichment services.
// Each adapter wraps a shared, connection-pooled HTTP client and exposes the
// upstream API as typed methods returning decoded JSON documents.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/agbru/enrichd/internal/errors"
	"github.com/agbru/enrichd/internal/logging"
)

const defaultUserAgent = "enrichd/1.0"

// Config configures a Client.
type Config struct {
	// BaseURL is the upstream service root, without a trailing slash.
	BaseURL string
	// Timeout bounds each request end to end. Zero means 30 seconds.
	Timeout time.Duration
	// HTTPClient, when set, is used instead of a freshly built client. It
	// allows several adapters to share one connection pool.
	HTTPClient *http.Client
	// Logger receives per-request failure logs. Defaults to the standard
	// service logger on stderr.
	Logger logging.Logger
}

// Client is the shared HTTP machinery behind the service adapters. It owns
// URL construction, JSON decoding and the mapping of transport failures to
// upstream error kinds.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  logging.Logger
}

// NewClient builds a Client for the given upstream.
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = NewHTTPClient(cfg.Timeout)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   httpc,
		logger:  logger,
	}
}

// NewHTTPClient returns an http.Client with a connection-pooled transport
// suitable for sustained concurrent calls to a small set of hosts.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// doJSON performs a request against the upstream and decodes the JSON
// response body. The body argument, when non-nil, is JSON-encoded and sent
// with a Content-Type of application/json. Failures are returned as
// *apperrors.UpstreamError classified by failure mode.
func (c *Client) doJSON(ctx context.Context, source, method, path string, query url.Values, body any) (map[string]any, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.NewUpstreamError(source, apperrors.KindUnknown, fmt.Errorf("encode request body: %w", err))
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, apperrors.NewUpstreamError(source, apperrors.KindUnknown, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		kind := classify(err)
		c.logger.Error("HTTP request failed", err,
			logging.String("url", u),
			logging.String("method", method),
		)
		return nil, apperrors.NewUpstreamError(source, kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("unexpected status %d from %s %s", resp.StatusCode, method, path)
		c.logger.Error("HTTP request failed", err,
			logging.String("url", u),
			logging.String("method", method),
		)
		return nil, apperrors.NewUpstreamError(source, apperrors.KindTransport, err)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewUpstreamError(source, apperrors.KindTransport, fmt.Errorf("decode response body: %w", err))
	}
	return payload, nil
}

// classify maps a transport-level error to an ErrorKind.
func classify(err error) apperrors.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return apperrors.KindUnknown
	}
	return apperrors.KindTransport
}
