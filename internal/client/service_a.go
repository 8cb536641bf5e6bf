package client

import (
	"context"
	"net/url"
)

// SourceNameA identifies service A in orchestration results and logs.
const SourceNameA = "service_a"

// ServiceA adapts the first external enrichment service. Its primary lookup
// is a keyed data query; it also exposes the service's item processing
// endpoint for write paths.
type ServiceA struct {
	c *Client
}

// NewServiceA builds a ServiceA adapter from the given client configuration.
func NewServiceA(cfg Config) *ServiceA {
	return &ServiceA{c: NewClient(cfg)}
}

// Name returns the source identifier used in results and logs.
func (s *ServiceA) Name() string { return SourceNameA }

// Fetch queries service A for data matching the given key.
func (s *ServiceA) Fetch(ctx context.Context, key string) (map[string]any, error) {
	return s.GetData(ctx, key)
}

// GetData performs the keyed data lookup against /api/data.
func (s *ServiceA) GetData(ctx context.Context, query string) (map[string]any, error) {
	q := url.Values{}
	q.Set("query", query)
	return s.c.doJSON(ctx, SourceNameA, "GET", "/api/data", q, nil)
}

// ProcessItem submits an item document to service A for processing.
func (s *ServiceA) ProcessItem(ctx context.Context, item map[string]any) (map[string]any, error) {
	return s.c.doJSON(ctx, SourceNameA, "POST", "/api/process", nil, item)
}
