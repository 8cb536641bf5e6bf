package client

import (
	"context"
	"net/url"
)

// SourceNameB identifies service B in orchestration results and logs.
const SourceNameB = "service_b"

// ServiceB adapts the second external enrichment service, which exposes
// per-item metadata and a status update endpoint.
type ServiceB struct {
	c *Client
}

// NewServiceB builds a ServiceB adapter from the given client configuration.
func NewServiceB(cfg Config) *ServiceB {
	return &ServiceB{c: NewClient(cfg)}
}

// Name returns the source identifier used in results and logs.
func (s *ServiceB) Name() string { return SourceNameB }

// Fetch retrieves the metadata document for the item identified by key.
func (s *ServiceB) Fetch(ctx context.Context, key string) (map[string]any, error) {
	return s.FetchMetadata(ctx, key)
}

// FetchMetadata retrieves metadata for an item from /api/items/{id}/metadata.
func (s *ServiceB) FetchMetadata(ctx context.Context, itemID string) (map[string]any, error) {
	return s.c.doJSON(ctx, SourceNameB, "GET", "/api/items/"+url.PathEscape(itemID)+"/metadata", nil, nil)
}

// UpdateStatus patches the status of an item via /api/items/{id}.
func (s *ServiceB) UpdateStatus(ctx context.Context, itemID, status string) (map[string]any, error) {
	body := map[string]any{"status": status}
	return s.c.doJSON(ctx, SourceNameB, "PATCH", "/api/items/"+url.PathEscape(itemID), nil, body)
}
