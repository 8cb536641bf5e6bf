package orchestration

import (
	"context"
)

// Source defines the contract for an upstream data source queried during
// fan-out. This interface decouples the orchestration layer from transport
// concerns: implementations own base URLs, serialization, and timeout
// enforcement, while the orchestrator only sees "given a key, eventually
// produce a payload or a typed failure".
//
// Implementations must be safe for concurrent use; one Source instance is
// shared across all in-flight requests.
type Source interface {
	// Name returns the stable identifier of the source, fixed at wiring time.
	Name() string

	// Fetch retrieves the enrichment payload for the given key. It must
	// honor ctx cancellation and return an error (never a partial payload)
	// on any transport-level failure.
	Fetch(ctx context.Context, key string) (map[string]any, error)
}

// SourceFunc is a function adapter that implements Source.
// This allows passing a named function directly where a Source is expected.
type SourceFunc struct {
	// SourceName is the identifier reported by Name.
	SourceName string
	// FetchFunc is invoked by Fetch.
	FetchFunc func(ctx context.Context, key string) (map[string]any, error)
}

// Name returns the configured source name.
func (f SourceFunc) Name() string { return f.SourceName }

// Fetch calls the underlying function.
func (f SourceFunc) Fetch(ctx context.Context, key string) (map[string]any, error) {
	return f.FetchFunc(ctx, key)
}

// CombineFunc merges the request input with the (possibly empty) payloads of
// every source into the final processed string. Payloads arrive in source
// registration order. Implementations must be pure functions of their
// arguments and must succeed when all payloads are empty; a returned error is
// treated as a fatal processing failure, not a recoverable condition.
type CombineFunc func(input string, payloads []map[string]any) (string, error)
