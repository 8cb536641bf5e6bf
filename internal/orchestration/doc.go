// Package orchestration coordinates concurrent fetches against independent
// upstream data sources and combines their outcomes into a single result.
// It decouples business logic from transport via the Source interface and
// from result shaping via the CombineFunc type.
package orchestration
