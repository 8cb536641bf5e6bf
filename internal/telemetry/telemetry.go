// Package telemetry selects the tracer used across the service. Tracing is
// off by default; when enabled, spans go through the process-global
// OpenTelemetry tracer provider, so an SDK configured by the embedding
// environment picks them up without further wiring here.
package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// instrumentationName identifies this service's spans.
const instrumentationName = "github.com/agbru/enrichd"

// Tracer returns the tracer to instrument with. When disabled it returns a
// no-op tracer, so callers never need to branch on the setting.
func Tracer(enabled bool) trace.Tracer {
	if !enabled {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return otel.Tracer(instrumentationName)
}
