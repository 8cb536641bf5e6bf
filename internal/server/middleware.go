package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/enrichd/internal/format"
	"github.com/agbru/enrichd/internal/logging"
)

// requestIDHeader carries the per-request correlation ID on requests and
// responses.
const requestIDHeader = "X-Request-ID"

// requestMiddleware assigns every request a correlation ID, opens a tracing
// span for it and logs start and completion with the measured duration.
// A client-supplied X-Request-ID is honored, otherwise a fresh UUID is used.
func (s *Server) requestMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx, span := s.tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
				attribute.String("request.id", requestID),
			))
		defer span.End()

		logger := s.logger.With(logging.String("request_id", requestID))
		logger.Info("request started",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
		)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r.WithContext(ctx))
		elapsed := time.Since(start)

		span.SetAttributes(attribute.Int("http.status_code", rec.status))
		if rec.status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(rec.status))
		}

		logger.Info("request completed",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status_code", rec.status),
			logging.Float64("duration_ms", format.Milliseconds(elapsed)),
		)
	}
}
