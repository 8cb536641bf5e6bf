// Package server exposes the enrichment service over HTTP. It owns routing,
// request middleware (security headers, request IDs, tracing, logging,
// metrics) and the translation between the wire format and the orchestration
// core.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/agbru/enrichd/internal/config"
	"github.com/agbru/enrichd/internal/logging"
	"github.com/agbru/enrichd/internal/orchestration"
	"github.com/agbru/enrichd/internal/sysmon"
)

// Processor runs one enrichment request. It is satisfied by
// *orchestration.Orchestrator.
type Processor interface {
	Process(ctx context.Context, input string, options map[string]string) (*orchestration.Result, error)
}

// Server is the HTTP front of the enrichment service.
type Server struct {
	cfg       config.AppConfig
	processor Processor
	logger    logging.Logger
	metrics   *Metrics
	security  SecurityConfig
	tracer    trace.Tracer
	monitor   *sysmon.Monitor

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithSecurityConfig overrides the default security configuration.
func WithSecurityConfig(sc SecurityConfig) Option {
	return func(s *Server) { s.security = sc }
}

// WithTracer sets the tracer used for per-request spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Server) { s.tracer = t }
}

// New builds a Server around the given processor.
func New(cfg config.AppConfig, processor Processor, logger logging.Logger, opts ...Option) *Server {
	s := &Server{
		cfg:       cfg,
		processor: processor,
		logger:    logger,
		metrics:   NewMetrics(),
		security:  DefaultSecurityConfig(),
		tracer:    noop.NewTracerProvider().Tracer("enrichd/server"),
		monitor:   sysmon.NewMonitor(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/process", s.wrap(s.handleProcess))
	mux.HandleFunc("/health", s.wrap(s.handleHealth))
	mux.HandleFunc("/metrics", s.wrap(s.handleMetrics))
	return mux
}

// wrap applies the middleware chain, outermost first: security headers and
// CORS, then request ID plus tracing plus logging, then metrics.
func (s *Server) wrap(h http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.requestMiddleware(s.metricsMiddleware(h)))
}

// ListenAndServe runs the HTTP server until the context is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.ListenAddr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	s.logger.Info("server listening",
		logging.String("addr", s.cfg.ListenAddr()),
		logging.String("version", s.cfg.Version),
	)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	err := <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
