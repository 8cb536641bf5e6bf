// Package app assembles the enrichment service: configuration, logging,
// tracing, upstream clients, the orchestrator and the HTTP server.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/enrichd/internal/client"
	"github.com/agbru/enrichd/internal/config"
	apperrors "github.com/agbru/enrichd/internal/errors"
	"github.com/agbru/enrichd/internal/logging"
	"github.com/agbru/enrichd/internal/orchestration"
	"github.com/agbru/enrichd/internal/server"
	"github.com/agbru/enrichd/internal/telemetry"
)

// Application represents the enrichd service instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "enrichd"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	cfg.Version = Version

	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run wires the service together and serves HTTP until the context is
// canceled or a termination signal arrives. It returns a process exit code.
func (a *Application) Run(ctx context.Context) int {
	logger := logging.NewServiceLogger(os.Stderr, a.Config.LogLevel, a.Config.Debug)
	tracer := telemetry.Tracer(a.Config.EnableTracing)

	// One connection pool shared by both upstream adapters.
	httpc := client.NewHTTPClient(a.Config.HTTPTimeout)
	serviceA := client.NewServiceA(client.Config{
		BaseURL:    a.Config.ServiceAURL,
		HTTPClient: httpc,
		Logger:     logger,
	})
	serviceB := client.NewServiceB(client.Config{
		BaseURL:    a.Config.ServiceBURL,
		HTTPClient: httpc,
		Logger:     logger,
	})

	orch := orchestration.New(
		[]orchestration.Source{serviceA, serviceB},
		orchestration.WithLogger(logger),
		orchestration.WithTracer(tracer),
	)

	srv := server.New(a.Config, orch, logger, server.WithTracer(tracer))

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger.Info("starting up service",
		logging.String("version", a.Config.Version),
		logging.String("addr", a.Config.ListenAddr()),
	)

	if err := srv.ListenAndServe(ctx); err != nil {
		if apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		logger.Error("server terminated", err)
		return apperrors.ExitErrorGeneric
	}

	logger.Info("shutting down service")
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
