// Package config handles service configuration from command-line flags and
// environment variables. Resolution priority: CLI flags > environment
// variables > defaults. Configuration is read once at process startup and
// never reloaded.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/enrichd/internal/errors"
)

// EnvPrefix is prepended to every environment variable consulted by this package.
const EnvPrefix = "ENRICHD_"

// Default values applied when neither a flag nor an environment variable is set.
const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8000
	DefaultHTTPTimeout = 30 * time.Second
	DefaultHTTPRetries = 3
	DefaultLogLevel    = "info"
)

// AppConfig holds the complete runtime configuration of the service.
type AppConfig struct {
	// Host is the listen address of the HTTP server.
	Host string
	// Port is the listen port of the HTTP server.
	Port int

	// ServiceAURL is the base URL of upstream source A.
	ServiceAURL string
	// ServiceBURL is the base URL of upstream source B.
	ServiceBURL string

	// HTTPTimeout bounds every upstream request. Enforcement lives in the
	// transport layer, not in the orchestrator.
	HTTPTimeout time.Duration
	// HTTPRetries is accepted for compatibility with deployment manifests.
	// Retry policy is out of scope and the value is currently not enforced.
	HTTPRetries int

	// LogLevel selects the minimum emitted log level (debug, info, warn, error).
	LogLevel string
	// Debug switches logging to human-readable console output and allows
	// internal error details in HTTP responses.
	Debug bool
	// EnableTracing controls whether per-request spans are created.
	EnableTracing bool

	// ShowVersion is true when the user requested the version banner.
	ShowVersion bool

	// Version is the build version string, injected by the application after
	// parsing. It is not a flag.
	Version string
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for any flag not explicitly set.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: Destination for flag parse errors and usage output.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A ConfigError for invalid values, or flag.ErrHelp for -h.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var cfg AppConfig
	fs.StringVar(&cfg.Host, "host", DefaultHost, "HTTP listen address")
	fs.IntVar(&cfg.Port, "port", DefaultPort, "HTTP listen port")
	fs.StringVar(&cfg.ServiceAURL, "service-a-url", "", "base URL of upstream source A")
	fs.StringVar(&cfg.ServiceBURL, "service-b-url", "", "base URL of upstream source B")
	fs.DurationVar(&cfg.HTTPTimeout, "http-timeout", DefaultHTTPTimeout, "upstream request timeout")
	fs.IntVar(&cfg.HTTPRetries, "http-retries", DefaultHTTPRetries, "reserved; retry policy is not enforced")
	fs.StringVar(&cfg.LogLevel, "log-level", DefaultLogLevel, "minimum log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug mode (console logs, verbose errors)")
	fs.BoolVar(&cfg.EnableTracing, "tracing", false, "enable per-request tracing spans")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
//
// Returns:
//   - error: A ConfigError describing the first invalid value, or nil.
func (c AppConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return apperrors.NewConfigError("port must be in [1, 65535], got %d", c.Port)
	}
	if c.HTTPTimeout <= 0 {
		return apperrors.NewConfigError("http-timeout must be positive, got %s", c.HTTPTimeout)
	}
	if c.HTTPRetries < 0 {
		return apperrors.NewConfigError("http-retries must be non-negative, got %d", c.HTTPRetries)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	return nil
}

// ListenAddr returns the host:port pair the HTTP server binds to.
func (c AppConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
