// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the ENRICHD_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides,
// grouped by value type (string, numeric, duration, bool).
var envOverrides = []envOverride{
	// String overrides
	{"HOST", []string{"host"}, func(c *AppConfig, v string) {
		c.Host = v
	}},
	{"SERVICE_A_URL", []string{"service-a-url"}, func(c *AppConfig, v string) {
		c.ServiceAURL = v
	}},
	{"SERVICE_B_URL", []string{"service-b-url"}, func(c *AppConfig, v string) {
		c.ServiceBURL = v
	}},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) {
		c.LogLevel = v
	}},

	// Numeric overrides
	{"PORT", []string{"port"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Port = parsed
		}
	}},
	{"HTTP_RETRIES", []string{"http-retries"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.HTTPRetries = parsed
		}
	}},

	// Duration overrides
	{"HTTP_TIMEOUT", []string{"http-timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.HTTPTimeout = parsed
		}
	}},

	// Boolean overrides
	{"DEBUG", []string{"debug"}, func(c *AppConfig, v string) {
		c.Debug = parseBoolEnv(v, c.Debug)
	}},
	{"TRACING", []string{"tracing"}, func(c *AppConfig, v string) {
		c.EnableTracing = parseBoolEnv(v, c.EnableTracing)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with ENRICHD_):
//   - HOST, PORT, SERVICE_A_URL, SERVICE_B_URL, HTTP_TIMEOUT, HTTP_RETRIES,
//     LOG_LEVEL, DEBUG, TRACING
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
