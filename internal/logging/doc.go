// Package logging provides a unified structured logging interface for the service.
// It abstracts the underlying logging implementation, allowing consistent logging
// across components while supporting multiple backends.
package logging
