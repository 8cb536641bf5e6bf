package format

import (
	"testing"
	"time"
)

// TestFormatExecutionDuration verifies the unit selection per magnitude.
func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{"sub-millisecond uses microseconds", 250 * time.Microsecond, "250µs"},
		{"sub-second uses milliseconds", 42 * time.Millisecond, "42ms"},
		{"seconds use default representation", 2 * time.Second, "2s"},
		{"zero duration", 0, "0µs"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatExecutionDuration(tt.d); got != tt.expected {
				t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.expected)
			}
		})
	}
}

// TestMilliseconds verifies fractional conversion and rounding.
func TestMilliseconds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		d        time.Duration
		expected float64
	}{
		{"whole milliseconds", 42 * time.Millisecond, 42.0},
		{"fractional milliseconds rounded to 2 decimals", 1234567 * time.Nanosecond, 1.23},
		{"rounds half up", 1235 * time.Microsecond, 1.24},
		{"zero", 0, 0},
		{"negative clamps to zero", -5 * time.Millisecond, 0},
		{"sub-microsecond", 500 * time.Nanosecond, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Milliseconds(tt.d); got != tt.expected {
				t.Errorf("Milliseconds(%v) = %v, want %v", tt.d, got, tt.expected)
			}
		})
	}
}
