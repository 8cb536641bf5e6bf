// Package format provides display and reporting helpers for durations.
package format

import (
	"fmt"
	"math"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// Milliseconds converts a duration to fractional milliseconds rounded to two
// decimal places, the unit reported to API callers for processing times.
//
// Parameters:
//   - d: The duration to convert.
//
// Returns:
//   - float64: The duration in milliseconds, never negative.
func Milliseconds(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	ms := float64(d) / float64(time.Millisecond)
	return math.Round(ms*100) / 100
}
