package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Field represents a single structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// String creates a Field holding a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates a Field holding an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 creates a Field holding an int64 value.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Uint64 creates a Field holding a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a Field holding a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Bool creates a Field holding a bool value.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Err creates a Field holding an error under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface used across all components. It decouples
// callers from the concrete backend so that tests can substitute a buffer
// and production wiring can choose output format and level.
type Logger interface {
	// Debug logs a message at debug level with optional structured fields.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level with optional structured fields.
	Info(msg string, fields ...Field)
	// Warn logs a message at warning level with optional structured fields.
	Warn(msg string, fields ...Field)
	// Error logs a message at error level, attaching err and optional fields.
	Error(msg string, err error, fields ...Field)
	// Printf logs a formatted message at info level (log.Printf compatibility).
	Printf(format string, args ...any)
	// Println logs its arguments at info level (log.Println compatibility).
	Println(args ...any)
	// With returns a derived Logger that includes the given fields on every event.
	With(fields ...Field) Logger
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger in the Logger interface.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

// NewLogger creates a Logger writing JSON events to w, tagged with the given
// component name and a timestamp on every event.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{zl: zl}
}

// NewDefaultLogger creates a Logger writing to stderr at the info level.
func NewDefaultLogger() *ZerologAdapter {
	zl := zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	return &ZerologAdapter{zl: zl}
}

// NewServiceLogger creates the process-wide Logger. Level is parsed from
// levelStr (falling back to info). In pretty mode events are rendered for a
// terminal instead of JSON.
func NewServiceLogger(w io.Writer, levelStr string, pretty bool) *ZerologAdapter {
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	out := w
	if pretty {
		out = zerolog.ConsoleWriter{Out: w}
	}
	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &ZerologAdapter{zl: zl}
}

// Debug logs a message at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.zl.Debug(), fields).Msg(msg)
}

// Info logs a message at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.zl.Info(), fields).Msg(msg)
}

// Warn logs a message at warning level.
func (a *ZerologAdapter) Warn(msg string, fields ...Field) {
	applyFields(a.zl.Warn(), fields).Msg(msg)
}

// Error logs a message at error level with the triggering error attached.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(a.zl.Error().AnErr("error", err), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.zl.Info().Msgf(format, args...)
}

// Println logs its arguments at info level.
func (a *ZerologAdapter) Println(args ...any) {
	a.zl.Info().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// With returns a derived Logger carrying the given fields on every event.
func (a *ZerologAdapter) With(fields ...Field) Logger {
	ctx := a.zl.With()
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ctx = ctx.Str(f.Key, v)
		case int:
			ctx = ctx.Int(f.Key, v)
		case int64:
			ctx = ctx.Int64(f.Key, v)
		case uint64:
			ctx = ctx.Uint64(f.Key, v)
		case float64:
			ctx = ctx.Float64(f.Key, v)
		case bool:
			ctx = ctx.Bool(f.Key, v)
		case error:
			ctx = ctx.AnErr(f.Key, v)
		default:
			ctx = ctx.Interface(f.Key, v)
		}
	}
	return &ZerologAdapter{zl: ctx.Logger()}
}

// applyFields attaches each Field to the event using the zerolog method
// matching its dynamic type.
func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

// StdLoggerAdapter implements Logger on top of the standard library logger.
// It exists for contexts where zerolog is not wired, such as small tools.
type StdLoggerAdapter struct {
	std   *log.Logger
	bound []Field
}

// NewStdLoggerAdapter wraps a standard library logger in the Logger interface.
func NewStdLoggerAdapter(std *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{std: std}
}

func (a *StdLoggerAdapter) log(level, msg string, fields []Field) {
	var b strings.Builder
	b.WriteString("[" + level + "]")
	b.WriteString(" ")
	b.WriteString(msg)
	for _, f := range append(a.bound, fields...) {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	a.std.Println(b.String())
}

// Debug logs a message at debug level.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) { a.log("DEBUG", msg, fields) }

// Info logs a message at info level.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) { a.log("INFO", msg, fields) }

// Warn logs a message at warning level.
func (a *StdLoggerAdapter) Warn(msg string, fields ...Field) { a.log("WARN", msg, fields) }

// Error logs a message at error level with the triggering error attached.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	a.log("ERROR", msg, append([]Field{Err(err)}, fields...))
}

// Printf logs a formatted message.
func (a *StdLoggerAdapter) Printf(format string, args ...any) { a.std.Printf(format, args...) }

// Println logs its arguments.
func (a *StdLoggerAdapter) Println(args ...any) { a.std.Println(args...) }

// With returns a derived Logger carrying the given fields on every event.
func (a *StdLoggerAdapter) With(fields ...Field) Logger {
	bound := make([]Field, 0, len(a.bound)+len(fields))
	bound = append(bound, a.bound...)
	bound = append(bound, fields...)
	return &StdLoggerAdapter{std: a.std, bound: bound}
}
