// Package logging provides the structured logger used by the example programs.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the logger level and output format.
type Config struct {
	Level  string // zerolog level name (default: "info")
	Format string // "json" or "console" (default: "console")
}

// DefaultConfig returns a console logger at info level.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "console"}
}

// Logger wraps zerolog.Logger with key-value convenience methods.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger writing to stdout according to cfg.
func New(cfg Config) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var output io.Writer = os.Stdout
	if cfg.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}
	return NewWithWriter(output, level)
}

// NewWithWriter creates a logger with a custom writer.
func NewWithWriter(w io.Writer, level zerolog.Level) *Logger {
	zl := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
	return &Logger{zl: zl}
}

// With returns a child logger carrying the given key-value pairs.
func (l *Logger) With(fields ...any) *Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &Logger{zl: ctx.Logger()}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...any) {
	emit(l.zl.Debug(), msg, fields)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...any) {
	emit(l.zl.Info(), msg, fields)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...any) {
	emit(l.zl.Warn(), msg, fields)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...any) {
	emit(l.zl.Error(), msg, fields)
}

func emit(e *zerolog.Event, msg string, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		// errors marshal to {} through Interface
		if err, ok := fields[i+1].(error); ok {
			e.AnErr(key, err)
			continue
		}
		e.Interface(key, fields[i+1])
	}
	e.Msg(msg)
}
