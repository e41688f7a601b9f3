package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger behind a small structured-logging API.
// Every method takes an optional fields map that is attached to the event.
type Logger struct {
	zlog zerolog.Logger
}

// New builds a Logger for the given environment. Development gets colored,
// human-readable console output at debug level; anything else gets JSON on
// stdout at info level.
func New(env string) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	zlog := zerolog.New(outputFor(env)).
		Level(levelFor(env)).
		With().
		Timestamp().
		Logger()

	return &Logger{zlog: zlog}
}

func outputFor(env string) io.Writer {
	if env == "development" {
		return zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}
	return os.Stdout
}

func levelFor(env string) zerolog.Level {
	if env == "development" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// annotate copies the fields map onto an event. A nil map is fine.
func annotate(event *zerolog.Event, fields map[string]interface{}) *zerolog.Event {
	for key, value := range fields {
		event = event.Interface(key, value)
	}
	return event
}

// Debug logs a debug message with optional fields.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	annotate(l.zlog.Debug(), fields).Msg(msg)
}

// Info logs an info message with optional fields.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	annotate(l.zlog.Info(), fields).Msg(msg)
}

// Warn logs a warning message with optional fields.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	annotate(l.zlog.Warn(), fields).Msg(msg)
}

// Error logs an error message together with the error itself.
func (l *Logger) Error(msg string, err error, fields map[string]interface{}) {
	annotate(l.zlog.Error().Err(err), fields).Msg(msg)
}

// Fatal logs the message and error, then exits the process.
func (l *Logger) Fatal(msg string, err error, fields map[string]interface{}) {
	annotate(l.zlog.Fatal().Err(err), fields).Msg(msg)
}

// With returns a child logger carrying the given fields on every event.
func (l *Logger) With(fields map[string]interface{}) *Logger {
	ctx := l.zlog.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &Logger{zlog: ctx.Logger()}
}

// WithRequestID returns a child logger tagged with the request ID.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		zlog: l.zlog.With().Str("request_id", requestID).Logger(),
	}
}

// GetZerolog exposes the underlying zerolog.Logger for advanced usage.
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zlog
}
