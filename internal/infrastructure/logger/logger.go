// Package logger wraps zerolog with the service-wide defaults: a service
// tag on every entry, JSON or console output, and a Nop variant for tests.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls log output.
type Config struct {
	// Level is the minimum level emitted (debug, info, warn, error, fatal, panic).
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format selects json or console output.
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller attaches file:line to every entry.
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	// ServiceName tags every entry with the emitting service.
	ServiceName string `env:"SERVICE_NAME" envDefault:"aircraft-lookup"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Level:        "info",
		Format:       "json",
		EnableCaller: false,
		ServiceName:  "aircraft-lookup",
	}
}

// Logger carries a zerolog.Logger plus the helpers below.
type Logger struct {
	zerolog.Logger
}

// New builds a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput builds a Logger against an arbitrary writer, which lets
// tests capture output in a buffer.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{Logger: ctx.Logger()}
}

// WithContext returns a child logger with an extra string field.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithRequestID tags entries with the inbound request ID.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithContext("request_id", requestID)
}

// WithProvider tags entries with the upstream provider name.
func (l *Logger) WithProvider(provider string) *Logger {
	return l.WithContext("provider", provider)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Global is the process-wide logger, set during startup.
var Global *Logger

// Init builds the global logger from cfg.
func Init(cfg Config) {
	Global = New(cfg)
}

// SetGlobal replaces the global logger.
func SetGlobal(l *Logger) {
	Global = l
}

// Info returns an info event on the global logger, initializing it with
// defaults on first use.
func Info() *zerolog.Event {
	return global().Info()
}

// Error returns an error event on the global logger.
func Error() *zerolog.Event {
	return global().Error()
}

// Debug returns a debug event on the global logger.
func Debug() *zerolog.Event {
	return global().Debug()
}

// Warn returns a warn event on the global logger.
func Warn() *zerolog.Event {
	return global().Warn()
}

// Fatal returns a fatal event on the global logger.
func Fatal() *zerolog.Event {
	return global().Fatal()
}

func global() *Logger {
	if Global == nil {
		Init(DefaultConfig())
	}
	return Global
}
