// Package logger builds slog loggers for the website: human-readable text
// output in development, JSON in production, with optional Sentry forwarding
// for warnings and errors.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// Config holds logging configuration.
// Embed this in the app config for env parsing with caarlos0/env.
type Config struct {
	SentryDSN   string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Verbose     bool   `env:"LOG_VERBOSE" envDefault:"false"`
}

// New creates a logger writing JSON to stdout. Extractors inject
// request-scoped attributes (e.g. request IDs) on every log call.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(newContextHandler(baseHandler(cfg), extractors...))
}

// NewWithSentry creates a logger that writes to stdout and forwards
// warnings and errors to Sentry. If the DSN is empty or Sentry fails to
// initialize, it degrades to stdout-only logging so the same code path
// works in development.
func NewWithSentry(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	stdout := baseHandler(cfg)

	if cfg.SentryDSN == "" {
		return slog.New(newContextHandler(stdout, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(newContextHandler(stdout, extractors...))
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	return slog.New(newContextHandler(newMultiHandler(stdout, sentryHandler), extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func baseHandler(cfg Config) slog.Handler {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
}
