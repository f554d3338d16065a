// Command server runs the One Tech marketing website.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/onetechcm/website/internal/config"
	"github.com/onetechcm/website/internal/contact"
	"github.com/onetechcm/website/internal/handlers"
	"github.com/onetechcm/website/internal/views"
	"github.com/onetechcm/website/pkg/httpserver"
	"github.com/onetechcm/website/pkg/logger"
	"github.com/onetechcm/website/pkg/mailer"
	"github.com/onetechcm/website/pkg/mailer/resend"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Logger, httpserver.RequestIDExtractor())

	v, err := views.New()
	if err != nil {
		return fmt.Errorf("failed to load views: %w", err)
	}

	// A nil sender means submissions fail with the configuration message
	// and no dispatch is attempted. In development the log-only sender
	// keeps the flow exercisable without a Resend account.
	var sender mailer.Sender
	switch {
	case cfg.Resend.Configured():
		sender = resend.New(cfg.Resend)
	case cfg.IsDevelopment():
		sender = mailer.NewDevSender(log)
		log.Warn("RESEND_API_KEY is not set; using the dev log-only sender")
	default:
		log.Warn("RESEND_API_KEY is not set; contact submissions will be rejected")
	}

	svc := contact.New(sender, cfg.Contact,
		contact.WithLogger(log),
		contact.WithDevMode(cfg.IsDevelopment()),
	)

	router := handlers.NewRouter(v, svc, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return httpserver.New(cfg.Server, log).Run(ctx, router)
}
