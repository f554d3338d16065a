// Package httpserver wraps http.Server with environment-driven configuration
// and graceful shutdown.
package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/onetechcm/website/pkg/logger"
)

var (
	// ErrStart is returned when the server fails to start or serve.
	ErrStart = errors.New("http server failed to start")

	// ErrShutdown is returned when graceful shutdown fails.
	ErrShutdown = errors.New("http server failed to shut down")
)

// Config holds HTTP server configuration.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Server runs an http.Server and shuts it down gracefully when the given
// context is canceled.
type Server struct {
	cfg Config
	log *slog.Logger
}

// New returns a configured Server.
func New(cfg Config, log *slog.Logger) *Server {
	if log == nil {
		log = logger.NewNope()
	}
	return &Server{cfg: cfg, log: log}
}

// Run starts the HTTP server and blocks until the context is canceled or
// the listener fails. Cancellation triggers graceful shutdown bounded by
// ShutdownTimeout.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(ErrStart, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Join(ErrShutdown, err)
		}
		s.log.Info("http server stopped")
		return nil
	})

	return g.Wait()
}
