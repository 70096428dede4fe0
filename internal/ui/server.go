// Package ui provides the HTTP API consumed by the learning platform's
// browser frontend.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/sqlacademy-labs/sqlacademy/internal/fixture"
	"github.com/sqlacademy-labs/sqlacademy/internal/progress"
	"github.com/sqlacademy-labs/sqlacademy/internal/sandbox"
	"github.com/sqlacademy-labs/sqlacademy/internal/ui/router"
)

// Config holds configuration for the API server.
type Config struct {
	Fixture       *fixture.Store
	Sandbox       *sandbox.Sandbox
	Progress      *progress.Engine
	Port          int
	SessionSecret string
	Logger        *slog.Logger
}

// Server is the API server.
type Server struct {
	fixture      *fixture.Store
	sandbox      *sandbox.Sandbox
	progress     *progress.Engine
	sessionStore *sessions.CookieStore
	port         int
	logger       *slog.Logger
}

// NewServer creates a new API server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 365)
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		fixture:      cfg.Fixture,
		sandbox:      cfg.Sandbox,
		progress:     cfg.Progress,
		sessionStore: sessionStore,
		port:         cfg.Port,
		logger:       logger,
	}
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting API server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	router.SetupRoutes(r, router.Deps{
		Fixture:      s.fixture,
		Sandbox:      s.sandbox,
		Progress:     s.progress,
		SessionStore: s.sessionStore,
		Logger:       s.logger,
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down API server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
