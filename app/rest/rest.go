// Package rest provides HTTP routes and handlers for newsdigest.
package rest

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Semior001/newsdigest/app/digest"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
)

//go:embed web
var web embed.FS

//go:generate moq -out mock_digester.go . Digester

// Digester makes digests for categories.
type Digester interface {
	Digest(ctx context.Context, category string) (digest.Result, error)
}

// Server serves the HTTP API and static pages.
type Server struct {
	Logger          *slog.Logger
	Service         Digester
	Addr            string
	ShutdownTimeout time.Duration
}

// Routes returns the echo instance with all routes registered.
func (s *Server) Routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		requestID(),
		accessLog(s.Logger),
		recoverer(s.Logger),
		middleware.CORS(),
	)

	e.GET("/", page("web/pr.html"))
	e.GET("/summary", page("web/summary.html"))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.POST("/profile", s.profile)

	return e
}

// Run starts the server and blocks until the context is done.
// The server is shut down gracefully after that.
func (s *Server) Run(ctx context.Context) error {
	e := s.Routes()

	errCh := make(chan error, 1)
	go func() {
		s.Logger.InfoCtx(ctx, "starting http server", slog.String("addr", s.Addr))
		errCh <- e.Start(s.Addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server stopped: %w", err)
	case <-ctx.Done():
	}

	timeout := s.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.Logger.InfoCtx(ctx, "shutting down http server")
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server stopped: %w", err)
	}

	return ctx.Err()
}

func page(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		bts, err := web.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read page %s: %w", name, err)
		}
		return c.HTMLBlob(http.StatusOK, bts)
	}
}
