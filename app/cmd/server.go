// Package cmd contains commands for the application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Semior001/newsdigest/app/digest"
	"github.com/Semior001/newsdigest/app/feed"
	"github.com/Semior001/newsdigest/app/rest"
	"github.com/Semior001/newsdigest/app/summary"
	"github.com/Semior001/newsdigest/app/translate"
	"github.com/Semior001/newsdigest/pkg/logx"
	"github.com/go-pkgz/requester"
	"github.com/go-pkgz/requester/middleware"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

const userAgent = "newsdigest/1.0 (+https://github.com/Semior001/newsdigest)"

// Server is a command to run the http server.
type Server struct {
	Listen    string        `long:"listen" env:"LISTEN" default:":5000" description:"address to listen on"`
	FeedsPath string        `long:"feeds" env:"FEEDS" description:"path to yaml file with feed catalog, built-in catalog if empty"`
	Timeout   time.Duration `long:"timeout" env:"TIMEOUT" default:"30s" description:"timeout for feed and translation requests"`
	Translate bool          `long:"translate" env:"TRANSLATE" description:"translate summaries to korean after summarization"`

	// kept out of the solar group, the env name is not namespaced
	SolarToken string `long:"solar.token" env:"UPSTAGE_API_KEY" description:"upstage api key"`

	Solar struct {
		URL       string        `long:"url" env:"URL" default:"https://api.upstage.ai/v1/solar" description:"solar api base url"`
		Model     string        `long:"model" env:"MODEL" default:"solar-1-mini-chat" description:"solar model"`
		MaxTokens int           `long:"max-tokens" env:"MAX_TOKENS" description:"max tokens for completion, provider default if zero"`
		Timeout   time.Duration `long:"timeout" env:"TIMEOUT" default:"2m" description:"timeout for solar calls"`
	} `group:"solar" namespace:"solar" env-namespace:"SOLAR"`
}

// Execute runs the command.
func (s Server) Execute(_ []string) error {
	lg := slog.Default()

	if s.SolarToken == "" {
		lg.Warn("solar api key is not set, summarization requests will be rejected")
	}

	catalog, err := s.catalog()
	if err != nil {
		return fmt.Errorf("load feed catalog: %w", err)
	}
	lg.Info("feed catalog loaded", slog.Any("categories", catalog.Categories()))

	svc := digest.NewService(
		lg.With(slog.String("prefix", "digest")),
		catalog,
		feed.NewFetcher(
			lg.With(slog.String("prefix", "feed")),
			s.client(lg, "feed", s.Timeout).Client(),
			userAgent,
		),
		summary.NewSolar(
			lg.With(slog.String("prefix", "solar")),
			s.client(lg, "solar", s.Solar.Timeout).Client(),
			summary.Params{
				Token:     s.SolarToken,
				BaseURL:   s.Solar.URL,
				Model:     s.Solar.Model,
				MaxTokens: s.Solar.MaxTokens,
			},
		),
		s.translator(lg),
	)

	srv := &rest.Server{
		Logger:  lg.With(slog.String("prefix", "rest")),
		Service: svc,
		Addr:    s.Listen,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	ewg, ctx := errgroup.WithContext(ctx)
	ewg.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		select {
		case sig := <-sig:
			slog.Warn("caught signal, stopping", slog.String("signal", sig.String()))
			stop()
			return ctx.Err()
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	ewg.Go(func() error {
		if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("run http server: %w", err)
		}
		lg.Warn("http server stopped")
		return nil
	})

	if err := ewg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// catalog returns the built-in catalog, unless a file is given.
func (s Server) catalog() (feed.Catalog, error) {
	if s.FeedsPath == "" {
		return feed.DefaultCatalog(), nil
	}
	return feed.LoadCatalog(s.FeedsPath)
}

// translator returns nil unless translation is turned on, so that
// the digest service skips the step entirely.
func (s Server) translator(lg *slog.Logger) digest.Translator {
	if !s.Translate {
		return nil
	}
	return translate.NewGoogle(
		lg.With(slog.String("prefix", "translate")),
		s.client(lg, "translate", s.Timeout),
		translate.DefaultURL,
	)
}

func (s Server) client(lg *slog.Logger, name string, timeout time.Duration) *requester.Requester {
	return requester.New(
		http.Client{Timeout: timeout},
		middleware.Header("User-Agent", userAgent),
		logx.LoggingRoundTripper(lg.With(slog.String("client", name)), logx.RoundTripperOpts{
			Level:         slog.LevelDebug,
			SecretHeaders: []string{"Authorization"},
		}),
	)
}
