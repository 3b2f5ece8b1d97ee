// Package digest glues feeds and the summarization service together.
package digest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Semior001/newsdigest/app/feed"
	"github.com/Semior001/newsdigest/app/metrics"
	"golang.org/x/exp/slog"
)

// ErrSummarize is returned when the summarization service fails.
var ErrSummarize = errors.New("summarize articles")

//go:generate moq -out mock_deps.go . Resolver Fetcher Summarizer Translator

// Resolver resolves categories to feed lists.
type Resolver interface {
	Resolve(category string) []string
}

// Fetcher fetches feeds and returns summaries of their entries.
type Fetcher interface {
	Fragments(ctx context.Context, urls []string) ([]string, error)
}

// Summarizer condenses text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Translator translates text into Korean, returning the text as is
// on failure.
type Translator interface {
	ToKorean(ctx context.Context, text string) string
}

// Result is a digest for a single request.
type Result struct {
	Category  string
	Feeds     []string
	Fragments int
	Summary   string
}

// Service is a main application service.
type Service struct {
	log        *slog.Logger
	resolver   Resolver
	fetcher    Fetcher
	summarizer Summarizer
	translator Translator
}

// NewService creates new service. Translator is optional.
func NewService(lg *slog.Logger, r Resolver, f Fetcher, s Summarizer, t Translator) *Service {
	return &Service{
		log:        lg,
		resolver:   r,
		fetcher:    f,
		summarizer: s,
		translator: t,
	}
}

// Digest fetches feeds for the category and summarizes them.
// Empty category means the fallback one.
func (s *Service) Digest(ctx context.Context, category string) (res Result, err error) {
	if category == "" {
		category = string(feed.Fallback)
	}
	defer func() {
		label := category
		if !feed.Category(category).Known() {
			label = "other"
		}
		metrics.RecordDigest(label, err)
	}()

	res.Category = category
	res.Feeds = s.resolver.Resolve(category)

	s.log.InfoCtx(ctx, "making digest",
		slog.String("category", category),
		slog.Int("feeds", len(res.Feeds)),
	)

	fragments, err := s.fetcher.Fragments(ctx, res.Feeds)
	if err != nil {
		return Result{}, fmt.Errorf("get fragments: %w", err)
	}
	res.Fragments = len(fragments)

	text := Join(fragments)
	s.log.DebugCtx(ctx, "fragments collected",
		slog.Int("fragments", res.Fragments),
		slog.Int("runes", len([]rune(text))),
	)

	start := time.Now()
	res.Summary, err = s.summarizer.Summarize(ctx, text)
	metrics.RecordSummarize(time.Since(start).Seconds(), err)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrSummarize, err)
	}

	if s.translator != nil {
		res.Summary = s.translator.ToKorean(ctx, res.Summary)
	}

	return res, nil
}

// Join joins fragments with a single space, empty fragments included.
func Join(fragments []string) string {
	return strings.Join(fragments, " ")
}
