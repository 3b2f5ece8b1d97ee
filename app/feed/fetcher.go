package feed

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"regexp"
	"strings"

	"github.com/Semior001/newsdigest/app/metrics"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"golang.org/x/exp/slog"
)

// Fetcher downloads feeds and extracts entry summaries.
type Fetcher struct {
	log    *slog.Logger
	parser *gofeed.Parser
	policy *bluemonday.Policy
}

// NewFetcher makes a new Fetcher, cl is used for all feed requests.
func NewFetcher(lg *slog.Logger, cl *http.Client, userAgent string) *Fetcher {
	p := gofeed.NewParser()
	p.Client = cl
	if userAgent != "" {
		p.UserAgent = userAgent
	}

	return &Fetcher{
		log:    lg,
		parser: p,
		policy: bluemonday.StrictPolicy(),
	}
}

// Fragments fetches the given feeds one by one, in order, and returns
// the summary of every entry. Entries without a summary give an empty
// fragment. The first feed that cannot be fetched or parsed fails the
// whole call.
func (f *Fetcher) Fragments(ctx context.Context, urls []string) ([]string, error) {
	var res []string

	for _, u := range urls {
		items, err := f.fetch(ctx, u)
		if err != nil {
			return nil, fmt.Errorf("fetch feed %s: %w", u, err)
		}

		for _, item := range items {
			res = append(res, f.Summary(item))
		}
	}

	return res, nil
}

func (f *Fetcher) fetch(ctx context.Context, u string) ([]*gofeed.Item, error) {
	f.log.DebugCtx(ctx, "fetching feed", slog.String("url", u))

	fd, err := f.parser.ParseURLWithContext(u, ctx)
	if err != nil {
		metrics.RecordFeedFetch(0, err)
		return nil, fmt.Errorf("parse: %w", err)
	}
	metrics.RecordFeedFetch(len(fd.Items), nil)

	f.log.DebugCtx(ctx, "feed fetched",
		slog.String("url", u),
		slog.String("title", fd.Title),
		slog.Int("items", len(fd.Items)),
	)

	return fd.Items, nil
}

var spaces = regexp.MustCompile(`\s+`)

// Summary returns the plain-text summary of the entry, or an empty
// string, if the entry has none.
func (f *Fetcher) Summary(item *gofeed.Item) string {
	if item == nil || item.Description == "" {
		return ""
	}

	s := f.policy.Sanitize(item.Description)
	s = html.UnescapeString(s)
	// nbsp
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = spaces.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
