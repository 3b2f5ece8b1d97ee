// Package translate provides translation of texts into Korean.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/go-pkgz/requester"
	"golang.org/x/exp/slog"
)

// DefaultURL is the public Google Translate endpoint.
const DefaultURL = "https://translate.googleapis.com/translate_a/single"

// maxRunes limits the text sent to the endpoint in a single request.
const maxRunes = 4000

// ErrTooLong is returned when the text exceeds the single request limit.
var ErrTooLong = errors.New("text is too long")

// Google translates texts with the public Google Translate endpoint.
type Google struct {
	log     *slog.Logger
	rq      *requester.Requester
	baseURL string
}

// NewGoogle makes a new Google translator. Empty baseURL means DefaultURL.
func NewGoogle(lg *slog.Logger, rq *requester.Requester, baseURL string) *Google {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Google{log: lg, rq: rq, baseURL: baseURL}
}

// ToKorean translates the text into Korean. If translation fails for
// any reason, the original text is returned.
func (g *Google) ToKorean(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	res, err := g.Translate(ctx, text, "auto", "ko")
	if err != nil {
		g.log.WarnCtx(ctx, "failed to translate, using original text", slog.Any("err", err))
		return text
	}

	return res
}

// Translate translates the text from one language to another.
func (g *Google) Translate(ctx context.Context, text, from, to string) (string, error) {
	if n := utf8.RuneCountInString(text); n > maxRunes {
		return "", fmt.Errorf("%w: %d runes, at most %d allowed", ErrTooLong, n, maxRunes)
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", from)
	params.Set("tl", to)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := g.rq.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			g.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	res, err := parseResponse(body)
	if err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	return res, nil
}

// ErrUnexpectedFormat is returned when the response can't be parsed.
var ErrUnexpectedFormat = errors.New("unexpected response format")

// parseResponse collects translated segments from a response like
// [[["translated","original",...],...],...].
func parseResponse(body []byte) (string, error) {
	var resp []any
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshal: %w", err)
	}

	if len(resp) == 0 {
		return "", ErrUnexpectedFormat
	}

	segments, ok := resp[0].([]any)
	if !ok {
		return "", ErrUnexpectedFormat
	}

	sb := &strings.Builder{}
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			_, _ = sb.WriteString(s)
		}
	}

	if sb.Len() == 0 {
		return "", ErrUnexpectedFormat
	}

	return sb.String(), nil
}
