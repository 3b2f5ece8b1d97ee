package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/Semior001/newsdigest/pkg/logx"
	"github.com/go-pkgz/requester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestGoogle_ToKorean(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "gtx", q.Get("client"))
		assert.Equal(t, "auto", q.Get("sl"))
		assert.Equal(t, "ko", q.Get("tl"))
		assert.Equal(t, "t", q.Get("dt"))

		switch q.Get("q") {
		case "Hello. World.":
			_, _ = w.Write([]byte(`[[["안녕하세요. ","Hello. ",null,null,10],["세계.","World.",null,null,10]],null,"en"]`))
		case "broken":
			_, _ = w.Write([]byte(`{"not":"an array"}`))
		case "empty":
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusTooManyRequests)
		}
	}))
	defer ts.Close()

	g := NewGoogle(slog.New(logx.NoOp()), requester.New(http.Client{}), ts.URL)

	tbl := []struct {
		in   string
		want string
	}{
		{in: "Hello. World.", want: "안녕하세요. 세계."},
		{in: "broken", want: "broken"},
		{in: "empty", want: "empty"},
		{in: "rate limited", want: "rate limited"},
		{in: "", want: ""},
		{in: "   ", want: "   "},
	}

	for _, tt := range tbl {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, g.ToKorean(context.Background(), tt.in))
		})
	}
}

func TestGoogle_ToKoreanUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	g := NewGoogle(slog.New(logx.NoOp()), requester.New(http.Client{}), url)
	assert.Equal(t, "text", g.ToKorean(context.Background(), "text"))
}

func TestGoogle_TranslateTooLong(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[[["ok","ok"]]]`))
	}))
	defer ts.Close()

	g := NewGoogle(slog.New(logx.NoOp()), requester.New(http.Client{}), ts.URL)

	long := strings.Repeat("가", maxRunes+1)
	_, err := g.Translate(context.Background(), long, "auto", "ko")
	assert.ErrorIs(t, err, ErrTooLong)
	assert.Equal(t, long, g.ToKorean(context.Background(), long))
	assert.Zero(t, calls.Load())

	res, err := g.Translate(context.Background(), strings.Repeat("가", maxRunes), "auto", "ko")
	require.NoError(t, err)
	assert.Equal(t, "ok", res)
	assert.Equal(t, int64(1), calls.Load())
}

func TestParseResponse(t *testing.T) {
	res, err := parseResponse([]byte(`[[["a","x"],[],[1],["b","y"]]]`))
	require.NoError(t, err)
	assert.Equal(t, "ab", res)

	_, err = parseResponse([]byte(`[[]]`))
	assert.ErrorIs(t, err, ErrUnexpectedFormat)

	_, err = parseResponse([]byte(`not json`))
	assert.Error(t, err)
}
