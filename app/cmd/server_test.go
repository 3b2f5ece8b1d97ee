package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Semior001/newsdigest/app/feed"
	"github.com/Semior001/newsdigest/app/summary"
	"github.com/Semior001/newsdigest/app/translate"
	"github.com/Semior001/newsdigest/pkg/logx"
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func parseServer(t *testing.T, args ...string) Server {
	t.Helper()
	var s Server
	_, err := flags.NewParser(&s, flags.Default).ParseArgs(args)
	require.NoError(t, err)
	return s
}

func TestServer_Flags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := parseServer(t)
		assert.Equal(t, ":5000", s.Listen)
		assert.Empty(t, s.FeedsPath)
		assert.Equal(t, 30*time.Second, s.Timeout)
		assert.False(t, s.Translate)
		assert.Equal(t, summary.DefaultBaseURL, s.Solar.URL)
		assert.Equal(t, summary.DefaultModel, s.Solar.Model)
		assert.Equal(t, 2*time.Minute, s.Solar.Timeout)
		assert.Zero(t, s.Solar.MaxTokens)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("UPSTAGE_API_KEY", "secret-from-env")
		t.Setenv("LISTEN", ":8080")
		t.Setenv("FEEDS", "/etc/newsdigest/feeds.yml")
		t.Setenv("TRANSLATE", "true")
		t.Setenv("SOLAR_MODEL", "solar-pro")
		t.Setenv("SOLAR_TIMEOUT", "10s")

		s := parseServer(t)
		assert.Equal(t, "secret-from-env", s.SolarToken)
		assert.Equal(t, ":8080", s.Listen)
		assert.Equal(t, "/etc/newsdigest/feeds.yml", s.FeedsPath)
		assert.True(t, s.Translate)
		assert.Equal(t, "solar-pro", s.Solar.Model)
		assert.Equal(t, 10*time.Second, s.Solar.Timeout)
	})

	t.Run("flags", func(t *testing.T) {
		s := parseServer(t,
			"--listen=:9000",
			"--feeds=feeds.yml",
			"--timeout=5s",
			"--translate",
			"--solar.token=secret-from-flag",
			"--solar.url=http://localhost:1234/v1",
			"--solar.model=solar-mini",
			"--solar.max-tokens=256",
			"--solar.timeout=1m",
		)
		assert.Equal(t, ":9000", s.Listen)
		assert.Equal(t, "feeds.yml", s.FeedsPath)
		assert.Equal(t, 5*time.Second, s.Timeout)
		assert.True(t, s.Translate)
		assert.Equal(t, "secret-from-flag", s.SolarToken)
		assert.Equal(t, "http://localhost:1234/v1", s.Solar.URL)
		assert.Equal(t, "solar-mini", s.Solar.Model)
		assert.Equal(t, 256, s.Solar.MaxTokens)
		assert.Equal(t, time.Minute, s.Solar.Timeout)
	})
}

func TestServer_Catalog(t *testing.T) {
	c, err := Server{}.catalog()
	require.NoError(t, err)
	assert.Equal(t, feed.DefaultCatalog(), c)

	path := filepath.Join(t.TempDir(), "feeds.yml")
	err = os.WriteFile(path, []byte("categories:\n  전체: [https://example.com/all.xml]\n"), 0o600)
	require.NoError(t, err)

	c, err = Server{FeedsPath: path}.catalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/all.xml"}, c.Resolve("스포츠"))

	_, err = Server{FeedsPath: filepath.Join(t.TempDir(), "missing.yml")}.catalog()
	assert.Error(t, err)
}

func TestServer_Translator(t *testing.T) {
	lg := slog.New(logx.NoOp())

	assert.Nil(t, Server{}.translator(lg))
	assert.IsType(t, &translate.Google{}, Server{Translate: true}.translator(lg))
}

func TestServer_Client(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer ts.Close()

	buf := &bytes.Buffer{}
	lg := slog.New(slog.HandlerOptions{Level: slog.LevelDebug}.NewTextHandler(buf))

	cl := Server{}.client(lg, "test", time.Second).Client()
	assert.Equal(t, time.Second, cl.Timeout)

	req, err := http.NewRequest(http.MethodGet, ts.URL, http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer secret")

	resp, err := cl.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, buf.String(), "client=test")
	assert.NotContains(t, buf.String(), "Bearer secret")
}
