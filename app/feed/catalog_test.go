package feed

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Resolve(t *testing.T) {
	c := DefaultCatalog()

	t.Run("known categories", func(t *testing.T) {
		for cat, urls := range c.feeds {
			assert.Equal(t, urls, c.Resolve(string(cat)), "category %s", cat)
		}
	})

	t.Run("sports", func(t *testing.T) {
		assert.Equal(t, []string{
			"https://www.yna.co.kr/rss/sports.xml",
			"https://www.hankyung.com/feed/sports",
		}, c.Resolve("스포츠"))
	})

	t.Run("unknown categories fall back", func(t *testing.T) {
		all := c.feeds[CategoryAll]
		require.Len(t, all, 10)

		for _, s := range []string{"", "sports", "스포츠 ", "unknown", "전체"} {
			assert.Equal(t, all, c.Resolve(s), "category %q", s)
		}
	})

	t.Run("result is a copy", func(t *testing.T) {
		urls := c.Resolve(string(CategoryWorld))
		urls[0] = "changed"
		assert.Equal(t, "https://www.yna.co.kr/rss/world.xml", c.Resolve(string(CategoryWorld))[0])
	})
}

func TestCatalog_Categories(t *testing.T) {
	cats := DefaultCatalog().Categories()
	assert.Len(t, cats, 8)
	assert.Contains(t, cats, CategoryAll)
	assert.True(t, sort.SliceIsSorted(cats, func(i, j int) bool { return cats[i] < cats[j] }))
}

func TestNewCatalog(t *testing.T) {
	_, err := NewCatalog(map[Category][]string{CategorySports: {"https://example.com/rss"}})
	assert.ErrorIs(t, err, ErrNoFallback)

	_, err = NewCatalog(map[Category][]string{CategoryAll: {""}})
	assert.ErrorIs(t, err, ErrNoFallback)

	src := map[Category][]string{CategoryAll: {"https://example.com/rss"}}
	c, err := NewCatalog(src)
	require.NoError(t, err)
	src[CategoryAll][0] = "changed"
	assert.Equal(t, []string{"https://example.com/rss"}, c.Resolve("anything"))
}

func TestReadCatalog(t *testing.T) {
	const doc = `
categories:
  전체:
    - https://example.com/all.xml
    - https://example.com/all2.xml
  스포츠:
    - https://example.com/sports.xml
`
	c, err := ReadCatalog(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/sports.xml"}, c.Resolve("스포츠"))
	assert.Equal(t, []string{"https://example.com/all.xml", "https://example.com/all2.xml"}, c.Resolve("세계"))

	_, err = ReadCatalog(strings.NewReader("categories:\n  스포츠: [https://example.com/sports.xml]\n"))
	assert.ErrorIs(t, err, ErrNoFallback)

	_, err = ReadCatalog(strings.NewReader("categories: ["))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yml")
	err := os.WriteFile(path, []byte("categories:\n  전체: [https://example.com/all.xml]\n"), 0o600)
	require.NoError(t, err)

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/all.xml"}, c.Resolve(""))

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestCategory_Known(t *testing.T) {
	for _, c := range DefaultCatalog().Categories() {
		assert.True(t, c.Known(), c)
	}
	assert.False(t, Category("").Known())
	assert.False(t, Category("sports").Known())
}
