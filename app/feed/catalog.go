// Package feed resolves news categories to feed lists and fetches
// summaries from the feeds.
package feed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Category is a news topic label, as selected by the user.
type Category string

// Known categories.
const (
	CategoryAll           Category = "전체"
	CategoryPolitics      Category = "정치"
	CategoryEntertainment Category = "연예"
	CategoryEconomy       Category = "경제"
	CategorySports        Category = "스포츠"
	CategoryScience       Category = "과학기술"
	CategoryWorld         Category = "세계"
	CategoryHealth        Category = "건강"
)

var known = []Category{
	CategoryAll, CategoryPolitics, CategoryEntertainment, CategoryEconomy,
	CategorySports, CategoryScience, CategoryWorld, CategoryHealth,
}

// Known reports whether the category is one of the built-in ones.
func (c Category) Known() bool { return lo.Contains(known, c) }

// Fallback is the category used for unknown labels.
const Fallback = CategoryAll

// ErrNoFallback is returned when a catalog has no feeds for the fallback category.
var ErrNoFallback = errors.New("no feeds for fallback category")

// Catalog maps categories to ordered feed URLs.
// It is built once at startup and never modified.
type Catalog struct {
	feeds map[Category][]string
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() Catalog {
	return Catalog{feeds: map[Category][]string{
		CategoryAll: {
			"https://www.yna.co.kr/rss/all.xml",
			"https://news.kbs.co.kr/news/rss/rss.xml",
			"https://www.hani.co.kr/rss/",
			"https://rss.joins.com/joins_news_list.xml",
			"https://www.donga.com/news/rss/headline.xml",
			"https://www.chosun.com/arc/outboundfeeds/rss/?outputType=xml",
			"https://rss.hankyung.com/feed/economy.xml",
			"https://www.mk.co.kr/rss/40300001/",
			"https://www.sedaily.com/rss/Main.xml",
			"https://www.etnews.com/section02.xml",
		},
		CategoryPolitics: {
			"https://www.yna.co.kr/rss/politics.xml",
			"https://www.hankyung.com/feed/politics",
		},
		CategoryEntertainment: {
			"https://www.yna.co.kr/rss/entertainment.xml",
			"https://www.hankyung.com/feed/entertainment",
		},
		CategoryEconomy: {
			"https://www.yna.co.kr/rss/economy.xml",
			"https://www.hankyung.com/feed/economy",
		},
		CategorySports: {
			"https://www.yna.co.kr/rss/sports.xml",
			"https://www.hankyung.com/feed/sports",
		},
		CategoryScience: {
			"https://www.yna.co.kr/rss/science.xml",
			"https://www.etnews.com/section02.xml",
		},
		CategoryWorld: {
			"https://www.yna.co.kr/rss/world.xml",
			"https://www.hankyung.com/feed/world",
		},
		CategoryHealth: {
			"https://www.yna.co.kr/rss/health.xml",
			"https://www.hankyung.com/feed/health",
		},
	}}
}

// NewCatalog makes a catalog from the given table.
// The table is copied, so the caller may reuse it.
func NewCatalog(feeds map[Category][]string) (Catalog, error) {
	c := Catalog{feeds: make(map[Category][]string, len(feeds))}
	for cat, urls := range feeds {
		c.feeds[cat] = lo.Filter(urls, func(u string, _ int) bool { return u != "" })
	}

	if len(c.feeds[Fallback]) == 0 {
		return Catalog{}, ErrNoFallback
	}

	return c, nil
}

// catalogFile is the YAML layout of a catalog file:
//
//	categories:
//	  전체:
//	    - https://...
type catalogFile struct {
	Categories map[Category][]string `yaml:"categories"`
}

// LoadCatalog reads a catalog from a YAML file.
func LoadCatalog(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	return ReadCatalog(f)
}

// ReadCatalog decodes a YAML catalog.
func ReadCatalog(rd io.Reader) (Catalog, error) {
	var cf catalogFile
	if err := yaml.NewDecoder(rd).Decode(&cf); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	c, err := NewCatalog(cf.Categories)
	if err != nil {
		return Catalog{}, fmt.Errorf("make catalog: %w", err)
	}

	return c, nil
}

// Resolve returns feeds for the given category label. Any label that
// is not in the catalog, including the empty one, resolves to the
// fallback category.
func (c Catalog) Resolve(category string) []string {
	urls, ok := c.feeds[Category(category)]
	if !ok {
		urls = c.feeds[Fallback]
	}
	return append([]string(nil), urls...)
}

// Categories returns the sorted list of categories in the catalog.
func (c Catalog) Categories() []Category {
	res := lo.Keys(c.feeds)
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}
