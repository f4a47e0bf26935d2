package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"betaradar/internal/classify"
	"betaradar/internal/dates"
	"betaradar/internal/model"
)

// SearchSource describes one site-internal search page.
type SearchSource struct {
	Name     string `yaml:"name"`
	Icon     string `yaml:"icon"`
	URL      string `yaml:"url"`
	Platform string `yaml:"platform"`

	// Selectors are tried in order; the first one that matches any
	// blocks wins. Search page markup shifts often, so keep a few
	// alternatives.
	Selectors []string `yaml:"selectors"`
}

// SearchFetcher scrapes a site's search results page for articles.
type SearchFetcher struct {
	source SearchSource
	client *http.Client
}

// NewSearchFetcher builds a fetcher for one search source.
func NewSearchFetcher(source SearchSource, timeout time.Duration) *SearchFetcher {
	return &SearchFetcher{
		source: source,
		client: &http.Client{Timeout: timeout},
	}
}

func (f *SearchFetcher) Name() string { return f.source.Name }

// Fetch downloads the search page and extracts article blocks.
func (f *SearchFetcher) Fetch(ctx context.Context) ([]model.NewsItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.source.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML: %v", err)
	}

	var blocks *goquery.Selection
	for _, selector := range f.source.Selectors {
		s := doc.Find(selector)
		if s.Length() > 0 {
			blocks = s
			break
		}
	}
	if blocks == nil {
		return nil, fmt.Errorf("no article blocks matched any selector")
	}

	base, _ := url.Parse(f.source.URL)

	var items []model.NewsItem
	blocks.Each(func(i int, block *goquery.Selection) {
		title, link := extractTitleLink(block, base)
		if title == "" || link == "" {
			return
		}
		if !classify.MatchesPlatform(f.source.Platform, title) {
			return
		}

		platform := f.source.Platform
		if platform == "" {
			platform = classify.Platform(title)
		}

		rawDate, _ := block.Find("time").First().Attr("datetime")

		items = append(items, model.NewsItem{
			ID:         model.ItemID(link),
			Title:      title,
			URL:        link,
			Source:     f.source.Name,
			SourceIcon: f.source.Icon,
			Date:       dates.Normalize(rawDate, link),
			Type:       model.TypeNews,
			Platform:   platform,
			Image:      extractBlockImage(block),
		})
	})

	return items, nil
}

// extractTitleLink finds the article headline and target URL inside
// one result block, resolving relative links against the search page.
func extractTitleLink(block *goquery.Selection, base *url.URL) (string, string) {
	selectors := []string{"h1 a", "h2 a", "h3 a", "a"}

	for _, selector := range selectors {
		a := block.Find(selector).First()
		if a.Length() == 0 {
			continue
		}
		title := strings.TrimSpace(a.Text())
		href, ok := a.Attr("href")
		if title == "" || !ok || href == "" {
			continue
		}
		if base != nil {
			if ref, err := url.Parse(href); err == nil {
				href = base.ResolveReference(ref).String()
			}
		}
		return title, href
	}
	return "", ""
}

// extractBlockImage tries the plain src first, then the lazy-load
// attributes sites use for below-the-fold thumbnails.
func extractBlockImage(block *goquery.Selection) string {
	img := block.Find("img").First()
	if img.Length() == 0 {
		return ""
	}
	for _, attr := range []string{"src", "data-src", "data-lazy-src"} {
		if v, ok := img.Attr(attr); ok && v != "" && !strings.HasPrefix(v, "data:") {
			return v
		}
	}
	return ""
}
