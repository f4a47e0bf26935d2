package fetch

import (
	"context"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"betaradar/internal/classify"
	"betaradar/internal/dates"
	"betaradar/internal/model"
)

const summaryMaxRunes = 300

// FeedSource describes one syndication feed.
type FeedSource struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
	URL  string `yaml:"url"`

	// Platform pins every item from this source to one track
	// (e.g. a Mac-only outlet). Empty means classify per item.
	Platform string `yaml:"platform"`

	// MatchCategories also tests the feed's category tags during
	// stage-1 inclusion. Some outlets tag betas without mentioning
	// them in the summary.
	MatchCategories bool `yaml:"match_categories"`
}

// FeedFetcher parses a syndication feed and keeps entries that pass
// the stage-1 keyword test.
type FeedFetcher struct {
	source   FeedSource
	parser   *gofeed.Parser
	maxItems int
	timeout  time.Duration
}

// NewFeedFetcher builds a fetcher for one feed source.
func NewFeedFetcher(source FeedSource, maxItems int, timeout time.Duration) *FeedFetcher {
	if maxItems <= 0 {
		maxItems = 30
	}
	return &FeedFetcher{
		source:   source,
		parser:   gofeed.NewParser(),
		maxItems: maxItems,
		timeout:  timeout,
	}
}

func (f *FeedFetcher) Name() string { return f.source.Name }

// Fetch downloads and parses the feed, returning normalized candidates.
func (f *FeedFetcher) Fetch(ctx context.Context) ([]model.NewsItem, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	f.parser.UserAgent = userAgent
	feed, err := f.parser.ParseURLWithContext(f.source.URL, ctx)
	if err != nil {
		return nil, err
	}

	entries := feed.Items
	if len(entries) > f.maxItems {
		entries = entries[:f.maxItems]
	}

	var items []model.NewsItem
	for _, entry := range entries {
		if entry.Link == "" || entry.Title == "" {
			continue
		}

		text := entry.Title + " " + entry.Description
		if f.source.MatchCategories && len(entry.Categories) > 0 {
			text += " " + strings.Join(entry.Categories, " ")
		}
		if !classify.MatchesPlatform(f.source.Platform, text) {
			continue
		}

		platform := f.source.Platform
		if platform == "" {
			platform = classify.Platform(text)
		}

		items = append(items, model.NewsItem{
			ID:         model.ItemID(entry.Link),
			Title:      entry.Title,
			Summary:    truncateRunes(stripHTML(entry.Description), summaryMaxRunes),
			URL:        entry.Link,
			Source:     f.source.Name,
			SourceIcon: f.source.Icon,
			Date:       dates.Normalize(entry.Published, entry.Link),
			Type:       model.TypeNews,
			Platform:   platform,
			Image:      extractImage(entry),
		})
	}

	return items, nil
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
