package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"betaradar/internal/fetch"
	"betaradar/internal/model"
	"betaradar/internal/pipeline"
	"betaradar/internal/scrape"
	"betaradar/internal/store"
)

type stubTranslator struct{}

func (stubTranslator) TranslateBatch(ctx context.Context, items []model.NewsItem, target string) []model.NewsItem {
	for i := range items {
		if items[i].Type == model.TypeNews && items[i].TitleTranslated == "" {
			items[i].TitleTranslated = "译: " + items[i].Title
		}
	}
	return items
}

type stubFetcher struct {
	name  string
	items []model.NewsItem
	err   error
}

func (f stubFetcher) Name() string { return f.name }
func (f stubFetcher) Fetch(ctx context.Context) ([]model.NewsItem, error) {
	return f.items, f.err
}

type failingRepo struct{}

func (failingRepo) Load() (model.AggregateResult, error) { return model.AggregateResult{}, nil }
func (failingRepo) Save(model.AggregateResult) error     { return errors.New("disk full") }

const feedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Test Feed</title>
<item>
  <title>%s</title>
  <link>https://example.com/2026/01/28/android-17-beta-2/</link>
  <description>&lt;p&gt;Android 17 Beta 2 is out for testing.&lt;/p&gt;&lt;img src="https://img.example.com/beta2.jpg"/&gt;</description>
  <pubDate>2026-01-28T10:00:00+0000</pubDate>
</item>
<item>
  <title>Pixel 10 camera review</title>
  <link>https://example.com/2026/01/27/pixel-10-camera/</link>
  <description>A long look at the new sensors.</description>
  <pubDate>2026-01-27T12:00:00+0000</pubDate>
</item>
</channel>
</rss>`

func TestRunEndToEnd(t *testing.T) {
	var mu sync.Mutex
	title := "Android 17 Beta 2 released"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(w, feedTemplate, title)
	}))
	defer srv.Close()

	repo := store.NewFileStore(filepath.Join(t.TempDir(), "news.json"))
	p := pipeline.New(pipeline.Options{
		Repo:       repo,
		Fetchers:   []fetch.Fetcher{fetch.NewFeedFetcher(fetch.FeedSource{Name: "Test", URL: srv.URL}, 30, 5*time.Second)},
		Translator: stubTranslator{},
		TargetLang: "zh-CN",
	})

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	// The hardware-only Pixel entry is dropped by retention, one news
	// item survives, the leaker roster rides along.
	require.Equal(t, 1, result.NewsCount)
	require.Equal(t, 1, result.AndroidCount)
	require.Equal(t, 0, result.IOSCount)
	require.Equal(t, len(model.Leakers), result.LeakerCount)
	require.Equal(t, result.NewsCount+result.LeakerCount, result.TotalCount)

	item := result.Items[0]
	require.Equal(t, "Android 17 Beta 2 released", item.Title)
	require.Equal(t, model.PlatformAndroid, item.Platform)
	require.Equal(t, "2026-01-28 10:00", item.Date)
	require.NotEmpty(t, item.Image)
	require.NotEmpty(t, item.TitleTranslated)

	// Upstream edits the article; the stored item must not change.
	mu.Lock()
	title = "Android 17 Beta 2 released [updated]"
	mu.Unlock()

	second, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, second.NewsCount)
	require.Equal(t, "Android 17 Beta 2 released", second.Items[0].Title)
	require.Equal(t, item.ID, second.Items[0].ID)
}

func TestRunSurvivesFailingSource(t *testing.T) {
	repo := store.NewFileStore(filepath.Join(t.TempDir(), "news.json"))
	p := pipeline.New(pipeline.Options{
		Repo: repo,
		Fetchers: []fetch.Fetcher{
			stubFetcher{name: "dead", err: errors.New("connection refused")},
			stubFetcher{name: "alive", items: []model.NewsItem{{
				ID:       model.ItemID("https://example.com/a"),
				Title:    "Android 17 Beta 2 released",
				URL:      "https://example.com/a",
				Date:     "2026-01-28",
				Type:     model.TypeNews,
				Platform: model.PlatformAndroid,
			}}},
		},
		Translator: stubTranslator{},
	})

	result, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, result.NewsCount)
}

func TestRunBackfillsMissingImage(t *testing.T) {
	page := `<html><head><meta property="og:image" content="https://img.example.com/og.jpg"></head>
<body><article>
<p>Google today announced that Android 17 Beta 2 is rolling out broadly.</p>
<p>The build focuses on stability fixes for the final release.</p>
</article></body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	repo := store.NewFileStore(filepath.Join(t.TempDir(), "news.json"))
	p := pipeline.New(pipeline.Options{
		Repo: repo,
		Fetchers: []fetch.Fetcher{stubFetcher{name: "stub", items: []model.NewsItem{{
			ID:       model.ItemID(srv.URL + "/article"),
			Title:    "Android 17 Beta 2 released",
			URL:      srv.URL + "/article",
			Date:     "2026-01-28",
			Type:     model.TypeNews,
			Platform: model.PlatformAndroid,
		}}}},
		Translator:    stubTranslator{},
		Scraper:       scrape.NewClient(5 * time.Second),
		BackfillLimit: 5,
	})

	result, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, "https://img.example.com/og.jpg", result.Items[0].Image)
	require.NotEmpty(t, result.Items[0].Summary)
}

func TestRunFailedSaveIsFatal(t *testing.T) {
	p := pipeline.New(pipeline.Options{
		Repo:       failingRepo{},
		Translator: stubTranslator{},
	})

	_, err := p.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "persist")
}

func TestLoadReturnsCachedSnapshotWithoutRefreshing(t *testing.T) {
	repo := store.NewFileStore(filepath.Join(t.TempDir(), "news.json"))
	p := pipeline.New(pipeline.Options{
		Repo:       repo,
		Fetchers:   []fetch.Fetcher{stubFetcher{name: "stub"}},
		Translator: stubTranslator{},
	})

	// Nothing persisted yet
	empty, err := p.Load()
	require.NoError(t, err)
	require.Zero(t, empty.TotalCount)

	_, err = p.Run(context.Background())
	require.NoError(t, err)

	loaded, err := p.Load()
	require.NoError(t, err)
	require.Equal(t, len(model.Leakers), loaded.LeakerCount)
}
