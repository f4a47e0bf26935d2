// Package pipeline wires the aggregation stages together:
// fetch -> merge -> retention -> enrichment -> persist.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"betaradar/internal/classify"
	"betaradar/internal/fetch"
	"betaradar/internal/metrics"
	"betaradar/internal/model"
	"betaradar/internal/scrape"
	"betaradar/internal/store"
	"betaradar/internal/summary"
)

// Translator is the enrichment hook boundary; see internal/translate
// for the real collaborator client.
type Translator interface {
	TranslateBatch(ctx context.Context, items []model.NewsItem, target string) []model.NewsItem
}

// Options configures a pipeline instance.
type Options struct {
	Repo          store.Repository
	Fetchers      []fetch.Fetcher
	Translator    Translator
	Scraper       *scrape.Client
	TargetLang    string
	BackfillLimit int
}

// Pipeline produces aggregate snapshots. Run is serialized: the
// scheduler and the on-demand refresh endpoint share one instance,
// and overlapping runs would race on the snapshot write.
type Pipeline struct {
	mu   sync.Mutex
	opts Options
}

// New creates a pipeline.
func New(opts Options) *Pipeline {
	if opts.BackfillLimit <= 0 {
		opts.BackfillLimit = 10
	}
	return &Pipeline{opts: opts}
}

// Load returns the cached snapshot without refreshing.
func (p *Pipeline) Load() (model.AggregateResult, error) {
	return p.opts.Repo.Load()
}

// Run executes one full refresh and persists the new snapshot.
// Failing sources and failing enrichments degrade to fewer or less
// enriched items; only a failed snapshot write aborts the run.
func (p *Pipeline) Run(ctx context.Context) (model.AggregateResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()

	stored, err := p.opts.Repo.Load()
	if err != nil {
		log.Printf("Could not load history, starting from empty: %v", err)
		stored = model.AggregateResult{}
	}
	history := store.HistoryByID(stored.Items)

	candidates := p.fetchCandidates(ctx)

	merged := store.Merge(history, candidates)
	added := len(merged) - len(history)
	metrics.Global.AddDuplicatesSkipped(len(candidates) - added)
	log.Printf("Merged %d candidates into history of %d: %d new", len(candidates), len(history), added)

	news := make([]model.NewsItem, 0, len(merged))
	for _, item := range merged {
		news = append(news, item)
	}

	kept := classify.AndroidRetention.Apply(news)
	kept = classify.IOSRetention.Apply(kept)
	if dropped := len(news) - len(kept); dropped > 0 {
		metrics.Global.AddDropped(dropped)
		log.Printf("Retention filter dropped %d items without version context", dropped)
	}

	p.backfill(ctx, kept)

	if p.opts.Translator != nil {
		kept = p.opts.Translator.TranslateBatch(ctx, kept, p.opts.TargetLang)
	}

	store.SortByDate(kept)

	now := time.Now()
	result := model.AggregateResult{
		LastUpdated: now.Format("2006-01-02 15:04:05"),
		Items:       append(kept, model.LeakerItems(now)...),
	}
	result.Recount()

	if err := p.opts.Repo.Save(result); err != nil {
		metrics.Global.SetError(err.Error())
		return model.AggregateResult{}, fmt.Errorf("failed to persist snapshot: %w", err)
	}

	metrics.Global.RecordRun(time.Since(start))
	log.Printf("Run finished: %d news (%d android, %d ios), %d leakers in %v",
		result.NewsCount, result.AndroidCount, result.IOSCount, result.LeakerCount, time.Since(start).Round(time.Millisecond))
	return result, nil
}

// fetchCandidates runs every source sequentially. A failed source
// contributes zero items and never aborts the run.
func (p *Pipeline) fetchCandidates(ctx context.Context) []model.NewsItem {
	var candidates []model.NewsItem
	for _, res := range fetch.All(ctx, p.opts.Fetchers) {
		if res.Err != nil {
			log.Printf("Error fetching %s: %v", res.Source, res.Err)
			metrics.Global.IncrementSourceFailures()
			continue
		}
		log.Printf("Loaded %d candidates from %s", len(res.Items), res.Source)
		candidates = append(candidates, res.Items...)
	}
	metrics.Global.AddFetched(len(candidates))
	return candidates
}

// backfill fetches article pages for items still missing a preview
// image, and fills empty summaries from the same page while it is
// there. One page fetch per item per run, capped, never retried.
func (p *Pipeline) backfill(ctx context.Context, items []model.NewsItem) {
	if p.opts.Scraper == nil {
		return
	}

	fetched := 0
	for i := range items {
		if items[i].Type != model.TypeNews {
			continue
		}
		if items[i].Image != "" && items[i].Summary != "" {
			continue
		}
		if fetched >= p.opts.BackfillLimit {
			break
		}
		fetched++

		page, err := p.opts.Scraper.Article(ctx, items[i].URL)
		if err != nil {
			log.Printf("Backfill fetch failed for %s: %v", items[i].URL, err)
			continue
		}

		if items[i].Image == "" && page.Image != "" {
			items[i].Image = page.Image
			metrics.Global.IncrementImagesBackfilled()
		}
		if items[i].Summary == "" && page.Lead != "" {
			items[i].Summary = summary.KeySentences(page.Lead, 2)
		}
	}
}
