// Package fetch pulls candidate items from the upstream sources.
// Every source is independently replaceable and independently
// fallible: one broken feed or search page never takes the run down.
package fetch

import (
	"context"

	"betaradar/internal/model"
)

// Browser-like UA, some outlets reject default Go clients.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// Fetcher produces normalized candidate items from one source.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]model.NewsItem, error)
}

// Result pairs a source with its fetch outcome so the orchestrator
// can log failures without aborting.
type Result struct {
	Source string
	Items  []model.NewsItem
	Err    error
}

// All runs every fetcher sequentially and collects per-source results.
func All(ctx context.Context, fetchers []Fetcher) []Result {
	results := make([]Result, 0, len(fetchers))
	for _, f := range fetchers {
		items, err := f.Fetch(ctx)
		results = append(results, Result{Source: f.Name(), Items: items, Err: err})
	}
	return results
}
