package store

import (
	"sort"

	"betaradar/internal/model"
)

// Merge reconciles candidates against history with first-write-wins
// semantics: an id already present stays exactly as stored, even if
// the upstream source edited the article since. Merging the same
// candidates twice is therefore a no-op the second time.
func Merge(history map[string]model.NewsItem, candidates []model.NewsItem) map[string]model.NewsItem {
	merged := make(map[string]model.NewsItem, len(history)+len(candidates))
	for id, item := range history {
		merged[id] = item
	}
	for _, candidate := range candidates {
		if _, exists := merged[candidate.ID]; exists {
			continue
		}
		merged[candidate.ID] = candidate
	}
	return merged
}

// HistoryByID indexes the stored news items by id. Leaker items are
// excluded: they are regenerated every run, never carried forward.
func HistoryByID(items []model.NewsItem) map[string]model.NewsItem {
	history := make(map[string]model.NewsItem, len(items))
	for _, item := range items {
		if item.Type == model.TypeNews {
			history[item.ID] = item
		}
	}
	return history
}

// SortByDate orders news items newest first. Plain string comparison
// is enough because normalized dates share the YYYY-MM-DD prefix;
// items whose date kept a raw fallback string sort wherever they land.
func SortByDate(items []model.NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
}
