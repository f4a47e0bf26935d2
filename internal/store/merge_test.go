package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"betaradar/internal/model"
)

func newsItem(id, title, date string) model.NewsItem {
	return model.NewsItem{
		ID:       id,
		Title:    title,
		Date:     date,
		Type:     model.TypeNews,
		Platform: model.PlatformAndroid,
	}
}

func TestMergeAddsNewIDs(t *testing.T) {
	history := map[string]model.NewsItem{
		"a": newsItem("a", "stored", "2026-01-01"),
	}
	merged := Merge(history, []model.NewsItem{newsItem("b", "fresh", "2026-01-02")})

	require.Len(t, merged, 2)
	require.Equal(t, "fresh", merged["b"].Title)
}

func TestMergeFirstWriteWins(t *testing.T) {
	history := map[string]model.NewsItem{
		"a": newsItem("a", "original title", "2026-01-01"),
	}
	merged := Merge(history, []model.NewsItem{newsItem("a", "edited upstream", "2026-01-05")})

	require.Equal(t, "original title", merged["a"].Title)
	require.Equal(t, "2026-01-01", merged["a"].Date)
}

func TestMergeIdempotent(t *testing.T) {
	history := map[string]model.NewsItem{}
	candidates := []model.NewsItem{
		newsItem("a", "one", "2026-01-01"),
		newsItem("b", "two", "2026-01-02"),
	}

	once := Merge(history, candidates)
	twice := Merge(once, candidates)

	require.Equal(t, once, twice)
}

func TestMergeMonotonic(t *testing.T) {
	history := map[string]model.NewsItem{
		"a": newsItem("a", "one", "2026-01-01"),
		"b": newsItem("b", "two", "2026-01-02"),
	}
	merged := Merge(history, []model.NewsItem{newsItem("c", "three", "2026-01-03")})

	require.GreaterOrEqual(t, len(merged), len(history))
	for id := range history {
		require.Contains(t, merged, id)
	}
}

func TestMergeDoesNotMutateHistory(t *testing.T) {
	history := map[string]model.NewsItem{
		"a": newsItem("a", "one", "2026-01-01"),
	}
	Merge(history, []model.NewsItem{newsItem("b", "two", "2026-01-02")})

	require.Len(t, history, 1)
}

func TestHistoryByIDExcludesLeakers(t *testing.T) {
	items := []model.NewsItem{
		newsItem("a", "one", "2026-01-01"),
		{ID: "leaker_0", Type: model.TypeLeaker, Title: "OnLeaks (@OnLeaks)"},
	}
	history := HistoryByID(items)

	require.Len(t, history, 1)
	require.Contains(t, history, "a")
}

func TestSortByDateNewestFirst(t *testing.T) {
	items := []model.NewsItem{
		newsItem("a", "old", "2026-01-01"),
		newsItem("b", "newest", "2026-02-03 14:00"),
		newsItem("c", "mid", "2026-01-15"),
	}
	SortByDate(items)

	require.Equal(t, "b", items[0].ID)
	require.Equal(t, "c", items[1].ID)
	require.Equal(t, "a", items[2].ID)
}

func TestItemIDStable(t *testing.T) {
	a := model.ItemID("https://example.com/android-17-beta")
	b := model.ItemID("https://example.com/android-17-beta")
	c := model.ItemID("https://example.com/other")

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Len(t, a, 16)
}
