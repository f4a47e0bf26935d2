package model

import (
	"crypto/sha256"
	"encoding/hex"
)

// Item types
const (
	TypeNews   = "news"
	TypeLeaker = "leaker"
)

// Platform tracks
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// NewsItem is one article or leaker profile in the aggregate feed.
// ID is the merge key: it never changes for a given URL, and once an
// item is stored later fetches of the same URL cannot replace it.
type NewsItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	URL        string `json:"url"`
	Source     string `json:"source"`
	SourceIcon string `json:"source_icon"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	Platform   string `json:"platform,omitempty"`
	Image      string `json:"image,omitempty"`

	TitleTranslated   string `json:"title_translated,omitempty"`
	SummaryTranslated string `json:"summary_translated,omitempty"`
}

// AggregateResult is the persisted snapshot: sorted news items first,
// leaker profiles appended after. All counts are derived from Items.
type AggregateResult struct {
	LastUpdated  string     `json:"last_updated"`
	TotalCount   int        `json:"total_count"`
	NewsCount    int        `json:"news_count"`
	AndroidCount int        `json:"android_count"`
	IOSCount     int        `json:"ios_count"`
	LeakerCount  int        `json:"leaker_count"`
	Items        []NewsItem `json:"items"`
}

// Recount recomputes the derived counters from Items.
func (r *AggregateResult) Recount() {
	r.TotalCount = len(r.Items)
	r.NewsCount = 0
	r.AndroidCount = 0
	r.IOSCount = 0
	r.LeakerCount = 0

	for _, item := range r.Items {
		switch item.Type {
		case TypeNews:
			r.NewsCount++
			switch item.Platform {
			case PlatformAndroid:
				r.AndroidCount++
			case PlatformIOS:
				r.IOSCount++
			}
		case TypeLeaker:
			r.LeakerCount++
		}
	}
}

// ItemID generates a stable identity for a news URL.
// Same scheme as the sent-news hash: sha256, first 16 hex characters.
func ItemID(url string) string {
	h := sha256.New()
	h.Write([]byte(url))
	return hex.EncodeToString(h.Sum(nil))[:16]
}
