package classify

import (
	"betaradar/internal/model"
)

// RetentionPolicy is the strict post-merge filter for one platform
// track. Version keywords keep an item; hardware keywords alone do
// not (device coverage without version context is off-topic here).
type RetentionPolicy struct {
	Platform string
	Version  []string
	Hardware []string
}

// AndroidRetention keeps Android items tied to a release cycle.
var AndroidRetention = RetentionPolicy{
	Platform: model.PlatformAndroid,
	Version: []string{
		"android 17", "android17", "android 16", "beta",
		"developer preview", "qpr", "baklava",
	},
	Hardware: []string{"pixel 10", "pixel 11"},
}

// IOSRetention keeps iOS items tied to a release cycle.
var IOSRetention = RetentionPolicy{
	Platform: model.PlatformIOS,
	Version: []string{
		"ios 26", "ios26", "ios 18", "beta",
		"developer preview", "release candidate",
	},
	Hardware: []string{"iphone 17", "iphone 18"},
}

// Keep decides retention for one item's combined text. Pure function
// of keyword membership: version keyword present -> keep, hardware
// only -> drop, neither -> drop.
func (p RetentionPolicy) Keep(text string) bool {
	return containsAny(text, p.Version)
}

// Apply filters the merged item set. Only news items of this policy's
// platform are examined; leaker items and the other track pass
// through untouched.
func (p RetentionPolicy) Apply(items []model.NewsItem) []model.NewsItem {
	kept := make([]model.NewsItem, 0, len(items))
	for _, item := range items {
		if item.Type != model.TypeNews || item.Platform != p.Platform {
			kept = append(kept, item)
			continue
		}
		if p.Keep(item.Title + " " + item.Summary) {
			kept = append(kept, item)
		}
	}
	return kept
}
