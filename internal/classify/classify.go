// Package classify assigns candidate items to a platform track and
// applies the keyword-based retention policy.
package classify

import (
	"regexp"
	"strings"
)

// Android-side keywords: version markers, beta cycle terms, hardware
// and event terms. Stage-1 inclusion casts a wide net, the retention
// policy prunes afterwards.
var AndroidKeywords = []string{
	"android 17", "android17", "android 16", "android 2025", "android 2026",
	"pixel 10", "pixel 11", "android baklava", "android dessert",
	"google i/o 2025", "google i/o 2026", "android beta", "android preview",
	"qpr1", "qpr2", "qpr3",
}

// iOS-side keywords, same structure.
var IOSKeywords = []string{
	"ios 26", "ios26", "ios 18", "ios 2025", "ios 2026",
	"iphone 17", "iphone 18", "liquid glass", "apple intelligence",
	"wwdc 2025", "wwdc 2026", "ios beta", "ios preview", "developer beta",
}

// containsAny checks keyword membership. Phrases match as substrings,
// short tokens (<=3 runes) require word boundaries so "ios" does not
// match inside unrelated words.
func containsAny(text string, keywords []string) bool {
	text = strings.ToLower(text)

	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}

		if strings.Contains(k, " ") {
			if strings.Contains(text, k) {
				return true
			}
			continue
		}

		if len(k) <= 3 {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`)
			if re.MatchString(text) {
				return true
			}
			continue
		}

		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// MatchesAndroid reports whether text hits the Android keyword set.
func MatchesAndroid(text string) bool {
	return containsAny(text, AndroidKeywords)
}

// MatchesIOS reports whether text hits the iOS keyword set.
func MatchesIOS(text string) bool {
	return containsAny(text, IOSKeywords)
}

// MatchesAny reports whether text belongs to either track.
func MatchesAny(text string) bool {
	return MatchesAndroid(text) || MatchesIOS(text)
}

// MatchesPlatform tests inclusion against one platform's keyword set,
// or against both sets when the platform is not fixed.
func MatchesPlatform(platform, text string) bool {
	switch platform {
	case "android":
		return MatchesAndroid(text)
	case "ios":
		return MatchesIOS(text)
	default:
		return MatchesAny(text)
	}
}

// Platform classifies combined title+summary text into exactly one
// track. Android is the default track: a text matching both sets, or
// only the Android set, classifies as android.
func Platform(text string) string {
	if MatchesAndroid(text) {
		return "android"
	}
	if MatchesIOS(text) {
		return "ios"
	}
	return "android"
}
