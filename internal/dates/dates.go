// Package dates normalizes the date strings carried by feeds and
// search pages into a form that sorts lexicographically.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layouts tried in order when parsing a raw date string. Feeds mostly
// use RFC1123-style dates, search pages ISO timestamps.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// urlDatePattern matches YYYY/MM/DD or YYYY-MM-DD segments in article URLs.
var urlDatePattern = regexp.MustCompile(`(\d{4})[/-](\d{1,2})[/-](\d{1,2})`)

const maxRawDate = 50

// Normalize turns a raw date string into "YYYY-MM-DD" or
// "YYYY-MM-DD HH:MM". If raw cannot be parsed, the URL path is probed
// for a date pattern. The terminal fallback is the raw string itself,
// truncated, so downstream sorting degrades instead of failing.
func Normalize(raw, sourceURL string) string {
	raw = strings.TrimSpace(raw)

	if raw != "" {
		for _, layout := range layouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return Format(t)
			}
		}
	}

	if raw == "" {
		if d := fromURL(sourceURL); d != "" {
			return d
		}
		return ""
	}

	if len(raw) > maxRawDate {
		return raw[:maxRawDate]
	}
	return raw
}

// Format renders a parsed time. Midnight with zero seconds means the
// source carried no real time of day, so emit the date alone.
func Format(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04")
}

// fromURL extracts a date from an article URL path like
// /2026/01/28/some-article. Bogus matches (version numbers, ids) are
// rejected by range checks.
func fromURL(sourceURL string) string {
	m := urlDatePattern.FindStringSubmatch(sourceURL)
	if m == nil {
		return ""
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	if year < 2000 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
