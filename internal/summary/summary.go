// Package summary produces short extractive summaries without any
// external service: score the sentences, keep the best ones in their
// original order.
package summary

import (
	"regexp"
	"sort"
	"strings"
)

var sentenceSplit = regexp.MustCompile(`[.!?]\s*`)

// Scoring keywords: release-cycle vocabulary ranks a sentence up.
var keywords = []string{
	"android", "ios", "google", "apple", "release", "update", "feature",
	"beta", "version", "developer", "preview", "launch", "announce",
	"new", "support", "improve", "fix", "bug", "change", "add",
}

type scoredSentence struct {
	score int
	index int
	text  string
}

// KeySentences picks the n most informative sentences, preserving
// their original order. Early sentences, keyword hits and medium
// length all score up.
func KeySentences(text string, n int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var sentences []string
	for _, s := range sentenceSplit.Split(text, -1) {
		s = strings.TrimSpace(s)
		if len(s) > 20 {
			sentences = append(sentences, s)
		}
	}

	if len(sentences) == 0 {
		if len(text) > 200 {
			return text[:200] + "..."
		}
		return text
	}
	if len(sentences) <= n {
		return strings.Join(sentences, " ")
	}

	scored := make([]scoredSentence, 0, len(sentences))
	for idx, sentence := range sentences {
		score := 0

		switch idx {
		case 0:
			score += 10
		case 1:
			score += 5
		case 2:
			score += 3
		default:
			if idx < 5 {
				score += 5 - idx
			}
		}

		lower := strings.ToLower(sentence)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score += 2
			}
		}

		words := len(strings.Fields(sentence))
		if words >= 10 && words <= 25 {
			score += 3
		} else if words >= 8 && words <= 30 {
			score++
		}

		scored = append(scored, scoredSentence{score: score, index: idx, text: sentence})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	selected := scored[:n]
	sort.Slice(selected, func(i, j int) bool { return selected[i].index < selected[j].index })

	parts := make([]string, 0, n)
	for _, s := range selected {
		parts = append(parts, s.text)
	}
	return strings.Join(parts, " ")
}

// OneLine returns a single-sentence summary suited for card views,
// falling back to the (possibly shortened) title.
func OneLine(title, text string) string {
	if text != "" {
		first := KeySentences(text, 1)
		if first != "" && len(first) < 150 {
			return first
		}
	}
	if len(title) > 100 {
		return title[:100] + "..."
	}
	return title
}
