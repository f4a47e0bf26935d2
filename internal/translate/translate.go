// Package translate is the client for the external translation
// collaborator. Batch enrichment leaves the translated fields absent
// on failure so a later run or the on-demand endpoint can retry; only
// the on-demand path degrades to the untranslated input.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"betaradar/internal/cache"
	"betaradar/internal/metrics"
	"betaradar/internal/model"
)

const defaultEndpoint = "https://translate.googleapis.com/translate_a/single"

const maxTextLen = 4000

// Client translates text through the free Google Translate endpoint.
type Client struct {
	http     *http.Client
	baseURL  string
	cache    *cache.Cache
	cacheTTL time.Duration
}

// NewClient creates a translation client. Results are cached so the
// hourly pipeline and on-demand requests don't re-translate the same
// titles over and over.
func NewClient(timeout time.Duration, c *cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		http:     &http.Client{Timeout: timeout},
		baseURL:  defaultEndpoint,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// Translate translates text to the target language tag on demand. On
// any failure the original text comes back unchanged, so callers
// always get something to display.
func (c *Client) Translate(ctx context.Context, text, target string) string {
	result, err := c.translated(ctx, text, target)
	if err != nil {
		return text
	}
	return result
}

// TranslateBatch fills the translated fields of every item that still
// lacks them. Already translated items are left alone, so the hook is
// idempotent across runs. A failed call leaves the field absent: the
// merged item is persisted, and stamping the untranslated text into it
// would block every later retry.
func (c *Client) TranslateBatch(ctx context.Context, items []model.NewsItem, target string) []model.NewsItem {
	for i := range items {
		if items[i].Type != model.TypeNews {
			continue
		}
		if items[i].TitleTranslated == "" {
			if result, err := c.translated(ctx, items[i].Title, target); err == nil {
				items[i].TitleTranslated = result
			}
		}
		if items[i].SummaryTranslated == "" && items[i].Summary != "" {
			if result, err := c.translated(ctx, items[i].Summary, target); err == nil {
				items[i].SummaryTranslated = result
			}
		}
	}
	return items
}

// translated resolves a translation via the cache or the endpoint.
// It never falls back to the input; callers decide how to degrade.
func (c *Client) translated(ctx context.Context, text, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(cache.Key(text, target)); ok {
			return cached, nil
		}
	}

	query := text
	if len(query) > maxTextLen {
		query = query[:maxTextLen]
	}

	result, err := c.translateOnce(ctx, query, target)
	if err == nil && result == "" {
		err = errors.New("empty translation")
	}
	if err != nil {
		log.Printf("Translation to %s failed: %v", target, err)
		metrics.Global.IncrementTranslationsFail()
		return "", err
	}
	metrics.Global.IncrementTranslationsOK()

	if c.cache != nil {
		c.cache.Set(cache.Key(text, target), result, c.cacheTTL)
	}
	return result, nil
}

// translateOnce does one call against the endpoint.
func (c *Client) translateOnce(ctx context.Context, text, target string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto") // detect source language
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate API returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %v", err)
	}

	return parseResponse(body)
}

// parseResponse extracts the translated text from the endpoint's
// nested-array response format.
func parseResponse(body []byte) (string, error) {
	var response []interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response) == 0 {
		return "", errors.New("empty response from translate API")
	}

	segments, ok := response[0].([]interface{})
	if !ok {
		return "", errors.New("unexpected response format")
	}

	var result strings.Builder
	for _, segment := range segments {
		if parts, ok := segment.([]interface{}); ok && len(parts) > 0 {
			if translated, ok := parts[0].(string); ok {
				result.WriteString(translated)
			}
		}
	}
	return result.String(), nil
}
