// Package scrape fetches article pages for enrichment: preview
// images from Open Graph tags and lead paragraphs for items whose
// feed carried no usable summary.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

const maxLeadChars = 1200

// Page is what one article fetch yields for enrichment.
type Page struct {
	Image string // og:image / card image, may be empty
	Lead  string // leading paragraphs, may be empty
}

// Client fetches and parses article pages.
type Client struct {
	http *http.Client
}

// NewClient creates a scrape client with the given per-request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// Article fetches the page once and extracts everything the backfill
// pass needs from it.
func (c *Client) Article(ctx context.Context, url string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error loading page: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML: %v", err)
	}

	return &Page{
		Image: extractMetaImage(doc),
		Lead:  extractLead(doc),
	}, nil
}

// extractMetaImage returns the first Open Graph or card image meta tag.
func extractMetaImage(doc *goquery.Document) string {
	selectors := []string{
		`meta[property="og:image"]`,
		`meta[property="og:image:url"]`,
		`meta[name="twitter:image"]`,
		`meta[name="twitter:image:src"]`,
	}

	for _, selector := range selectors {
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			content = strings.TrimSpace(content)
			if content != "" {
				return content
			}
		}
	}
	return ""
}

// extractLead collects the first readable paragraphs of the article.
func extractLead(doc *goquery.Document) string {
	// Try most popular selectors
	selectors := []string{
		"article p",
		".article-body p",
		".post-content p",
		".entry-content p",
		".content p",
		"main p",
		"p",
	}

	var paragraphs []string
	for _, selector := range selectors {
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) > 20 {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) >= 2 {
			break
		}
	}

	text := strings.Join(paragraphs, " ")
	if len(text) > maxLeadChars {
		text = text[:maxLeadChars]
	}
	return text
}
