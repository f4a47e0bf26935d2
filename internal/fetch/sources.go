package fetch

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Sources is the YAML config structure
// feeds:
//   - name: ...
//     url: https://...
//
// searches:
//   - name: ...
//     url: https://...
type Sources struct {
	Feeds    []FeedSource   `yaml:"feeds"`
	Searches []SearchSource `yaml:"searches"`
}

// DefaultSources is the compiled-in source roster, used when no
// sources.yaml is present.
func DefaultSources() Sources {
	return Sources{
		Feeds: []FeedSource{
			{Name: "Android Authority", Icon: "AA", URL: "https://www.androidauthority.com/feed/"},
			{Name: "9to5Google", Icon: "9to5", URL: "https://9to5google.com/feed/"},
			{Name: "XDA Developers", Icon: "XDA", URL: "https://www.xda-developers.com/feed/", MatchCategories: true},
			{Name: "9to5Mac", Icon: "9to5", URL: "https://9to5mac.com/feed/", Platform: "ios"},
		},
		Searches: []SearchSource{
			{
				Name: "MacRumors", Icon: "MR", Platform: "ios",
				URL:       "https://www.macrumors.com/search/?q=iOS+26",
				Selectors: []string{"article", "div.search-result", "div.content-inner > div"},
			},
			{
				Name: "Android Police", Icon: "AP", Platform: "android",
				URL:       "https://www.androidpolice.com/search/?q=android+17",
				Selectors: []string{"div.display-card.article", "article", "div.listing-item"},
			},
		},
	}
}

// LoadSources reads the source roster from YAML. A missing file falls
// back to the compiled-in defaults.
func LoadSources(path string) (Sources, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No sources config at %s, using built-in sources", path)
			return DefaultSources(), nil
		}
		return Sources{}, err
	}
	defer f.Close()

	var src Sources
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&src); err != nil {
		return Sources{}, err
	}
	return src, nil
}

// Build creates the fetcher list for a source roster.
func Build(src Sources, maxFeedItems int, timeout time.Duration) []Fetcher {
	fetchers := make([]Fetcher, 0, len(src.Feeds)+len(src.Searches))
	for _, feed := range src.Feeds {
		fetchers = append(fetchers, NewFeedFetcher(feed, maxFeedItems, timeout))
	}
	for _, search := range src.Searches {
		fetchers = append(fetchers, NewSearchFetcher(search, timeout))
	}
	return fetchers
}
