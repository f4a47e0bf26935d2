package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html><head>
<meta property="og:image" content="https://img.example.com/og.jpg">
<meta name="twitter:image" content="https://img.example.com/card.jpg">
</head><body>
<article>
<p>Google today announced that Android 17 Beta 2 is rolling out to supported Pixel devices.</p>
<p>The release focuses on stability ahead of the platform launch later this year.</p>
</article>
</body></html>`

func pageServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestArticleExtractsOGImageAndLead(t *testing.T) {
	srv := pageServer(t, http.StatusOK, articlePage)
	c := NewClient(5 * time.Second)

	page, err := c.Article(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, "https://img.example.com/og.jpg", page.Image)
	require.Contains(t, page.Lead, "Android 17 Beta 2 is rolling out")
	require.Contains(t, page.Lead, "stability ahead of the platform launch")
}

func TestArticleFallsBackToTwitterImage(t *testing.T) {
	body := `<html><head><meta name="twitter:image" content="https://img.example.com/card.jpg"></head><body></body></html>`
	srv := pageServer(t, http.StatusOK, body)
	c := NewClient(5 * time.Second)

	page, err := c.Article(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, "https://img.example.com/card.jpg", page.Image)
	require.Equal(t, "", page.Lead)
}

func TestArticleNon200(t *testing.T) {
	srv := pageServer(t, http.StatusNotFound, "gone")
	c := NewClient(5 * time.Second)

	_, err := c.Article(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestArticleNoImageMeta(t *testing.T) {
	srv := pageServer(t, http.StatusOK, `<html><body><p>just text, nothing else of note here</p></body></html>`)
	c := NewClient(5 * time.Second)

	page, err := c.Article(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, "", page.Image)
}
