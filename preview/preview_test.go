package preview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderboard/models"
)

// A blog post with real body text but no og:description, the case where
// the preview falls back to extracting the article itself.
const articlePageHTML = `<!DOCTYPE html>
<html>
<head>
<title>Three Days in Kyoto</title>
<meta property="og:title" content="Three Days in Kyoto" />
<meta property="og:type" content="article" />
</head>
<body>
<article>
<h1>Three Days in Kyoto</h1>
<p>Kyoto rewards slow mornings. Arrive at Fushimi Inari before seven and
you will have the lower gates almost to yourself, the vermilion tunnels
glowing in the early light while the tour buses are still on the highway
from Osaka. Budget two hours for the climb to the Yotsutsuji intersection
and back, and bring coins for the small shrines along the way.</p>
<p>Afternoons belong to the eastern hills. Walk the Philosopher's Path
from Ginkaku-ji down toward Nanzen-ji, stopping for matcha at one of the
canal-side tea houses. The aqueduct behind Nanzen-ji is quieter than the
main halls and free to wander.</p>
<p>For the last day, take the train out to Arashiyama. The bamboo grove
is crowded by mid-morning, so start at the monkey park across the river
and cross back over the Togetsukyo bridge once the light softens.</p>
</article>
</body>
</html>`

func TestDetectType(t *testing.T) {
	cases := []struct {
		name   string
		url    string
		ogType string
		want   models.InspoType
	}{
		{"tiktok", "https://www.tiktok.com/@user/video/123", "", models.InspoTypeVideo},
		{"youtube", "https://www.youtube.com/watch?v=abc", "", models.InspoTypeVideo},
		{"youtube short link", "https://youtu.be/abc", "", models.InspoTypeVideo},
		{"vimeo", "https://vimeo.com/123", "", models.InspoTypeVideo},
		{"instagram reel", "https://www.instagram.com/reel/abc/", "", models.InspoTypeVideo},
		{"unsplash", "https://unsplash.com/photos/abc", "", models.InspoTypeImage},
		{"pinterest", "https://www.pinterest.com/pin/123/", "", models.InspoTypeImage},
		{"raw jpg", "https://example.com/beach.JPG", "", models.InspoTypeImage},
		{"jpg with query", "https://example.com/beach.jpg?w=800", "", models.InspoTypeImage},
		{"og article", "https://example.com/post", "article", models.InspoTypeArticle},
		{"medium", "https://medium.com/@a/post", "", models.InspoTypeArticle},
		{"blog in url", "https://example.com/blog/tokyo-guide", "", models.InspoTypeArticle},
		{"tripadvisor", "https://www.tripadvisor.com/Attraction", "", models.InspoTypeArticle},
		{"og video prefix", "https://example.com/clip", "video.other", models.InspoTypeVideo},
		{"plain link", "https://example.com/", "", models.InspoTypeLink},
		{"plain link with og website", "https://example.com/", "website", models.InspoTypeLink},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectType(tc.url, tc.ogType))
		})
	}
}

func TestParseOpenGraph(t *testing.T) {
	htmlStr := `<!DOCTYPE html>
<html>
<head>
<title>Fallback Title</title>
<meta property="og:title" content="Tokyo Travel Guide" />
<meta property="og:description" content="Two weeks in Japan" />
<meta property="og:image" content="https://cdn.example.com/tokyo.jpg" />
<meta property="og:site_name" content="Example Travel" />
<meta property="og:type" content="article" />
<link rel="icon" href="/static/favicon.png" />
</head>
<body><p>hello</p></body>
</html>`

	meta := parseOpenGraph(htmlStr)
	assert.Equal(t, "Tokyo Travel Guide", meta.title)
	assert.Equal(t, "Two weeks in Japan", meta.description)
	assert.Equal(t, "https://cdn.example.com/tokyo.jpg", meta.image)
	assert.Equal(t, "Example Travel", meta.siteName)
	assert.Equal(t, "article", meta.ogType)
	assert.Equal(t, "/static/favicon.png", meta.favicon)
}

func TestParseOpenGraphFallsBackToTitleTag(t *testing.T) {
	htmlStr := `<html><head><title>Just a Page</title></head><body></body></html>`

	meta := parseOpenGraph(htmlStr)
	assert.Equal(t, "Just a Page", meta.title)
	assert.Equal(t, "/favicon.ico", meta.favicon)
	assert.Empty(t, meta.image)
}

func TestParseOpenGraphUsesNameAttribute(t *testing.T) {
	htmlStr := `<html><head><meta name="description" content="plain meta description"></head></html>`

	meta := parseOpenGraph(htmlStr)
	assert.Equal(t, "plain meta description", meta.description)
}

func TestAbsoluteURL(t *testing.T) {
	assert.Equal(t, "https://example.com/static/favicon.png",
		absoluteURL("https://example.com/blog/post", "/static/favicon.png"))
	assert.Equal(t, "https://cdn.example.com/img.jpg",
		absoluteURL("https://example.com/", "https://cdn.example.com/img.jpg"))
	assert.Empty(t, absoluteURL("https://example.com/", ""))
}

func TestCleanTikTokTitle(t *testing.T) {
	assert.Equal(t, "Best ramen in Shibuya",
		cleanTikTokTitle("Best ramen in Shibuya #tokyo #foodie  #travel"))
	assert.Equal(t, "", cleanTikTokTitle("#only #tags"))
}

func TestResolveExtractsArticleBodyWhenDescriptionMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(articlePageHTML))
	}))
	defer srv.Close()

	r := NewResolver(false)
	p, err := r.Resolve(context.Background(), srv.URL+"/blog/kyoto")
	require.NoError(t, err)

	assert.Equal(t, models.InspoTypeArticle, p.Type)
	assert.Equal(t, "Three Days in Kyoto", p.Title)
	assert.NotEmpty(t, p.Description)
	assert.Contains(t, p.Description, "Kyoto")
	assert.LessOrEqual(t, len(p.Description), descriptionMaxLen+len("…"))
}

func TestEnrichArticleKeepsExistingDescription(t *testing.T) {
	p := &Preview{
		URL:         "https://example.com/blog/kyoto",
		Description: "Two weeks in Japan",
		Type:        models.InspoTypeArticle,
	}
	enrichArticle(p, articlePageHTML)
	assert.Equal(t, "Two weeks in Japan", p.Description)
}

func TestEnrichArticleToleratesEmptyPage(t *testing.T) {
	p := &Preview{URL: "https://example.com/blog/x", Type: models.InspoTypeArticle}
	enrichArticle(p, "<html><body></body></html>")
	assert.Empty(t, p.Description)
	assert.Empty(t, p.ImageURL)
}

func TestExtractArticleReturnsBodyText(t *testing.T) {
	a := ExtractArticle(articlePageHTML)
	require.NotNil(t, a)
	assert.Contains(t, a.Text, "Fushimi Inari")
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "short", Summarize("  short  ", 100))

	long := "The quick brown fox jumps over the lazy dog and keeps on running"
	got := Summarize(long, 30)
	assert.LessOrEqual(t, len(got), 31+len("…"))
	assert.Contains(t, got, "…")
}
