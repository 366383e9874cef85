package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"wanderboard/models"
)

const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36"

const tiktokFavicon = "https://www.tiktok.com/favicon.ico"

// Preview is the metadata extracted from a shared URL.
type Preview struct {
	URL         string           `json:"url"`
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	ImageURL    string           `json:"image_url,omitempty"`
	SiteName    string           `json:"site_name,omitempty"`
	FaviconURL  string           `json:"favicon_url,omitempty"`
	Type        models.InspoType `json:"type"`
}

// Resolver fetches pages and turns them into Preview metadata.
type Resolver struct {
	httpClient *http.Client
	useBrowser bool
}

func NewResolver(useBrowser bool) *Resolver {
	return &Resolver{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		useBrowser: useBrowser,
	}
}

// Resolve follows redirects, then extracts OpenGraph metadata from the
// final destination. TikTok links go through oEmbed first because their
// OpenGraph tags carry generic placeholder data.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*Preview, error) {
	resolved := r.resolveRedirects(ctx, rawURL)

	if strings.Contains(resolved, "tiktok.com") {
		return r.resolveTikTok(ctx, resolved), nil
	}

	htmlStr, err := r.fetchHTML(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", resolved, err)
	}

	meta := parseOpenGraph(htmlStr)
	p := &Preview{
		URL:         resolved,
		Title:       meta.title,
		Description: meta.description,
		ImageURL:    absoluteURL(resolved, meta.image),
		SiteName:    meta.siteName,
		FaviconURL:  absoluteURL(resolved, meta.favicon),
		Type:        DetectType(resolved, meta.ogType),
	}
	if p.Type == models.InspoTypeArticle {
		enrichArticle(p, htmlStr)
	}
	return p, nil
}

const descriptionMaxLen = 280

// enrichArticle fills in description and image for article pages whose
// OpenGraph tags are missing them, using the extracted article body.
func enrichArticle(p *Preview, htmlStr string) {
	if p.Description != "" && p.ImageURL != "" {
		return
	}
	article := ExtractArticle(htmlStr)
	if article == nil {
		return
	}
	if p.Description == "" {
		p.Description = Summarize(article.Text, descriptionMaxLen)
	}
	if p.ImageURL == "" && article.TopImage != "" {
		p.ImageURL = absoluteURL(p.URL, article.TopImage)
	}
}

// resolveRedirects follows short links (e.g. tiktok.com/t/...) to their
// final destination. Errors fall back to the input URL.
func (r *Resolver) resolveRedirects(ctx context.Context, rawURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return rawURL
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return rawURL
	}
	defer resp.Body.Close()

	if resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL.String()
	}
	return rawURL
}

func (r *Resolver) fetchHTML(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return "", err
	}
	htmlStr := string(body)

	// Some sites only expose metadata after client-side rendering.
	if r.useBrowser && !hasOpenGraphTags(htmlStr) {
		rendered, rerr := RenderHTML(pageURL)
		if rerr == nil && rendered != "" {
			return rendered, nil
		}
	}
	return htmlStr, nil
}

type ogMeta struct {
	title       string
	description string
	image       string
	siteName    string
	favicon     string
	ogType      string
}

func hasOpenGraphTags(htmlStr string) bool {
	return strings.Contains(htmlStr, `property="og:`) || strings.Contains(htmlStr, `property='og:`)
}

func parseOpenGraph(htmlStr string) ogMeta {
	var meta ogMeta

	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return meta
	}

	var title string

	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "meta":
				prop, content := attr(n, "property"), attr(n, "content")
				if prop == "" {
					prop = attr(n, "name")
				}
				switch prop {
				case "og:title":
					meta.title = content
				case "og:description", "description":
					if meta.description == "" {
						meta.description = content
					}
				case "og:image":
					if meta.image == "" {
						meta.image = content
					}
				case "og:site_name":
					meta.siteName = content
				case "og:type":
					meta.ogType = content
				}
			case "link":
				rel := strings.ToLower(attr(n, "rel"))
				if rel == "icon" || rel == "shortcut icon" || rel == "apple-touch-icon" {
					if meta.favicon == "" {
						meta.favicon = attr(n, "href")
					}
				}
			case "title":
				if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(doc)

	if meta.title == "" {
		meta.title = title
	}
	if meta.favicon == "" {
		meta.favicon = "/favicon.ico"
	}
	return meta
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func absoluteURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

var imageExtRe = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp)(\?|$)`)

// DetectType classifies a URL by its host and OpenGraph type.
func DetectType(rawURL, ogType string) models.InspoType {
	lower := strings.ToLower(rawURL)

	switch {
	case strings.Contains(lower, "tiktok.com"),
		strings.Contains(lower, "youtube.com"),
		strings.Contains(lower, "youtu.be"),
		strings.Contains(lower, "vimeo.com"),
		strings.Contains(lower, "instagram.com/reel"):
		return models.InspoTypeVideo
	}

	switch {
	case strings.Contains(lower, "unsplash.com"),
		strings.Contains(lower, "pinterest.com"),
		strings.Contains(lower, "flickr.com"),
		imageExtRe.MatchString(lower):
		return models.InspoTypeImage
	}

	switch {
	case ogType == "article",
		strings.Contains(lower, "medium.com"),
		strings.Contains(lower, "blog"),
		strings.Contains(lower, "tripadvisor.com"),
		strings.Contains(lower, "lonelyplanet.com"):
		return models.InspoTypeArticle
	}

	if strings.HasPrefix(ogType, "video") {
		return models.InspoTypeVideo
	}
	return models.InspoTypeLink
}

type tiktokOEmbed struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
	AuthorName   string `json:"author_name"`
}

var hashtagRe = regexp.MustCompile(`#\S+`)
var multiSpaceRe = regexp.MustCompile(`\s{2,}`)

func cleanTikTokTitle(raw string) string {
	s := hashtagRe.ReplaceAllString(raw, "")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func (r *Resolver) fetchTikTokOEmbed(ctx context.Context, videoURL string) *tiktokOEmbed {
	oembedURL := "https://www.tiktok.com/oembed?url=" + url.QueryEscape(videoURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, oembedURL, nil)
	if err != nil {
		return nil
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}
	var out tiktokOEmbed
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil
	}
	return &out
}

func (r *Resolver) resolveTikTok(ctx context.Context, videoURL string) *Preview {
	oembed := r.fetchTikTokOEmbed(ctx, videoURL)

	// Photo slideshow links have no oEmbed entry under /photo/, the
	// matching /video/ URL usually works.
	if oembed == nil && strings.Contains(videoURL, "/photo/") {
		oembed = r.fetchTikTokOEmbed(ctx, strings.Replace(videoURL, "/photo/", "/video/", 1))
	}

	inspoType := models.InspoTypeVideo
	if strings.Contains(videoURL, "/photo/") {
		inspoType = models.InspoTypeImage
	}

	if oembed == nil {
		return &Preview{
			URL:        videoURL,
			SiteName:   "TikTok",
			FaviconURL: tiktokFavicon,
			Type:       inspoType,
		}
	}

	title := cleanTikTokTitle(oembed.Title)
	if title == "" && oembed.AuthorName != "" {
		title = "TikTok by " + oembed.AuthorName
	}

	return &Preview{
		URL:         videoURL,
		Title:       title,
		Description: oembed.Title,
		ImageURL:    oembed.ThumbnailURL,
		SiteName:    "TikTok",
		FaviconURL:  tiktokFavicon,
		Type:        inspoType,
	}
}
