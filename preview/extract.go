package preview

import (
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"wanderboard/logger"
)

// Article holds the readable text of a saved page, used to enrich inspo
// descriptions for article-type links.
type Article struct {
	Text     string
	TopImage string
}

// ExtractArticle runs the extractors in order of output quality and
// returns the first non-empty result.
func ExtractArticle(htmlStr string) *Article {
	if a := extractWithTrafilatura(htmlStr); a != nil && a.Text != "" {
		return a
	}
	if a := extractWithReadability(htmlStr); a != nil && a.Text != "" {
		return a
	}
	if a := extractWithGoose(htmlStr); a != nil && a.Text != "" {
		return a
	}
	return nil
}

func extractWithTrafilatura(htmlStr string) *Article {
	opts := trafilatura.Options{
		IncludeImages: true,
	}

	article, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		logger.Log.Debugf("trafilatura extract failed: %v", err)
		return nil
	}
	return &Article{
		Text:     article.ContentText,
		TopImage: article.Metadata.Image,
	}
}

func extractWithReadability(htmlStr string) *Article {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		logger.Log.Debugf("readability extract failed: %v", err)
		return nil
	}
	return &Article{
		Text:     article.TextContent,
		TopImage: article.Image,
	}
}

func extractWithGoose(htmlStr string) *Article {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		logger.Log.Debugf("goose extract failed: %v", err)
		return nil
	}
	return &Article{
		Text:     article.CleanedText,
		TopImage: article.TopImage,
	}
}

// Summarize trims article text to a short description.
func Summarize(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxLen {
		return text
	}
	cut := text[:maxLen]
	if idx := strings.LastIndexByte(cut, ' '); idx > maxLen/2 {
		cut = cut[:idx]
	}
	return cut + "…"
}
