// Package generator wraps the Gemini streaming API behind a small text
// streaming interface so the rest of the pipeline never touches the SDK.
package generator

import (
	"context"
	"fmt"
	"iter"

	"google.golang.org/genai"

	"wanderboard/config"
)

// Options tune one streaming completion.
type Options struct {
	Temperature     float32
	MaxOutputTokens int32
}

// TextStreamer produces an ordered stream of text fragments for a
// (system instruction, user prompt) pair. The sequence yields a non-nil
// error as its last element when the upstream stream fails mid-transfer.
type TextStreamer interface {
	StreamText(ctx context.Context, systemInstruction, userPrompt string, opts Options) iter.Seq2[string, error]
}

// Client is the Gemini-backed TextStreamer.
type Client struct {
	model           string
	apiKey          string
	maxOutputTokens int32
}

func New() *Client {
	cfg := config.GetConfig()
	return &Client{
		model:           cfg.Gemini.Model,
		apiKey:          config.GeminiAPIKey(),
		maxOutputTokens: cfg.Gemini.MaxOutputTokens,
	}
}

// StreamText opens a streaming completion and yields each incremental text
// fragment in arrival order. No buffering beyond the current fragment.
func (c *Client) StreamText(ctx context.Context, systemInstruction, userPrompt string, opts Options) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if c.apiKey == "" {
			yield("", fmt.Errorf("GEMINI_API_KEY environment variable is not set"))
			return
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: c.apiKey,
		})
		if err != nil {
			yield("", err)
			return
		}

		maxTokens := opts.MaxOutputTokens
		if maxTokens == 0 {
			maxTokens = c.maxOutputTokens
		}
		genCfg := &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
			Temperature:       genai.Ptr(opts.Temperature),
			MaxOutputTokens:   maxTokens,
		}

		for resp, err := range client.Models.GenerateContentStream(ctx, c.model, genai.Text(userPrompt), genCfg) {
			if err != nil {
				yield("", err)
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			if !yield(text, nil) {
				return
			}
		}
	}
}
