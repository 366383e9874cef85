// Package genclient consumes the generation endpoint's framed event stream.
// It keeps one logical stream per Client at a time: a fresh Generate call
// discards any in-flight attempt, and Reset returns to idle unconditionally.
package genclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"wanderboard/dto"
	"wanderboard/httpclient"
	"wanderboard/logger"
	"wanderboard/models"
	"wanderboard/stream"
)

// State is the consumer's lifecycle position.
type State string

const (
	StateIdle      State = "idle"
	StateStreaming State = "streaming"
	StateParsing   State = "parsing"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// ErrIncompleteStream marks a stream that closed before the done sentinel:
// the generation did not complete, which is not the same as a parse failure.
var ErrIncompleteStream = errors.New("generation stream ended before completion")

// ParseError marks accumulated text that survived the network but could not
// be parsed into an itinerary. Only a full regenerate can recover.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return "could not parse the generated itinerary"
}

func (e *ParseError) Unwrap() error { return e.Cause }

// RequestError carries a non-success response from the endpoint.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("generation request failed: status=%d message=%s", e.StatusCode, e.Message)
}

// Snapshot is a consistent view of the consumer's state, safe to read while
// a stream is in flight. PartialText stays populated after a failure so the
// raw output remains inspectable until the next attempt.
type Snapshot struct {
	State       State
	PartialText string
	Result      *models.GeneratedItinerary
	Err         error
}

// Option configures a Client.
type Option func(*Client)

// WithProgress registers a callback invoked with the accumulated partial
// text after every fragment, in wire order.
func WithProgress(fn func(partial string)) Option {
	return func(c *Client) { c.onProgress = fn }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.base.HTTPClient = hc }
}

// Client is the incremental stream consumer.
type Client struct {
	base       *httpclient.BaseClient
	onProgress func(string)

	mu      sync.Mutex
	seq     int
	cancel  context.CancelFunc
	state   State
	partial string
	result  *models.GeneratedItinerary
	err     error
}

// New builds a consumer for the given API base URL.
func New(baseURL string, opts ...Option) *Client {
	hc := httpclient.New(httpclient.Config{Timeout: 5 * time.Minute})
	c := &Client{
		base:  httpclient.NewBaseClientWithClient(hc, baseURL),
		state: StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current state.
func (c *Client) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{State: c.state, PartialText: c.partial, Result: c.result, Err: c.err}
}

// Reset discards any in-flight stream and returns to idle, clearing
// accumulated text, result and error.
func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.seq++
	c.state = StateIdle
	c.partial = ""
	c.result = nil
	c.err = nil
}

// Generate runs one generation attempt to a terminal state and returns the
// parsed itinerary. Calling it while another attempt is in flight cancels
// that attempt; the superseded call returns its context error and never
// touches the new attempt's accumulated text.
func (c *Client) Generate(ctx context.Context, req dto.GenerateRequestDTO) (*models.GeneratedItinerary, error) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.seq++
	seq := c.seq
	c.state = StateStreaming
	c.partial = ""
	c.result = nil
	c.err = nil
	c.mu.Unlock()

	result, err := c.run(ctx, seq, req)
	c.finish(seq, result, err)
	return result, err
}

func (c *Client) run(ctx context.Context, seq int, req dto.GenerateRequestDTO) (*models.GeneratedItinerary, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.base.NewRequest(ctx, http.MethodPost, "/api/v1/generate", nil, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.base.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.readRequestError(resp)
	}

	var acc strings.Builder
	reader := stream.NewReader(resp.Body)
	for {
		frag, rerr := reader.Next()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			if errors.Is(rerr, stream.ErrIncomplete) {
				return nil, ErrIncompleteStream
			}
			return nil, rerr
		}
		acc.WriteString(frag)
		c.publishPartial(seq, acc.String())
	}

	c.setState(seq, StateParsing)

	itinerary, perr := models.ParseGeneratedItinerary(acc.String())
	if perr != nil {
		return nil, &ParseError{Cause: perr}
	}

	// Day-count mismatches are accepted as-is; the server does not enforce
	// the requested count either.
	if req.NumDays > 0 && len(itinerary.Days) != req.NumDays {
		logger.WarnWithFields("generated day count differs from request", logger.Fields{
			"requested": req.NumDays,
			"generated": len(itinerary.Days),
			"trip_id":   req.TripID,
		})
	}
	return itinerary, nil
}

func (c *Client) readRequestError(resp *http.Response) error {
	const maxBodySize = 64 * 1024
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))

	var envelope dto.ErrorResponseDTO
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return &RequestError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}
	return &RequestError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
}

// publishPartial records the accumulated text unless this attempt has been
// superseded, then notifies the progress callback.
func (c *Client) publishPartial(seq int, text string) {
	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		return
	}
	c.partial = text
	cb := c.onProgress
	c.mu.Unlock()

	if cb != nil {
		cb(text)
	}
}

func (c *Client) setState(seq int, s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}
	c.state = s
}

func (c *Client) finish(seq int, result *models.GeneratedItinerary, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}
	if err != nil {
		c.state = StateFailed
		c.err = err
		return
	}
	c.state = StateSucceeded
	c.result = result
}
