package genclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wanderboard/dto"
	"wanderboard/genclient"
	"wanderboard/stream"
)

// streamServer serves /api/v1/generate with the given frames, flushing
// after each one.
func streamServer(t *testing.T, fragments []string, sendDone bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/generate" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, f := range fragments {
			w.Write(stream.EncodeFrame(f))
			flusher.Flush()
		}
		if sendDone {
			w.Write(stream.EncodeDone())
			flusher.Flush()
		}
	}))
}

func TestGenerateSucceedsOnValidItinerary(t *testing.T) {
	srv := streamServer(t, []string{`{"days":`, `[]}`}, true)
	defer srv.Close()

	var progress []string
	c := genclient.New(srv.URL, genclient.WithProgress(func(p string) {
		progress = append(progress, p)
	}))

	result, err := c.Generate(context.Background(), dto.GenerateRequestDTO{TripID: "t1"})
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result.Days)

	snap := c.Snapshot()
	assert.Equal(t, genclient.StateSucceeded, snap.State)
	assert.Equal(t, `{"days":[]}`, snap.PartialText)
	assert.Equal(t, []string{`{"days":`, `{"days":[]}`}, progress)
}

func TestGenerateFailsWithParseErrorOnGarbage(t *testing.T) {
	srv := streamServer(t, []string{"not json"}, true)
	defer srv.Close()

	c := genclient.New(srv.URL)
	_, err := c.Generate(context.Background(), dto.GenerateRequestDTO{TripID: "t1"})

	var perr *genclient.ParseError
	assert.ErrorAs(t, err, &perr)

	snap := c.Snapshot()
	assert.Equal(t, genclient.StateFailed, snap.State)
	// partial text stays visible for diagnostics
	assert.Equal(t, "not json", snap.PartialText)
}

func TestGenerateFailsOnAbruptCloseWithoutDone(t *testing.T) {
	srv := streamServer(t, []string{`{"days":`}, false)
	defer srv.Close()

	c := genclient.New(srv.URL)
	_, err := c.Generate(context.Background(), dto.GenerateRequestDTO{TripID: "t1"})

	assert.ErrorIs(t, err, genclient.ErrIncompleteStream)

	var perr *genclient.ParseError
	assert.False(t, errors.As(err, &perr), "incomplete stream must not be a parse error")
	assert.Equal(t, genclient.StateFailed, c.Snapshot().State)
}

func TestGenerateSkipsMalformedFrames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write(stream.EncodeFrame(`{"days":`))
		w.Write([]byte("data: {broken\n\n"))
		w.Write(stream.EncodeFrame(`[]}`))
		w.Write(stream.EncodeDone())
	}))
	defer srv.Close()

	c := genclient.New(srv.URL)
	result, err := c.Generate(context.Background(), dto.GenerateRequestDTO{TripID: "t1"})
	assert.NoError(t, err)
	assert.Empty(t, result.Days)
}

func TestGenerateSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"trip not found"}`))
	}))
	defer srv.Close()

	c := genclient.New(srv.URL)
	_, err := c.Generate(context.Background(), dto.GenerateRequestDTO{TripID: "missing"})

	var rerr *genclient.RequestError
	assert.ErrorAs(t, err, &rerr)
	assert.Equal(t, http.StatusNotFound, rerr.StatusCode)
	assert.Equal(t, "trip not found", rerr.Message)
	assert.Equal(t, genclient.StateFailed, c.Snapshot().State)
}

func TestSecondGenerateDiscardsFirstAttempt(t *testing.T) {
	release := make(chan struct{})
	var once sync.Once
	first := true
	var mu sync.Mutex

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)

		mu.Lock()
		isFirst := first
		first = false
		mu.Unlock()

		if isFirst {
			// first attempt streams one fragment then stalls until released
			w.Write(stream.EncodeFrame("FIRST-ATTEMPT"))
			flusher.Flush()
			<-release
			return
		}
		w.Write(stream.EncodeFrame(`{"days":[]}`))
		w.Write(stream.EncodeDone())
		flusher.Flush()
	}))
	defer srv.Close()
	defer once.Do(func() { close(release) })

	c := genclient.New(srv.URL)

	firstStarted := make(chan struct{})
	firstDone := make(chan error, 1)
	go func() {
		close(firstStarted)
		_, err := c.Generate(context.Background(), dto.GenerateRequestDTO{TripID: "t1"})
		firstDone <- err
	}()

	<-firstStarted
	// wait for the first fragment to arrive so the attempt is mid-stream
	assert.Eventually(t, func() bool {
		return c.Snapshot().PartialText == "FIRST-ATTEMPT"
	}, 2*time.Second, 10*time.Millisecond)

	result, err := c.Generate(context.Background(), dto.GenerateRequestDTO{TripID: "t1"})
	assert.NoError(t, err)
	assert.NotNil(t, result)

	// superseded attempt ends with a cancellation, not success
	assert.Error(t, <-firstDone)

	snap := c.Snapshot()
	assert.Equal(t, genclient.StateSucceeded, snap.State)
	assert.NotContains(t, snap.PartialText, "FIRST-ATTEMPT")
	assert.Equal(t, `{"days":[]}`, snap.PartialText)
}

func TestResetReturnsToIdle(t *testing.T) {
	srv := streamServer(t, []string{"not json"}, true)
	defer srv.Close()

	c := genclient.New(srv.URL)
	_, err := c.Generate(context.Background(), dto.GenerateRequestDTO{TripID: "t1"})
	assert.Error(t, err)

	c.Reset()
	snap := c.Snapshot()
	assert.Equal(t, genclient.StateIdle, snap.State)
	assert.Empty(t, snap.PartialText)
	assert.Nil(t, snap.Result)
	assert.NoError(t, snap.Err)
}

func TestInitialStateIsIdle(t *testing.T) {
	c := genclient.New("http://127.0.0.1:0")
	assert.Equal(t, genclient.StateIdle, c.Snapshot().State)
}
