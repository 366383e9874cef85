package handlers

import (
	"errors"
	"io"
	"iter"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderboard/stream"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func seqOf(fragments []string, finalErr error) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, f := range fragments {
			if !yield(f, nil) {
				return
			}
		}
		if finalErr != nil {
			yield("", finalErr)
		}
	}
}

func runRelay(t *testing.T, fragments iter.Seq2[string, error]) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
	relayStream(c, fragments)
	return w
}

func TestRelayStreamWritesFramesAndDone(t *testing.T) {
	w := runRelay(t, seqOf([]string{`{"days":`, `[]}`}, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))

	body := w.Body.String()
	assert.True(t, strings.HasSuffix(body, "data: [DONE]\n\n"))

	// frames decode back in order
	r := stream.NewReader(strings.NewReader(body))
	var got []string
	for {
		fragment, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, fragment)
	}
	assert.Equal(t, []string{`{"days":`, `[]}`}, got)
}

func TestRelayStreamEndsWithoutDoneOnFailure(t *testing.T) {
	w := runRelay(t, seqOf([]string{"partial text"}, errors.New("model unavailable")))

	body := w.Body.String()
	assert.Contains(t, body, "data: ")
	assert.NotContains(t, body, "[DONE]")

	// consumers see the truncation
	r := stream.NewReader(strings.NewReader(body))
	fragment, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "partial text", fragment)

	_, err = r.Next()
	assert.ErrorIs(t, err, stream.ErrIncomplete)
}

func TestRelayStreamEmptyStreamStillCompletes(t *testing.T) {
	w := runRelay(t, seqOf(nil, nil))
	assert.Equal(t, "data: [DONE]\n\n", w.Body.String())
}
