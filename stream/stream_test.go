package stream_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"wanderboard/stream"
)

// drain reads fragments until EOF or error, returning the concatenation.
func drain(t *testing.T, r *stream.Reader) (string, error) {
	t.Helper()
	var acc bytes.Buffer
	for {
		frag, err := r.Next()
		if err == io.EOF {
			return acc.String(), nil
		}
		if err != nil {
			return acc.String(), err
		}
		acc.WriteString(frag)
	}
}

func TestRoundTripPreservesOrderAndContent(t *testing.T) {
	var wire bytes.Buffer
	fragments := []string{`{"days":`, `[{"day_number":1,`, `"title":"A"}`, `]}`}
	for _, f := range fragments {
		wire.Write(stream.EncodeFrame(f))
	}
	wire.Write(stream.EncodeDone())

	got, err := drain(t, stream.NewReader(&wire))
	assert.NoError(t, err)
	assert.Equal(t, `{"days":[{"day_number":1,"title":"A"}]}`, got)
}

// chunkReader yields at most n bytes per Read to force frames across
// inconsistent chunk boundaries.
type chunkReader struct {
	data []byte
	n    int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}
	n := c.n
	if n > len(c.data) {
		n = len(c.data)
	}
	if n > len(p) {
		n = len(p)
	}
	copy(p, c.data[:n])
	c.data = c.data[n:]
	return n, nil
}

func TestReassemblyAcrossChunkBoundaries(t *testing.T) {
	var wire bytes.Buffer
	wire.Write(stream.EncodeFrame("hello "))
	wire.Write(stream.EncodeFrame("wanderer"))
	wire.Write(stream.EncodeDone())

	for _, size := range []int{1, 2, 3, 5, 7, 1024} {
		r := stream.NewReader(&chunkReader{data: append([]byte(nil), wire.Bytes()...), n: size})
		got, err := drain(t, r)
		assert.NoError(t, err, "chunk size %d", size)
		assert.Equal(t, "hello wanderer", got, "chunk size %d", size)
	}
}

func TestMalformedLinesAreSkipped(t *testing.T) {
	var wire bytes.Buffer
	wire.Write(stream.EncodeFrame("keep1"))
	wire.WriteString("data: this is not json\n\n")
	wire.WriteString(": comment line\n")
	wire.Write(stream.EncodeFrame("keep2"))
	wire.Write(stream.EncodeDone())

	got, err := drain(t, stream.NewReader(&wire))
	assert.NoError(t, err)
	assert.Equal(t, "keep1keep2", got)
}

func TestAbruptCloseWithoutDone(t *testing.T) {
	var wire bytes.Buffer
	wire.Write(stream.EncodeFrame("partial"))

	r := stream.NewReader(&wire)
	frag, err := r.Next()
	assert.NoError(t, err)
	assert.Equal(t, "partial", frag)

	_, err = r.Next()
	assert.ErrorIs(t, err, stream.ErrIncomplete)
}

func TestDoneWithoutTrailingNewline(t *testing.T) {
	var wire bytes.Buffer
	wire.Write(stream.EncodeFrame("x"))
	wire.WriteString("data: [DONE]")

	got, err := drain(t, stream.NewReader(&wire))
	assert.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestNextAfterDoneKeepsReturningEOF(t *testing.T) {
	var wire bytes.Buffer
	wire.Write(stream.EncodeDone())
	wire.Write(stream.EncodeFrame("late"))

	r := stream.NewReader(&wire)
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestEncodeFrameEscapes(t *testing.T) {
	frame := string(stream.EncodeFrame("line\nbreak \"quoted\""))
	assert.Contains(t, frame, `\n`)
	assert.Contains(t, frame, `\"quoted\"`)
	// the frame itself stays one event line plus the blank separator
	assert.Equal(t, "\n\n", frame[len(frame)-2:])
}
