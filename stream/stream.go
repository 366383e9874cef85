// Package stream implements the newline-delimited event framing used
// between the generation endpoint and its consumers.
//
// One data frame is "data: {\"text\":\"<fragment>\"}\n\n"; the terminal
// frame is "data: [DONE]\n\n". Fragments must be relayed and read strictly
// in wire order: the accumulated text is JSON and any reordering would
// corrupt it.
package stream

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

const (
	// DataPrefix marks an event line.
	DataPrefix = "data: "
	// DoneSentinel is the payload of the terminal frame.
	DoneSentinel = "[DONE]"
)

// ErrIncomplete is returned when the byte stream closes before the done
// sentinel was observed. Consumers must treat this as a failed generation,
// not as silent success.
var ErrIncomplete = errors.New("stream ended before done sentinel")

type envelope struct {
	Text string `json:"text"`
}

// EncodeFrame renders one data frame carrying a text fragment.
func EncodeFrame(text string) []byte {
	payload, _ := json.Marshal(envelope{Text: text})
	return []byte(DataPrefix + string(payload) + "\n\n")
}

// EncodeDone renders the terminal frame.
func EncodeDone() []byte {
	return []byte(DataPrefix + DoneSentinel + "\n\n")
}

// Reader decodes frames from a byte stream. It tolerates arbitrary chunk
// boundaries (lines are reassembled by the underlying buffered reader) and
// skips malformed event lines instead of failing the stream.
type Reader struct {
	br   *bufio.Reader
	done bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next returns the next text fragment in wire order.
// After the done sentinel it returns io.EOF; if the underlying stream ends
// first it returns ErrIncomplete.
func (r *Reader) Next() (string, error) {
	if r.done {
		return "", io.EOF
	}
	for {
		line, err := r.br.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				// A trailing line without newline can still carry the
				// sentinel when the upstream closes right after it.
				if strings.TrimSpace(strings.TrimPrefix(line, DataPrefix)) == DoneSentinel && strings.HasPrefix(line, DataPrefix) {
					r.done = true
					return "", io.EOF
				}
				return "", ErrIncomplete
			}
			return "", err
		}

		line = strings.TrimRight(line, "\r\n")
		if !strings.HasPrefix(line, DataPrefix) {
			continue
		}
		payload := line[len(DataPrefix):]
		if payload == DoneSentinel {
			r.done = true
			return "", io.EOF
		}

		var env envelope
		if jsonErr := json.Unmarshal([]byte(payload), &env); jsonErr != nil {
			// malformed envelope lines are skipped, not fatal
			continue
		}
		return env.Text, nil
	}
}
