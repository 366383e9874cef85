package services

import (
	"context"
	"errors"
	"iter"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wanderboard/eventbus"
	"wanderboard/events"
	"wanderboard/models"
)

// recordingBus captures published events for assertions.
type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (b *recordingBus) Publish(ctx context.Context, topic string, event eventbus.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	return nil
}

func (b *recordingBus) Close() {}

func (b *recordingBus) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type)
	}
	return out
}

func fragmentSeq(fragments []string, finalErr error) iter.Seq2[string, error] {
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

func TestGenerationStreamPublishesCompletion(t *testing.T) {
	bus := &recordingBus{}
	g := &Generation{
		TripID: primitive.NewObjectID(),
		Mode:   models.ModeCreative,
		svc:    &GenerateService{bus: bus},
		stream: fragmentSeq([]string{`{"days":`, `[]}`}, nil),
	}

	var got []string
	for fragment, err := range g.Stream(context.Background()) {
		require.NoError(t, err)
		got = append(got, fragment)
	}

	assert.Equal(t, []string{`{"days":`, `[]}`}, got)
	assert.Equal(t, []string{string(events.GenerationCompleted)}, bus.types())
}

func TestGenerationStreamPublishesFailure(t *testing.T) {
	bus := &recordingBus{}
	upstream := errors.New("model unavailable")
	g := &Generation{
		TripID: primitive.NewObjectID(),
		Mode:   models.ModeStrict,
		svc:    &GenerateService{bus: bus},
		stream: fragmentSeq([]string{"partial"}, upstream),
	}

	var got []string
	var streamErr error
	for fragment, err := range g.Stream(context.Background()) {
		if err != nil {
			streamErr = err
			break
		}
		got = append(got, fragment)
	}

	assert.Equal(t, []string{"partial"}, got)
	assert.ErrorIs(t, streamErr, upstream)
	assert.Equal(t, []string{string(events.GenerationFailed)}, bus.types())
}

func TestGenerationStreamStopsWhenConsumerBails(t *testing.T) {
	bus := &recordingBus{}
	g := &Generation{
		svc:    &GenerateService{bus: bus},
		stream: fragmentSeq([]string{"a", "b", "c"}, nil),
	}

	count := 0
	for _, err := range g.Stream(context.Background()) {
		require.NoError(t, err)
		count++
		if count == 1 {
			break
		}
	}

	assert.Equal(t, 1, count)
	// an abandoned stream is neither completed nor failed
	assert.Empty(t, bus.types())
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("a", "b"))
	assert.Equal(t, "b", firstNonEmpty("", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}
