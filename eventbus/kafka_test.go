package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitDeliverySucceeds(t *testing.T) {
	ch := make(chan kafka.Event, 1)
	ch <- &kafka.Message{}

	assert.NoError(t, awaitDelivery(context.Background(), ch))
}

func TestAwaitDeliverySurfacesDeliveryError(t *testing.T) {
	ch := make(chan kafka.Event, 1)
	ch <- &kafka.Message{
		TopicPartition: kafka.TopicPartition{Error: errors.New("broker down")},
	}

	err := awaitDelivery(context.Background(), ch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

func TestAwaitDeliveryLeavesChannelOpenAfterContextExpiry(t *testing.T) {
	ch := make(chan kafka.Event, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, awaitDelivery(ctx, ch), context.Canceled)

	// A late delivery report must still find a live channel.
	require.NotPanics(t, func() { ch <- &kafka.Message{} })
}
