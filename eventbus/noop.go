package eventbus

import "context"

// NoopBus discards events. Used when Kafka is not configured.
type NoopBus struct{}

func (NoopBus) Publish(ctx context.Context, topic string, event Event) error { return nil }

func (NoopBus) Close() {}
