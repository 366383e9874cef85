package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"wanderboard/logger"
)

// KafkaBus is a producer-only Bus backed by confluent-kafka-go.
type KafkaBus struct {
	producer *kafka.Producer
	brokers  string
}

func NewKafkaBus(brokers string) (*KafkaBus, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "all",
		"retries":           5,
	})
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	// Drain delivery reports so the producer queue never fills up.
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					logger.Log.Errorf("message delivery failed %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				logger.Log.Errorf("kafka error: %v", ev)
			}
		}
	}()

	return &KafkaBus{producer: p, brokers: brokers}, nil
}

func (k *KafkaBus) Publish(ctx context.Context, topic string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)

	err = k.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          data,
		Key:            []byte(event.ID),
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("produce message: %w", err)
	}

	return awaitDelivery(ctx, deliveryChan)
}

// awaitDelivery waits for the delivery report. The channel is never
// closed: librdkafka can still write a report after the context expires,
// so it is left for the garbage collector instead.
func awaitDelivery(ctx context.Context, deliveryChan chan kafka.Event) error {
	select {
	case ev := <-deliveryChan:
		m := ev.(*kafka.Message)
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("message delivery: %w", m.TopicPartition.Error)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (k *KafkaBus) Close() {
	if k.producer != nil {
		if remaining := k.producer.Flush(5000); remaining > 0 {
			logger.Log.Warnf("%d messages still unflushed after close", remaining)
		}
		k.producer.Close()
		logger.Log.Info("kafka producer closed")
	}
}
