package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaSink publishes events to a single Kafka topic, keyed by event kind so
// consumers see per-kind ordering.
type KafkaSink struct {
	client *kgo.Client
	topic  string
}

// NewKafkaSink connects to the brokers and ensures the topic exists.
func NewKafkaSink(ctx context.Context, brokers []string, topic string) (*KafkaSink, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}

	admin := kadm.NewClient(client)
	topics, err := admin.ListTopics(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("list topics: %w", err)
	}
	if !topics.Has(topic) {
		if _, err := admin.CreateTopic(ctx, 1, 1, nil, topic); err != nil {
			client.Close()
			return nil, fmt.Errorf("create topic %s: %w", topic, err)
		}
	}

	return &KafkaSink{client: client, topic: topic}, nil
}

func (s *KafkaSink) Publish(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.Kind),
		Value: value,
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce event %s: %w", event.ID, err)
	}
	return nil
}

// Close flushes pending records and releases the client.
func (s *KafkaSink) Close() {
	s.client.Close()
}
