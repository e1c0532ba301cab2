package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"bannerstore/internal/config"
	"bannerstore/pkg/logger"
)

// EventProducer publishes encoded order events. Records are keyed by order
// id so every event of one order lands on the same partition, in order.
type EventProducer struct {
	client *kgo.Client
	topic  string
	logger logger.Logger
}

func NewEventProducer(cfg config.KafkaConfig, log logger.Logger) (*EventProducer, error) {
	log.Info("creating kafka producer",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.EventTopic),
	)

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.EventTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	// connection is only tested on first publish
	return &EventProducer{
		client: client,
		topic:  cfg.EventTopic,
		logger: log,
	}, nil
}

func (p *EventProducer) PublishEvent(ctx context.Context, key string, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload is empty")
	}
	if p.client == nil {
		return fmt.Errorf("kafka producer is not initialised")
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(key),
		Value:     payload,
		Timestamp: time.Now().UTC(),
		Headers: []kgo.RecordHeader{
			{Key: "content-type", Value: []byte("avro/binary")},
		},
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		p.logger.Error("publish to kafka failed",
			logger.String("topic", p.topic),
			logger.Int("payload_bytes", len(payload)),
			logger.Error(err),
		)
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	p.logger.Debug("event published", logger.String("topic", p.topic), logger.String("key", key))
	return nil
}

func (p *EventProducer) Close(ctx context.Context) error {
	p.logger.Info("Closing Kafka producer", logger.String("topic", p.topic))
	if p.client != nil {
		if err := p.client.Flush(ctx); err != nil {
			p.logger.Warn("flush before close failed", logger.Error(err))
		}
		p.client.Close()
	}
	return nil
}
