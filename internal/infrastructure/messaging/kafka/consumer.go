package kafka

import (
	"context"
	"errors"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"bannerstore/internal/config"
	domain "bannerstore/internal/domain/order"
	"bannerstore/pkg/logger"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type EventDecoder interface {
	Decode(data []byte) (domain.Event, error)
}

type EventHandler interface {
	HandleEvent(ctx context.Context, evt domain.Event) error
}

// EventConsumer feeds order events into the status history projection.
// Offsets are committed by hand, only once a message has been projected
// or found undecodable.
type EventConsumer struct {
	reader    messageReader
	decoder   EventDecoder
	handler   EventHandler
	logger    logger.Logger
	retryBase time.Duration
	retryMax  time.Duration
}

func NewEventConsumer(cfg config.KafkaConfig, decoder EventDecoder, handler EventHandler, log logger.Logger) *EventConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.EventTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &EventConsumer{
		reader:    reader,
		decoder:   decoder,
		handler:   handler,
		logger:    log,
		retryBase: 200 * time.Millisecond,
		retryMax:  10 * time.Second,
	}
}

// Start blocks until ctx is cancelled or the reader fails. Undecodable
// messages are logged, committed and skipped. A handler failure is retried
// with backoff until it succeeds or ctx ends, so a store outage delays the
// projection instead of leaving gaps in it.
func (c *EventConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			return err
		}

		log := c.logger.WithFields(
			logger.Int("partition", msg.Partition),
			logger.Int64("offset", msg.Offset),
		)

		evt, err := c.decoder.Decode(msg.Value)
		if err != nil {
			log.Warn("skip undecodable order event", logger.Error(err))
		} else if !c.handle(ctx, evt, log) {
			return nil
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			// history append is idempotent, a redelivery after this is harmless
			log.Warn("commit order event offset", logger.Error(err))
		}
	}
}

// handle reports false when ctx ended before the event was projected.
func (c *EventConsumer) handle(ctx context.Context, evt domain.Event, log logger.Logger) bool {
	wait := c.retryBase
	for attempt := 1; ; attempt++ {
		err := c.handler.HandleEvent(ctx, evt)
		if err == nil {
			return true
		}
		log.Error("handle order event",
			logger.String("event_id", evt.ID),
			logger.Int("attempt", attempt),
			logger.Error(err),
		)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(wait):
		}
		if wait *= 2; wait > c.retryMax {
			wait = c.retryMax
		}
	}
}

func (c *EventConsumer) Close() {
	_ = c.reader.Close()
}
