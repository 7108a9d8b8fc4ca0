// Package kafka consumes marketplace events from Kafka. Offsets are committed
// by hand, only after a message has been handled or given up on.
package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// Handler processes one message. A nil error lets the consumer commit it.
type Handler func(ctx context.Context, m kafkago.Message) error

// MessageReader is the subset of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 200 * time.Millisecond
)

type Consumer struct {
	reader      MessageReader
	logger      *slog.Logger
	maxAttempts int
	retryDelay  time.Duration
}

// NewReader joins group on topic with auto-commit disabled.
func NewReader(brokers []string, group, topic string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        brokers,
		GroupID:        group,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0,
	})
}

func NewConsumer(reader MessageReader, logger *slog.Logger) *Consumer {
	return &Consumer{
		reader:      reader,
		logger:      logger.With("component", "kafka_consumer"),
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
}

// WithRetry overrides how often a failing message is retried before it is
// logged and skipped.
func (c *Consumer) WithRetry(maxAttempts int, delay time.Duration) *Consumer {
	if maxAttempts > 0 {
		c.maxAttempts = maxAttempts
	}
	c.retryDelay = delay
	return c
}

// Run blocks until ctx is cancelled or the reader fails. It closes the reader
// on return.
func (c *Consumer) Run(ctx context.Context, h Handler) error {
	defer func() {
		if err := c.reader.Close(); err != nil {
			c.logger.WarnContext(ctx, "failed to close reader", "error", err)
		}
	}()

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.logger.InfoContext(ctx, "consumer shutting down")
				return nil
			}
			return err
		}

		if !c.handle(ctx, h, m) {
			return nil
		}

		if err = c.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

// handle runs h with retries. It returns false when ctx ended first.
func (c *Consumer) handle(ctx context.Context, h Handler, m kafkago.Message) bool {
	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err = h(ctx, m); err == nil {
			return true
		}

		c.logger.WarnContext(ctx, "failed to handle message",
			"topic", m.Topic,
			"partition", m.Partition,
			"offset", m.Offset,
			"attempt", attempt,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(c.retryDelay):
		}
	}

	c.logger.ErrorContext(ctx, "skipping message after retries",
		"topic", m.Topic,
		"partition", m.Partition,
		"offset", m.Offset,
		"error", err,
	)
	return true
}
