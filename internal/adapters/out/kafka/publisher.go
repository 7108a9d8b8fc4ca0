package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/event"

	kafkago "github.com/segmentio/kafka-go"
)

const (
	DefaultBufferSize = 1024

	maxBatchSize = 100
	writeTimeout = 10 * time.Second
)

var (
	ErrPublisherClosed = errors.New("kafka publisher is closed")
	ErrPublisherBusy   = errors.New("kafka publisher buffer is full")
)

// MessageWriter is the subset of *kafkago.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher on top of a kafka-go writer.
// Publish only queues the message; a background sender writes queued
// messages in batches and logs the failures. Close flushes the queue.
type Publisher struct {
	writer   MessageWriter
	producer string
	logger   *slog.Logger

	mu     sync.RWMutex
	closed bool
	inbox  chan kafkago.Message
	done   chan struct{}
}

type PublisherOption func(*Publisher)

// WithBufferSize bounds how many messages may wait for the sender.
func WithBufferSize(size int) PublisherOption {
	return func(p *Publisher) {
		if size > 0 {
			p.inbox = make(chan kafkago.Message, size)
		}
	}
}

// NewWriter returns a writer that hashes message keys to partitions and
// waits for all in-sync replicas.
func NewWriter(brokers []string, topic string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

// NewPublisher starts the background sender. Callers must Close the
// publisher to flush it.
func NewPublisher(writer MessageWriter, producer string, logger *slog.Logger, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		writer:   writer,
		producer: producer,
		logger:   logger.With("component", "kafka_publisher"),
		inbox:    make(chan kafkago.Message, DefaultBufferSize),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	go p.run()
	return p
}

// Publish queues e for channel. It never waits for the broker: a full
// buffer fails with ErrPublisherBusy.
func (p *Publisher) Publish(ctx context.Context, channel string, e event.Event) error {
	env, err := NewEnvelope(p.producer, channel, e)
	if err != nil {
		return err
	}

	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(channel),
		Value: value,
		Time:  e.OccurredAt,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	select {
	case p.inbox <- msg:
		p.logger.DebugContext(ctx, "event queued",
			"channel", channel,
			"event_id", env.EventID,
			"event_type", env.EventType,
		)
		return nil
	default:
		return fmt.Errorf("queue event %s: %w", env.EventID, ErrPublisherBusy)
	}
}

// Close stops accepting events, writes everything still queued and closes
// the writer.
func (p *Publisher) Close() error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.inbox)
	}
	p.mu.Unlock()

	<-p.done
	return p.writer.Close()
}

func (p *Publisher) run() {
	defer close(p.done)

	for msg := range p.inbox {
		batch := []kafkago.Message{msg}
	drain:
		for len(batch) < maxBatchSize {
			select {
			case next, ok := <-p.inbox:
				if !ok {
					break drain
				}
				batch = append(batch, next)
			default:
				break drain
			}
		}
		p.write(batch)
	}
}

func (p *Publisher) write(batch []kafkago.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		p.logger.Warn("failed to write events to kafka",
			"messages", len(batch),
			"error", err,
		)
	}
}
