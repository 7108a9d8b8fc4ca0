package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"marketplace/internal/core/domain/model/event"

	goredis "github.com/redis/go-redis/v9"
)

// Publisher implements ports.EventPublisher with PUBLISH on the event's
// channel. Subscribers that are not connected miss the event; the durable
// copy goes through Kafka.
type Publisher struct {
	client goredis.UniversalClient
}

func NewPublisher(client goredis.UniversalClient) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) Publish(ctx context.Context, channel string, e event.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err = p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}
	return nil
}
