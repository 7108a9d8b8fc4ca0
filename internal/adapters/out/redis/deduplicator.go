package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// Deduplicator remembers processed event IDs per consumer for TTLDedup.
type Deduplicator struct {
	client   goredis.UniversalClient
	consumer string
}

func NewDeduplicator(client goredis.UniversalClient, consumer string) *Deduplicator {
	return &Deduplicator{client: client, consumer: consumer}
}

func (d *Deduplicator) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(eventID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Mark records eventID once it has been fully processed.
func (d *Deduplicator) Mark(ctx context.Context, eventID string) error {
	return d.client.Set(ctx, d.key(eventID), "1", TTLDedup).Err()
}

func (d *Deduplicator) key(eventID string) string {
	return fmt.Sprintf(KeyDedup, d.consumer, eventID)
}
