package ports

import (
	"context"

	"marketplace/internal/core/domain/model/event"
)

// EventPublisher delivers an event to a channel such as user:<id>. Delivery is
// best effort: callers publish only after commit and log failures.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, e event.Event) error
}
