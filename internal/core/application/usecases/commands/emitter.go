package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/ports"
)

// emitter publishes events after a commit. A failed publish is logged and
// dropped: the state change it describes is already durable.
type emitter struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func newEmitter(publisher ports.EventPublisher, logger *slog.Logger, component string) emitter {
	if logger == nil {
		logger = slog.Default()
	}
	return emitter{
		publisher: publisher,
		logger:    logger.With("component", component),
	}
}

func (e emitter) emit(ctx context.Context, messages ...event.Message) {
	for _, msg := range messages {
		if err := e.publisher.Publish(ctx, msg.Channel, msg.Event); err != nil {
			e.logger.WarnContext(ctx, "failed to publish event",
				"channel", msg.Channel,
				"event_id", msg.Event.ID.String(),
				"event_type", string(msg.Event.Type),
				"error", err,
			)
		}
	}
}
