package kafka

import (
	"context"
	"log/slog"

	kafka_out "marketplace/internal/adapters/out/kafka"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/domain/model/kernel"

	kafkago "github.com/segmentio/kafka-go"
)

// Deduplicator remembers which deliveries were already recorded.
type Deduplicator interface {
	Seen(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

type recordNotificationHandler interface {
	Handle(ctx context.Context, cmd commands.RecordNotificationCommand) (bool, error)
}

// NotificationRecorder turns order events addressed to user:<id> channels
// into inbox entries. Other channels and non-order events are skipped.
// Malformed messages are logged and skipped; storage failures are returned
// so the consumer retries them.
type NotificationRecorder struct {
	handler recordNotificationHandler
	dedup   Deduplicator
	logger  *slog.Logger
}

func NewNotificationRecorder(
	handler recordNotificationHandler,
	dedup Deduplicator,
	logger *slog.Logger,
) *NotificationRecorder {
	return &NotificationRecorder{
		handler: handler,
		dedup:   dedup,
		logger:  logger.With("component", "notification_recorder"),
	}
}

func (r *NotificationRecorder) Handle(ctx context.Context, m kafkago.Message) error {
	env, e, err := kafka_out.DecodeEnvelope(m.Value)
	if err != nil {
		r.logger.WarnContext(ctx, "dropping undecodable message", "offset", m.Offset, "error", err)
		return nil
	}

	userID, ok := event.ParseUserChannel(env.Channel)
	if !ok || !e.IsOrderEvent() {
		return nil
	}

	key := env.EventID + ":" + userID.String()
	seen, err := r.dedup.Seen(ctx, key)
	if err != nil {
		r.logger.WarnContext(ctx, "dedup lookup failed, relying on the inbox constraint", "error", err)
	}
	if seen {
		return nil
	}

	cmd, err := commands.NewRecordNotificationCommand(kernel.NewUUID(), userID, e)
	if err != nil {
		r.logger.WarnContext(ctx, "dropping invalid event", "event_id", env.EventID, "error", err)
		return nil
	}

	added, err := r.handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	if err = r.dedup.Mark(ctx, key); err != nil {
		r.logger.WarnContext(ctx, "failed to mark event processed", "event_id", env.EventID, "error", err)
	}

	r.logger.DebugContext(ctx, "notification recorded",
		"event_id", env.EventID,
		"user_id", userID.String(),
		"duplicate", !added,
	)
	return nil
}
