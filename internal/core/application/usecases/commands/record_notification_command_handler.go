package commands

import (
	"context"

	"marketplace/internal/core/domain/model/notification"
)

// RecordNotificationCommandHandler persists an inbox entry. Redelivered
// events are stored once per user.
type RecordNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewRecordNotificationCommandHandler(uowFactory NotificationUoWFactory) RecordNotificationCommandHandler {
	return RecordNotificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reports whether a new notification was stored.
func (h *RecordNotificationCommandHandler) Handle(ctx context.Context, cmd RecordNotificationCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	e := cmd.Event()
	n, err := notification.NewNotification(
		cmd.NotificationID(),
		e.ID,
		cmd.UserID(),
		e.OrderID,
		string(e.Type),
		e.Title,
		e.Message,
		e.OccurredAt,
	)
	if err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	added, err := uow.NotificationRepository().Add(ctx, n)
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return added, nil
}
