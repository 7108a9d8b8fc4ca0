package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
)

// NotificationRepository persists user inbox entries.
type NotificationRepository interface {
	// Add stores a notification. A second notification for the same event and
	// user is ignored and reported with added == false.
	Add(ctx context.Context, aggregate *notification.Notification) (added bool, err error)

	Update(ctx context.Context, aggregate *notification.Notification) error

	// GetForUpdate returns a locked notification or an ObjectNotFoundError for
	// "notification".
	GetForUpdate(ctx context.Context, id kernel.UUID) (*notification.Notification, error)
}
