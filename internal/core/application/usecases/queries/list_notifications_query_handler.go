package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).
		Table("notifications").
		Select("id, order_id, kind, title, message, read, created_at").
		Where("user_id = ?", query.UserID().Bytes())
	if query.UnreadOnly() {
		stmt = stmt.Where("NOT read")
	}

	rows, err := stmt.Order("created_at DESC").Order("id").Limit(query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]NotificationView, 0)
	for rows.Next() {
		var (
			view    NotificationView
			id      uuid.UUID
			orderID uuid.NullUUID
		)
		if err = rows.Scan(&id, &orderID, &view.Kind, &view.Title, &view.Message, &view.Read,
			&view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.OrderID, err = nullableID(orderID); err != nil {
			return nil, err
		}
		notifications = append(notifications, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return notifications, nil
}
