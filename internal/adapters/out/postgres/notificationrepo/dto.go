// Package notificationrepo persists user inbox entries.
package notificationrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is unique per (event_id, user_id): an event redelivered by
// the broker maps to the same row.
type NotificationDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_notifications_event_user"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_notifications_event_user;index"`
	OrderID   *uuid.UUID `gorm:"type:uuid"`
	Kind      string     `gorm:"type:varchar(64);not null"`
	Title     string     `gorm:"not null"`
	Message   string     `gorm:"type:text;not null"`
	Read      bool       `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null;index"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	var orderID *uuid.UUID
	if id := n.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return NotificationDTO{
		ID:        n.ID().Bytes(),
		EventID:   n.EventID().Bytes(),
		UserID:    n.UserID().Bytes(),
		OrderID:   orderID,
		Kind:      n.Kind(),
		Title:     n.Title(),
		Message:   n.Message(),
		Read:      n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	eventID, err := kernel.UUIDFromBytes(dto.EventID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, idErr := kernel.UUIDFromBytes(dto.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderID = &oID
	}

	return notification.RestoreNotification(id, eventID, userID, orderID, dto.Kind, dto.Title, dto.Message,
		dto.Read, dto.CreatedAt)
}
