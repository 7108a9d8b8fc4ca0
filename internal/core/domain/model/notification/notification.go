// Package notification models the per-user inbox fed by order events.
package notification

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

// Notification is one inbox entry. EventID is the identifier of the event it
// was recorded from, unique per user, so a redelivered event is stored once.
type Notification struct {
	id        kernel.UUID
	eventID   kernel.UUID
	userID    kernel.UUID
	orderID   *kernel.UUID
	kind      string
	title     string
	message   string
	read      bool
	createdAt time.Time
	guard     guard.ConstructorGuard
}

func NewNotification(
	id kernel.UUID,
	eventID kernel.UUID,
	userID kernel.UUID,
	orderID *kernel.UUID,
	kind string,
	title string,
	message string,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		orderID:   orderID,
		title:     title,
		message:   message,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		required("eventID", eventID),
		required("userID", userID),
		n.setKind(kind),
	); err != nil {
		return nil, err
	}

	n.id = id
	n.eventID = eventID
	n.userID = userID
	return n, nil
}

func RestoreNotification(
	id kernel.UUID,
	eventID kernel.UUID,
	userID kernel.UUID,
	orderID *kernel.UUID,
	kind string,
	title string,
	message string,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, eventID, userID, orderID, kind, title, message, createdAt)
	if err != nil {
		return nil, err
	}
	n.read = read
	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) EventID() kernel.UUID {
	return n.eventID
}

func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

func (n *Notification) OrderID() *kernel.UUID {
	return n.orderID
}

func (n *Notification) Kind() string {
	return n.kind
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) IsRead() bool {
	return n.read
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead marks the entry read on behalf of userID, who must own it.
func (n *Notification) MarkRead(userID kernel.UUID) error {
	if !n.userID.IsEqual(userID) {
		return errs.NewForbiddenError("mark_notification_read", "notification belongs to another user")
	}
	n.read = true
	return nil
}

func (n *Notification) setKind(kind string) error {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return errs.NewValueIsRequiredError("kind")
	}
	n.kind = kind
	return nil
}

func required(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
