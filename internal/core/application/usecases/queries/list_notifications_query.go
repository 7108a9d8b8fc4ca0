package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery",
)

// ListNotificationsQuery lists a user's inbox, newest first.
type ListNotificationsQuery struct {
	userID     kernel.UUID
	unreadOnly bool
	limit      int

	guard guard.ConstructorGuard
}

func NewListNotificationsQuery(userID kernel.UUID, unreadOnly bool, limit int) (ListNotificationsQuery, error) {
	parsed, limitErr := parseLimit(limit)
	if err := errors.Join(required("userID", userID), limitErr); err != nil {
		return ListNotificationsQuery{}, err
	}

	return ListNotificationsQuery{
		userID:     userID,
		unreadOnly: unreadOnly,
		limit:      parsed,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

func (q ListNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

func (q ListNotificationsQuery) Limit() int {
	return q.limit
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

type NotificationView struct {
	ID        kernel.UUID
	OrderID   *kernel.UUID
	Kind      string
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}
