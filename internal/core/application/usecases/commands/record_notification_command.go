package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRecordNotificationCommandIsNotConstructed = errors.New(
	"RecordNotificationCommand must be created via NewRecordNotificationCommand constructor",
)

// RecordNotificationCommand stores an order event in a user's inbox.
type RecordNotificationCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	userID         kernel.UUID
	event          event.Event

	guard guard.ConstructorGuard
}

func NewRecordNotificationCommand(
	notificationID kernel.UUID,
	userID kernel.UUID,
	e event.Event,
) (RecordNotificationCommand, error) {
	cmd := RecordNotificationCommand{
		event: e,
		guard: guard.NewConstructorGuard(),
	}

	var eventErr error
	if !e.IsOrderEvent() {
		eventErr = errs.NewValueIsInvalidErrorWithCause("event",
			errors.New("only order events are recorded"))
	}

	if err := errors.Join(
		setID(&cmd.notificationID, notificationID),
		setID(&cmd.userID, userID),
		e.ID.Validate(),
		eventErr,
	); err != nil {
		return RecordNotificationCommand{}, err
	}

	return cmd, nil
}

func (c RecordNotificationCommand) Validate() error {
	return c.guard.Validate(ErrRecordNotificationCommandIsNotConstructed)
}

func (c RecordNotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

func (c RecordNotificationCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RecordNotificationCommand) Event() event.Event {
	return c.event
}
