package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand asks to move an order to a target status on behalf
// of an authenticated user. For couriers userID is the user, and the handler
// resolves the courier profile.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID
	role    order.Role
	to      order.Status
	payload order.Payload

	guard guard.ConstructorGuard
}

func NewTransitionOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	role order.Role,
	to order.Status,
	payload order.Payload,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		role:    role,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.orderID, orderID),
		setID(&cmd.userID, userID),
		cmd.setTo(to),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionOrderCommand) UserID() kernel.UUID {
	return c.userID
}

func (c TransitionOrderCommand) Role() order.Role {
	return c.role
}

func (c TransitionOrderCommand) To() order.Status {
	return c.to
}

func (c TransitionOrderCommand) Payload() order.Payload {
	return c.payload
}

func (c *TransitionOrderCommand) setTo(to order.Status) error {
	if to == order.Unknown {
		return errs.NewValueIsRequiredError("status")
	}

	c.to = to
	return nil
}
