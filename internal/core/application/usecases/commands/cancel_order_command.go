package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand asks to cancel an order on behalf of a user. Only the
// customer who placed a still pending order succeeds.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID
	role    order.Role

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID, userID kernel.UUID, role order.Role) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.orderID, orderID),
		setID(&cmd.userID, userID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelOrderCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CancelOrderCommand) Role() order.Role {
	return c.role
}
