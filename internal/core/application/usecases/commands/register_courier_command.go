package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand creates the courier profile of a user.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	userID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewRegisterCourierCommand(courierID, userID kernel.UUID) (RegisterCourierCommand, error) {
	cmd := RegisterCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.courierID, courierID),
		setID(&cmd.userID, userID),
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	return cmd, nil
}

func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

func (c RegisterCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c RegisterCourierCommand) UserID() kernel.UUID {
	return c.userID
}
