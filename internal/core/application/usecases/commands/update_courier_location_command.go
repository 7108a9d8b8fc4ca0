package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateCourierLocationCommandIsNotConstructed = errors.New(
	"UpdateCourierLocationCommand must be created via NewUpdateCourierLocationCommand constructor",
)

// UpdateCourierLocationCommand records the last known position of a courier.
type UpdateCourierLocationCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	location kernel.Location

	guard guard.ConstructorGuard
}

func NewUpdateCourierLocationCommand(
	userID kernel.UUID,
	latitude float64,
	longitude float64,
) (UpdateCourierLocationCommand, error) {
	cmd := UpdateCourierLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	location, locationErr := kernel.NewLocation(latitude, longitude)
	if err := errors.Join(setID(&cmd.userID, userID), locationErr); err != nil {
		return UpdateCourierLocationCommand{}, err
	}

	cmd.location = location
	return cmd, nil
}

func (c UpdateCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierLocationCommandIsNotConstructed)
}

func (c UpdateCourierLocationCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateCourierLocationCommand) Location() kernel.Location {
	return c.location
}
