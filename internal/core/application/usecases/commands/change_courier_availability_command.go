package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrChangeCourierAvailabilityCommandIsNotConstructed = errors.New(
	"ChangeCourierAvailabilityCommand must be created via NewChangeCourierAvailabilityCommand constructor",
)

// ChangeCourierAvailabilityCommand toggles whether a courier takes new orders.
type ChangeCourierAvailabilityCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

func NewChangeCourierAvailabilityCommand(userID kernel.UUID, available bool) (ChangeCourierAvailabilityCommand, error) {
	cmd := ChangeCourierAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := setID(&cmd.userID, userID); err != nil {
		return ChangeCourierAvailabilityCommand{}, err
	}

	return cmd, nil
}

func (c ChangeCourierAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrChangeCourierAvailabilityCommandIsNotConstructed)
}

func (c ChangeCourierAvailabilityCommand) UserID() kernel.UUID {
	return c.userID
}

func (c ChangeCourierAvailabilityCommand) Available() bool {
	return c.available
}
