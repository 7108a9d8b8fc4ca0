package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRemindReadyOrdersCommandIsNotConstructed = errors.New(
	"RemindReadyOrdersCommand must be created via NewRemindReadyOrdersCommand",
)

// RemindReadyOrdersCommand re-announces orders that have waited in the ready
// pool for at least WaitingFor.
type RemindReadyOrdersCommand struct { //nolint:recvcheck //using for validation
	waitingFor time.Duration

	guard guard.ConstructorGuard
}

func NewRemindReadyOrdersCommand(waitingFor time.Duration) (RemindReadyOrdersCommand, error) {
	if waitingFor < 0 {
		return RemindReadyOrdersCommand{}, errs.NewValueIsOutOfRangeError("waitingFor", waitingFor, 0, "+inf")
	}

	return RemindReadyOrdersCommand{
		waitingFor: waitingFor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RemindReadyOrdersCommand) WaitingFor() time.Duration {
	return c.waitingFor
}

func (c RemindReadyOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRemindReadyOrdersCommandIsNotConstructed)
}
