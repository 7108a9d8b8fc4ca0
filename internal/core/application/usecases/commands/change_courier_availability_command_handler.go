package commands

import (
	"context"
)

type ChangeCourierAvailabilityCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewChangeCourierAvailabilityCommandHandler(uowFactory CourierUoWFactory) ChangeCourierAvailabilityCommandHandler {
	return ChangeCourierAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with an ObjectNotFoundError for "courier" when the user has no
// courier profile.
func (h *ChangeCourierAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeCourierAvailabilityCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	profile, err := courierRepo.GetByUserIDForUpdate(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	profile.ChangeAvailability(cmd.Available())

	if err = courierRepo.Update(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
