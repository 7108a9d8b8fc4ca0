package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/pkg/errs"
)

// RegisterCourierCommandHandler creates an available courier profile with no
// completed deliveries. A user can register only once.
type RegisterCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewRegisterCourierCommandHandler(uowFactory CourierUoWFactory) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RegisterCourierCommandHandler) Handle(ctx context.Context, cmd RegisterCourierCommand) error {
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

	_, err := courierRepo.GetByUserID(ctx, cmd.UserID())
	switch {
	case err == nil:
		return errs.NewValueIsInvalidErrorWithCause("userID",
			fmt.Errorf("user %s already has a courier profile", cmd.UserID()))
	case !errs.IsObjectNotFound(err, "courier"):
		return err
	}

	profile, err := courier.NewCourier(cmd.CourierID(), cmd.UserID())
	if err != nil {
		return err
	}

	if err = courierRepo.Add(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
