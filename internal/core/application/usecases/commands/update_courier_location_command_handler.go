package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/ports"
)

// UpdateCourierLocationCommandHandler stores a courier position and publishes
// it on the courier's channel for anyone tracking a delivery.
type UpdateCourierLocationCommandHandler struct {
	uowFactory CourierUoWFactory
	events     emitter
	now        func() time.Time
}

func NewUpdateCourierLocationCommandHandler(
	uowFactory CourierUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateCourierLocationCommandHandler {
	return UpdateCourierLocationCommandHandler{
		uowFactory: uowFactory,
		events:     newEmitter(publisher, logger, "update_courier_location"),
		now:        utcNow,
	}
}

func (h *UpdateCourierLocationCommandHandler) Handle(ctx context.Context, cmd UpdateCourierLocationCommand) error {
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

	if err = profile.UpdateLocation(cmd.Location()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, profile); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.events.emit(ctx, event.Message{
		Channel: event.CourierChannel(profile.ID()),
		Event:   event.NewCourierLocationEvent(profile.ID(), cmd.Location(), h.now()),
	})
	return nil
}
