package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/ports"
)

// RemindReadyOrdersCommandHandler sends every available courier a reminder
// for each ready order nobody has claimed yet. It takes no locks: a courier
// who acts on a stale reminder is rejected by the state machine.
type RemindReadyOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	events     emitter
	now        func() time.Time
}

func NewRemindReadyOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) RemindReadyOrdersCommandHandler {
	return RemindReadyOrdersCommandHandler{
		uowFactory: uowFactory,
		events:     newEmitter(publisher, logger, "remind_ready_orders"),
		now:        utcNow,
	}
}

// Handle returns the number of reminders sent.
func (h *RemindReadyOrdersCommandHandler) Handle(ctx context.Context, cmd RemindReadyOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.now()
	orders, err := uow.OrderRepository().GetAllReadyUnassigned(ctx, now.Add(-cmd.WaitingFor()))
	if err != nil {
		return 0, err
	}
	if len(orders) == 0 {
		return 0, nil
	}

	couriers, err := uow.CourierRepository().GetAllAvailable(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	messages := make([]event.Message, 0, len(orders)*len(couriers))
	for _, o := range orders {
		for _, c := range couriers {
			messages = append(messages, event.Message{
				Channel: event.UserChannel(c.UserID()),
				Event: event.NewOrderEvent(event.ReadyOrderReminder, o, "Order still waiting",
					"Order "+event.ShortID(o.ID())+" is ready and nobody has picked it up yet", now),
			})
		}
	}

	h.events.emit(ctx, messages...)
	return len(messages), nil
}
