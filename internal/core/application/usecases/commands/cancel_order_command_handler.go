package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CancelOrderCommandHandler cancels a pending order and returns its reserved
// stock. It is the cancel transition of TransitionOrderCommandHandler.
type CancelOrderCommandHandler struct {
	transitions TransitionOrderCommandHandler
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		transitions: NewTransitionOrderCommandHandler(uowFactory, publisher, logger),
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	transition, err := NewTransitionOrderCommand(cmd.OrderID(), cmd.UserID(), cmd.Role(), order.Cancelled,
		order.Payload{})
	if err != nil {
		return err
	}

	return h.transitions.Handle(ctx, transition)
}
