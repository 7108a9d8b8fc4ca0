package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// TransitionOrderCommandHandler drives an order through its lifecycle.
//
// Within one unit of work it locks the order row, resolves the caller to a
// state machine actor, applies the transition and carries out its side
// effects: stock release on cancel and the courier's delivery counter on
// deliver. Events go out only after commit.
//
// Two couriers racing to accept the same ready order are serialized on the
// order row lock: the second one reads in_transit and fails with an
// InvalidTransitionError.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ledger     services.InventoryLedger
	events     emitter
	now        func() time.Time
}

func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewInventoryLedger(),
		events:     newEmitter(publisher, logger, "transition_order"),
		now:        utcNow,
	}
}

func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actor, profile, err := resolveActor(ctx, courierRepo, cmd.UserID(), cmd.Role())
	if err != nil {
		return err
	}

	transition, err := o.Apply(actor, cmd.To(), cmd.Payload(), h.now())
	if err != nil {
		return err
	}

	switch transition {
	case order.Cancel:
		if err = h.release(ctx, uow.ProductRepository(), o); err != nil {
			return err
		}
	case order.Deliver:
		if profile != nil {
			profile.CompleteDelivery()
			if err = courierRepo.Update(ctx, profile); err != nil {
				return err
			}
		}
	case order.Confirm, order.StartPreparing, order.MarkReady, order.Accept, order.PickUp, order.ConfirmReceipt:
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	messages, err := h.messages(ctx, courierRepo, transition, o, cmd.UserID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.events.emit(ctx, messages...)
	return nil
}

func (h *TransitionOrderCommandHandler) release(
	ctx context.Context,
	productRepo ports.ProductRepository,
	o *order.Order,
) error {
	allocation, err := services.AllocationFromOrder(o)
	if err != nil {
		return err
	}

	products, err := productRepo.GetForUpdate(ctx, allocation.ProductIDs())
	if err != nil {
		return err
	}

	if err = h.ledger.Release(allocation, products); err != nil {
		return err
	}

	for _, p := range products {
		if err = productRepo.Update(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// messages decides who hears about a transition. Recipients are read inside
// the unit of work so they match the committed state.
func (h *TransitionOrderCommandHandler) messages(
	ctx context.Context,
	courierRepo ports.CourierRepository,
	transition order.Transition,
	o *order.Order,
	callerID kernel.UUID,
) ([]event.Message, error) {
	at := h.now()
	short := event.ShortID(o.ID())
	customer := event.UserChannel(o.CustomerID())
	merchant := event.UserChannel(o.MerchantID())

	msg := func(channel string, t event.Type, title, text string) event.Message {
		return event.Message{Channel: channel, Event: event.NewOrderEvent(t, o, title, text, at)}
	}

	switch transition {
	case order.Confirm:
		return []event.Message{
			msg(customer, event.OrderConfirmed, "Order confirmed", "The merchant confirmed order "+short),
		}, nil

	case order.StartPreparing:
		return []event.Message{
			msg(customer, event.OrderPreparing, "Order in preparation", "Order "+short+" is being prepared"),
		}, nil

	case order.MarkReady:
		couriers, err := courierRepo.GetAllAvailable(ctx)
		if err != nil {
			return nil, err
		}
		messages := []event.Message{
			msg(customer, event.OrderReady, "Order ready", "Order "+short+" is ready and waiting for a courier"),
		}
		for _, c := range couriers {
			messages = append(messages, msg(event.UserChannel(c.UserID()), event.OrderAvailable,
				"Order available", "Order "+short+" is ready for pickup"))
		}
		return messages, nil

	case order.Accept:
		return []event.Message{
			msg(customer, event.OrderInTransit, "Courier assigned", "A courier accepted order "+short),
			msg(event.UserChannel(callerID), event.OrderAccepted, "Order accepted",
				"You accepted order "+short+" for "+o.DeliveryFee().String()),
		}, nil

	case order.PickUp:
		return []event.Message{
			msg(customer, event.OrderPickedUp, "Order picked up", "Order "+short+" was picked up"),
			msg(merchant, event.OrderPickedUp, "Order picked up", "The courier picked up order "+short),
		}, nil

	case order.Deliver:
		return []event.Message{
			msg(customer, event.OrderDelivered, "Order delivered", "Order "+short+" was delivered"),
		}, nil

	case order.ConfirmReceipt:
		messages := []event.Message{
			msg(merchant, event.OrderReceived, "Order received", "The customer received order "+short),
		}
		if courierID := o.Courier(); courierID != nil {
			c, err := courierRepo.Get(ctx, *courierID)
			if err != nil {
				return nil, err
			}
			messages = append(messages, msg(event.UserChannel(c.UserID()), event.OrderReceived,
				"Order received", "The customer confirmed receipt of order "+short))
		}
		return messages, nil

	case order.Cancel:
		return []event.Message{
			msg(merchant, event.OrderCancelled, "Order cancelled", "The customer cancelled order "+short),
		}, nil
	}

	return nil, nil
}

// resolveActor maps an authenticated user to a state machine actor. A courier
// user without a profile becomes an unavailable courier that owns nothing, so
// the state machine still reports its guards in their usual order.
func resolveActor(
	ctx context.Context,
	courierRepo ports.CourierRepository,
	userID kernel.UUID,
	role order.Role,
) (order.Actor, *courier.Courier, error) {
	switch role {
	case order.RoleCustomer:
		return order.NewCustomerActor(userID), nil, nil
	case order.RoleMerchant:
		return order.NewMerchantActor(userID), nil, nil
	case order.RoleCourier:
		profile, err := courierRepo.GetByUserIDForUpdate(ctx, userID)
		if errs.IsObjectNotFound(err, "courier") {
			return order.NewCourierActor(kernel.UUID{}, false), nil, nil
		}
		if err != nil {
			return order.Actor{}, nil, err
		}
		return order.NewCourierActor(profile.ID(), profile.IsAvailable()), profile, nil
	case order.RoleUnknown:
	}
	return order.Actor{}, nil, nil
}
