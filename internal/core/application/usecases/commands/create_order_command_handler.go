package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// CreateOrderCommandHandler places an order: it locks the requested products,
// reserves stock through the inventory ledger and persists the pending order
// in the same unit of work. The merchant and the customer are notified after
// commit.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ledger     services.InventoryLedger
	events     emitter
	now        func() time.Time
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewInventoryLedger(),
		events:     newEmitter(publisher, logger, "create_order"),
		now:        utcNow,
	}
}

// Handle fails with an ObjectNotFoundError for "product" when a product does
// not exist or belongs to another merchant, and with a product.OutOfStockError
// when any item is short. Nothing is persisted in either case.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	productRepo := uow.ProductRepository()
	orderRepo := uow.OrderRepository()

	locked, err := productRepo.GetForUpdate(ctx, cmd.Allocation().ProductIDs())
	if err != nil {
		return err
	}

	products := make([]*product.Product, 0, len(locked))
	for _, p := range locked {
		if p.BelongsTo(cmd.MerchantID()) {
			products = append(products, p)
		}
	}

	reservation, err := h.ledger.Reserve(cmd.Allocation(), products)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.MerchantID(),
		cmd.AddressID(),
		reservation.Lines(),
		cmd.PaymentMethod(),
		cmd.Notes(),
		h.now(),
	)
	if err != nil {
		return err
	}

	for _, p := range products {
		if err = productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	at := h.now()
	short := event.ShortID(o.ID())
	h.events.emit(ctx,
		event.Message{
			Channel: event.UserChannel(o.MerchantID()),
			Event: event.NewOrderEvent(event.OrderCreated, o, "New order",
				"Order "+short+" is waiting for confirmation", at),
		},
		event.Message{
			Channel: event.UserChannel(o.CustomerID()),
			Event: event.NewOrderEvent(event.OrderPlaced, o, "Order placed",
				"Order "+short+" was sent to the merchant", at),
		},
	)

	return nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
