package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItem is one requested product of a new order.
type OrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand asks to place an order with one merchant. The caller
// chooses the order ID so it can answer with it after Handle returns.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, merchantID,
//	    []OrderItem{{ProductID: pizzaID, Quantity: 2}}, order.PaymentCash, "", nil)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	merchantID    kernel.UUID
	allocation    services.Allocation
	paymentMethod order.PaymentMethod
	notes         string
	addressID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. Duplicate products are merged.
// No items fails with order.ErrEmptyOrder.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	merchantID kernel.UUID,
	items []OrderItem,
	paymentMethod order.PaymentMethod,
	notes string,
	addressID *kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		paymentMethod: paymentMethod,
		notes:         notes,
		addressID:     addressID,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.orderID, orderID),
		setID(&cmd.customerID, customerID),
		setID(&cmd.merchantID, merchantID),
		cmd.setItems(items),
		paymentMethod.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Allocation returns the requested items merged and in lock order.
func (c CreateOrderCommand) Allocation() services.Allocation {
	return c.allocation
}

func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c CreateOrderCommand) AddressID() *kernel.UUID {
	return c.addressID
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	allocationItems := make([]services.AllocationItem, 0, len(items))
	for _, item := range items {
		allocationItems = append(allocationItems, services.AllocationItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	allocation, err := services.NewAllocation(allocationItems)
	if err != nil {
		return err
	}

	c.allocation = allocation
	return nil
}

func setID(field *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	*field = id
	return nil
}
