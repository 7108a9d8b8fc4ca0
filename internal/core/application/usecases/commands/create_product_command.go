package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds an item to a merchant's catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	merchantID kernel.UUID
	name       string
	unitPrice  kernel.Money
	stock      int

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	productID kernel.UUID,
	merchantID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	stock int,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		name:      name,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.productID, productID),
		setID(&cmd.merchantID, merchantID),
		cmd.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateProductCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c CreateProductCommand) Stock() int {
	return c.stock
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, "+inf")
	}

	c.stock = stock
	return nil
}
