package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrChangeProductPriceCommandIsNotConstructed = errors.New(
		"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
	)
	ErrChangeProductAvailabilityCommandIsNotConstructed = errors.New(
		"ChangeProductAvailabilityCommand must be created via NewChangeProductAvailabilityCommand constructor",
	)
)

// ChangeProductPriceCommand reprices a product for future orders.
type ChangeProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	merchantID kernel.UUID
	unitPrice  kernel.Money

	guard guard.ConstructorGuard
}

func NewChangeProductPriceCommand(
	productID kernel.UUID,
	merchantID kernel.UUID,
	unitPrice kernel.Money,
) (ChangeProductPriceCommand, error) {
	cmd := ChangeProductPriceCommand{
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.productID, productID),
		setID(&cmd.merchantID, merchantID),
	); err != nil {
		return ChangeProductPriceCommand{}, err
	}

	return cmd, nil
}

func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

func (c ChangeProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c ChangeProductPriceCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

func (c ChangeProductPriceCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// ChangeProductAvailabilityCommand manually lists or delists a product.
type ChangeProductAvailabilityCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	merchantID kernel.UUID
	available  bool

	guard guard.ConstructorGuard
}

func NewChangeProductAvailabilityCommand(
	productID kernel.UUID,
	merchantID kernel.UUID,
	available bool,
) (ChangeProductAvailabilityCommand, error) {
	cmd := ChangeProductAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.productID, productID),
		setID(&cmd.merchantID, merchantID),
	); err != nil {
		return ChangeProductAvailabilityCommand{}, err
	}

	return cmd, nil
}

func (c ChangeProductAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductAvailabilityCommandIsNotConstructed)
}

func (c ChangeProductAvailabilityCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c ChangeProductAvailabilityCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

func (c ChangeProductAvailabilityCommand) Available() bool {
	return c.available
}
