package product

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not created via NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errs.NewValueIsRequiredError("product must be created via NewProduct or RestoreProduct")

// Product is a merchant's catalog item together with its stock level.
//
// Invariants:
//   - stock is never negative
//   - available is false whenever stock is 0
//   - available may be switched on manually only while stock is positive
//
// Stock is changed only through Reserve and Release, which the inventory
// ledger calls while holding the product's row lock.
type Product struct {
	id         kernel.UUID
	merchantID kernel.UUID
	name       string
	unitPrice  kernel.Money
	stock      int
	available  bool
	guard      guard.ConstructorGuard
}

// NewProduct creates a catalog item. It starts available when stock is positive.
func NewProduct(
	id kernel.UUID,
	merchantID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	stock int,
) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setMerchantID(merchantID),
		p.setName(name),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	p.unitPrice = unitPrice
	p.available = p.stock > 0
	return p, nil
}

// RestoreProduct rebuilds a persisted product and rejects rows that break the
// stock/availability invariant.
func RestoreProduct(
	id kernel.UUID,
	merchantID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	stock int,
	available bool,
) (*Product, error) {
	p, err := NewProduct(id, merchantID, name, unitPrice, stock)
	if err != nil {
		return nil, err
	}

	if available && stock == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("available",
			errors.New("a product without stock cannot be available"))
	}

	p.available = available
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) MerchantID() kernel.UUID {
	return p.merchantID
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

func (p *Product) Stock() int {
	return p.stock
}

func (p *Product) IsAvailable() bool {
	return p.available
}

// BelongsTo reports whether the product is sold by the given merchant.
func (p *Product) BelongsTo(merchantID kernel.UUID) bool {
	return p.merchantID.IsEqual(merchantID)
}

// ChangePrice affects future orders only; existing order lines keep their snapshot.
func (p *Product) ChangePrice(price kernel.Money) {
	p.unitPrice = price
}

// ChangeAvailability toggles the manual availability flag.
func (p *Product) ChangeAvailability(available bool) error {
	if available && p.stock == 0 {
		return errs.NewValueIsInvalidErrorWithCause("available",
			fmt.Errorf("product %s has no stock", p.id))
	}

	p.available = available
	return nil
}

// CanReserve reports an OutOfStockError when fewer than quantity units remain.
func (p *Product) CanReserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "+inf")
	}
	if p.stock < quantity {
		return NewOutOfStockError(p.id, p.stock, quantity)
	}
	return nil
}

// Reserve takes quantity units out of stock and marks the product unavailable
// once the last unit is gone.
func (p *Product) Reserve(quantity int) error {
	if err := p.CanReserve(quantity); err != nil {
		return err
	}

	p.stock -= quantity
	if p.stock == 0 {
		p.available = false
	}
	return nil
}

// Release puts quantity units back and marks the product available again.
func (p *Product) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "+inf")
	}

	p.stock += quantity
	p.available = true
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("merchantID", err)
	}
	p.merchantID = merchantID
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, "+inf")
	}
	p.stock = stock
	return nil
}
