package product

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrOutOfStock = errors.New("out of stock")

// OutOfStockError carries what was left and what was asked for so callers can
// show an actionable message.
type OutOfStockError struct {
	ProductID kernel.UUID
	Available int
	Requested int
}

func NewOutOfStockError(productID kernel.UUID, available, requested int) *OutOfStockError {
	return &OutOfStockError{ProductID: productID, Available: available, Requested: requested}
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("%s: product %s has %d, requested %d",
		ErrOutOfStock, e.ProductID, e.Available, e.Requested)
}

func (e *OutOfStockError) Unwrap() error {
	return ErrOutOfStock
}
