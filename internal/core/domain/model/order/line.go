package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Line is an immutable order line. The unit price is a snapshot taken at
// reservation time, so later catalog price changes never reach it.
type Line struct {
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money
	subtotal  kernel.Money
}

func NewLine(productID kernel.UUID, quantity int, unitPrice kernel.Money) (Line, error) {
	var errList []error
	if err := productID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("productID", err))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "+inf"))
	}
	if err := errors.Join(errList...); err != nil {
		return Line{}, err
	}

	return Line{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
		subtotal:  unitPrice.Times(quantity),
	}, nil
}

func (l Line) ProductID() kernel.UUID {
	return l.productID
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l Line) Subtotal() kernel.Money {
	return l.subtotal
}
