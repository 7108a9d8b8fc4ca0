package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetCourierLocationQueryIsNotConstructed = errors.New(
	"GetCourierLocationQuery must be created via NewGetCourierLocationQuery",
)

// GetCourierLocationQuery reads where the courier of an order was last seen,
// on behalf of someone taking part in the order.
type GetCourierLocationQuery struct {
	orderID kernel.UUID
	userID  kernel.UUID
	role    order.Role

	guard guard.ConstructorGuard
}

func NewGetCourierLocationQuery(orderID, userID kernel.UUID, role order.Role) (GetCourierLocationQuery, error) {
	if err := errors.Join(
		required("orderID", orderID),
		required("userID", userID),
		knownRole(role),
	); err != nil {
		return GetCourierLocationQuery{}, err
	}

	return GetCourierLocationQuery{
		orderID: orderID,
		userID:  userID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetCourierLocationQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetCourierLocationQuery) UserID() kernel.UUID {
	return q.userID
}

func (q GetCourierLocationQuery) Role() order.Role {
	return q.role
}

func (q GetCourierLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierLocationQueryIsNotConstructed)
}

type CourierLocationView struct {
	OrderID   kernel.UUID
	CourierID kernel.UUID
	Location  kernel.Location
}
