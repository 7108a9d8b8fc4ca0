package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery")

// GetOrderQuery reads one order on behalf of an authenticated user.
type GetOrderQuery struct {
	orderID kernel.UUID
	userID  kernel.UUID
	role    order.Role

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID, userID kernel.UUID, role order.Role) (GetOrderQuery, error) {
	if err := errors.Join(
		required("orderID", orderID),
		required("userID", userID),
		knownRole(role),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		userID:  userID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) UserID() kernel.UUID {
	return q.userID
}

func (q GetOrderQuery) Role() order.Role {
	return q.role
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func required(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func knownRole(role order.Role) error {
	if role == order.RoleUnknown {
		return errs.NewValueIsRequiredError("role")
	}
	return nil
}
