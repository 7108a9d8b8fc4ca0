package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New("ListOrdersQuery must be created via one of the NewList*OrdersQuery constructors")

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// OrderScope selects whose orders a ListOrdersQuery returns.
type OrderScope int

const (
	ScopeCustomer OrderScope = iota + 1
	ScopeMerchant
	ScopeCourier
	ScopeReadyPool
)

// ListOrdersQuery lists orders newest first. The ready pool is listed oldest
// ready first instead, the order couriers should claim them in.
type ListOrdersQuery struct {
	scope  OrderScope
	userID kernel.UUID
	status *order.Status
	limit  int

	guard guard.ConstructorGuard
}

// NewListCustomerOrdersQuery lists the orders a customer placed.
func NewListCustomerOrdersQuery(customerID kernel.UUID, status *order.Status, limit int) (ListOrdersQuery, error) {
	return newListOrdersQuery(ScopeCustomer, customerID, status, limit)
}

// NewListMerchantOrdersQuery lists the orders placed with a merchant.
func NewListMerchantOrdersQuery(merchantID kernel.UUID, status *order.Status, limit int) (ListOrdersQuery, error) {
	return newListOrdersQuery(ScopeMerchant, merchantID, status, limit)
}

// NewListCourierOrdersQuery lists the orders claimed by the courier profile of a user.
func NewListCourierOrdersQuery(userID kernel.UUID, status *order.Status, limit int) (ListOrdersQuery, error) {
	return newListOrdersQuery(ScopeCourier, userID, status, limit)
}

// NewListReadyOrdersQuery lists ready orders nobody has claimed.
func NewListReadyOrdersQuery(limit int) (ListOrdersQuery, error) {
	parsed, err := parseLimit(limit)
	if err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		scope: ScopeReadyPool,
		limit: parsed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func newListOrdersQuery(scope OrderScope, userID kernel.UUID, status *order.Status, limit int) (ListOrdersQuery, error) {
	var statusErr error
	if status != nil {
		statusErr = status.Validate()
	}

	parsed, limitErr := parseLimit(limit)
	if err := errors.Join(
		required("userID", userID),
		statusErr,
		limitErr,
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		scope:  scope,
		userID: userID,
		status: status,
		limit:  parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// parseLimit treats zero as DefaultListLimit.
func parseLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return DefaultListLimit, nil
	case limit < 0 || limit > MaxListLimit:
		return 0, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	default:
		return limit, nil
	}
}

func (q ListOrdersQuery) Scope() OrderScope {
	return q.scope
}

func (q ListOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
