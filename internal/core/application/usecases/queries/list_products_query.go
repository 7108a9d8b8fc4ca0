package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New("ListProductsQuery must be created via NewListProductsQuery")

// ListProductsQuery lists a merchant's catalog by name.
type ListProductsQuery struct {
	merchantID    kernel.UUID
	availableOnly bool

	guard guard.ConstructorGuard
}

func NewListProductsQuery(merchantID kernel.UUID, availableOnly bool) (ListProductsQuery, error) {
	if err := required("merchantID", merchantID); err != nil {
		return ListProductsQuery{}, err
	}

	return ListProductsQuery{
		merchantID:    merchantID,
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListProductsQuery) MerchantID() kernel.UUID {
	return q.merchantID
}

func (q ListProductsQuery) AvailableOnly() bool {
	return q.availableOnly
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

type ProductView struct {
	ID         kernel.UUID
	MerchantID kernel.UUID
	Name       string
	UnitPrice  kernel.Money
	Stock      int
	Available  bool
}
