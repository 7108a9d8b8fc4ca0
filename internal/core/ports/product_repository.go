// Package ports defines the contracts between the marketplace core and its
// infrastructure: repositories bound to a unit of work, the event publisher
// and the authenticator.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository persists catalog items.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate row-locks the products with the given IDs until the unit of
	// work ends. Locks are taken in ascending ID order. IDs without a row are
	// skipped, so the result may be shorter than ids.
	GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
