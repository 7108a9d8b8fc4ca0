package ports

import (
	"context"

	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"
)

// CourierRepository persists courier profiles. A user has at most one.
type CourierRepository interface {
	Add(ctx context.Context, aggregate *courier.Courier) error
	Update(ctx context.Context, aggregate *courier.Courier) error
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetByUserID returns the profile of a user or an ObjectNotFoundError
	// for "courier".
	GetByUserID(ctx context.Context, userID kernel.UUID) (*courier.Courier, error)

	// GetByUserIDForUpdate is GetByUserID with a row lock.
	GetByUserIDForUpdate(ctx context.Context, userID kernel.UUID) (*courier.Courier, error)

	// GetAllAvailable returns couriers currently accepting orders.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}
