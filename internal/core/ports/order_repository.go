package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their lines.
type OrderRepository interface {
	// Add stores a new order and its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores the order header. Lines never change after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an ObjectNotFoundError for "order".
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the unit of work ends.
	// Every transition goes through it so that concurrent transitions of the
	// same order are serialized.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllReadyUnassigned returns ready orders nobody has claimed that
	// became ready before readyBefore, oldest first.
	GetAllReadyUnassigned(ctx context.Context, readyBefore time.Time) ([]*order.Order, error)
}
