// Package commands contains the write side of the marketplace. Every command
// is validated on construction, runs inside one unit of work, and publishes
// its events only after the unit of work has committed.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each group of handlers touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW spans everything an order lifecycle step may lock: the order
	// row, the product rows of the inventory ledger and the courier row.
	OrderUoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
		CourierRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
