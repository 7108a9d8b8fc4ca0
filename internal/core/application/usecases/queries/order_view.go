// Package queries contains the read side of the marketplace. Query handlers
// read straight from the database with SQL and return flat views; they never
// load aggregates or take locks.
package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is an order as its parties see it.
type OrderView struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	MerchantID    kernel.UUID
	CourierID     *kernel.UUID
	AddressID     *kernel.UUID
	Status        order.Status
	PaymentMethod order.PaymentMethod
	Notes         string
	Subtotal      kernel.Money
	DeliveryFee   kernel.Money
	Total         kernel.Money
	Timestamps    order.Timestamps
	Lines         []OrderLineView
}

type OrderLineView struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
	Subtotal    kernel.Money
}

const orderColumns = `
	o.id, o.customer_id, o.merchant_id, o.courier_id, o.address_id,
	o.status, o.payment_method, o.notes, o.subtotal, o.delivery_fee, o.total,
	o.created_at, o.confirmed_at, o.preparing_at, o.ready_at,
	o.picked_up_at, o.delivered_at, o.received_at, o.cancelled_at`

func scanOrders(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)
	for rows.Next() {
		var (
			view                         OrderView
			id, customerID, merchantID   uuid.UUID
			courierID, addressID         uuid.NullUUID
			status                       int
			paymentMethod                string
			subtotal, deliveryFee, total decimal.Decimal
			ts                           order.Timestamps
		)

		if err := rows.Scan(
			&id, &customerID, &merchantID, &courierID, &addressID,
			&status, &paymentMethod, &view.Notes, &subtotal, &deliveryFee, &total,
			&ts.CreatedAt, &ts.ConfirmedAt, &ts.PreparingAt, &ts.ReadyAt,
			&ts.PickedUpAt, &ts.DeliveredAt, &ts.ReceivedAt, &ts.CancelledAt,
		); err != nil {
			return nil, err
		}

		var err error
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if view.MerchantID, err = kernel.UUIDFromBytes(merchantID[:]); err != nil {
			return nil, err
		}
		if view.CourierID, err = nullableID(courierID); err != nil {
			return nil, err
		}
		if view.AddressID, err = nullableID(addressID); err != nil {
			return nil, err
		}
		if view.Subtotal, err = kernel.NewMoney(subtotal); err != nil {
			return nil, err
		}
		if view.DeliveryFee, err = kernel.NewMoney(deliveryFee); err != nil {
			return nil, err
		}
		if view.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}

		view.Status = order.Status(status)
		view.PaymentMethod = order.PaymentMethod(paymentMethod)
		view.Timestamps = ts
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

// attachLines loads the lines of every view in one query.
func attachLines(ctx context.Context, db *gorm.DB, views []OrderView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(views))
	index := make(map[uuid.UUID]int, len(views))
	for i, view := range views {
		ids = append(ids, view.ID.Bytes())
		index[view.ID.Bytes()] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			l.order_id,
			l.product_id,
			COALESCE(p.name, ''),
			l.quantity,
			l.unit_price,
			l.subtotal
		FROM order_lines l
		LEFT JOIN products p ON p.id = l.product_id
		WHERE l.order_id IN ?
		ORDER BY l.order_id, l.position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line                OrderLineView
			orderID, productID  uuid.UUID
			unitPrice, subtotal decimal.Decimal
		)
		if err = rows.Scan(&orderID, &productID, &line.ProductName, &line.Quantity, &unitPrice, &subtotal); err != nil {
			return err
		}

		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return err
		}
		if line.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return err
		}
		if line.Subtotal, err = kernel.NewMoney(subtotal); err != nil {
			return err
		}

		i := index[orderID]
		views[i].Lines = append(views[i].Lines, line)
	}

	return rows.Err()
}

func nullableID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil // absent reference
	}
	parsed, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
