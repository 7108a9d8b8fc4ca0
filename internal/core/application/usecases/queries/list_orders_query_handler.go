package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the orders of the query's scope with their lines. A courier
// user without a profile has no orders.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).Table("orders o").Select(orderColumns)

	switch query.Scope() {
	case ScopeCustomer:
		stmt = stmt.Where("o.customer_id = ?", query.UserID().Bytes()).Order("o.created_at DESC")
	case ScopeMerchant:
		stmt = stmt.Where("o.merchant_id = ?", query.UserID().Bytes()).Order("o.created_at DESC")
	case ScopeCourier:
		courierID, err := courierIDOf(ctx, h.db, query.UserID())
		if errs.IsObjectNotFound(err, "courier") {
			return []OrderView{}, nil
		}
		if err != nil {
			return nil, err
		}
		stmt = stmt.Where("o.courier_id = ?", courierID.Bytes()).Order("o.created_at DESC")
	case ScopeReadyPool:
		stmt = stmt.Where("o.status = ? AND o.courier_id IS NULL", int(order.Ready)).Order("o.ready_at")
	}

	if status := query.Status(); status != nil {
		stmt = stmt.Where("o.status = ?", int(*status))
	}

	rows, err := stmt.Order("o.id").Limit(query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}

	if err = attachLines(ctx, h.db, views); err != nil {
		return nil, err
	}
	return views, nil
}
