package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler returns an order to its customer, its merchant or its
// assigned courier. Anyone else gets a ForbiddenError.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	views, err := scanOrders(rows)
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	view := views[0]

	visible, err := h.isVisible(ctx, view, query)
	if err != nil {
		return OrderView{}, err
	}
	if !visible {
		return OrderView{}, errs.NewForbiddenError("get_order", "order belongs to other parties")
	}

	if err = attachLines(ctx, h.db, views); err != nil {
		return OrderView{}, err
	}
	return views[0], nil
}

func (h GetOrderQueryHandler) isVisible(ctx context.Context, view OrderView, query GetOrderQuery) (bool, error) {
	parties := orderParties{CustomerID: view.CustomerID, MerchantID: view.MerchantID, CourierID: view.CourierID}
	return parties.include(ctx, h.db, query.UserID(), query.Role())
}

// orderParties are the users an order is visible to: its customer, its
// merchant and the courier assigned to it.
type orderParties struct {
	CustomerID kernel.UUID
	MerchantID kernel.UUID
	CourierID  *kernel.UUID
}

func (p orderParties) include(ctx context.Context, db *gorm.DB, userID kernel.UUID, role order.Role) (bool, error) {
	switch role {
	case order.RoleCustomer:
		return p.CustomerID.IsEqual(userID), nil
	case order.RoleMerchant:
		return p.MerchantID.IsEqual(userID), nil
	case order.RoleCourier:
		if p.CourierID == nil {
			return false, nil
		}
		courierID, err := courierIDOf(ctx, db, userID)
		if err != nil {
			if errs.IsObjectNotFound(err, "courier") {
				return false, nil
			}
			return false, err
		}
		return p.CourierID.IsEqual(courierID), nil
	case order.RoleUnknown:
	}
	return false, nil
}

// courierIDOf resolves the courier profile of a user.
func courierIDOf(ctx context.Context, db *gorm.DB, userID kernel.UUID) (kernel.UUID, error) {
	var id uuid.UUID
	err := db.WithContext(ctx).
		Raw(`SELECT id FROM couriers WHERE user_id = ?`, userID.Bytes()).
		Row().
		Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("courier", userID.String())
		}
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(id[:])
}
