package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierLocationQueryHandler lets the parties of an order track its
// courier. An order without a courier, or whose courier never reported a
// position, has no location to return.
type GetCourierLocationQueryHandler struct {
	db *gorm.DB
}

func NewGetCourierLocationQueryHandler(db *gorm.DB) GetCourierLocationQueryHandler {
	return GetCourierLocationQueryHandler{db: db}
}

func (h GetCourierLocationQueryHandler) Handle(
	ctx context.Context,
	query GetCourierLocationQuery,
) (CourierLocationView, error) {
	if err := query.Validate(); err != nil {
		return CourierLocationView{}, err
	}

	var (
		customerID, merchantID uuid.UUID
		courierID              uuid.NullUUID
		latitude, longitude    sql.NullFloat64
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT o.customer_id, o.merchant_id, o.courier_id, c.location_latitude, c.location_longitude
		FROM orders o
		LEFT JOIN couriers c ON c.id = o.courier_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row().Scan(&customerID, &merchantID, &courierID, &latitude, &longitude)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CourierLocationView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return CourierLocationView{}, err
	}

	var parties orderParties
	if parties.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return CourierLocationView{}, err
	}
	if parties.MerchantID, err = kernel.UUIDFromBytes(merchantID[:]); err != nil {
		return CourierLocationView{}, err
	}
	if courierID.Valid {
		id, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if idErr != nil {
			return CourierLocationView{}, idErr
		}
		parties.CourierID = &id
	}

	visible, err := parties.include(ctx, h.db, query.UserID(), query.Role())
	if err != nil {
		return CourierLocationView{}, err
	}
	if !visible {
		return CourierLocationView{}, errs.NewForbiddenError("get_courier_location", "order belongs to other parties")
	}

	if parties.CourierID == nil {
		return CourierLocationView{}, errs.NewObjectNotFoundError("courier", query.OrderID().String())
	}
	if !latitude.Valid || !longitude.Valid {
		return CourierLocationView{}, errs.NewObjectNotFoundError("courier_location", parties.CourierID.String())
	}

	location, err := kernel.NewLocation(latitude.Float64, longitude.Float64)
	if err != nil {
		return CourierLocationView{}, err
	}
	return CourierLocationView{
		OrderID:   query.OrderID(),
		CourierID: *parties.CourierID,
		Location:  location,
	}, nil
}
