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

type GetCourierProfileQueryHandler struct {
	db *gorm.DB
}

func NewGetCourierProfileQueryHandler(db *gorm.DB) GetCourierProfileQueryHandler {
	return GetCourierProfileQueryHandler{db: db}
}

func (h GetCourierProfileQueryHandler) Handle(ctx context.Context, query GetCourierProfileQuery) (CourierView, error) {
	if err := query.Validate(); err != nil {
		return CourierView{}, err
	}

	var (
		view                CourierView
		id, userID          uuid.UUID
		latitude, longitude sql.NullFloat64
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			available,
			completed_deliveries,
			location_latitude,
			location_longitude
		FROM couriers
		WHERE user_id = ?
	`, query.UserID().Bytes()).Row().Scan(
		&id, &userID, &view.Available, &view.CompletedDeliveries, &latitude, &longitude,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CourierView{}, errs.NewObjectNotFoundError("courier", query.UserID().String())
		}
		return CourierView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return CourierView{}, err
	}
	if view.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return CourierView{}, err
	}
	if latitude.Valid && longitude.Valid {
		location, locErr := kernel.NewLocation(latitude.Float64, longitude.Float64)
		if locErr != nil {
			return CourierView{}, locErr
		}
		view.Location = &location
	}
	return view, nil
}
