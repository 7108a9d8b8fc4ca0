// Package courierrepo maps courier profiles to the couriers table.
package courierrepo

import (
	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO stores one profile per user. Location columns are both null
// until the courier first reports a position.
type CourierDTO struct {
	ID                  uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null"`
	Available           bool        `gorm:"not null;index"`
	CompletedDeliveries int         `gorm:"not null;default:0"`
	Location            LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

type LocationDTO struct {
	Latitude  *float64 `gorm:"type:double precision"`
	Longitude *float64 `gorm:"type:double precision"`
}

func fromDomain(c *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:                  c.ID().Bytes(),
		UserID:              c.UserID().Bytes(),
		Available:           c.IsAvailable(),
		CompletedDeliveries: c.CompletedDeliveries(),
	}

	if loc := c.Location(); loc != nil {
		lat, lng := loc.Latitude(), loc.Longitude()
		dto.Location.Latitude = &lat
		dto.Location.Longitude = &lng
	}

	return dto
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Location.Latitude != nil && dto.Location.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Location.Latitude, *dto.Location.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return courier.RestoreCourier(id, userID, dto.Available, dto.CompletedDeliveries, location)
}
