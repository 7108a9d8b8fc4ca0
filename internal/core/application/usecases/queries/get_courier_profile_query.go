package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetCourierProfileQueryIsNotConstructed = errors.New(
	"GetCourierProfileQuery must be created via NewGetCourierProfileQuery",
)

type GetCourierProfileQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCourierProfileQuery(userID kernel.UUID) (GetCourierProfileQuery, error) {
	if err := required("userID", userID); err != nil {
		return GetCourierProfileQuery{}, err
	}
	return GetCourierProfileQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCourierProfileQuery) UserID() kernel.UUID {
	return q.userID
}

func (q GetCourierProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierProfileQueryIsNotConstructed)
}

type CourierView struct {
	ID                  kernel.UUID
	UserID              kernel.UUID
	Available           bool
	CompletedDeliveries int
	Location            *kernel.Location
}
