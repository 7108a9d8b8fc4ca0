package courier

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")

// Courier is the delivery profile of a user with the courier role.
//
// Business rules:
//   - a courier belongs to exactly one user
//   - only available couriers may claim ready orders
//   - the completed-deliveries counter only grows
//   - location is the last reported position and may be unknown
type Courier struct {
	id                  kernel.UUID
	userID              kernel.UUID
	available           bool
	completedDeliveries int
	location            *kernel.Location
	guard               guard.ConstructorGuard
}

// NewCourier registers an available courier with no deliveries and no known location.
func NewCourier(id kernel.UUID, userID kernel.UUID) (*Courier, error) {
	courier := &Courier{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier rebuilds a courier from persistence.
func RestoreCourier(
	id kernel.UUID,
	userID kernel.UUID,
	available bool,
	completedDeliveries int,
	location *kernel.Location,
) (*Courier, error) {
	courier, err := NewCourier(id, userID)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		courier.setCompletedDeliveries(completedDeliveries),
		courier.setLocation(location),
	); err != nil {
		return nil, err
	}

	courier.available = available
	return courier, nil
}

func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) UserID() kernel.UUID {
	return c.userID
}

func (c *Courier) IsAvailable() bool {
	return c.available
}

func (c *Courier) CompletedDeliveries() int {
	return c.completedDeliveries
}

// Location returns the last reported position, or nil when none was reported.
func (c *Courier) Location() *kernel.Location {
	return c.location
}

func (c *Courier) ChangeAvailability(available bool) {
	c.available = available
}

func (c *Courier) UpdateLocation(location kernel.Location) error {
	return c.setLocation(&location)
}

// CompleteDelivery is called once per order that reaches delivered.
func (c *Courier) CompleteDelivery() {
	c.completedDeliveries++
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	c.userID = userID
	return nil
}

func (c *Courier) setCompletedDeliveries(count int) error {
	if count < 0 {
		return errs.NewValueIsOutOfRangeError("completedDeliveries", count, 0, "+inf")
	}
	c.completedDeliveries = count
	return nil
}

func (c *Courier) setLocation(location *kernel.Location) error {
	if location == nil {
		c.location = nil
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	c.location = &loc
	return nil
}
