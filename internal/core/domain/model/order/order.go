package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Timestamps records when the order entered each state. Only CreatedAt is
// always set.
type Timestamps struct {
	CreatedAt   time.Time
	ConfirmedAt *time.Time
	PreparingAt *time.Time
	ReadyAt     *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	ReceivedAt  *time.Time
	CancelledAt *time.Time
}

// Order is the aggregate root of a purchase: its lines, totals and the single
// status field that drives fulfillment.
//
// Invariants:
//   - at least one line
//   - subtotal is the sum of line subtotals
//   - total is subtotal plus delivery fee
//   - a courier is assigned exactly when the status requires one
//
// Status changes only through Apply.
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	merchantID    kernel.UUID
	courierID     *kernel.UUID
	addressID     *kernel.UUID
	lines         []Line
	subtotal      kernel.Money
	deliveryFee   kernel.Money
	total         kernel.Money
	paymentMethod PaymentMethod
	notes         string
	status        Status
	timestamps    Timestamps
	guard         guard.ConstructorGuard
}

// NewOrder creates a pending order with no courier and a zero delivery fee.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	merchantID kernel.UUID,
	addressID *kernel.UUID,
	lines []Line,
	paymentMethod PaymentMethod,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		notes:         notes,
		addressID:     addressID,
		paymentMethod: paymentMethod,
		timestamps:    Timestamps{CreatedAt: createdAt},
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setParty("customerID", &o.customerID, customerID),
		o.setParty("merchantID", &o.merchantID, merchantID),
		o.setLines(lines),
		paymentMethod.Validate(),
	); err != nil {
		return nil, err
	}

	o.total = o.subtotal
	return o, nil
}

// Snapshot is the persisted shape of an order used by RestoreOrder.
type Snapshot struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	MerchantID    kernel.UUID
	CourierID     *kernel.UUID
	AddressID     *kernel.UUID
	Lines         []Line
	Subtotal      kernel.Money
	DeliveryFee   kernel.Money
	Total         kernel.Money
	PaymentMethod PaymentMethod
	Notes         string
	Status        Status
	Timestamps    Timestamps
}

// RestoreOrder rebuilds a persisted order and rejects any snapshot that
// breaks an aggregate invariant.
func RestoreOrder(s Snapshot) (*Order, error) {
	o, err := NewOrder(s.ID, s.CustomerID, s.MerchantID, s.AddressID, s.Lines, s.PaymentMethod, s.Notes,
		s.Timestamps.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		s.Status.Validate(),
		s.Status.ValidateCanHaveCourier(s.CourierID != nil),
	); err != nil {
		return nil, err
	}

	if !o.subtotal.IsEqual(s.Subtotal) {
		return nil, errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("%s does not match lines sum %s", s.Subtotal, o.subtotal))
	}
	if expected := s.Subtotal.Add(s.DeliveryFee); !expected.IsEqual(s.Total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s does not match subtotal plus fee %s", s.Total, expected))
	}

	o.courierID = s.CourierID
	o.deliveryFee = s.DeliveryFee
	o.total = s.Total
	o.status = s.Status
	o.timestamps = s.Timestamps
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) MerchantID() kernel.UUID {
	return o.merchantID
}

// Courier returns the assigned courier profile ID, or nil when unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

func (o *Order) AddressID() *kernel.UUID {
	return o.addressID
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Timestamps() Timestamps {
	return o.timestamps
}

// IsVisibleTo reports whether the actor is a party to the order: its customer,
// its merchant, or its assigned courier.
func (o *Order) IsVisibleTo(actor Actor) bool {
	switch actor.Role() {
	case RoleCustomer:
		return o.customerID.IsEqual(actor.ID())
	case RoleMerchant:
		return o.merchantID.IsEqual(actor.ID())
	case RoleCourier:
		return o.isAssignedTo(actor.ID())
	case RoleUnknown:
		return false
	default:
		return false
	}
}

func (o *Order) isAssignedTo(courierID kernel.UUID) bool {
	return o.courierID != nil && o.courierID.IsEqual(courierID)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParty(name string, field *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*field = id
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrEmptyOrder
	}

	subtotal := kernel.ZeroMoney
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	o.subtotal = subtotal
	return nil
}
