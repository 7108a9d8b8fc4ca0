package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the single closed set of states an order can be in.
//
//	Pending   ──> Confirmed ──> Preparing ──> Ready
//	Ready     ──> InTransit | PickedUp
//	InTransit ──> PickedUp | Delivered
//	PickedUp  ──> Delivered ──> ReceivedByCustomer
//	Pending   ──> Cancelled
//
// ReceivedByCustomer and Cancelled are terminal.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	Ready
	InTransit
	PickedUp
	Delivered
	ReceivedByCustomer
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "unknown",
		Pending:            "pending",
		Confirmed:          "confirmed",
		Preparing:          "preparing",
		Ready:              "ready",
		InTransit:          "in_transit",
		PickedUp:           "picked_up",
		Delivered:          "delivered",
		ReceivedByCustomer: "received_by_customer",
		Cancelled:          "cancelled",
	}
}

// ParseStatus maps the wire name of a status back to its value.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == ReceivedByCustomer || s == Cancelled
}

// RequiresCourier reports whether an order in s must have a courier, and
// conversely whether an order outside these states must not have one.
func (s Status) RequiresCourier() bool {
	switch s { //nolint:exhaustive // remaining states carry no courier
	case InTransit, PickedUp, Delivered, ReceivedByCustomer:
		return true
	default:
		return false
	}
}

// ValidateCanHaveCourier checks the status/courier pairing of a persisted order.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && !s.RequiresCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a courier", s),
		)
	}

	if !courier && s.RequiresCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}

	return nil
}
