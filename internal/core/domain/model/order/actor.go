package order

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Role decides which transitions an actor may request.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleMerchant
	RoleCourier
)

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleMerchant:
		return "merchant"
	case RoleCourier:
		return "courier"
	case RoleUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

func ParseRole(s string) (Role, error) {
	for _, r := range []Role{RoleCustomer, RoleMerchant, RoleCourier} {
		if r.String() == s {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Actor is the caller of a transition as the state machine sees it.
// For couriers the ID is the courier profile ID, not the user ID, and
// Available carries the profile's availability at the time of the call.
type Actor struct {
	id        kernel.UUID
	role      Role
	available bool
}

func NewCustomerActor(customerID kernel.UUID) Actor {
	return Actor{id: customerID, role: RoleCustomer}
}

func NewMerchantActor(merchantID kernel.UUID) Actor {
	return Actor{id: merchantID, role: RoleMerchant}
}

func NewCourierActor(courierID kernel.UUID, available bool) Actor {
	return Actor{id: courierID, role: RoleCourier, available: available}
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsAvailable() bool {
	return a.available
}
