package order

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Transition names a guarded state change.
type Transition string

const (
	Confirm        Transition = "confirm"
	StartPreparing Transition = "start_preparing"
	MarkReady      Transition = "mark_ready"
	Accept         Transition = "accept"
	PickUp         Transition = "pick_up"
	Deliver        Transition = "deliver"
	ConfirmReceipt Transition = "confirm_receipt"
	Cancel         Transition = "cancel"
)

type rule struct {
	transition Transition
	role       Role
	from       []Status
}

// rules is keyed by target status; each target is reached by exactly one transition.
var rules = map[Status]rule{
	Confirmed:          {transition: Confirm, role: RoleMerchant, from: []Status{Pending}},
	Preparing:          {transition: StartPreparing, role: RoleMerchant, from: []Status{Confirmed}},
	Ready:              {transition: MarkReady, role: RoleMerchant, from: []Status{Preparing}},
	InTransit:          {transition: Accept, role: RoleCourier, from: []Status{Ready}},
	PickedUp:           {transition: PickUp, role: RoleCourier, from: []Status{Ready, InTransit}},
	Delivered:          {transition: Deliver, role: RoleCourier, from: []Status{PickedUp, InTransit}},
	ReceivedByCustomer: {transition: ConfirmReceipt, role: RoleCustomer, from: []Status{Delivered}},
	Cancelled:          {transition: Cancel, role: RoleCustomer, from: []Status{Pending}},
}

// TransitionTo returns the transition that leads to the target status.
func TransitionTo(to Status) (Transition, bool) {
	r, ok := rules[to]
	return r.transition, ok
}

// Payload carries caller-supplied data for transitions that need it.
// DeliveryFee is required by Accept and optional when a courier claims a
// ready order through PickUp.
type Payload struct {
	DeliveryFee *float64
}

// Apply moves the order to the target status on behalf of actor.
//
// Guards run in this order and the first failure wins:
//  1. terminal current state: InvalidTransitionError
//  2. role not allowed for the transition: ForbiddenError
//  3. actor is not the owning party, not the assigned courier, or is an
//     unavailable courier claiming the order: ForbiddenError
//  4. current state is not a legal source, or a courier is already assigned:
//     InvalidTransitionError
//  5. invalid delivery fee: ValueIsInvalidError / ValueIsRequiredError
//
// On failure the order is left untouched.
func (o *Order) Apply(actor Actor, to Status, payload Payload, now time.Time) (Transition, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}

	if o.status.IsTerminal() {
		return "", NewInvalidTransitionError(o.status, to, fmt.Sprintf("%s is a terminal state", o.status))
	}

	r, ok := rules[to]
	if !ok {
		return "", NewInvalidTransitionError(o.status, to, fmt.Sprintf("no transition leads to %s", to))
	}

	if actor.Role() != r.role {
		return "", errs.NewForbiddenError(string(r.transition),
			fmt.Sprintf("role %s cannot perform it", actor.Role()))
	}

	claim := o.isClaim(r.transition)
	if err := o.authorize(actor, r.transition, claim); err != nil {
		return "", err
	}

	if !slices.Contains(r.from, o.status) {
		reason := "expected " + joinStatuses(r.from)
		if r.transition == Accept && o.courierID != nil {
			reason = "courier already assigned"
		}
		return "", NewInvalidTransitionError(o.status, to, reason)
	}

	fee := kernel.ZeroMoney
	if claim {
		var err error
		if fee, err = parseFee(payload.DeliveryFee, r.transition == Accept); err != nil {
			return "", err
		}
	}

	o.apply(r.transition, actor, fee, now)
	o.status = to
	return r.transition, nil
}

// isClaim reports whether the transition assigns a courier: Accept always,
// PickUp only while the order is still unassigned.
func (o *Order) isClaim(t Transition) bool {
	return t == Accept || (t == PickUp && o.courierID == nil)
}

func (o *Order) authorize(actor Actor, t Transition, claim bool) error {
	action := string(t)
	switch actor.Role() {
	case RoleMerchant:
		if !o.merchantID.IsEqual(actor.ID()) {
			return errs.NewForbiddenError(action, "order belongs to another merchant")
		}
	case RoleCustomer:
		if !o.customerID.IsEqual(actor.ID()) {
			return errs.NewForbiddenError(action, "order belongs to another customer")
		}
	case RoleCourier:
		if claim {
			if !actor.IsAvailable() {
				return errs.NewForbiddenError(action, "courier is not available")
			}
			return nil
		}
		if !o.isAssignedTo(actor.ID()) {
			return errs.NewForbiddenError(action, "courier is not assigned to the order")
		}
	case RoleUnknown:
		return errs.NewForbiddenError(action, "unknown role")
	}
	return nil
}

func (o *Order) apply(t Transition, actor Actor, fee kernel.Money, now time.Time) {
	stamp := now
	switch t {
	case Confirm:
		o.timestamps.ConfirmedAt = &stamp
	case StartPreparing:
		o.timestamps.PreparingAt = &stamp
	case MarkReady:
		o.timestamps.ReadyAt = &stamp
	case Accept, PickUp:
		if o.courierID == nil {
			courierID := actor.ID()
			o.courierID = &courierID
			o.deliveryFee = fee
			o.total = o.subtotal.Add(fee)
		}
		o.timestamps.PickedUpAt = &stamp
	case Deliver:
		o.timestamps.DeliveredAt = &stamp
	case ConfirmReceipt:
		o.timestamps.ReceivedAt = &stamp
	case Cancel:
		o.timestamps.CancelledAt = &stamp
	}
}

func parseFee(fee *float64, required bool) (kernel.Money, error) {
	if fee == nil {
		if required {
			return kernel.Money{}, errs.NewValueIsRequiredError("deliveryFee")
		}
		return kernel.ZeroMoney, nil
	}

	m, err := kernel.NewMoneyFromFloat(*fee)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("deliveryFee", err)
	}
	return m, nil
}

func joinStatuses(statuses []Status) string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return strings.Join(names, " or ")
}
