package order

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyOrder            = errors.New("order has no lines")
	ErrInvalidTransition     = errors.New("invalid transition")
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder or RestoreOrder")
)

// InvalidTransitionError is a state-machine guard violation.
type InvalidTransitionError struct {
	From   Status
	To     Status
	Reason string
}

func NewInvalidTransitionError(from, to Status, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Reason: reason}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s: %s", ErrInvalidTransition, e.From, e.To, e.Reason)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
