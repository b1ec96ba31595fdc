package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAlreadyExists        = errors.New("object already exists")
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	ErrTransitionNotAllowed = errors.New("transition is not allowed")
	ErrRebalanceValidation  = errors.New("rebalance validation failed")
)

// AlreadyExistsError is returned when a unique business key is already taken,
// e.g. a purchase order custom ID or a vehicle name.
type AlreadyExistsError struct {
	ParamName string
	Value     any
}

func NewAlreadyExistsError(paramName string, value any) *AlreadyExistsError {
	return &AlreadyExistsError{
		ParamName: paramName,
		Value:     value,
	}
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: %s %v", ErrAlreadyExists, e.ParamName, sanitize(e.Value))
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// CapacityExceededError is returned when an order is larger than every vehicle of the fleet.
type CapacityExceededError struct {
	Load        int64
	MaxCapacity int64
}

func NewCapacityExceededError(load, maxCapacity int64) *CapacityExceededError {
	return &CapacityExceededError{
		Load:        load,
		MaxCapacity: maxCapacity,
	}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: load %d is above the largest vehicle capacity %d",
		ErrCapacityExceeded, e.Load, e.MaxCapacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// TransitionNotAllowedError is returned by the status state machines and the driver status guards.
type TransitionNotAllowedError struct {
	Subject string
	From    string
	To      string
	Reason  string
}

func NewTransitionNotAllowedError(subject, from, to, reason string) *TransitionNotAllowedError {
	return &TransitionNotAllowedError{
		Subject: subject,
		From:    from,
		To:      to,
		Reason:  reason,
	}
}

func (e *TransitionNotAllowedError) Error() string {
	msg := fmt.Sprintf("%s: %s %s -> %s", ErrTransitionNotAllowed, e.Subject, e.From, e.To)
	if e.Reason != "" {
		return msg + " (" + e.Reason + ")"
	}
	return msg
}

func (e *TransitionNotAllowedError) Unwrap() error {
	return ErrTransitionNotAllowed
}

// RebalanceValidationError carries every fleet invariant broken by a computed rebalance.
// The computed result must be discarded when it is returned.
type RebalanceValidationError struct {
	Violations []string
}

func NewRebalanceValidationError(violations []string) *RebalanceValidationError {
	out := make([]string, len(violations))
	copy(out, violations)
	return &RebalanceValidationError{Violations: out}
}

func (e *RebalanceValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRebalanceValidation, strings.Join(e.Violations, "; "))
}

func (e *RebalanceValidationError) Unwrap() error {
	return ErrRebalanceValidation
}
