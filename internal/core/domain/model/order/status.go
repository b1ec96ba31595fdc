package order

import (
	"fmt"
	"slices"

	"dispatch/internal/pkg/errs"
)

// Status represents the assignment state of a purchase order.
//
// State transitions:
//
//	Pending ──> Assigned ──> InTransit ──> Delivered ──> Completed
//	   │ ▲         ▲ │           │
//	   ▼ │         │ └───────────┘ (driver leaves transit)
//	OnHold / Unassignable (assignment or rebalance only)
//
// Every change goes through Transition so that an illegal move fails in one place.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Pending
	Assigned
	OnHold
	Unassignable
	InTransit
	Delivered
	Completed
)

// Trigger names who is asking for a status change.
type Trigger int

const (
	// TriggerAssignment is the single-order placement on creation.
	TriggerAssignment Trigger = iota + 1
	// TriggerRebalance is the full-fleet recomputation.
	TriggerRebalance
	// TriggerDriver covers driver status changes and delivery progress.
	TriggerDriver
	// TriggerAdmin covers dispatcher confirmations such as completion.
	TriggerAdmin
)

var statusNames = map[Status]string{
	Pending:      "pending",
	Assigned:     "assigned",
	OnHold:       "on-hold",
	Unassignable: "unassignable",
	InTransit:    "in-transit",
	Delivered:    "delivered",
	Completed:    "completed",
}

var triggerNames = map[Trigger]string{
	TriggerAssignment: "assignment",
	TriggerRebalance:  "rebalance",
	TriggerDriver:     "driver",
	TriggerAdmin:      "admin",
}

// schedulable are the statuses assignment and rebalancing are allowed to rewrite.
var schedulable = []Status{Pending, Assigned, OnHold, Unassignable}

// transitions is the whole order state machine, keyed by trigger then source status.
var transitions = map[Trigger]map[Status][]Status{
	TriggerAssignment: {
		Pending: {Assigned, OnHold, Pending, Unassignable},
	},
	TriggerRebalance: {
		Pending:      schedulable,
		Assigned:     schedulable,
		OnHold:       schedulable,
		Unassignable: schedulable,
	},
	TriggerDriver: {
		Assigned:  {InTransit},
		InTransit: {Assigned, Delivered},
		OnHold:    {Assigned},
	},
	TriggerAdmin: {
		Delivered: {Completed},
	},
}

// ParseStatus converts the persisted or wire name of a status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsActive reports whether the order still takes part in scheduling.
func (s Status) IsActive() bool {
	return slices.Contains(schedulable, s)
}

// CanCarryVehicle reports whether an order in this status is expected to reference a vehicle.
func (s Status) CanCarryVehicle() bool {
	return s == Assigned || s == InTransit || s == Delivered || s == Completed
}

// Transition returns to when trigger may move an order from s to to.
func (s Status) Transition(to Status, trigger Trigger) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if slices.Contains(transitions[trigger][s], to) {
		return to, nil
	}
	return Unknown, errs.NewTransitionNotAllowedError("order status", s.String(), to.String(),
		fmt.Sprintf("not allowed for %s", trigger))
}

func (t Trigger) String() string {
	if name, ok := triggerNames[t]; ok {
		return name
	}
	return "unknown trigger"
}
