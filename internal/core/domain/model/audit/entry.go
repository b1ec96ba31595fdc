// Package audit models the append-only trail of scheduling decisions.
// Entries are emitted by the domain services and written by the application layer.
package audit

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via a constructor")

// Kind classifies an audit entry.
type Kind int

const (
	KindUnknown Kind = iota
	Assigned
	PlacedOnHold
	Deferred
	MarkedUnassignable
	Released
	StatusChanged
	RebalanceCompleted
	RebalanceFailed
)

var kindNames = map[Kind]string{
	Assigned:           "assigned",
	PlacedOnHold:       "placed-on-hold",
	Deferred:           "deferred",
	MarkedUnassignable: "marked-unassignable",
	Released:           "released",
	StatusChanged:      "status-changed",
	RebalanceCompleted: "rebalance-completed",
	RebalanceFailed:    "rebalance-failed",
}

func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid audit kind", s))
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindFor picks the entry kind describing an order moving to status to.
func KindFor(from, to order.Status) Kind {
	switch to {
	case order.Assigned:
		if from == order.InTransit || from == order.OnHold {
			return StatusChanged
		}
		return Assigned
	case order.OnHold:
		return PlacedOnHold
	case order.Pending:
		if from == order.Assigned {
			return Released
		}
		return Deferred
	case order.Unassignable:
		return MarkedUnassignable
	default:
		return StatusChanged
	}
}

// Entry is one immutable audit record. Fleet-wide entries have no order.
type Entry struct {
	id          kernel.UUID
	orderID     *kernel.UUID
	customID    string
	kind        Kind
	from        order.Status
	to          order.Status
	vehicleName string
	reason      string
	occurredAt  time.Time
	guard       guard.ConstructorGuard
}

// OrderChange describes one order transition to record.
type OrderChange struct {
	OrderID     kernel.UUID
	CustomID    string
	From        order.Status
	To          order.Status
	VehicleName string
	Reason      string
}

// NewOrderEntry records a transition of one order.
func NewOrderEntry(change OrderChange, at time.Time) (Entry, error) {
	if err := errors.Join(
		change.OrderID.Validate(),
		change.To.Validate(),
	); err != nil {
		return Entry{}, err
	}

	orderID := change.OrderID
	return Entry{
		id:          kernel.NewUUID(),
		orderID:     &orderID,
		customID:    change.CustomID,
		kind:        KindFor(change.From, change.To),
		from:        change.From,
		to:          change.To,
		vehicleName: change.VehicleName,
		reason:      change.Reason,
		occurredAt:  at.UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// NewFleetEntry records a fleet-wide event such as a rebalance outcome.
func NewFleetEntry(kind Kind, reason string, at time.Time) Entry {
	return Entry{
		id:         kernel.NewUUID(),
		kind:       kind,
		reason:     reason,
		occurredAt: at.UTC(),
		guard:      guard.NewConstructorGuard(),
	}
}

// RestoreEntry rebuilds an entry loaded from storage.
func RestoreEntry(
	id kernel.UUID,
	orderID *kernel.UUID,
	customID string,
	kind Kind,
	from, to order.Status,
	vehicleName, reason string,
	occurredAt time.Time,
) (Entry, error) {
	if err := id.Validate(); err != nil {
		return Entry{}, err
	}
	if _, ok := kindNames[kind]; !ok {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid audit kind", kind))
	}
	var oid *kernel.UUID
	if orderID != nil {
		v := *orderID
		oid = &v
	}
	return Entry{
		id:          id,
		orderID:     oid,
		customID:    customID,
		kind:        kind,
		from:        from,
		to:          to,
		vehicleName: vehicleName,
		reason:      reason,
		occurredAt:  occurredAt.UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e Entry) ID() kernel.UUID       { return e.id }
func (e Entry) CustomID() string      { return e.customID }
func (e Entry) Kind() Kind            { return e.kind }
func (e Entry) From() order.Status    { return e.from }
func (e Entry) To() order.Status      { return e.to }
func (e Entry) VehicleName() string   { return e.vehicleName }
func (e Entry) Reason() string        { return e.reason }
func (e Entry) OccurredAt() time.Time { return e.occurredAt }

// OrderID returns the order the entry is about, nil for fleet-wide entries.
func (e Entry) OrderID() *kernel.UUID {
	if e.orderID == nil {
		return nil
	}
	v := *e.orderID
	return &v
}

// Message renders the entry for people reading the trail.
func (e Entry) Message() string {
	if e.orderID == nil {
		if e.reason == "" {
			return e.kind.String()
		}
		return fmt.Sprintf("%s: %s", e.kind, e.reason)
	}
	msg := fmt.Sprintf("%s %s -> %s", e.customID, e.from, e.to)
	if e.vehicleName != "" {
		msg += " on " + e.vehicleName
	}
	if e.reason != "" {
		msg += " (" + e.reason + ")"
	}
	return msg
}
