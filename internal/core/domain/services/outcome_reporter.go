package services

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// Transition is one observable change of an order.
type Transition struct {
	OrderID     kernel.UUID
	CustomID    string
	From        order.Status
	To          order.Status
	FromVehicle *kernel.UUID
	ToVehicle   *kernel.UUID
	VehicleName string
	Reason      string
}

// Summary counts the outcome of a rebalance per status.
type Summary struct {
	Assigned     int
	OnHold       int
	Pending      int
	Unassignable int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d assigned, %d on hold, %d pending, %d unassignable",
		s.Assigned, s.OnHold, s.Pending, s.Unassignable)
}

// Report is what the application layer persists and publishes after a change.
type Report struct {
	Transitions []Transition
	Entries     []audit.Entry
	Summary     Summary
}

// OutcomeReporter turns computed outcomes into transitions and audit entries.
// It never writes anything itself.
type OutcomeReporter struct{}

func NewOutcomeReporter() OutcomeReporter {
	return OutcomeReporter{}
}

// Report describes a rebalance result against the order states before it, and
// ends with one RebalanceCompleted entry carrying the summary.
func (r OutcomeReporter) Report(before []order.Snapshot, result RebalanceResult, at time.Time) (Report, error) {
	prev := indexSnapshots(before)
	var rep Report

	for _, d := range result.Decisions {
		switch d.Status {
		case order.Assigned:
			rep.Summary.Assigned++
		case order.OnHold:
			rep.Summary.OnHold++
		case order.Pending:
			rep.Summary.Pending++
		case order.Unassignable:
			rep.Summary.Unassignable++
		default:
		}

		next := order.Snapshot{
			ID:     d.Order.ID(),
			Status: d.Status,
			Reason: d.Reason.String(),
		}
		next.Details.CustomID = d.Order.CustomID()
		name := ""
		if d.Vehicle != nil {
			vid := d.Vehicle.ID()
			next.VehicleID = &vid
			name = d.Vehicle.Name()
		}

		if err := rep.add(prev, next, name, at); err != nil {
			return Report{}, err
		}
	}

	rep.Entries = append(rep.Entries, audit.NewFleetEntry(audit.RebalanceCompleted, rep.Summary.String(), at))
	return rep, nil
}

// ReportChanges compares orders against their earlier snapshots. An order is
// reported when its status, vehicle or reason changed; orders without an earlier
// snapshot are reported as new. vehicleNames resolves vehicle ids for the trail.
func (r OutcomeReporter) ReportChanges(
	before []order.Snapshot,
	after []*order.Order,
	vehicleNames map[kernel.UUID]string,
	at time.Time,
) (Report, error) {
	prev := indexSnapshots(before)
	var rep Report
	for _, o := range after {
		next := o.Snapshot()
		name := ""
		if next.VehicleID != nil {
			name = vehicleNames[*next.VehicleID]
		}
		if err := rep.add(prev, next, name, at); err != nil {
			return Report{}, err
		}
	}
	return rep, nil
}

// ReportFailure records a rejected rebalance. Validation failures list their violations.
func (r OutcomeReporter) ReportFailure(err error, at time.Time) audit.Entry {
	reason := err.Error()
	var verr *errs.RebalanceValidationError
	if errors.As(err, &verr) {
		reason = fmt.Sprintf("%d invariant violations: %s", len(verr.Violations), verr.Error())
	}
	return audit.NewFleetEntry(audit.RebalanceFailed, reason, at)
}

func (rep *Report) add(prev map[kernel.UUID]order.Snapshot, next order.Snapshot, vehicleName string, at time.Time) error {
	t := Transition{
		OrderID:     next.ID,
		CustomID:    next.Details.CustomID,
		To:          next.Status,
		ToVehicle:   next.VehicleID,
		VehicleName: vehicleName,
		Reason:      next.Reason,
	}

	if old, ok := prev[next.ID]; ok {
		t.From = old.Status
		t.FromVehicle = old.VehicleID
		if old.Status == next.Status && sameVehicle(old.VehicleID, next.VehicleID) && old.Reason == next.Reason {
			return nil
		}
	}

	entry, err := audit.NewOrderEntry(audit.OrderChange{
		OrderID:     t.OrderID,
		CustomID:    t.CustomID,
		From:        t.From,
		To:          t.To,
		VehicleName: t.VehicleName,
		Reason:      t.Reason,
	}, at)
	if err != nil {
		return err
	}

	rep.Transitions = append(rep.Transitions, t)
	rep.Entries = append(rep.Entries, entry)
	return nil
}

func indexSnapshots(snapshots []order.Snapshot) map[kernel.UUID]order.Snapshot {
	out := make(map[kernel.UUID]order.Snapshot, len(snapshots))
	for _, s := range snapshots {
		out[s.ID] = s
	}
	return out
}

func sameVehicle(a, b *kernel.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.IsEqual(*b)
}
