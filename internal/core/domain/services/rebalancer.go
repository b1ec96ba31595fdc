package services

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/pkg/errs"
)

// fallbackCluster is only the sort key of orders that have no cluster. They are
// not placed into a shared fallback cluster: eligible rejects them, so they
// always end up Unassignable with ReasonNoCluster.
const fallbackCluster = "(no cluster)"

// Decision is the computed placement of one active order.
type Decision struct {
	Order       *order.Order
	Measurement Measurement
	Status      order.Status
	Vehicle     *vehicle.Vehicle
	Reason      Reason
}

// CargoItem is one order loaded on a vehicle.
type CargoItem struct {
	Order *order.Order
	Load  int64
}

// Cargo is the computed content of one vehicle. Pinned are orders already on
// the road (in transit or delivered) that stay on the vehicle untouched.
type Cargo struct {
	Vehicle *vehicle.Vehicle
	Items   []CargoItem
	Pinned  []kernel.UUID
}

// Load is the summed load of the rebalanced orders.
func (c Cargo) Load() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Load
	}
	return total
}

// Partition lists order ids per outcome, each list sorted by custom id.
type Partition struct {
	Assigned     []kernel.UUID
	OnHold       []kernel.UUID
	Pending      []kernel.UUID
	Unassignable []kernel.UUID
}

// RebalanceResult is a validated full-fleet assignment. It is not applied to
// the aggregates until Apply is called.
type RebalanceResult struct {
	Today            kernel.Date
	EarliestExisting *kernel.Date
	Decisions        []Decision
	Cargo            []Cargo
}

// Partition groups the decisions by status.
func (r RebalanceResult) Partition() Partition {
	decisions := slices.Clone(r.Decisions)
	slices.SortFunc(decisions, func(a, b Decision) int {
		return cmp.Compare(a.Order.CustomID(), b.Order.CustomID())
	})

	var p Partition
	for _, d := range decisions {
		switch d.Status {
		case order.Assigned:
			p.Assigned = append(p.Assigned, d.Order.ID())
		case order.OnHold:
			p.OnHold = append(p.OnHold, d.Order.ID())
		case order.Pending:
			p.Pending = append(p.Pending, d.Order.ID())
		case order.Unassignable:
			p.Unassignable = append(p.Unassignable, d.Order.ID())
		default:
		}
	}
	return p
}

// Apply writes the result into the order and vehicle aggregates.
func (r RebalanceResult) Apply() error {
	for _, d := range r.Decisions {
		m := d.Measurement
		if err := d.Order.Measure(m.Load, m.Box, m.Price); err != nil {
			return err
		}
		var err error
		if d.Status == order.Assigned {
			err = d.Order.AssignTo(d.Vehicle.ID(), order.TriggerRebalance, d.Reason.String())
		} else {
			err = d.Order.Release(d.Status, order.TriggerRebalance, d.Reason.String())
		}
		if err != nil {
			return fmt.Errorf("apply decision for order %s: %w", d.Order.CustomID(), err)
		}
	}

	for _, c := range r.Cargo {
		ids := slices.Clone(c.Pinned)
		for _, item := range c.Items {
			ids = append(ids, item.Order.ID())
		}
		if err := c.Vehicle.ReplaceCargo(ids, min(c.Load(), c.Vehicle.Capacity())); err != nil {
			return fmt.Errorf("apply cargo for vehicle %s: %w", c.Vehicle.Name(), err)
		}
	}
	return nil
}

// Rebalancer recomputes every assignment of the fleet from scratch.
//
// Algorithm:
//  1. Find the earliest delivery date the previous pass scheduled, other than today
//  2. Clear the fleet occupancy
//  3. Active orders dated today or on that earliest date are candidates, other
//     dated orders wait as Pending, undated orders go OnHold
//  4. Candidates are processed by date ascending, then cluster, then load
//     descending (largest first)
//  5. A cluster already served on another date in this pass is deferred
//  6. The remaining orders are ranked with the shared eligibility rule and the
//     rebalance score, or marked Unassignable with the rejection reason
//  7. The result is validated before it is returned
type Rebalancer struct {
	calc   LoadCalculator
	logger *slog.Logger
}

func NewRebalancer(calc LoadCalculator, logger *slog.Logger) Rebalancer {
	if logger == nil {
		logger = slog.Default()
	}
	return Rebalancer{
		calc:   calc,
		logger: logger.With("component", "Rebalancer"),
	}
}

// Rebalance computes the new assignment of all active orders. It only changes
// the fleet occupancy; a RebalanceValidationError means the result was discarded.
func (r Rebalancer) Rebalance(orders []*order.Order, fleet *Fleet, today kernel.Date) (RebalanceResult, error) {
	result := RebalanceResult{
		Today:            today,
		EarliestExisting: earliestScheduled(orders, today),
	}

	fleet.Reset()

	var candidates []candidate
	for _, o := range orders {
		if !o.Status().IsActive() {
			continue
		}
		m := r.calc.Measure(o)
		date, dated := o.DeliveryDate()
		switch {
		case !dated:
			result.Decisions = append(result.Decisions,
				Decision{Order: o, Measurement: m, Status: order.OnHold, Reason: ReasonNoDeliveryDate})
		case date == today || (result.EarliestExisting != nil && date == *result.EarliestExisting):
			candidates = append(candidates, newCandidate(o, m))
		default:
			result.Decisions = append(result.Decisions,
				Decision{Order: o, Measurement: m, Status: order.Pending, Reason: ReasonDatePriority})
		}
	}

	sortCandidates(candidates)
	var earliestCandidate string
	if len(candidates) > 0 {
		earliestCandidate = candidates[0].key
	}

	cargo := make(map[kernel.UUID][]CargoItem)
	for _, c := range candidates {
		d := Decision{Order: c.order, Measurement: c.measurement}

		if c.cluster != "" && fleet.clusterServedOnOtherDate(c.cluster, c.key) && c.key != earliestCandidate {
			d.Status, d.Reason = order.Pending, ReasonClusterOnOtherDate
			if c.key == undated {
				d.Status = order.OnHold
			}
			result.Decisions = append(result.Decisions, d)
			continue
		}

		occ, reason := rank(fleet, c, rebalanceScore)
		if occ == nil {
			d.Status, d.Reason = order.Unassignable, reason
			result.Decisions = append(result.Decisions, d)
			continue
		}

		occ.place(c.key, c.cluster, c.order.ID(), c.load)
		cargo[occ.vehicle.ID()] = append(cargo[occ.vehicle.ID()], CargoItem{Order: c.order, Load: c.load})
		d.Status, d.Vehicle = order.Assigned, occ.vehicle
		result.Decisions = append(result.Decisions, d)
	}

	for _, v := range fleet.Vehicles() {
		result.Cargo = append(result.Cargo, Cargo{
			Vehicle: v,
			Items:   cargo[v.ID()],
			Pinned:  pinnedOn(v, orders),
		})
	}

	if err := ValidateCargo(result.Cargo); err != nil {
		r.logger.Error("rebalance result violates fleet invariants, discarding it", "error", err)
		return RebalanceResult{}, err
	}

	r.logger.Debug("rebalance computed",
		"today", today.String(),
		"candidates", len(candidates),
		"decisions", len(result.Decisions))
	return result, nil
}

// ValidateCargo checks the fleet invariants on a computed assignment: every
// vehicle carries one delivery date and one cluster within its capacity, and no
// order is on two vehicles.
func ValidateCargo(cargo []Cargo) error {
	var violations []string
	seen := make(map[kernel.UUID]string)

	for _, c := range cargo {
		name := c.Vehicle.Name()
		dates := make(map[string]struct{})
		clusters := make(map[string]struct{})
		for _, item := range c.Items {
			dates[dateKey(item.Order)] = struct{}{}
			cluster, ok := item.Order.Cluster()
			if !ok {
				violations = append(violations,
					fmt.Sprintf("vehicle %s carries order %s without cluster", name, item.Order.CustomID()))
			}
			clusters[cluster] = struct{}{}
			if other, dup := seen[item.Order.ID()]; dup {
				violations = append(violations,
					fmt.Sprintf("order %s is on vehicles %s and %s", item.Order.CustomID(), other, name))
			}
			seen[item.Order.ID()] = name
		}
		if len(dates) > 1 {
			violations = append(violations, fmt.Sprintf("vehicle %s carries %d delivery dates", name, len(dates)))
		}
		if len(clusters) > 1 {
			violations = append(violations, fmt.Sprintf("vehicle %s carries %d clusters", name, len(clusters)))
		}
		if load := c.Load(); load > c.Vehicle.Capacity() {
			violations = append(violations,
				fmt.Sprintf("vehicle %s load %d is above capacity %d", name, load, c.Vehicle.Capacity()))
		}
	}

	if len(violations) > 0 {
		return errs.NewRebalanceValidationError(violations)
	}
	return nil
}

// earliestScheduled returns the earliest delivery date, other than today, of
// the orders the previous pass scheduled (assigned or found unassignable).
// Leaving today out keeps a future date that was scheduled alongside today a
// candidate on the next pass, so rebalancing twice gives the same partition.
func earliestScheduled(orders []*order.Order, today kernel.Date) *kernel.Date {
	var earliest *kernel.Date
	for _, o := range orders {
		if s := o.Status(); s != order.Assigned && s != order.Unassignable {
			continue
		}
		date, ok := o.DeliveryDate()
		if !ok || date == today {
			continue
		}
		if earliest == nil || date.Before(*earliest) {
			d := date
			earliest = &d
		}
	}
	return earliest
}

func sortCandidates(candidates []candidate) {
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Or(
			cmp.Compare(a.key, b.key),
			cmp.Compare(clusterKey(a.cluster), clusterKey(b.cluster)),
			cmp.Compare(b.load, a.load),
			cmp.Compare(a.order.CustomID(), b.order.CustomID()),
		)
	})
}

func clusterKey(cluster string) string {
	if cluster == "" {
		return fallbackCluster
	}
	return cluster
}

func pinnedOn(v *vehicle.Vehicle, orders []*order.Order) []kernel.UUID {
	var out []kernel.UUID
	for _, o := range orders {
		s := o.Status()
		if (s == order.InTransit || s == order.Delivered) && o.IsOn(v.ID()) {
			out = append(out, o.ID())
		}
	}
	return out
}
