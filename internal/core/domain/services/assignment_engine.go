package services

import (
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/pkg/errs"
)

// Outcome is the result of placing one order.
type Outcome struct {
	Vehicle     *vehicle.Vehicle
	Status      order.Status
	Reason      Reason
	Measurement Measurement
}

// AssignmentEngine places a single new order on the best eligible vehicle
// between two rebalances.
//
// Key responsibilities:
//   - Measuring the order against the catalog
//   - Rejecting orders bigger than every vehicle of the fleet
//   - Selecting the vehicle through the shared eligibility and ranking rules
//   - Recording the placement in the fleet occupancy and on both aggregates
//
// Example usage:
//
//	engine := NewAssignmentEngine(calc)
//	fleet := LoadFleet(vehicles, orders, calc)
//	outcome, err := engine.Dispatch(newOrder, fleet)
type AssignmentEngine struct {
	calc LoadCalculator
}

func NewAssignmentEngine(calc LoadCalculator) AssignmentEngine {
	return AssignmentEngine{calc: calc}
}

// CheckCapacity returns a CapacityExceededError when the order is larger than the
// largest vehicle. An empty fleet rejects nothing.
func (e AssignmentEngine) CheckCapacity(load int64, fleet *Fleet) error {
	if fleet.Len() == 0 {
		return nil
	}
	if largest := fleet.MaxCapacity(); load > largest {
		return errs.NewCapacityExceededError(load, largest)
	}
	return nil
}

// Assign selects a vehicle for the order and records the placement in the fleet
// occupancy. It returns nil and the rejection reason when no vehicle is eligible.
// Neither the order nor the vehicle aggregate is changed.
func (e AssignmentEngine) Assign(o *order.Order, fleet *Fleet) (*vehicle.Vehicle, Reason) {
	c := newCandidate(o, e.calc.Measure(o))
	occ, reason := rank(fleet, c, incrementalScore)
	if occ == nil {
		return nil, reason
	}
	occ.place(c.key, c.cluster, o.ID(), c.load)
	return occ.vehicle, ReasonNone
}

// Dispatch measures the order, assigns it and applies the outcome to the order
// and to the chosen vehicle. Without an eligible vehicle the order goes OnHold
// when it has no delivery date and stays Pending otherwise.
func (e AssignmentEngine) Dispatch(o *order.Order, fleet *Fleet) (Outcome, error) {
	if err := o.Validate(); err != nil {
		return Outcome{}, err
	}

	m, err := e.calc.Remeasure(o)
	if err != nil {
		return Outcome{}, err
	}
	if err = e.CheckCapacity(m.Load, fleet); err != nil {
		return Outcome{}, err
	}

	v, reason := e.Assign(o, fleet)
	if v == nil {
		to := order.Pending
		if _, dated := o.DeliveryDate(); !dated {
			to = order.OnHold
		}
		if err = o.Release(to, order.TriggerAssignment, reason.String()); err != nil {
			return Outcome{}, err
		}
		return Outcome{Status: to, Reason: reason, Measurement: m}, nil
	}

	if err = v.AddOrder(o.ID(), m.Load); err != nil {
		return Outcome{}, err
	}
	if err = o.AssignTo(v.ID(), order.TriggerAssignment, ""); err != nil {
		return Outcome{}, err
	}
	return Outcome{Vehicle: v, Status: order.Assigned, Measurement: m}, nil
}
