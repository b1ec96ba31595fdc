package services

import (
	"cmp"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
)

// undated keys the occupancy of orders without a delivery date.
const undated = ""

// Fleet is the working copy of vehicle occupancy shared by the assignment engine
// and the rebalancer. It tracks, per vehicle, which orders are loaded for which
// delivery date and cluster. Only one caller may use a Fleet at a time.
type Fleet struct {
	occupancies []*occupancy
	byID        map[kernel.UUID]*occupancy
}

type occupancy struct {
	vehicle *vehicle.Vehicle
	slots   map[string]*slot
}

// slot is the cargo of one vehicle for one delivery date.
type slot struct {
	cluster string
	load    int64
	orders  []kernel.UUID
}

// NewFleet creates an empty fleet. Vehicles are kept sorted by name so every
// scan over them is deterministic.
func NewFleet(vehicles []*vehicle.Vehicle) *Fleet {
	f := &Fleet{byID: make(map[kernel.UUID]*occupancy, len(vehicles))}
	for _, v := range vehicles {
		if v == nil {
			continue
		}
		occ := &occupancy{vehicle: v, slots: make(map[string]*slot)}
		f.occupancies = append(f.occupancies, occ)
		f.byID[v.ID()] = occ
	}
	slices.SortFunc(f.occupancies, func(a, b *occupancy) int {
		return cmp.Or(
			cmp.Compare(a.vehicle.Name(), b.vehicle.Name()),
			cmp.Compare(a.vehicle.ID().String(), b.vehicle.ID().String()),
		)
	})
	return f
}

// LoadFleet builds the occupancy of the currently assigned orders, measuring
// each of them again instead of trusting the stored load.
func LoadFleet(vehicles []*vehicle.Vehicle, orders []*order.Order, calc LoadCalculator) *Fleet {
	f := NewFleet(vehicles)
	for _, o := range orders {
		if o.Status() != order.Assigned {
			continue
		}
		vid := o.Vehicle()
		if vid == nil {
			continue
		}
		occ, ok := f.byID[*vid]
		if !ok {
			continue
		}
		cluster, _ := o.Cluster()
		occ.place(dateKey(o), cluster, o.ID(), calc.ComputeLoad(o))
	}
	return f
}

// Vehicles returns the vehicles in name order.
func (f *Fleet) Vehicles() []*vehicle.Vehicle {
	out := make([]*vehicle.Vehicle, 0, len(f.occupancies))
	for _, occ := range f.occupancies {
		out = append(out, occ.vehicle)
	}
	return out
}

func (f *Fleet) Len() int {
	return len(f.occupancies)
}

// MaxCapacity returns the largest vehicle capacity, 0 for an empty fleet.
func (f *Fleet) MaxCapacity() int64 {
	var largest int64
	for _, occ := range f.occupancies {
		largest = max(largest, occ.vehicle.Capacity())
	}
	return largest
}

// LoadFor returns the load a vehicle carries for the order's delivery date.
func (f *Fleet) LoadFor(vehicleID kernel.UUID, date *kernel.Date) int64 {
	occ, ok := f.byID[vehicleID]
	if !ok {
		return 0
	}
	key := undated
	if date != nil {
		key = date.String()
	}
	if s, found := occ.slots[key]; found {
		return s.load
	}
	return 0
}

// Reset clears all occupancy.
func (f *Fleet) Reset() {
	for _, occ := range f.occupancies {
		clear(occ.slots)
	}
}

// clusterServedOnOtherDate reports whether some vehicle already carries cluster
// for a date other than key.
func (f *Fleet) clusterServedOnOtherDate(cluster, key string) bool {
	for _, occ := range f.occupancies {
		for k, s := range occ.slots {
			if k != key && s.cluster == cluster && len(s.orders) > 0 {
				return true
			}
		}
	}
	return false
}

func (occ *occupancy) place(key, cluster string, orderID kernel.UUID, load int64) {
	s, ok := occ.slots[key]
	if !ok {
		s = &slot{cluster: cluster}
		occ.slots[key] = s
	}
	s.orders = append(s.orders, orderID)
	s.load += load
}

// slot returns the cargo for key, nil when there is none.
func (occ *occupancy) slot(key string) *slot {
	s, ok := occ.slots[key]
	if !ok || len(s.orders) == 0 {
		return nil
	}
	return s
}

// busyElsewhere reports whether the vehicle carries cargo for a date other than key.
func (occ *occupancy) busyElsewhere(key string) bool {
	for k, s := range occ.slots {
		if k != key && len(s.orders) > 0 {
			return true
		}
	}
	return false
}

func dateKey(o *order.Order) string {
	if d, ok := o.DeliveryDate(); ok {
		return d.String()
	}
	return undated
}
