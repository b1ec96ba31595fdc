package services

import (
	"math"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
)

// candidate is an order prepared for placement: measured once, keyed by date.
type candidate struct {
	order       *order.Order
	measurement Measurement
	load        int64
	box         kernel.Dimensions
	key         string
	cluster     string
}

func newCandidate(o *order.Order, m Measurement) candidate {
	cluster, _ := o.Cluster()
	return candidate{
		order:       o,
		measurement: m,
		load:        m.Load,
		box:         m.Box,
		key:         dateKey(o),
		cluster:     cluster,
	}
}

// eligible is the single eligibility rule used by both the assignment engine
// and the rebalancer. It returns ReasonNone when the vehicle can take the
// order, otherwise the first check that failed.
func eligible(occ *occupancy, c candidate) Reason {
	v := occ.vehicle
	switch {
	case c.key == undated:
		return ReasonNoDeliveryDate
	case c.cluster == "":
		return ReasonNoCluster
	case v.DriverStatus() != vehicle.Available:
		return ReasonDriverUnavailable
	case !c.box.FitsWithin(v.Dimensions()):
		return ReasonDimensions
	case occ.busyElsewhere(c.key):
		return ReasonDateLocked
	}

	var current int64
	if s := occ.slot(c.key); s != nil {
		if s.cluster != c.cluster {
			return ReasonClusterLocked
		}
		current = s.load
	}
	if current+c.load > v.Capacity() {
		return ReasonCapacity
	}
	return ReasonNone
}

// scorer rates an eligible vehicle for a candidate; higher is better.
type scorer func(occ *occupancy, c candidate) float64

// scoreTolerance is how close two scores must be to count as a tie.
const scoreTolerance = 0.1

// rank picks the best eligible vehicle. Ties within scoreTolerance go to the
// smaller capacity, then to the utilization closest to 80%, then to the name.
// When nothing is eligible the most specific rejection reason is returned.
func rank(f *Fleet, c candidate, score scorer) (*occupancy, Reason) {
	if c.key == undated {
		return nil, ReasonNoDeliveryDate
	}
	if c.cluster == "" {
		return nil, ReasonNoCluster
	}
	if f.Len() == 0 {
		return nil, ReasonNoVehicles
	}

	var (
		best      *occupancy
		bestScore float64
		rejection = ReasonNone
	)
	for _, occ := range f.occupancies {
		if r := eligible(occ, c); r != ReasonNone {
			rejection = max(rejection, r)
			continue
		}
		s := score(occ, c)
		if best == nil || better(occ, s, best, bestScore, c) {
			best, bestScore = occ, s
		}
	}

	if best == nil {
		return nil, rejection
	}
	return best, ReasonNone
}

func better(occ *occupancy, score float64, best *occupancy, bestScore float64, c candidate) bool {
	if math.Abs(score-bestScore) > scoreTolerance {
		return score > bestScore
	}
	if occ.vehicle.Capacity() != best.vehicle.Capacity() {
		return occ.vehicle.Capacity() < best.vehicle.Capacity()
	}
	d1 := math.Abs(utilizationAfter(occ, c) - 0.8)
	d2 := math.Abs(utilizationAfter(best, c) - 0.8)
	if d1 != d2 {
		return d1 < d2
	}
	return occ.vehicle.Name() < best.vehicle.Name()
}

func utilizationAfter(occ *occupancy, c candidate) float64 {
	var current int64
	if s := occ.slot(c.key); s != nil {
		current = s.load
	}
	return float64(current+c.load) / float64(occ.vehicle.Capacity())
}
