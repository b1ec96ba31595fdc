package services

const (
	tenMillion  = 10_000_000
	fiveMillion = 5_000_000
)

// incrementalScore rates a vehicle for single-order placement: a load term that
// favours a 50-75% fill over a full truck, plus a penalty for pairing a small
// order with a big truck or a big order with a small one.
func incrementalScore(occ *occupancy, c candidate) float64 {
	return loadEfficiency(utilizationAfter(occ, c)) + sizeEfficiency(c.load, occ.vehicle.Capacity())
}

func loadEfficiency(u float64) float64 {
	switch {
	case u <= 0.5:
		return 2.5
	case u <= 0.75:
		return 4
	case u <= 0.9:
		return 3
	case u <= 0.95:
		return 1
	default:
		return -2
	}
}

func sizeEfficiency(load, capacity int64) float64 {
	ratio := float64(load) / float64(capacity)
	switch {
	case ratio <= 0.2 && capacity > tenMillion:
		return -1
	case ratio <= 0.4 && capacity > fiveMillion:
		return -0.5
	case ratio > 0.9 && capacity < fiveMillion:
		return -1.5
	case ratio > 0.8 && capacity < tenMillion:
		return -0.5
	default:
		return 0
	}
}

// rebalanceScore rates a vehicle during a full rebalance: keeping a cluster on
// the vehicle already serving it for the date dominates, then the fill bracket.
func rebalanceScore(occ *occupancy, c candidate) float64 {
	var score float64
	if s := occ.slot(c.key); s != nil && s.cluster == c.cluster {
		score += 10
	}

	u := utilizationAfter(occ, c)
	switch {
	case u >= 0.7 && u <= 0.9:
		score += 5
	case u >= 0.5 && u < 0.7:
		score += 3
	case u > 0.9 && u <= 0.95:
		score += 2
	case u < 0.5:
		score++
	}
	return score
}
