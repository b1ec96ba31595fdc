package services

// Reason explains why an order ended up where it did. Rejection reasons are
// ordered by how far the eligibility check got, so the most specific one wins
// when several vehicles fail for different reasons.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNoVehicles
	ReasonNoCluster
	ReasonDriverUnavailable
	ReasonDimensions
	ReasonDateLocked
	ReasonClusterLocked
	ReasonCapacity
	ReasonNoDeliveryDate
	ReasonDatePriority
	ReasonClusterOnOtherDate
)

var reasonTexts = map[Reason]string{
	ReasonNoVehicles:         "fleet has no vehicles",
	ReasonNoCluster:          "order has no delivery cluster",
	ReasonDriverUnavailable:  "no vehicle has an available driver",
	ReasonDimensions:         "order does not fit the cargo box of any available vehicle",
	ReasonDateLocked:         "available vehicles are loaded for another delivery date",
	ReasonClusterLocked:      "available vehicles are locked to another cluster on this date",
	ReasonCapacity:           "not enough remaining capacity on any eligible vehicle",
	ReasonNoDeliveryDate:     "order has no delivery date",
	ReasonDatePriority:       "delivery date is neither today nor the earliest scheduled date",
	ReasonClusterOnOtherDate: "cluster is already served on another delivery date",
}

func (r Reason) String() string {
	return reasonTexts[r]
}

// IsConstraint reports whether the reason is a vehicle constraint rather than a date rule.
func (r Reason) IsConstraint() bool {
	return r >= ReasonNoVehicles && r <= ReasonCapacity
}
