package vehicle

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// DriverStatus is the self reported availability of a vehicle's driver.
type DriverStatus int

const (
	DriverUnknown DriverStatus = iota
	NotSet
	Available
	Unavailable
	InTransit
	UnderMaintenance
)

var driverStatusNames = map[DriverStatus]string{
	NotSet:           "not-set",
	Available:        "available",
	Unavailable:      "unavailable",
	InTransit:        "in-transit",
	UnderMaintenance: "under-maintenance",
}

// ParseDriverStatus converts the persisted or wire name of a driver status.
func ParseDriverStatus(s string) (DriverStatus, error) {
	for status, name := range driverStatusNames {
		if name == s {
			return status, nil
		}
	}
	return DriverUnknown, errs.NewValueIsInvalidErrorWithCause("driver status",
		fmt.Errorf("%q is not a valid driver status", s))
}

func (s DriverStatus) Validate() error {
	if _, ok := driverStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("driver status",
			fmt.Errorf("%d is not a valid driver status", s))
	}
	return nil
}

func (s DriverStatus) String() string {
	if name, ok := driverStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsOffDuty reports whether the driver cannot take any cargo.
func (s DriverStatus) IsOffDuty() bool {
	return s == Unavailable || s == UnderMaintenance
}
