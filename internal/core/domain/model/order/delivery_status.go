package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// DeliveryStatus is the driver reported progress of a delivery. It only moves forward.
type DeliveryStatus int

const (
	DeliveryUnknown DeliveryStatus = iota
	DeliveryPending
	DeliveryDeparture
	DeliveryOngoing
	DeliveryDone
)

var deliveryStatusNames = map[DeliveryStatus]string{
	DeliveryPending:   "pending",
	DeliveryDeparture: "departure",
	DeliveryOngoing:   "ongoing",
	DeliveryDone:      "done",
}

func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	for status, name := range deliveryStatusNames {
		if name == s {
			return status, nil
		}
	}
	return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause("delivery status",
		fmt.Errorf("%q is not a valid delivery status", s))
}

func (s DeliveryStatus) Validate() error {
	if _, ok := deliveryStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

func (s DeliveryStatus) String() string {
	if name, ok := deliveryStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Advance checks a forward move to to. Done additionally needs the current status
// to be Ongoing and the driver to be in transit.
func (s DeliveryStatus) Advance(to DeliveryStatus, driverInTransit bool) (DeliveryStatus, error) {
	if err := to.Validate(); err != nil {
		return DeliveryUnknown, err
	}
	if to <= s {
		return DeliveryUnknown, errs.NewTransitionNotAllowedError("delivery status", s.String(), to.String(),
			"delivery status only moves forward")
	}
	if to == DeliveryDone {
		if s != DeliveryOngoing {
			return DeliveryUnknown, errs.NewTransitionNotAllowedError("delivery status", s.String(), to.String(),
				"delivery must be ongoing first")
		}
		if !driverInTransit {
			return DeliveryUnknown, errs.NewTransitionNotAllowedError("delivery status", s.String(), to.String(),
				"driver is not in transit")
		}
	}
	return to, nil
}
