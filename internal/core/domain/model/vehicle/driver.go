package vehicle

import (
	"fmt"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// ChangeDriverStatus moves the driver to a new status and applies its effect on
// the carried orders. carried may contain any orders; only those on this vehicle
// are considered. The orders whose state changed are returned so the caller can
// persist them.
//
// Guards, checked before anything is mutated:
//   - leaving InTransit needs every carried delivery to be done
//   - Unavailable and UnderMaintenance need no unfinished carried delivery
//   - InTransit needs at least one carried delivery that is not done
//
// Effects:
//   - leaving InTransit puts carried InTransit orders back to Assigned
//   - entering InTransit sends carried Assigned orders on the road (delivery Ongoing)
//
// Orders released to OnHold are unlinked from their vehicle, and an off-duty
// driver carries no unfinished delivery, so entering Available changes no
// carried order. The caller rebalances the fleet instead.
//
// Setting the current status again is a no-op.
func (v *Vehicle) ChangeDriverStatus(to DriverStatus, carried []*order.Order) ([]*order.Order, error) {
	if err := to.Validate(); err != nil {
		return nil, err
	}
	from := v.driverStatus
	if from == to {
		return nil, nil
	}

	cargo := v.onBoard(carried)
	if err := v.checkDriverGuards(from, to, cargo); err != nil {
		return nil, err
	}

	var changed []*order.Order
	for _, o := range cargo {
		var err error
		switch {
		case from == InTransit && o.Status() == order.InTransit:
			err = o.ReturnToAssigned(v.id)
		case to == InTransit && o.Status() == order.Assigned && o.DeliveryStatus() != order.DeliveryDone:
			err = o.StartTransit()
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		changed = append(changed, o)
	}

	v.driverStatus = to
	return changed, nil
}

func (v *Vehicle) checkDriverGuards(from, to DriverStatus, cargo []*order.Order) error {
	if from == InTransit {
		for _, o := range cargo {
			if o.DeliveryStatus() != order.DeliveryDone {
				return errs.NewTransitionNotAllowedError("driver status", from.String(), to.String(),
					fmt.Sprintf("order %s is not delivered yet (%s)", o.CustomID(), o.DeliveryStatus()))
			}
		}
	}

	if to.IsOffDuty() {
		for _, o := range cargo {
			if isUnfinished(o) {
				return errs.NewTransitionNotAllowedError("driver status", from.String(), to.String(),
					fmt.Sprintf("order %s is still pending delivery", o.CustomID()))
			}
		}
	}

	if to == InTransit {
		pending := 0
		for _, o := range cargo {
			if isUnfinished(o) {
				pending++
			}
		}
		if pending == 0 {
			return errs.NewTransitionNotAllowedError("driver status", from.String(), to.String(),
				"there are no pending deliveries")
		}
	}

	return nil
}

func (v *Vehicle) onBoard(orders []*order.Order) []*order.Order {
	var out []*order.Order
	for _, o := range orders {
		if o == nil {
			continue
		}
		if o.IsOn(v.id) || v.Carries(o.ID()) {
			out = append(out, o)
		}
	}
	return out
}

func isUnfinished(o *order.Order) bool {
	return o.DeliveryStatus() != order.DeliveryDone && o.Status() != order.Delivered
}
