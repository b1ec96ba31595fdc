package commands

import (
	"context"

	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
)

// AdvanceDeliveryStatusCommandHandler moves the delivery of an order forward.
// Reaching Done delivers the order and needs its driver to be in transit.
type AdvanceDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	scheduler  *Scheduler
}

func NewAdvanceDeliveryStatusCommandHandler(uowFactory UoWFactory, scheduler *Scheduler) AdvanceDeliveryStatusCommandHandler {
	return AdvanceDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
	}
}

func (h AdvanceDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.scheduler.execute(ctx, h.uowFactory, func(uow UoW) ([]audit.Entry, error) {
		orderRepo := uow.OrderRepository()

		o, err := orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return nil, err
		}
		before := o.Snapshot()

		var carrier []*vehicle.Vehicle
		driverInTransit := false
		if vehicleID := o.Vehicle(); vehicleID != nil {
			v, getErr := uow.VehicleRepository().Get(ctx, *vehicleID)
			if getErr != nil {
				return nil, getErr
			}
			carrier = append(carrier, v)
			driverInTransit = v.DriverStatus() == vehicle.InTransit
		}

		if err = o.AdvanceDelivery(cmd.Status(), driverInTransit); err != nil {
			return nil, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}

		report, err := h.scheduler.reporter.ReportChanges([]order.Snapshot{before}, []*order.Order{o},
			vehicleNames(carrier...), h.scheduler.clock())
		if err != nil {
			return nil, err
		}
		return report.Entries, nil
	})
}
