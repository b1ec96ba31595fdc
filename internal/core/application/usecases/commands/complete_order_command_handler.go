package commands

import (
	"context"

	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
)

// CompleteOrderCommandHandler closes a delivered order: the order leaves its
// vehicle and is archived into the order history.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	scheduler  *Scheduler
}

func NewCompleteOrderCommandHandler(uowFactory UoWFactory, scheduler *Scheduler) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
	}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

		if err = o.Complete(); err != nil {
			return nil, err
		}

		var carrier []*vehicle.Vehicle
		if vehicleID := o.Vehicle(); vehicleID != nil {
			vehicleRepo := uow.VehicleRepository()
			v, getErr := vehicleRepo.Get(ctx, *vehicleID)
			if getErr != nil {
				return nil, getErr
			}
			v.RemoveOrder(o.ID(), o.Load())
			if err = vehicleRepo.Update(ctx, v); err != nil {
				return nil, err
			}
			carrier = append(carrier, v)
		}

		if err = orderRepo.Archive(ctx, o); err != nil {
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
