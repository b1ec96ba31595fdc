package commands

import (
	"context"

	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes an order from scheduling and rebalances the
// fleet so the freed room can be used. Orders already on the road cannot be deleted.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	scheduler  *Scheduler
}

func NewDeleteOrderCommandHandler(uowFactory UoWFactory, scheduler *Scheduler) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.scheduler.execute(ctx, h.uowFactory, func(uow UoW) ([]audit.Entry, error) {
		orderRepo := uow.OrderRepository()

		o, err := orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return nil, err
		}
		if !o.Status().IsActive() {
			return nil, errs.NewTransitionNotAllowedError("order", o.Status().String(), "deleted",
				"only orders that are not yet in transit can be deleted")
		}

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
		}

		if err = orderRepo.Delete(ctx, o.ID()); err != nil {
			return nil, err
		}

		report, err := h.scheduler.rebalance(ctx, uow)
		if err != nil {
			return nil, err
		}
		return report.Entries, nil
	})
}
