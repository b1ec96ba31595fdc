package commands

import (
	"context"

	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
)

// ChangeDriverStatusCommandHandler applies a driver status change with its
// guards and its effect on the carried orders.
//
// When the driver becomes available, or stops being available, the fleet is
// rebalanced in the same transaction: the vehicle gained or lost its ability
// to take new orders.
type ChangeDriverStatusCommandHandler struct {
	uowFactory UoWFactory
	scheduler  *Scheduler
}

func NewChangeDriverStatusCommandHandler(uowFactory UoWFactory, scheduler *Scheduler) ChangeDriverStatusCommandHandler {
	return ChangeDriverStatusCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
	}
}

func (h ChangeDriverStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDriverStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.scheduler.execute(ctx, h.uowFactory, func(uow UoW) ([]audit.Entry, error) {
		vehicleRepo := uow.VehicleRepository()
		orderRepo := uow.OrderRepository()

		v, err := vehicleRepo.Get(ctx, cmd.VehicleID())
		if err != nil {
			return nil, err
		}

		orders, err := orderRepo.GetAll(ctx)
		if err != nil {
			return nil, err
		}

		before := make([]order.Snapshot, 0, len(orders))
		for _, o := range orders {
			before = append(before, o.Snapshot())
		}

		from := v.DriverStatus()
		changed, err := v.ChangeDriverStatus(cmd.Status(), orders)
		if err != nil {
			return nil, err
		}
		if from == v.DriverStatus() {
			return nil, nil
		}

		if err = vehicleRepo.Update(ctx, v); err != nil {
			return nil, err
		}
		for _, o := range changed {
			if err = orderRepo.Update(ctx, o); err != nil {
				return nil, err
			}
		}

		report, err := h.scheduler.reporter.ReportChanges(before, changed, vehicleNames(v), h.scheduler.clock())
		if err != nil {
			return nil, err
		}
		entries := report.Entries

		if (from == vehicle.Available) != (cmd.Status() == vehicle.Available) {
			rebalanced, rebalanceErr := h.scheduler.rebalance(ctx, uow)
			if rebalanceErr != nil {
				return nil, rebalanceErr
			}
			entries = append(entries, rebalanced.Entries...)
		}

		return entries, nil
	})
}
