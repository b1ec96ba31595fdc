package commands

import (
	"context"

	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/pkg/errs"
)

// UpdateOrderCommandHandler edits an order and rebalances the fleet, since new
// items, a new cluster or a new date can change every placement.
//
// Orders that are in transit, delivered or completed cannot be edited.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	scheduler  *Scheduler
}

func NewUpdateOrderCommandHandler(uowFactory UoWFactory, scheduler *Scheduler) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
	}
}

// Handle processes the update command. The edit and the rebalance are committed
// together or not at all.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.scheduler.execute(ctx, h.uowFactory, func(uow UoW) ([]audit.Entry, error) {
		orderRepo := uow.OrderRepository()

		o, err := orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return nil, err
		}

		if o.CustomID() != cmd.CustomID() {
			exists, existsErr := orderRepo.ExistsCustomID(ctx, cmd.CustomID())
			if existsErr != nil {
				return nil, existsErr
			}
			if exists {
				return nil, errs.NewAlreadyExistsError("customId", cmd.CustomID())
			}
		}

		if err = o.Edit(cmd.Details()); err != nil {
			return nil, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}

		report, err := h.scheduler.rebalance(ctx, uow)
		if err != nil {
			return nil, err
		}
		return report.Entries, nil
	})
}
