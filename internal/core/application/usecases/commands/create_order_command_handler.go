package commands

import (
	"context"

	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// CreateOrderCommandHandler registers a new order and assigns it to a vehicle.
//
// Flow:
//  1. Reject a custom ID already used by a visible order
//  2. Measure the order against the catalog
//  3. Reject an order larger than every vehicle of the fleet
//  4. Place it on the best eligible vehicle, or leave it Pending (OnHold
//     without delivery date) with the rejection reason
//  5. Persist the order, the vehicle and the audit entry in one transaction
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, scheduler)
//	outcome, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(outcome.Status, outcome.Reason)
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	scheduler  *Scheduler
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, scheduler *Scheduler) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
	}
}

// Handle processes the order creation command. Nothing is persisted when the
// order is rejected.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (services.Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return services.Outcome{}, err
	}

	var outcome services.Outcome
	err := h.scheduler.execute(ctx, h.uowFactory, func(uow UoW) ([]audit.Entry, error) {
		orderRepo := uow.OrderRepository()

		exists, err := orderRepo.ExistsCustomID(ctx, cmd.CustomID())
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errs.NewAlreadyExistsError("customId", cmd.CustomID())
		}

		o, err := order.NewOrder(cmd.OrderID(), cmd.Details())
		if err != nil {
			return nil, err
		}

		state, err := h.scheduler.load(ctx, uow)
		if err != nil {
			return nil, err
		}

		fleet := services.LoadFleet(state.vehicles, state.orders, state.calc)
		outcome, err = services.NewAssignmentEngine(state.calc).Dispatch(o, fleet)
		if err != nil {
			return nil, err
		}

		if err = orderRepo.Add(ctx, o); err != nil {
			return nil, err
		}

		if outcome.Vehicle != nil {
			if err = uow.VehicleRepository().Update(ctx, outcome.Vehicle); err != nil {
				return nil, err
			}
		}

		report, err := h.scheduler.reporter.ReportChanges(nil, []*order.Order{o},
			vehicleNames(state.vehicles...), h.scheduler.clock())
		if err != nil {
			return nil, err
		}
		return report.Entries, nil
	})
	if err != nil {
		return services.Outcome{}, err
	}

	h.scheduler.recorder.OrderPlaced(outcome.Status)
	return outcome, nil
}
