package commands

import (
	"context"

	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/core/domain/services"
)

// RebalanceCommandHandler recomputes every assignment of the fleet.
//
// Example:
//
//	summary, err := handler.Handle(ctx, NewRebalanceCommand())
//	var verr *errs.RebalanceValidationError
//	if errors.As(err, &verr) {
//	    log.Printf("rebalance discarded: %v", verr.Violations)
//	}
type RebalanceCommandHandler struct {
	uowFactory UoWFactory
	scheduler  *Scheduler
}

func NewRebalanceCommandHandler(uowFactory UoWFactory, scheduler *Scheduler) RebalanceCommandHandler {
	return RebalanceCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
	}
}

// Handle returns the per status counts of the committed rebalance.
func (h RebalanceCommandHandler) Handle(ctx context.Context, cmd RebalanceCommand) (services.Summary, error) {
	if err := cmd.Validate(); err != nil {
		return services.Summary{}, err
	}

	var summary services.Summary
	err := h.scheduler.execute(ctx, h.uowFactory, func(uow UoW) ([]audit.Entry, error) {
		report, err := h.scheduler.rebalance(ctx, uow)
		if err != nil {
			return nil, err
		}
		summary = report.Summary
		return report.Entries, nil
	})
	if err != nil {
		return services.Summary{}, err
	}

	return summary, nil
}
