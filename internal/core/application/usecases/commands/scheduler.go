package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// Recorder receives the outcome of fleet changes for monitoring.
type Recorder interface {
	OrderPlaced(status order.Status)
	RebalanceCompleted(summary services.Summary, elapsed time.Duration)
	RebalanceFailed()
}

// Clock returns the current time in the fleet's time zone. Its calendar date is today.
type Clock func() time.Time

// Scheduler is shared by every handler that can move orders between vehicles.
//
// Key responsibilities:
//   - Serializing fleet changes, one command at a time
//   - Running each command in a single unit of work
//   - Appending the audit entries in the same transaction
//   - Publishing the entries once the transaction is committed
//
// A rebalance that fails validation is rolled back; its RebalanceFailed entry
// is published but never stored.
type Scheduler struct {
	mu        sync.Mutex
	publisher ports.EventPublisher
	recorder  Recorder
	clock     Clock
	reporter  services.OutcomeReporter
	logger    *slog.Logger
}

// NewScheduler creates the scheduler. A nil recorder disables monitoring and a
// nil clock falls back to the local wall clock.
func NewScheduler(publisher ports.EventPublisher, recorder Recorder, clock Clock, logger *slog.Logger) *Scheduler {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		publisher: publisher,
		recorder:  recorder,
		clock:     clock,
		reporter:  services.NewOutcomeReporter(),
		logger:    logger.With("component", "Scheduler"),
	}
}

// fleetState is the consistent view of the fleet a command works on.
type fleetState struct {
	calc     services.LoadCalculator
	vehicles []*vehicle.Vehicle
	orders   []*order.Order
}

// execute runs work inside one transaction while holding the fleet lock.
func (s *Scheduler) execute(ctx context.Context, factory UoWFactory, work func(uow UoW) ([]audit.Entry, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entries, err := work(uow)
	if err != nil {
		return err
	}

	if len(entries) > 0 {
		if err = uow.AuditRepository().Append(ctx, entries...); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	s.publish(ctx, entries...)
	return nil
}

func (s *Scheduler) load(ctx context.Context, uow UoW) (fleetState, error) {
	cat, err := uow.CatalogRepository().Load(ctx)
	if err != nil {
		return fleetState{}, err
	}

	vehicles, err := uow.VehicleRepository().GetAll(ctx)
	if err != nil {
		return fleetState{}, err
	}

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return fleetState{}, err
	}

	return fleetState{
		calc:     services.NewLoadCalculator(cat, s.logger),
		vehicles: vehicles,
		orders:   orders,
	}, nil
}

// rebalance recomputes the whole fleet from the stored state and persists the
// result through uow. Nothing is written when the result fails validation.
func (s *Scheduler) rebalance(ctx context.Context, uow UoW) (services.Report, error) {
	started := time.Now()

	state, err := s.load(ctx, uow)
	if err != nil {
		return services.Report{}, err
	}

	before := make([]order.Snapshot, 0, len(state.orders))
	for _, o := range state.orders {
		before = append(before, o.Snapshot())
	}

	now := s.clock()
	result, err := services.NewRebalancer(state.calc, s.logger).
		Rebalance(state.orders, services.NewFleet(state.vehicles), kernel.DateOf(now))
	if err != nil {
		s.recorder.RebalanceFailed()
		s.publish(ctx, s.reporter.ReportFailure(err, now))
		return services.Report{}, err
	}

	report, err := s.reporter.Report(before, result, now)
	if err != nil {
		return services.Report{}, err
	}

	if err = result.Apply(); err != nil {
		return services.Report{}, err
	}

	orderRepo := uow.OrderRepository()
	for _, d := range result.Decisions {
		if err = orderRepo.Update(ctx, d.Order); err != nil {
			return services.Report{}, err
		}
	}

	vehicleRepo := uow.VehicleRepository()
	for _, c := range result.Cargo {
		if err = vehicleRepo.Update(ctx, c.Vehicle); err != nil {
			return services.Report{}, err
		}
	}

	s.recorder.RebalanceCompleted(report.Summary, time.Since(started))
	s.logger.InfoContext(ctx, "fleet rebalanced",
		"today", kernel.DateOf(now).String(),
		"summary", report.Summary.String(),
		"changes", len(report.Transitions))
	return report, nil
}

func (s *Scheduler) publish(ctx context.Context, entries ...audit.Entry) {
	if len(entries) == 0 || s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, entries...); err != nil {
		s.logger.WarnContext(ctx, "failed to publish audit entries", "count", len(entries), "error", err)
	}
}

func vehicleNames(vehicles ...*vehicle.Vehicle) map[kernel.UUID]string {
	names := make(map[kernel.UUID]string, len(vehicles))
	for _, v := range vehicles {
		names[v.ID()] = v.Name()
	}
	return names
}

type nopRecorder struct{}

func (nopRecorder) OrderPlaced(order.Status) {}

func (nopRecorder) RebalanceCompleted(services.Summary, time.Duration) {}

func (nopRecorder) RebalanceFailed() {}
