package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultRebalanceSchedule runs shortly after midnight, once the new day has
// made yesterday's dates stale.
const DefaultRebalanceSchedule = "0 5 0 * * *"

// RebalanceHandler runs a full-fleet rebalance.
type RebalanceHandler interface {
	Handle(ctx context.Context, cmd commands.RebalanceCommand) (services.Summary, error)
}

// RebalanceJob manages the scheduled full-fleet rebalance.
type RebalanceJob struct {
	handler  RebalanceHandler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRebalanceJob creates the job. The schedule has a seconds field and is
// evaluated in loc.
func NewRebalanceJob(handler RebalanceHandler, schedule string, loc *time.Location, logger *slog.Logger) *RebalanceJob {
	if schedule == "" {
		schedule = DefaultRebalanceSchedule
	}
	if loc == nil {
		loc = time.Local
	}
	return &RebalanceJob{
		handler:  handler,
		schedule: schedule,
		timeout:  time.Minute,
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		logger:   logger.With("component", "rebalance_job"),
	}
}

// Start registers the schedule and starts the cron runner.
func (j *RebalanceJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rebalance job started", "schedule", j.schedule)
	return nil
}

// Run executes one rebalance.
func (j *RebalanceJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	summary, err := j.handler.Handle(ctx, commands.NewRebalanceCommand())
	if err != nil {
		var verr *errs.RebalanceValidationError
		if errors.As(err, &verr) {
			j.logger.ErrorContext(ctx, "Scheduled rebalance discarded", "violations", verr.Violations)
			return
		}
		j.logger.ErrorContext(ctx, "Scheduled rebalance failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Scheduled rebalance completed", "summary", summary.String())
}

// Stop stops the job and waits for a running rebalance to finish.
func (j *RebalanceJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Rebalance job stopped")
}
