package jobs

import (
	"context"
	"log/slog"

	"eats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CookedOrderReannounceJob periodically re-broadcasts cooked orders that
// still have no driver, so an announcement lost to a broker hiccup does not
// strand the order until a human notices.
type CookedOrderReannounceJob struct {
	handler  commands.ReannounceCookedOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCookedOrderReannounceJob creates the re-announcement job. The schedule
// is a six-field cron spec with a seconds column, e.g. "*/30 * * * * *".
func NewCookedOrderReannounceJob(
	handler commands.ReannounceCookedOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *CookedOrderReannounceJob {
	return &CookedOrderReannounceJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "cooked_order_reannounce_job"),
	}
}

// Start begins the re-announcement sweeps on the configured schedule.
func (j *CookedOrderReannounceJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewReannounceCookedOrdersCommand()

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "cooked order re-announcement sweep failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "cooked order re-announcement job started", "schedule", j.schedule)
	return nil
}

// Stop stops the re-announcement job.
func (j *CookedOrderReannounceJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "cooked order re-announcement job stopped")
}
