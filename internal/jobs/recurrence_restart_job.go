package jobs

import (
	"context"
	"errors"
	"log/slog"

	"salesorders/internal/core/application/usecases/commands"
	"salesorders/internal/core/application/usecases/queries"
	"salesorders/internal/core/domain/model/status"
	"salesorders/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// RecurrenceRestartJob restarts waiting recurrent orders so their next
// installment goes through the order lifecycle again. Each run loads the due
// orders and issues one restart command per order.
type RecurrenceRestartJob struct {
	feed    queries.GetWaitingRecurrentOrdersQueryHandler
	restart commands.RestartOrderCommandHandler
	cron    *cron.Cron
	spec    string
	logger  *slog.Logger
}

// NewRecurrenceRestartJob creates a job that restarts waiting recurrent
// orders on the given cron schedule.
func NewRecurrenceRestartJob(
	feed queries.GetWaitingRecurrentOrdersQueryHandler,
	restart commands.RestartOrderCommandHandler,
	spec string,
	logger *slog.Logger,
) *RecurrenceRestartJob {
	return &RecurrenceRestartJob{
		feed:    feed,
		restart: restart,
		cron:    cron.New(cron.WithSeconds()),
		spec:    spec,
		logger:  logger.With("component", "recurrence_restart_job"),
	}
}

// Start begins the recurrence restart job on its schedule.
func (j *RecurrenceRestartJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Recurrence restart job started", "schedule", j.spec)
	return nil
}

// Stop stops the recurrence restart job.
func (j *RecurrenceRestartJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Recurrence restart job stopped")
}

func (j *RecurrenceRestartJob) run() {
	ctx := context.Background()

	due, err := j.feed.Handle(ctx, queries.NewGetWaitingRecurrentOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Loading waiting recurrent orders failed", "error", err)
		return
	}

	for _, candidate := range due {
		cmd, cmdErr := commands.NewRestartOrderCommand(candidate.ID, false)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Building restart command failed",
				"order_id", candidate.ID.String(), "error", cmdErr)
			continue
		}

		if handleErr := j.restart.Handle(ctx, cmd); handleErr != nil {
			// A hold or a concurrent write between the read and the
			// restart is an expected business scenario, not a failure.
			if errors.Is(handleErr, status.ErrTransactionForbidden) ||
				errors.Is(handleErr, errs.ErrVersionIsInvalid) {
				continue
			}
			j.logger.ErrorContext(ctx, "Restarting recurrent order failed",
				"order_id", candidate.ID.String(), "error", handleErr)
			continue
		}

		j.logger.InfoContext(ctx, "Recurrent order restarted",
			"order_id", candidate.ID.String(), "gap_in_days", candidate.GapInDays)
	}
}
