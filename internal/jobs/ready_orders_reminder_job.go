package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReminderSchedule fires at the start of every minute.
const DefaultReminderSchedule = "0 * * * * *"

type remindReadyOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.RemindReadyOrdersCommand) (int, error)
}

// ReadyOrdersReminderJob nudges available couriers about ready orders that
// have waited longer than waitingFor without a courier.
type ReadyOrdersReminderJob struct {
	handler    remindReadyOrdersHandler
	schedule   string
	waitingFor time.Duration
	timeout    time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

func NewReadyOrdersReminderJob(
	handler remindReadyOrdersHandler,
	schedule string,
	waitingFor time.Duration,
	logger *slog.Logger,
) *ReadyOrdersReminderJob {
	if schedule == "" {
		schedule = DefaultReminderSchedule
	}
	return &ReadyOrdersReminderJob{
		handler:    handler,
		schedule:   schedule,
		waitingFor: waitingFor,
		timeout:    30 * time.Second,
		cron:       cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:     logger.With("component", "ready_orders_reminder_job"),
	}
}

// Start schedules the job. It fails when the schedule does not parse.
func (j *ReadyOrdersReminderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Ready orders reminder job started", "schedule", j.schedule)
	return nil
}

// Run sends one round of reminders.
func (j *ReadyOrdersReminderJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	cmd, err := commands.NewRemindReadyOrdersCommand(j.waitingFor)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid reminder command", "error", err)
		return
	}

	sent, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Ready orders reminder job failed", "error", err)
		return
	}
	if sent > 0 {
		j.logger.InfoContext(ctx, "Reminded couriers of ready orders", "reminders", sent)
	}
}

// Stop waits for a running round to finish.
func (j *ReadyOrdersReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Ready orders reminder job stopped")
}
