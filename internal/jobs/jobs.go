// Package jobs runs the storefront's periodic maintenance on a cron schedule:
// warranty reminders, warranty expiry and email retries.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coolbreeze/storefront/internal/config"
	service "github.com/coolbreeze/storefront/internal/services"
	"github.com/robfig/cron/v3"
)

const (
	WarrantyReminders = "warranty-reminders"
	WarrantyExpiry    = "warranty-expiry"
	EmailRetry        = "email-retry"

	defaultTimeout = 5 * time.Minute
)

// Runner holds the job bodies. Each method runs once and is safe to call
// outside the scheduler.
type Runner struct {
	warranties     service.WarrantyService
	notifications  service.NotificationService
	reminderWindow time.Duration
	maxAttempts    int
	now            func() time.Time
}

func NewRunner(cfg *config.Jobs, warranties service.WarrantyService, notifications service.NotificationService) *Runner {
	window := cfg.ReminderWindowDays
	if window <= 0 {
		window = 30
	}

	maxAttempts := cfg.EmailMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	return &Runner{
		warranties:     warranties,
		notifications:  notifications,
		reminderWindow: time.Duration(window) * 24 * time.Hour,
		maxAttempts:    maxAttempts,
		now:            time.Now,
	}
}

func (r *Runner) SendWarrantyReminders(ctx context.Context) error {
	sent, err := r.warranties.SendExpiryReminders(ctx, r.now(), r.reminderWindow)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Warranty reminders sent", slog.Int("count", sent))

	return nil
}

func (r *Runner) ExpireWarranties(ctx context.Context) error {
	expired, err := r.warranties.ExpireWarranties(ctx, r.now())
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Warranties expired", slog.Int64("count", expired))

	return nil
}

func (r *Runner) RetryEmails(ctx context.Context) error {
	retried, err := r.notifications.RetryFailed(ctx, r.maxAttempts)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Failed emails retried", slog.Int("count", retried))

	return nil
}

type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	entries map[string]cron.EntryID
}

// NewScheduler registers every job on a cron in cfg.Timezone. Panics inside a
// job are recovered and logged.
func NewScheduler(cfg *config.Jobs, runner *Runner) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid jobs timezone %q: %w", cfg.Timezone, err)
	}

	logger := cronLogger{logger: slog.Default().With(slog.String("component", "jobs"))}

	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		timeout: defaultTimeout,
		entries: make(map[string]cron.EntryID),
	}

	jobs := []struct {
		name string
		spec string
		run  func(context.Context) error
	}{
		{WarrantyReminders, cfg.WarrantyReminderSpec, runner.SendWarrantyReminders},
		{WarrantyExpiry, cfg.WarrantyExpirySpec, runner.ExpireWarranties},
		{EmailRetry, cfg.EmailRetrySpec, runner.RetryEmails},
	}

	for _, j := range jobs {
		id, err := s.cron.AddFunc(j.spec, s.wrap(j.name, j.run))
		if err != nil {
			return nil, fmt.Errorf("invalid schedule %q for job %s: %w", j.spec, j.name, err)
		}

		s.entries[j.name] = id
	}

	return s, nil
}

func (s *Scheduler) wrap(name string, run func(context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		logger := slog.Default().With(slog.String("job", name))
		start := time.Now()

		if err := run(ctx); err != nil {
			logger.Error("Job failed", slog.String("error", err.Error()), slog.Duration("duration", time.Since(start)))

			return
		}

		logger.Info("Job finished", slog.Duration("duration", time.Since(start)))
	}
}

// Next reports when the named job runs next.
func (s *Scheduler) Next(name string) (time.Time, bool) {
	id, ok := s.entries[name]
	if !ok {
		return time.Time{}, false
	}

	return s.cron.Entry(id).Schedule.Next(time.Now()), true
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("Job scheduler started", slog.Int("jobs", len(s.entries)))
}

// Stop waits for running jobs to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
		slog.Info("Job scheduler stopped")
	case <-ctx.Done():
		slog.Warn("Job scheduler stop timed out")
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
