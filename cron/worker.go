package cron

import (
	"context"
	"fmt"
	"time"

	"huddle/config"
	"huddle/services/tasks"
	"huddle/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// EventPurger deletes calendar events dated before a cutoff.
type EventPurger interface {
	PurgeEventsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// RetentionWorker runs the purge task on the configured schedule.
type RetentionWorker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
}

// InitRetentionWorker starts the asynq server and scheduler in the background.
// It returns nil when retention is disabled.
func InitRetentionWorker(purger EventPurger) (*RetentionWorker, error) {
	logger := utils.GetLogger()
	days := config.AppConfig.RetentionDays
	if days <= 0 {
		logger.Info("[RetentionWorker] retention disabled")
		return nil, nil
	}

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCalendarPurge, handlePurgeTask(purger, days, time.Now))

	task, err := tasks.NewPurgeTask(0)
	if err != nil {
		return nil, err
	}
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register(config.AppConfig.RetentionCron, task, asynq.MaxRetry(3)); err != nil {
		return nil, fmt.Errorf("invalid RETENTION_CRON %q: %w", config.AppConfig.RetentionCron, err)
	}

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("failed to start retention worker: %w", err)
	}
	if err := scheduler.Start(); err != nil {
		srv.Shutdown()
		return nil, fmt.Errorf("failed to start retention scheduler: %w", err)
	}

	logger.Info("[RetentionWorker] started",
		zap.String("schedule", config.AppConfig.RetentionCron),
		zap.Int("retentionDays", days))
	return &RetentionWorker{server: srv, scheduler: scheduler}, nil
}

// Shutdown stops the scheduler and waits for running tasks.
func (w *RetentionWorker) Shutdown() {
	if w == nil {
		return
	}
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

// retentionCutoff is midnight UTC, days before now.
func retentionCutoff(now time.Time, days int) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days)
}

func handlePurgeTask(purger EventPurger, defaultDays int, now func() time.Time) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		p, err := tasks.ParsePurgePayload(task)
		if err != nil {
			logger.Error("[RetentionHandler] invalid payload", zap.Error(err))
			return fmt.Errorf("invalid purge payload: %v: %w", err, asynq.SkipRetry)
		}
		days := defaultDays
		if p.RetentionDays > 0 {
			days = p.RetentionDays
		}

		cutoff := retentionCutoff(now(), days)
		n, err := purger.PurgeEventsBefore(ctx, cutoff)
		if err != nil {
			logger.Error("[RetentionHandler] purge failed", zap.Time("cutoff", cutoff), zap.Error(err))
			return err
		}
		logger.Info("[RetentionHandler] purge complete", zap.Time("cutoff", cutoff), zap.Int64("deleted", n))
		return nil
	}
}
