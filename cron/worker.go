package cron

import (
	"context"
	"fmt"
	"time"

	"clubbook/config"
	"clubbook/services/tasks"
	"clubbook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt points asynq at the queue database.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewTaskMux routes booking tasks to notifier.
func NewTaskMux(notifier Notifier) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmed, func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.DecodePayload(task)
		if err != nil {
			return fmt.Errorf("invalid booking payload: %v: %w", err, asynq.SkipRetry)
		}
		return notifier.BookingConfirmed(ctx, p)
	})
	mux.HandleFunc(tasks.TypeBookingReminder, func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.DecodePayload(task)
		if err != nil {
			return fmt.Errorf("invalid booking payload: %v: %w", err, asynq.SkipRetry)
		}
		return notifier.BookingReminder(ctx, p)
	})
	return mux
}

// InitBookingWorker runs the async worker in background and returns the server
// so the caller can shut it down.
func InitBookingWorker(notifier Notifier) *asynq.Server {
	logger := utils.GetLogger()
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	mux := NewTaskMux(notifier)

	go monitorRedisConnection(logger)

	go func() {
		logger.Info("Starting booking task worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Booking worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Booking worker gave up; notifications stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// monitorRedisConnection pings the queue database periodically to detect failures at runtime.
func monitorRedisConnection(logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()
	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("Queue Redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
