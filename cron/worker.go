package cron

import (
	"context"
	"log"
	"time"

	"meetly/config"
	"meetly/services/reminder"

	"github.com/hibiken/asynq"
)

const TypeReminderScan = "reminder:scan"

// InitReminderWorker runs the reminder pipeline in the background: an asynq
// scheduler enqueues a scan task on the configured cadence and the worker
// executes it against the booking store.
func InitReminderWorker(dispatcher *reminder.Dispatcher) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(TypeReminderScan, handleReminderScan(dispatcher))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(config.AppConfig.ReminderScanSpec, asynq.NewTask(TypeReminderScan, nil)); err != nil {
		log.Fatalf("[ReminderWorker] failed to register scan schedule: %v", err)
	}

	go func() {
		log.Println("[ReminderWorker] starting scan scheduler...")
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[ReminderWorker] scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderScan(dispatcher *reminder.Dispatcher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if err := dispatcher.Run(ctx); err != nil {
			log.Printf("[ReminderWorker] scan failed: %v", err)
			return err
		}
		return nil
	}
}
