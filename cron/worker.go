package cron

import (
	"context"
	"log"
	"time"

	"agendly/config"
	appointmentRepo "agendly/database/repository/appointment"

	"github.com/hibiken/asynq"
)

const TypeAppointmentSweep = "appointment:sweep"

// InitSweepWorker runs the async sweep worker in background. It periodically
// expires pending appointments whose date has already passed, so stale rows
// stop influencing load counts.
func InitSweepWorker(apptRepo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepDB,
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
	mux.HandleFunc(TypeAppointmentSweep, handleSweepTask(apptRepo))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeAppointmentSweep, nil)); err != nil {
		log.Printf("[SweepWorker] failed to register periodic sweep: %v", err)
		return
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[SweepWorker] scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[SweepWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SweepWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SweepWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleSweepTask(apptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		loc, err := time.LoadLocation(config.AppConfig.BusinessTimezone)
		if err != nil {
			loc = time.UTC
		}
		cutoff := time.Now().In(loc).Format("2006-01-02")

		expired, err := apptRepo.ExpireStalePending(cutoff)
		if err != nil {
			log.Printf("[SweepHandler] sweep failed: %v", err)
			return err
		}
		if expired > 0 {
			log.Printf("[SweepHandler] expired %d stale pending appointments before %s", expired, cutoff)
		}
		return nil
	}
}
