package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"halabooking/config"
	"halabooking/models"
	"halabooking/services/notification"
	"halabooking/services/tasks"

	"github.com/hibiken/asynq"
)

// InitVerificationWorker runs the async worker in background. It drains the
// verification:send queue and hands each payload to the notification service.
func InitVerificationWorker(sender notification.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeVerificationSend, handleVerificationTask(sender))

	go func() {
		log.Println("[VerificationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[VerificationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[VerificationWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleVerificationTask(sender notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.VerificationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[VerificationWorker] invalid payload: %v", err)
			return err
		}

		booking := &models.Booking{
			ID:                      p.BookingID,
			ReferenceNumber:         p.ReferenceNumber,
			Email:                   p.Email,
			Phone:                   p.Phone,
			PaymentVerificationCode: p.Code,
		}

		if err := sender.SendVerificationCode(ctx, booking); err != nil {
			log.Printf("[VerificationWorker] failed to deliver code for %s: %v", p.ReferenceNumber, err)
			return err
		}
		return nil
	}
}
