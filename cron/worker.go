package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"webnest/config"
	"webnest/models"
	"webnest/services/mailer"
	"webnest/services/tasks"

	"github.com/hibiken/asynq"
)

// MailQueueOpt returns the Redis connection the mail queue runs on.
func MailQueueOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}
}

// InitMailWorker runs the async mail worker in background.
func InitMailWorker(dispatcher mailer.Dispatcher) {
	srv := asynq.NewServer(
		MailQueueOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeWelcomeSend, handleWelcomeTask(dispatcher))

	go func() {
		log.Println("[MailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleWelcomeTask(dispatcher mailer.Dispatcher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.WelcomeMailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MailWorker] invalid payload: %v", err)
			return err
		}
		return dispatcher.SendWelcome(ctx, p)
	}
}
