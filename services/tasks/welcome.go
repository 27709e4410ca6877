package tasks

import (
	"encoding/json"

	"webnest/models"

	"github.com/hibiken/asynq"
)

const TypeWelcomeSend = "mail:welcome"

// NewWelcomeTask builds the queued task for a newsletter welcome
// email. Delivery is fire-and-forget: no retries are scheduled.
func NewWelcomeTask(payload models.WelcomeMailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeWelcomeSend, b)
	opts := []asynq.Option{asynq.MaxRetry(0)}

	return task, opts, nil
}
