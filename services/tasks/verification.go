package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeVerificationSend = "verification:send"

// VerificationPayload carries what the worker needs to deliver a
// verification code without another database read.
type VerificationPayload struct {
	BookingID       string `json:"bookingId"`
	ReferenceNumber string `json:"referenceNumber"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Code            string `json:"code"`
}

func NewVerificationTask(payload VerificationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeVerificationSend, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}
