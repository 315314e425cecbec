package notification

import (
	"context"
	"fmt"

	"halabooking/models"
	"halabooking/services/tasks"

	"github.com/hibiken/asynq"
)

// QueueSender enqueues verification-code delivery onto the async worker
// instead of sending inline, so a slow mail hop never delays the booking
// response.
type QueueSender struct {
	Client *asynq.Client
}

func (s *QueueSender) SendVerificationCode(ctx context.Context, booking *models.Booking) error {
	payload := tasks.VerificationPayload{
		BookingID:       booking.ID,
		ReferenceNumber: booking.ReferenceNumber,
		Email:           booking.Email,
		Phone:           booking.Phone,
		Code:            booking.PaymentVerificationCode,
	}
	task, opts, err := tasks.NewVerificationTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build verification task: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue verification task: %w", err)
	}
	return nil
}
