package notification

import (
	"context"

	"halabooking/models"

	"go.uber.org/zap"
)

// Service delivers the payment verification code to the passenger.
type Service interface {
	SendVerificationCode(ctx context.Context, booking *models.Booking) error
}

// LogEmailSender writes the outgoing message to the log instead of a real
// mail provider. Swap this for an actual email integration in production.
type LogEmailSender struct {
	Logger *zap.Logger
}

func (s *LogEmailSender) SendVerificationCode(ctx context.Context, booking *models.Booking) error {
	s.Logger.Sugar().Infof(
		"Sending email to %s: your verification code for booking %s is %s",
		booking.Email, booking.ReferenceNumber, booking.PaymentVerificationCode,
	)
	return nil
}
