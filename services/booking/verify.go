package booking

import (
	"context"
	"fmt"

	"halabooking/models"
	"halabooking/services/payment"

	"go.uber.org/zap"
)

// VerifyPayment matches the submitted code against the booking's stored
// verification code and, on a card rail, runs the real charge through the
// stored payment-method token. On success the booking flips to confirmed.
//
// Re-verifying an already verified booking returns it unchanged without a
// second charge.
func (s *DefaultBookingService) VerifyPayment(ctx context.Context, referenceNumber, code string) (*models.Booking, error) {
	b, err := s.Repo.GetByReference(referenceNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to look up booking %s: %w", referenceNumber, err)
	}
	if b == nil {
		return nil, ErrNotFound
	}

	// Exact digit match, no normalization.
	if b.PaymentVerificationCode != code {
		return nil, ErrInvalidCode
	}

	if b.IsPaymentVerified {
		s.Logger.Info("booking already verified, skipping charge",
			zap.String("reference", b.ReferenceNumber))
		return b, nil
	}

	if b.IsCardRail() && b.PaymentMethodToken != "" {
		description := fmt.Sprintf("Payment for booking %s", b.ReferenceNumber)
		auth, err := s.Gateway.Capture(ctx, b.PaymentMethodToken, b.TotalPrice, bookingCurrency, description)
		if err != nil {
			return nil, err
		}
		if auth.Status != payment.AuthorizationSucceeded {
			return nil, &payment.Error{
				Category: payment.CategoryProcessing,
				Message:  fmt.Sprintf("Payment failed with status: %s", auth.Status),
			}
		}
		b.PaymentIntentID = auth.ID
	}

	b.IsPaymentVerified = true
	b.Status = models.StatusConfirmed
	if err := s.Repo.Update(b); err != nil {
		return nil, fmt.Errorf("failed to confirm booking %s: %w", b.ReferenceNumber, err)
	}

	s.invalidateReference(ctx, b.ReferenceNumber)

	s.Logger.Info("payment verified",
		zap.String("reference", b.ReferenceNumber),
		zap.String("intent", b.PaymentIntentID))
	return b, nil
}
