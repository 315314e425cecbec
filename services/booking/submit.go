package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "halabooking/database/repository/booking"
	"halabooking/models"
	"halabooking/services/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitBooking validates the request, runs the zero-risk card validation
// against the gateway, and persists the booking in pending state with a
// fresh reference number and verification code. No booking is written if
// validation or any gateway step fails.
func (s *DefaultBookingService) SubmitBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	input.ApplyDefaults()
	if errs := input.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	b := &models.Booking{
		ID: uuid.New().String(),

		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
		Nationality:    input.Nationality,
		PassportNumber: input.PassportNumber,

		FlightNumber:  input.FlightNumber,
		Airline:       input.Airline,
		TripType:      input.TripType,
		DepartureDate: input.DepartureDate,
		DepartureTime: input.DepartureTime,
		ReturnDate:    input.ReturnDate,
		ReturnTime:    input.ReturnTime,

		SelectedServices: input.SelectedServices,

		PaymentMethod:   input.PaymentMethod,
		CardNumber:      models.MaskCardNumber(input.CardNumber),
		CardName:        input.CardName,
		CardExpiry:      input.CardExpiry,
		SavePaymentInfo: input.SavePaymentInfo,

		Status:                  models.StatusPending,
		TotalPrice:              *input.TotalPrice,
		PaymentVerificationCode: generateVerificationCode(),
	}

	if models.IsCardRail(input.PaymentMethod) {
		if err := s.validateCard(ctx, input, b); err != nil {
			return nil, err
		}
	}

	// Persist with a fresh reference number; the unique index is the final
	// arbiter, so a collision just means regenerate and retry.
	var persistErr error
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		b.ReferenceNumber = newReferenceNumber(time.Now())
		persistErr = s.Repo.Create(b)
		if persistErr == nil {
			break
		}
		if !errors.Is(persistErr, bookingRepo.ErrDuplicateReference) {
			break
		}
		s.Logger.Warn("reference number collision, regenerating",
			zap.String("reference", b.ReferenceNumber),
			zap.Int("attempt", attempt+1))
	}
	if persistErr != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", persistErr)
	}

	s.cacheByReference(ctx, b)

	// Delivery is best effort; the code is also returned in the response.
	if s.Notifier != nil {
		if err := s.Notifier.SendVerificationCode(ctx, b); err != nil {
			s.Logger.Warn("failed to send verification code",
				zap.String("reference", b.ReferenceNumber), zap.Error(err))
		}
	}

	s.Logger.Sugar().Infof("Payment verification code for booking %s: %s",
		b.ReferenceNumber, b.PaymentVerificationCode)

	return b, nil
}

// validateCard runs the zero-risk card validation chain: tokenize, authorize
// with manual capture, confirm to trigger the issuer funds check, then cancel
// immediately so no funds are held or moved. On success the token and the
// cancelled authorization id are recorded on the booking for audit and reuse.
func (s *DefaultBookingService) validateCard(ctx context.Context, input models.BookingInput, b *models.Booking) error {
	token, err := s.Gateway.TokenizeCard(ctx, payment.CardDetails{
		Number: input.CardNumber,
		Name:   input.CardName,
		Expiry: input.CardExpiry,
		CVV:    input.CardCVV,
	})
	if err != nil {
		return err
	}

	auth, err := s.Gateway.Authorize(ctx, token, b.TotalPrice, bookingCurrency)
	if err != nil {
		return err
	}

	if _, err := s.Gateway.ConfirmAuthorization(ctx, auth.ID); err != nil {
		return err
	}

	if err := s.Gateway.CancelAuthorization(ctx, auth.ID); err != nil {
		return err
	}

	b.PaymentMethodToken = token
	b.PaymentIntentID = auth.ID
	b.CardVerified = true
	b.BalanceVerified = true
	return nil
}
