package booking

import (
	"context"

	"halabooking/models"
)

// BookingService turns client-submitted requests into persisted,
// payment-validated bookings and finalizes them on verification.
type BookingService interface {
	SubmitBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	VerifyPayment(ctx context.Context, referenceNumber, code string) (*models.Booking, error)

	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetBookingByReference(ctx context.Context, referenceNumber string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, input models.BookingInput) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string) (*models.Booking, error)
}
