package bookingRepo

import (
	"errors"

	"halabooking/models"
)

// ErrDuplicateReference is returned by Create when the generated reference
// number collides with an existing booking. The unique index is the final
// arbiter; callers regenerate and retry.
var ErrDuplicateReference = errors.New("reference number already exists")

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines the interface for booking data access.
// Lookups return (nil, nil) when nothing matches.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByReference(referenceNumber string) (*models.Booking, error)
	GetAll() ([]models.Booking, error)
	Update(booking *models.Booking) error
	Delete(id string) error
}
