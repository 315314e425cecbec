package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "halabooking/database/repository/booking"
	"halabooking/models"
)

// ListBookings returns all bookings, newest first.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// GetBooking fetches a booking by id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// GetBookingByReference fetches a booking by reference number, through the
// read cache when one is wired.
func (s *DefaultBookingService) GetBookingByReference(ctx context.Context, referenceNumber string) (*models.Booking, error) {
	if cached := s.lookupCachedReference(ctx, referenceNumber); cached != nil {
		return cached, nil
	}

	b, err := s.Repo.GetByReference(referenceNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", referenceNumber, err)
	}
	if b == nil {
		return nil, ErrNotFound
	}

	s.cacheByReference(ctx, b)
	return b, nil
}

// UpdateBooking re-validates the full input and applies it to an existing
// booking. System-assigned fields (reference number, verification code,
// status, payment flags, gateway ids) are never client-writable.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, id string, input models.BookingInput) (*models.Booking, error) {
	input.ApplyDefaults()
	if errs := input.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	if b == nil {
		return nil, ErrNotFound
	}

	b.FirstName = input.FirstName
	b.LastName = input.LastName
	b.Email = input.Email
	b.Phone = input.Phone
	b.Nationality = input.Nationality
	b.PassportNumber = input.PassportNumber

	b.FlightNumber = input.FlightNumber
	b.Airline = input.Airline
	b.TripType = input.TripType
	b.DepartureDate = input.DepartureDate
	b.DepartureTime = input.DepartureTime
	b.ReturnDate = input.ReturnDate
	b.ReturnTime = input.ReturnTime

	b.SelectedServices = input.SelectedServices
	b.TotalPrice = *input.TotalPrice
	b.SavePaymentInfo = input.SavePaymentInfo

	if err := s.Repo.Update(b); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}

	s.invalidateReference(ctx, b.ReferenceNumber)
	return b, nil
}

// DeleteBooking removes a booking permanently.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) error {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	if b == nil {
		return ErrNotFound
	}

	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}

	s.invalidateReference(ctx, b.ReferenceNumber)
	return nil
}

// SetStatus moves a booking to one of the four statuses, enforcing the
// forward-only lifecycle.
func (s *DefaultBookingService) SetStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	if !models.IsValidStatus(status) {
		return nil, &ValidationError{Errors: []string{"Invalid status value"}}
	}

	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	if b == nil {
		return nil, ErrNotFound
	}

	// Setting the current status again is a no-op, not a transition.
	if b.Status == status {
		return b, nil
	}

	if !models.CanTransition(b.Status, status) {
		return nil, &InvalidTransitionError{From: b.Status, To: status}
	}

	b.Status = status
	if err := s.Repo.Update(b); err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}

	s.invalidateReference(ctx, b.ReferenceNumber)
	return b, nil
}
