package booking

import (
	"context"
	"testing"

	"halabooking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBookingsEmpty(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeGateway())

	bookings, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestGetBookingNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeGateway())

	_, err := svc.GetBooking(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetBookingByReferenceNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeGateway())

	_, err := svc.GetBookingByReference(context.Background(), "HALA-20250601-0000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetBookingByReferenceRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeGateway())
	b := submitPending(t, svc)

	got, err := svc.GetBookingByReference(context.Background(), b.ReferenceNumber)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestUpdateBookingAppliesClientFields(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeGateway())
	b := submitPending(t, svc)

	input := validInput()
	input.FirstName = "Yusuf"
	input.FlightNumber = "EK202"

	updated, err := svc.UpdateBooking(context.Background(), b.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Yusuf", updated.FirstName)
	assert.Equal(t, "EK202", updated.FlightNumber)

	// System fields survive an update untouched.
	assert.Equal(t, b.ReferenceNumber, updated.ReferenceNumber)
	assert.Equal(t, b.PaymentVerificationCode, updated.PaymentVerificationCode)
	assert.Equal(t, models.StatusPending, updated.Status)
}

func TestUpdateBookingRejectsInvalidInput(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeGateway())
	b := submitPending(t, svc)

	input := validInput()
	input.Email = "not-an-email"

	_, err := svc.UpdateBooking(context.Background(), b.ID, input)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "Please provide a valid email address")
}

func TestUpdateBookingNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeGateway())

	_, err := svc.UpdateBooking(context.Background(), "no-such-id", validInput())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBooking(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeGateway())
	b := submitPending(t, svc)

	require.NoError(t, svc.DeleteBooking(context.Background(), b.ID))

	_, err := svc.GetBooking(context.Background(), b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBookingNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeGateway())
	err := svc.DeleteBooking(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"pending to confirmed", models.StatusPending, models.StatusConfirmed, true},
		{"pending to cancelled", models.StatusPending, models.StatusCancelled, true},
		{"pending to completed", models.StatusPending, models.StatusCompleted, false},
		{"confirmed to completed", models.StatusConfirmed, models.StatusCompleted, true},
		{"confirmed to cancelled", models.StatusConfirmed, models.StatusCancelled, true},
		{"confirmed to pending", models.StatusConfirmed, models.StatusPending, false},
		{"cancelled is terminal", models.StatusCancelled, models.StatusPending, false},
		{"completed is terminal", models.StatusCompleted, models.StatusCancelled, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := newTestService(repo, newFakeGateway())
			b := submitPending(t, svc)
			b.Status = tc.from
			require.NoError(t, repo.Update(b))

			updated, err := svc.SetStatus(context.Background(), b.ID, tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, updated.Status)
				return
			}

			var tErr *InvalidTransitionError
			require.ErrorAs(t, err, &tErr)
			assert.Equal(t, tc.from, tErr.From)
			assert.Equal(t, tc.to, tErr.To)

			stored, _ := repo.GetByID(b.ID)
			assert.Equal(t, tc.from, stored.Status)
		})
	}
}

func TestSetStatusSameValueIsNoOp(t *testing.T) {
	for _, status := range []string{models.StatusPending, models.StatusConfirmed, models.StatusCancelled, models.StatusCompleted} {
		t.Run(status, func(t *testing.T) {
			repo := newFakeRepo()
			svc := newTestService(repo, newFakeGateway())
			b := submitPending(t, svc)
			b.Status = status
			require.NoError(t, repo.Update(b))

			updated, err := svc.SetStatus(context.Background(), b.ID, status)
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
		})
	}
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeGateway())
	b := submitPending(t, svc)

	_, err := svc.SetStatus(context.Background(), b.ID, "archived")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "Invalid status value")
}

func TestSetStatusNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeGateway())
	_, err := svc.SetStatus(context.Background(), "no-such-id", models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}
