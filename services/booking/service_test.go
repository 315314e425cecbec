package booking

import (
	"context"
	"errors"

	bookingRepo "halabooking/database/repository/booking"
	"halabooking/models"
	"halabooking/services/payment"

	"go.uber.org/zap"
)

// fakeRepo is an in-memory BookingRepository.
type fakeRepo struct {
	bookings    []*models.Booking
	createCalls int

	// failDuplicates makes the first N Create calls report a reference
	// collision, exercising the regeneration loop.
	failDuplicates int
	createErr      error
	updateErr      error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{}
}

func (r *fakeRepo) Create(b *models.Booking) error {
	r.createCalls++
	if r.failDuplicates > 0 {
		r.failDuplicates--
		return bookingRepo.ErrDuplicateReference
	}
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.bookings {
		if existing.ReferenceNumber == b.ReferenceNumber {
			return bookingRepo.ErrDuplicateReference
		}
	}
	clone := *b
	r.bookings = append(r.bookings, &clone)
	return nil
}

func (r *fakeRepo) GetByID(id string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) GetByReference(ref string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ReferenceNumber == ref {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) GetAll() ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(r.bookings))
	for i := len(r.bookings) - 1; i >= 0; i-- {
		out = append(out, *r.bookings[i])
	}
	return out, nil
}

func (r *fakeRepo) Update(b *models.Booking) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for i, existing := range r.bookings {
		if existing.ID == b.ID {
			clone := *b
			r.bookings[i] = &clone
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

func (r *fakeRepo) Delete(id string) error {
	for i, existing := range r.bookings {
		if existing.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

// fakeGateway records calls and fails on demand.
type fakeGateway struct {
	tokenizeErr  error
	authorizeErr error
	confirmErr   error
	cancelErr    error
	captureErr   error

	captureStatus string // defaults to succeeded

	tokenizeCalls  int
	authorizeCalls int
	confirmCalls   int
	cancelCalls    int
	captureCalls   int

	lastCaptureToken  string
	lastCaptureAmount float64
	cancelledIDs      []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{captureStatus: payment.AuthorizationSucceeded}
}

func (g *fakeGateway) totalCalls() int {
	return g.tokenizeCalls + g.authorizeCalls + g.confirmCalls + g.cancelCalls + g.captureCalls
}

func (g *fakeGateway) TokenizeCard(ctx context.Context, card payment.CardDetails) (string, error) {
	g.tokenizeCalls++
	if g.tokenizeErr != nil {
		return "", g.tokenizeErr
	}
	return "pm_test_token", nil
}

func (g *fakeGateway) Authorize(ctx context.Context, token string, amount float64, currency string) (*payment.Authorization, error) {
	g.authorizeCalls++
	if g.authorizeErr != nil {
		return nil, g.authorizeErr
	}
	return &payment.Authorization{ID: "pi_validation", Status: "requires_confirmation"}, nil
}

func (g *fakeGateway) ConfirmAuthorization(ctx context.Context, id string) (*payment.Authorization, error) {
	g.confirmCalls++
	if g.confirmErr != nil {
		return nil, g.confirmErr
	}
	return &payment.Authorization{ID: id, Status: "requires_capture"}, nil
}

func (g *fakeGateway) CancelAuthorization(ctx context.Context, id string) error {
	g.cancelCalls++
	if g.cancelErr != nil {
		return g.cancelErr
	}
	g.cancelledIDs = append(g.cancelledIDs, id)
	return nil
}

func (g *fakeGateway) Capture(ctx context.Context, token string, amount float64, currency string, description string) (*payment.Authorization, error) {
	g.captureCalls++
	if g.captureErr != nil {
		return nil, g.captureErr
	}
	g.lastCaptureToken = token
	g.lastCaptureAmount = amount
	return &payment.Authorization{ID: "pi_charge", Status: g.captureStatus}, nil
}

func newTestService(repo *fakeRepo, gw *fakeGateway) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:    repo,
		Gateway: gw,
		Logger:  zap.NewNop(),
	}
}

// validInput builds a complete, valid one-way booking request.
func validInput() models.BookingInput {
	total := 50.0
	return models.BookingInput{
		FirstName:      "Amina",
		LastName:       "Hassan",
		Email:          "amina@example.com",
		Phone:          "+97450001234",
		Nationality:    "Qatari",
		PassportNumber: "QA1234567",

		FlightNumber:  "QR123",
		Airline:       "Qatar Airways",
		TripType:      models.TripOneWay,
		DepartureDate: "2025-06-01",
		DepartureTime: "14:30",

		SelectedServices: []models.SelectedService{
			{ID: "meet_greet", Name: "Meet & Greet", Price: 50, Quantity: 1},
		},

		PaymentMethod: models.PaymentMethodCard,
		CardNumber:    "4242424242424242",
		CardName:      "Amina Hassan",
		CardExpiry:    "12/26",
		CardCVV:       "123",
		TotalPrice:    &total,
	}
}

var errBoom = errors.New("boom")
