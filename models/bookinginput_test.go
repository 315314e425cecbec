package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func validBookingInput() BookingInput {
	return BookingInput{
		FirstName:      "Amina",
		LastName:       "Hassan",
		Email:          "amina@example.com",
		Phone:          "+97455512345",
		Nationality:    "Qatari",
		PassportNumber: "P1234567",
		FlightNumber:   "QR123",
		Airline:        "Qatar Airways",
		TripType:       TripOneWay,
		DepartureDate:  "2025-07-15",
		DepartureTime:  "14:30",
		SelectedServices: []SelectedService{
			{ID: "meet_greet", Name: "Meet & Greet", Price: 50, Quantity: 1},
		},
		PaymentMethod: PaymentMethodCard,
		CardNumber:    "4242424242424242",
		CardName:      "Amina Hassan",
		CardExpiry:    "12/26",
		CardCVV:       "123",
		TotalPrice:    floatPtr(50),
	}
}

func TestValidateAccepted(t *testing.T) {
	in := validBookingInput()
	assert.Empty(t, in.Validate())
}

func TestValidateFieldMessages(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BookingInput)
		want   string
	}{
		{"missing first name", func(in *BookingInput) { in.FirstName = "" }, "First name is required"},
		{"missing last name", func(in *BookingInput) { in.LastName = " " }, "Last name is required"},
		{"missing email", func(in *BookingInput) { in.Email = "" }, "Email is required"},
		{"malformed email", func(in *BookingInput) { in.Email = "not-an-email" }, "Please provide a valid email address"},
		{"missing phone", func(in *BookingInput) { in.Phone = "" }, "Phone number is required"},
		{"missing nationality", func(in *BookingInput) { in.Nationality = "" }, "Nationality is required"},
		{"missing passport", func(in *BookingInput) { in.PassportNumber = "" }, "Passport number is required"},
		{"missing flight number", func(in *BookingInput) { in.FlightNumber = "" }, "Flight number is required"},
		{"missing airline", func(in *BookingInput) { in.Airline = "" }, "Airline is required"},
		{"missing trip type", func(in *BookingInput) { in.TripType = "" }, "Trip type is required"},
		{"bad trip type", func(in *BookingInput) { in.TripType = "multiCity" }, "Trip type must be either oneWay or roundTrip"},
		{"missing departure date", func(in *BookingInput) { in.DepartureDate = "" }, "Departure date is required"},
		{"bad departure date", func(in *BookingInput) { in.DepartureDate = "15/07/2025" }, "Departure date must be a valid date"},
		{"missing departure time", func(in *BookingInput) { in.DepartureTime = "" }, "Departure time is required"},
		{"no services", func(in *BookingInput) { in.SelectedServices = nil }, "At least one service must be selected"},
		{"bad payment method", func(in *BookingInput) { in.PaymentMethod = "cash" }, "Payment method must be either card or debitCard"},
		{"missing card number", func(in *BookingInput) { in.CardNumber = "" }, "Card number is required"},
		{"missing card name", func(in *BookingInput) { in.CardName = "" }, "Name on card is required"},
		{"missing card expiry", func(in *BookingInput) { in.CardExpiry = "" }, "Card expiry date is required"},
		{"missing card cvv", func(in *BookingInput) { in.CardCVV = "" }, "Card CVV is required"},
		{"missing total price", func(in *BookingInput) { in.TotalPrice = nil }, "Total price is required"},
		{"negative total price", func(in *BookingInput) { in.TotalPrice = floatPtr(-1) }, "Total price must not be negative"},
		{"mismatched total price", func(in *BookingInput) { in.TotalPrice = floatPtr(99) }, "Total price does not match the selected services"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validBookingInput()
			tc.mutate(&in)
			assert.Contains(t, in.Validate(), tc.want)
		})
	}
}

func TestValidateRoundTripRules(t *testing.T) {
	in := validBookingInput()
	in.TripType = TripRoundTrip

	errs := in.Validate()
	assert.Contains(t, errs, "Return date is required for round trip")
	assert.Contains(t, errs, "Return time is required for round trip")

	in.ReturnDate = "2025-07-10"
	in.ReturnTime = "09:00"
	assert.Contains(t, in.Validate(), "Return date cannot be earlier than departure date")

	in.ReturnDate = "2025-07-20"
	assert.Empty(t, in.Validate())
}

func TestValidateToleratesRoundingOnTotal(t *testing.T) {
	in := validBookingInput()
	in.TotalPrice = floatPtr(50.005)
	assert.Empty(t, in.Validate())
}

func TestValidateServiceLines(t *testing.T) {
	in := validBookingInput()
	in.SelectedServices = []SelectedService{
		{ID: "", Name: "", Price: -5, Quantity: 1},
	}
	in.TotalPrice = floatPtr(-5)

	errs := in.Validate()
	assert.Contains(t, errs, "Service 1: id is required")
	assert.Contains(t, errs, "Service 1: name is required")
	assert.Contains(t, errs, "Service 1: price must not be negative")
}

func TestApplyDefaults(t *testing.T) {
	in := BookingInput{
		SelectedServices: []SelectedService{
			{ID: "lounge", Name: "Lounge Access", Price: 30},
			{ID: "porter", Name: "Porter", Price: 10, Quantity: 3},
		},
	}
	in.ApplyDefaults()

	assert.Equal(t, PaymentMethodCard, in.PaymentMethod)
	assert.Equal(t, 1, in.SelectedServices[0].Quantity)
	assert.Equal(t, 3, in.SelectedServices[1].Quantity)
}

func TestApplyDefaultsKeepsExplicitPaymentMethod(t *testing.T) {
	in := BookingInput{PaymentMethod: PaymentMethodDebitCard}
	in.ApplyDefaults()
	assert.Equal(t, PaymentMethodDebitCard, in.PaymentMethod)
}

func TestServicesTotal(t *testing.T) {
	in := BookingInput{
		SelectedServices: []SelectedService{
			{ID: "lounge", Name: "Lounge Access", Price: 30, Quantity: 2},
			{ID: "porter", Name: "Porter", Price: 10, Quantity: 3},
		},
	}
	require.InDelta(t, 90.0, in.ServicesTotal(), 0.0001)
}
