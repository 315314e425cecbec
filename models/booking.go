package models

import "time"

// Trip types accepted on a booking.
const (
	TripOneWay    = "oneWay"
	TripRoundTrip = "roundTrip"
)

// Payment methods. Both are card rails charged through the same gateway;
// PaymentMethodCard is the default.
const (
	PaymentMethodCard      = "card"
	PaymentMethodDebitCard = "debitCard"
)

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// SelectedService is one service line on a booking.
type SelectedService struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"` // defaults to 1
}

// Booking represents an airport-services booking record.
type Booking struct {
	ID string `bson:"id" json:"id"`

	// Passenger details.
	FirstName      string `bson:"first_name" json:"firstName"`
	LastName       string `bson:"last_name" json:"lastName"`
	Email          string `bson:"email" json:"email"`
	Phone          string `bson:"phone" json:"phone"`
	Nationality    string `bson:"nationality" json:"nationality"`
	PassportNumber string `bson:"passport_number" json:"passportNumber"`

	// Flight details.
	FlightNumber  string `bson:"flight_number" json:"flightNumber"`
	Airline       string `bson:"airline" json:"airline"`
	TripType      string `bson:"trip_type" json:"tripType"`
	DepartureDate string `bson:"departure_date" json:"departureDate"` // "YYYY-MM-DD"
	DepartureTime string `bson:"departure_time" json:"departureTime"`
	ReturnDate    string `bson:"return_date,omitempty" json:"returnDate,omitempty"`
	ReturnTime    string `bson:"return_time,omitempty" json:"returnTime,omitempty"`

	// Service details.
	SelectedServices []SelectedService `bson:"selected_services" json:"selectedServices"`

	// Payment details. The card number is stored masked to its last four
	// digits and the CVV is never persisted.
	PaymentMethod           string `bson:"payment_method" json:"paymentMethod"`
	CardNumber              string `bson:"card_number,omitempty" json:"cardNumber,omitempty"`
	CardName                string `bson:"card_name,omitempty" json:"cardName,omitempty"`
	CardExpiry              string `bson:"card_expiry,omitempty" json:"cardExpiry,omitempty"`
	SavePaymentInfo         bool   `bson:"save_payment_info" json:"savePaymentInfo"`
	PaymentVerificationCode string `bson:"payment_verification_code" json:"paymentVerificationCode"`
	IsPaymentVerified       bool   `bson:"is_payment_verified" json:"isPaymentVerified"`
	PaymentMethodToken      string `bson:"payment_method_token,omitempty" json:"paymentMethodToken,omitempty"`
	PaymentIntentID         string `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	CardVerified            bool   `bson:"card_verified" json:"cardVerified"`
	BalanceVerified         bool   `bson:"balance_verified" json:"balanceVerified"`

	Status          string  `bson:"status" json:"status"`
	TotalPrice      float64 `bson:"total_price" json:"totalPrice"`
	ReferenceNumber string  `bson:"reference_number" json:"referenceNumber"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsCardRail reports whether the booking pays through the card gateway.
func (b *Booking) IsCardRail() bool {
	return IsCardRail(b.PaymentMethod)
}

// IsCardRail reports whether the given payment method is one of the card rails.
func IsCardRail(method string) bool {
	return method == PaymentMethodCard || method == PaymentMethodDebitCard
}

// IsValidStatus reports whether s is one of the four booking statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to another.
// Transitions only run forward: pending → confirmed → completed, with
// cancellation allowed from any non-terminal state. Terminal states
// (cancelled, completed) admit no further transitions.
func CanTransition(from, to string) bool {
	if from == to {
		return false
	}
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}

// MaskCardNumber reduces a raw card number to its last four digits.
func MaskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "**** **** **** " + number[len(number)-4:]
}
