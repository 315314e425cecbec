package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// dateLayout is the ISO date format accepted for departure and return dates.
const dateLayout = "2006-01-02"

var validate = validator.New()

// BookingInput is the client-submitted payload for creating or updating a
// booking. System-assigned fields (reference number, verification code,
// status, timestamps) are absent here.
type BookingInput struct {
	// Passenger details.
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passportNumber"`

	// Flight details.
	FlightNumber  string `json:"flightNumber"`
	Airline       string `json:"airline"`
	TripType      string `json:"tripType"`
	DepartureDate string `json:"departureDate"`
	DepartureTime string `json:"departureTime"`
	ReturnDate    string `json:"returnDate"`
	ReturnTime    string `json:"returnTime"`

	// Service details.
	SelectedServices []SelectedService `json:"selectedServices"`

	// Payment details.
	PaymentMethod   string   `json:"paymentMethod"`
	CardNumber      string   `json:"cardNumber"`
	CardName        string   `json:"cardName"`
	CardExpiry      string   `json:"cardExpiry"`
	CardCVV         string   `json:"cardCVV"`
	SavePaymentInfo bool     `json:"savePaymentInfo"`
	TotalPrice      *float64 `json:"totalPrice"`
}

// ApplyDefaults fills the defaulted fields before validation: payment method
// falls back to the card rail and every service line gets quantity 1.
func (in *BookingInput) ApplyDefaults() {
	if in.PaymentMethod == "" {
		in.PaymentMethod = PaymentMethodCard
	}
	for i := range in.SelectedServices {
		if in.SelectedServices[i].Quantity == 0 {
			in.SelectedServices[i].Quantity = 1
		}
	}
}

// ServicesTotal recomputes the booking total from the service lines.
func (in *BookingInput) ServicesTotal() float64 {
	var total float64
	for _, s := range in.SelectedServices {
		total += s.Price * float64(s.Quantity)
	}
	return total
}

// Validate checks the full field set and returns the list of human-readable
// field errors. An empty slice means the input is valid. Defaults must be
// applied before calling.
func (in *BookingInput) Validate() []string {
	var errs []string

	// Passenger details.
	if strings.TrimSpace(in.FirstName) == "" {
		errs = append(errs, "First name is required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs = append(errs, "Last name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, "Email is required")
	} else if validate.Var(in.Email, "email") != nil {
		errs = append(errs, "Please provide a valid email address")
	}
	if strings.TrimSpace(in.Phone) == "" {
		errs = append(errs, "Phone number is required")
	}
	if strings.TrimSpace(in.Nationality) == "" {
		errs = append(errs, "Nationality is required")
	}
	if strings.TrimSpace(in.PassportNumber) == "" {
		errs = append(errs, "Passport number is required")
	}

	// Flight details.
	if strings.TrimSpace(in.FlightNumber) == "" {
		errs = append(errs, "Flight number is required")
	}
	if strings.TrimSpace(in.Airline) == "" {
		errs = append(errs, "Airline is required")
	}

	switch in.TripType {
	case "":
		errs = append(errs, "Trip type is required")
	case TripOneWay, TripRoundTrip:
	default:
		errs = append(errs, "Trip type must be either oneWay or roundTrip")
	}

	departure, err := time.Parse(dateLayout, in.DepartureDate)
	if in.DepartureDate == "" {
		errs = append(errs, "Departure date is required")
	} else if err != nil {
		errs = append(errs, "Departure date must be a valid date")
	}
	if strings.TrimSpace(in.DepartureTime) == "" {
		errs = append(errs, "Departure time is required")
	}

	if in.TripType == TripRoundTrip {
		if in.ReturnDate == "" {
			errs = append(errs, "Return date is required for round trip")
		} else if ret, rerr := time.Parse(dateLayout, in.ReturnDate); rerr != nil {
			errs = append(errs, "Return date must be a valid date")
		} else if err == nil && ret.Before(departure) {
			errs = append(errs, "Return date cannot be earlier than departure date")
		}
		if strings.TrimSpace(in.ReturnTime) == "" {
			errs = append(errs, "Return time is required for round trip")
		}
	}

	// Service details.
	if len(in.SelectedServices) == 0 {
		errs = append(errs, "At least one service must be selected")
	}
	for i, s := range in.SelectedServices {
		if strings.TrimSpace(s.ID) == "" {
			errs = append(errs, fmt.Sprintf("Service %d: id is required", i+1))
		}
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, fmt.Sprintf("Service %d: name is required", i+1))
		}
		if s.Price < 0 {
			errs = append(errs, fmt.Sprintf("Service %d: price must not be negative", i+1))
		}
		if s.Quantity < 1 {
			errs = append(errs, fmt.Sprintf("Service %d: quantity must be at least 1", i+1))
		}
	}

	// Payment details. Both rails charge through the card gateway, so full
	// card capture is required either way.
	if !IsCardRail(in.PaymentMethod) {
		errs = append(errs, "Payment method must be either card or debitCard")
	} else {
		if strings.TrimSpace(in.CardNumber) == "" {
			errs = append(errs, "Card number is required")
		}
		if strings.TrimSpace(in.CardName) == "" {
			errs = append(errs, "Name on card is required")
		}
		if strings.TrimSpace(in.CardExpiry) == "" {
			errs = append(errs, "Card expiry date is required")
		}
		if strings.TrimSpace(in.CardCVV) == "" {
			errs = append(errs, "Card CVV is required")
		}
	}

	// Total price must be present, non-negative, and match the recomputed
	// service-line sum. The client figure is never trusted on its own.
	if in.TotalPrice == nil {
		errs = append(errs, "Total price is required")
	} else if *in.TotalPrice < 0 {
		errs = append(errs, "Total price must not be negative")
	} else if len(in.SelectedServices) > 0 && math.Abs(*in.TotalPrice-in.ServicesTotal()) > 0.01 {
		errs = append(errs, "Total price does not match the selected services")
	}

	return errs
}
