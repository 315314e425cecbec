package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// StripeGateway implements Gateway against the Stripe API. The client is
// constructed once at process start; a missing key is a startup error.
type StripeGateway struct {
	api    *client.API
	logger *zap.Logger
}

// NewStripeGateway builds a gateway from the configured secret key.
func NewStripeGateway(apiKey string, logger *zap.Logger) (*StripeGateway, error) {
	if apiKey == "" {
		return nil, errors.New("stripe API key is missing; check your environment variables")
	}
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeGateway{api: api, logger: logger}, nil
}

// TokenizeCard exchanges raw card fields for a reusable payment-method token.
func (g *StripeGateway) TokenizeCard(ctx context.Context, card CardDetails) (string, error) {
	expMonth, expYear, err := parseExpiry(card.Expiry)
	if err != nil {
		return "", &Error{Category: CategoryInvalidRequest, Message: "Invalid card expiry date"}
	}

	params := &stripe.PaymentMethodParams{
		Type: stripe.String(string(stripe.PaymentMethodTypeCard)),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(strings.ReplaceAll(card.Number, " ", "")),
			ExpMonth: stripe.Int64(expMonth),
			ExpYear:  stripe.Int64(expYear),
			CVC:      stripe.String(card.CVV),
		},
	}
	if card.Name != "" {
		params.BillingDetails = &stripe.PaymentMethodBillingDetailsParams{
			Name: stripe.String(card.Name),
		}
	}
	params.Context = ctx

	pm, err := g.api.PaymentMethods.New(params)
	if err != nil {
		return "", g.translateError("tokenize card", err)
	}
	return pm.ID, nil
}

// Authorize creates a manual-capture payment intent without confirming it.
func (g *StripeGateway) Authorize(ctx context.Context, token string, amount float64, currency string) (*Authorization, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(toMinorUnits(amount)),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(token),
		Confirm:       stripe.Bool(false),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, g.translateError("authorize", err)
	}
	return &Authorization{ID: pi.ID, Status: string(pi.Status)}, nil
}

// ConfirmAuthorization confirms a pending authorization, triggering the
// issuer-side funds check.
func (g *StripeGateway) ConfirmAuthorization(ctx context.Context, id string) (*Authorization, error) {
	params := &stripe.PaymentIntentConfirmParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Confirm(id, params)
	if err != nil {
		return nil, g.translateError("confirm authorization", err)
	}
	return &Authorization{ID: pi.ID, Status: string(pi.Status)}, nil
}

// CancelAuthorization voids an authorization so no funds are held.
func (g *StripeGateway) CancelAuthorization(ctx context.Context, id string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx

	if _, err := g.api.PaymentIntents.Cancel(id, params); err != nil {
		return g.translateError("cancel authorization", err)
	}
	return nil
}

// Capture creates a confirmed, immediately captured charge from a stored
// token. This is the real payment, distinct from the validation authorization.
func (g *StripeGateway) Capture(ctx context.Context, token string, amount float64, currency string, description string) (*Authorization, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(toMinorUnits(amount)),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(token),
		Confirm:       stripe.Bool(true),
		Description:   stripe.String(description),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, g.translateError("capture", err)
	}
	return &Authorization{ID: pi.ID, Status: string(pi.Status)}, nil
}

// translateError maps Stripe's error taxonomy onto the internal categories.
func (g *StripeGateway) translateError(op string, err error) error {
	var sErr *stripe.Error
	if !errors.As(err, &sErr) {
		return &Error{Category: CategoryProcessing, Message: err.Error()}
	}

	g.logger.Warn("stripe call failed",
		zap.String("op", op),
		zap.String("type", string(sErr.Type)),
		zap.String("code", string(sErr.Code)))

	mapped := &Error{Code: string(sErr.Code), Message: sErr.Msg}
	switch sErr.Type {
	case stripe.ErrorTypeCard:
		mapped.Category = CategoryCardDeclined
		if mapped.Message == "" {
			mapped.Message = "Card verification failed"
		}
	case stripe.ErrorTypeInvalidRequest:
		mapped.Category = CategoryInvalidRequest
		if mapped.Message == "" {
			mapped.Message = "Invalid card information provided"
		}
	default:
		mapped.Category = CategoryProcessing
		if mapped.Message == "" {
			mapped.Message = "Payment processing error"
		}
	}
	return mapped
}

// parseExpiry splits an "MM/YY" card expiry into month and four-digit year.
func parseExpiry(expiry string) (int64, int64, error) {
	parts := strings.Split(strings.TrimSpace(expiry), "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed expiry %q", expiry)
	}
	month, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("malformed expiry month %q", parts[0])
	}
	year, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed expiry year %q", parts[1])
	}
	if year < 100 {
		year += 2000
	}
	return month, year, nil
}

// toMinorUnits converts a decimal amount to integer cents.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
