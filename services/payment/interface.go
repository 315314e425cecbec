package payment

import "context"

// AuthorizationSucceeded is the gateway status indicating funds were captured.
const AuthorizationSucceeded = "succeeded"

// CardDetails holds the raw card fields submitted by the client. They only
// live long enough to be exchanged for a reusable token.
type CardDetails struct {
	Number string
	Name   string
	Expiry string // "MM/YY"
	CVV    string
}

// Authorization is the gateway-side artifact of an authorize or capture call.
type Authorization struct {
	ID     string
	Status string
}

// Gateway isolates all interaction with the external card-payment provider.
//
// Authorize creates a manual-capture authorization without confirming it;
// ConfirmAuthorization triggers the issuer-side funds check; CancelAuthorization
// voids it so no funds are held. Capture creates a confirmed, immediately
// captured charge from a stored token — the real payment.
type Gateway interface {
	TokenizeCard(ctx context.Context, card CardDetails) (string, error)
	Authorize(ctx context.Context, token string, amount float64, currency string) (*Authorization, error)
	ConfirmAuthorization(ctx context.Context, id string) (*Authorization, error)
	CancelAuthorization(ctx context.Context, id string) error
	Capture(ctx context.Context, token string, amount float64, currency string, description string) (*Authorization, error)
}
