package payment

import (
	"errors"
	"fmt"
)

// Category classifies gateway failures for the workflow service.
type Category string

const (
	// CategoryCardDeclined means the user must fix their card details.
	CategoryCardDeclined Category = "cardDeclined"
	// CategoryInvalidRequest means malformed data was sent to the gateway.
	CategoryInvalidRequest Category = "invalidRequest"
	// CategoryProcessing covers transient or provider-side failures.
	CategoryProcessing Category = "processingError"
)

// Error is a gateway failure translated into the internal taxonomy.
type Error struct {
	Category Category
	Code     string
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// AsError unwraps err into a payment Error, if it is one.
func AsError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
