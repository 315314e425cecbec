package middleware

import (
	"net/http"

	"halabooking/models"
	"halabooking/utils"

	"github.com/gin-gonic/gin"
)

// bookingInputKey is the context key under which the parsed input is stored.
const bookingInputKey = "bookingInput"

// ValidateBooking parses and validates the booking payload before it reaches
// the workflow. Validation failures return 400 with the field-level messages
// and never touch the payment gateway.
func ValidateBooking() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.BookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			c.Abort()
			return
		}

		input.ApplyDefaults()
		if errs := input.Validate(); len(errs) > 0 {
			utils.JSONValidationError(c, errs)
			c.Abort()
			return
		}

		c.Set(bookingInputKey, input)
		c.Next()
	}
}

// BookingInputFromContext returns the input stored by ValidateBooking.
func BookingInputFromContext(c *gin.Context) (models.BookingInput, bool) {
	v, ok := c.Get(bookingInputKey)
	if !ok {
		return models.BookingInput{}, false
	}
	input, ok := v.(models.BookingInput)
	return input, ok
}
