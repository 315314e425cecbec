package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"halabooking/middleware"
	"halabooking/services/booking"
	"halabooking/services/payment"
	"halabooking/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking workflow over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings. The payload has already been
// validated by the ValidateBooking middleware.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	input, ok := middleware.BookingInputFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", "missing booking payload")
		return
	}

	b, err := h.Service.SubmitBooking(c.Request.Context(), input)
	if err != nil {
		h.respondServiceError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"data": gin.H{
			"booking":         b,
			"referenceNumber": b.ReferenceNumber,
			// Included for demo purposes; production would deliver this
			// out of band only.
			"verificationCode": b.PaymentVerificationCode,
			"cardVerified":     b.CardVerified,
			"balanceVerified":  b.BalanceVerified,
		},
	})
}

// GetAllBookings handles GET /api/bookings.
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(bookings),
		"data":    bookings,
	})
}

// GetBookingByID handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "Failed to fetch booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": b})
}

// GetBookingByReference handles GET /api/bookings/reference/:referenceNumber.
func (h *BookingHandler) GetBookingByReference(c *gin.Context) {
	b, err := h.Service.GetBookingByReference(c.Request.Context(), c.Param("referenceNumber"))
	if err != nil {
		h.respondServiceError(c, err, "Failed to fetch booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": b})
}

// UpdateBooking handles PUT /api/bookings/:id. The payload has already been
// re-validated by the ValidateBooking middleware.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	input, ok := middleware.BookingInputFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", "missing booking payload")
		return
	}

	b, err := h.Service.UpdateBooking(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondServiceError(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking updated successfully",
		"data":    b,
	})
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Service.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		h.respondServiceError(c, err, "Failed to delete booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking deleted successfully",
	})
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	b, err := h.Service.SetStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		h.respondServiceError(c, err, "Failed to update booking status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Booking status updated to %s", b.Status),
		"data":    b,
	})
}

// VerifyPayment handles POST /api/bookings/verify-payment.
func (h *BookingHandler) VerifyPayment(c *gin.Context) {
	var body struct {
		ReferenceNumber  string `json:"referenceNumber"`
		VerificationCode string `json:"verificationCode"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	b, err := h.Service.VerifyPayment(c.Request.Context(), body.ReferenceNumber, body.VerificationCode)
	if err != nil {
		h.respondServiceError(c, err, "Failed to verify payment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified successfully",
		"data":    gin.H{"booking": b},
	})
}

// respondServiceError maps workflow errors onto the HTTP error taxonomy:
// validation → 400 with field messages, unknown id/reference → 404, payment
// errors → 400 (card/request) or 500 (processing), anything else → 500.
func (h *BookingHandler) respondServiceError(c *gin.Context, err error, fallback string) {
	var vErr *booking.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONValidationError(c, vErr.Errors)
		return
	}

	var tErr *booking.InvalidTransitionError
	if errors.As(err, &tErr) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status value", tErr.Error())
		return
	}

	if errors.Is(err, booking.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		return
	}

	if errors.Is(err, booking.ErrInvalidCode) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid verification code", "")
		return
	}

	if pErr, ok := payment.AsError(err); ok {
		switch pErr.Category {
		case payment.CategoryCardDeclined, payment.CategoryInvalidRequest:
			utils.JSONError(c, http.StatusBadRequest, pErr.Message, pErr.Code)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Payment processing error", pErr.Message)
		}
		return
	}

	h.Logger.Error(fallback, zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, fallback, "")
}
