package routes

import (
	"net/http"
	"time"

	"halabooking/handlers"
	"halabooking/middleware"
	"halabooking/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking workflow.
// Update, delete, and status changes are administrative operations and sit
// behind the admin token.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.POST("", middleware.ValidateBooking(), h.CreateBooking)
		api.GET("", h.GetAllBookings)
		api.GET("/:id", h.GetBookingByID)
		api.GET("/reference/:referenceNumber", h.GetBookingByReference)
		api.POST("/verify-payment", h.VerifyPayment)

		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.PUT("/:id", middleware.ValidateBooking(), h.UpdateBooking)
		admin.PATCH("/:id/status", h.UpdateBookingStatus)
		admin.DELETE("/:id", h.DeleteBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, h)
}
