package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"slotbook/handlers"
	"slotbook/middleware"
)

// RegisterRoutes centralizes registration of all endpoints and the
// per-route middleware. Everything under /api requires a verified
// identity; /health does not.
func RegisterRoutes(r *gin.Engine, verifier middleware.TokenVerifier, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Firebase-Token"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(verifier))
	{
		api.GET("/me", handlers.Me)

		api.POST("/bookings", hb.Booking.CreateBooking)
		api.GET("/bookings", hb.Booking.ListBookings)
		api.GET("/bookings/:id", hb.Booking.GetBooking)
		api.PATCH("/bookings/:id", hb.Booking.UpdateBookingStatus)

		api.POST("/providers", hb.Provider.CreateProvider)
		api.GET("/providers", hb.Provider.ListProviders)

		api.POST("/availability", hb.Provider.CreateSlot)
		api.GET("/availability/:providerId", hb.Provider.ListSlots)
	}
}
