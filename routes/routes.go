package routes

import (
	"net/http"
	"time"

	organizerRepo "meetly/database/repository/organizer"
	"meetly/handlers"
	"meetly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers and the repository the auth middleware
// needs, so route registration stays in one place.
type HandlerBundle struct {
	OrganizerRepo organizerRepo.OrganizerRepository

	Auth     *handlers.AuthHandler
	Settings *handlers.SettingsHandler
	Slots    *handlers.SlotHandler
	Bookings *handlers.BookingHandler
}

// RegisterAuthRoutes registers organizer registration and login.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
	}
}

// RegisterSettingsRoutes registers the organizer configuration endpoints.
// Both require an authenticated organizer.
func RegisterSettingsRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/settings")
	{
		api.Use(middleware.JWTAuthOrganizerMiddleware(hb.OrganizerRepo))
		api.GET("", hb.Settings.GetSettingsHandler)
		api.PUT("", hb.Settings.UpdateSettingsHandler)
	}
}

// RegisterSlotRoutes registers the public availability listing.
func RegisterSlotRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/api/slots", hb.Slots.GetAvailableSlotsHandler)
}

// RegisterBookingRoutes registers the booking endpoints. Creation and
// rescheduling are invitee-facing and public; the list and cancellation
// belong to the organizer dashboard.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.PUT("/:id/reschedule", hb.Bookings.RescheduleBookingHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthOrganizerMiddleware(hb.OrganizerRepo))
		protected.GET("", hb.Bookings.ListBookingsHandler)
		protected.DELETE("/:id", hb.Bookings.DeleteBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Meetly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterSlotRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
