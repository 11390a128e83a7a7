package routes

import (
	"time"

	"agendly/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAttendantRoutes registers attendant management endpoints for the
// administrative UI.
func RegisterAttendantRoutes(r *gin.Engine, attendantHandler *handlers.AttendantHandler) {
	api := r.Group("/api/attendants")
	{
		api.GET("", attendantHandler.ListAttendantsHandler)
		api.GET("/:id", attendantHandler.GetAttendantByIDHandler)
		api.POST("", attendantHandler.CreateAttendantHandler)
		api.PUT("/:id", attendantHandler.UpdateAttendantHandler)
		api.DELETE("/:id", attendantHandler.DeleteAttendantHandler)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking workflow.
func RegisterBookingRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler) {
	api := r.Group("/api/appointments")
	{
		api.POST("", bookingHandler.CreateAppointment)
		api.GET("", bookingHandler.ListAppointments)
		api.DELETE("/:id", bookingHandler.CancelAppointment)
	}
	// Advisory selection for optimistic UI; booking re-validates server-side.
	r.GET("/api/distribution/preview", bookingHandler.PreviewAttendant)
}

// RegisterHealthRoute registers the health snapshot endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes wires CORS and all route groups.
func RegisterRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, attendantHandler *handlers.AttendantHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAttendantRoutes(r, attendantHandler)
	RegisterBookingRoutes(r, bookingHandler)
	RegisterHealthRoute(r)
}
