package routes

import (
	"net/http"
	"time"

	"clubbook/handlers"
	"clubbook/middleware"
	"clubbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterResourceRoutes registers the availability and schedule endpoints of
// a coach or location.
func RegisterResourceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/resources/:resourceID")
	{
		// Public: anyone may look at what is offered.
		api.GET("/windows", hb.GetWindowsHandler)
		api.GET("/slots", hb.ListSlotsHandler)
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/calendar.ics", hb.CalendarHandler)

		// Booking requires an authenticated party.
		api.POST("/bookings", middleware.JWTAuthMiddleware(), hb.CreateBookingHandler)

		// Schedule changes are reserved to the resource itself.
		owner := api.Group("")
		owner.Use(middleware.JWTAuthMiddleware(), middleware.RequireResourceOwner())
		owner.GET("/bookings", hb.ListResourceBookingsHandler)
		owner.POST("/slots", hb.AddSlotHandler)
		owner.PUT("/slots/:slotID", hb.EditSlotHandler)
		owner.DELETE("/slots/:slotID", hb.DeleteSlotHandler)
		owner.POST("/slots/:slotID/copy", hb.CopySlotHandler)
		owner.GET("/blackouts", hb.ListBlackoutsHandler)
		owner.POST("/blackouts", hb.AddBlackoutHandler)
		owner.DELETE("/blackouts/:date", hb.RemoveBlackoutHandler)
		owner.PUT("/services/:name", hb.UpsertServiceHandler)
		owner.DELETE("/services/:name", hb.DeleteServiceHandler)
	}
}

// RegisterBookingRoutes registers the booking party's own endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.GET("/mine", hb.ListMyBookingsHandler)
		bookingGroup.DELETE("/:bookingID", hb.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "message": "Hi, I'm clubbook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, maxRequestsPerMin int) {
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(maxRequestsPerMin))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterResourceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
