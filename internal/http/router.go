// README: HTTP router registration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Blast-git/Journey-Sync/internal/http/handlers"
	"github.com/Blast-git/Journey-Sync/internal/http/middleware"
	"github.com/Blast-git/Journey-Sync/internal/infra"
	"github.com/Blast-git/Journey-Sync/internal/modules/booking"
	"github.com/Blast-git/Journey-Sync/internal/modules/ride"
	"github.com/Blast-git/Journey-Sync/internal/modules/sos"
)

type RouterDeps struct {
	Rides     *ride.Service
	Bookings  *booking.Service
	SOS       *sos.Service
	Reminders handlers.ReminderRunner
	Verifier  infra.TokenVerifier
	Log       *slog.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Authorization", "Content-Type", "X-Client-Info"}
	r.Use(cors.New(corsCfg))

	rideHandler := handlers.NewRideHandler(deps.Rides)
	bookingHandler := handlers.NewBookingHandler(deps.Bookings)
	sosHandler := handlers.NewSOSHandler(deps.SOS)
	jobsHandler := handlers.NewJobsHandler(deps.Reminders)

	api := r.Group("/api")
	{
		// Cron trigger; access control is delegated to the deployment.
		api.POST("/jobs/notifications", jobsHandler.ProcessNotifications)

		authed := api.Group("", middleware.Auth(deps.Verifier))
		authed.GET("/rides", rideHandler.Search)
		authed.GET("/rides/:id", rideHandler.Get)

		authed.POST("/bookings", bookingHandler.Create)
		authed.GET("/bookings/:id", bookingHandler.Get)
		authed.POST("/bookings/:id/confirm", bookingHandler.Confirm)
		authed.POST("/bookings/:id/cancel", bookingHandler.Cancel)

		authed.GET("/users/:userID/emergency-contacts", sosHandler.ListContacts)
		authed.POST("/users/:userID/emergency-contacts", sosHandler.AddContact)
		authed.PUT("/users/:userID/emergency-contacts/:contactID", sosHandler.UpdateContact)
		authed.DELETE("/users/:userID/emergency-contacts/:contactID", sosHandler.DeleteContact)
		authed.POST("/users/:userID/sos", sosHandler.Trigger)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
