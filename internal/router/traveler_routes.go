package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/handler"    // traveler handlers
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/middleware" // JWT + role middlewares
)

// RegisterTraveler registers TRAVELER-scoped endpoints under /v1.  Travelers
// build a capped seat selection; they never write bookings directly.
func RegisterTraveler(e *echo.Echo, t *handler.TravelerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("TRAVELER", "ORGANIZER"), // organizers may book their own trips too
	)

	g.GET("/trips/:id/selection/:unit", t.Selection)
	g.POST("/trips/:id/selection/:unit/click", t.Click)
	g.POST("/trips/:id/selection/:unit/confirm", t.Confirm)
}
