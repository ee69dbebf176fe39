package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/handler"    // organizer handlers
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/middleware" // JWT + role middlewares
)

// RegisterOrganizer registers ORGANIZER-scoped endpoints under /v1.
// All routes require a valid JWT and ORGANIZER role.
func RegisterOrganizer(e *echo.Echo, o *handler.OrganizerHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ORGANIZER"),
	)

	// ---- Trips ----
	g.POST("/trips", o.CreateTrip)
	g.GET("/trips", o.ListTrips)
	g.PUT("/trips/:id", o.UpdateTrip)
	g.PATCH("/trips/:id", o.UpdateTrip) // allow partial/semantic updates via PATCH as well
	g.DELETE("/trips/:id", o.DeleteTrip)

	// ---- Seat-map editing ----
	// Every route below is scoped to one vehicle unit of one trip.  The
	// server is the single holder of selection state; each call returns the
	// annotated grid plus the live session so clients never diff locally.
	g.GET("/trips/:id/seatmap/:unit", o.Seatmap)
	g.POST("/trips/:id/seatmap/:unit/click", o.Click)
	g.POST("/trips/:id/seatmap/:unit/confirm", o.ConfirmSelection) // open the naming dialog
	g.POST("/trips/:id/seatmap/:unit/save", o.SavePrompt)          // commit: name books, empty name clears
	g.POST("/trips/:id/seatmap/:unit/cancel", o.CancelPrompt)      // close dialog, keep selection
	g.POST("/trips/:id/seatmap/:unit/deselect", o.Deselect)

	// ---- Drag assignment ----
	// Two-phase protocol: a drop records the pending (seat, passenger) pair,
	// confirm commits it, cancel discards it.
	g.POST("/trips/:id/seatmap/:unit/assign", o.Assign)
	g.POST("/trips/:id/seatmap/:unit/assign/confirm", o.AssignConfirm)
	g.POST("/trips/:id/seatmap/:unit/assign/cancel", o.AssignCancel)
}
