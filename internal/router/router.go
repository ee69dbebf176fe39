package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/handler"    // import the handlers that implement business logic
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/middleware" // JWT + role middlewares
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems use this endpoint to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes.  Unauthenticated
// operations live under /v1/auth; protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token: the presented token is revoked and
	// a fresh pair is issued.
	g.POST("/refresh", a.Refresh)
	// Logout does not require JWT authentication: a valid refresh token in
	// the body identifies exactly one session to terminate.
	g.POST("/logout", a.Logout)

	// Protected identity echo, open to both roles.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("ORGANIZER", "TRAVELER"))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers unauthenticated browse endpoints: layout and
// fleet previews plus guest views of trips and their seat maps.  Responses
// never include passenger names.  The optional middlewares (Redis response
// cache, rate limiter) apply to the whole group when supplied.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mws ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mws...)

	// Empty seat grids per vehicle type; unknown types render the van shape.
	g.GET("/layouts/:type", p.Layout)
	// Preview how a passenger total packs into vehicle units.
	g.GET("/fleet", p.Fleet)

	// Guest trip views.  Seat maps are masked: occupancy only, no names.
	g.GET("/trips/:id", p.Trip)
	g.GET("/trips/:id/seatmap", p.TripSeatmap)
}
