package handler // handler package contains organizer-specific trip handlers

import (
	"database/sql" // sql is imported for sentinel errors like sql.ErrNoRows
	"net/http"     // http provides status code constants
	"strings"      // strings offers trimming utilities
	"time"         // time parses the departure timestamp

	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/model"      // model holds the persisted record types
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/repository" // repository holds database access
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/seating"    // seating packs the fleet preview
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/session"    // session keeps seat-map editing state
	"github.com/labstack/echo/v4"                                                // echo is the web framework used for handlers
)

// OrganizerHandler bundles the dependencies organizers need to manage trips
// and their seat maps.
type OrganizerHandler struct {
	TripRepo    *repository.TripRepo    // trip persistence
	BookingRepo *repository.BookingRepo // seat booking persistence
	Sessions    *session.Store          // in-memory seat-map sessions
}

// NewOrganizerHandler constructs an OrganizerHandler and panics if any
// dependency is nil.
func NewOrganizerHandler(tripRepo *repository.TripRepo, bookingRepo *repository.BookingRepo, sessions *session.Store) *OrganizerHandler {
	if tripRepo == nil || bookingRepo == nil || sessions == nil {
		panic("nil dependency passed to NewOrganizerHandler")
	}
	return &OrganizerHandler{TripRepo: tripRepo, BookingRepo: bookingRepo, Sessions: sessions}
}

type tripBody struct {
	Title          string `json:"title"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	DepartsAt      string `json:"departs_at"` // RFC 3339
	AvailableSeats int    `json:"available_seats"`
	IsActive       *bool  `json:"is_active,omitempty"`
}

func (b *tripBody) validate() (time.Time, string) {
	b.Title = strings.TrimSpace(b.Title)
	b.Origin = strings.TrimSpace(b.Origin)
	b.Destination = strings.TrimSpace(b.Destination)
	if b.Title == "" || b.Origin == "" || b.Destination == "" {
		return time.Time{}, "title, origin and destination are required"
	}
	departs, err := time.Parse(time.RFC3339, b.DepartsAt)
	if err != nil {
		return time.Time{}, "departs_at must be RFC 3339"
	}
	if b.AvailableSeats < 0 {
		// Negative demand is meaningless; treat it as an empty trip the
		// same way the fleet packer does.
		b.AvailableSeats = 0
	}
	return departs, ""
}

// CreateTrip handles POST /v1/trips.
func (h *OrganizerHandler) CreateTrip(c echo.Context) error {
	organizerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body tripBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	departs, msg := body.validate()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	trip := &model.Trip{
		OrganizerID:    organizerID,
		Title:          body.Title,
		Origin:         body.Origin,
		Destination:    body.Destination,
		DepartsAt:      departs,
		AvailableSeats: body.AvailableSeats,
	}
	if err := h.TripRepo.Create(c.Request().Context(), trip); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create trip"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"trip":  trip,
		"fleet": seating.PackFleet(trip.AvailableSeats),
	})
}

// ListTrips handles GET /v1/trips and returns the organizer's own trips.
func (h *OrganizerHandler) ListTrips(c echo.Context) error {
	organizerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.TripRepo.ListByOrganizer(c.Request().Context(), organizerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"count": len(items), "items": items})
}

// UpdateTrip handles PUT/PATCH /v1/trips/:id.  Editing available_seats
// repacks the fleet on the next render; bookings keep their unit indices,
// so shrinking a fleet can leave bookings on units that no longer render
// until the organizer clears them.
func (h *OrganizerHandler) UpdateTrip(c echo.Context) error {
	organizerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body tripBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	departs, msg := body.validate()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	existing, err := h.TripRepo.GetByIDAndOrganizer(c.Request().Context(), id, organizerID)
	if err != nil {
		if err == repository.ErrTripNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	isActive := existing.IsActive
	if body.IsActive != nil {
		isActive = *body.IsActive
	}
	if err := h.TripRepo.UpdateByIDAndOrganizer(c.Request().Context(), id, organizerID,
		body.Title, body.Origin, body.Destination, departs, body.AvailableSeats, isActive); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, _ := h.TripRepo.GetByID(c.Request().Context(), id)
	return c.JSON(http.StatusOK, echo.Map{
		"trip":  updated,
		"fleet": seating.PackFleet(body.AvailableSeats),
	})
}

// DeleteTrip handles DELETE /v1/trips/:id.  Trips with bookings are
// protected by a 409 so passengers are not silently dropped.
func (h *OrganizerHandler) DeleteTrip(c echo.Context) error {
	organizerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.TripRepo.DeleteByIDAndOrganizer(c.Request().Context(), id, organizerID); err != nil {
		switch err {
		case sql.ErrNoRows:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "trip has seat bookings"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
