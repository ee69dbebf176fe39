package handler

import (
	"net/http" // http status codes
	"strconv"  // strconv parses the ?seats= total

	"github.com/labstack/echo/v4" // echo request context

	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/repository"
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/seating"
)

// PublicHandler serves unauthenticated read-only endpoints: layout previews,
// fleet packing previews and guest views of trips and their seat maps.
type PublicHandler struct {
	TripRepo    *repository.TripRepo
	BookingRepo *repository.BookingRepo
}

func NewPublicHandler(tripRepo *repository.TripRepo, bookingRepo *repository.BookingRepo) *PublicHandler {
	if tripRepo == nil || bookingRepo == nil {
		panic("nil dependency passed to NewPublicHandler")
	}
	return &PublicHandler{TripRepo: tripRepo, BookingRepo: bookingRepo}
}

// Layout handles GET /v1/layouts/:type and renders the empty grid for a
// vehicle type.  Unknown types still render: they fall back to the van shape
// the same way fleet rendering does.
func (h *PublicHandler) Layout(c echo.Context) error {
	t := seating.VehicleType(c.Param("type"))
	layout := seating.Generate(t)
	return c.JSON(http.StatusOK, echo.Map{
		"type":       t,
		"seat_count": layout.SeatCount(),
		"layout":     layout,
	})
}

// Fleet handles GET /v1/fleet?seats=N and previews how a passenger total
// packs into vehicle units.  Missing, malformed or negative totals read as
// zero, which packs to an empty fleet; the flattened view still shows the
// single default coach an empty fleet renders as.
func (h *PublicHandler) Fleet(c echo.Context) error {
	seats, err := strconv.Atoi(c.QueryParam("seats"))
	if err != nil || seats < 0 {
		seats = 0
	}
	units := seating.PackFleet(seats)
	return c.JSON(http.StatusOK, echo.Map{
		"seats":    seats,
		"units":    units,
		"flat":     seating.Flatten(units),
		"capacity": seating.FleetCapacity(units),
	})
}

// Trip handles GET /v1/trips/:id for guests.
func (h *PublicHandler) Trip(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	trip, err := h.TripRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrTripNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"trip":  trip,
		"fleet": seating.PackFleet(trip.AvailableSeats),
	})
}

// TripSeatmap handles GET /v1/trips/:id/seatmap?unit=N: the guest view of a
// unit's occupancy.  Passenger names are masked.
func (h *PublicHandler) TripSeatmap(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	busIndex, ok := unitParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid unit"})
	}
	ctx := c.Request().Context()
	trip, err := h.TripRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrTripNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	unit, ok := unitForIndex(fleetForTrip(trip), busIndex)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unit not in fleet"})
	}
	rows, err := h.BookingRepo.GetByTripAndUnit(ctx, id, busIndex)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	bookings := engineBookings(rows)
	layout := maskPassengers(seating.Annotate(seating.Generate(unit.Type), bookings, busIndex))
	return c.JSON(http.StatusOK, echo.Map{
		"trip_id":      trip.ID,
		"unit":         unit,
		"layout":       layout,
		"booked_count": len(bookings),
	})
}
