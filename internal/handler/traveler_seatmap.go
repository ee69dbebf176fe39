package handler

import (
	"net/http" // http status codes
	"strconv"  // strconv parses the optional cap override
	"strings"  // strings trims seat ids

	"github.com/labstack/echo/v4" // echo request context

	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/model"
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/repository"
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/seating"
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/session"
)

// TravelerHandler serves the self-service seat selection flow.  Travelers
// never mutate bookings directly: they build a capped selection against a
// trip's seat map and confirm it for the booking submission flow to pick up.
type TravelerHandler struct {
	TripRepo    *repository.TripRepo
	BookingRepo *repository.BookingRepo
	Sessions    *session.Store
}

func NewTravelerHandler(tripRepo *repository.TripRepo, bookingRepo *repository.BookingRepo, sessions *session.Store) *TravelerHandler {
	if tripRepo == nil || bookingRepo == nil || sessions == nil {
		panic("nil dependency passed to NewTravelerHandler")
	}
	return &TravelerHandler{TripRepo: tripRepo, BookingRepo: bookingRepo, Sessions: sessions}
}

// maskPassengers hides who a seat is booked for while keeping occupancy
// visible.  Travelers and guests see that a seat is taken, never by whom.
func maskPassengers(l seating.Layout) seating.Layout {
	out := make(seating.Layout, len(l))
	for i, row := range l {
		cells := make([]seating.SeatCell, len(row))
		copy(cells, row)
		for j := range cells {
			if cells[j].Kind == seating.KindSeat && cells[j].Passenger != "" {
				cells[j].Passenger = "booked"
			}
		}
		out[i] = cells
	}
	return out
}

// capParam reads the optional ?max= cap override; -1 means absent.
func capParam(c echo.Context) (int, bool) {
	raw := c.QueryParam("max")
	if raw == "" {
		return -1, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// travelerScope is the traveler-side counterpart of the organizer's seat-map
// scope: an active trip, a unit inside its fleet and the capped selection
// session synced to the trip's bookings.
type travelerScope struct {
	userID   uint64
	trip     *model.Trip
	unit     seating.FleetUnit
	bookings []seating.Booking
	sess     *session.SeatSession
	capMoved bool // cap shrink truncated the selection this request
}

func (h *TravelerHandler) loadScope(c echo.Context) (*travelerScope, bool) {
	userID, err := getUserID(c)
	if err != nil {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		return nil, false
	}
	tripID := pathID(c, "id")
	if tripID == 0 {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		return nil, false
	}
	busIndex, ok := unitParam(c)
	if !ok {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid unit"})
		return nil, false
	}
	maxSel, ok := capParam(c)
	if !ok {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid max"})
		return nil, false
	}

	ctx := c.Request().Context()
	trip, err := h.TripRepo.GetByID(ctx, tripID)
	if err != nil {
		if err == repository.ErrTripNotFound {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		return nil, false
	}
	if !trip.IsActive {
		_ = c.JSON(http.StatusForbidden, echo.Map{"error": "trip is not open for selection"})
		return nil, false
	}
	unit, ok := unitForIndex(fleetForTrip(trip), busIndex)
	if !ok {
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "unit not in fleet"})
		return nil, false
	}
	rows, err := h.BookingRepo.GetByTrip(ctx, tripID)
	if err != nil {
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		return nil, false
	}
	bookings := engineBookings(rows)

	initialCap := 0
	if maxSel >= 0 {
		initialCap = maxSel
	}
	sess := h.Sessions.Get(userID, tripID, busIndex, seating.ModePassenger, initialCap)
	sess.Selection = sess.Selection.SyncBookings(bookings, busIndex)

	sc := &travelerScope{userID: userID, trip: trip, unit: unit, bookings: bookings, sess: sess}
	if maxSel >= 0 {
		// Cap changes apply mid-session and may truncate what is already
		// picked; the response carries a flag so clients re-render.
		sc.sess.Selection, sc.capMoved = sc.sess.Selection.SetMaxSelection(maxSel)
	}
	return sc, true
}

func (sc *travelerScope) render() echo.Map {
	layout := maskPassengers(seating.Annotate(seating.Generate(sc.unit.Type), sc.bookings, sc.unit.UnitIndex))
	return echo.Map{
		"trip_id":       sc.trip.ID,
		"unit":          sc.unit,
		"layout":        layout,
		"selection":     sc.sess.Selection,
		"phase":         sc.sess.Selection.Phase(),
		"cap_truncated": sc.capMoved,
	}
}

// Selection handles GET /v1/trips/:id/selection/:unit.  An optional
// ?seats=3,5 query seeds the selection, e.g. when a client restores a saved
// draft; the seed only applies while the server-side selection is empty so
// an in-progress choice is never clobbered.
func (h *TravelerHandler) Selection(c echo.Context) error {
	sc, ok := h.loadScope(c)
	if !ok {
		return nil
	}
	if raw := c.QueryParam("seats"); raw != "" {
		var seed []string
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				seed = append(seed, id)
			}
		}
		sc.sess.Selection = sc.sess.Selection.ApplyInitial(seed)
	}
	h.Sessions.Put(sc.userID, sc.trip.ID, sc.unit.UnitIndex, sc.sess)
	return c.JSON(http.StatusOK, sc.render())
}

// Click handles POST /v1/trips/:id/selection/:unit/click.  Booked seats are
// no-ops and the cap blocks additions but never removals; the live selection
// comes back on every click so clients stay in sync without a second call.
func (h *TravelerHandler) Click(c echo.Context) error {
	sc, ok := h.loadScope(c)
	if !ok {
		return nil
	}
	var req clickReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Seat) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat required"})
	}
	sc.sess.Selection = sc.sess.Selection.Click(strings.TrimSpace(req.Seat))
	h.Sessions.Put(sc.userID, sc.trip.ID, sc.unit.UnitIndex, sc.sess)
	return c.JSON(http.StatusOK, sc.render())
}

// Confirm handles POST /v1/trips/:id/selection/:unit/confirm.  It publishes
// the chosen seat ids without touching bookings; turning them into bookings
// belongs to the submission flow.
func (h *TravelerHandler) Confirm(c echo.Context) error {
	sc, ok := h.loadScope(c)
	if !ok {
		return nil
	}
	seats := sc.sess.Selection.Confirm()
	if len(seats) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nothing selected"})
	}
	h.Sessions.Put(sc.userID, sc.trip.ID, sc.unit.UnitIndex, sc.sess)
	return c.JSON(http.StatusOK, echo.Map{
		"trip_id": sc.trip.ID,
		"unit":    sc.unit.UnitIndex,
		"seats":   seats,
		"count":   len(seats),
	})
}
