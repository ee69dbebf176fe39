package handler

import (
	"context"  // context carries cancellation into the event publish
	"net/http" // http status codes
	"strings"  // strings trims passenger names
	"time"     // time stamps the saved event

	"github.com/labstack/echo/v4" // echo request context

	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/model"
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/queue"
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/repository"
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/seating"
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/session"
	queue_publisher "github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/service"
)

// seatmapScope is everything an organizer seat-map request operates on: the
// owned trip, the addressed vehicle unit, the trip's full booking list and
// the editing session synced to that list.
type seatmapScope struct {
	userID   uint64
	trip     *model.Trip
	unit     seating.FleetUnit
	bookings []seating.Booking
	sess     *session.SeatSession
}

type clickReq struct {
	Seat string `json:"seat"`
}
type saveReq struct {
	Name string `json:"name"`
}
type assignReq struct {
	Seat string `json:"seat"`
	Name string `json:"name"`
}

// loadScope resolves the trip (ownership enforced), the unit and the
// session for an organizer seat-map request.  On failure it writes the
// response itself and returns false.
func (h *OrganizerHandler) loadScope(c echo.Context) (*seatmapScope, bool) {
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

	ctx := c.Request().Context()
	trip, err := h.TripRepo.GetByIDAndOrganizer(ctx, tripID, userID)
	if err != nil {
		if err == repository.ErrTripNotFound {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
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

	sess := h.Sessions.Get(userID, tripID, busIndex, seating.ModeAdministrator, 0)
	// The database is authoritative; the session mirror follows it.
	sess.Selection = sess.Selection.SyncBookings(bookings, busIndex)

	return &seatmapScope{
		userID:   userID,
		trip:     trip,
		unit:     unit,
		bookings: bookings,
		sess:     sess,
	}, true
}

// render builds the standard seat-map response body.
func (sc *seatmapScope) render() echo.Map {
	layout := seating.Annotate(seating.Generate(sc.unit.Type), sc.bookings, sc.unit.UnitIndex)
	return echo.Map{
		"trip_id":   sc.trip.ID,
		"unit":      sc.unit,
		"layout":    layout,
		"selection": sc.sess.Selection,
		"phase":     sc.sess.Selection.Phase(),
		"pending":   sc.sess.Assignment.Pending,
		"bookings":  seating.UnitBookings(sc.bookings, sc.unit.UnitIndex),
	}
}

// publishSaved fires a SeatMapSavedEvent for a committed mutation.  Delivery
// is best effort and never fails the request.
func (h *OrganizerHandler) publishSaved(sc *seatmapScope, seats []string) {
	unitBookings := seating.UnitBookings(sc.bookings, sc.unit.UnitIndex)
	evt := queue.SeatMapSavedEvent{
		TripID:      sc.trip.ID,
		TripTitle:   sc.trip.Title,
		BusIndex:    sc.unit.UnitIndex,
		VehicleType: string(sc.unit.Type),
		SavedBy:     sc.userID,
		SeatNumbers: seats,
		BookedCount: len(unitBookings),
		SavedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = queue_publisher.PublishSeatMapSaved(ctx, evt)
}

// persist writes the unit's bookings back and refreshes the scope's list.
// An edit session is scoped to one unit, so the edited list is merged over
// the loaded one: other units pass through exactly as loaded.
func (h *OrganizerHandler) persist(c echo.Context, sc *seatmapScope, edited []seating.Booking) error {
	merged := seating.MergeUnit(sc.bookings, sc.unit.UnitIndex, seating.UnitBookings(edited, sc.unit.UnitIndex))
	rows := unitRows(merged, sc.trip.ID, sc.unit.UnitIndex)
	if err := h.BookingRepo.ReplaceUnit(c.Request().Context(), sc.trip.ID, sc.unit.UnitIndex, rows); err != nil {
		return err
	}
	sc.bookings = merged
	return nil
}

// Seatmap handles GET /v1/trips/:id/seatmap/:unit and returns the annotated
// grid together with the live editing session.
func (h *OrganizerHandler) Seatmap(c echo.Context) error {
	sc, ok := h.loadScope(c)
	if !ok {
		return nil
	}
	h.Sessions.Put(sc.userID, sc.trip.ID, sc.unit.UnitIndex, sc.sess)
	return c.JSON(http.StatusOK, sc.render())
}

// Click handles POST /v1/trips/:id/seatmap/:unit/click.
func (h *OrganizerHandler) Click(c echo.Context) error {
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

// ConfirmSelection handles POST /v1/trips/:id/seatmap/:unit/confirm and
// opens the naming dialog over the current selection.
func (h *OrganizerHandler) ConfirmSelection(c echo.Context) error {
	sc, ok := h.loadScope(c)
	if !ok {
		return nil
	}
	sc.sess.Selection = sc.sess.Selection.OpenPrompt()
	h.Sessions.Put(sc.userID, sc.trip.ID, sc.unit.UnitIndex, sc.sess)
	return c.JSON(http.StatusOK, sc.render())
}

// SavePrompt handles POST /v1/trips/:id/seatmap/:unit/save.  A non-empty
// name books the prompt's seats under it, an empty name clears them.  The
// result is persisted and a saved event published.
func (h *OrganizerHandler) SavePrompt(c echo.Context) error {
	sc, ok := h.loadScope(c)
	if !ok {
		return nil
	}
	var req saveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if sc.sess.Selection.Prompt == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "no open prompt"})
	}
	seats := append([]string(nil), sc.sess.Selection.Prompt.Seats...)

	nextSel, nextBookings := sc.sess.Selection.SavePrompt(strings.TrimSpace(req.Name), sc.bookings, sc.unit.UnitIndex)
	if err := h.persist(c, sc, nextBookings); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	sc.sess.Selection = nextSel
	h.Sessions.Put(sc.userID, sc.trip.ID, sc.unit.UnitIndex, sc.sess)
	h.publishSaved(sc, seats)
	return c.JSON(http.StatusOK, sc.render())
}

// CancelPrompt handles POST /v1/trips/:id/seatmap/:unit/cancel.  The dialog
// closes and the selection survives.
func (h *OrganizerHandler) CancelPrompt(c echo.Context) error {
	sc, ok := h.loadScope(c)
	if !ok {
		return nil
	}
	sc.sess.Selection = sc.sess.Selection.CancelPrompt()
	h.Sessions.Put(sc.userID, sc.trip.ID, sc.unit.UnitIndex, sc.sess)
	return c.JSON(http.StatusOK, sc.render())
}

// Deselect handles POST /v1/trips/:id/seatmap/:unit/deselect.
func (h *OrganizerHandler) Deselect(c echo.Context) error {
	sc, ok := h.loadScope(c)
	if !ok {
		return nil
	}
	sc.sess.Selection = sc.sess.Selection.Deselect()
	h.Sessions.Put(sc.userID, sc.trip.ID, sc.unit.UnitIndex, sc.sess)
	return c.JSON(http.StatusOK, sc.render())
}

// Assign handles POST /v1/trips/:id/seatmap/:unit/assign: the drop half of
// the drag-and-drop placement.  Nothing is booked until the confirm call.
func (h *OrganizerHandler) Assign(c echo.Context) error {
	sc, ok := h.loadScope(c)
	if !ok {
		return nil
	}
	var req assignReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Seat) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat required"})
	}
	sc.sess.Assignment = sc.sess.Assignment.Drop(strings.TrimSpace(req.Seat), strings.TrimSpace(req.Name))
	h.Sessions.Put(sc.userID, sc.trip.ID, sc.unit.UnitIndex, sc.sess)
	return c.JSON(http.StatusOK, sc.render())
}

// AssignConfirm handles POST /v1/trips/:id/seatmap/:unit/assign/confirm and
// commits the pending placement.  The previous occupant of the seat, if any,
// is overwritten.
func (h *OrganizerHandler) AssignConfirm(c echo.Context) error {
	sc, ok := h.loadScope(c)
	if !ok {
		return nil
	}
	pending := sc.sess.Assignment.Pending
	if pending == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "no pending assignment"})
	}
	nextAssign, nextBookings := sc.sess.Assignment.Confirm(sc.bookings, sc.unit.UnitIndex)
	if err := h.persist(c, sc, nextBookings); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	sc.sess.Assignment = nextAssign
	sc.sess.Selection = sc.sess.Selection.SyncBookings(sc.bookings, sc.unit.UnitIndex)
	h.Sessions.Put(sc.userID, sc.trip.ID, sc.unit.UnitIndex, sc.sess)
	h.publishSaved(sc, []string{pending.SeatID})
	return c.JSON(http.StatusOK, sc.render())
}

// AssignCancel handles POST /v1/trips/:id/seatmap/:unit/assign/cancel.
func (h *OrganizerHandler) AssignCancel(c echo.Context) error {
	sc, ok := h.loadScope(c)
	if !ok {
		return nil
	}
	sc.sess.Assignment = sc.sess.Assignment.Cancel()
	h.Sessions.Put(sc.userID, sc.trip.ID, sc.unit.UnitIndex, sc.sess)
	return c.JSON(http.StatusOK, sc.render())
}
