package handler // handler defines http handlers

import (
	"errors"  // errors provides sentinel values used in getUserID
	"strconv" // strconv converts strings to numeric types

	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/model"   // model holds the persisted record types
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/seating" // seating is the layout/allocation engine
	"github.com/labstack/echo/v4"                                             // echo defines request context types
)

// getUserID extracts the user_id from echo.Context and converts it to uint64.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses a numeric path parameter; zero means invalid.
func pathID(c echo.Context, name string) uint64 {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// unitParam parses the vehicle-unit index from the :unit path parameter or
// the ?unit query parameter, defaulting to 0 for single-unit trips.
func unitParam(c echo.Context) (int, bool) {
	raw := c.Param("unit")
	if raw == "" {
		raw = c.QueryParam("unit")
	}
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// fleetForTrip packs and flattens the trip's fleet from its requested
// passenger total.  Trips with no seats defined still render a single
// default coach.
func fleetForTrip(t *model.Trip) []seating.FleetUnit {
	return seating.Flatten(seating.PackFleet(t.AvailableSeats))
}

// unitForIndex returns the fleet unit addressed by busIndex, or false when
// the index is outside the trip's fleet.
func unitForIndex(fleet []seating.FleetUnit, busIndex int) (seating.FleetUnit, bool) {
	if busIndex < 0 || busIndex >= len(fleet) {
		return seating.FleetUnit{}, false
	}
	return fleet[busIndex], true
}

// engineBookings converts persisted rows into the engine's booking values.
func engineBookings(rows []model.SeatBooking) []seating.Booking {
	out := make([]seating.Booking, 0, len(rows))
	for _, r := range rows {
		out = append(out, seating.Booking{
			SeatNumber:    r.SeatNumber,
			PassengerName: r.PassengerName,
			BusIndex:      r.BusIndex,
		})
	}
	return out
}

// unitRows converts the engine bookings of one unit back into rows for
// persistence.
func unitRows(bookings []seating.Booking, tripID uint64, busIndex int) []model.SeatBooking {
	var out []model.SeatBooking
	for _, b := range seating.UnitBookings(bookings, busIndex) {
		out = append(out, model.SeatBooking{
			TripID:        tripID,
			BusIndex:      busIndex,
			SeatNumber:    b.SeatNumber,
			PassengerName: b.PassengerName,
		})
	}
	return out
}
