package seating

// PendingAssignment is a passenger token dropped on a seat that has not
// been confirmed yet.
type PendingAssignment struct {
	SeatID        string `json:"seatId"`
	PassengerName string `json:"passengerName"`
}

// AssignmentState drives the two-phase drag/confirm protocol used by
// administrators to place a named passenger on a specific seat.  It never
// consults the selection session: dropping, confirming and cancelling are
// independent of whatever multi-select is open at the time.
type AssignmentState struct {
	Pending *PendingAssignment `json:"pending,omitempty"`
}

// Drop records the (seat, passenger) pair of a drop event and opens the
// confirmation step.  Nothing is booked yet; a second drop before the first
// is resolved simply replaces the pending pair.  Drops without a passenger
// name are ignored.
func (s AssignmentState) Drop(seatID, passengerName string) AssignmentState {
	if seatID == "" || passengerName == "" {
		return s
	}
	s.Pending = &PendingAssignment{SeatID: seatID, PassengerName: passengerName}
	return s
}

// Confirm commits the pending pair against the booking list, overwriting
// any previous occupant of the target seat (last write wins), and clears
// the pending state.  With nothing pending the list passes through as is.
func (s AssignmentState) Confirm(bookings []Booking, busIndex int) (AssignmentState, []Booking) {
	if s.Pending == nil {
		return s, bookings
	}
	next := UpsertOne(bookings, busIndex, s.Pending.SeatID, s.Pending.PassengerName)
	s.Pending = nil
	return s, next
}

// Cancel discards the pending pair without touching bookings.
func (s AssignmentState) Cancel() AssignmentState {
	s.Pending = nil
	return s
}
