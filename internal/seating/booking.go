package seating

// Booking associates a passenger name with one seat of one vehicle unit.
//
// Fields:
//  SeatNumber    – seat id, unique within the owning unit's layout.
//  PassengerName – non-empty display name of the passenger.
//  BusIndex      – which vehicle unit of the trip owns this booking
//                  (0 when the trip has a single unit).
type Booking struct {
	SeatNumber    string `json:"seatNumber"`
	PassengerName string `json:"passengerName"`
	BusIndex      int    `json:"busIndex"`
}

// The functions below are the booking store of the engine.  They are pure:
// each takes the current booking list and returns a new one, preserving the
// order of untouched entries.  After any of them the list holds at most one
// booking per (busIndex, seatNumber) pair.

// UpsertMany books every listed seat of the given unit under one passenger
// name.  Existing bookings for those seats are replaced in place; seats with
// no prior booking are appended in the order given.
func UpsertMany(bookings []Booking, busIndex int, seatIDs []string, name string) []Booking {
	out := make([]Booking, len(bookings))
	copy(out, bookings)
	for _, id := range seatIDs {
		replaced := false
		for i := range out {
			if out[i].BusIndex == busIndex && out[i].SeatNumber == id {
				out[i].PassengerName = name
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, Booking{SeatNumber: id, PassengerName: name, BusIndex: busIndex})
		}
	}
	return out
}

// ClearMany removes the bookings of the listed seats from the given unit.
// Other units' bookings pass through untouched.
func ClearMany(bookings []Booking, busIndex int, seatIDs []string) []Booking {
	drop := make(map[string]bool, len(seatIDs))
	for _, id := range seatIDs {
		drop[id] = true
	}
	out := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.BusIndex == busIndex && drop[b.SeatNumber] {
			continue
		}
		out = append(out, b)
	}
	return out
}

// UpsertOne books a single seat, overwriting any prior occupant without
// warning.  This is the assignment protocol's commit step: reassigning an
// occupied seat is last write wins.
func UpsertOne(bookings []Booking, busIndex int, seatID, name string) []Booking {
	return UpsertMany(bookings, busIndex, []string{seatID}, name)
}

// UnitBookings returns the subset of bookings belonging to one unit, in
// list order.
func UnitBookings(bookings []Booking, busIndex int) []Booking {
	var out []Booking
	for _, b := range bookings {
		if b.BusIndex == busIndex {
			out = append(out, b)
		}
	}
	return out
}

// MergeUnit implements save semantics for a single-unit edit session: the
// active unit's bookings are replaced wholesale with the edited set
// (re-tagged with busIndex), while every booking belonging to another unit
// is passed through in its original order.  The engine edits exactly one
// unit at a time and must never drop or reorder the rest of the trip.
func MergeUnit(all []Booking, busIndex int, unitBookings []Booking) []Booking {
	out := make([]Booking, 0, len(all)+len(unitBookings))
	for _, b := range all {
		if b.BusIndex != busIndex {
			out = append(out, b)
		}
	}
	for _, b := range unitBookings {
		b.BusIndex = busIndex
		out = append(out, b)
	}
	return out
}
