package model

import "time"

// SeatBooking is the persisted form of one seat assignment within a trip's
// fleet.  The (TripID, BusIndex, SeatNumber) triple is unique: a seat of a
// vehicle unit holds at most one passenger.
//
// Fields:
//  ID            – primary key identifier.
//  TripID        – trip this booking belongs to.
//  BusIndex      – zero-based vehicle unit within the trip's fleet.
//  SeatNumber    – seat id inside the unit's layout ("1", "2", ...).
//  PassengerName – name the seat is booked under.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type SeatBooking struct {
	ID            uint64    // seat_bookings.id
	TripID        uint64    // seat_bookings.trip_id
	BusIndex      int       // seat_bookings.bus_index
	SeatNumber    string    // seat_bookings.seat_number
	PassengerName string    // seat_bookings.passenger_name
	CreatedAt     time.Time // seat_bookings.created_at
	UpdatedAt     time.Time // seat_bookings.updated_at
}
