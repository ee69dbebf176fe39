package model

import "time"

// Trip represents an organized journey offered on the platform.  A trip is
// owned by its organizer and carries the requested passenger total from
// which the vehicle fleet is packed.  The fleet itself is derived at render
// time and never stored.
//
// Fields:
//  ID             – primary key identifier.
//  OrganizerID    – user ID of the organizer who owns this trip.
//  Title          – display title of the trip.
//  Origin         – departure city or meeting point.
//  Destination    – destination city or site.
//  DepartsAt      – scheduled departure time.
//  AvailableSeats – requested passenger total; drives fleet packing.
//  IsActive       – whether the trip is open for booking.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type Trip struct {
	ID             uint64    // trips.id
	OrganizerID    uint64    // trips.organizer_id
	Title          string    // trips.title
	Origin         string    // trips.origin
	Destination    string    // trips.destination
	DepartsAt      time.Time // trips.departs_at
	AvailableSeats int       // trips.available_seats
	IsActive       bool      // trips.is_active
	CreatedAt      time.Time // trips.created_at
	UpdatedAt      time.Time // trips.updated_at
}
