// Package queue defines message payloads exchanged over the message broker.
package queue

// SeatMapSavedEvent is published whenever an organizer commits a seat-map
// mutation (naming dialog save, bulk clear or assignment confirmation).  It
// carries enough for downstream consumers to log or notify without querying
// the primary database.
type SeatMapSavedEvent struct {
	TripID      uint64   `json:"trip_id"`
	TripTitle   string   `json:"trip_title"`
	BusIndex    int      `json:"bus_index"`
	VehicleType string   `json:"vehicle_type"`
	SavedBy     uint64   `json:"saved_by"`
	SeatNumbers []string `json:"seats"`
	BookedCount int      `json:"booked_count"`
	SavedAt     string   `json:"saved_at"`
}
