package repository // repository defines data access for seat bookings

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives

	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/model" // model defines the seat_bookings table record
)

// BookingRepo provides methods to work with seat bookings in the database.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// GetByTrip retrieves every booking of a trip ordered by unit then seat.
func (r *BookingRepo) GetByTrip(ctx context.Context, tripID uint64) ([]model.SeatBooking, error) {
	const q = `SELECT id, trip_id, bus_index, seat_number, passenger_name, created_at, updated_at
	           FROM seat_bookings
	           WHERE trip_id = ?
	           ORDER BY bus_index, CAST(seat_number AS UNSIGNED)`
	return r.queryBookings(ctx, q, tripID)
}

// GetByTripAndUnit retrieves the bookings of one vehicle unit.
func (r *BookingRepo) GetByTripAndUnit(ctx context.Context, tripID uint64, busIndex int) ([]model.SeatBooking, error) {
	const q = `SELECT id, trip_id, bus_index, seat_number, passenger_name, created_at, updated_at
	           FROM seat_bookings
	           WHERE trip_id = ? AND bus_index = ?
	           ORDER BY CAST(seat_number AS UNSIGNED)`
	return r.queryBookings(ctx, q, tripID, busIndex)
}

func (r *BookingRepo) queryBookings(ctx context.Context, q string, args ...any) ([]model.SeatBooking, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SeatBooking
	for rows.Next() {
		var b model.SeatBooking
		if err := rows.Scan(
			&b.ID, &b.TripID, &b.BusIndex, &b.SeatNumber, &b.PassengerName,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ReplaceUnit replaces the booking rows of one vehicle unit with the given
// set inside a transaction: the unit's rows are deleted and the new ones
// bulk inserted.  Rows belonging to other units are never touched, which is
// the storage-side counterpart of the engine's single-unit save semantics.
func (r *BookingRepo) ReplaceUnit(ctx context.Context, tripID uint64, busIndex int, bookings []model.SeatBooking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM seat_bookings WHERE trip_id = ? AND bus_index = ?`,
		tripID, busIndex); err != nil {
		return err
	}

	if len(bookings) > 0 {
		query := `INSERT INTO seat_bookings (trip_id, bus_index, seat_number, passenger_name) VALUES `
		args := make([]interface{}, 0, len(bookings)*4)
		for i, b := range bookings {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?)"
			args = append(args, tripID, busIndex, b.SeatNumber, b.PassengerName)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeleteByTrip removes all bookings of a trip.  Used when an organizer
// resets a trip's fleet; callers verify ownership before calling.
func (r *BookingRepo) DeleteByTrip(ctx context.Context, tripID uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM seat_bookings WHERE trip_id = ?`, tripID)
	return err
}
