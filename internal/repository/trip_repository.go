package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors package allows sentinel error definitions
	"time"

	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/model" // model defines the trips table record
)

// ErrTripNotFound is returned when a trip lookup yields no rows.
var ErrTripNotFound = errors.New("trip not found")

// TripRepo provides methods to create and retrieve trips.
type TripRepo struct {
	db *sql.DB
}

// NewTripRepo constructs a TripRepo with the given DB handle.
func NewTripRepo(db *sql.DB) *TripRepo {
	return &TripRepo{db: db}
}

const tripColumns = `id, organizer_id, title, origin, destination, departs_at, available_seats, is_active, created_at, updated_at`

func scanTrip(row interface{ Scan(...any) error }, t *model.Trip) error {
	return row.Scan(&t.ID, &t.OrganizerID, &t.Title, &t.Origin, &t.Destination,
		&t.DepartsAt, &t.AvailableSeats, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
}

// Create inserts a new trip.  After insert the record is read back so the
// timestamp and status fields are populated.
func (r *TripRepo) Create(ctx context.Context, t *model.Trip) error {
	const qInsert = `INSERT INTO trips (organizer_id, title, origin, destination, departs_at, available_seats)
	                 VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, t.OrganizerID, t.Title, t.Origin, t.Destination, t.DepartsAt, t.AvailableSeats)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)

	const qSelect = `SELECT ` + tripColumns + ` FROM trips WHERE id = ?`
	return scanTrip(r.db.QueryRowContext(ctx, qSelect, t.ID), t)
}

// GetByID retrieves a trip by its ID regardless of organizer.  It returns
// ErrTripNotFound when no row is found.
func (r *TripRepo) GetByID(ctx context.Context, id uint64) (*model.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = ?`
	var t model.Trip
	if err := scanTrip(r.db.QueryRowContext(ctx, q, id), &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetByIDAndOrganizer retrieves a trip while enforcing ownership.
func (r *TripRepo) GetByIDAndOrganizer(ctx context.Context, id, organizerID uint64) (*model.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = ? AND organizer_id = ?`
	var t model.Trip
	if err := scanTrip(r.db.QueryRowContext(ctx, q, id, organizerID), &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListByOrganizer returns all trips owned by a user, newest first.
func (r *TripRepo) ListByOrganizer(ctx context.Context, organizerID uint64) ([]model.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE organizer_id = ? ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Trip
	for rows.Next() {
		var t model.Trip
		if err := scanTrip(rows, &t); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateByIDAndOrganizer updates the editable trip fields.  Returns
// sql.ErrNoRows when not found or not owned by this organizer.
func (r *TripRepo) UpdateByIDAndOrganizer(ctx context.Context, id, organizerID uint64, title, origin, destination string, departsAt time.Time, availableSeats int, isActive bool) error {
	const q = `UPDATE trips
	           SET title = ?, origin = ?, destination = ?, departs_at = ?, available_seats = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND organizer_id = ?`
	res, err := r.db.ExecContext(ctx, q, title, origin, destination, departsAt, availableSeats, isActive, id, organizerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByIDAndOrganizer deletes a trip while enforcing ownership.  Trips
// with existing seat bookings are protected by ErrConflict so an organizer
// cannot silently drop booked passengers.
func (r *TripRepo) DeleteByIDAndOrganizer(ctx context.Context, id, organizerID uint64) error {
	var bookings int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM seat_bookings WHERE trip_id = ?`, id).Scan(&bookings); err != nil {
		return err
	}
	if bookings > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM trips WHERE id = ? AND organizer_id = ?`, id, organizerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
