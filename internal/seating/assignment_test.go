package seating

import (
	"reflect"
	"testing"
)

func TestAssignmentProtocol(t *testing.T) {
	t.Parallel()

	t.Run("drop then confirm books the seat", func(t *testing.T) {
		var a AssignmentState
		a = a.Drop("7", "Omar")
		if a.Pending == nil || a.Pending.SeatID != "7" {
			t.Fatalf("pending = %+v", a.Pending)
		}
		a, bookings := a.Confirm(nil, 0)
		want := []Booking{{SeatNumber: "7", PassengerName: "Omar", BusIndex: 0}}
		if !reflect.DeepEqual(bookings, want) {
			t.Fatalf("bookings = %+v", bookings)
		}
		if a.Pending != nil {
			t.Fatal("pending pair should be cleared after confirm")
		}
	})

	t.Run("confirm overwrites the previous occupant", func(t *testing.T) {
		start := []Booking{{SeatNumber: "7", PassengerName: "Omar", BusIndex: 0}}
		a := AssignmentState{}.Drop("7", "Sara")
		_, bookings := a.Confirm(start, 0)
		if len(bookings) != 1 || bookings[0].PassengerName != "Sara" {
			t.Fatalf("last write should win: %+v", bookings)
		}
	})

	t.Run("cancel discards without mutation", func(t *testing.T) {
		start := []Booking{{SeatNumber: "7", PassengerName: "Omar", BusIndex: 0}}
		a := AssignmentState{}.Drop("9", "Sara").Cancel()
		if a.Pending != nil {
			t.Fatal("pending pair survived cancel")
		}
		a, bookings := a.Confirm(start, 0)
		if !reflect.DeepEqual(bookings, start) {
			t.Fatalf("confirm after cancel mutated bookings: %+v", bookings)
		}
	})

	t.Run("drop without a name is ignored", func(t *testing.T) {
		a := AssignmentState{}.Drop("7", "")
		if a.Pending != nil {
			t.Fatalf("pending = %+v", a.Pending)
		}
	})

	t.Run("second drop replaces the first", func(t *testing.T) {
		a := AssignmentState{}.Drop("7", "Omar").Drop("9", "Sara")
		if a.Pending == nil || a.Pending.SeatID != "9" || a.Pending.PassengerName != "Sara" {
			t.Fatalf("pending = %+v", a.Pending)
		}
	})
}

// TestRoundTrip renders a layout, commits a booking through the selection
// flow and re-renders with the returned list: the same seat must come back
// booked under the same passenger.
func TestRoundTrip(t *testing.T) {
	t.Parallel()
	layout := Generate(TypeMinibus28)

	s := NewSelection(ModeAdministrator, 0)
	s = s.Click("12").OpenPrompt()
	_, bookings := s.SavePrompt("Omar", nil, 0)

	annotated := Annotate(layout, bookings, 0)
	for _, row := range annotated {
		for _, c := range row {
			if c.ID == "12" {
				if c.Passenger != "Omar" {
					t.Fatalf("seat 12 passenger = %q after round trip", c.Passenger)
				}
				return
			}
		}
	}
	t.Fatal("seat 12 missing from annotated layout")
}
