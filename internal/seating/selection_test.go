package seating

import (
	"reflect"
	"testing"
)

func withBookings(s SelectionState, bookings []Booking) SelectionState {
	return s.SyncBookings(bookings, 0)
}

func TestAdministratorClick(t *testing.T) {
	t.Parallel()
	booked := []Booking{{SeatNumber: "4", PassengerName: "Omar", BusIndex: 0}}

	t.Run("booked seat with empty selection opens editing", func(t *testing.T) {
		s := withBookings(NewSelection(ModeAdministrator, 0), booked)
		s = s.Click("4")
		if s.Phase() != PhaseEditingExisting {
			t.Fatalf("phase = %s, want %s", s.Phase(), PhaseEditingExisting)
		}
		if s.Prompt == nil || s.Prompt.Initial != "Omar" {
			t.Fatalf("prompt should be pre-loaded with existing name: %+v", s.Prompt)
		}
		if !reflect.DeepEqual(s.Selected, []string{"4"}) {
			t.Fatalf("selected = %v", s.Selected)
		}
	})

	t.Run("booked seat joins an ongoing multi-select", func(t *testing.T) {
		s := withBookings(NewSelection(ModeAdministrator, 0), booked)
		s = s.Click("1").Click("4")
		if s.Prompt != nil {
			t.Fatal("no editing dialog should open mid multi-select")
		}
		if !reflect.DeepEqual(s.Selected, []string{"1", "4"}) {
			t.Fatalf("selected = %v", s.Selected)
		}
	})

	t.Run("second click toggles a seat off", func(t *testing.T) {
		s := NewSelection(ModeAdministrator, 0)
		s = s.Click("1").Click("2").Click("1")
		if !reflect.DeepEqual(s.Selected, []string{"2"}) {
			t.Fatalf("selected = %v", s.Selected)
		}
	})
}

func TestPassengerClick(t *testing.T) {
	t.Parallel()
	booked := []Booking{{SeatNumber: "4", PassengerName: "Omar", BusIndex: 0}}

	t.Run("booked seat is a no-op", func(t *testing.T) {
		s := withBookings(NewSelection(ModePassenger, 3), booked)
		s = s.Click("4")
		if len(s.Selected) != 0 {
			t.Fatalf("selected = %v", s.Selected)
		}
	})

	t.Run("cap blocks the third add but never removal", func(t *testing.T) {
		s := NewSelection(ModePassenger, 2)
		s = s.Click("1").Click("2").Click("3")
		if !reflect.DeepEqual(s.Selected, []string{"1", "2"}) {
			t.Fatalf("third add should be rejected: %v", s.Selected)
		}
		s = s.Click("2") // removal still works at the cap
		if !reflect.DeepEqual(s.Selected, []string{"1"}) {
			t.Fatalf("selected = %v", s.Selected)
		}
	})

	t.Run("zero cap means unlimited", func(t *testing.T) {
		s := NewSelection(ModePassenger, 0)
		for _, id := range []string{"1", "2", "3", "4", "5"} {
			s = s.Click(id)
		}
		if len(s.Selected) != 5 {
			t.Fatalf("selected = %v", s.Selected)
		}
	})
}

func TestSetMaxSelectionTruncates(t *testing.T) {
	t.Parallel()
	s := NewSelection(ModePassenger, 3)
	s = s.Click("3").Click("5").Click("9")

	s, changed := s.SetMaxSelection(1)
	if !changed {
		t.Fatal("shrink below selection size must report a change")
	}
	if !reflect.DeepEqual(s.Selected, []string{"3"}) {
		t.Fatalf("selected = %v, want [3]", s.Selected)
	}

	s, changed = s.SetMaxSelection(4)
	if changed {
		t.Fatal("growing the cap must not touch the selection")
	}
}

func TestOpenPromptPrefill(t *testing.T) {
	t.Parallel()
	booked := []Booking{{SeatNumber: "4", PassengerName: "Omar", BusIndex: 0}}

	t.Run("single booked seat prefills the name", func(t *testing.T) {
		s := withBookings(NewSelection(ModeAdministrator, 0), booked)
		s = s.Click("1").Click("4").Click("1") // leave only seat 4 selected
		s = s.OpenPrompt()
		if s.Prompt == nil || s.Prompt.Initial != "Omar" {
			t.Fatalf("prompt = %+v", s.Prompt)
		}
	})

	t.Run("multi-select prompt starts empty", func(t *testing.T) {
		s := withBookings(NewSelection(ModeAdministrator, 0), booked)
		s = s.Click("1").Click("4")
		s = s.OpenPrompt()
		if s.Prompt == nil || s.Prompt.Initial != "" {
			t.Fatalf("prompt = %+v", s.Prompt)
		}
		if !reflect.DeepEqual(s.Prompt.Seats, []string{"1", "4"}) {
			t.Fatalf("prompt seats = %v", s.Prompt.Seats)
		}
	})

	t.Run("empty selection is a no-op", func(t *testing.T) {
		s := NewSelection(ModeAdministrator, 0).OpenPrompt()
		if s.Prompt != nil {
			t.Fatal("prompt opened with nothing selected")
		}
	})
}

func TestSavePrompt(t *testing.T) {
	t.Parallel()

	t.Run("non-empty name books the whole selection", func(t *testing.T) {
		s := NewSelection(ModeAdministrator, 0)
		s = s.Click("1").Click("2").OpenPrompt()
		s, bookings := s.SavePrompt("Sara", nil, 0)
		want := []Booking{
			{SeatNumber: "1", PassengerName: "Sara", BusIndex: 0},
			{SeatNumber: "2", PassengerName: "Sara", BusIndex: 0},
		}
		if !reflect.DeepEqual(bookings, want) {
			t.Fatalf("bookings = %+v", bookings)
		}
		if len(s.Selected) != 0 || s.Prompt != nil {
			t.Fatalf("selection should reset after save: %+v", s)
		}
		if s.Booked["1"] != "Sara" {
			t.Fatal("mirror not refreshed from the saved list")
		}
	})

	t.Run("empty name clears instead of erroring", func(t *testing.T) {
		start := []Booking{
			{SeatNumber: "1", PassengerName: "Omar", BusIndex: 0},
			{SeatNumber: "2", PassengerName: "Omar", BusIndex: 0},
		}
		s := withBookings(NewSelection(ModeAdministrator, 0), start)
		s = s.Click("1").CancelPrompt() // editing dialog from booked click, keep selection
		s = s.Click("2").OpenPrompt()
		s, bookings := s.SavePrompt("", start, 0)
		if len(bookings) != 0 {
			t.Fatalf("both seats should be cleared, got %+v", bookings)
		}
		if len(s.Selected) != 0 {
			t.Fatalf("selection should reset after clear: %v", s.Selected)
		}
	})

	t.Run("no open prompt passes bookings through", func(t *testing.T) {
		start := []Booking{{SeatNumber: "1", PassengerName: "Omar", BusIndex: 0}}
		s := NewSelection(ModeAdministrator, 0)
		_, bookings := s.SavePrompt("Sara", start, 0)
		if !reflect.DeepEqual(bookings, start) {
			t.Fatalf("bookings = %+v", bookings)
		}
	})
}

func TestCancelKeepsSelectionDeselectClearsIt(t *testing.T) {
	t.Parallel()
	s := NewSelection(ModeAdministrator, 0)
	s = s.Click("1").Click("2").OpenPrompt()

	s = s.CancelPrompt()
	if s.Prompt != nil {
		t.Fatal("prompt still open after cancel")
	}
	if !reflect.DeepEqual(s.Selected, []string{"1", "2"}) {
		t.Fatalf("cancel must preserve the selection: %v", s.Selected)
	}

	s = s.Deselect()
	if len(s.Selected) != 0 {
		t.Fatalf("deselect must clear the selection: %v", s.Selected)
	}
}

func TestApplyInitialOnlyWhenEmpty(t *testing.T) {
	t.Parallel()
	s := NewSelection(ModePassenger, 4)
	s = s.ApplyInitial([]string{"7", "8"})
	if !reflect.DeepEqual(s.Selected, []string{"7", "8"}) {
		t.Fatalf("initial selection not applied: %v", s.Selected)
	}
	s = s.ApplyInitial([]string{"1"})
	if !reflect.DeepEqual(s.Selected, []string{"7", "8"}) {
		t.Fatalf("in-progress selection clobbered: %v", s.Selected)
	}
}

func TestSyncBookingsReplacesWholesale(t *testing.T) {
	t.Parallel()
	s := withBookings(NewSelection(ModePassenger, 0), []Booking{
		{SeatNumber: "1", PassengerName: "Omar", BusIndex: 0},
	})
	s = s.SyncBookings([]Booking{{SeatNumber: "2", PassengerName: "Sara", BusIndex: 0}}, 0)
	if _, ok := s.Booked["1"]; ok {
		t.Fatal("old mirror entry survived a sync")
	}
	if s.Booked["2"] != "Sara" {
		t.Fatalf("mirror = %v", s.Booked)
	}
}

func TestPassengerConfirmPublishesCopy(t *testing.T) {
	t.Parallel()
	s := NewSelection(ModePassenger, 3)
	s = s.Click("1").Click("2")
	got := s.Confirm()
	if !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Fatalf("confirm = %v", got)
	}
	got[0] = "mutated"
	if s.Selected[0] != "1" {
		t.Fatal("Confirm must return a copy, not the backing slice")
	}
}
