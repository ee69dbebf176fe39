package seating

// Mode selects which interaction rules govern a seat-map session.
type Mode string

const (
	// ModeAdministrator allows unrestricted multi-select across booked and
	// free seats, renaming, clearing and drag assignment.
	ModeAdministrator Mode = "administrator"
	// ModePassenger allows capped self-service selection of free seats only.
	ModePassenger Mode = "passenger"
)

// Phase is the derived state of a selection session.
type Phase string

const (
	PhaseEmpty           Phase = "empty"
	PhaseSelecting       Phase = "selecting"
	PhaseEditingExisting Phase = "editing_existing"
)

// NamePrompt is an open naming dialog: the seats it will commit and the
// passenger name it is pre-filled with.
type NamePrompt struct {
	Seats   []string `json:"seats"`
	Initial string   `json:"initial"`
}

// SelectionState is the full state of one seat-map session, scoped to a
// single vehicle unit.  It is a value: every transition returns a new state
// and leaves its receiver untouched, so callers can thread it through
// request handlers or keep history as they see fit.
//
// Fields:
//  Mode         – administrator or passenger rules.
//  MaxSelection – passenger-mode cap on selected seats; 0 means uncapped.
//  Selected     – currently highlighted seat ids in insertion order.
//  Booked       – local mirror of seat id to passenger name for the active
//                 unit; replaced wholesale whenever the caller's booking
//                 list changes.
//  Prompt       – open naming dialog, nil when closed.
type SelectionState struct {
	Mode         Mode              `json:"mode"`
	MaxSelection int               `json:"maxSelection,omitempty"`
	Selected     []string          `json:"selected"`
	Booked       map[string]string `json:"-"`
	Prompt       *NamePrompt       `json:"prompt,omitempty"`
}

// NewSelection returns an empty session for the given mode.  maxSelection
// only applies in passenger mode; values below zero are treated as uncapped.
func NewSelection(mode Mode, maxSelection int) SelectionState {
	if maxSelection < 0 {
		maxSelection = 0
	}
	return SelectionState{Mode: mode, MaxSelection: maxSelection, Booked: map[string]string{}}
}

// Phase reports where the session currently is.  Editing an existing
// booking is an administrator-only situation: exactly one seat selected,
// already booked, with the prompt open on it.
func (s SelectionState) Phase() Phase {
	if s.Mode == ModeAdministrator && s.Prompt != nil && len(s.Selected) == 1 {
		if _, booked := s.Booked[s.Selected[0]]; booked {
			return PhaseEditingExisting
		}
	}
	if len(s.Selected) == 0 {
		return PhaseEmpty
	}
	return PhaseSelecting
}

// IsSelected reports whether a seat id is part of the current selection.
func (s SelectionState) IsSelected(seatID string) bool {
	for _, id := range s.Selected {
		if id == seatID {
			return true
		}
	}
	return false
}

// Click applies a seat click and returns the resulting state.
//
// Administrator rules: clicking a booked seat while nothing is selected
// opens that booking for editing, pre-loading the existing passenger name.
// Any other click toggles membership; booked seats join a multi-select
// freely, which is what makes bulk rename and bulk clear possible.
//
// Passenger rules: clicks on booked seats are no-ops.  A free seat joins
// the selection only while the cap leaves room; removal always succeeds.
func (s SelectionState) Click(seatID string) SelectionState {
	name, booked := s.Booked[seatID]
	switch s.Mode {
	case ModePassenger:
		if booked {
			return s
		}
		if s.IsSelected(seatID) {
			return s.remove(seatID)
		}
		if s.MaxSelection > 0 && len(s.Selected) >= s.MaxSelection {
			return s
		}
		return s.add(seatID)
	default: // administrator
		if booked && len(s.Selected) == 0 {
			next := s.add(seatID)
			next.Prompt = &NamePrompt{Seats: []string{seatID}, Initial: name}
			return next
		}
		if s.IsSelected(seatID) {
			return s.remove(seatID)
		}
		return s.add(seatID)
	}
}

func (s SelectionState) add(seatID string) SelectionState {
	sel := make([]string, len(s.Selected), len(s.Selected)+1)
	copy(sel, s.Selected)
	s.Selected = append(sel, seatID)
	return s
}

func (s SelectionState) remove(seatID string) SelectionState {
	sel := make([]string, 0, len(s.Selected))
	for _, id := range s.Selected {
		if id != seatID {
			sel = append(sel, id)
		}
	}
	s.Selected = sel
	return s
}

// SetMaxSelection applies an externally changed cap.  Shrinking below the
// current selection truncates it to the first maxSelection entries in
// insertion order; the returned flag tells the caller to re-publish the
// selection when that happened.
func (s SelectionState) SetMaxSelection(maxSelection int) (SelectionState, bool) {
	if maxSelection < 0 {
		maxSelection = 0
	}
	s.MaxSelection = maxSelection
	if maxSelection > 0 && len(s.Selected) > maxSelection {
		s.Selected = append([]string(nil), s.Selected[:maxSelection]...)
		return s, true
	}
	return s, false
}

// SyncBookings replaces the local booking mirror from the authoritative
// list.  The mirror is never merged: the caller-supplied list is the single
// source of truth and wins wholesale.
func (s SelectionState) SyncBookings(bookings []Booking, busIndex int) SelectionState {
	m := make(map[string]string)
	for _, b := range bookings {
		if b.BusIndex == busIndex {
			m[b.SeatNumber] = b.PassengerName
		}
	}
	s.Booked = m
	return s
}

// ApplyInitial seeds the selection from the caller.  It only applies while
// the local selection is empty so an in-progress choice is never clobbered.
func (s SelectionState) ApplyInitial(seatIDs []string) SelectionState {
	if len(s.Selected) > 0 {
		return s
	}
	s.Selected = append([]string(nil), seatIDs...)
	return s
}

// OpenPrompt is the administrator "confirm N seats" action.  It opens the
// naming dialog over the current selection.  The name field is pre-filled
// only when exactly one seat is selected and that seat is already booked;
// otherwise it starts empty.  With nothing selected the state is unchanged.
func (s SelectionState) OpenPrompt() SelectionState {
	if s.Mode != ModeAdministrator || len(s.Selected) == 0 {
		return s
	}
	initial := ""
	if len(s.Selected) == 1 {
		initial = s.Booked[s.Selected[0]]
	}
	s.Prompt = &NamePrompt{Seats: append([]string(nil), s.Selected...), Initial: initial}
	return s
}

// SavePrompt commits the open naming dialog against a booking list.  A
// non-empty name books every selected seat under it; an empty name is the
// express "remove booking" path and clears those seats instead.  Either way
// the dialog closes, the selection resets and the local mirror is refreshed
// from the new list.  Without an open prompt the call is a no-op.
func (s SelectionState) SavePrompt(name string, bookings []Booking, busIndex int) (SelectionState, []Booking) {
	if s.Prompt == nil {
		return s, bookings
	}
	seats := s.Prompt.Seats
	var next []Booking
	if name == "" {
		next = ClearMany(bookings, busIndex, seats)
	} else {
		next = UpsertMany(bookings, busIndex, seats, name)
	}
	s.Prompt = nil
	s.Selected = nil
	s = s.SyncBookings(next, busIndex)
	return s, next
}

// CancelPrompt closes the dialog without touching bookings.  The selection
// is kept; use Deselect for the explicit clear action.
func (s SelectionState) CancelPrompt() SelectionState {
	s.Prompt = nil
	return s
}

// Deselect drops the whole selection and any open dialog.
func (s SelectionState) Deselect() SelectionState {
	s.Selected = nil
	s.Prompt = nil
	return s
}

// Confirm is the passenger "confirm selection" action: it returns a copy of
// the current selection for the caller to publish.  Bookings are not
// touched; turning a passenger selection into bookings belongs to the
// booking submission flow.
func (s SelectionState) Confirm() []string {
	return append([]string(nil), s.Selected...)
}
