package session

import (
	"testing"
	"time"

	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/seating"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()
	st := NewStore(time.Minute)

	sess := st.Get(1, 10, 0, seating.ModeAdministrator, 0)
	sess.Selection = sess.Selection.Click("3")
	st.Put(1, 10, 0, sess)

	again := st.Get(1, 10, 0, seating.ModeAdministrator, 0)
	if !again.Selection.IsSelected("3") {
		t.Fatal("selection lost between Get/Put")
	}

	// Different unit index is a different session.
	other := st.Get(1, 10, 1, seating.ModeAdministrator, 0)
	if other.Selection.IsSelected("3") {
		t.Fatal("sessions leaked across unit indices")
	}
}

func TestStoreDrop(t *testing.T) {
	t.Parallel()
	st := NewStore(time.Minute)

	sess := st.Get(1, 10, 0, seating.ModePassenger, 2)
	sess.Selection = sess.Selection.Click("5")
	st.Put(1, 10, 0, sess)

	st.Drop(1, 10, 0)
	fresh := st.Get(1, 10, 0, seating.ModePassenger, 2)
	if len(fresh.Selection.Selected) != 0 {
		t.Fatalf("dropped session came back with selection %v", fresh.Selection.Selected)
	}
}

func TestStoreEviction(t *testing.T) {
	t.Parallel()
	st := NewStore(10 * time.Millisecond)

	sess := st.Get(1, 10, 0, seating.ModePassenger, 0)
	sess.Selection = sess.Selection.Click("5")
	st.Put(1, 10, 0, sess)

	time.Sleep(25 * time.Millisecond)
	fresh := st.Get(1, 10, 0, seating.ModePassenger, 0)
	if len(fresh.Selection.Selected) != 0 {
		t.Fatal("stale session survived eviction")
	}
}
