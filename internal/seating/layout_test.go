package seating

import (
	"reflect"
	"strconv"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()
	for _, typ := range []VehicleType{TypeBus48, TypeBus50, TypeMinibus28, TypeVan14} {
		t.Run(string(typ), func(t *testing.T) {
			a := Generate(typ)
			b := Generate(typ)
			if !reflect.DeepEqual(a, b) {
				t.Fatalf("two generations of %s differ", typ)
			}
		})
	}
}

func TestGenerateSeatCounts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		typ   VehicleType
		seats int
	}{
		{TypeBus48, 49}, // 48 regular plus the extra rear-bench seat
		{TypeBus50, 49},
		{TypeMinibus28, 28},
		{TypeVan14, 14},
		{VehicleType("hovercraft"), 14}, // unknown types get the van shape
	}
	for _, tc := range tests {
		t.Run(string(tc.typ), func(t *testing.T) {
			l := Generate(tc.typ)
			if got := l.SeatCount(); got != tc.seats {
				t.Fatalf("seat count for %s = %d, want %d", tc.typ, got, tc.seats)
			}
		})
	}
}

func TestGenerateNumberingGapless(t *testing.T) {
	t.Parallel()
	for _, typ := range []VehicleType{TypeBus48, TypeMinibus28, TypeVan14} {
		t.Run(string(typ), func(t *testing.T) {
			ids := Generate(typ).SeatIDs()
			for i, id := range ids {
				want := strconv.Itoa(i + 1)
				if id != want {
					t.Fatalf("seat %d has id %q, want %q", i, id, want)
				}
			}
		})
	}
}

func TestGenerateBusStructure(t *testing.T) {
	t.Parallel()
	l := Generate(TypeBus48)

	kinds := map[CellKind]int{}
	byID := map[string]CellKind{}
	for _, row := range l {
		for _, c := range row {
			kinds[c.Kind]++
			byID[c.ID] = c.Kind
		}
	}
	if kinds[KindDriver] != 1 || kinds[KindGuide] != 1 {
		t.Fatalf("bus cab row wrong: %d drivers, %d guides", kinds[KindDriver], kinds[KindGuide])
	}
	if kinds[KindRestroom] != 1 || kinds[KindDoor] != 1 {
		t.Fatalf("bus should have one restroom and one door, got %d/%d", kinds[KindRestroom], kinds[KindDoor])
	}
	for _, id := range []string{"driver", "guide", "wc", "door-mid", "aisle-1"} {
		if _, ok := byID[id]; !ok {
			t.Fatalf("missing structural cell %q", id)
		}
	}

	// Cab row first, rear bench of column 13 closes with three seats across.
	if l[0][0].Kind != KindDriver || l[0][2].Kind != KindGuide {
		t.Fatalf("row 0 is not [driver aisle guide]: %+v", l[0])
	}
	last := l[len(l)-1]
	if len(last) != 5 {
		t.Fatalf("rear row has %d cells, want 5", len(last))
	}
	for _, c := range last {
		if c.Kind != KindSeat {
			t.Fatalf("rear row contains non-seat cell %+v", c)
		}
	}
}

func TestGenerateVanStructure(t *testing.T) {
	t.Parallel()
	l := Generate(TypeVan14)
	if len(l) != 5 {
		t.Fatalf("van has %d rows, want 5", len(l))
	}
	row0 := l[0]
	if row0[0].Kind != KindDriver || row0[1].Kind != KindAisle || row0[2].ID != "1" || row0[3].ID != "2" {
		t.Fatalf("van row 0 wrong: %+v", row0)
	}
	// Column bases 3, 6, 9, 12.
	for i, base := range []int{3, 6, 9, 12} {
		row := l[i+1]
		if row[0].ID != strconv.Itoa(base) || row[2].ID != strconv.Itoa(base+1) || row[3].ID != strconv.Itoa(base+2) {
			t.Fatalf("van column %d wrong: %+v", i+1, row)
		}
	}
}

func TestGenerateMinibusStructure(t *testing.T) {
	t.Parallel()
	l := Generate(TypeMinibus28)
	if len(l) != 7 {
		t.Fatalf("minibus has %d rows, want 7", len(l))
	}
	for c, row := range l {
		base := 4*c + 1
		want := []string{strconv.Itoa(base), strconv.Itoa(base + 1), strconv.Itoa(base + 2), strconv.Itoa(base + 3)}
		got := []string{row[0].ID, row[1].ID, row[3].ID, row[4].ID}
		if !reflect.DeepEqual(got, want) || row[2].Kind != KindAisle {
			t.Fatalf("minibus column %d wrong: %+v", c, row)
		}
	}
}

func TestAnnotate(t *testing.T) {
	t.Parallel()
	layout := Generate(TypeVan14)
	bookings := []Booking{
		{SeatNumber: "3", PassengerName: "Omar", BusIndex: 0},
		{SeatNumber: "3", PassengerName: "Sara", BusIndex: 1}, // other unit, must not bleed in
	}
	annotated := Annotate(layout, bookings, 0)

	found := false
	for _, row := range annotated {
		for _, c := range row {
			if c.ID == "3" && c.Kind == KindSeat {
				found = true
				if c.Passenger != "Omar" {
					t.Fatalf("seat 3 passenger = %q, want Omar", c.Passenger)
				}
			} else if c.Passenger != "" {
				t.Fatalf("unexpected passenger on cell %s: %q", c.ID, c.Passenger)
			}
		}
	}
	if !found {
		t.Fatal("seat 3 not found in annotated layout")
	}

	// Source layout stays pristine.
	for _, row := range layout {
		for _, c := range row {
			if c.Passenger != "" {
				t.Fatalf("Annotate mutated the source layout at %s", c.ID)
			}
		}
	}
}
