// Package seating implements the seat layout and allocation engine used by
// the trip booking flows.  Everything in this package is a pure, synchronous
// transformation of in-memory values: layouts are derived from a vehicle
// type, bookings are immutable lists rebuilt on every edit, and selection
// state is a value threaded through transition functions.  Persistence and
// transport live with the callers.
package seating

import "strconv"

// CellKind classifies a single rendered position inside a vehicle.
type CellKind string

const (
	KindSeat     CellKind = "seat"
	KindAisle    CellKind = "aisle"
	KindDriver   CellKind = "driver"
	KindGuide    CellKind = "guide"
	KindDoor     CellKind = "door"
	KindRestroom CellKind = "restroom"
)

// VehicleType identifies one of the supported vehicle geometries.
type VehicleType string

const (
	TypeBus48     VehicleType = "bus-48"
	TypeBus50     VehicleType = "bus-50"
	TypeMinibus28 VehicleType = "minibus-28"
	TypeVan14     VehicleType = "van-14"
)

// SeatCell is one renderable position in a vehicle layout.
//
// Fields:
//  ID        – unique id within one vehicle instance.  Numbered seats use
//              string-encoded sequential integers ("1", "2", ...); structural
//              cells use aisle-N, door-mid, wc, driver and guide.
//  Kind      – what the cell is (seat, aisle, driver, guide, door, restroom).
//  Label     – display string shown on the map.
//  Passenger – passenger name when the cell is a booked seat, otherwise "".
type SeatCell struct {
	ID        string   `json:"id"`
	Kind      CellKind `json:"kind"`
	Label     string   `json:"label"`
	Passenger string   `json:"passenger,omitempty"`
}

// Layout is an ordered grid of cells: rows top to bottom, cells left to
// right.  Seat numbering is global and monotonically increasing across the
// grid; it is the join key between layouts and stored bookings and must
// never skip or repeat for a given vehicle type.
type Layout [][]SeatCell

// layoutBuilder tracks the running seat and aisle counters while a grid is
// being generated.
type layoutBuilder struct {
	rows  Layout
	seat  int // next seat number to hand out, starts at 1
	aisle int // next aisle ordinal, starts at 1
}

func (b *layoutBuilder) nextSeat() SeatCell {
	n := strconv.Itoa(b.seat)
	b.seat++
	return SeatCell{ID: n, Kind: KindSeat, Label: n}
}

func (b *layoutBuilder) nextAisle() SeatCell {
	c := SeatCell{ID: "aisle-" + strconv.Itoa(b.aisle), Kind: KindAisle, Label: ""}
	b.aisle++
	return c
}

func driverCell() SeatCell   { return SeatCell{ID: "driver", Kind: KindDriver, Label: "Driver"} }
func guideCell() SeatCell    { return SeatCell{ID: "guide", Kind: KindGuide, Label: "Guide"} }
func doorCell() SeatCell     { return SeatCell{ID: "door-mid", Kind: KindDoor, Label: "Door"} }
func restroomCell() SeatCell { return SeatCell{ID: "wc", Kind: KindRestroom, Label: "WC"} }

// Generate renders the seat grid for a vehicle type.  The output depends on
// nothing but the type: two calls with the same input yield identical ids,
// labels and structural placement.  Unknown types fall through to the van
// shape rather than failing.
func Generate(t VehicleType) Layout {
	switch t {
	case TypeBus48, TypeBus50:
		return generateBus()
	case TypeMinibus28:
		return generateMinibus()
	default:
		return generateVan()
	}
}

// generateBus builds the large coach grid: a cab row with driver and guide,
// then 13 four-across columns split by an aisle.  Column 6 carries the
// restroom and column 7 the middle door on the right side; column 13 closes
// the rear with a full bench, which is where the 49th seat comes from.
func generateBus() Layout {
	b := &layoutBuilder{seat: 1, aisle: 1}
	b.rows = append(b.rows, []SeatCell{driverCell(), b.nextAisle(), guideCell()})
	for col := 1; col <= 13; col++ {
		row := []SeatCell{b.nextSeat(), b.nextSeat()}
		if col == 13 {
			row = append(row, b.nextSeat())
		} else {
			row = append(row, b.nextAisle())
		}
		switch col {
		case 6:
			row = append(row, restroomCell())
		case 7:
			row = append(row, doorCell())
		default:
			row = append(row, b.nextSeat(), b.nextSeat())
		}
		b.rows = append(b.rows, row)
	}
	return b.rows
}

// generateMinibus builds 7 columns of [seat seat aisle seat seat], 28 seats
// in total with one aisle cell per column.
func generateMinibus() Layout {
	b := &layoutBuilder{seat: 1, aisle: 1}
	for col := 0; col < 7; col++ {
		row := []SeatCell{b.nextSeat(), b.nextSeat(), b.nextAisle(), b.nextSeat(), b.nextSeat()}
		b.rows = append(b.rows, row)
	}
	return b.rows
}

// generateVan builds the default 14-seat shape: driver row with the first
// two seats, then 4 columns of [seat aisle seat seat].
func generateVan() Layout {
	b := &layoutBuilder{seat: 1, aisle: 1}
	b.rows = append(b.rows, []SeatCell{driverCell(), b.nextAisle(), b.nextSeat(), b.nextSeat()})
	for col := 1; col <= 4; col++ {
		row := []SeatCell{b.nextSeat(), b.nextAisle(), b.nextSeat(), b.nextSeat()}
		b.rows = append(b.rows, row)
	}
	return b.rows
}

// SeatIDs returns the ordered seat ids of a layout, skipping structural
// cells.  The order is the global numbering order.
func (l Layout) SeatIDs() []string {
	var ids []string
	for _, row := range l {
		for _, c := range row {
			if c.Kind == KindSeat {
				ids = append(ids, c.ID)
			}
		}
	}
	return ids
}

// SeatCount returns how many seat cells the layout contains.
func (l Layout) SeatCount() int { return len(l.SeatIDs()) }

// Annotate returns a copy of the layout with passenger names stamped onto
// the seats booked for the given unit.  The input layout is left untouched;
// annotated grids are always derived, never edited in place.
func Annotate(l Layout, bookings []Booking, busIndex int) Layout {
	byID := make(map[string]string, len(bookings))
	for _, bk := range bookings {
		if bk.BusIndex == busIndex {
			byID[bk.SeatNumber] = bk.PassengerName
		}
	}
	out := make(Layout, len(l))
	for i, row := range l {
		cells := make([]SeatCell, len(row))
		copy(cells, row)
		for j := range cells {
			if cells[j].Kind == KindSeat {
				cells[j].Passenger = byID[cells[j].ID]
			}
		}
		out[i] = cells
	}
	return out
}
