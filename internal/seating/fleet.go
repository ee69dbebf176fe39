package seating

// Capacities of the supported vehicle types.
const (
	CapacityBus48     = 48
	CapacityMinibus28 = 28
	CapacityVan14     = 14
)

// VehicleUnit describes one entry of a packed fleet: how many identical
// vehicles of a type the fleet needs.
//
// Fields:
//  Type     – vehicle geometry for this entry.
//  Capacity – seats per vehicle of this type.
//  Count    – how many identical vehicles this entry contributes.
type VehicleUnit struct {
	Type     VehicleType `json:"type"`
	Capacity int         `json:"capacity"`
	Count    int         `json:"count"`
}

// FleetUnit is one physical vehicle of a flattened fleet, addressed by its
// zero-based position.  UnitIndex is the busIndex that scopes bookings.
type FleetUnit struct {
	Type      VehicleType `json:"type"`
	Capacity  int         `json:"capacity"`
	UnitIndex int         `json:"unitIndex"`
}

// PackFleet converts a requested passenger total into a concrete vehicle
// list.  The strategy is greedy with fixed thresholds, not an optimal bin
// packing: as many full 48-seat coaches as the total allows, then a single
// remainder unit sized by demand.  Over-provisioning the remainder (e.g. 30
// passengers in a 48-seat coach would be wasteful, so 30 gets a minibus with
// 2 spare seats) is accepted behavior.
//
// Totals of zero or less yield an empty list; callers render a single
// default coach when no fleet is defined.
func PackFleet(totalSeats int) []VehicleUnit {
	if totalSeats <= 0 {
		return []VehicleUnit{}
	}
	var units []VehicleUnit
	remaining := totalSeats
	if big := totalSeats / CapacityBus48; big > 0 {
		units = append(units, VehicleUnit{Type: TypeBus48, Capacity: CapacityBus48, Count: big})
		remaining = totalSeats % CapacityBus48
	}
	if remaining > 0 {
		switch {
		case remaining > CapacityMinibus28:
			units = append(units, VehicleUnit{Type: TypeBus48, Capacity: CapacityBus48, Count: 1})
		case remaining > CapacityVan14:
			units = append(units, VehicleUnit{Type: TypeMinibus28, Capacity: CapacityMinibus28, Count: 1})
		default:
			units = append(units, VehicleUnit{Type: TypeVan14, Capacity: CapacityVan14, Count: 1})
		}
	}
	return units
}

// Flatten expands the packed unit list into individual vehicles with their
// 0-based unit indices.  An empty pack flattens to a single default coach,
// matching how callers render trips with no fleet defined.
func Flatten(units []VehicleUnit) []FleetUnit {
	var out []FleetUnit
	for _, u := range units {
		for i := 0; i < u.Count; i++ {
			out = append(out, FleetUnit{Type: u.Type, Capacity: u.Capacity, UnitIndex: len(out)})
		}
	}
	if len(out) == 0 {
		out = append(out, FleetUnit{Type: TypeBus48, Capacity: CapacityBus48, UnitIndex: 0})
	}
	return out
}

// FleetCapacity sums capacity times count over the packed units.
func FleetCapacity(units []VehicleUnit) int {
	total := 0
	for _, u := range units {
		total += u.Capacity * u.Count
	}
	return total
}
