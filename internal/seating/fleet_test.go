package seating

import (
	"reflect"
	"testing"
)

func TestPackFleetExamples(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		total int
		want  []VehicleUnit
	}{
		{"zero", 0, []VehicleUnit{}},
		{"negative coerced to zero", -5, []VehicleUnit{}},
		{"exact coach", 48, []VehicleUnit{{TypeBus48, 48, 1}}},
		{"tiny remainder gets van", 50, []VehicleUnit{{TypeBus48, 48, 1}, {TypeVan14, 14, 1}}},
		{"mid remainder gets minibus", 70, []VehicleUnit{{TypeBus48, 48, 1}, {TypeMinibus28, 28, 1}}},
		{"two full coaches", 96, []VehicleUnit{{TypeBus48, 48, 2}}},
		{"large remainder gets second coach", 80, []VehicleUnit{{TypeBus48, 48, 1}, {TypeBus48, 48, 1}}},
		{"under a van", 7, []VehicleUnit{{TypeVan14, 14, 1}}},
		{"minibus over-provisioned", 26, []VehicleUnit{{TypeMinibus28, 28, 1}}},
		{"just over a minibus needs a coach", 30, []VehicleUnit{{TypeBus48, 48, 1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PackFleet(tc.total)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("PackFleet(%d) = %+v, want %+v", tc.total, got, tc.want)
			}
		})
	}
}

func TestPackFleetNeverUnderProvisions(t *testing.T) {
	t.Parallel()
	for total := 0; total <= 500; total++ {
		units := PackFleet(total)
		if total == 0 && len(units) != 0 {
			t.Fatalf("PackFleet(0) should be empty, got %+v", units)
		}
		if total > 0 && len(units) == 0 {
			t.Fatalf("PackFleet(%d) returned no units", total)
		}
		if cap := FleetCapacity(units); cap < total {
			t.Fatalf("PackFleet(%d) under-provisioned: capacity %d", total, cap)
		}
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	t.Run("assigns sequential unit indices", func(t *testing.T) {
		units := PackFleet(110) // 2 coaches + 1 van
		flat := Flatten(units)
		if len(flat) != 3 {
			t.Fatalf("expected 3 vehicles, got %d", len(flat))
		}
		for i, u := range flat {
			if u.UnitIndex != i {
				t.Fatalf("vehicle %d has unit index %d", i, u.UnitIndex)
			}
		}
		if flat[0].Type != TypeBus48 || flat[1].Type != TypeBus48 || flat[2].Type != TypeVan14 {
			t.Fatalf("unexpected fleet shape: %+v", flat)
		}
	})

	t.Run("empty pack falls back to one default coach", func(t *testing.T) {
		flat := Flatten(nil)
		if len(flat) != 1 || flat[0].Type != TypeBus48 || flat[0].UnitIndex != 0 {
			t.Fatalf("expected single default coach, got %+v", flat)
		}
	})
}
