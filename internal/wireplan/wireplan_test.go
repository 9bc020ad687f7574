package wireplan

import (
	"testing"

	"github.com/sparkestimate/spark-core/internal/cec"
)

func TestDistancesEmpty(t *testing.T) {
	if got := Distances(Input{PanelX: 10, PanelY: 10}); got != nil {
		t.Errorf("Distances with no rooms = %v, want nil", got)
	}
}

func TestDistancesSameFloor(t *testing.T) {
	in := Input{
		PanelX: 10, PanelY: 10,
		// 1 ft per percent.
		DrawingScaleFt: 1.0,
		PanelFloor:     "main",
		Rooms: []cec.DetectedRoom{
			{
				RoomType:   cec.RoomTypeKitchen,
				RoomName:   "Kitchen",
				FloorLevel: "main",
				Location:   []float64{40, 50},
			},
		},
	}
	got := Distances(in)
	if len(got) != 1 {
		t.Fatalf("result count = %d, want 1", len(got))
	}
	r := got[0]

	// dx=30, dy=40: straight 50, manhattan 70, routed 105.
	if r.StraightLineFt != 50.0 {
		t.Errorf("straight = %v, want 50.0", r.StraightLineFt)
	}
	if r.ManhattanFt != 70.0 {
		t.Errorf("manhattan = %v, want 70.0", r.ManhattanFt)
	}
	if r.RoutedFt != 105.0 {
		t.Errorf("routed = %v, want 105.0", r.RoutedFt)
	}
	if r.VerticalFt != 0 {
		t.Errorf("vertical = %v, want 0 on same floor", r.VerticalFt)
	}
	// routed + makeup.
	if r.TotalPerDeviceFt != 108.0 {
		t.Errorf("per device = %v, want 108.0", r.TotalPerDeviceFt)
	}
}

func TestDistancesCrossFloor(t *testing.T) {
	in := Input{
		PanelX: 50, PanelY: 50,
		DrawingScaleFt: 1.0,
		PanelFloor:     "basement",
		Rooms: []cec.DetectedRoom{
			{
				RoomType:   cec.RoomTypeBedroom,
				RoomName:   "Bedroom",
				FloorLevel: "upper",
				Location:   []float64{50, 50},
			},
		},
	}
	r := Distances(in)[0]

	// Two floors up from the basement panel.
	if r.VerticalFt != 24.0 {
		t.Errorf("vertical = %v, want 24.0", r.VerticalFt)
	}
	// 0 horizontal + 24 vertical + 3 makeup.
	if r.TotalPerDeviceFt != 27.0 {
		t.Errorf("per device = %v, want 27.0", r.TotalPerDeviceFt)
	}
}

func TestDistancesMinimumRun(t *testing.T) {
	in := Input{
		PanelX: 50, PanelY: 50,
		DrawingScaleFt: 1.0,
		PanelFloor:     "main",
		Rooms: []cec.DetectedRoom{
			{RoomName: "Adjacent", FloorLevel: "main", Location: []float64{51, 50}},
		},
	}
	r := Distances(in)[0]
	if r.TotalPerDeviceFt != MinRunFt {
		t.Errorf("per device = %v, want floor of %v", r.TotalPerDeviceFt, MinRunFt)
	}
}

func TestDistancesPanelFloorAutoDetect(t *testing.T) {
	rooms := []cec.DetectedRoom{
		{RoomName: "Rec Room", FloorLevel: "basement", Location: []float64{50, 50}},
		{RoomName: "Kitchen", FloorLevel: "main", Location: []float64{50, 50}},
	}
	got := Distances(Input{PanelX: 50, PanelY: 50, DrawingScaleFt: 1.0, Rooms: rooms})

	// Panel lands in the basement, so the basement room has no vertical run.
	if got[0].VerticalFt != 0 {
		t.Errorf("basement room vertical = %v, want 0", got[0].VerticalFt)
	}
	if got[1].VerticalFt != VerticalPerFloorFt {
		t.Errorf("main floor vertical = %v, want %v", got[1].VerticalFt, VerticalPerFloorFt)
	}
}

func TestDistancesDeviceTotals(t *testing.T) {
	in := Input{
		PanelX: 10, PanelY: 10,
		DrawingScaleFt: 1.0,
		PanelFloor:     "main",
		Rooms: []cec.DetectedRoom{
			{RoomName: "Kitchen", FloorLevel: "main", Location: []float64{40, 50}},
		},
		RoomDevices: map[int]cec.DeviceCount{
			0: {cec.SymbolDuplexReceptacle: 4, cec.SymbolRecessedLight: 6},
		},
	}
	r := Distances(in)[0]
	if r.DevicesInRoom != 10 {
		t.Errorf("devices = %d, want 10", r.DevicesInRoom)
	}
	if r.TotalRoomWireFt != 1080 {
		t.Errorf("room wire = %v, want 1080", r.TotalRoomWireFt)
	}
}

func TestAllowanceOverrides(t *testing.T) {
	results := []RoomDistance{
		{TotalPerDeviceFt: 20},
		{TotalPerDeviceFt: 40},
	}
	roomDevices := map[int]cec.DeviceCount{
		0: {cec.SymbolDuplexReceptacle: 1},
		1: {cec.SymbolDuplexReceptacle: 3, cec.SymbolRecessedLight: 2},
	}

	overrides := AllowanceOverrides(results, roomDevices)

	// (20 + 40*3) / 4 = 35.
	if overrides[cec.SymbolDuplexReceptacle] != 35.0 {
		t.Errorf("duplex override = %v, want 35.0", overrides[cec.SymbolDuplexReceptacle])
	}
	if overrides[cec.SymbolRecessedLight] != 40.0 {
		t.Errorf("recessed override = %v, want 40.0", overrides[cec.SymbolRecessedLight])
	}
	if _, ok := overrides[cec.SymbolExhaustFan]; ok {
		t.Error("symbol never placed should have no override")
	}
}
