package cec

import (
	"reflect"
	"testing"
)

func TestReceptaclesFromArea(t *testing.T) {
	tests := []struct {
		name    string
		area    float64
		spacing float64
		min     int
		want    int
	}{
		{"small room hits minimum", 50, 1.8, 2, 2},
		{"tiny room clamps to 50 sqft", 10, 1.8, 2, 2},
		{"typical bedroom", 120, 1.8, 3, 3},
		{"large living room", 300, 1.8, 4, 4},
		{"huge room capped at 8", 10000, 1.8, 2, 8},
		{"hallway spacing", 80, 4.5, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReceptaclesFromArea(tt.area, tt.spacing, tt.min)
			if got != tt.want {
				t.Errorf("ReceptaclesFromArea(%v, %v, %d) = %d, want %d",
					tt.area, tt.spacing, tt.min, got, tt.want)
			}
		})
	}
}

func TestReceptaclesFromAreaBounds(t *testing.T) {
	for area := 0.0; area <= 2000; area += 137 {
		got := ReceptaclesFromArea(area, 1.8, 2)
		if got < 2 || got > 8 {
			t.Errorf("ReceptaclesFromArea(%v, 1.8, 2) = %d, outside [2, 8]", area, got)
		}
	}
}

func TestDevicesForRoomKitchen(t *testing.T) {
	room := DetectedRoom{
		RoomType:       RoomTypeKitchen,
		RoomName:       "Kitchen",
		ApproxAreaSqFt: 180,
		HasSink:        true,
	}
	got := DevicesForRoom(room)

	want := DeviceCount{
		SymbolGFCIReceptacle: 3,
		// 1 from the fridge branch plus 1 catalog extra.
		SymbolDedicatedReceptacle: 2,
		// Area formula gives 3, plus 2 catalog wall receptacles.
		SymbolDuplexReceptacle: 5,
		SymbolRangeHoodFan:     1,
		SymbolRecessedLight:    6,
		// Base switch plus one for the range hood group.
		SymbolSinglePoleSwitch: 2,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("kitchen devices = %v, want %v", got, want)
	}
}

func TestDevicesForRoomBedroom(t *testing.T) {
	room := DetectedRoom{
		RoomType:       RoomTypeBedroom,
		RoomName:       "Bedroom 2",
		ApproxAreaSqFt: 120,
	}
	got := DevicesForRoom(room)

	want := DeviceCount{
		SymbolDuplexReceptacle:  3,
		SymbolSurfaceMountLight: 1,
		SymbolSinglePoleSwitch:  1,
		SymbolSmokeCOCombo:      1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bedroom devices = %v, want %v", got, want)
	}
}

func TestDevicesForRoomGarage(t *testing.T) {
	room := DetectedRoom{
		RoomType:       RoomTypeGarage,
		RoomName:       "Garage",
		ApproxAreaSqFt: 500,
	}
	got := DevicesForRoom(room)

	want := DeviceCount{
		// 2 car spaces + door-opener branch + 1 catalog extra.
		SymbolDuplexReceptacle: 4,
		SymbolFluorescentLight: 2,
		SymbolThreeWaySwitch:   2,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("garage devices = %v, want %v", got, want)
	}
}

func TestDevicesForRoomLaundry(t *testing.T) {
	room := DetectedRoom{
		RoomType:       RoomTypeLaundryRoom,
		RoomName:       "Laundry",
		ApproxAreaSqFt: 60,
		HasSink:        true,
	}
	got := DevicesForRoom(room)

	want := DeviceCount{
		SymbolDuplexReceptacle:  2,
		SymbolDryerOutlet:       2, // branch + catalog extra
		SymbolSurfaceMountLight: 1,
		SymbolSinglePoleSwitch:  1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("laundry devices = %v, want %v", got, want)
	}
}

func TestDevicesForRoomBathroom(t *testing.T) {
	room := DetectedRoom{
		RoomType:         RoomTypeBathroom,
		RoomName:         "Main Bathroom",
		ApproxAreaSqFt:   60,
		HasSink:          true,
		HasBathtubShower: true,
	}
	got := DevicesForRoom(room)

	want := DeviceCount{
		SymbolGFCIReceptacle:    1,
		SymbolSurfaceMountLight: 1,
		SymbolSinglePoleSwitch:  1,
		SymbolExhaustFan:        1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bathroom devices = %v, want %v", got, want)
	}
}

func TestDevicesForRoomLargeLivingRoomGetsThreeWay(t *testing.T) {
	room := DetectedRoom{
		RoomType:       RoomTypeLivingRoom,
		RoomName:       "Great Room",
		ApproxAreaSqFt: 300,
	}
	got := DevicesForRoom(room)

	if got[SymbolThreeWaySwitch] != 2 {
		t.Errorf("three-way switches = %d, want 2", got[SymbolThreeWaySwitch])
	}
	// 1 base + 1 for the extra light group, minus 1 converted to 3-way.
	if got[SymbolSinglePoleSwitch] != 1 {
		t.Errorf("single-pole switches = %d, want 1", got[SymbolSinglePoleSwitch])
	}
	if got[SymbolRecessedLight] != 7 {
		t.Errorf("recessed lights = %d, want 7", got[SymbolRecessedLight])
	}
}

func TestDevicesForRoomStairway(t *testing.T) {
	got := DevicesForRoom(DetectedRoom{RoomType: RoomTypeStairway, ApproxAreaSqFt: 40})

	want := DeviceCount{
		SymbolSurfaceMountLight: 1,
		SymbolThreeWaySwitch:    2,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("stairway devices = %v, want %v", got, want)
	}
}

func TestDevicesForRoomUnknownType(t *testing.T) {
	got := DevicesForRoom(DetectedRoom{RoomType: "wine_cellar", ApproxAreaSqFt: 90})

	if !reflect.DeepEqual(got, DefaultDevices()) {
		t.Errorf("unknown room devices = %v, want default set %v", got, DefaultDevices())
	}
}

func TestDevicesForRoomNonNegative(t *testing.T) {
	areas := []float64{0, 25, 80, 180, 400, 1200}
	for _, rt := range AllRoomTypes() {
		for _, area := range areas {
			devices := DevicesForRoom(DetectedRoom{RoomType: rt, ApproxAreaSqFt: area})
			for sym, n := range devices {
				if n < 0 {
					t.Errorf("%s at %v sqft: %s = %d, want >= 0", rt, area, sym, n)
				}
			}
		}
	}
}

func TestWholeHouseDevicesEmpty(t *testing.T) {
	got := WholeHouseDevices(nil)

	want := DeviceCount{
		SymbolOutdoorReceptacle: 1,
		SymbolExteriorLight:     2,
		SymbolDoorbell:          1,
		SymbolThermostat:        1,
		SymbolPanelBoard:        1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WholeHouseDevices(nil) = %v, want %v", got, want)
	}
}

func TestWholeHouseDevicesLowVoltage(t *testing.T) {
	rooms := []DetectedRoom{
		{RoomType: RoomTypeLivingRoom, ApproxAreaSqFt: 200},
		{RoomType: RoomTypePrimaryBedroom, ApproxAreaSqFt: 160},
		{RoomType: RoomTypeBedroom, ApproxAreaSqFt: 110},
		{RoomType: RoomTypeKitchen, ApproxAreaSqFt: 150},
	}
	got := WholeHouseDevices(rooms)

	// Living room, primary bedroom, and bedroom each take a data outlet.
	if got[SymbolDataOutlet] != 3 {
		t.Errorf("data outlets = %d, want 3", got[SymbolDataOutlet])
	}
	// Only the living room takes a TV outlet.
	if got[SymbolTVOutlet] != 1 {
		t.Errorf("tv outlets = %d, want 1", got[SymbolTVOutlet])
	}
}

func TestWholeHouseDevicesSmokeCoverage(t *testing.T) {
	rooms := []DetectedRoom{
		{RoomType: RoomTypeBedroom, ApproxAreaSqFt: 120},
		{RoomType: RoomTypeBedroom, ApproxAreaSqFt: 110},
		{RoomType: RoomTypeHallway, ApproxAreaSqFt: 60},
		{RoomType: RoomTypeBasementFinished, ApproxAreaSqFt: 400},
	}
	got := WholeHouseDevices(rooms)

	// 2 bedrooms + 1 finished basement per-room, +1 hallway, +1 basement stair.
	if got[SymbolSmokeCOCombo] != 5 {
		t.Errorf("smoke/CO combos = %d, want 5", got[SymbolSmokeCOCombo])
	}
	if got[SymbolPanelBoard] != 1 {
		t.Errorf("panel boards = %d, want 1", got[SymbolPanelBoard])
	}
}

func TestWholeHouseDevicesIdempotent(t *testing.T) {
	rooms := []DetectedRoom{
		{RoomType: RoomTypeKitchen, ApproxAreaSqFt: 180},
		{RoomType: RoomTypeLivingRoom, ApproxAreaSqFt: 300},
		{RoomType: RoomTypeGarage, ApproxAreaSqFt: 440},
		{RoomType: RoomTypeHallway, ApproxAreaSqFt: 70},
	}
	first := WholeHouseDevices(rooms)
	second := WholeHouseDevices(rooms)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differs: %v vs %v", first, second)
	}
}
