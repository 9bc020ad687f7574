// Package wireplan estimates wire runs from the panel location to each
// room centroid on the drawing. Cables never run straight, so the
// Manhattan distance between panel and room is scaled by a routing
// factor for paths along joists and studs, plus a vertical allowance per
// floor crossed and make-up slack at every box.
package wireplan

import (
	"math"

	"github.com/sparkestimate/spark-core/internal/cec"
)

const (
	// RoutingFactor scales straight runs for real cable paths. Industry
	// practice for residential is 1.4 to 1.6.
	RoutingFactor = 1.5

	// VerticalPerFloorFt is added per floor difference between panel and
	// room, covering plate drops and stairwell chases.
	VerticalPerFloorFt = 12.0

	// DeviceMakeupFt is the connection slack left at each box.
	DeviceMakeupFt = 3.0

	// MinRunFt floors the per-device allowance: even adjacent rooms need
	// some wire.
	MinRunFt = 10.0
)

// floorOrder ranks floor levels for vertical distance calculation.
var floorOrder = map[string]int{
	"basement":            0,
	"basement_unfinished": 0,
	"basement_finished":   0,
	"main":                1,
	"upper":               2,
	"upper_2":             3,
}

// RoomDistance is the wire run estimate for one room.
type RoomDistance struct {
	RoomName         string  `json:"room_name"`
	RoomType         string  `json:"room_type"`
	FloorLevel       string  `json:"floor_level"`
	StraightLineFt   float64 `json:"straight_line_ft"`
	ManhattanFt      float64 `json:"manhattan_ft"`
	RoutedFt         float64 `json:"routed_ft"`
	VerticalFt       float64 `json:"vertical_ft"`
	TotalPerDeviceFt float64 `json:"total_per_device_ft"`
	DevicesInRoom    int     `json:"devices_in_room"`
	TotalRoomWireFt  float64 `json:"total_room_wire_ft"`
}

// Input carries the panel placement and drawing geometry for a
// distance calculation.
type Input struct {
	// PanelX and PanelY are the panel's position on the drawing as
	// percentages (0-100).
	PanelX float64 `json:"panel_x"`
	PanelY float64 `json:"panel_y"`

	Rooms []cec.DetectedRoom `json:"rooms"`

	// RoomDevices maps room index to that room's device counts. Rooms
	// without an entry contribute zero devices.
	RoomDevices map[int]cec.DeviceCount `json:"room_devices,omitempty"`

	// DrawingScaleFt is the feet-per-percent scale of the drawing. When
	// zero it is estimated from HousePerimeterFt.
	DrawingScaleFt float64 `json:"drawing_scale_ft"`

	// HousePerimeterFt backs the scale estimate. Zero defaults to 80 ft,
	// roughly a 1200 sqft house.
	HousePerimeterFt float64 `json:"house_perimeter_ft"`

	// PanelFloor is the floor the panel sits on. Empty auto-detects:
	// basement when one exists, otherwise main.
	PanelFloor string `json:"panel_floor"`
}

// Distances calculates the wire run from the panel to every room.
// Returns nil when there are no rooms.
func Distances(in Input) []RoomDistance {
	if len(in.Rooms) == 0 {
		return nil
	}

	scale := in.DrawingScaleFt
	if scale <= 0 {
		perimeter := in.HousePerimeterFt
		if perimeter <= 0 {
			perimeter = 80.0
		}
		// Assume the house spans about 60% of the drawing width.
		scale = (perimeter / 4) / 60.0
	}

	panelFloor := in.PanelFloor
	if panelFloor == "" {
		panelFloor = guessPanelFloor(in.Rooms)
	}
	panelFloorNum := floorNum(panelFloor)

	results := make([]RoomDistance, 0, len(in.Rooms))
	for i, room := range in.Rooms {
		rx, ry := 50.0, 50.0 // centre of drawing when no location known
		if len(room.Location) >= 2 {
			rx, ry = room.Location[0], room.Location[1]
		}

		dxFt := math.Abs(in.PanelX-rx) * scale
		dyFt := math.Abs(in.PanelY-ry) * scale

		straightFt := math.Hypot(dxFt, dyFt)
		manhattanFt := dxFt + dyFt
		routedFt := manhattanFt * RoutingFactor

		floorDiff := math.Abs(float64(floorNum(room.FloorLevel) - panelFloorNum))
		verticalFt := floorDiff * VerticalPerFloorFt

		perDeviceFt := routedFt + verticalFt + DeviceMakeupFt
		if perDeviceFt < MinRunFt {
			perDeviceFt = MinRunFt
		}

		deviceCount := 0
		if devices, ok := in.RoomDevices[i]; ok {
			deviceCount = devices.Total()
		}
		totalWire := 0.0
		if deviceCount > 0 {
			totalWire = perDeviceFt * float64(deviceCount)
		}

		level := room.FloorLevel
		if level == "" {
			level = "main"
		}

		results = append(results, RoomDistance{
			RoomName:         room.RoomName,
			RoomType:         string(room.RoomType),
			FloorLevel:       level,
			StraightLineFt:   round1(straightFt),
			ManhattanFt:      round1(manhattanFt),
			RoutedFt:         round1(routedFt),
			VerticalFt:       round1(verticalFt),
			TotalPerDeviceFt: round1(perDeviceFt),
			DevicesInRoom:    deviceCount,
			TotalRoomWireFt:  math.Round(totalWire),
		})
	}
	return results
}

// AllowanceOverrides averages the per-device wire run across all rooms
// for each device symbol, producing replacement wire allowances for the
// takeoff. Symbols never placed in any room are absent from the result.
func AllowanceOverrides(results []RoomDistance, roomDevices map[int]cec.DeviceCount) map[cec.Symbol]float64 {
	totals := map[cec.Symbol]float64{}
	counts := map[cec.Symbol]int{}

	for i, result := range results {
		devices, ok := roomDevices[i]
		if !ok {
			continue
		}
		for sym, n := range devices {
			totals[sym] += result.TotalPerDeviceFt * float64(n)
			counts[sym] += n
		}
	}

	overrides := make(map[cec.Symbol]float64, len(totals))
	for sym, total := range totals {
		if counts[sym] > 0 {
			overrides[sym] = round1(total / float64(counts[sym]))
		}
	}
	return overrides
}

func guessPanelFloor(rooms []cec.DetectedRoom) string {
	for _, r := range rooms {
		if r.FloorLevel == "basement" || r.FloorLevel == "basement_unfinished" {
			return "basement"
		}
	}
	return "main"
}

// floorNum defaults unknown levels to the main floor.
func floorNum(level string) int {
	if n, ok := floorOrder[level]; ok {
		return n
	}
	return 1
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
