package cec

import (
	"math"
	"strings"
)

// ReceptaclesFromArea calculates a receptacle count from room area using the
// wall spacing rule. The room is approximated as a square: side length is
// the square root of area, perimeter is four sides. The spacing limit is
// converted to feet (1 m = 3.28 ft) and each receptacle covers twice that
// distance (one reach either side). 30% of the perimeter is written off for
// doorways, windows, and corners. The result is floored at minReceptacles
// and capped at 8.
//
// Area is clamped to a floor of 50 sq ft so degenerate tiny rooms still
// produce a sane count. This is a geometric heuristic, not an exact code
// calculation.
func ReceptaclesFromArea(areaSqFt float64, wallSpacingM float64, minReceptacles int) int {
	sqft := math.Max(areaSqFt, 50)
	sideFt := math.Sqrt(sqft)
	perimeterFt := sideFt * 4

	spacingFt := wallSpacingM * 3.28
	coverageFt := spacingFt * 2

	usablePerimeter := perimeterFt * 0.70

	count := int(math.Round(usablePerimeter / coverageFt))
	if count < minReceptacles {
		count = minReceptacles
	}
	if count > 8 {
		count = 8
	}
	return count
}

// DevicesForRoom generates the minimum device counts for a single detected
// room. Unknown room categories degrade to DefaultDevices rather than
// failing. The result is deterministic for identical input and every count
// is non-negative.
func DevicesForRoom(room DetectedRoom) DeviceCount {
	req, ok := RequirementFor(room.RoomType)
	if !ok {
		return DefaultDevices()
	}

	devices := DeviceCount{}

	// Receptacles.
	switch room.RoomType {
	case RoomTypeKitchen:
		// Counter receptacles (split or 20A GFCI), fridge dedicated,
		// then general wall receptacles at the standard 1.8m spacing.
		counter := req.MinReceptacles
		if counter < 3 {
			counter = 3
		}
		devices[SymbolGFCIReceptacle] = counter
		devices[SymbolDedicatedReceptacle] = 1
		devices[SymbolDuplexReceptacle] = ReceptaclesFromArea(room.ApproxAreaSqFt, 1.8, 2)
		devices[SymbolRangeHoodFan] = 1
	case RoomTypeBathroom, RoomTypePowderRoom:
		devices[SymbolGFCIReceptacle] = req.MinReceptacles
	case RoomTypeGarage:
		// 1 per car space estimated from area, +1 for the door opener.
		carSpaces := int(room.ApproxAreaSqFt / 250)
		if carSpaces < 1 {
			carSpaces = 1
		}
		devices[SymbolDuplexReceptacle] = carSpaces + 1
	case RoomTypeLaundryRoom:
		devices[SymbolDuplexReceptacle] = 2 // washer + additional
		devices[SymbolDryerOutlet] = 1
	default:
		count := req.MinReceptacles
		if req.UsesWallSpacingRule {
			count = ReceptaclesFromArea(room.ApproxAreaSqFt, req.WallSpacingM, req.MinReceptacles)
		}
		if count > 0 {
			if req.ReceptacleType == ReceptacleGFCI {
				devices[SymbolGFCIReceptacle] = count
			} else {
				devices[SymbolDuplexReceptacle] = count
			}
		}
	}

	// Fixed additional receptacles from the catalog accumulate on top.
	for _, extra := range req.AdditionalRecepts {
		devices.Add(extra.Symbol, extra.Count)
	}

	// Lighting.
	if req.MinLightingOutlets > 0 {
		switch room.RoomType {
		case RoomTypeClosetWalkIn, RoomTypeClosetStandard, RoomTypePantry:
			devices[SymbolSurfaceMountLight] = 1
		case RoomTypeKitchen:
			devices[SymbolRecessedLight] = maxInt(4, int(room.ApproxAreaSqFt/30))
		case RoomTypeBathroom, RoomTypePowderRoom:
			devices[SymbolSurfaceMountLight] = 1
		case RoomTypeLivingRoom, RoomTypeFamilyRoom, RoomTypePrimaryBedroom:
			devices[SymbolRecessedLight] = maxInt(4, int(room.ApproxAreaSqFt/40))
		case RoomTypeGarage, RoomTypeBasementUnfinished:
			devices[SymbolFluorescentLight] = maxInt(1, int(room.ApproxAreaSqFt/200))
		default:
			devices[SymbolSurfaceMountLight] = req.MinLightingOutlets
		}
	}

	// Switches. Light counts feed switch counts, so this runs after lighting
	// but before the exhaust fan is added.
	if req.MinSwitches > 0 {
		if req.MinSwitches >= 2 {
			devices[SymbolThreeWaySwitch] = 2
		} else {
			devices[SymbolSinglePoleSwitch] = 1
		}

		totalLights := countLightLike(devices)
		if totalLights > 4 && room.RoomType != RoomTypeHallway && room.RoomType != RoomTypeStairway {
			// One extra switch per additional group of 4 lights.
			extraSwitches := (totalLights - 1) / 4
			if extraSwitches < 0 {
				extraSwitches = 0
			}
			if room.RoomType == RoomTypeKitchen && extraSwitches < 1 {
				extraSwitches = 1 // range hood switch
			}
			devices[SymbolSinglePoleSwitch] += extraSwitches
		}

		// Large living-type rooms get a second point of control.
		if room.ApproxAreaSqFt >= 250 && isLargeSwitchRoom(room.RoomType) {
			if _, has := devices[SymbolThreeWaySwitch]; !has {
				devices[SymbolThreeWaySwitch] = 2
				if devices[SymbolSinglePoleSwitch] > 0 {
					devices.Add(SymbolSinglePoleSwitch, -1)
				}
			}
		}
	}

	if req.NeedsExhaustFan {
		devices[SymbolExhaustFan] = 1
	}
	if req.NeedsSmokeDetector {
		devices[SymbolSmokeCOCombo] = 1
	}

	return devices
}

// WholeHouseDevices aggregates per-room device counts and adds the
// whole-dwelling fixed requirements: exterior receptacle and lighting,
// doorbell, thermostat, panel board, low-voltage outlets, and the extra
// smoke/CO coverage for hallways and basements.
func WholeHouseDevices(rooms []DetectedRoom) DeviceCount {
	totals := DeviceCount{}
	for _, room := range rooms {
		totals.Merge(DevicesForRoom(room))
	}

	// Rule 26-724 a): at least one outdoor GFCI receptacle.
	totals.Add(SymbolOutdoorReceptacle, 1)

	// Front and rear entry lights.
	totals.Add(SymbolExteriorLight, 2)

	totals.Add(SymbolDoorbell, 1)
	totals.Add(SymbolThermostat, 1)

	// Every dwelling needs exactly one panel board; never add a second.
	if totals[SymbolPanelBoard] == 0 {
		totals[SymbolPanelBoard] = 1
	}

	// Low-voltage: one data outlet per living area and bedroom, one TV
	// outlet per main living area. None at all for an empty room list.
	dataRooms := 0
	tvRooms := 0
	hallways := 0
	basements := 0
	for _, room := range rooms {
		switch room.RoomType {
		case RoomTypeLivingRoom, RoomTypeFamilyRoom:
			dataRooms++
			tvRooms++
		case RoomTypePrimaryBedroom, RoomTypeBedroom:
			dataRooms++
		case RoomTypeHallway:
			hallways++
		case RoomTypeBasementFinished, RoomTypeBasementUnfinished:
			basements++
		}
	}
	totals.Add(SymbolDataOutlet, dataRooms)
	totals.Add(SymbolTVOutlet, tvRooms)

	// Smoke/CO outside sleeping areas and at the basement stair. Additive
	// on top of the per-room detectors already counted.
	if hallways > 0 {
		totals.Add(SymbolSmokeCOCombo, 1)
	}
	if basements > 0 {
		totals.Add(SymbolSmokeCOCombo, 1)
	}

	return totals
}

// countLightLike sums quantities whose symbol names a luminaire or fan.
func countLightLike(devices DeviceCount) int {
	total := 0
	for sym, n := range devices {
		s := string(sym)
		if containsAny(s, "light", "pot_light", "fluorescent", "fan") {
			total += n
		}
	}
	return total
}

func isLargeSwitchRoom(rt RoomType) bool {
	switch rt {
	case RoomTypePrimaryBedroom, RoomTypeLivingRoom, RoomTypeFamilyRoom, RoomTypeBasementFinished:
		return true
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
