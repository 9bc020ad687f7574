package compliance

import (
	"fmt"
	"math"
	"strings"

	"github.com/sparkestimate/spark-core/internal/cec"
	"github.com/sparkestimate/spark-core/internal/circuit"
)

// Check runs the CEC 2021 compliance checks against a device-count map
// and the detected room list, returning a scored report. INFO results are
// reminders for the installer and are excluded from the score.
func Check(counts cec.DeviceCount, rooms []cec.DetectedRoom) Report {
	var results []CheckResult

	results = append(results, checkSmokeDetectors(counts, rooms))
	results = append(results, checkPanel(counts))
	results = append(results, checkOutdoorReceptacle(counts))
	results = append(results, checkExteriorLighting(counts))
	results = append(results, checkDoorbell(counts))
	results = append(results, checkThermostat(counts))
	results = append(results, checkDataOutlets(counts))

	for _, room := range rooms {
		req, ok := cec.RequirementFor(room.RoomType)
		if !ok {
			continue
		}
		label := roomLabel(room)

		if req.NeedsGFCI {
			results = append(results, checkRoomGFCI(counts, room, label))
		}
		if req.NeedsExhaustFan {
			results = append(results, checkRoomExhaust(counts, label))
		}
		switch room.RoomType {
		case cec.RoomTypeBathroom:
			results = append(results, CheckResult{
				Severity:       SeverityInfo,
				Rule:           "CEC 26-720 f)",
				Room:           label,
				Description:    "Ensure receptacle is within 1m of wash basin and min 500mm from tub/shower",
				Recommendation: "Verify placement during rough-in. GFCI required.",
			})
		case cec.RoomTypeKitchen:
			results = append(results, checkKitchenRules(counts, label)...)
		case cec.RoomTypeGarage:
			results = append(results, CheckResult{
				Severity:       SeverityInfo,
				Rule:           "CEC 26-724 b)",
				Room:           label,
				Description:    "Garage requires GFCI-protected receptacles and 3-way switching",
				Recommendation: "Verify GFCI protection and 3-way switch from house entry to garage door",
			})
		}
	}

	if r, ok := checkSwitchLightRatio(counts); ok {
		results = append(results, r)
	}
	if r, ok := checkAFCICoverage(rooms); ok {
		results = append(results, r)
	}
	results = append(results, checkCircuitLoading(counts))

	return score(results)
}

func score(results []CheckResult) Report {
	var passes, warnings, failures int
	for _, r := range results {
		switch r.Severity {
		case SeverityPass:
			passes++
		case SeverityWarning:
			warnings++
		case SeverityFail:
			failures++
		}
	}
	scored := passes + warnings + failures
	pct := 100.0
	if scored > 0 {
		pct = math.Round(float64(passes)/float64(scored)*1000) / 10
	}
	return Report{
		TotalChecks: len(results),
		Passes:      passes,
		Warnings:    warnings,
		Failures:    failures,
		Results:     results,
		ScorePct:    pct,
	}
}

func roomLabel(room cec.DetectedRoom) string {
	words := strings.Split(string(room.RoomType), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return fmt.Sprintf("%s (%s)", room.RoomName, strings.Join(words, " "))
}

// CEC 32-110 / NBC 9.10.19: smoke alarms in each bedroom plus outside
// sleeping areas, minimum 3 for any dwelling.
func checkSmokeDetectors(counts cec.DeviceCount, rooms []cec.DetectedRoom) CheckResult {
	bedrooms := 0
	for _, r := range rooms {
		if r.RoomType == cec.RoomTypeBedroom || r.RoomType == cec.RoomTypePrimaryBedroom {
			bedrooms++
		}
	}
	minSmoke := bedrooms + 1
	if minSmoke < 3 {
		minSmoke = 3
	}
	smoke := counts[cec.SymbolSmokeCOCombo] + counts[cec.SymbolSmokeDetector]

	rule := "CEC 32-110 / NBC 9.10.19"
	switch {
	case smoke >= minSmoke:
		return CheckResult{
			Severity:    SeverityPass,
			Rule:        rule,
			Room:        "Whole House",
			Description: fmt.Sprintf("Smoke/CO detectors: %d (min %d required)", smoke, minSmoke),
		}
	case smoke > 0:
		return CheckResult{
			Severity:       SeverityWarning,
			Rule:           rule,
			Room:           "Whole House",
			Description:    fmt.Sprintf("Smoke/CO detectors: %d, recommended minimum is %d", smoke, minSmoke),
			Recommendation: fmt.Sprintf("Add %d more smoke/CO detectors (each bedroom + hallway outside bedrooms + each floor)", minSmoke-smoke),
		}
	default:
		return CheckResult{
			Severity:       SeverityFail,
			Rule:           rule,
			Room:           "Whole House",
			Description:    "No smoke/CO detectors found",
			Recommendation: fmt.Sprintf("Add at least %d hardwired smoke/CO detectors", minSmoke),
		}
	}
}

func checkPanel(counts cec.DeviceCount) CheckResult {
	if counts[cec.SymbolPanelBoard] >= 1 {
		return CheckResult{Severity: SeverityPass, Rule: "CEC 26-400", Room: "Whole House",
			Description: "Panel board present"}
	}
	return CheckResult{Severity: SeverityFail, Rule: "CEC 26-400", Room: "Whole House",
		Description:    "No panel board in estimate",
		Recommendation: "Add a panel board (load center)"}
}

func checkOutdoorReceptacle(counts cec.DeviceCount) CheckResult {
	if n := counts[cec.SymbolOutdoorReceptacle]; n >= 1 {
		return CheckResult{Severity: SeverityPass, Rule: "CEC 26-724 f)", Room: "Whole House",
			Description: fmt.Sprintf("Outdoor receptacle(s): %d", n)}
	}
	return CheckResult{Severity: SeverityFail, Rule: "CEC 26-724 f)", Room: "Whole House",
		Description:    "No outdoor receptacle found",
		Recommendation: "Add at least 1 weather-resistant outdoor GFCI receptacle"}
}

func checkExteriorLighting(counts cec.DeviceCount) CheckResult {
	if n := counts[cec.SymbolExteriorLight]; n >= 1 {
		return CheckResult{Severity: SeverityPass, Rule: "CEC 30-102", Room: "Whole House",
			Description: fmt.Sprintf("Exterior lights: %d", n)}
	}
	return CheckResult{Severity: SeverityWarning, Rule: "CEC 30-102", Room: "Whole House",
		Description:    "No exterior lighting found",
		Recommendation: "Add at least 1 exterior light at main entrance"}
}

func checkDoorbell(counts cec.DeviceCount) CheckResult {
	if counts[cec.SymbolDoorbell] >= 1 {
		return CheckResult{Severity: SeverityPass, Rule: "General", Room: "Whole House",
			Description: "Doorbell present"}
	}
	return CheckResult{Severity: SeverityInfo, Rule: "General", Room: "Whole House",
		Description:    "No doorbell in estimate",
		Recommendation: "Consider adding a doorbell/chime (standard for new construction)"}
}

func checkThermostat(counts cec.DeviceCount) CheckResult {
	if counts[cec.SymbolThermostat] >= 1 {
		return CheckResult{Severity: SeverityPass, Rule: "General", Room: "Whole House",
			Description: "Thermostat present"}
	}
	return CheckResult{Severity: SeverityWarning, Rule: "General", Room: "Whole House",
		Description:    "No thermostat in estimate",
		Recommendation: "Add thermostat wiring (low voltage)"}
}

func checkDataOutlets(counts cec.DeviceCount) CheckResult {
	data := counts[cec.SymbolDataOutlet] + counts[cec.SymbolTVOutlet]
	switch {
	case data >= 2:
		return CheckResult{Severity: SeverityPass, Rule: "CEC 60-100", Room: "Whole House",
			Description: fmt.Sprintf("Data/communication outlets: %d", data)}
	case data > 0:
		return CheckResult{Severity: SeverityWarning, Rule: "CEC 60-100", Room: "Whole House",
			Description:    fmt.Sprintf("Only %d data/communication outlet(s)", data),
			Recommendation: "Consider adding Cat6/coax outlets in main living areas and bedrooms"}
	default:
		return CheckResult{Severity: SeverityWarning, Rule: "CEC 60-100", Room: "Whole House",
			Description:    "No data or TV outlets in estimate",
			Recommendation: "Add Cat6 data outlets and TV (coax) outlets in living areas"}
	}
}

func checkRoomGFCI(counts cec.DeviceCount, room cec.DetectedRoom, label string) CheckResult {
	if counts[cec.SymbolGFCIReceptacle] > 0 {
		return CheckResult{Severity: SeverityPass, Rule: "CEC 26-700", Room: label,
			Description: "GFCI protection available for this wet/damp location"}
	}
	return CheckResult{Severity: SeverityFail, Rule: "CEC 26-700", Room: label,
		Description:    fmt.Sprintf("GFCI required in %s but none found in estimate", strings.ReplaceAll(string(room.RoomType), "_", " ")),
		Recommendation: "Add GFCI receptacle for this location"}
}

func checkRoomExhaust(counts cec.DeviceCount, label string) CheckResult {
	if counts[cec.SymbolExhaustFan] >= 1 {
		return CheckResult{Severity: SeverityPass, Rule: "NBC 9.32 / CEC 30-320", Room: label,
			Description: "Exhaust fan present for this bathroom"}
	}
	return CheckResult{Severity: SeverityFail, Rule: "NBC 9.32 / CEC 30-320", Room: label,
		Description:    "No exhaust fan, required for bathrooms without operable window",
		Recommendation: "Add exhaust fan (min 50 CFM for standard bath, 100+ CFM for large)"}
}

func checkKitchenRules(counts cec.DeviceCount, label string) []CheckResult {
	var results []CheckResult

	if n := counts[cec.SymbolDedicatedReceptacle]; n >= 1 {
		results = append(results, CheckResult{
			Severity: SeverityPass, Rule: "CEC 26-654 a)", Room: label,
			Description: fmt.Sprintf("Dedicated receptacle(s) present (%d)", n)})
	} else {
		results = append(results, CheckResult{
			Severity: SeverityWarning, Rule: "CEC 26-654 a)", Room: label,
			Description:    "No dedicated receptacle found (fridge needs dedicated circuit)",
			Recommendation: "Add dedicated receptacle for refrigerator"})
	}

	if counts[cec.SymbolRangeHoodFan] >= 1 {
		results = append(results, CheckResult{
			Severity: SeverityPass, Rule: "NBC 9.32", Room: label,
			Description: "Range hood/exhaust present"})
	} else {
		results = append(results, CheckResult{
			Severity: SeverityWarning, Rule: "NBC 9.32", Room: label,
			Description:    "No range hood/kitchen exhaust found",
			Recommendation: "Add range hood fan (vented to exterior for new construction)"})
	}
	return results
}

func checkSwitchLightRatio(counts cec.DeviceCount) (CheckResult, bool) {
	lights := counts[cec.SymbolRecessedLight] + counts[cec.SymbolSurfaceMountLight] +
		counts[cec.SymbolPendantLight] + counts[cec.SymbolTrackLight] +
		counts[cec.SymbolFluorescentLight]
	switches := counts[cec.SymbolSinglePoleSwitch] + counts[cec.SymbolThreeWaySwitch] +
		counts[cec.SymbolFourWaySwitch] + counts[cec.SymbolDimmerSwitch]

	if lights == 0 && switches == 0 {
		return CheckResult{}, false
	}

	divisor := lights
	if divisor < 1 {
		divisor = 1
	}
	ratio := float64(switches) / float64(divisor)
	switch {
	case ratio >= 0.2 && ratio <= 1.5:
		return CheckResult{Severity: SeverityPass, Rule: "General", Room: "Whole House",
			Description: fmt.Sprintf("Switch-to-light ratio: %d switches / %d lights (%.2f)", switches, lights, ratio)}, true
	case ratio < 0.2:
		return CheckResult{Severity: SeverityWarning, Rule: "General", Room: "Whole House",
			Description:    fmt.Sprintf("Very few switches (%d) for %d lights", switches, lights),
			Recommendation: "Check that all light locations have proper switch control"}, true
	default:
		return CheckResult{Severity: SeverityInfo, Rule: "General", Room: "Whole House",
			Description: fmt.Sprintf("High switch count (%d) for %d lights, may include multi-location control", switches, lights)}, true
	}
}

// CEC 26-656: AFCI breakers required for bedroom circuits.
func checkAFCICoverage(rooms []cec.DetectedRoom) (CheckResult, bool) {
	bedrooms := 0
	for _, r := range rooms {
		if r.RoomType == cec.RoomTypeBedroom || r.RoomType == cec.RoomTypePrimaryBedroom {
			bedrooms++
		}
	}
	if bedrooms == 0 {
		return CheckResult{}, false
	}
	return CheckResult{
		Severity:       SeverityInfo,
		Rule:           "CEC 26-656 1)",
		Room:           "Whole House",
		Description:    fmt.Sprintf("%d bedroom(s) detected, AFCI breakers required for bedroom circuits", bedrooms),
		Recommendation: "Ensure all bedroom branch circuits use combination AFCI breakers",
	}, true
}

func checkCircuitLoading(counts cec.DeviceCount) CheckResult {
	receptacles := counts[cec.SymbolDuplexReceptacle] + counts[cec.SymbolGFCIReceptacle] +
		counts[cec.SymbolDedicatedReceptacle] + counts[cec.SymbolOutdoorReceptacle]
	lights := counts[cec.SymbolRecessedLight] + counts[cec.SymbolSurfaceMountLight] +
		counts[cec.SymbolPendantLight] + counts[cec.SymbolTrackLight] +
		counts[cec.SymbolFluorescentLight]

	circuitsNeeded := (receptacles+lights)/circuit.MaxOutletsPerCircuit + 1
	if circuitsNeeded <= 20 {
		return CheckResult{Severity: SeverityPass, Rule: "CEC 8-200", Room: "Whole House",
			Description: fmt.Sprintf("Estimated general circuits needed: ~%d (%d receptacles + %d lights)",
				circuitsNeeded, receptacles, lights)}
	}
	return CheckResult{Severity: SeverityWarning, Rule: "CEC 8-200", Room: "Whole House",
		Description:    fmt.Sprintf("High device count may require larger panel, ~%d circuits needed", circuitsNeeded),
		Recommendation: "Consider 200A panel with 40+ spaces"}
}
