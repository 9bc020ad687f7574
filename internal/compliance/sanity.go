package compliance

import (
	"fmt"

	"github.com/sparkestimate/spark-core/internal/cec"
)

// maxCountRules caps each symbol at a count plausible for a residential
// floor. Exceeding a cap signals a detection mistake, not a code issue.
var maxCountRules = []struct {
	symbol cec.Symbol
	max    int
	msg    string
}{
	{cec.SymbolDuplexReceptacle, 80, "More than 80 outlets seems excessive for residential"},
	{cec.SymbolGFCIReceptacle, 20, "More than 20 GFCI outlets is unusual"},
	{cec.SymbolSinglePoleSwitch, 50, "More than 50 switches seems high for residential"},
	{cec.SymbolRecessedLight, 100, "More than 100 pot lights is very high"},
	{cec.SymbolSmokeDetector, 20, "More than 20 smoke detectors is unusual for residential"},
	{cec.SymbolPanelBoard, 3, "More than 3 panels is unusual for residential"},
	{cec.SymbolExhaustFan, 10, "More than 10 exhaust fans is unusual"},
}

// SanityCheck flags implausible device counts. These rules catch the
// worst detection errors; they do not replace human review.
func SanityCheck(counts cec.DeviceCount, houseSqFt float64) []SanityWarning {
	var warnings []SanityWarning
	total := counts.Total()

	for _, rule := range maxCountRules {
		if n := counts[rule.symbol]; n > rule.max {
			warnings = append(warnings, SanityWarning{
				Rule:       "max_count",
				Message:    fmt.Sprintf("%s: %d found. %s", rule.symbol, n, rule.msg),
				Severity:   "warning",
				SymbolType: string(rule.symbol),
			})
		}
	}

	smoke := counts[cec.SymbolSmokeDetector] + counts[cec.SymbolSmokeCOCombo]
	if total > 5 && smoke == 0 {
		warnings = append(warnings, SanityWarning{
			Rule:       "cec_minimum",
			Message:    "No smoke detectors found. CEC requires hardwired smoke detectors in residential.",
			Severity:   "error",
			SymbolType: string(cec.SymbolSmokeDetector),
		})
	}

	gfci := counts[cec.SymbolGFCIReceptacle] + counts[cec.SymbolOutdoorReceptacle]
	if total > 10 && gfci == 0 {
		warnings = append(warnings, SanityWarning{
			Rule:       "cec_minimum",
			Message:    "No GFCI receptacles found. CEC requires GFCI in kitchens, bathrooms, outdoors, garages.",
			Severity:   "error",
			SymbolType: string(cec.SymbolGFCIReceptacle),
		})
	}

	if total > 10 && counts[cec.SymbolPanelBoard] == 0 {
		warnings = append(warnings, SanityWarning{
			Rule:       "missing_panel",
			Message:    "No panel board found. Every residential service needs at least one panel.",
			Severity:   "warning",
			SymbolType: string(cec.SymbolPanelBoard),
		})
	}

	switches := counts[cec.SymbolSinglePoleSwitch] + counts[cec.SymbolThreeWaySwitch] +
		counts[cec.SymbolFourWaySwitch] + counts[cec.SymbolDimmerSwitch]
	lights := counts[cec.SymbolRecessedLight] + counts[cec.SymbolSurfaceMountLight] +
		counts[cec.SymbolPendantLight] + counts[cec.SymbolExteriorLight] +
		counts[cec.SymbolTrackLight] + counts[cec.SymbolFluorescentLight]
	if lights > 5 && switches == 0 {
		warnings = append(warnings, SanityWarning{
			Rule:     "ratio_check",
			Message:  fmt.Sprintf("%d lights found but 0 switches. Lights need switches.", lights),
			Severity: "warning",
		})
	}
	if switches > 5 && lights == 0 {
		warnings = append(warnings, SanityWarning{
			Rule:     "ratio_check",
			Message:  fmt.Sprintf("%d switches found but 0 lights. Check if lights were missed.", switches),
			Severity: "warning",
		})
	}

	if houseSqFt > 0 {
		outlets := counts[cec.SymbolDuplexReceptacle]
		expectedMin := houseSqFt / 150
		expectedMax := houseSqFt / 50
		if outlets > 0 && float64(outlets) < expectedMin {
			warnings = append(warnings, SanityWarning{
				Rule:     "sqft_ratio",
				Message:  fmt.Sprintf("Only %d outlets for %.0f sqft. Expected at least %d.", outlets, houseSqFt, int(expectedMin)),
				Severity: "info",
			})
		}
		if float64(outlets) > expectedMax {
			warnings = append(warnings, SanityWarning{
				Rule:     "sqft_ratio",
				Message:  fmt.Sprintf("%d outlets for %.0f sqft seems high. Expected max ~%d.", outlets, houseSqFt, int(expectedMax)),
				Severity: "info",
			})
		}
	}

	if total == 0 {
		warnings = append(warnings, SanityWarning{
			Rule:     "empty_result",
			Message:  "No electrical symbols detected at all. Is this the right page?",
			Severity: "error",
		})
	}

	return warnings
}
