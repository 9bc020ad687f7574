package compliance

import (
	"testing"

	"github.com/sparkestimate/spark-core/internal/cec"
)

func hasRule(warnings []SanityWarning, rule string) bool {
	for _, w := range warnings {
		if w.Rule == rule {
			return true
		}
	}
	return false
}

func TestSanityCheckCleanCounts(t *testing.T) {
	counts := cec.DeviceCount{
		cec.SymbolDuplexReceptacle: 24,
		cec.SymbolGFCIReceptacle:   5,
		cec.SymbolRecessedLight:    18,
		cec.SymbolSinglePoleSwitch: 10,
		cec.SymbolThreeWaySwitch:   4,
		cec.SymbolSmokeCOCombo:     4,
		cec.SymbolPanelBoard:       1,
	}
	if warnings := SanityCheck(counts, 2000); len(warnings) != 0 {
		t.Errorf("clean counts produced warnings: %v", warnings)
	}
}

func TestSanityCheckExcessiveCounts(t *testing.T) {
	counts := cec.DeviceCount{
		cec.SymbolDuplexReceptacle: 200,
		cec.SymbolRecessedLight:    150,
		cec.SymbolSmokeCOCombo:     4,
		cec.SymbolGFCIReceptacle:   4,
		cec.SymbolPanelBoard:       1,
		cec.SymbolSinglePoleSwitch: 12,
	}
	warnings := SanityCheck(counts, 0)
	if !hasRule(warnings, "max_count") {
		t.Errorf("expected max_count warnings, got %v", warnings)
	}
	maxCount := 0
	for _, w := range warnings {
		if w.Rule == "max_count" {
			maxCount++
		}
	}
	if maxCount != 2 {
		t.Errorf("max_count warnings = %d, want 2 (receptacles and pot lights)", maxCount)
	}
}

func TestSanityCheckMissingSafetyDevices(t *testing.T) {
	counts := cec.DeviceCount{
		cec.SymbolDuplexReceptacle: 30,
		cec.SymbolRecessedLight:    10,
		cec.SymbolSinglePoleSwitch: 6,
	}
	warnings := SanityCheck(counts, 0)

	if !hasRule(warnings, "cec_minimum") {
		t.Errorf("expected cec_minimum warnings for missing smoke/GFCI, got %v", warnings)
	}
	if !hasRule(warnings, "missing_panel") {
		t.Errorf("expected missing_panel warning, got %v", warnings)
	}
}

func TestSanityCheckRatioRules(t *testing.T) {
	lightsNoSwitches := cec.DeviceCount{cec.SymbolRecessedLight: 10}
	if !hasRule(SanityCheck(lightsNoSwitches, 0), "ratio_check") {
		t.Error("10 lights with 0 switches should warn")
	}

	switchesNoLights := cec.DeviceCount{cec.SymbolSinglePoleSwitch: 8}
	if !hasRule(SanityCheck(switchesNoLights, 0), "ratio_check") {
		t.Error("8 switches with 0 lights should warn")
	}
}

func TestSanityCheckSqFtRatio(t *testing.T) {
	sparse := cec.DeviceCount{
		cec.SymbolDuplexReceptacle: 5,
		cec.SymbolSmokeCOCombo:     3,
		cec.SymbolGFCIReceptacle:   4,
		cec.SymbolPanelBoard:       1,
	}
	if !hasRule(SanityCheck(sparse, 3000), "sqft_ratio") {
		t.Error("5 outlets in 3000 sqft should flag a low outlet density")
	}
}

func TestSanityCheckEmpty(t *testing.T) {
	warnings := SanityCheck(cec.DeviceCount{}, 0)
	if !hasRule(warnings, "empty_result") {
		t.Errorf("empty counts should produce empty_result, got %v", warnings)
	}
}
