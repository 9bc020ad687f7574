package schedule

import "github.com/sparkestimate/spark-core/internal/cec"

// Breaker is a single circuit breaker position in the panel.
type Breaker struct {
	Number      int    `json:"circuit_number"`
	Amps        int    `json:"amperage"`
	Poles       int    `json:"poles"`
	Description string `json:"description"`
	WireType    string `json:"wire_type"`
	GFCI        bool   `json:"is_gfci"`
	AFCI        bool   `json:"is_afci"`
	DeviceCount int    `json:"device_count"`
	LoadWatts   int    `json:"load_watts"`
	Room        string `json:"room"`
}

// Schedule is the complete breaker layout for one dwelling unit.
type Schedule struct {
	PanelSizeAmps    int       `json:"panel_size_amps"`
	MainBreakerAmps  int       `json:"main_breaker_amps"`
	Voltage          int       `json:"voltage"`
	Phases           int       `json:"phases"`
	Circuits         []Breaker `json:"circuits"`
	TotalLoadWatts   int       `json:"total_load_watts"`
	TotalDemandWatts int       `json:"total_demand_watts"`
	TotalCircuits    int       `json:"total_circuits"`
	SpacesUsed       int       `json:"spaces_used"`
	SpacesTotal      int       `json:"spaces_total"`
	ServiceAmps      float64   `json:"service_amps"`
	Notes            []string  `json:"notes"`
}

// DwellingType selects the multi-unit note on the generated schedule.
type DwellingType string

// DwellingType values.
const (
	DwellingSingle   DwellingType = "single"
	DwellingDuplex   DwellingType = "duplex"
	DwellingTriplex  DwellingType = "triplex"
	DwellingFourplex DwellingType = "fourplex"
)

// UnitCount returns the number of dwelling units, defaulting to 1 for
// unrecognised values.
func (d DwellingType) UnitCount() int {
	switch d {
	case DwellingDuplex:
		return 2
	case DwellingTriplex:
		return 3
	case DwellingFourplex:
		return 4
	}
	return 1
}

// Input carries everything the builder needs to lay out a panel.
// Voltage is the service voltage used for the demand-to-amps
// conversion; zero means 240V split phase.
type Input struct {
	Devices          cec.DeviceCount    `json:"devices"`
	Rooms            []cec.DetectedRoom `json:"rooms"`
	DwellingType     DwellingType       `json:"dwelling_type"`
	HasElectricRange bool               `json:"has_electric_range"`
	HasAC            bool               `json:"has_ac"`
	HasElectricHeat  bool               `json:"has_electric_heat"`
	TotalSqFt        float64            `json:"total_sqft"`
	Voltage          int                `json:"voltage,omitempty"`
}
