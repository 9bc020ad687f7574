package circuit

import "regexp"

// MaxOutletsPerCircuit is the branch-circuit outlet limit (CEC Rule 12-3000).
const MaxOutletsPerCircuit = 12

// WireSizing maps breaker amperage to the NMD-90 cable designation for
// 2-conductor circuits. Lookup misses fall back to the smallest standard
// gauge, never to an empty string.
var WireSizing = map[int]string{
	15: "14/2 NMD-90",
	20: "12/2 NMD-90",
	30: "10/2 NMD-90",
	40: "8/2 NMD-90",
	50: "6/2 NMD-90",
	60: "6/2 NMD-90",
}

// WireSizing3Wire maps breaker amperage to the cable designation for
// 3-conductor (shared neutral) circuits.
var WireSizing3Wire = map[int]string{
	15: "14/3 NMD-90",
	20: "12/3 NMD-90",
	30: "10/3 NMD-90",
	40: "8/3 NMD-90",
	50: "6/3 NMD-90",
	60: "6/3 NMD-90",
}

// PanelSpaces maps panel amperage to the breaker space count of a typical
// load centre at that size.
var PanelSpaces = map[int]int{
	100: 20,
	125: 30,
	200: 40,
	400: 60,
}

// GFCILocations are location keywords that trigger ground-fault protection.
// Matching is lower-cased substring containment, not whole-word.
var GFCILocations = []string{
	"kitchen", "bathroom", "laundry", "garage", "outdoor",
	"basement", "crawl", "utility", "pool", "hot tub",
}

// AFCILocations are location keywords that trigger arc-fault protection.
var AFCILocations = []string{
	"bedroom", "living", "den", "dining", "family", "hallway",
	"closet", "rec room", "sunroom", "foyer", "office", "study",
	"nursery", "guest",
}

// LowVoltagePatterns match device types and descriptions that belong to
// low-voltage systems (data, AV, security, control) and are excluded from
// the panel circuit schedule.
var LowVoltagePatterns = []string{
	"data", "cat5", "cat6", "ethernet", "network", "coax", "tv outlet",
	"phone", "telephone", "speaker", "audio", "intercom", "security",
	"alarm", "camera", "doorbell", "chime", "thermostat", "bell wire",
	"low voltage", "low-voltage",
}

// DeviceAmpPattern pairs a description matcher with the engineering
// attributes of the circuit that load requires. The pattern list is
// ordered and the first match wins.
type DeviceAmpPattern struct {
	Pattern   *regexp.Regexp
	Amps      int
	Poles     int // 1 = 120V, 2 = 240V
	Dedicated bool
	GFCI      bool
	AFCI      bool

	// WireType overrides the table lookup when non-empty.
	WireType string
	Label    string
}

// DeviceAmpPatterns is the ordered dedicated-load pattern list. The range
// hood entry precedes the range/oven entry so "Range Hood" never matches
// the 40A range pattern.
var DeviceAmpPatterns = []DeviceAmpPattern{
	{
		Pattern:   regexp.MustCompile(`(?i)range\s*hood|hood\s*fan|microwave\s*hood|otr\s*microwave`),
		Amps:      20, Poles: 1, Dedicated: true,
		WireType: "12/2 NMD-90",
		Label:    "Range Hood / Microwave",
	},
	{
		Pattern:   regexp.MustCompile(`(?i)range|oven|stove|cooktop`),
		Amps:      40, Poles: 2, Dedicated: true,
		WireType: "6/3 NMD-90",
		Label:    "Range/Oven",
	},
	{
		Pattern:   regexp.MustCompile(`(?i)dryer`),
		Amps:      30, Poles: 2, Dedicated: true,
		WireType: "10/3 NMD-90",
		Label:    "Dryer",
	},
	{
		Pattern:   regexp.MustCompile(`(?i)\ba/c\b|\bair\s*condition|\bheat\s*pump\b|\bcondenser\b`),
		Amps:      30, Poles: 2, Dedicated: true,
		WireType: "10/2 NMD-90",
		Label:    "Central A/C",
	},
	{
		Pattern:   regexp.MustCompile(`(?i)\bev\b|electric\s*vehicle|car\s*charger|evse`),
		Amps:      50, Poles: 2, Dedicated: true,
		WireType: "6/3 NMD-90",
		Label:    "EV Charger",
	},
	{
		Pattern:   regexp.MustCompile(`(?i)hot\s*tub|\bspa\b|jacuzzi`),
		Amps:      50, Poles: 2, Dedicated: true, GFCI: true,
		WireType: "6/3 NMD-90",
		Label:    "Hot Tub",
	},
	{
		Pattern:   regexp.MustCompile(`(?i)pool`),
		Amps:      20, Poles: 2, Dedicated: true, GFCI: true,
		WireType: "12/2 NMD-90",
		Label:    "Pool Pump",
	},
	{
		Pattern:   regexp.MustCompile(`(?i)baseboard|electric\s*heat`),
		Amps:      20, Poles: 2,
		WireType: "12/2 NMD-90",
		Label:    "Baseboard Heat",
	},
	{
		Pattern:   regexp.MustCompile(`(?i)furnace|air\s*handler`),
		Amps:      15, Poles: 1, Dedicated: true,
		Label:    "Furnace / Air Handler",
	},
	{
		Pattern:   regexp.MustCompile(`(?i)fridge|refrigerator|freezer`),
		Amps:      15, Poles: 1, Dedicated: true,
		Label:    "Refrigerator",
	},
	{
		Pattern:   regexp.MustCompile(`(?i)dishwasher`),
		Amps:      15, Poles: 1, Dedicated: true, GFCI: true,
		Label:    "Dishwasher",
	},
	{
		Pattern:   regexp.MustCompile(`(?i)garburator|garbage\s*disposal|disposal`),
		Amps:      15, Poles: 1, Dedicated: true,
		Label:    "Garburator",
	},
	{
		Pattern:   regexp.MustCompile(`(?i)microwave`),
		Amps:      20, Poles: 1, Dedicated: true,
		WireType: "12/2 NMD-90",
		Label:    "Microwave",
	},
	{
		Pattern:   regexp.MustCompile(`(?i)smoke|carbon\s*monoxide|co\s*detector`),
		Amps:      15, Poles: 1, AFCI: true,
		WireType: "14/3 NMD-90",
		Label:    "Smoke/CO Detectors",
	},
}

// DeviceWatts is the standard connected load per device symbol, used for
// demand calculation. Symbols absent from the map carry no load.
var DeviceWatts = map[string]int{
	"duplex_receptacle":            180,
	"gfci_receptacle":              180,
	"weather_resistant_receptacle": 180,
	"outdoor_receptacle":           180,
	"dedicated_receptacle":         1500,
	"dryer_outlet":                 5000,
	"range_outlet":                 8000,
	"ev_charger_outlet":            7200,
	"recessed_light":               75,
	"surface_mount_light":          100,
	"pendant_light":                100,
	"fluorescent_light":            120,
	"ceiling_fan":                  80,
	"exterior_light":               100,
	"track_light":                  200,
	"exhaust_fan":                  100,
	"range_hood_fan":               200,
	"smoke_co_combo":               5,
	"smoke_detector":               5,
	"co_detector":                  5,
	"single_pole_switch":           0,
	"three_way_switch":             0,
	"four_way_switch":              0,
	"dimmer_switch":                0,
	"occupancy_sensor":             2,
	"doorbell":                     15,
	"thermostat":                   5,
	"data_outlet":                  0,
	"tv_outlet":                    0,
	"panel_board":                  0,
}
