package estimate

import "github.com/sparkestimate/spark-core/internal/cec"

// Assembly is the full installation package for one device type: the
// device itself, its box and plate, sundries, a default wire allowance,
// and a labour unit in decimal hours. Contractors tune the defaults to
// their own install times.
type Assembly struct {
	SymbolType        cec.Symbol `json:"symbol_type"`
	DisplayName       string     `json:"display_name"`
	DeviceDescription string     `json:"device_description"`
	BoxType           string     `json:"box_type"`
	CoverPlate        string     `json:"cover_plate"`
	MiscParts         []string   `json:"misc_parts,omitempty"`
	WireType          string     `json:"wire_type"`
	WireAllowanceFt   float64    `json:"wire_allowance_ft"`
	LabourHours       float64    `json:"labour_hours"`
}

// DefaultAssemblies is the stock assembly catalog for Canadian
// residential work. Read-only after package initialisation; callers that
// need custom allowances pass overrides to the takeoff instead of
// mutating this map.
var DefaultAssemblies = map[cec.Symbol]Assembly{
	cec.SymbolDuplexReceptacle: {
		SymbolType:        cec.SymbolDuplexReceptacle,
		DisplayName:       "Duplex Receptacle (15A)",
		DeviceDescription: "15A duplex receptacle, TR",
		BoxType:           "Single-gang device box, NM",
		CoverPlate:        "Single-gang duplex cover plate",
		MiscParts:         []string{"Wire nuts (2)", "Ground pigtail", "Box connector NM"},
		WireType:          "14/2 NMD-90",
		WireAllowanceFt:   15.0,
		LabourHours:       0.18,
	},
	cec.SymbolGFCIReceptacle: {
		SymbolType:        cec.SymbolGFCIReceptacle,
		DisplayName:       "GFCI Receptacle (20A)",
		DeviceDescription: "20A GFCI receptacle, TR, WR",
		BoxType:           "Single-gang device box, NM",
		CoverPlate:        "Single-gang GFCI cover plate",
		MiscParts:         []string{"Wire nuts (2)", "Ground pigtail", "Box connector NM"},
		WireType:          "12/2 NMD-90",
		WireAllowanceFt:   25.0,
		LabourHours:       0.25,
	},
	cec.SymbolDedicatedReceptacle: {
		SymbolType:        cec.SymbolDedicatedReceptacle,
		DisplayName:       "Dedicated Receptacle",
		DeviceDescription: "20A dedicated receptacle",
		BoxType:           "Single-gang device box, NM",
		CoverPlate:        "Single-gang duplex cover plate",
		MiscParts:         []string{"Wire nuts (2)", "Ground pigtail", "Box connector NM"},
		WireType:          "12/2 NMD-90",
		WireAllowanceFt:   35.0,
		LabourHours:       0.25,
	},
	cec.SymbolOutdoorReceptacle: {
		SymbolType:        cec.SymbolOutdoorReceptacle,
		DisplayName:       "Outdoor Receptacle (GFCI)",
		DeviceDescription: "20A GFCI receptacle, WR",
		BoxType:           "Weatherproof box",
		CoverPlate:        "In-use weatherproof cover",
		MiscParts:         []string{"Wire nuts (2)", "Ground pigtail", "Box connector NM"},
		WireType:          "12/2 NMD-90",
		WireAllowanceFt:   35.0,
		LabourHours:       0.35,
	},
	cec.SymbolDryerOutlet: {
		SymbolType:        cec.SymbolDryerOutlet,
		DisplayName:       "Dryer Outlet (30A)",
		DeviceDescription: "30A 240V dryer receptacle (NEMA 14-30)",
		BoxType:           "Surface mount box",
		CoverPlate:        "NEMA 14-30 cover",
		MiscParts:         []string{"Wire nuts", "Box connector NM"},
		WireType:          "10/3 NMD-90",
		WireAllowanceFt:   40.0,
		LabourHours:       0.50,
	},
	cec.SymbolRangeOutlet: {
		SymbolType:        cec.SymbolRangeOutlet,
		DisplayName:       "Range Outlet (50A)",
		DeviceDescription: "50A 240V range receptacle (NEMA 14-50)",
		BoxType:           "Surface mount box",
		CoverPlate:        "NEMA 14-50 cover",
		MiscParts:         []string{"Wire nuts", "Box connector NM"},
		WireType:          "6/3 NMD-90",
		WireAllowanceFt:   40.0,
		LabourHours:       0.50,
	},
	cec.SymbolEVChargerOutlet: {
		SymbolType:        cec.SymbolEVChargerOutlet,
		DisplayName:       "EV Charger Outlet (50A)",
		DeviceDescription: "50A 240V receptacle (NEMA 14-50)",
		BoxType:           "Surface mount box",
		CoverPlate:        "NEMA 14-50 cover",
		MiscParts:         []string{"Wire nuts", "Box connector NM"},
		WireType:          "6/3 NMD-90",
		WireAllowanceFt:   50.0,
		LabourHours:       1.00,
	},
	cec.SymbolSinglePoleSwitch: {
		SymbolType:        cec.SymbolSinglePoleSwitch,
		DisplayName:       "Single-Pole Switch",
		DeviceDescription: "15A single-pole switch",
		BoxType:           "Single-gang device box, NM",
		CoverPlate:        "Single-gang toggle cover plate",
		MiscParts:         []string{"Wire nuts (2)", "Ground pigtail", "Box connector NM"},
		WireType:          "14/2 NMD-90",
		WireAllowanceFt:   15.0,
		LabourHours:       0.15,
	},
	cec.SymbolThreeWaySwitch: {
		SymbolType:        cec.SymbolThreeWaySwitch,
		DisplayName:       "3-Way Switch",
		DeviceDescription: "15A 3-way switch",
		BoxType:           "Single-gang device box, NM",
		CoverPlate:        "Single-gang toggle cover plate",
		MiscParts:         []string{"Wire nuts (3)", "Ground pigtail", "Box connector NM"},
		WireType:          "14/3 NMD-90",
		WireAllowanceFt:   30.0,
		LabourHours:       0.20,
	},
	cec.SymbolFourWaySwitch: {
		SymbolType:        cec.SymbolFourWaySwitch,
		DisplayName:       "4-Way Switch",
		DeviceDescription: "15A 4-way switch",
		BoxType:           "Single-gang device box, NM",
		CoverPlate:        "Single-gang toggle cover plate",
		MiscParts:         []string{"Wire nuts (4)", "Ground pigtail", "Box connector NM"},
		WireType:          "14/3 NMD-90",
		WireAllowanceFt:   30.0,
		LabourHours:       0.25,
	},
	cec.SymbolDimmerSwitch: {
		SymbolType:        cec.SymbolDimmerSwitch,
		DisplayName:       "Dimmer Switch",
		DeviceDescription: "600W dimmer switch",
		BoxType:           "Single-gang device box, NM",
		CoverPlate:        "Dimmer cover plate",
		MiscParts:         []string{"Wire nuts (2)", "Ground pigtail", "Box connector NM"},
		WireType:          "14/2 NMD-90",
		WireAllowanceFt:   15.0,
		LabourHours:       0.20,
	},
	cec.SymbolRecessedLight: {
		SymbolType:        cec.SymbolRecessedLight,
		DisplayName:       "Recessed Light (Pot Light)",
		DeviceDescription: `4" or 6" IC-rated recessed housing + LED trim`,
		BoxType:           "Integral junction box",
		CoverPlate:        "N/A",
		MiscParts:         []string{"Wire nuts (2)", "NM connector"},
		WireType:          "14/2 NMD-90",
		WireAllowanceFt:   8.0, // short daisy-chained runs between lights
		LabourHours:       0.30,
	},
	cec.SymbolSurfaceMountLight: {
		SymbolType:        cec.SymbolSurfaceMountLight,
		DisplayName:       "Surface Mount Light",
		DeviceDescription: "Surface mount fixture",
		BoxType:           "Octagon box, NM",
		CoverPlate:        "N/A",
		MiscParts:         []string{"Wire nuts (2)", "Fixture strap", "Box connector NM"},
		WireType:          "14/2 NMD-90",
		WireAllowanceFt:   10.0,
		LabourHours:       0.40,
	},
	cec.SymbolPendantLight: {
		SymbolType:        cec.SymbolPendantLight,
		DisplayName:       "Pendant Light",
		DeviceDescription: "Pendant fixture",
		BoxType:           "Octagon box, NM",
		CoverPlate:        "N/A",
		MiscParts:         []string{"Wire nuts (2)", "Fixture strap", "Box connector NM", "Pendant kit"},
		WireType:          "14/2 NMD-90",
		WireAllowanceFt:   15.0,
		LabourHours:       0.50,
	},
	cec.SymbolExteriorLight: {
		SymbolType:        cec.SymbolExteriorLight,
		DisplayName:       "Exterior Light",
		DeviceDescription: "Exterior wall pack or fixture",
		BoxType:           "Weatherproof box",
		CoverPlate:        "N/A",
		MiscParts:         []string{"Wire nuts (2)", "NM connector", "Weatherproof gasket"},
		WireType:          "14/2 NMD-90",
		WireAllowanceFt:   25.0,
		LabourHours:       0.50,
	},
	cec.SymbolTrackLight: {
		SymbolType:        cec.SymbolTrackLight,
		DisplayName:       "Track Light",
		DeviceDescription: "Track lighting system",
		BoxType:           "Octagon box, NM",
		CoverPlate:        "N/A",
		MiscParts:         []string{"Wire nuts (2)", "Track connector", "Box connector NM"},
		WireType:          "14/2 NMD-90",
		WireAllowanceFt:   15.0,
		LabourHours:       0.60,
	},
	cec.SymbolFluorescentLight: {
		SymbolType:        cec.SymbolFluorescentLight,
		DisplayName:       "Fluorescent / LED Batten",
		DeviceDescription: "4ft LED batten fixture",
		BoxType:           "Integral junction box",
		CoverPlate:        "N/A",
		MiscParts:         []string{"Wire nuts (2)", "NM connector", "Mounting clips"},
		WireType:          "14/2 NMD-90",
		WireAllowanceFt:   10.0,
		LabourHours:       0.45,
	},
	cec.SymbolCeilingFan: {
		SymbolType:        cec.SymbolCeilingFan,
		DisplayName:       "Ceiling Fan Outlet",
		DeviceDescription: "Ceiling fan rated box + wiring",
		BoxType:           "Fan-rated octagon box, NM",
		CoverPlate:        "N/A",
		MiscParts:         []string{"Wire nuts (3)", "Fan brace bar", "Box connector NM"},
		WireType:          "14/3 NMD-90",
		WireAllowanceFt:   20.0,
		LabourHours:       0.50,
	},
	cec.SymbolExhaustFan: {
		SymbolType:        cec.SymbolExhaustFan,
		DisplayName:       "Exhaust Fan (Bathroom)",
		DeviceDescription: "Bathroom exhaust fan",
		BoxType:           "Integral junction box",
		CoverPlate:        "N/A",
		MiscParts:         []string{"Wire nuts (2)", "NM connector", "Duct connector"},
		WireType:          "14/2 NMD-90",
		WireAllowanceFt:   20.0,
		LabourHours:       0.50,
	},
	cec.SymbolRangeHoodFan: {
		SymbolType:        cec.SymbolRangeHoodFan,
		DisplayName:       "Range Hood Fan",
		DeviceDescription: "Range hood connection",
		BoxType:           "Junction box",
		CoverPlate:        "N/A",
		MiscParts:         []string{"Wire nuts (2)", "NM connector"},
		WireType:          "14/2 NMD-90",
		WireAllowanceFt:   20.0,
		LabourHours:       0.40,
	},
	cec.SymbolSmokeCOCombo: {
		SymbolType:        cec.SymbolSmokeCOCombo,
		DisplayName:       "Smoke/CO Combo Detector",
		DeviceDescription: "Hardwired smoke/CO combo with battery backup",
		BoxType:           "Octagon box, NM",
		CoverPlate:        "N/A",
		MiscParts:         []string{"Wire nuts (2)", "Mounting plate", "Box connector NM"},
		WireType:          "14/3 NMD-90",
		WireAllowanceFt:   18.0,
		LabourHours:       0.25,
	},
	cec.SymbolSmokeDetector: {
		SymbolType:        cec.SymbolSmokeDetector,
		DisplayName:       "Smoke Detector (Hardwired)",
		DeviceDescription: "Hardwired smoke detector with battery backup",
		BoxType:           "Octagon box, NM",
		CoverPlate:        "N/A",
		MiscParts:         []string{"Wire nuts (2)", "Mounting plate", "Box connector NM"},
		WireType:          "14/3 NMD-90",
		WireAllowanceFt:   18.0,
		LabourHours:       0.25,
	},
	cec.SymbolCODetector: {
		SymbolType:        cec.SymbolCODetector,
		DisplayName:       "CO Detector (Hardwired)",
		DeviceDescription: "Hardwired CO detector with battery backup",
		BoxType:           "Octagon box, NM",
		CoverPlate:        "N/A",
		MiscParts:         []string{"Wire nuts (2)", "Mounting plate", "Box connector NM"},
		WireType:          "14/3 NMD-90",
		WireAllowanceFt:   18.0,
		LabourHours:       0.25,
	},
	cec.SymbolDataOutlet: {
		SymbolType:        cec.SymbolDataOutlet,
		DisplayName:       "Data Outlet (Cat6)",
		DeviceDescription: "Cat6 keystone jack + wall plate",
		BoxType:           "Low-voltage bracket",
		CoverPlate:        "Single-gang data plate",
		MiscParts:         []string{"Cat6 cable"},
		WireType:          "Cat6",
		WireAllowanceFt:   50.0,
		LabourHours:       0.30,
	},
	cec.SymbolTVOutlet: {
		SymbolType:        cec.SymbolTVOutlet,
		DisplayName:       "TV / Coax Outlet",
		DeviceDescription: "F-connector coax jack + wall plate",
		BoxType:           "Low-voltage bracket",
		CoverPlate:        "Single-gang coax plate",
		MiscParts:         []string{"RG6 coax cable"},
		WireType:          "RG6 Coax",
		WireAllowanceFt:   50.0,
		LabourHours:       0.25,
	},
	cec.SymbolDoorbell: {
		SymbolType:        cec.SymbolDoorbell,
		DisplayName:       "Doorbell",
		DeviceDescription: "Doorbell chime + button + transformer",
		BoxType:           "Junction box",
		CoverPlate:        "N/A",
		MiscParts:         []string{"18/2 thermostat wire", "Doorbell transformer"},
		WireType:          "18/2 Bell Wire",
		WireAllowanceFt:   40.0,
		LabourHours:       0.50,
	},
	cec.SymbolThermostat: {
		SymbolType:        cec.SymbolThermostat,
		DisplayName:       "Thermostat",
		DeviceDescription: "Thermostat wire connection",
		BoxType:           "N/A",
		CoverPlate:        "N/A",
		MiscParts:         []string{"18/5 thermostat wire"},
		WireType:          "18/5 Thermostat Wire",
		WireAllowanceFt:   40.0,
		LabourHours:       0.30,
	},
	cec.SymbolPanelBoard: {
		SymbolType:        cec.SymbolPanelBoard,
		DisplayName:       "Panel Board / Load Center (200A)",
		DeviceDescription: "200A main breaker load center, 40-circuit",
		BoxType:           "N/A",
		CoverPlate:        "Panel cover",
		MiscParts:         []string{"Ground bar", "Neutral bar", "Panel screws", "Grounding electrode conductor"},
		WireType:          "3/0 AL SER Cable",
		WireAllowanceFt:   25.0,
		LabourHours:       6.00,
	},
}

// HomeRunAssembly is the per-circuit allowance for the run back to the
// panel: breaker, staples, labels, and wire.
var HomeRunAssembly = Assembly{
	SymbolType:        "home_run",
	DisplayName:       "Home Run (per circuit)",
	DeviceDescription: "Circuit breaker (15A or 20A)",
	BoxType:           "N/A",
	CoverPlate:        "N/A",
	MiscParts:         []string{"Staples", "Labels"},
	WireType:          "14/2 NMD-90",
	WireAllowanceFt:   30.0,
	LabourHours:       0.50,
}

// AssemblyFor returns the catalog assembly for a symbol, or a generic
// placeholder so unrecognised symbols still appear on the takeoff.
func AssemblyFor(sym cec.Symbol) Assembly {
	if a, ok := DefaultAssemblies[sym]; ok {
		return a
	}
	return Assembly{
		SymbolType:        sym,
		DisplayName:       string(sym),
		DeviceDescription: "Unlisted device",
		BoxType:           "Single-gang device box, NM",
		CoverPlate:        "Blank cover plate",
		WireType:          "14/2 NMD-90",
		WireAllowanceFt:   20.0,
		LabourHours:       0.25,
	}
}
