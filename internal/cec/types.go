package cec

// RoomType is the standardised room category assigned by the floor-plan
// detector. The catalog in catalog.go is keyed by this type; any value
// outside the closed set below falls back to minimal defaults.
type RoomType string

// RoomType constants.
const (
	RoomTypeKitchen            RoomType = "kitchen"
	RoomTypeBathroom           RoomType = "bathroom"
	RoomTypePowderRoom         RoomType = "powder_room"
	RoomTypePrimaryBedroom     RoomType = "primary_bedroom"
	RoomTypeBedroom            RoomType = "bedroom"
	RoomTypeLivingRoom         RoomType = "living_room"
	RoomTypeFamilyRoom         RoomType = "family_room"
	RoomTypeDiningRoom         RoomType = "dining_room"
	RoomTypeHallway            RoomType = "hallway"
	RoomTypeGarage             RoomType = "garage"
	RoomTypeLaundryRoom        RoomType = "laundry_room"
	RoomTypeBasementFinished   RoomType = "basement_finished"
	RoomTypeBasementUnfinished RoomType = "basement_unfinished"
	RoomTypeClosetWalkIn       RoomType = "closet_walkin"
	RoomTypeClosetStandard     RoomType = "closet_standard"
	RoomTypeEntryFoyer         RoomType = "entry_foyer"
	RoomTypeUtilityRoom        RoomType = "utility_room"
	RoomTypeOfficeDen          RoomType = "office_den"
	RoomTypeMudroom            RoomType = "mudroom"
	RoomTypePantry             RoomType = "pantry"
	RoomTypeStairway           RoomType = "stairway"
)

// AllRoomTypes returns all valid room type values.
func AllRoomTypes() []RoomType {
	return []RoomType{
		RoomTypeKitchen, RoomTypeBathroom, RoomTypePowderRoom,
		RoomTypePrimaryBedroom, RoomTypeBedroom, RoomTypeLivingRoom,
		RoomTypeFamilyRoom, RoomTypeDiningRoom, RoomTypeHallway,
		RoomTypeGarage, RoomTypeLaundryRoom, RoomTypeBasementFinished,
		RoomTypeBasementUnfinished, RoomTypeClosetWalkIn, RoomTypeClosetStandard,
		RoomTypeEntryFoyer, RoomTypeUtilityRoom, RoomTypeOfficeDen,
		RoomTypeMudroom, RoomTypePantry, RoomTypeStairway,
	}
}

// Symbol is the internal string identifier for a class of electrical device
// ("duplex_receptacle", "smoke_co_combo", ...). It is the key of every
// device-quantity map produced by the generator and consumed by the
// estimator and panel schedule builder.
type Symbol string

// Receptacle symbols.
const (
	SymbolDuplexReceptacle    Symbol = "duplex_receptacle"
	SymbolGFCIReceptacle      Symbol = "gfci_receptacle"
	SymbolDedicatedReceptacle Symbol = "dedicated_receptacle"
	SymbolOutdoorReceptacle   Symbol = "outdoor_receptacle"
	SymbolDryerOutlet         Symbol = "dryer_outlet"
	SymbolRangeOutlet         Symbol = "range_outlet"
	SymbolEVChargerOutlet     Symbol = "ev_charger_outlet"
)

// Lighting symbols.
const (
	SymbolRecessedLight     Symbol = "recessed_light"
	SymbolSurfaceMountLight Symbol = "surface_mount_light"
	SymbolPendantLight      Symbol = "pendant_light"
	SymbolFluorescentLight  Symbol = "fluorescent_light"
	SymbolExteriorLight     Symbol = "exterior_light"
	SymbolTrackLight        Symbol = "track_light"
)

// Switch symbols.
const (
	SymbolSinglePoleSwitch Symbol = "single_pole_switch"
	SymbolThreeWaySwitch   Symbol = "three_way_switch"
	SymbolFourWaySwitch    Symbol = "four_way_switch"
	SymbolDimmerSwitch     Symbol = "dimmer_switch"
)

// Fan, safety, and whole-house symbols.
const (
	SymbolExhaustFan    Symbol = "exhaust_fan"
	SymbolRangeHoodFan  Symbol = "range_hood_fan"
	SymbolCeilingFan    Symbol = "ceiling_fan"
	SymbolSmokeCOCombo  Symbol = "smoke_co_combo"
	SymbolSmokeDetector Symbol = "smoke_detector"
	SymbolCODetector    Symbol = "co_detector"
	SymbolDoorbell      Symbol = "doorbell"
	SymbolThermostat    Symbol = "thermostat"
	SymbolPanelBoard    Symbol = "panel_board"
	SymbolDataOutlet    Symbol = "data_outlet"
	SymbolTVOutlet      Symbol = "tv_outlet"
)

// DetectedRoom is a room identified on an architectural floor plan.
// It is produced by an external detection step and consumed read-only here.
type DetectedRoom struct {
	RoomType RoomType `json:"room_type"`

	// RoomName is the label from the drawing (e.g. "Primary Bedroom").
	RoomName string `json:"room_name"`

	// FloorLevel is "main", "upper", "basement", etc.
	FloorLevel string `json:"floor_level"`

	ApproxAreaSqFt   float64 `json:"approx_area_sqft"`
	HasSink          bool    `json:"has_sink"`
	HasBathtubShower bool    `json:"has_bathtub_shower"`

	// WallCount is the number of usable walls for receptacle spacing.
	WallCount int `json:"wall_count"`

	// Confidence is the detector's 0.0-1.0 score for this room.
	Confidence float64 `json:"confidence"`

	// Location is the approximate [x%, y%] centre on the drawing,
	// used by the wire distance planner. May be empty.
	Location []float64 `json:"location,omitempty"`
}

// DeviceCount maps a device symbol to a non-negative quantity.
type DeviceCount map[Symbol]int

// Add increments the count for a symbol. Negative deltas are allowed but
// the count never drops below zero.
func (dc DeviceCount) Add(sym Symbol, n int) {
	v := dc[sym] + n
	if v < 0 {
		v = 0
	}
	if v == 0 {
		delete(dc, sym)
		return
	}
	dc[sym] = v
}

// Merge adds every count from other into dc. Key-wise integer addition;
// no key is ever lost.
func (dc DeviceCount) Merge(other DeviceCount) {
	for sym, n := range other {
		dc.Add(sym, n)
	}
}

// Total returns the sum of all counts.
func (dc DeviceCount) Total() int {
	total := 0
	for _, n := range dc {
		total += n
	}
	return total
}

// Clone returns an independent copy of the map.
func (dc DeviceCount) Clone() DeviceCount {
	cpy := make(DeviceCount, len(dc))
	for sym, n := range dc {
		cpy[sym] = n
	}
	return cpy
}
