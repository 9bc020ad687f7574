package cec

// ReceptacleKind is the catalog's receptacle class for a room category.
type ReceptacleKind string

// ReceptacleKind values.
const (
	ReceptacleDuplex    ReceptacleKind = "duplex"
	ReceptacleGFCI      ReceptacleKind = "gfci"
	ReceptacleSplit20A  ReceptacleKind = "split_20a"
	ReceptacleDedicated ReceptacleKind = "dedicated"
)

// ExtraReceptacle is a fixed additional receptacle a room category always
// carries on top of the area-derived count (fridge, dryer, door opener).
type ExtraReceptacle struct {
	Symbol Symbol `json:"symbol"`
	Count  int    `json:"count"`
	Note   string `json:"note"`
}

// RoomRequirement holds the minimum electrical devices for a room category
// under CEC 2021. The catalog below is a closed, hand-curated constant set
// and is never mutated at runtime.
type RoomRequirement struct {
	RoomType RoomType `json:"room_type"`

	// Receptacles.
	MinReceptacles      int             `json:"min_receptacles"`
	ReceptacleType      ReceptacleKind  `json:"receptacle_type"`
	UsesWallSpacingRule bool            `json:"uses_wall_spacing_rule"`
	WallSpacingM        float64         `json:"wall_spacing_m"`
	AdditionalRecepts   []ExtraReceptacle `json:"additional_receptacles,omitempty"`

	// Lighting and switching.
	MinLightingOutlets int `json:"min_lighting_outlets"`
	MinSwitches        int `json:"min_switches"`

	// Protection and safety flags.
	NeedsGFCI          bool `json:"needs_gfci"`
	NeedsAFCI          bool `json:"needs_afci"`
	NeedsExhaustFan    bool `json:"needs_exhaust_fan"`
	NeedsSmokeDetector bool `json:"needs_smoke_detector"`

	// NeedsCODetector is defined for future rules; no catalog entry
	// currently sets it and the generator does not consult it.
	NeedsCODetector bool `json:"needs_co_detector"`

	DedicatedCircuits []string `json:"dedicated_circuits,omitempty"`
	CECRules          []string `json:"cec_rules,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}

// RoomRequirements is the CEC 2021 minimum requirement catalog, keyed by
// room category. Read-only after package initialisation.
var RoomRequirements = map[RoomType]RoomRequirement{
	RoomTypeKitchen: {
		RoomType:            RoomTypeKitchen,
		MinReceptacles:      2,
		ReceptacleType:      ReceptacleSplit20A,
		UsesWallSpacingRule: true,
		WallSpacingM:        0.9,
		AdditionalRecepts: []ExtraReceptacle{
			{Symbol: SymbolDedicatedReceptacle, Count: 1, Note: "Refrigerator (dedicated circuit)"},
			{Symbol: SymbolDuplexReceptacle, Count: 2, Note: "General wall receptacles (1.8m rule)"},
		},
		MinLightingOutlets: 1,
		MinSwitches:        1,
		NeedsGFCI:          true,
		NeedsAFCI:          false,
		DedicatedCircuits:  []string{"Fridge (26-654 a)", "2x counter circuits (26-656 d)"},
		CECRules:           []string{"26-722 d)", "26-654 a)", "26-656 d)", "26-704 1)"},
		Notes:              "Counter receptacles: no point >900mm from receptacle. Min 2 branch circuits for counter.",
	},
	RoomTypeBathroom: {
		RoomType:           RoomTypeBathroom,
		MinReceptacles:     1,
		ReceptacleType:     ReceptacleGFCI,
		WallSpacingM:       1.0,
		MinLightingOutlets: 1,
		MinSwitches:        1,
		NeedsGFCI:          true,
		NeedsAFCI:          true,
		NeedsExhaustFan:    true,
		CECRules:           []string{"26-720 f)", "26-720 g)", "26-704 1)", "30-320"},
		Notes:              "Receptacle within 1m of basin. Min 500mm from tub/shower. Wall switch for luminaire.",
	},
	RoomTypePowderRoom: {
		RoomType:           RoomTypePowderRoom,
		MinReceptacles:     1,
		ReceptacleType:     ReceptacleGFCI,
		WallSpacingM:       1.0,
		MinLightingOutlets: 1,
		MinSwitches:        1,
		NeedsGFCI:          true,
		NeedsAFCI:          true,
		CECRules:           []string{"26-720 f)", "26-704 1)", "30-320"},
		Notes:              "Receptacle within 1m of wash basin.",
	},
	RoomTypePrimaryBedroom: {
		RoomType:            RoomTypePrimaryBedroom,
		MinReceptacles:      4,
		ReceptacleType:      ReceptacleDuplex,
		UsesWallSpacingRule: true,
		WallSpacingM:        1.8,
		MinLightingOutlets:  1,
		MinSwitches:         1,
		NeedsAFCI:           true,
		NeedsSmokeDetector:  true,
		CECRules:            []string{"26-722 a)", "26-658 1)", "32-200"},
		Notes:               "Smoke alarm required in sleeping rooms. AFCI required.",
	},
	RoomTypeBedroom: {
		RoomType:            RoomTypeBedroom,
		MinReceptacles:      3,
		ReceptacleType:      ReceptacleDuplex,
		UsesWallSpacingRule: true,
		WallSpacingM:        1.8,
		MinLightingOutlets:  1,
		MinSwitches:         1,
		NeedsAFCI:           true,
		NeedsSmokeDetector:  true,
		CECRules:            []string{"26-722 a)", "26-658 1)", "32-200"},
		Notes:               "Smoke alarm required in sleeping rooms. AFCI required.",
	},
	RoomTypeLivingRoom: {
		RoomType:            RoomTypeLivingRoom,
		MinReceptacles:      4,
		ReceptacleType:      ReceptacleDuplex,
		UsesWallSpacingRule: true,
		WallSpacingM:        1.8,
		MinLightingOutlets:  1,
		MinSwitches:         1,
		NeedsAFCI:           true,
		NeedsSmokeDetector:  true,
		CECRules:            []string{"26-722 a)", "26-658 1)", "32-200"},
		Notes:               "1.8m wall spacing rule applies.",
	},
	RoomTypeFamilyRoom: {
		RoomType:            RoomTypeFamilyRoom,
		MinReceptacles:      4,
		ReceptacleType:      ReceptacleDuplex,
		UsesWallSpacingRule: true,
		WallSpacingM:        1.8,
		MinLightingOutlets:  1,
		MinSwitches:         1,
		NeedsAFCI:           true,
		NeedsSmokeDetector:  true,
		CECRules:            []string{"26-722 a)", "26-658 1)"},
		Notes:               "1.8m wall spacing rule applies.",
	},
	RoomTypeDiningRoom: {
		RoomType:            RoomTypeDiningRoom,
		MinReceptacles:      3,
		ReceptacleType:      ReceptacleDuplex,
		UsesWallSpacingRule: true,
		WallSpacingM:        1.8,
		MinLightingOutlets:  1,
		MinSwitches:         1,
		NeedsAFCI:           true,
		CECRules:            []string{"26-722 a)", "26-658 1)"},
		Notes:               "1.8m wall spacing rule. No face-up receptacles in surfaces.",
	},
	RoomTypeHallway: {
		RoomType:            RoomTypeHallway,
		MinReceptacles:      1,
		ReceptacleType:      ReceptacleDuplex,
		UsesWallSpacingRule: true,
		WallSpacingM:        4.5,
		MinLightingOutlets:  1,
		MinSwitches:         2,
		NeedsAFCI:           true,
		CECRules:            []string{"26-722 e)", "26-658 1)"},
		Notes:               "No point >4.5m from receptacle (measured by shortest cord path).",
	},
	RoomTypeGarage: {
		RoomType:       RoomTypeGarage,
		MinReceptacles: 1,
		ReceptacleType: ReceptacleDuplex,
		AdditionalRecepts: []ExtraReceptacle{
			{Symbol: SymbolDuplexReceptacle, Count: 1, Note: "Garage door opener"},
		},
		MinLightingOutlets: 1,
		MinSwitches:        2,
		NeedsGFCI:          true,
		NeedsAFCI:          true,
		DedicatedCircuits:  []string{"Garage receptacles (26-656 h)"},
		CECRules:           []string{"26-724 b)", "26-724 c)", "26-656 h)"},
		Notes:              "3-way from house entry. 1 receptacle per car space. Dedicated circuit.",
	},
	RoomTypeLaundryRoom: {
		RoomType:       RoomTypeLaundryRoom,
		MinReceptacles: 2,
		ReceptacleType: ReceptacleDuplex,
		AdditionalRecepts: []ExtraReceptacle{
			{Symbol: SymbolDryerOutlet, Count: 1, Note: "Dryer (NEMA 14-30, dedicated)"},
		},
		MinLightingOutlets: 1,
		MinSwitches:        1,
		NeedsGFCI:          true,
		NeedsAFCI:          true,
		DedicatedCircuits:  []string{"Washer (26-654 b)", "Dryer (26-744 2)"},
		CECRules:           []string{"26-720 e)", "26-654 b)", "26-744 2)", "26-704 1)"},
		Notes:              "1 receptacle for washer (dedicated), 1 additional. Dryer on dedicated circuit.",
	},
	RoomTypeBasementFinished: {
		RoomType:            RoomTypeBasementFinished,
		MinReceptacles:      3,
		ReceptacleType:      ReceptacleDuplex,
		UsesWallSpacingRule: true,
		WallSpacingM:        1.8,
		MinLightingOutlets:  1,
		MinSwitches:         1,
		NeedsAFCI:           true,
		NeedsSmokeDetector:  true,
		CECRules:            []string{"26-722 a)", "26-658 1)", "32-200"},
		Notes:               "Treated as finished room. 1.8m wall spacing rule.",
	},
	RoomTypeBasementUnfinished: {
		RoomType:           RoomTypeBasementUnfinished,
		MinReceptacles:     1,
		ReceptacleType:     ReceptacleDuplex,
		MinLightingOutlets: 1,
		MinSwitches:        1,
		NeedsAFCI:          true,
		CECRules:           []string{"26-720 e)(iv)", "26-658 1)"},
		Notes:              "At least 1 duplex receptacle. Luminaires <2m must be guarded.",
	},
	RoomTypeClosetWalkIn: {
		RoomType:           RoomTypeClosetWalkIn,
		ReceptacleType:     ReceptacleDuplex,
		MinLightingOutlets: 1,
		MinSwitches:        1,
		NeedsAFCI:          true,
		CECRules:           []string{"30-204"},
		Notes:              "Luminaire on ceiling or above door. No pendant or bare-lamp types.",
	},
	RoomTypeClosetStandard: {
		RoomType:           RoomTypeClosetStandard,
		ReceptacleType:     ReceptacleDuplex,
		MinLightingOutlets: 1,
		MinSwitches:        1,
		NeedsAFCI:          true,
		CECRules:           []string{"30-204"},
		Notes:              "Luminaire on ceiling or above door. No pendant or bare-lamp types.",
	},
	RoomTypeEntryFoyer: {
		RoomType:            RoomTypeEntryFoyer,
		MinReceptacles:      1,
		ReceptacleType:      ReceptacleDuplex,
		UsesWallSpacingRule: true,
		WallSpacingM:        1.8,
		MinLightingOutlets:  1,
		MinSwitches:         2,
		NeedsAFCI:           true,
		CECRules:            []string{"26-722 a)", "26-722 b)", "26-658 1)"},
		Notes:               "3-way switches at entry. 1.8m rule if finished room.",
	},
	RoomTypeUtilityRoom: {
		RoomType:           RoomTypeUtilityRoom,
		MinReceptacles:     1,
		ReceptacleType:     ReceptacleDuplex,
		MinLightingOutlets: 1,
		MinSwitches:        1,
		NeedsGFCI:          true,
		NeedsAFCI:          true,
		CECRules:           []string{"26-720 e)(iii)", "26-704 1)"},
		Notes:              "At least 1 duplex receptacle. GFCI if sink present.",
	},
	RoomTypeOfficeDen: {
		RoomType:            RoomTypeOfficeDen,
		MinReceptacles:      3,
		ReceptacleType:      ReceptacleDuplex,
		UsesWallSpacingRule: true,
		WallSpacingM:        1.8,
		MinLightingOutlets:  1,
		MinSwitches:         1,
		NeedsAFCI:           true,
		CECRules:            []string{"26-722 a)", "26-658 1)"},
		Notes:               "Standard room. 1.8m wall spacing rule.",
	},
	RoomTypeMudroom: {
		RoomType:            RoomTypeMudroom,
		MinReceptacles:      1,
		ReceptacleType:      ReceptacleDuplex,
		UsesWallSpacingRule: true,
		WallSpacingM:        1.8,
		MinLightingOutlets:  1,
		MinSwitches:         1,
		NeedsAFCI:           true,
		CECRules:            []string{"26-722 a)"},
		Notes:               "Treated as entry/finished room.",
	},
	RoomTypePantry: {
		RoomType:           RoomTypePantry,
		ReceptacleType:     ReceptacleDuplex,
		MinLightingOutlets: 1,
		MinSwitches:        1,
		NeedsAFCI:          true,
		CECRules:           []string{"30-204"},
		Notes:              "Treated like a closet. Luminaire on ceiling or above door.",
	},
	RoomTypeStairway: {
		RoomType:           RoomTypeStairway,
		ReceptacleType:     ReceptacleDuplex,
		MinLightingOutlets: 1,
		MinSwitches:        2,
		NeedsAFCI:          true,
		CECRules:           []string{"30-200"},
		Notes:              "3-way switches at top and bottom of stairs.",
	},
}

// RequirementFor returns the catalog entry for a room type.
// The second return value is false for unknown categories; callers fall
// back to DefaultDevices.
func RequirementFor(rt RoomType) (RoomRequirement, bool) {
	req, ok := RoomRequirements[rt]
	return req, ok
}

// DefaultDevices is the minimal device set applied when a room category has
// no catalog entry: one general receptacle, one ceiling light, one switch.
func DefaultDevices() DeviceCount {
	return DeviceCount{
		SymbolDuplexReceptacle:  1,
		SymbolSurfaceMountLight: 1,
		SymbolSinglePoleSwitch:  1,
	}
}
