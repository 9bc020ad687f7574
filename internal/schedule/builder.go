package schedule

import (
	"fmt"

	"github.com/sparkestimate/spark-core/internal/cec"
	"github.com/sparkestimate/spark-core/internal/circuit"
)

// builder assigns breakers in dedicated-circuit-first order and tracks
// which devices remain in the general pool.
type builder struct {
	circuits  []Breaker
	nextNum   int
	remaining cec.DeviceCount
}

func (b *builder) add(br Breaker) {
	br.Number = b.nextNum
	b.circuits = append(b.circuits, br)
	b.nextNum += br.Poles
}

// consume removes up to n devices of a symbol from the general pool and
// returns how many were actually taken. A negative n drains the symbol.
func (b *builder) consume(sym cec.Symbol, n int) int {
	have := b.remaining[sym]
	if n < 0 || n > have {
		n = have
	}
	b.remaining.Add(sym, -n)
	return n
}

// Build lays out a CEC-compliant panel schedule from aggregated device
// counts and the detected room list. Dedicated circuits are assigned
// first (kitchen, bathroom, laundry, large appliances), then general
// lighting and receptacle circuits are chunked at the code's
// outlets-per-circuit limit, and finally load and panel size are
// calculated from the assigned breakers.
func Build(in Input) Schedule {
	b := &builder{nextNum: 1, remaining: in.Devices.Clone()}

	roomTypes := map[cec.RoomType]int{}
	for _, r := range in.Rooms {
		roomTypes[r.RoomType]++
	}

	// Kitchen dedicated circuits (CEC 26-724).
	kitchenGFCI := in.Devices[cec.SymbolGFCIReceptacle]
	hasKitchen := roomTypes[cec.RoomTypeKitchen] > 0 || kitchenGFCI > 0
	if hasKitchen {
		// Counter split circuits: minimum 2, up to 3 GFCI outlets each.
		counterGFCI := kitchenGFCI
		if counterGFCI > 6 {
			counterGFCI = 6
		}
		splitCount := (counterGFCI + 2) / 3
		if splitCount < 2 {
			splitCount = 2
		}
		for i := 0; i < splitCount; i++ {
			devs := counterGFCI - i*3
			if devs > 3 {
				devs = 3
			}
			if devs < 0 {
				devs = 0
			}
			n := b.consume(cec.SymbolGFCIReceptacle, devs)
			b.add(Breaker{
				Amps: 20, Poles: 1, GFCI: true,
				Description: fmt.Sprintf("Kitchen Counter Split #%d (CEC 26-724)", i+1),
				WireType:    circuit.WireTypeForAmps(20, false),
				DeviceCount: n, LoadWatts: n * 180, Room: "Kitchen",
			})
		}

		b.consume(cec.SymbolDedicatedReceptacle, 1)
		b.add(Breaker{
			Amps: 15, Poles: 1,
			Description: "Refrigerator Dedicated",
			WireType:    circuit.WireTypeForAmps(15, false),
			DeviceCount: 1, LoadWatts: 1500, Room: "Kitchen",
		})

		b.add(Breaker{
			Amps: 15, Poles: 1, GFCI: true,
			Description: "Dishwasher Dedicated",
			WireType:    circuit.WireTypeForAmps(15, false),
			DeviceCount: 1, LoadWatts: 1200, Room: "Kitchen",
		})

		if b.consume(cec.SymbolRangeHoodFan, 1) > 0 {
			b.add(Breaker{
				Amps: 20, Poles: 1,
				Description: "Range Hood / Microwave",
				WireType:    circuit.WireTypeForAmps(20, false),
				DeviceCount: 1, LoadWatts: 1500, Room: "Kitchen",
			})
		}
	}

	// Shared bathroom circuit (CEC 26-720 f).
	bathrooms := roomTypes[cec.RoomTypeBathroom] + roomTypes[cec.RoomTypePowderRoom]
	if bathrooms > 0 || in.Devices[cec.SymbolExhaustFan] > 0 {
		bathGFCI := b.consume(cec.SymbolGFCIReceptacle, -1)
		bathExhaust := b.consume(cec.SymbolExhaustFan, bathrooms)
		label := bathrooms
		if label == 0 {
			label = 1
		}
		b.add(Breaker{
			Amps: 20, Poles: 1, GFCI: true,
			Description: fmt.Sprintf("Bathroom(s) GFCI - %d bathroom(s)", label),
			WireType:    circuit.WireTypeForAmps(20, false),
			DeviceCount: bathGFCI + bathExhaust,
			LoadWatts:   bathGFCI*180 + bathExhaust*100,
			Room:        "Bathrooms",
		})
	}

	// Laundry (CEC 26-724) and dryer (CEC 26-744).
	if roomTypes[cec.RoomTypeLaundryRoom] > 0 || in.Devices[cec.SymbolDryerOutlet] > 0 {
		b.consume(cec.SymbolDuplexReceptacle, 2)
		b.add(Breaker{
			Amps: 20, Poles: 1,
			Description: "Laundry Receptacle (dedicated)",
			WireType:    circuit.WireTypeForAmps(20, false),
			DeviceCount: 2, LoadWatts: 1500, Room: "Laundry",
		})

		if b.consume(cec.SymbolDryerOutlet, -1) > 0 {
			b.add(Breaker{
				Amps: 30, Poles: 2,
				Description: "Dryer 240V (CEC 26-744)",
				WireType:    circuit.WireTypeForAmps(30, true),
				DeviceCount: 1, LoadWatts: 5000, Room: "Laundry",
			})
		}
	}

	// Range, A/C, electric heat, EV charger.
	if in.HasElectricRange && hasKitchen {
		b.add(Breaker{
			Amps: 40, Poles: 2,
			Description: "Range/Oven 240V (CEC 26-744)",
			WireType:    "6/3 NMD-90",
			DeviceCount: 1, LoadWatts: 8000, Room: "Kitchen",
		})
	}
	if in.HasAC {
		b.add(Breaker{
			Amps: 30, Poles: 2,
			Description: "Central A/C 240V",
			WireType:    circuit.WireTypeForAmps(30, false),
			DeviceCount: 1, LoadWatts: 3600, Room: "Exterior",
		})
	}
	if in.HasElectricHeat {
		heatWatts := in.TotalSqFt * 10 // ~10W per sqft
		if heatWatts < 5000 {
			heatWatts = 5000
		}
		heatCircuits := int(heatWatts/3600 + 0.5)
		if heatCircuits < 1 {
			heatCircuits = 1
		}
		for i := 0; i < heatCircuits; i++ {
			b.add(Breaker{
				Amps: 20, Poles: 2,
				Description: fmt.Sprintf("Baseboard Heat #%d", i+1),
				WireType:    circuit.WireTypeForAmps(20, false),
				DeviceCount: 1, LoadWatts: 3600, Room: "Various",
			})
		}
	}
	if b.consume(cec.SymbolEVChargerOutlet, -1) > 0 {
		b.add(Breaker{
			Amps: 50, Poles: 2,
			Description: "EV Charger 240V (dedicated)",
			WireType:    circuit.WireTypeForAmps(50, true),
			DeviceCount: 1, LoadWatts: 7200, Room: "Garage",
		})
	}

	// Garage GFCI dedicated (CEC 26-656 h).
	if garages := roomTypes[cec.RoomTypeGarage]; garages > 0 {
		n := b.consume(cec.SymbolDuplexReceptacle, garages*3)
		b.add(Breaker{
			Amps: 20, Poles: 1, GFCI: true,
			Description: "Garage GFCI (dedicated)",
			WireType:    circuit.WireTypeForAmps(20, false),
			DeviceCount: n, LoadWatts: n * 180, Room: "Garage",
		})
	}

	// Outdoor / exterior GFCI (CEC 26-724).
	outdoor := b.consume(cec.SymbolOutdoorReceptacle, -1)
	extLights := b.consume(cec.SymbolExteriorLight, -1)
	if outdoor > 0 || extLights > 0 {
		b.add(Breaker{
			Amps: 20, Poles: 1, GFCI: true,
			Description: "Outdoor / Exterior GFCI",
			WireType:    circuit.WireTypeForAmps(20, false),
			DeviceCount: outdoor + extLights,
			LoadWatts:   outdoor*180 + extLights*100,
			Room:        "Exterior",
		})
	}

	// Interconnected smoke/CO detectors on one 15A circuit.
	smoke := b.consume(cec.SymbolSmokeCOCombo, -1) +
		b.consume(cec.SymbolSmokeDetector, -1) +
		b.consume(cec.SymbolCODetector, -1)
	if smoke > 0 {
		b.add(Breaker{
			Amps: 15, Poles: 1,
			Description: "Smoke/CO Detectors (interconnected)",
			WireType:    circuit.WireTypeForAmps(15, true),
			DeviceCount: smoke, LoadWatts: smoke * 5, Room: "Whole House",
		})
	}

	// Furnace always gets a dedicated circuit.
	b.add(Breaker{
		Amps: 15, Poles: 1,
		Description: "Furnace / Air Handler (dedicated)",
		WireType:    circuit.WireTypeForAmps(15, false),
		DeviceCount: 1, LoadWatts: 600, Room: "Mechanical",
	})

	// Low-voltage devices carry no breaker position.
	for _, sym := range []cec.Symbol{
		cec.SymbolDoorbell, cec.SymbolThermostat,
		cec.SymbolDataOutlet, cec.SymbolTVOutlet,
	} {
		b.consume(sym, -1)
	}

	b.addLightingCircuits()
	b.addReceptacleCircuits(in.Rooms)

	// Spares are standard practice on a new panel.
	b.add(Breaker{Amps: 15, Poles: 1, Description: "Spare #1", WireType: "-"})
	b.add(Breaker{Amps: 15, Poles: 1, Description: "Spare #2", WireType: "-"})

	return b.finish(in)
}

// addLightingCircuits groups all remaining luminaires onto 15A AFCI
// circuits at the outlets-per-circuit limit. Switches share the lighting
// circuits and take no breaker of their own.
func (b *builder) addLightingCircuits() {
	lightTypes := []cec.Symbol{
		cec.SymbolRecessedLight, cec.SymbolSurfaceMountLight,
		cec.SymbolPendantLight, cec.SymbolCeilingFan,
		cec.SymbolTrackLight, cec.SymbolFluorescentLight,
	}
	totalLights := 0
	for _, lt := range lightTypes {
		totalLights += b.consume(lt, -1)
	}
	for _, sw := range []cec.Symbol{
		cec.SymbolSinglePoleSwitch, cec.SymbolThreeWaySwitch,
		cec.SymbolFourWaySwitch, cec.SymbolDimmerSwitch,
	} {
		b.consume(sw, -1)
	}

	if totalLights == 0 {
		return
	}
	chunks := circuit.SplitIntoCircuits(make([]struct{}, totalLights), circuit.MaxOutletsPerCircuit)
	for i, chunk := range chunks {
		n := len(chunk)
		b.add(Breaker{
			Amps: 15, Poles: 1, AFCI: true,
			Description: fmt.Sprintf("General Lighting #%d (AFCI)", i+1),
			WireType:    circuit.WireTypeForAmps(15, false),
			DeviceCount: n, LoadWatts: n * 85, Room: "Various",
		})
	}
}

// addReceptacleCircuits assigns the remaining receptacle pool. Bedroom
// receptacles are separated onto their own AFCI circuits when the pool is
// large enough to justify it.
func (b *builder) addReceptacleCircuits(rooms []cec.DetectedRoom) {
	genRecepts := b.consume(cec.SymbolDuplexReceptacle, -1) +
		b.consume(cec.SymbolGFCIReceptacle, -1) +
		b.consume(cec.SymbolDedicatedReceptacle, -1)
	if genRecepts == 0 {
		return
	}

	bedrooms := 0
	for _, r := range rooms {
		if r.RoomType == cec.RoomTypeBedroom || r.RoomType == cec.RoomTypePrimaryBedroom {
			bedrooms++
		}
	}

	if bedrooms > 0 && genRecepts > 6 {
		bedCount := genRecepts / 2
		if limit := bedrooms * 4; bedCount > limit {
			bedCount = limit
		}
		genRecepts -= bedCount
		chunks := circuit.SplitIntoCircuits(make([]struct{}, bedCount), circuit.MaxOutletsPerCircuit)
		for i, chunk := range chunks {
			n := len(chunk)
			b.add(Breaker{
				Amps: 15, Poles: 1, AFCI: true,
				Description: fmt.Sprintf("Bedroom Receptacles #%d (AFCI)", i+1),
				WireType:    circuit.WireTypeForAmps(15, false),
				DeviceCount: n, LoadWatts: n * 180, Room: "Bedrooms",
			})
		}
	}

	chunks := circuit.SplitIntoCircuits(make([]struct{}, genRecepts), circuit.MaxOutletsPerCircuit)
	for i, chunk := range chunks {
		n := len(chunk)
		b.add(Breaker{
			Amps: 15, Poles: 1, AFCI: true,
			Description: fmt.Sprintf("General Receptacles #%d (AFCI)", i+1),
			WireType:    circuit.WireTypeForAmps(15, false),
			DeviceCount: n, LoadWatts: n * 180, Room: "Various",
		})
	}
}

// finish runs the CEC Rule 8-200 load calculation over the assigned
// breakers and sizes the panel.
func (b *builder) finish(in Input) Schedule {
	totalLoad := 0
	basicLoad := 0
	largeLoad := 0
	spacesUsed := 0
	for _, c := range b.circuits {
		totalLoad += c.LoadWatts
		spacesUsed += c.Poles
		if c.Amps <= 20 && c.Poles == 1 {
			basicLoad += c.LoadWatts
		}
		if c.Poles == 2 || c.Amps >= 30 {
			largeLoad += c.LoadWatts
		}
	}

	voltage := in.Voltage
	if voltage <= 0 {
		voltage = 240
	}

	totalDemand := circuit.DemandLoad(float64(basicLoad), float64(largeLoad))
	serviceAmps := float64(totalDemand) / float64(voltage)
	panelAmps := circuit.RecommendPanelSize(circuit.WattsToAmps(float64(totalDemand), voltage))

	// Modern homes with A/C or electric heat, or over 1500 sqft, get at
	// least a 200A service.
	if (in.TotalSqFt > 1500 || in.HasAC || in.HasElectricHeat) && panelAmps < 200 {
		panelAmps = 200
	}

	spacesTotal, ok := circuit.PanelSpaces[panelAmps]
	if !ok {
		spacesTotal = 40
	}

	notes := []string{
		fmt.Sprintf("CEC 2021 compliant - %dA service", panelAmps),
		fmt.Sprintf("Total connected load: %dW", totalLoad),
		fmt.Sprintf("Calculated demand: %dW (%.0fA)", totalDemand, serviceAmps),
	}
	if spacesUsed > spacesTotal-4 {
		notes = append(notes, "WARNING: Panel nearly full, consider larger panel")
	}
	if units := in.DwellingType.UnitCount(); units > 1 {
		notes = append(notes, fmt.Sprintf(
			"Multi-unit (%s): %d panels required, each unit gets this panel schedule",
			in.DwellingType, units))
	}

	return Schedule{
		PanelSizeAmps:    panelAmps,
		MainBreakerAmps:  panelAmps,
		Voltage:          voltage,
		Phases:           1,
		Circuits:         b.circuits,
		TotalLoadWatts:   totalLoad,
		TotalDemandWatts: totalDemand,
		TotalCircuits:    len(b.circuits),
		SpacesUsed:       spacesUsed,
		SpacesTotal:      spacesTotal,
		ServiceAmps:      serviceAmps,
		Notes:            notes,
	}
}
