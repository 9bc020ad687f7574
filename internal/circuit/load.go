package circuit

import "math"

// DemandLoad applies the tiered residential demand formula (CEC Rule
// 8-200): the first 5000 W of basic lighting and receptacle load counts
// at 100%, the remainder at 25%, and large-appliance load is added
// un-reduced. The result is rounded up to the next whole watt.
func DemandLoad(basicLoadWatts, largeApplianceWatts float64) int {
	demand := math.Min(basicLoadWatts, 5000) +
		math.Max(0, basicLoadWatts-5000)*0.25 +
		largeApplianceWatts
	return int(math.Ceil(demand))
}

// WattsToAmps converts watts to amps by ceiling division. A voltage of
// zero or less defaults to 240V split-phase service.
func WattsToAmps(watts float64, voltage int) int {
	if voltage <= 0 {
		voltage = 240
	}
	return int(math.Ceil(watts / float64(voltage)))
}

// RecommendPanelSize maps a calculated demand amperage to the service
// size to install. Boundaries are inclusive on the lower bucket.
func RecommendPanelSize(demandAmps int) int {
	switch {
	case demandAmps <= 80:
		return 100
	case demandAmps <= 100:
		return 125
	case demandAmps <= 160:
		return 200
	default:
		return 400
	}
}

// CircuitWatts returns the capacity of a breaker: amps at 240V for a
// 2-pole breaker, amps at 120V otherwise.
func CircuitWatts(amps, poles int) int {
	if poles == 2 {
		return amps * 240
	}
	return amps * 120
}

// SplitIntoCircuits partitions items into consecutive chunks of at most
// maxPerCircuit, preserving input order. A maxPerCircuit of zero or less
// defaults to MaxOutletsPerCircuit.
func SplitIntoCircuits[T any](items []T, maxPerCircuit int) [][]T {
	if maxPerCircuit <= 0 {
		maxPerCircuit = MaxOutletsPerCircuit
	}
	if len(items) == 0 {
		return nil
	}
	chunks := make([][]T, 0, (len(items)+maxPerCircuit-1)/maxPerCircuit)
	for start := 0; start < len(items); start += maxPerCircuit {
		end := start + maxPerCircuit
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
