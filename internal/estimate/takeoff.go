// Package estimate turns a derived device count into a material and
// labour takeoff. A takeoff lists device line items, summarises wire
// footage per cable type with a waste allowance, and folds in a
// per-circuit home run allowance. Pricing is out of scope; the output
// feeds whatever costing tool the contractor already uses.
//
// Wire allowances are averages per device. When a floor-plan wire plan
// is available its measured per-symbol distances override the catalog
// defaults, so the footage tracks the actual layout.
package estimate

import (
	"math"
	"sort"

	"github.com/sparkestimate/spark-core/internal/cec"
)

// WasteFactor is the fraction added to all wire footage for offcuts,
// stripping and mistakes.
const WasteFactor = 0.15

// Line is one takeoff row: a device type, its quantity, and the wire
// and labour it carries.
type Line struct {
	SymbolType       cec.Symbol `json:"symbol_type"`
	DisplayName      string     `json:"display_name"`
	Quantity         int        `json:"quantity"`
	BoxType          string     `json:"box_type"`
	CoverPlate       string     `json:"cover_plate"`
	MiscParts        []string   `json:"misc_parts,omitempty"`
	WireType         string     `json:"wire_type"`
	WireFtPerDevice  float64    `json:"wire_ft_per_device"`
	WireFtTotal      float64    `json:"wire_ft_total"`
	LabourHoursEach  float64    `json:"labour_hours_each"`
	LabourHoursTotal float64    `json:"labour_hours_total"`
}

// Takeoff is the complete material and labour summary for a job.
type Takeoff struct {
	Lines []Line `json:"lines"`

	// WireByType is total footage per cable type including waste,
	// rounded up to whole feet.
	WireByType map[string]int `json:"wire_by_type"`

	HomeRunCircuits  int     `json:"home_run_circuits"`
	HomeRunWireFt    int     `json:"home_run_wire_ft"`
	TotalDevices     int     `json:"total_devices"`
	TotalLabourHours float64 `json:"total_labour_hours"`
	WasteFactor      float64 `json:"waste_factor"`
}

// Options tunes a takeoff build.
type Options struct {
	// AllowanceOverrides replaces the catalog wire allowance per symbol,
	// typically from a wire distance plan.
	AllowanceOverrides map[cec.Symbol]float64

	// HomeRunCircuits is the number of branch circuits for the home run
	// allowance. Zero means no home run lines.
	HomeRunCircuits int
}

// Build produces a takeoff from a device count. Lines are sorted by
// symbol for stable output.
func Build(devices cec.DeviceCount, opts Options) Takeoff {
	syms := make([]cec.Symbol, 0, len(devices))
	for sym := range devices {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	t := Takeoff{
		Lines:           make([]Line, 0, len(syms)),
		WireByType:      make(map[string]int),
		HomeRunCircuits: opts.HomeRunCircuits,
		WasteFactor:     WasteFactor,
	}
	rawWire := make(map[string]float64)

	for _, sym := range syms {
		qty := devices[sym]
		if qty <= 0 {
			continue
		}
		asm := AssemblyFor(sym)
		perFt := asm.WireAllowanceFt
		if ov, ok := opts.AllowanceOverrides[sym]; ok && ov > 0 {
			perFt = ov
		}
		line := Line{
			SymbolType:       sym,
			DisplayName:      asm.DisplayName,
			Quantity:         qty,
			BoxType:          asm.BoxType,
			CoverPlate:       asm.CoverPlate,
			MiscParts:        asm.MiscParts,
			WireType:         asm.WireType,
			WireFtPerDevice:  perFt,
			WireFtTotal:      round1(perFt * float64(qty)),
			LabourHoursEach:  asm.LabourHours,
			LabourHoursTotal: round1(asm.LabourHours * float64(qty)),
		}
		t.Lines = append(t.Lines, line)
		rawWire[asm.WireType] += line.WireFtTotal
		t.TotalDevices += qty
		t.TotalLabourHours += line.LabourHoursTotal
	}

	if opts.HomeRunCircuits > 0 {
		n := float64(opts.HomeRunCircuits)
		hrFt := HomeRunAssembly.WireAllowanceFt * n
		rawWire[HomeRunAssembly.WireType] += hrFt
		t.HomeRunWireFt = int(math.Ceil(hrFt * (1 + WasteFactor)))
		t.TotalLabourHours += round1(HomeRunAssembly.LabourHours * n)
	}

	for wt, ft := range rawWire {
		t.WireByType[wt] = int(math.Ceil(ft * (1 + WasteFactor)))
	}
	t.TotalLabourHours = round1(t.TotalLabourHours)
	return t
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
