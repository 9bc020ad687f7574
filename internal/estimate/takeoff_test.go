package estimate

import (
	"testing"

	"github.com/sparkestimate/spark-core/internal/cec"
)

func findLine(t *testing.T, tk Takeoff, sym cec.Symbol) Line {
	t.Helper()
	for _, l := range tk.Lines {
		if l.SymbolType == sym {
			return l
		}
	}
	t.Fatalf("no line for %s", sym)
	return Line{}
}

func TestBuildEmpty(t *testing.T) {
	tk := Build(cec.DeviceCount{}, Options{})
	if len(tk.Lines) != 0 {
		t.Errorf("lines = %d, want 0", len(tk.Lines))
	}
	if tk.TotalDevices != 0 || tk.TotalLabourHours != 0 {
		t.Errorf("totals = %d devices / %.1f h, want zero", tk.TotalDevices, tk.TotalLabourHours)
	}
	if len(tk.WireByType) != 0 {
		t.Errorf("wire summary not empty: %v", tk.WireByType)
	}
}

func TestBuildLineTotals(t *testing.T) {
	devices := cec.DeviceCount{
		cec.SymbolDuplexReceptacle: 10,
		cec.SymbolGFCIReceptacle:   3,
	}
	tk := Build(devices, Options{HomeRunCircuits: 2})

	dup := findLine(t, tk, cec.SymbolDuplexReceptacle)
	if dup.WireFtTotal != 150.0 {
		t.Errorf("duplex wire ft = %.1f, want 150.0", dup.WireFtTotal)
	}
	if dup.LabourHoursTotal != 1.8 {
		t.Errorf("duplex labour = %.1f, want 1.8", dup.LabourHoursTotal)
	}

	gfci := findLine(t, tk, cec.SymbolGFCIReceptacle)
	if gfci.WireFtTotal != 75.0 {
		t.Errorf("gfci wire ft = %.1f, want 75.0", gfci.WireFtTotal)
	}

	if tk.TotalDevices != 13 {
		t.Errorf("total devices = %d, want 13", tk.TotalDevices)
	}
	// 1.8 duplex + 0.8 gfci + 1.0 home run
	if tk.TotalLabourHours != 3.6 {
		t.Errorf("total labour = %.1f, want 3.6", tk.TotalLabourHours)
	}
}

func TestBuildWireSummaryIncludesWaste(t *testing.T) {
	devices := cec.DeviceCount{
		cec.SymbolDuplexReceptacle: 10,
		cec.SymbolGFCIReceptacle:   3,
	}
	tk := Build(devices, Options{HomeRunCircuits: 2})

	// duplex 150 + home run 60 = 210, x1.15 = 241.5, ceil 242
	if got := tk.WireByType["14/2 NMD-90"]; got != 242 {
		t.Errorf("14/2 footage = %d, want 242", got)
	}
	// gfci 75 x1.15 = 86.25, ceil 87
	if got := tk.WireByType["12/2 NMD-90"]; got != 87 {
		t.Errorf("12/2 footage = %d, want 87", got)
	}
	if tk.HomeRunWireFt != 69 {
		t.Errorf("home run wire ft = %d, want 69", tk.HomeRunWireFt)
	}
}

func TestBuildAllowanceOverride(t *testing.T) {
	devices := cec.DeviceCount{cec.SymbolDuplexReceptacle: 4}
	tk := Build(devices, Options{
		AllowanceOverrides: map[cec.Symbol]float64{cec.SymbolDuplexReceptacle: 35.0},
	})
	dup := findLine(t, tk, cec.SymbolDuplexReceptacle)
	if dup.WireFtPerDevice != 35.0 {
		t.Errorf("per-device ft = %.1f, want override 35.0", dup.WireFtPerDevice)
	}
	if dup.WireFtTotal != 140.0 {
		t.Errorf("wire ft total = %.1f, want 140.0", dup.WireFtTotal)
	}
	// 140 x1.15 = 161
	if got := tk.WireByType["14/2 NMD-90"]; got != 161 {
		t.Errorf("14/2 footage = %d, want 161", got)
	}
}

func TestBuildZeroOverrideIgnored(t *testing.T) {
	devices := cec.DeviceCount{cec.SymbolDuplexReceptacle: 2}
	tk := Build(devices, Options{
		AllowanceOverrides: map[cec.Symbol]float64{cec.SymbolDuplexReceptacle: 0},
	})
	dup := findLine(t, tk, cec.SymbolDuplexReceptacle)
	if dup.WireFtPerDevice != 15.0 {
		t.Errorf("per-device ft = %.1f, want catalog default 15.0", dup.WireFtPerDevice)
	}
}

func TestBuildUnknownSymbolGetsPlaceholder(t *testing.T) {
	devices := cec.DeviceCount{cec.Symbol("widget"): 2}
	tk := Build(devices, Options{})
	line := findLine(t, tk, cec.Symbol("widget"))
	if line.DisplayName != "widget" {
		t.Errorf("display name = %q, want %q", line.DisplayName, "widget")
	}
	// 2 x 20 = 40, x1.15 = 46
	if got := tk.WireByType["14/2 NMD-90"]; got != 46 {
		t.Errorf("14/2 footage = %d, want 46", got)
	}
}

func TestBuildStableOrdering(t *testing.T) {
	devices := cec.WholeHouseDevices([]cec.DetectedRoom{
		{RoomType: cec.RoomTypeKitchen, ApproxAreaSqFt: 160},
		{RoomType: cec.RoomTypeBedroom, ApproxAreaSqFt: 120},
	})
	a := Build(devices, Options{HomeRunCircuits: 8})
	b := Build(devices, Options{HomeRunCircuits: 8})
	if len(a.Lines) != len(b.Lines) {
		t.Fatalf("line counts differ: %d vs %d", len(a.Lines), len(b.Lines))
	}
	for i := range a.Lines {
		if a.Lines[i].SymbolType != b.Lines[i].SymbolType {
			t.Fatalf("line %d differs: %s vs %s", i, a.Lines[i].SymbolType, b.Lines[i].SymbolType)
		}
	}
	for i := 1; i < len(a.Lines); i++ {
		if a.Lines[i-1].SymbolType >= a.Lines[i].SymbolType {
			t.Errorf("lines not sorted at %d: %s >= %s", i, a.Lines[i-1].SymbolType, a.Lines[i].SymbolType)
		}
	}
}

func TestCatalogCoversAllEmittedSymbols(t *testing.T) {
	// every symbol the room generator can emit has a real assembly
	rooms := make([]cec.DetectedRoom, 0, len(cec.AllRoomTypes()))
	for _, rt := range cec.AllRoomTypes() {
		rooms = append(rooms, cec.DetectedRoom{RoomType: rt, ApproxAreaSqFt: 300, RoomName: string(rt)})
	}
	devices := cec.WholeHouseDevices(rooms)
	for sym := range devices {
		if _, ok := DefaultAssemblies[sym]; !ok {
			t.Errorf("no assembly for emitted symbol %s", sym)
		}
	}
}
