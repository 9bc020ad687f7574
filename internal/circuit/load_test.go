package circuit

import "testing"

func TestDemandLoad(t *testing.T) {
	tests := []struct {
		name      string
		basic     float64
		appliance float64
		want      int
	}{
		{"under threshold no reduction", 4000, 0, 4000},
		{"at threshold", 5000, 0, 5000},
		{"remainder at 25 percent", 8000, 0, 5750},
		{"appliances added unreduced", 8000, 12000, 17750},
		{"zero load", 0, 0, 0},
		{"fractional rounds up", 5001, 0, 5001}, // 5000 + 0.25
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DemandLoad(tt.basic, tt.appliance); got != tt.want {
				t.Errorf("DemandLoad(%v, %v) = %d, want %d",
					tt.basic, tt.appliance, got, tt.want)
			}
		})
	}
}

func TestWattsToAmps(t *testing.T) {
	tests := []struct {
		watts   float64
		voltage int
		want    int
	}{
		{24000, 240, 100},
		{24001, 240, 101},
		{1440, 120, 12},
		{0, 240, 0},
		{5750, 0, 24}, // zero voltage defaults to 240V
	}

	for _, tt := range tests {
		if got := WattsToAmps(tt.watts, tt.voltage); got != tt.want {
			t.Errorf("WattsToAmps(%v, %d) = %d, want %d",
				tt.watts, tt.voltage, got, tt.want)
		}
	}
}

func TestRecommendPanelSize(t *testing.T) {
	tests := []struct {
		amps int
		want int
	}{
		{0, 100},
		{80, 100},
		{81, 125},
		{100, 125},
		{101, 200},
		{160, 200},
		{161, 400},
		{350, 400},
	}

	for _, tt := range tests {
		if got := RecommendPanelSize(tt.amps); got != tt.want {
			t.Errorf("RecommendPanelSize(%d) = %d, want %d", tt.amps, got, tt.want)
		}
	}
}

func TestCircuitWatts(t *testing.T) {
	if got := CircuitWatts(15, 1); got != 1800 {
		t.Errorf("CircuitWatts(15, 1) = %d, want 1800", got)
	}
	if got := CircuitWatts(40, 2); got != 9600 {
		t.Errorf("CircuitWatts(40, 2) = %d, want 9600", got)
	}
}

func TestSplitIntoCircuits(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	chunks := SplitIntoCircuits(items, 12)
	if len(chunks) != 3 {
		t.Fatalf("chunk count = %d, want 3", len(chunks))
	}
	wantSizes := []int{12, 12, 1}
	for i, want := range wantSizes {
		if len(chunks[i]) != want {
			t.Errorf("chunk %d size = %d, want %d", i, len(chunks[i]), want)
		}
	}
	// Order preserved across chunks.
	if chunks[0][0] != 1 || chunks[1][0] != 13 || chunks[2][0] != 25 {
		t.Errorf("chunk boundaries = %d, %d, %d, want 1, 13, 25",
			chunks[0][0], chunks[1][0], chunks[2][0])
	}
}

func TestSplitIntoCircuitsEdgeCases(t *testing.T) {
	if got := SplitIntoCircuits[int](nil, 12); got != nil {
		t.Errorf("splitting nil = %v, want nil", got)
	}
	// Non-positive limit defaults to the code maximum.
	chunks := SplitIntoCircuits(make([]string, 30), 0)
	if len(chunks) != 3 {
		t.Errorf("chunk count with default limit = %d, want 3", len(chunks))
	}
}
