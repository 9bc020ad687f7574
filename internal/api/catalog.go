package api

import (
	"net/http"
	"sort"

	"github.com/sparkestimate/spark-core/internal/cec"
	"github.com/sparkestimate/spark-core/internal/circuit"
	"github.com/sparkestimate/spark-core/internal/estimate"
)

// handleCatalogRooms returns the per-room minimum requirement catalog.
func (s *Server) handleCatalogRooms(w http.ResponseWriter, _ *http.Request) {
	out := make([]cec.RoomRequirement, 0, len(cec.RoomRequirements))
	for _, rt := range cec.AllRoomTypes() {
		if req, ok := cec.RequirementFor(rt); ok {
			out = append(out, req)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rooms": out,
		"count": len(out),
	})
}

// handleCatalogAssemblies returns the stock assembly catalog.
func (s *Server) handleCatalogAssemblies(w http.ResponseWriter, _ *http.Request) {
	syms := make([]cec.Symbol, 0, len(estimate.DefaultAssemblies))
	for sym := range estimate.DefaultAssemblies {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	out := make([]estimate.Assembly, 0, len(syms))
	for _, sym := range syms {
		out = append(out, estimate.DefaultAssemblies[sym])
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"assemblies":   out,
		"home_run":     estimate.HomeRunAssembly,
		"waste_factor": estimate.WasteFactor,
	})
}

// wireSizingEntry is one breaker-to-cable row in the sizing table.
type wireSizingEntry struct {
	Amps      int    `json:"amps"`
	TwoWire   string `json:"two_wire"`
	ThreeWire string `json:"three_wire"`
}

// handleCatalogWireSizing returns the breaker-amps-to-cable tables.
func (s *Server) handleCatalogWireSizing(w http.ResponseWriter, _ *http.Request) {
	amps := make([]int, 0, len(circuit.WireSizing))
	for a := range circuit.WireSizing {
		amps = append(amps, a)
	}
	sort.Ints(amps)

	out := make([]wireSizingEntry, 0, len(amps))
	for _, a := range amps {
		out = append(out, wireSizingEntry{
			Amps:      a,
			TwoWire:   circuit.WireSizing[a],
			ThreeWire: circuit.WireSizing3Wire[a],
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"wire_sizing":             out,
		"panel_spaces":            circuit.PanelSpaces,
		"max_outlets_per_circuit": circuit.MaxOutletsPerCircuit,
	})
}

// ampPatternEntry is a JSON view of a device amp pattern. The compiled
// regular expression is exposed as its source text.
type ampPatternEntry struct {
	Label     string `json:"label"`
	Pattern   string `json:"pattern"`
	Amps      int    `json:"amps"`
	Poles     int    `json:"poles"`
	Dedicated bool   `json:"dedicated"`
	GFCI      bool   `json:"gfci"`
	AFCI      bool   `json:"afci"`
	WireType  string `json:"wire_type,omitempty"`
}

// handleCatalogAmpPatterns returns the ordered device classification patterns.
func (s *Server) handleCatalogAmpPatterns(w http.ResponseWriter, _ *http.Request) {
	out := make([]ampPatternEntry, 0, len(circuit.DeviceAmpPatterns))
	for _, p := range circuit.DeviceAmpPatterns {
		out = append(out, ampPatternEntry{
			Label:     p.Label,
			Pattern:   p.Pattern.String(),
			Amps:      p.Amps,
			Poles:     p.Poles,
			Dedicated: p.Dedicated,
			GFCI:      p.GFCI,
			AFCI:      p.AFCI,
			WireType:  p.WireType,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"patterns": out,
		"count":    len(out),
	})
}
