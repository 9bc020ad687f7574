package api

import (
	"encoding/json"
	"net/http"

	"github.com/sparkestimate/spark-core/internal/cec"
	"github.com/sparkestimate/spark-core/internal/compliance"
	"github.com/sparkestimate/spark-core/internal/estimate"
	"github.com/sparkestimate/spark-core/internal/schedule"
	"github.com/sparkestimate/spark-core/internal/wireplan"
)

// maxDeriveRooms bounds the size of a single derivation request.
const maxDeriveRooms = 200

// deriveDevicesRequest is the request body for POST /derive/devices.
type deriveDevicesRequest struct {
	Rooms []cec.DetectedRoom `json:"rooms"`
}

// roomDevices pairs one input room with its derived device counts.
type roomDevices struct {
	RoomName string          `json:"room_name"`
	RoomType cec.RoomType    `json:"room_type"`
	Devices  cec.DeviceCount `json:"devices"`
}

// handleDeriveDevices derives minimum device counts from detected rooms.
func (s *Server) handleDeriveDevices(w http.ResponseWriter, r *http.Request) {
	var req deriveDevicesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if len(req.Rooms) > maxDeriveRooms {
		writeBadRequest(w, "too many rooms")
		return
	}

	perRoom := make([]roomDevices, 0, len(req.Rooms))
	for _, rm := range req.Rooms {
		perRoom = append(perRoom, roomDevices{
			RoomName: rm.RoomName,
			RoomType: rm.RoomType,
			Devices:  cec.DevicesForRoom(rm),
		})
	}
	whole := cec.WholeHouseDevices(req.Rooms)

	writeJSON(w, http.StatusOK, map[string]any{
		"devices":       whole,
		"total_devices": whole.Total(),
		"per_room":      perRoom,
	})
}

// handleDerivePanelSchedule builds a panel schedule from rooms or raw
// device counts. When the body omits devices they are derived from the
// rooms first.
func (s *Server) handleDerivePanelSchedule(w http.ResponseWriter, r *http.Request) {
	var in schedule.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if len(in.Rooms) > maxDeriveRooms {
		writeBadRequest(w, "too many rooms")
		return
	}
	if len(in.Devices) == 0 {
		if len(in.Rooms) == 0 {
			writeBadRequest(w, "either rooms or devices is required")
			return
		}
		in.Devices = cec.WholeHouseDevices(in.Rooms)
	}
	if in.DwellingType == "" {
		in.DwellingType = schedule.DwellingType(s.estCfg.DefaultDwellingType)
	}
	if in.Voltage == 0 {
		in.Voltage = s.estCfg.Voltage
	}

	writeJSON(w, http.StatusOK, schedule.Build(in))
}

// deriveComplianceRequest is the request body for POST /derive/compliance.
type deriveComplianceRequest struct {
	Rooms     []cec.DetectedRoom `json:"rooms"`
	Devices   cec.DeviceCount    `json:"devices,omitempty"`
	HouseSqFt float64            `json:"house_sqft,omitempty"`
}

// handleDeriveCompliance runs the compliance checks and sanity warnings.
func (s *Server) handleDeriveCompliance(w http.ResponseWriter, r *http.Request) {
	var req deriveComplianceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if len(req.Rooms) > maxDeriveRooms {
		writeBadRequest(w, "too many rooms")
		return
	}
	if len(req.Devices) == 0 {
		req.Devices = cec.WholeHouseDevices(req.Rooms)
	}
	houseSqFt := req.HouseSqFt
	if houseSqFt == 0 {
		for _, rm := range req.Rooms {
			houseSqFt += rm.ApproxAreaSqFt
		}
	}

	report := compliance.Check(req.Devices, req.Rooms)
	warnings := compliance.SanityCheck(req.Devices, houseSqFt)

	writeJSON(w, http.StatusOK, map[string]any{
		"report":   report,
		"warnings": warnings,
	})
}

// handleDeriveWirePlan estimates per-room wire run distances from a
// panel position on the floor plan.
func (s *Server) handleDeriveWirePlan(w http.ResponseWriter, r *http.Request) {
	var in wireplan.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if len(in.Rooms) > maxDeriveRooms {
		writeBadRequest(w, "too many rooms")
		return
	}
	if in.HousePerimeterFt == 0 {
		in.HousePerimeterFt = s.estCfg.HousePerimeterFt
	}
	if in.RoomDevices == nil {
		in.RoomDevices = make(map[int]cec.DeviceCount, len(in.Rooms))
		for i, rm := range in.Rooms {
			in.RoomDevices[i] = cec.DevicesForRoom(rm)
		}
	}

	distances := wireplan.Distances(in)
	writeJSON(w, http.StatusOK, map[string]any{
		"distances":           distances,
		"allowance_overrides": wireplan.AllowanceOverrides(distances, in.RoomDevices),
	})
}

// deriveTakeoffRequest is the request body for POST /derive/takeoff.
type deriveTakeoffRequest struct {
	Rooms              []cec.DetectedRoom     `json:"rooms,omitempty"`
	Devices            cec.DeviceCount        `json:"devices,omitempty"`
	HomeRunCircuits    int                    `json:"home_run_circuits,omitempty"`
	AllowanceOverrides map[cec.Symbol]float64 `json:"allowance_overrides,omitempty"`
}

// handleDeriveTakeoff builds a material and labour takeoff. When the
// caller gives no circuit count the panel schedule supplies one.
func (s *Server) handleDeriveTakeoff(w http.ResponseWriter, r *http.Request) {
	var req deriveTakeoffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if len(req.Rooms) > maxDeriveRooms {
		writeBadRequest(w, "too many rooms")
		return
	}
	if len(req.Devices) == 0 {
		if len(req.Rooms) == 0 {
			writeBadRequest(w, "either rooms or devices is required")
			return
		}
		req.Devices = cec.WholeHouseDevices(req.Rooms)
	}
	if req.HomeRunCircuits == 0 {
		sched := schedule.Build(schedule.Input{
			Devices:      req.Devices,
			Rooms:        req.Rooms,
			DwellingType: schedule.DwellingType(s.estCfg.DefaultDwellingType),
			Voltage:      s.estCfg.Voltage,
		})
		req.HomeRunCircuits = sched.TotalCircuits
	}

	writeJSON(w, http.StatusOK, estimate.Build(req.Devices, estimate.Options{
		AllowanceOverrides: req.AllowanceOverrides,
		HomeRunCircuits:    req.HomeRunCircuits,
	}))
}
