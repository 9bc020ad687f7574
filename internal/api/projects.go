package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sparkestimate/spark-core/internal/cec"
	"github.com/sparkestimate/spark-core/internal/compliance"
	"github.com/sparkestimate/spark-core/internal/estimate"
	"github.com/sparkestimate/spark-core/internal/project"
	"github.com/sparkestimate/spark-core/internal/schedule"
)

// createProjectRequest is the request body for POST /projects.
type createProjectRequest struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	DwellingType string  `json:"dwelling_type"`
	TotalSqFt    float64 `json:"total_sqft"`
	Notes        string  `json:"notes"`
}

// handleListProjects returns all projects, newest first.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.projectRepo.ListProjects(r.Context())
	if err != nil {
		s.logger.Error("listing projects", "error", err)
		writeInternalError(w, "failed to list projects")
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"projects": projects,
		"count":    len(projects),
	})
}

// handleCreateProject creates a new project.
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	dwelling := req.DwellingType
	if dwelling == "" {
		dwelling = s.estCfg.DefaultDwellingType
	}
	p := &project.Project{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Address:      req.Address,
		DwellingType: schedule.DwellingType(dwelling),
		TotalSqFt:    req.TotalSqFt,
		Notes:        req.Notes,
	}
	if err := project.ValidateProject(p); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := s.projectRepo.CreateProject(r.Context(), p); err != nil {
		s.logger.Error("creating project", "error", err)
		writeInternalError(w, "failed to create project")
		return
	}

	created, err := s.projectRepo.GetProject(r.Context(), p.ID)
	if err != nil {
		s.logger.Error("reading back created project", "error", err, "project_id", p.ID)
		writeInternalError(w, "failed to read created project")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleGetProject returns one project by ID.
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.projectRepo.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			writeNotFound(w, "project not found")
			return
		}
		s.logger.Error("getting project", "error", err, "project_id", id)
		writeInternalError(w, "failed to get project")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleUpdateProject applies a partial update to a project.
func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.projectRepo.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			writeNotFound(w, "project not found")
			return
		}
		s.logger.Error("getting project for update", "error", err, "project_id", id)
		writeInternalError(w, "failed to get project")
		return
	}

	var req struct {
		Name         *string  `json:"name"`
		Address      *string  `json:"address"`
		DwellingType *string  `json:"dwelling_type"`
		TotalSqFt    *float64 `json:"total_sqft"`
		Notes        *string  `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.DwellingType != nil {
		p.DwellingType = schedule.DwellingType(*req.DwellingType)
	}
	if req.TotalSqFt != nil {
		p.TotalSqFt = *req.TotalSqFt
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	if err := project.ValidateProject(p); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := s.projectRepo.UpdateProject(r.Context(), p); err != nil {
		s.logger.Error("updating project", "error", err, "project_id", id)
		writeInternalError(w, "failed to update project")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleDeleteProject removes a project and all its derived data.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.projectRepo.DeleteProject(r.Context(), id); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			writeNotFound(w, "project not found")
			return
		}
		s.logger.Error("deleting project", "error", err, "project_id", id)
		writeInternalError(w, "failed to delete project")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListProjectRooms returns a project's detected rooms.
func (s *Server) handleListProjectRooms(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.projectRepo.GetProject(r.Context(), id); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			writeNotFound(w, "project not found")
			return
		}
		s.logger.Error("getting project", "error", err, "project_id", id)
		writeInternalError(w, "failed to get project")
		return
	}

	rooms, err := s.projectRepo.ListRooms(r.Context(), id)
	if err != nil {
		s.logger.Error("listing project rooms", "error", err, "project_id", id)
		writeInternalError(w, "failed to list rooms")
		return
	}
	if rooms == nil {
		rooms = []project.Room{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rooms": rooms,
		"count": len(rooms),
	})
}

// roomPayload is one detected room in a PUT /projects/{id}/rooms body.
type roomPayload struct {
	RoomType         cec.RoomType `json:"room_type"`
	RoomName         string       `json:"room_name"`
	FloorLevel       string       `json:"floor_level"`
	ApproxAreaSqFt   float64      `json:"approx_area_sqft"`
	HasSink          bool         `json:"has_sink"`
	HasBathtubShower bool         `json:"has_bathtub_shower"`
	WallCount        int          `json:"wall_count,omitempty"`
	Confidence       float64      `json:"confidence"`
	Location         []float64    `json:"location,omitempty"`
}

// handleReplaceProjectRooms replaces a project's room list with the
// detection output in the request body.
func (s *Server) handleReplaceProjectRooms(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Rooms []roomPayload `json:"rooms"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	rooms := make([]project.Room, 0, len(req.Rooms))
	for i, in := range req.Rooms {
		walls := in.WallCount
		if walls <= 0 {
			// Detectors that do not report walls imply a standard
			// four-wall room.
			walls = 4
		}
		rooms = append(rooms, project.Room{
			ID:               uuid.NewString(),
			ProjectID:        id,
			RoomType:         in.RoomType,
			RoomName:         in.RoomName,
			FloorLevel:       in.FloorLevel,
			ApproxAreaSqFt:   in.ApproxAreaSqFt,
			HasSink:          in.HasSink,
			HasBathtubShower: in.HasBathtubShower,
			WallCount:        walls,
			Confidence:       in.Confidence,
			Location:         in.Location,
			SortOrder:        i,
		})
	}
	if err := project.ValidateRooms(rooms); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := s.projectRepo.ReplaceRooms(r.Context(), id, rooms); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			writeNotFound(w, "project not found")
			return
		}
		s.logger.Error("replacing project rooms", "error", err, "project_id", id)
		writeInternalError(w, "failed to replace rooms")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rooms": rooms,
		"count": len(rooms),
	})
}

// handleCreateEstimate runs the full derivation pipeline over a
// project's stored rooms and saves the result as a new snapshot.
func (s *Server) handleCreateEstimate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.projectRepo.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			writeNotFound(w, "project not found")
			return
		}
		s.logger.Error("getting project for estimate", "error", err, "project_id", id)
		writeInternalError(w, "failed to get project")
		return
	}

	stored, err := s.projectRepo.ListRooms(r.Context(), id)
	if err != nil {
		s.logger.Error("listing rooms for estimate", "error", err, "project_id", id)
		writeInternalError(w, "failed to list rooms")
		return
	}
	if len(stored) == 0 {
		writeBadRequest(w, "project has no rooms; upload detected rooms first")
		return
	}

	var opts struct {
		HasElectricRange bool `json:"has_electric_range"`
		HasAC            bool `json:"has_ac"`
		HasElectricHeat  bool `json:"has_electric_heat"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			writeBadRequest(w, "invalid JSON body")
			return
		}
	}

	rooms := make([]cec.DetectedRoom, 0, len(stored))
	for _, rm := range stored {
		rooms = append(rooms, rm.Detected())
	}

	devices := cec.WholeHouseDevices(rooms)
	sched := schedule.Build(schedule.Input{
		Devices:          devices,
		Rooms:            rooms,
		DwellingType:     p.DwellingType,
		HasElectricRange: opts.HasElectricRange,
		HasAC:            opts.HasAC,
		HasElectricHeat:  opts.HasElectricHeat,
		TotalSqFt:        p.TotalSqFt,
		Voltage:          s.estCfg.Voltage,
	})
	report := compliance.Check(devices, rooms)
	takeoff := estimate.Build(devices, estimate.Options{
		HomeRunCircuits: sched.TotalCircuits,
	})

	e := &project.Estimate{
		ID:         uuid.NewString(),
		ProjectID:  id,
		Devices:    devices,
		Schedule:   &sched,
		Compliance: &report,
		Takeoff:    &takeoff,
	}
	if err := s.projectRepo.SaveEstimate(r.Context(), e); err != nil {
		s.logger.Error("saving estimate", "error", err, "project_id", id)
		writeInternalError(w, "failed to save estimate")
		return
	}

	saved, err := s.projectRepo.LatestEstimate(r.Context(), id)
	if err != nil {
		s.logger.Error("reading back estimate", "error", err, "project_id", id)
		writeInternalError(w, "failed to read saved estimate")
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// handleLatestEstimate returns the newest estimate snapshot for a project.
func (s *Server) handleLatestEstimate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	e, err := s.projectRepo.LatestEstimate(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrEstimateNotFound) {
			writeNotFound(w, "project has no estimates")
			return
		}
		s.logger.Error("getting latest estimate", "error", err, "project_id", id)
		writeInternalError(w, "failed to get estimate")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// handleListEstimates returns every estimate snapshot for a project.
func (s *Server) handleListEstimates(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	estimates, err := s.projectRepo.ListEstimates(r.Context(), id)
	if err != nil {
		s.logger.Error("listing estimates", "error", err, "project_id", id)
		writeInternalError(w, "failed to list estimates")
		return
	}
	if estimates == nil {
		estimates = []project.Estimate{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"estimates": estimates,
		"count":     len(estimates),
	})
}
