package project

import (
	"time"

	"github.com/sparkestimate/spark-core/internal/cec"
	"github.com/sparkestimate/spark-core/internal/compliance"
	"github.com/sparkestimate/spark-core/internal/estimate"
	"github.com/sparkestimate/spark-core/internal/schedule"
)

// Project is one estimating job: a dwelling with its detected rooms and
// any derived estimates.
type Project struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Address      string                `json:"address,omitempty"`
	DwellingType schedule.DwellingType `json:"dwelling_type"`
	TotalSqFt    float64               `json:"total_sqft"`
	Notes        string                `json:"notes,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// Room is a detected room persisted against a project. It mirrors
// cec.DetectedRoom plus the project linkage.
type Room struct {
	ID               string       `json:"id"`
	ProjectID        string       `json:"project_id"`
	RoomType         cec.RoomType `json:"room_type"`
	RoomName         string       `json:"room_name"`
	FloorLevel       string       `json:"floor_level"`
	ApproxAreaSqFt   float64      `json:"approx_area_sqft"`
	HasSink          bool         `json:"has_sink"`
	HasBathtubShower bool         `json:"has_bathtub_shower"`
	WallCount        int          `json:"wall_count"`
	Confidence       float64      `json:"confidence"`
	Location         []float64    `json:"location,omitempty"`
	SortOrder        int          `json:"sort_order"`
	CreatedAt        time.Time    `json:"created_at"`
}

// Detected converts the persisted room back to the derivation input
// type. Rows stored before wall counts were recorded carry zero; those
// fall back to the detector's default of four walls.
func (r Room) Detected() cec.DetectedRoom {
	walls := r.WallCount
	if walls <= 0 {
		walls = 4
	}
	return cec.DetectedRoom{
		RoomType:         r.RoomType,
		RoomName:         r.RoomName,
		FloorLevel:       r.FloorLevel,
		ApproxAreaSqFt:   r.ApproxAreaSqFt,
		HasSink:          r.HasSink,
		HasBathtubShower: r.HasBathtubShower,
		WallCount:        walls,
		Confidence:       r.Confidence,
		Location:         r.Location,
	}
}

// Estimate is one derivation snapshot for a project: the device counts
// plus the panel schedule, compliance report and takeoff computed from
// them. Snapshots are immutable; re-deriving appends a new one.
type Estimate struct {
	ID         string             `json:"id"`
	ProjectID  string             `json:"project_id"`
	Devices    cec.DeviceCount    `json:"devices"`
	Schedule   *schedule.Schedule `json:"schedule,omitempty"`
	Compliance *compliance.Report `json:"compliance,omitempty"`
	Takeoff    *estimate.Takeoff  `json:"takeoff,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}
