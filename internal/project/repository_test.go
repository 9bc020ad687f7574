package project

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sparkestimate/spark-core/internal/cec"
	"github.com/sparkestimate/spark-core/internal/schedule"
)

// setupTestDB creates an in-memory SQLite database with the project tables.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	schema := `
		CREATE TABLE projects (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			dwelling_type TEXT NOT NULL DEFAULT 'single',
			total_sq_ft REAL NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now')),
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		) STRICT;

		CREATE TABLE project_rooms (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			room_type TEXT NOT NULL,
			room_name TEXT NOT NULL DEFAULT '',
			floor_level TEXT NOT NULL DEFAULT 'main',
			approx_area_sq_ft REAL NOT NULL DEFAULT 0,
			has_sink INTEGER NOT NULL DEFAULT 0,
			has_bathtub_shower INTEGER NOT NULL DEFAULT 0,
			wall_count INTEGER NOT NULL DEFAULT 4,
			confidence REAL NOT NULL DEFAULT 1.0,
			location TEXT NOT NULL DEFAULT '[]',
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now')),
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		) STRICT;

		CREATE TABLE project_estimates (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			devices TEXT NOT NULL,
			schedule TEXT,
			compliance TEXT,
			takeoff TEXT,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now')),
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		) STRICT;
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		t.Fatalf("failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func testProject(id string) *Project {
	return &Project{
		ID:           id,
		Name:         "Maple Street Build",
		Address:      "123 Maple St",
		DwellingType: schedule.DwellingSingle,
		TotalSqFt:    1850,
	}
}

func TestCreateAndGetProject(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()

	p := testProject("proj-001")
	if err := repo.CreateProject(ctx, p); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	got, err := repo.GetProject(ctx, "proj-001")
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if got.Name != p.Name || got.Address != p.Address {
		t.Errorf("got %q / %q, want %q / %q", got.Name, got.Address, p.Name, p.Address)
	}
	if got.DwellingType != schedule.DwellingSingle {
		t.Errorf("dwelling type = %s, want single", got.DwellingType)
	}
	if got.TotalSqFt != 1850 {
		t.Errorf("total sq ft = %.0f, want 1850", got.TotalSqFt)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestGetProjectNotFound(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))

	_, err := repo.GetProject(context.Background(), "missing")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("err = %v, want ErrProjectNotFound", err)
	}
}

func TestUpdateProject(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()

	p := testProject("proj-001")
	if err := repo.CreateProject(ctx, p); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	p.Name = "Maple Street Reno"
	p.TotalSqFt = 2100
	if err := repo.UpdateProject(ctx, p); err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}

	got, err := repo.GetProject(ctx, "proj-001")
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if got.Name != "Maple Street Reno" || got.TotalSqFt != 2100 {
		t.Errorf("update not persisted: %q / %.0f", got.Name, got.TotalSqFt)
	}

	if err := repo.UpdateProject(ctx, testProject("missing")); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("update missing: err = %v, want ErrProjectNotFound", err)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.CreateProject(ctx, testProject("proj-001")); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	rooms := []Room{
		{ID: "room-1", RoomType: cec.RoomTypeKitchen, RoomName: "Kitchen", ApproxAreaSqFt: 160},
	}
	if err := repo.ReplaceRooms(ctx, "proj-001", rooms); err != nil {
		t.Fatalf("ReplaceRooms: %v", err)
	}
	est := &Estimate{ID: "est-1", ProjectID: "proj-001", Devices: cec.DeviceCount{cec.SymbolDuplexReceptacle: 4}}
	if err := repo.SaveEstimate(ctx, est); err != nil {
		t.Fatalf("SaveEstimate: %v", err)
	}

	if err := repo.DeleteProject(ctx, "proj-001"); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if _, err := repo.GetProject(ctx, "proj-001"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("project still exists after delete")
	}
	got, err := repo.ListRooms(ctx, "proj-001")
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("rooms not cascaded: %d remain", len(got))
	}

	if err := repo.DeleteProject(ctx, "missing"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("delete missing: err = %v, want ErrProjectNotFound", err)
	}
}

func TestReplaceRooms(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.CreateProject(ctx, testProject("proj-001")); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	first := []Room{
		{ID: "room-1", RoomType: cec.RoomTypeKitchen, RoomName: "Kitchen", FloorLevel: "main",
			ApproxAreaSqFt: 160, HasSink: true, WallCount: 3, Confidence: 0.92,
			Location: []float64{40, 25}, SortOrder: 0},
		{ID: "room-2", RoomType: cec.RoomTypeBedroom, RoomName: "Bedroom 1", FloorLevel: "upper",
			ApproxAreaSqFt: 120, Confidence: 0.88, SortOrder: 1},
	}
	if err := repo.ReplaceRooms(ctx, "proj-001", first); err != nil {
		t.Fatalf("ReplaceRooms: %v", err)
	}

	got, err := repo.ListRooms(ctx, "proj-001")
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("rooms = %d, want 2", len(got))
	}
	if got[0].RoomType != cec.RoomTypeKitchen || !got[0].HasSink {
		t.Errorf("first room = %+v, want kitchen with sink", got[0])
	}
	if len(got[0].Location) != 2 || got[0].Location[0] != 40 {
		t.Errorf("location not round-tripped: %v", got[0].Location)
	}
	if got[0].WallCount != 3 {
		t.Errorf("wall count = %d, want 3", got[0].WallCount)
	}

	// second detection run replaces the set
	second := []Room{
		{ID: "room-3", RoomType: cec.RoomTypeBathroom, RoomName: "Bath", ApproxAreaSqFt: 50, Confidence: 0.9},
	}
	if err := repo.ReplaceRooms(ctx, "proj-001", second); err != nil {
		t.Fatalf("ReplaceRooms second: %v", err)
	}
	got, err = repo.ListRooms(ctx, "proj-001")
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(got) != 1 || got[0].ID != "room-3" {
		t.Errorf("replace did not swap room set: %+v", got)
	}

	if err := repo.ReplaceRooms(ctx, "missing", second); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("replace on missing project: err = %v, want ErrProjectNotFound", err)
	}
}

func TestRoomDetectedCarriesWallCount(t *testing.T) {
	rm := Room{
		RoomType:       cec.RoomTypeLivingRoom,
		RoomName:       "Living",
		ApproxAreaSqFt: 280,
		WallCount:      5,
	}
	if got := rm.Detected().WallCount; got != 5 {
		t.Errorf("wall count = %d, want 5", got)
	}

	// Rows written before wall counts were stored scan as zero and must
	// come back as a standard four-wall room.
	rm.WallCount = 0
	if got := rm.Detected().WallCount; got != 4 {
		t.Errorf("default wall count = %d, want 4", got)
	}
}

func TestEstimateRoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.CreateProject(ctx, testProject("proj-001")); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	sched := &schedule.Schedule{
		PanelSizeAmps: 200,
		Voltage:       240,
		Circuits: []schedule.Breaker{
			{Number: 1, Amps: 20, Poles: 1, Description: "Kitchen Counter Split 1", GFCI: true},
		},
	}
	est := &Estimate{
		ID:        "est-1",
		ProjectID: "proj-001",
		Devices:   cec.DeviceCount{cec.SymbolDuplexReceptacle: 12, cec.SymbolGFCIReceptacle: 4},
		Schedule:  sched,
	}
	if err := repo.SaveEstimate(ctx, est); err != nil {
		t.Fatalf("SaveEstimate: %v", err)
	}

	got, err := repo.LatestEstimate(ctx, "proj-001")
	if err != nil {
		t.Fatalf("LatestEstimate: %v", err)
	}
	if got.Devices[cec.SymbolDuplexReceptacle] != 12 {
		t.Errorf("devices not round-tripped: %v", got.Devices)
	}
	if got.Schedule == nil || got.Schedule.PanelSizeAmps != 200 {
		t.Errorf("schedule not round-tripped: %+v", got.Schedule)
	}
	if len(got.Schedule.Circuits) != 1 || !got.Schedule.Circuits[0].GFCI {
		t.Errorf("circuits not round-tripped: %+v", got.Schedule.Circuits)
	}
	if got.Takeoff != nil || got.Compliance != nil {
		t.Errorf("nil sections should stay nil, got takeoff=%v compliance=%v", got.Takeoff, got.Compliance)
	}
}

func TestLatestEstimateOrdering(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.CreateProject(ctx, testProject("proj-001")); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	for _, id := range []string{"est-a", "est-b", "est-c"} {
		e := &Estimate{ID: id, ProjectID: "proj-001", Devices: cec.DeviceCount{cec.SymbolDuplexReceptacle: 1}}
		if err := repo.SaveEstimate(ctx, e); err != nil {
			t.Fatalf("SaveEstimate %s: %v", id, err)
		}
	}

	// identical timestamps fall back to id ordering
	got, err := repo.LatestEstimate(ctx, "proj-001")
	if err != nil {
		t.Fatalf("LatestEstimate: %v", err)
	}
	if got.ID != "est-c" {
		t.Errorf("latest = %s, want est-c", got.ID)
	}

	all, err := repo.ListEstimates(ctx, "proj-001")
	if err != nil {
		t.Fatalf("ListEstimates: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("estimates = %d, want 3", len(all))
	}

	if _, err := repo.LatestEstimate(ctx, "empty"); !errors.Is(err, ErrEstimateNotFound) {
		t.Errorf("latest on empty project: err = %v, want ErrEstimateNotFound", err)
	}
}

func TestValidateProject(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		wantErr bool
	}{
		{"valid", Project{Name: "Job 1"}, false},
		{"empty name", Project{Name: "  "}, true},
		{"negative area", Project{Name: "Job", TotalSqFt: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProject(&tt.project)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProject() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRooms(t *testing.T) {
	if err := ValidateRooms([]Room{{RoomType: cec.RoomTypeKitchen, ApproxAreaSqFt: 150, Confidence: 0.9}}); err != nil {
		t.Errorf("valid rooms rejected: %v", err)
	}
	if err := ValidateRooms([]Room{{RoomType: "", ApproxAreaSqFt: 100}}); !errors.Is(err, ErrInvalidRoom) {
		t.Errorf("missing type: err = %v, want ErrInvalidRoom", err)
	}
	if err := ValidateRooms([]Room{{RoomType: cec.RoomTypeBedroom, Confidence: 1.5}}); !errors.Is(err, ErrInvalidRoom) {
		t.Errorf("bad confidence: err = %v, want ErrInvalidRoom", err)
	}
}
