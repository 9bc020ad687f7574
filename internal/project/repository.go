package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sparkestimate/spark-core/internal/cec"
	"github.com/sparkestimate/spark-core/internal/schedule"
)

// Repository defines the interface for project persistence operations.
type Repository interface {
	CreateProject(ctx context.Context, p *Project) error
	ListProjects(ctx context.Context) ([]Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, id string) error

	// ReplaceRooms swaps a project's full room list atomically. Room
	// detection re-runs produce a complete list, not deltas.
	ReplaceRooms(ctx context.Context, projectID string, rooms []Room) error
	ListRooms(ctx context.Context, projectID string) ([]Room, error)

	SaveEstimate(ctx context.Context, e *Estimate) error
	LatestEstimate(ctx context.Context, projectID string) (*Estimate, error)
	ListEstimates(ctx context.Context, projectID string) ([]Estimate, error)
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed project repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// CreateProject inserts a new project into the database.
func (r *SQLiteRepository) CreateProject(ctx context.Context, p *Project) error {
	const query = `INSERT INTO projects (id, name, address, dwelling_type, total_sq_ft, notes)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Address, string(p.DwellingType), p.TotalSqFt, p.Notes)
	if err != nil {
		return fmt.Errorf("inserting project %s: %w", p.ID, err)
	}
	return nil
}

// ListProjects returns all projects, newest first.
func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]Project, error) {
	const query = `SELECT id, name, address, dwelling_type, total_sq_ft, notes, created_at, updated_at
		FROM projects ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p, err := scanProjectRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project rows: %w", err)
	}
	return projects, nil
}

// GetProject returns a single project by ID.
func (r *SQLiteRepository) GetProject(ctx context.Context, id string) (*Project, error) {
	const query = `SELECT id, name, address, dwelling_type, total_sq_ft, notes, created_at, updated_at
		FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanProject(row)
}

// UpdateProject updates an existing project record.
func (r *SQLiteRepository) UpdateProject(ctx context.Context, p *Project) error {
	const query = `UPDATE projects SET name = ?, address = ?, dwelling_type = ?,
		total_sq_ft = ?, notes = ?,
		updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
		WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Address, string(p.DwellingType), p.TotalSqFt, p.Notes, p.ID)
	if err != nil {
		return fmt.Errorf("updating project %s: %w", p.ID, err)
	}
	n, _ := result.RowsAffected() //nolint:errcheck // SQLite always supports RowsAffected
	if n == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// DeleteProject removes a project and its rooms and estimates.
func (r *SQLiteRepository) DeleteProject(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning delete transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM project_estimates WHERE project_id = ?", id); err != nil {
		return fmt.Errorf("deleting estimates for project %s: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM project_rooms WHERE project_id = ?", id); err != nil {
		return fmt.Errorf("deleting rooms for project %s: %w", id, err)
	}
	result, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}
	n, _ := result.RowsAffected() //nolint:errcheck // SQLite always supports RowsAffected
	if n == 0 {
		return ErrProjectNotFound
	}
	return tx.Commit()
}

// ReplaceRooms deletes the project's rooms and inserts the new set in a
// single transaction.
func (r *SQLiteRepository) ReplaceRooms(ctx context.Context, projectID string, rooms []Room) error {
	if _, err := r.GetProject(ctx, projectID); err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning rooms transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM project_rooms WHERE project_id = ?", projectID); err != nil {
		return fmt.Errorf("clearing rooms for project %s: %w", projectID, err)
	}
	const query = `INSERT INTO project_rooms (id, project_id, room_type, room_name,
		floor_level, approx_area_sq_ft, has_sink, has_bathtub_shower,
		wall_count, confidence, location, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, rm := range rooms {
		location := "[]"
		if len(rm.Location) > 0 {
			if b, err := json.Marshal(rm.Location); err == nil { //nolint:govet // shadow: err checked immediately
				location = string(b)
			}
		}
		_, err := tx.ExecContext(ctx, query,
			rm.ID, projectID, string(rm.RoomType), rm.RoomName,
			rm.FloorLevel, rm.ApproxAreaSqFt, rm.HasSink, rm.HasBathtubShower,
			rm.WallCount, rm.Confidence, location, rm.SortOrder)
		if err != nil {
			return fmt.Errorf("inserting room %s: %w", rm.ID, err)
		}
	}
	return tx.Commit()
}

// ListRooms returns a project's rooms ordered by sort_order then name.
func (r *SQLiteRepository) ListRooms(ctx context.Context, projectID string) ([]Room, error) {
	const query = `SELECT id, project_id, room_type, room_name, floor_level,
		approx_area_sq_ft, has_sink, has_bathtub_shower, wall_count,
		confidence, location, sort_order, created_at
		FROM project_rooms WHERE project_id = ? ORDER BY sort_order, room_name`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("querying rooms: %w", err)
	}
	defer rows.Close()

	var out []Room
	for rows.Next() {
		rm, err := scanRoomRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning room row: %w", err)
		}
		out = append(out, *rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating room rows: %w", err)
	}
	return out, nil
}

// SaveEstimate appends an estimate snapshot for a project.
func (r *SQLiteRepository) SaveEstimate(ctx context.Context, e *Estimate) error {
	devices, err := json.Marshal(e.Devices)
	if err != nil {
		return fmt.Errorf("encoding devices: %w", err)
	}
	sched, err := marshalOrNull(e.Schedule)
	if err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}
	comp, err := marshalOrNull(e.Compliance)
	if err != nil {
		return fmt.Errorf("encoding compliance report: %w", err)
	}
	takeoff, err := marshalOrNull(e.Takeoff)
	if err != nil {
		return fmt.Errorf("encoding takeoff: %w", err)
	}
	const query = `INSERT INTO project_estimates (id, project_id, devices, schedule, compliance, takeoff)
		VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		e.ID, e.ProjectID, string(devices), sched, comp, takeoff); err != nil {
		return fmt.Errorf("inserting estimate %s: %w", e.ID, err)
	}
	return nil
}

// LatestEstimate returns the most recent estimate for a project.
func (r *SQLiteRepository) LatestEstimate(ctx context.Context, projectID string) (*Estimate, error) {
	const query = `SELECT id, project_id, devices, schedule, compliance, takeoff, created_at
		FROM project_estimates WHERE project_id = ?
		ORDER BY created_at DESC, id DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, projectID)
	return scanEstimate(row)
}

// ListEstimates returns all estimate snapshots for a project, newest first.
func (r *SQLiteRepository) ListEstimates(ctx context.Context, projectID string) ([]Estimate, error) {
	const query = `SELECT id, project_id, devices, schedule, compliance, takeoff, created_at
		FROM project_estimates WHERE project_id = ?
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("querying estimates: %w", err)
	}
	defer rows.Close()

	var out []Estimate
	for rows.Next() {
		e, err := scanEstimateRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning estimate row: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating estimate rows: %w", err)
	}
	return out, nil
}

// scanProject scans a single row into a Project (for QueryRow).
func scanProject(row *sql.Row) (*Project, error) {
	var p Project
	var dwelling string
	var createdAt, updatedAt string

	err := row.Scan(&p.ID, &p.Name, &p.Address, &dwelling, &p.TotalSqFt, &p.Notes,
		&createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	p.DwellingType = schedule.DwellingType(dwelling)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

// scanProjectRow scans a project from a Rows cursor.
func scanProjectRow(rows *sql.Rows) (*Project, error) {
	var p Project
	var dwelling string
	var createdAt, updatedAt string

	err := rows.Scan(&p.ID, &p.Name, &p.Address, &dwelling, &p.TotalSqFt, &p.Notes,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning project row: %w", err)
	}
	p.DwellingType = schedule.DwellingType(dwelling)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

// scanRoomRow scans a room from a Rows cursor.
func scanRoomRow(rows *sql.Rows) (*Room, error) {
	var rm Room
	var roomType, location string
	var createdAt string

	err := rows.Scan(&rm.ID, &rm.ProjectID, &roomType, &rm.RoomName, &rm.FloorLevel,
		&rm.ApproxAreaSqFt, &rm.HasSink, &rm.HasBathtubShower, &rm.WallCount,
		&rm.Confidence, &location, &rm.SortOrder, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("scanning room row: %w", err)
	}
	rm.RoomType = cec.RoomType(roomType)
	rm.Location = parseLocation(location)
	rm.CreatedAt = parseTime(createdAt)
	return &rm, nil
}

// scanEstimate scans a single row into an Estimate (for QueryRow).
func scanEstimate(row *sql.Row) (*Estimate, error) {
	var e Estimate
	var devices string
	var sched, comp, takeoff sql.NullString
	var createdAt string

	err := row.Scan(&e.ID, &e.ProjectID, &devices, &sched, &comp, &takeoff, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEstimateNotFound
		}
		return nil, fmt.Errorf("scanning estimate: %w", err)
	}
	if err := decodeEstimate(&e, devices, sched, comp, takeoff); err != nil {
		return nil, err
	}
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// scanEstimateRow scans an estimate from a Rows cursor.
func scanEstimateRow(rows *sql.Rows) (*Estimate, error) {
	var e Estimate
	var devices string
	var sched, comp, takeoff sql.NullString
	var createdAt string

	err := rows.Scan(&e.ID, &e.ProjectID, &devices, &sched, &comp, &takeoff, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("scanning estimate row: %w", err)
	}
	if err := decodeEstimate(&e, devices, sched, comp, takeoff); err != nil {
		return nil, err
	}
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// decodeEstimate unmarshals the JSON columns of an estimate row.
func decodeEstimate(e *Estimate, devices string, sched, comp, takeoff sql.NullString) error {
	if err := json.Unmarshal([]byte(devices), &e.Devices); err != nil {
		return fmt.Errorf("decoding devices for estimate %s: %w", e.ID, err)
	}
	if sched.Valid && sched.String != "" {
		if err := json.Unmarshal([]byte(sched.String), &e.Schedule); err != nil {
			return fmt.Errorf("decoding schedule for estimate %s: %w", e.ID, err)
		}
	}
	if comp.Valid && comp.String != "" {
		if err := json.Unmarshal([]byte(comp.String), &e.Compliance); err != nil {
			return fmt.Errorf("decoding compliance for estimate %s: %w", e.ID, err)
		}
	}
	if takeoff.Valid && takeoff.String != "" {
		if err := json.Unmarshal([]byte(takeoff.String), &e.Takeoff); err != nil {
			return fmt.Errorf("decoding takeoff for estimate %s: %w", e.ID, err)
		}
	}
	return nil
}

// marshalOrNull encodes a pointer value to JSON, or NULL when nil.
func marshalOrNull(v any) (sql.NullString, error) {
	switch t := v.(type) {
	case nil:
		return sql.NullString{}, nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return sql.NullString{}, err
		}
		if string(b) == "null" {
			return sql.NullString{}, nil
		}
		return sql.NullString{String: string(b), Valid: true}, nil
	}
}

// parseLocation deserializes a JSON coordinate array.
func parseLocation(s string) []float64 {
	if s == "" || s == "[]" {
		return nil
	}
	var loc []float64
	if err := json.Unmarshal([]byte(s), &loc); err != nil {
		return nil
	}
	return loc
}

// parseTime parses an ISO 8601 timestamp from SQLite.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05Z", s)
		if err != nil {
			return time.Time{}
		}
	}
	return t
}
