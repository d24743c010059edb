package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wlsd/calendar-api/internal/models"
)

// EventRepository persists calendar events and their curriculum entries.
type EventRepository struct {
	pool Pool
}

// NewEventRepository constructs an event repository.
func NewEventRepository(pool Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = "id, school, event_date, title, time_of_day, department, description, created_at, updated_at"

// List returns a school's events, optionally narrowed to one department.
// The "master" sentinel disables the department filter.
func (r *EventRepository) List(ctx context.Context, school models.School, department string) ([]models.Event, error) {
	db, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM events WHERE school = $1", eventColumns)
	args := []interface{}{school}
	if department != "" && department != models.DepartmentAll {
		query += " AND department = $2"
		args = append(args, department)
	}
	query += " ORDER BY event_date ASC, id ASC"

	events := []models.Event{}
	if err := db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	for i := range events {
		events[i].Curriculum = []models.CurriculumEntry{}
	}
	return events, nil
}

// GetByID fetches one event.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	db, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM events WHERE id = $1", eventColumns)
	var event models.Event
	if err := db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	event.Curriculum = []models.CurriculumEntry{}
	return &event, nil
}

// Create inserts an event without curriculum entries.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	const query = `INSERT INTO events (school, event_date, title, time_of_day, department, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := db.QueryRowxContext(ctx, query,
		event.School, event.Date, event.Title, event.TimeOfDay, event.Department, event.Description,
		event.CreatedAt, event.UpdatedAt,
	).Scan(&event.ID); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// Update modifies an event. Missing rows surface as sql.ErrNoRows.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	event.UpdatedAt = time.Now().UTC()
	const query = `UPDATE events SET event_date = $1, title = $2, time_of_day = $3, department = $4, description = $5, updated_at = $6
WHERE id = $7 AND school = $8`
	res, err := db.ExecContext(ctx, query,
		event.Date, event.Title, event.TimeOfDay, event.Department, event.Description, event.UpdatedAt,
		event.ID, event.School,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an event; curriculum entries cascade with it.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// eventCurriculumRow is the flattened shape of the curriculum left join.
type eventCurriculumRow struct {
	models.Event
	CurriculumID          *int64  `db:"curriculum_id"`
	CurriculumGrade       *int    `db:"curriculum_grade"`
	CurriculumLinks       *string `db:"curriculum_links"`
	CurriculumDescription *string `db:"curriculum_description"`
}

// ListWithCurriculum returns events with their curriculum entries aggregated,
// ordered by grade. Events without entries carry an empty list.
func (r *EventRepository) ListWithCurriculum(ctx context.Context, school models.School, department string) ([]models.Event, error) {
	db, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}

	query := `SELECT e.id, e.school, e.event_date, e.title, e.time_of_day, e.department, e.description, e.created_at, e.updated_at,
c.id AS curriculum_id, c.grade AS curriculum_grade, c.links AS curriculum_links, c.description AS curriculum_description
FROM events e LEFT JOIN event_curriculum c ON c.event_id = e.id
WHERE e.school = $1`
	args := []interface{}{school}
	if department != "" && department != models.DepartmentAll {
		query += " AND e.department = $2"
		args = append(args, department)
	}
	query += " ORDER BY e.event_date ASC, e.id ASC, c.grade ASC"

	var rows []eventCurriculumRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events with curriculum: %w", err)
	}

	events := []models.Event{}
	index := map[int64]int{}
	for _, row := range rows {
		pos, seen := index[row.Event.ID]
		if !seen {
			event := row.Event
			event.Curriculum = []models.CurriculumEntry{}
			events = append(events, event)
			pos = len(events) - 1
			index[row.Event.ID] = pos
		}
		if row.CurriculumID != nil {
			events[pos].Curriculum = append(events[pos].Curriculum, models.CurriculumEntry{
				ID:          *row.CurriculumID,
				EventID:     row.Event.ID,
				Grade:       *row.CurriculumGrade,
				Links:       row.CurriculumLinks,
				Description: row.CurriculumDescription,
			})
		}
	}
	return events, nil
}

// CreateWithCurriculum inserts the event and its curriculum entries in one
// transaction; any failure rolls the whole write back.
func (r *EventRepository) CreateWithCurriculum(ctx context.Context, event *models.Event, entries []models.CurriculumEntry) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin event tx: %w", err)
	}

	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	const insertEvent = `INSERT INTO events (school, event_date, title, time_of_day, department, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := tx.QueryRowxContext(ctx, insertEvent,
		event.School, event.Date, event.Title, event.TimeOfDay, event.Department, event.Description,
		event.CreatedAt, event.UpdatedAt,
	).Scan(&event.ID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("create event: %w", err)
	}

	if err := insertCurriculum(ctx, tx, event.ID, entries); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit event tx: %w", err)
	}
	event.Curriculum = entriesForEvent(event.ID, entries)
	return nil
}

// UpdateWithCurriculum rewrites the event and fully replaces its curriculum
// entries in one transaction. Missing rows surface as sql.ErrNoRows.
func (r *EventRepository) UpdateWithCurriculum(ctx context.Context, event *models.Event, entries []models.CurriculumEntry) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin event tx: %w", err)
	}

	event.UpdatedAt = time.Now().UTC()
	const updateEvent = `UPDATE events SET event_date = $1, title = $2, time_of_day = $3, department = $4, description = $5, updated_at = $6
WHERE id = $7 AND school = $8`
	res, err := tx.ExecContext(ctx, updateEvent,
		event.Date, event.Title, event.TimeOfDay, event.Department, event.Description, event.UpdatedAt,
		event.ID, event.School,
	)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update event: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		_ = tx.Rollback()
		return sql.ErrNoRows
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM event_curriculum WHERE event_id = $1", event.ID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear curriculum: %w", err)
	}
	if err := insertCurriculum(ctx, tx, event.ID, entries); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit event tx: %w", err)
	}
	event.Curriculum = entriesForEvent(event.ID, entries)
	return nil
}

// GetCurriculumEntry fetches a single curriculum entry.
func (r *EventRepository) GetCurriculumEntry(ctx context.Context, id int64) (*models.CurriculumEntry, error) {
	db, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}

	const query = "SELECT id, event_id, grade, links, description FROM event_curriculum WHERE id = $1"
	var entry models.CurriculumEntry
	if err := db.GetContext(ctx, &entry, query, id); err != nil {
		return nil, err
	}
	return &entry, nil
}

type curriculumExecer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func insertCurriculum(ctx context.Context, tx curriculumExecer, eventID int64, entries []models.CurriculumEntry) error {
	const query = "INSERT INTO event_curriculum (event_id, grade, links, description) VALUES ($1, $2, $3, $4)"
	for _, entry := range entries {
		if _, err := tx.ExecContext(ctx, query, eventID, entry.Grade, entry.Links, entry.Description); err != nil {
			return fmt.Errorf("insert curriculum entry: %w", err)
		}
	}
	return nil
}

func entriesForEvent(eventID int64, entries []models.CurriculumEntry) []models.CurriculumEntry {
	out := make([]models.CurriculumEntry, len(entries))
	copy(out, entries)
	for i := range out {
		out[i].EventID = eventID
	}
	return out
}
