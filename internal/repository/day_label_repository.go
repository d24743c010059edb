package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wlsd/calendar-api/internal/models"
)

// DayLabelRepository persists A/B day labels. At most one row exists per
// school and date; clearing deletes the row.
type DayLabelRepository struct {
	pool Pool
}

// NewDayLabelRepository constructs the repository.
func NewDayLabelRepository(pool Pool) *DayLabelRepository {
	return &DayLabelRepository{pool: pool}
}

// List returns every labeled date for a school in date order.
func (r *DayLabelRepository) List(ctx context.Context, school models.School) ([]models.DayLabel, error) {
	db, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}

	const query = `SELECT school, label_date, label, updated_at FROM day_labels
WHERE school = $1 ORDER BY label_date ASC`
	labels := []models.DayLabel{}
	if err := db.SelectContext(ctx, &labels, query, school); err != nil {
		return nil, fmt.Errorf("list day labels: %w", err)
	}
	return labels, nil
}

// Upsert writes the label for a date. Repeating the same write is idempotent:
// the unique (school, label_date) key turns it into an update that refreshes
// updated_at.
func (r *DayLabelRepository) Upsert(ctx context.Context, label *models.DayLabel) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	label.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO day_labels (school, label_date, label, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (school, label_date)
DO UPDATE SET label = EXCLUDED.label, updated_at = EXCLUDED.updated_at`
	if _, err := db.ExecContext(ctx, query, label.School, label.Date, label.Label, label.UpdatedAt); err != nil {
		return fmt.Errorf("upsert day label: %w", err)
	}
	return nil
}

// Clear removes the label for a date. A date with no row is already clear.
func (r *DayLabelRepository) Clear(ctx context.Context, school models.School, date models.Date) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	const query = "DELETE FROM day_labels WHERE school = $1 AND label_date = $2"
	if _, err := db.ExecContext(ctx, query, school, date); err != nil {
		return fmt.Errorf("clear day label: %w", err)
	}
	return nil
}
