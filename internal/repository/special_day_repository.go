package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wlsd/calendar-api/internal/models"
)

// SpecialDayRepository persists special day types keyed by school and date.
type SpecialDayRepository struct {
	pool Pool
}

// NewSpecialDayRepository constructs the repository.
func NewSpecialDayRepository(pool Pool) *SpecialDayRepository {
	return &SpecialDayRepository{pool: pool}
}

// List returns every flagged date for a school in date order.
func (r *SpecialDayRepository) List(ctx context.Context, school models.School) ([]models.SpecialDay, error) {
	db, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}

	const query = `SELECT school, day_date, day_type, description, updated_at FROM special_days
WHERE school = $1 ORDER BY day_date ASC`
	days := []models.SpecialDay{}
	if err := db.SelectContext(ctx, &days, query, school); err != nil {
		return nil, fmt.Errorf("list special days: %w", err)
	}
	return days, nil
}

// Upsert writes the day type for a date, updating in place when the unique
// (school, day_date) key already exists.
func (r *SpecialDayRepository) Upsert(ctx context.Context, day *models.SpecialDay) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	day.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO special_days (school, day_date, day_type, description, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (school, day_date)
DO UPDATE SET day_type = EXCLUDED.day_type, description = EXCLUDED.description, updated_at = EXCLUDED.updated_at`
	if _, err := db.ExecContext(ctx, query, day.School, day.Date, day.Type, day.Description, day.UpdatedAt); err != nil {
		return fmt.Errorf("upsert special day: %w", err)
	}
	return nil
}

// Clear removes the flag for a date. Absence of the row is the normal state.
func (r *SpecialDayRepository) Clear(ctx context.Context, school models.School, date models.Date) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	const query = "DELETE FROM special_days WHERE school = $1 AND day_date = $2"
	if _, err := db.ExecContext(ctx, query, school, date); err != nil {
		return fmt.Errorf("clear special day: %w", err)
	}
	return nil
}
