package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wlsd/calendar-api/internal/models"
)

// SettingsRepository persists per-school style documents.
type SettingsRepository struct {
	pool Pool
}

// NewSettingsRepository constructs the repository.
func NewSettingsRepository(pool Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Get fetches the stored document. Missing rows surface as sql.ErrNoRows so
// the service can substitute the defaults.
func (r *SettingsRepository) Get(ctx context.Context, school models.School) (*models.SchoolSettings, error) {
	db, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}

	const query = "SELECT school, document, updated_at FROM school_settings WHERE school = $1"
	var settings models.SchoolSettings
	if err := db.GetContext(ctx, &settings, query, school); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert writes the document, replacing any previous one for the school.
func (r *SettingsRepository) Upsert(ctx context.Context, settings *models.SchoolSettings) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	settings.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO school_settings (school, document, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (school)
DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`
	if _, err := db.ExecContext(ctx, query, settings.School, []byte(settings.Document), settings.UpdatedAt); err != nil {
		return fmt.Errorf("upsert school settings: %w", err)
	}
	return nil
}
