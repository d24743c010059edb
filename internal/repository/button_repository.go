package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wlsd/calendar-api/internal/models"
)

// ButtonRepository persists home-page buttons, one per school.
type ButtonRepository struct {
	pool Pool
}

// NewButtonRepository constructs the repository.
func NewButtonRepository(pool Pool) *ButtonRepository {
	return &ButtonRepository{pool: pool}
}

const buttonColumns = "school, title, image_data, image_mime, updated_at"

// List returns every school's button.
func (r *ButtonRepository) List(ctx context.Context) ([]models.HomeButton, error) {
	db, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM home_buttons ORDER BY school ASC", buttonColumns)
	buttons := []models.HomeButton{}
	if err := db.SelectContext(ctx, &buttons, query); err != nil {
		return nil, fmt.Errorf("list home buttons: %w", err)
	}
	return buttons, nil
}

// Get fetches one school's button. Missing rows surface as sql.ErrNoRows.
func (r *ButtonRepository) Get(ctx context.Context, school models.School) (*models.HomeButton, error) {
	db, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM home_buttons WHERE school = $1", buttonColumns)
	var button models.HomeButton
	if err := db.GetContext(ctx, &button, query, school); err != nil {
		return nil, err
	}
	return &button, nil
}

// Upsert writes the button, replacing the school's previous row.
func (r *ButtonRepository) Upsert(ctx context.Context, button *models.HomeButton) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	button.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO home_buttons (school, title, image_data, image_mime, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (school)
DO UPDATE SET title = EXCLUDED.title, image_data = EXCLUDED.image_data, image_mime = EXCLUDED.image_mime, updated_at = EXCLUDED.updated_at`
	if _, err := db.ExecContext(ctx, query, button.School, button.Title, button.ImageData, button.ImageMime, button.UpdatedAt); err != nil {
		return fmt.Errorf("upsert home button: %w", err)
	}
	return nil
}
