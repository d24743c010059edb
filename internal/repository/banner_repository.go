package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wlsd/calendar-api/internal/models"
)

// BannerRepository persists the per-school announcement banner.
type BannerRepository struct {
	pool Pool
}

// NewBannerRepository constructs the repository.
func NewBannerRepository(pool Pool) *BannerRepository {
	return &BannerRepository{pool: pool}
}

// Get fetches the banner row. Missing rows surface as sql.ErrNoRows so the
// service can answer with the default "no banner" shape.
func (r *BannerRepository) Get(ctx context.Context, school models.School) (*models.Banner, error) {
	db, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}

	const query = `SELECT school, message, active, text_size, text_color, background_color, updated_at
FROM banners WHERE school = $1`
	var banner models.Banner
	if err := db.GetContext(ctx, &banner, query, school); err != nil {
		return nil, err
	}
	return &banner, nil
}

// Upsert writes the banner, replacing any previous row for the school.
func (r *BannerRepository) Upsert(ctx context.Context, banner *models.Banner) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	banner.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO banners (school, message, active, text_size, text_color, background_color, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (school)
DO UPDATE SET message = EXCLUDED.message, active = EXCLUDED.active, text_size = EXCLUDED.text_size,
              text_color = EXCLUDED.text_color, background_color = EXCLUDED.background_color, updated_at = EXCLUDED.updated_at`
	if _, err := db.ExecContext(ctx, query,
		banner.School, banner.Message, banner.Active, banner.TextSize, banner.TextColor, banner.BackgroundColor, banner.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upsert banner: %w", err)
	}
	return nil
}
