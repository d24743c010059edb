package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wlsd/calendar-api/internal/models"
)

// LinkRepository persists custom navigation links.
type LinkRepository struct {
	pool Pool
}

// NewLinkRepository constructs the repository.
func NewLinkRepository(pool Pool) *LinkRepository {
	return &LinkRepository{pool: pool}
}

const linkColumns = "id, school, position, title, url, sort_index, text_color, background_color, updated_at"

// List returns a school's links grouped by slot in manual order.
func (r *LinkRepository) List(ctx context.Context, school models.School) ([]models.CustomLink, error) {
	db, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM custom_links WHERE school = $1 ORDER BY position ASC, sort_index ASC, id ASC", linkColumns)
	links := []models.CustomLink{}
	if err := db.SelectContext(ctx, &links, query, school); err != nil {
		return nil, fmt.Errorf("list custom links: %w", err)
	}
	return links, nil
}

// Create inserts a link.
func (r *LinkRepository) Create(ctx context.Context, link *models.CustomLink) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	link.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO custom_links (school, position, title, url, sort_index, text_color, background_color, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := db.QueryRowxContext(ctx, query,
		link.School, link.Position, link.Title, link.URL, link.SortIndex,
		link.TextColor, link.BackgroundColor, link.UpdatedAt,
	).Scan(&link.ID); err != nil {
		return fmt.Errorf("create custom link: %w", err)
	}
	return nil
}

// Update modifies a link. Missing rows surface as sql.ErrNoRows.
func (r *LinkRepository) Update(ctx context.Context, link *models.CustomLink) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	link.UpdatedAt = time.Now().UTC()
	const query = `UPDATE custom_links SET position = $1, title = $2, url = $3, sort_index = $4, text_color = $5, background_color = $6, updated_at = $7
WHERE id = $8 AND school = $9`
	res, err := db.ExecContext(ctx, query,
		link.Position, link.Title, link.URL, link.SortIndex, link.TextColor, link.BackgroundColor,
		link.UpdatedAt, link.ID, link.School,
	)
	if err != nil {
		return fmt.Errorf("update custom link: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a link. Missing rows surface as sql.ErrNoRows.
func (r *LinkRepository) Delete(ctx context.Context, school models.School, id int64) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, "DELETE FROM custom_links WHERE id = $1 AND school = $2", id, school)
	if err != nil {
		return fmt.Errorf("delete custom link: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
