package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wlsd/calendar-api/internal/models"
)

// MaterialRepository persists supplementary materials.
type MaterialRepository struct {
	pool Pool
}

// NewMaterialRepository constructs the repository.
func NewMaterialRepository(pool Pool) *MaterialRepository {
	return &MaterialRepository{pool: pool}
}

const materialColumns = "id, school, material_date, grade, title, link, description, password, created_at, updated_at"

// List returns a school's materials ordered by date then grade.
func (r *MaterialRepository) List(ctx context.Context, school models.School) ([]models.Material, error) {
	db, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM materials WHERE school = $1 ORDER BY material_date ASC, grade ASC, id ASC", materialColumns)
	materials := []models.Material{}
	if err := db.SelectContext(ctx, &materials, query, school); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return materials, nil
}

// Create inserts a material.
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	material.CreatedAt = now
	material.UpdatedAt = now
	const query = `INSERT INTO materials (school, material_date, grade, title, link, description, password, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := db.QueryRowxContext(ctx, query,
		material.School, material.Date, material.Grade, material.Title, material.Link,
		material.Description, material.Password, material.CreatedAt, material.UpdatedAt,
	).Scan(&material.ID); err != nil {
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}

// Update modifies a material. Missing rows surface as sql.ErrNoRows.
func (r *MaterialRepository) Update(ctx context.Context, material *models.Material) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	material.UpdatedAt = time.Now().UTC()
	const query = `UPDATE materials SET material_date = $1, grade = $2, title = $3, link = $4, description = $5, password = $6, updated_at = $7
WHERE id = $8 AND school = $9`
	res, err := db.ExecContext(ctx, query,
		material.Date, material.Grade, material.Title, material.Link, material.Description,
		material.Password, material.UpdatedAt, material.ID, material.School,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a material. Missing rows surface as sql.ErrNoRows.
func (r *MaterialRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, "DELETE FROM materials WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
