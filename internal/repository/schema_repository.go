package repository

import (
	"context"
	"fmt"
)

// SchemaRepository owns the idempotent DDL behind /api/init and the
// destructive clear-all operation.
type SchemaRepository struct {
	pool Pool
}

// NewSchemaRepository constructs the repository.
func NewSchemaRepository(pool Pool) *SchemaRepository {
	return &SchemaRepository{pool: pool}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id SERIAL PRIMARY KEY,
		school TEXT NOT NULL,
		event_date DATE NOT NULL,
		title TEXT NOT NULL,
		time_of_day TEXT,
		department TEXT,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS event_curriculum (
		id SERIAL PRIMARY KEY,
		event_id INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		grade INTEGER NOT NULL CHECK (grade BETWEEN 9 AND 12),
		links TEXT,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS day_labels (
		school TEXT NOT NULL,
		label_date DATE NOT NULL,
		label TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (school, label_date)
	)`,
	`CREATE TABLE IF NOT EXISTS special_days (
		school TEXT NOT NULL,
		day_date DATE NOT NULL,
		day_type TEXT NOT NULL,
		description TEXT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (school, day_date)
	)`,
	`CREATE TABLE IF NOT EXISTS materials (
		id SERIAL PRIMARY KEY,
		school TEXT NOT NULL,
		material_date DATE NOT NULL,
		grade INTEGER NOT NULL CHECK (grade BETWEEN 9 AND 12),
		title TEXT NOT NULL,
		link TEXT,
		description TEXT,
		password TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS school_settings (
		school TEXT PRIMARY KEY,
		document JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS banners (
		school TEXT PRIMARY KEY,
		message TEXT NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT FALSE,
		text_size TEXT NOT NULL DEFAULT 'medium',
		text_color TEXT NOT NULL DEFAULT '#ffffff',
		background_color TEXT NOT NULL DEFAULT '#00471b',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS custom_links (
		id SERIAL PRIMARY KEY,
		school TEXT NOT NULL,
		position TEXT NOT NULL,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		sort_index INTEGER NOT NULL DEFAULT 0,
		text_color TEXT NOT NULL DEFAULT '#ffffff',
		background_color TEXT NOT NULL DEFAULT '#00471b',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS home_buttons (
		school TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		image_data TEXT,
		image_mime TEXT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS admin_sessions (
		token TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at TIMESTAMPTZ NOT NULL
	)`,
}

// dataTables lists every table wiped by ClearAll, children before parents.
var dataTables = []string{
	"event_curriculum",
	"events",
	"day_labels",
	"special_days",
	"materials",
	"school_settings",
	"banners",
	"custom_links",
	"home_buttons",
	"admin_sessions",
}

// Init creates the schema when absent. Safe to call repeatedly.
func (r *SchemaRepository) Init(ctx context.Context) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// ClearAll wipes every table inside one transaction.
func (r *SchemaRepository) ClearAll(ctx context.Context) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear-all tx: %w", err)
	}
	for _, table := range dataTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear-all tx: %w", err)
	}
	return nil
}
