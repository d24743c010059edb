package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wlsd/calendar-api/internal/models"
)

// SessionRepository persists admin sessions. Expired rows are swept
// opportunistically when a new session is inserted; there is no background
// timer.
type SessionRepository struct {
	pool Pool
}

// NewSessionRepository constructs the repository.
func NewSessionRepository(pool Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Insert stores a freshly issued session and sweeps rows already past expiry.
func (r *SessionRepository) Insert(ctx context.Context, session *models.AdminSession) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, "DELETE FROM admin_sessions WHERE expires_at <= $1", time.Now().UTC()); err != nil {
		return fmt.Errorf("sweep expired sessions: %w", err)
	}

	const query = "INSERT INTO admin_sessions (token, created_at, expires_at) VALUES ($1, $2, $3)"
	if _, err := db.ExecContext(ctx, query, session.Token, session.CreatedAt, session.ExpiresAt); err != nil {
		return fmt.Errorf("insert admin session: %w", err)
	}
	return nil
}

// Find fetches a session by token. Missing rows surface as sql.ErrNoRows.
func (r *SessionRepository) Find(ctx context.Context, token string) (*models.AdminSession, error) {
	db, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}

	const query = "SELECT token, created_at, expires_at FROM admin_sessions WHERE token = $1"
	var session models.AdminSession
	if err := db.GetContext(ctx, &session, query, token); err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete revokes a session. Deleting an absent token is not an error.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	db, err := r.pool.Acquire()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, "DELETE FROM admin_sessions WHERE token = $1", token); err != nil {
		return fmt.Errorf("delete admin session: %w", err)
	}
	return nil
}
