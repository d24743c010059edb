package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlsd/calendar-api/internal/models"
)

func TestSessionRepositoryInsertSweepsExpired(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(pool)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM admin_sessions WHERE expires_at <= $1")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO admin_sessions").
		WithArgs("tok-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now().UTC()
	session := &models.AdminSession{Token: "tok-1", CreatedAt: now, ExpiresAt: now.Add(8 * time.Hour)}
	require.NoError(t, repo.Insert(context.Background(), session))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryFindMissing(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(pool)

	mock.ExpectQuery("SELECT token, created_at, expires_at FROM admin_sessions").
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSessionRepositoryDeleteAbsentTokenIsNotAnError(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(pool)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM admin_sessions WHERE token = $1")).
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "gone"))
}
