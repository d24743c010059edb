package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlsd/calendar-api/internal/models"
)

func TestSpecialDayRepositoryUpsert(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSpecialDayRepository(pool)

	mock.ExpectExec("INSERT INTO special_days .*ON CONFLICT \\(school, day_date\\)").
		WithArgs("wlhs", sqlmock.AnyArg(), "finals", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	day := &models.SpecialDay{School: models.SchoolWLHS, Date: models.NewDate(time.Now()), Type: "finals"}
	require.NoError(t, repo.Upsert(context.Background(), day))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpecialDayRepositoryClear(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSpecialDayRepository(pool)

	mock.ExpectExec("DELETE FROM special_days WHERE school").
		WithArgs("wlhs", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Clear(context.Background(), models.SchoolWLHS, models.NewDate(time.Now())))
}
