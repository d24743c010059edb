package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlsd/calendar-api/internal/models"
)

func TestDayLabelRepositoryUpsertUsesConflictKey(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDayLabelRepository(pool)

	mock.ExpectExec("INSERT INTO day_labels .*ON CONFLICT \\(school, label_date\\)").
		WithArgs("wlhs", sqlmock.AnyArg(), "A", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	label := &models.DayLabel{School: models.SchoolWLHS, Date: models.NewDate(time.Now()), Label: models.DayLabelA}
	require.NoError(t, repo.Upsert(context.Background(), label))
	assert.False(t, label.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDayLabelRepositoryClear(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDayLabelRepository(pool)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM day_labels WHERE school = $1 AND label_date = $2")).
		WithArgs("wlhs", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// clearing an unlabeled date succeeds
	require.NoError(t, repo.Clear(context.Background(), models.SchoolWLHS, models.NewDate(time.Now())))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDayLabelRepositoryList(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDayLabelRepository(pool)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"school", "label_date", "label", "updated_at"}).
		AddRow("wlhs", date, "A", time.Now())
	mock.ExpectQuery("SELECT school, label_date, label, updated_at FROM day_labels").
		WithArgs("wlhs").
		WillReturnRows(rows)

	labels, err := repo.List(context.Background(), models.SchoolWLHS)
	require.NoError(t, err)
	require.Len(t, labels, 1)
	assert.Equal(t, "2025-06-01", labels[0].Date.String())
	assert.Equal(t, "A", labels[0].Label)
}
