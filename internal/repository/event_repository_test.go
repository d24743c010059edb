package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlsd/calendar-api/internal/models"
)

func newRepoMock(t *testing.T) (Pool, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return StaticPool{DB: sqlx.NewDb(db, "sqlmock")}, mock, func() { db.Close() }
}

func TestEventRepositoryListWithCurriculumAggregates(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(pool)

	now := time.Now()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "school", "event_date", "title", "time_of_day", "department", "description", "created_at", "updated_at",
		"curriculum_id", "curriculum_grade", "curriculum_links", "curriculum_description"}
	rows := sqlmock.NewRows(columns).
		AddRow(1, "wlhs", date, "Finals Review", nil, "math", nil, now, now, int64(10), 9, "http://x", nil).
		AddRow(1, "wlhs", date, "Finals Review", nil, "math", nil, now, now, int64(11), 11, nil, "y").
		AddRow(2, "wlhs", date, "Assembly", nil, nil, nil, now, now, nil, nil, nil, nil)
	mock.ExpectQuery("SELECT e.id, e.school").WithArgs("wlhs").WillReturnRows(rows)

	events, err := repo.ListWithCurriculum(context.Background(), models.SchoolWLHS, models.DepartmentAll)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Len(t, events[0].Curriculum, 2)
	assert.Equal(t, 9, events[0].Curriculum[0].Grade)
	assert.Equal(t, 11, events[0].Curriculum[1].Grade)

	// an event without entries still carries a list, never nil
	require.NotNil(t, events[1].Curriculum)
	assert.Empty(t, events[1].Curriculum)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryListFiltersDepartment(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(pool)

	now := time.Now()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "school", "event_date", "title", "time_of_day", "department", "description", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT id, school, event_date").
		WithArgs("wlhs", "science").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(3, "wlhs", date, "Science Fair", nil, "science", nil, now, now))

	events, err := repo.List(context.Background(), models.SchoolWLHS, "science")
	require.NoError(t, err)
	require.Len(t, events, 1)

	// flat reads skip the join but still carry a list, never nil
	require.NotNil(t, events[0].Curriculum)
	assert.Empty(t, events[0].Curriculum)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryCreateWithCurriculumCommits(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(pool)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO events").
		WithArgs("wlhs", sqlmock.AnyArg(), "Finals Review", nil, nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec("INSERT INTO event_curriculum").
		WithArgs(int64(7), 9, "http://x", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	links := "http://x"
	event := &models.Event{School: models.SchoolWLHS, Date: models.NewDate(time.Now()), Title: "Finals Review"}
	err := repo.CreateWithCurriculum(context.Background(), event, []models.CurriculumEntry{{Grade: 9, Links: &links}})
	require.NoError(t, err)
	assert.Equal(t, int64(7), event.ID)
	require.Len(t, event.Curriculum, 1)
	assert.Equal(t, int64(7), event.Curriculum[0].EventID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryUpdateWithCurriculumRollsBackOnChildFailure(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(pool)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE events SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM event_curriculum").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO event_curriculum").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	event := &models.Event{ID: 7, School: models.SchoolWLHS, Date: models.NewDate(time.Now()), Title: "Finals Review"}
	err := repo.UpdateWithCurriculum(context.Background(), event, []models.CurriculumEntry{{Grade: 10}})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryUpdateMissingRow(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(pool)

	mock.ExpectExec("UPDATE events SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	event := &models.Event{ID: 99, School: models.SchoolWLHS, Date: models.NewDate(time.Now()), Title: "Gone"}
	err := repo.Update(context.Background(), event)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestEventRepositoryDeleteMissingRow(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(pool)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 42), sql.ErrNoRows)
}

func TestEventRepositoryDeleteCascadesCurriculum(t *testing.T) {
	pool, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(pool)

	entryColumns := []string{"id", "event_id", "grade", "links", "description"}
	mock.ExpectQuery("SELECT id, event_id, grade").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(entryColumns).AddRow(int64(10), int64(1), 9, "http://x", nil))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, event_id, grade").
		WithArgs(int64(10)).
		WillReturnError(sql.ErrNoRows)

	entry, err := repo.GetCurriculumEntry(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.EventID)
	assert.Equal(t, 9, entry.Grade)

	require.NoError(t, repo.Delete(context.Background(), 1))

	_, err = repo.GetCurriculumEntry(context.Background(), 10)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
