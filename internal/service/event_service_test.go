package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type eventRepoStub struct {
	listCalls   int
	created     *models.Event
	createdTx   []models.CurriculumEntry
	plainCreate bool
	updateErr   error
}

func (s *eventRepoStub) List(ctx context.Context, school models.School, department string) ([]models.Event, error) {
	s.listCalls++
	return []models.Event{}, nil
}

func (s *eventRepoStub) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	return nil, sql.ErrNoRows
}

func (s *eventRepoStub) Create(ctx context.Context, event *models.Event) error {
	s.plainCreate = true
	s.created = event
	event.ID = 1
	return nil
}

func (s *eventRepoStub) Update(ctx context.Context, event *models.Event) error {
	return s.updateErr
}

func (s *eventRepoStub) Delete(ctx context.Context, id int64) error {
	return nil
}

func (s *eventRepoStub) ListWithCurriculum(ctx context.Context, school models.School, department string) ([]models.Event, error) {
	s.listCalls++
	return []models.Event{}, nil
}

func (s *eventRepoStub) CreateWithCurriculum(ctx context.Context, event *models.Event, entries []models.CurriculumEntry) error {
	s.created = event
	s.createdTx = entries
	event.ID = 1
	return nil
}

func (s *eventRepoStub) UpdateWithCurriculum(ctx context.Context, event *models.Event, entries []models.CurriculumEntry) error {
	return s.updateErr
}

func TestEventServiceRejectsUnknownSchool(t *testing.T) {
	repo := &eventRepoStub{}
	svc := NewEventService(repo, nil, nil, nil)

	_, err := svc.ListWithCurriculum(context.Background(), "whs", "master")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Contains(t, appErrors.FromError(err).Message, "wlhs, wvhs")
	assert.Zero(t, repo.listCalls, "repository must not be touched for an unknown school")
}

func TestEventServiceCreateNormalizesDate(t *testing.T) {
	repo := &eventRepoStub{}
	svc := NewEventService(repo, nil, nil, nil)

	event, err := svc.Create(context.Background(), "wlhs", EventRequest{
		Date:  "2025-06-01T00:00:00Z",
		Title: "Graduation",
	})
	require.NoError(t, err)
	assert.True(t, repo.plainCreate, "payload without curriculum skips the transactional path")
	assert.Equal(t, "2025-06-01", event.Date.String())
	require.NotNil(t, event.Curriculum, "created events carry an empty list, never nil")
	assert.Empty(t, event.Curriculum)
}

func TestEventServiceCreateWithCurriculum(t *testing.T) {
	repo := &eventRepoStub{}
	svc := NewEventService(repo, nil, nil, nil)

	links := "https://example.test/syllabus"
	_, err := svc.Create(context.Background(), "wvhs", EventRequest{
		Date:  "2025-09-02",
		Title: "First Day",
		Curriculum: map[string]CurriculumInput{
			"11": {Links: &links},
			"9":  {},
		},
	})
	require.NoError(t, err)
	require.Len(t, repo.createdTx, 2)
	assert.Equal(t, 9, repo.createdTx[0].Grade)
	assert.Equal(t, 11, repo.createdTx[1].Grade)
}

func TestEventServiceCreateRejectsBadGrade(t *testing.T) {
	svc := NewEventService(&eventRepoStub{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), "wlhs", EventRequest{
		Date:       "2025-09-02",
		Title:      "First Day",
		Curriculum: map[string]CurriculumInput{"13": {}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEventServiceCreateRequiresTitle(t *testing.T) {
	svc := NewEventService(&eventRepoStub{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), "wlhs", EventRequest{Date: "2025-09-02"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEventServiceUpdateMissingEvent(t *testing.T) {
	repo := &eventRepoStub{updateErr: sql.ErrNoRows}
	svc := NewEventService(repo, nil, nil, nil)

	_, err := svc.Update(context.Background(), "wlhs", 42, EventRequest{
		Date:  "2025-09-02",
		Title: "First Day",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEventServiceObservesQueryDurations(t *testing.T) {
	metrics := NewMetricsService()
	repo := &eventRepoStub{}
	svc := NewEventService(repo, nil, metrics, nil)

	_, err := svc.ListWithCurriculum(context.Background(), "wlhs", "master")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "wlhs", EventRequest{
		Date:  "2025-09-02",
		Title: "First Day",
	})
	require.NoError(t, err)

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(2), snap.DBQueryCount)
}
