package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type specialDayRepoStub struct {
	upserted *models.SpecialDay
	cleared  *models.Date
}

func (s *specialDayRepoStub) List(ctx context.Context, school models.School) ([]models.SpecialDay, error) {
	return []models.SpecialDay{}, nil
}

func (s *specialDayRepoStub) Upsert(ctx context.Context, day *models.SpecialDay) error {
	s.upserted = day
	return nil
}

func (s *specialDayRepoStub) Clear(ctx context.Context, school models.School, date models.Date) error {
	s.cleared = &date
	return nil
}

func TestSpecialDayServiceSet(t *testing.T) {
	repo := &specialDayRepoStub{}
	svc := NewSpecialDayService(repo, nil, nil)

	day, err := svc.Set(context.Background(), "wvhs", "2025-06-09", "finals", nil)
	require.NoError(t, err)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, "finals", day.Type)
}

func TestSpecialDayServiceNormalClears(t *testing.T) {
	for _, sentinel := range []string{"normal", ""} {
		repo := &specialDayRepoStub{}
		svc := NewSpecialDayService(repo, nil, nil)

		day, err := svc.Set(context.Background(), "wvhs", "2025-06-09", sentinel, nil)
		require.NoError(t, err)
		assert.Nil(t, day)
		require.NotNil(t, repo.cleared)
		assert.Nil(t, repo.upserted)
	}
}

func TestSpecialDayServiceRejectsUnknownType(t *testing.T) {
	repo := &specialDayRepoStub{}
	svc := NewSpecialDayService(repo, nil, nil)

	_, err := svc.Set(context.Background(), "wvhs", "2025-06-09", "snow-day", nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Nil(t, repo.upserted)
}
