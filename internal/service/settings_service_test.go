package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type settingsRepoStub struct {
	stored   *models.SchoolSettings
	upserted *models.SchoolSettings
}

func (s *settingsRepoStub) Get(ctx context.Context, school models.School) (*models.SchoolSettings, error) {
	if s.stored == nil {
		return nil, sql.ErrNoRows
	}
	return s.stored, nil
}

func (s *settingsRepoStub) Upsert(ctx context.Context, settings *models.SchoolSettings) error {
	s.upserted = settings
	return nil
}

func TestSettingsServiceGetFallsBackToDefaults(t *testing.T) {
	svc := NewSettingsService(&settingsRepoStub{}, nil, nil)

	settings, err := svc.Get(context.Background(), "wlhs")
	require.NoError(t, err)
	assert.JSONEq(t, string(models.DefaultSettingsDocument()), string(settings.Document))
}

func TestSettingsServiceGetStoredDocument(t *testing.T) {
	stored := &models.SchoolSettings{
		School:   models.SchoolWVHS,
		Document: json.RawMessage(`{"theme":"dark"}`),
	}
	svc := NewSettingsService(&settingsRepoStub{stored: stored}, nil, nil)

	settings, err := svc.Get(context.Background(), "wvhs")
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(settings.Document))
}

func TestSettingsServicePutRejectsInvalidJSON(t *testing.T) {
	repo := &settingsRepoStub{}
	svc := NewSettingsService(repo, nil, nil)

	_, err := svc.Put(context.Background(), "wlhs", json.RawMessage(`{"theme":`))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Nil(t, repo.upserted)
}

func TestSettingsServicePut(t *testing.T) {
	repo := &settingsRepoStub{}
	svc := NewSettingsService(repo, nil, nil)

	_, err := svc.Put(context.Background(), "wlhs", json.RawMessage(`{"theme":"light"}`))
	require.NoError(t, err)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, models.SchoolWLHS, repo.upserted.School)
}
