package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type settingsRepository interface {
	Get(ctx context.Context, school models.School) (*models.SchoolSettings, error)
	Upsert(ctx context.Context, settings *models.SchoolSettings) error
}

// SettingsService manages per-school style documents. A school without a
// stored document reads back the hardcoded defaults.
type SettingsService struct {
	repo   settingsRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewSettingsService constructs the service.
func NewSettingsService(repo settingsRepository, cache *CacheService, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, cache: cache, logger: logger}
}

// Get returns the stored document or the defaults when none exists.
func (s *SettingsService) Get(ctx context.Context, school string) (*models.SchoolSettings, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}

	cacheKey := "settings:" + school
	var cached models.SchoolSettings
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	settings, err := s.repo.Get(ctx, models.School(school))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.SchoolSettings{School: models.School(school), Document: models.DefaultSettingsDocument()}, nil
		}
		s.logger.Error("get settings failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to load settings")
	}

	s.cache.Set(ctx, cacheKey, settings)
	return settings, nil
}

// Put replaces the school's document. The document must be a JSON object.
func (s *SettingsService) Put(ctx context.Context, school string, document json.RawMessage) (*models.SchoolSettings, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}
	if len(document) == 0 || !json.Valid(document) {
		return nil, appErrors.Validation("settings", "must be a JSON document")
	}

	settings := &models.SchoolSettings{School: models.School(school), Document: document}
	if err := s.repo.Upsert(ctx, settings); err != nil {
		s.logger.Error("upsert settings failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to store settings")
	}
	s.cache.Invalidate(ctx, "settings:"+school)
	return settings, nil
}
