package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type dayLabelRepository interface {
	List(ctx context.Context, school models.School) ([]models.DayLabel, error)
	Upsert(ctx context.Context, label *models.DayLabel) error
	Clear(ctx context.Context, school models.School, date models.Date) error
}

// DayLabelService manages A/B day labels. An empty label is the clear
// sentinel: it deletes the date's row, so the absence of a row is the
// unlabeled state.
type DayLabelService struct {
	repo   dayLabelRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewDayLabelService constructs the service.
func NewDayLabelService(repo dayLabelRepository, cache *CacheService, logger *zap.Logger) *DayLabelService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DayLabelService{repo: repo, cache: cache, logger: logger}
}

// List returns every labeled date for a school.
func (s *DayLabelService) List(ctx context.Context, school string) ([]models.DayLabel, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}

	cacheKey := "day-labels:" + school
	var cached []models.DayLabel
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return cached, nil
	}

	labels, err := s.repo.List(ctx, models.School(school))
	if err != nil {
		s.logger.Error("list day labels failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to list day labels")
	}

	s.cache.Set(ctx, cacheKey, labels)
	return labels, nil
}

// Set writes the label for a date, or clears the date when the label is the
// empty sentinel. Repeating the same write leaves exactly one row.
func (s *DayLabelService) Set(ctx context.Context, school, rawDate, label string) (*models.DayLabel, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}
	date, err := models.ParseDate(rawDate)
	if err != nil {
		return nil, appErrors.Validation("date", err.Error())
	}

	defer s.cache.Invalidate(ctx, "day-labels:"+school)

	if label == "" {
		if err := s.repo.Clear(ctx, models.School(school), date); err != nil {
			s.logger.Error("clear day label failed", zap.String("school", school), zap.String("date", date.String()), zap.Error(err))
			return nil, storageError(err, "failed to clear day label")
		}
		return nil, nil
	}

	if !models.ValidDayLabel(label) {
		return nil, appErrors.Validation("label", `must be "A" or "B"`)
	}

	dayLabel := &models.DayLabel{School: models.School(school), Date: date, Label: label}
	if err := s.repo.Upsert(ctx, dayLabel); err != nil {
		s.logger.Error("upsert day label failed", zap.String("school", school), zap.String("date", date.String()), zap.Error(err))
		return nil, storageError(err, "failed to store day label")
	}
	return dayLabel, nil
}
