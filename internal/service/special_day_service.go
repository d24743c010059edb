package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type specialDayRepository interface {
	List(ctx context.Context, school models.School) ([]models.SpecialDay, error)
	Upsert(ctx context.Context, day *models.SpecialDay) error
	Clear(ctx context.Context, school models.School, date models.Date) error
}

// SpecialDayService manages special day types. Writing "normal" clears the
// date; a date without a row is a normal day.
type SpecialDayService struct {
	repo   specialDayRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewSpecialDayService constructs the service.
func NewSpecialDayService(repo specialDayRepository, cache *CacheService, logger *zap.Logger) *SpecialDayService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpecialDayService{repo: repo, cache: cache, logger: logger}
}

// List returns every flagged date for a school.
func (s *SpecialDayService) List(ctx context.Context, school string) ([]models.SpecialDay, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}

	cacheKey := "special-days:" + school
	var cached []models.SpecialDay
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return cached, nil
	}

	days, err := s.repo.List(ctx, models.School(school))
	if err != nil {
		s.logger.Error("list special days failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to list special days")
	}

	s.cache.Set(ctx, cacheKey, days)
	return days, nil
}

// Set writes the day type for a date, or clears the date when the type is the
// "normal" sentinel.
func (s *SpecialDayService) Set(ctx context.Context, school, rawDate, dayType string, description *string) (*models.SpecialDay, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}
	date, err := models.ParseDate(rawDate)
	if err != nil {
		return nil, appErrors.Validation("date", err.Error())
	}

	defer s.cache.Invalidate(ctx, "special-days:"+school)

	if dayType == "" || dayType == models.SpecialDayNormal {
		if err := s.repo.Clear(ctx, models.School(school), date); err != nil {
			s.logger.Error("clear special day failed", zap.String("school", school), zap.String("date", date.String()), zap.Error(err))
			return nil, storageError(err, "failed to clear special day")
		}
		return nil, nil
	}

	if !models.ValidSpecialDayType(dayType) {
		return nil, appErrors.Validation("type", "unknown special day type")
	}

	day := &models.SpecialDay{School: models.School(school), Date: date, Type: dayType, Description: description}
	if err := s.repo.Upsert(ctx, day); err != nil {
		s.logger.Error("upsert special day failed", zap.String("school", school), zap.String("date", date.String()), zap.Error(err))
		return nil, storageError(err, "failed to store special day")
	}
	return day, nil
}
