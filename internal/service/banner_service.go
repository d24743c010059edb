package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type bannerRepository interface {
	Get(ctx context.Context, school models.School) (*models.Banner, error)
	Upsert(ctx context.Context, banner *models.Banner) error
}

// BannerService manages the per-school announcement banner. Schools without an
// active banner read back the default inactive shape.
type BannerService struct {
	repo      bannerRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBannerService constructs the service.
func NewBannerService(repo bannerRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *BannerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BannerService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// BannerRequest describes banner update payloads.
type BannerRequest struct {
	Message         string `json:"message"`
	Active          bool   `json:"active"`
	TextSize        string `json:"text_size"`
	TextColor       string `json:"text_color"`
	BackgroundColor string `json:"background_color"`
}

// Get returns the school's banner, or the default shape when absent.
func (s *BannerService) Get(ctx context.Context, school string) (*models.Banner, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}

	cacheKey := "banner:" + school
	var cached models.Banner
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	banner, err := s.repo.Get(ctx, models.School(school))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultBanner(models.School(school)), nil
		}
		s.logger.Error("get banner failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to load banner")
	}

	s.cache.Set(ctx, cacheKey, banner)
	return banner, nil
}

// Put replaces the school's banner.
func (s *BannerService) Put(ctx context.Context, school string, req BannerRequest) (*models.Banner, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}
	if req.Active && req.Message == "" {
		return nil, appErrors.Validation("message", "is required for an active banner")
	}

	banner := &models.Banner{
		School:          models.School(school),
		Message:         req.Message,
		Active:          req.Active,
		TextSize:        defaultString(req.TextSize, "medium"),
		TextColor:       defaultString(req.TextColor, "#ffffff"),
		BackgroundColor: defaultString(req.BackgroundColor, "#00471b"),
	}
	if err := s.repo.Upsert(ctx, banner); err != nil {
		s.logger.Error("upsert banner failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to store banner")
	}
	s.cache.Invalidate(ctx, "banner:"+school)
	return banner, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
