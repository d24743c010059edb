package service

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type buttonRepository interface {
	List(ctx context.Context) ([]models.HomeButton, error)
	Get(ctx context.Context, school models.School) (*models.HomeButton, error)
	Upsert(ctx context.Context, button *models.HomeButton) error
}

// ButtonService manages home-page buttons and their embedded images.
type ButtonService struct {
	repo          buttonRepository
	maxImageBytes int64
	logger        *zap.Logger
}

// NewButtonService constructs the service.
func NewButtonService(repo buttonRepository, maxImageBytes int64, logger *zap.Logger) *ButtonService {
	if maxImageBytes <= 0 {
		maxImageBytes = 5 * 1024 * 1024
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ButtonService{repo: repo, maxImageBytes: maxImageBytes, logger: logger}
}

// ButtonRequest describes home button update payloads. ImageData carries the
// base64-encoded image; both image fields may be omitted to keep a text-only
// button.
type ButtonRequest struct {
	Title     string  `json:"title"`
	ImageData *string `json:"image_data"`
	ImageMime *string `json:"image_mime"`
}

// List returns every school's button.
func (s *ButtonService) List(ctx context.Context) ([]models.HomeButton, error) {
	buttons, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list home buttons failed", zap.Error(err))
		return nil, storageError(err, "failed to list home buttons")
	}
	return buttons, nil
}

// Get returns one school's button.
func (s *ButtonService) Get(ctx context.Context, school string) (*models.HomeButton, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}
	button, err := s.repo.Get(ctx, models.School(school))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "home button not found")
		}
		s.logger.Error("get home button failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to load home button")
	}
	return button, nil
}

// Put replaces the school's button. Images must be valid base64 of at most
// the configured size, with an image/* MIME type.
func (s *ButtonService) Put(ctx context.Context, school string, req ButtonRequest) (*models.HomeButton, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}
	if req.Title == "" {
		return nil, appErrors.Validation("title", "is required")
	}
	if err := s.validateImage(req.ImageData, req.ImageMime); err != nil {
		return nil, err
	}

	button := &models.HomeButton{
		School:    models.School(school),
		Title:     req.Title,
		ImageData: req.ImageData,
		ImageMime: req.ImageMime,
	}
	if err := s.repo.Upsert(ctx, button); err != nil {
		s.logger.Error("upsert home button failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to store home button")
	}
	return button, nil
}

func (s *ButtonService) validateImage(data, mime *string) error {
	if data == nil && mime == nil {
		return nil
	}
	if data == nil || mime == nil {
		return appErrors.Validation("image", "image_data and image_mime must be supplied together")
	}
	if !strings.HasPrefix(*mime, "image/") {
		return appErrors.Validation("image_mime", "only image MIME types are accepted")
	}
	decoded, err := base64.StdEncoding.DecodeString(*data)
	if err != nil {
		return appErrors.Validation("image_data", "must be valid base64")
	}
	if int64(len(decoded)) > s.maxImageBytes {
		return appErrors.Validation("image_data", "image exceeds the upload size limit")
	}
	return nil
}
