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

type materialRepository interface {
	List(ctx context.Context, school models.School) ([]models.Material, error)
	Create(ctx context.Context, material *models.Material) error
	Update(ctx context.Context, material *models.Material) error
	Delete(ctx context.Context, id int64) error
}

// MaterialService manages supplementary materials.
type MaterialService struct {
	repo      materialRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMaterialService constructs the service.
func NewMaterialService(repo materialRepository, validate *validator.Validate, logger *zap.Logger) *MaterialService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaterialService{repo: repo, validator: validate, logger: logger}
}

// MaterialRequest describes material create/update payloads. The password is
// a presentation-layer gate stored as supplied.
type MaterialRequest struct {
	School      string  `json:"school" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Grade       int     `json:"grade" validate:"required,min=9,max=12"`
	Title       string  `json:"title" validate:"required"`
	Link        *string `json:"link"`
	Description *string `json:"description"`
	Password    *string `json:"password"`
}

// List returns a school's materials.
func (s *MaterialService) List(ctx context.Context, school string) ([]models.Material, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}
	materials, err := s.repo.List(ctx, models.School(school))
	if err != nil {
		s.logger.Error("list materials failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to list materials")
	}
	return materials, nil
}

// Create registers a material.
func (s *MaterialService) Create(ctx context.Context, req MaterialRequest) (*models.Material, error) {
	material, err := s.buildMaterial(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, material); err != nil {
		s.logger.Error("create material failed", zap.String("school", req.School), zap.Error(err))
		return nil, storageError(err, "failed to create material")
	}
	return material, nil
}

// Update modifies a material.
func (s *MaterialService) Update(ctx context.Context, id int64, req MaterialRequest) (*models.Material, error) {
	material, err := s.buildMaterial(req)
	if err != nil {
		return nil, err
	}
	material.ID = id
	if err := s.repo.Update(ctx, material); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "material not found")
		}
		s.logger.Error("update material failed", zap.Int64("id", id), zap.Error(err))
		return nil, storageError(err, "failed to update material")
	}
	return material, nil
}

// Delete removes a material.
func (s *MaterialService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "material not found")
		}
		s.logger.Error("delete material failed", zap.Int64("id", id), zap.Error(err))
		return storageError(err, "failed to delete material")
	}
	return nil
}

func (s *MaterialService) buildMaterial(req MaterialRequest) (*models.Material, error) {
	if err := validateSchool(req.School); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid material payload")
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, appErrors.Validation("date", err.Error())
	}
	return &models.Material{
		School:      models.School(req.School),
		Date:        date,
		Grade:       req.Grade,
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
		Password:    req.Password,
	}, nil
}
