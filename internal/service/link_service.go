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

type linkRepository interface {
	List(ctx context.Context, school models.School) ([]models.CustomLink, error)
	Create(ctx context.Context, link *models.CustomLink) error
	Update(ctx context.Context, link *models.CustomLink) error
	Delete(ctx context.Context, school models.School, id int64) error
}

// LinkService manages custom navigation links.
type LinkService struct {
	repo      linkRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLinkService constructs the service.
func NewLinkService(repo linkRepository, validate *validator.Validate, logger *zap.Logger) *LinkService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LinkService{repo: repo, validator: validate, logger: logger}
}

// LinkRequest describes link create/update payloads.
type LinkRequest struct {
	Position        string `json:"position" validate:"required"`
	Title           string `json:"title" validate:"required"`
	URL             string `json:"url" validate:"required,url"`
	SortIndex       int    `json:"sort_index"`
	TextColor       string `json:"text_color"`
	BackgroundColor string `json:"background_color"`
}

// List returns a school's links in slot order.
func (s *LinkService) List(ctx context.Context, school string) ([]models.CustomLink, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}
	links, err := s.repo.List(ctx, models.School(school))
	if err != nil {
		s.logger.Error("list links failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to list links")
	}
	return links, nil
}

// Create registers a link.
func (s *LinkService) Create(ctx context.Context, school string, req LinkRequest) (*models.CustomLink, error) {
	link, err := s.buildLink(school, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, link); err != nil {
		s.logger.Error("create link failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to create link")
	}
	return link, nil
}

// Update modifies a link.
func (s *LinkService) Update(ctx context.Context, school string, id int64, req LinkRequest) (*models.CustomLink, error) {
	link, err := s.buildLink(school, req)
	if err != nil {
		return nil, err
	}
	link.ID = id
	if err := s.repo.Update(ctx, link); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "link not found")
		}
		s.logger.Error("update link failed", zap.String("school", school), zap.Int64("id", id), zap.Error(err))
		return nil, storageError(err, "failed to update link")
	}
	return link, nil
}

// Delete removes a link.
func (s *LinkService) Delete(ctx context.Context, school string, id int64) error {
	if err := validateSchool(school); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, models.School(school), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "link not found")
		}
		s.logger.Error("delete link failed", zap.String("school", school), zap.Int64("id", id), zap.Error(err))
		return storageError(err, "failed to delete link")
	}
	return nil
}

func (s *LinkService) buildLink(school string, req LinkRequest) (*models.CustomLink, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid link payload")
	}
	if !models.ValidLinkPosition(req.Position) {
		return nil, appErrors.Validation("position", `must be "left" or "right"`)
	}
	return &models.CustomLink{
		School:          models.School(school),
		Position:        req.Position,
		Title:           req.Title,
		URL:             req.URL,
		SortIndex:       req.SortIndex,
		TextColor:       defaultString(req.TextColor, "#ffffff"),
		BackgroundColor: defaultString(req.BackgroundColor, "#00471b"),
	}, nil
}
