package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type eventRepository interface {
	List(ctx context.Context, school models.School, department string) ([]models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
	ListWithCurriculum(ctx context.Context, school models.School, department string) ([]models.Event, error)
	CreateWithCurriculum(ctx context.Context, event *models.Event, entries []models.CurriculumEntry) error
	UpdateWithCurriculum(ctx context.Context, event *models.Event, entries []models.CurriculumEntry) error
}

// EventService manages calendar events and their curriculum entries.
type EventService struct {
	repo      eventRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewEventService constructs the service.
func NewEventService(repo eventRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// CurriculumInput is one grade's resource in a create/update payload, keyed by
// grade in the request body.
type CurriculumInput struct {
	Links       *string `json:"links"`
	Description *string `json:"description"`
}

// EventRequest describes create and update payloads. Date accepts any
// parseable date-like string and is normalized to YYYY-MM-DD. Curriculum maps
// grade ("9".."12") to the grade's resource.
type EventRequest struct {
	Date        string                     `json:"date" validate:"required"`
	Title       string                     `json:"title" validate:"required"`
	TimeOfDay   *string                    `json:"time"`
	Department  *string                    `json:"department"`
	Description *string                    `json:"description"`
	Curriculum  map[string]CurriculumInput `json:"lifeCurriculum"`
}

// List returns a school's events without curriculum entries.
func (s *EventService) List(ctx context.Context, school, department string) ([]models.Event, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}
	start := time.Now()
	events, err := s.repo.List(ctx, models.School(school), department)
	s.metrics.ObserveDBQuery("events_list", time.Since(start))
	if err != nil {
		s.logger.Error("list events failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to list events")
	}
	return events, nil
}

// ListWithCurriculum returns a school's events with per-grade entries
// aggregated, optionally narrowed by department ("master" lists all).
func (s *EventService) ListWithCurriculum(ctx context.Context, school, department string) ([]models.Event, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}
	start := time.Now()
	events, err := s.repo.ListWithCurriculum(ctx, models.School(school), department)
	s.metrics.ObserveDBQuery("events_list_curriculum", time.Since(start))
	if err != nil {
		s.logger.Error("list events with curriculum failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to list events")
	}
	return events, nil
}

// Create registers an event, with its curriculum entries when present.
func (s *EventService) Create(ctx context.Context, school string, req EventRequest) (*models.Event, error) {
	event, entries, err := s.buildEvent(school, req)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	if len(entries) == 0 && req.Curriculum == nil {
		err = s.repo.Create(ctx, event)
	} else {
		err = s.repo.CreateWithCurriculum(ctx, event, entries)
	}
	s.metrics.ObserveDBQuery("events_create", time.Since(start))
	if err != nil {
		s.logger.Error("create event failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to create event")
	}
	return event, nil
}

// Update rewrites an event; when the payload carries curriculum the child rows
// are fully replaced in the same transaction.
func (s *EventService) Update(ctx context.Context, school string, id int64, req EventRequest) (*models.Event, error) {
	event, entries, err := s.buildEvent(school, req)
	if err != nil {
		return nil, err
	}
	event.ID = id

	start := time.Now()
	if req.Curriculum == nil {
		err = s.repo.Update(ctx, event)
	} else {
		err = s.repo.UpdateWithCurriculum(ctx, event, entries)
	}
	s.metrics.ObserveDBQuery("events_update", time.Since(start))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		s.logger.Error("update event failed", zap.String("school", school), zap.Int64("id", id), zap.Error(err))
		return nil, storageError(err, "failed to update event")
	}
	return event, nil
}

// Delete removes an event; its curriculum entries cascade away with it.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := s.repo.Delete(ctx, id)
	s.metrics.ObserveDBQuery("events_delete", time.Since(start))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		s.logger.Error("delete event failed", zap.Int64("id", id), zap.Error(err))
		return storageError(err, "failed to delete event")
	}
	return nil
}

func (s *EventService) buildEvent(school string, req EventRequest) (*models.Event, []models.CurriculumEntry, error) {
	if err := validateSchool(school); err != nil {
		return nil, nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, nil, appErrors.Validation("date", err.Error())
	}

	entries, err := buildCurriculum(req.Curriculum)
	if err != nil {
		return nil, nil, err
	}

	event := &models.Event{
		School:      models.School(school),
		Date:        date,
		Title:       req.Title,
		TimeOfDay:   req.TimeOfDay,
		Department:  req.Department,
		Description: req.Description,
		Curriculum:  append([]models.CurriculumEntry{}, entries...),
	}
	return event, entries, nil
}

// buildCurriculum turns the grade-keyed request map into entries ordered by
// grade. Grades outside 9..12 are rejected; grades absent from the map simply
// have no entry.
func buildCurriculum(input map[string]CurriculumInput) ([]models.CurriculumEntry, error) {
	if len(input) == 0 {
		return nil, nil
	}
	entries := make([]models.CurriculumEntry, 0, len(input))
	for rawGrade, item := range input {
		grade, err := strconv.Atoi(rawGrade)
		if err != nil || !models.ValidGrade(grade) {
			return nil, appErrors.Validation("lifeCurriculum", "grade must be an integer between 9 and 12")
		}
		entries = append(entries, models.CurriculumEntry{
			Grade:       grade,
			Links:       item.Links,
			Description: item.Description,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Grade < entries[j].Grade })
	return entries, nil
}
