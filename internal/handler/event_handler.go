package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wlsd/calendar-api/internal/models"
	"github.com/wlsd/calendar-api/internal/service"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
	"github.com/wlsd/calendar-api/pkg/response"
)

type eventService interface {
	List(ctx context.Context, school, department string) ([]models.Event, error)
	ListWithCurriculum(ctx context.Context, school, department string) ([]models.Event, error)
	Create(ctx context.Context, school string, req service.EventRequest) (*models.Event, error)
	Update(ctx context.Context, school string, id int64, req service.EventRequest) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
}

type exportService interface {
	Generate(ctx context.Context, school, department string, format service.ExportFormat) (*service.ExportResult, error)
}

// EventHandler exposes the flat and per-school event endpoints.
type EventHandler struct {
	service eventService
	export  exportService
}

// NewEventHandler builds a new handler.
func NewEventHandler(svc eventService, export exportService) *EventHandler {
	return &EventHandler{service: svc, export: export}
}

// eventPayload is the flat-route body shape, which carries the school inline
// instead of in the path.
type eventPayload struct {
	School string `json:"school"`
	service.EventRequest
}

// List godoc
// @Summary List events for a school
// @Tags Events
// @Produce json
// @Param school query string true "School code"
// @Param department query string false "Department filter"
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context(), c.Query("school"), c.Query("department"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events)
}

// Create godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body eventPayload true "Event payload"
// @Success 201 {object} response.Envelope
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req eventPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}
	event, err := h.service.Create(c.Request.Context(), req.School, req.EventRequest)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Update godoc
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param payload body eventPayload true "Event payload"
// @Success 200 {object} response.Envelope
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req eventPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}
	event, err := h.service.Update(c.Request.Context(), req.School, id, req.EventRequest)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event and its curriculum entries
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"deleted": true})
}

// ListForSchool godoc
// @Summary List a school's events with curriculum entries
// @Tags Events
// @Produce json
// @Param school path string true "School code"
// @Param department query string false "Department filter, master lists all"
// @Success 200 {object} response.Envelope
// @Router /{school}/events [get]
func (h *EventHandler) ListForSchool(c *gin.Context) {
	events, err := h.service.ListWithCurriculum(c.Request.Context(), c.Param("school"), c.Query("department"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events)
}

// CreateForSchool godoc
// @Summary Create an event under a school
// @Tags Events
// @Accept json
// @Produce json
// @Param school path string true "School code"
// @Param payload body service.EventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Router /{school}/events [post]
func (h *EventHandler) CreateForSchool(c *gin.Context) {
	var req service.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}
	event, err := h.service.Create(c.Request.Context(), c.Param("school"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// UpdateForSchool godoc
// @Summary Update an event under a school
// @Tags Events
// @Accept json
// @Produce json
// @Param school path string true "School code"
// @Param id path int true "Event ID"
// @Param payload body service.EventRequest true "Event payload"
// @Success 200 {object} response.Envelope
// @Router /{school}/events/{id} [put]
func (h *EventHandler) UpdateForSchool(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}
	event, err := h.service.Update(c.Request.Context(), c.Param("school"), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}

// DeleteForSchool godoc
// @Summary Delete an event under a school
// @Tags Events
// @Produce json
// @Param school path string true "School code"
// @Param id path int true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /{school}/events/{id} [delete]
func (h *EventHandler) DeleteForSchool(c *gin.Context) {
	if !models.ValidSchool(c.Param("school")) {
		response.Error(c, appErrors.Validation("school", "unknown school code"))
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"deleted": true})
}

// Export godoc
// @Summary Export a school's schedule as CSV or PDF
// @Tags Events
// @Produce octet-stream
// @Param school path string true "School code"
// @Param format query string true "csv or pdf"
// @Success 200 {file} file
// @Router /{school}/events/export [get]
func (h *EventHandler) Export(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", string(service.ExportFormatCSV)))
	result, err := h.export.Generate(c.Request.Context(), c.Param("school"), c.Query("department"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Validation("id", "must be a positive integer")
	}
	return id, nil
}
