package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
	"github.com/wlsd/calendar-api/pkg/response"
)

type dayLabelService interface {
	List(ctx context.Context, school string) ([]models.DayLabel, error)
	Set(ctx context.Context, school, date, label string) (*models.DayLabel, error)
}

type specialDayService interface {
	List(ctx context.Context, school string) ([]models.SpecialDay, error)
	Set(ctx context.Context, school, date, dayType string, description *string) (*models.SpecialDay, error)
}

// DayHandler exposes day labels and special days, on both the per-school
// routes and the flat legacy aliases.
type DayHandler struct {
	labels  dayLabelService
	special specialDayService
}

// NewDayHandler builds a new handler.
func NewDayHandler(labels dayLabelService, special specialDayService) *DayHandler {
	return &DayHandler{labels: labels, special: special}
}

type dayLabelPayload struct {
	School string `json:"school"`
	Date   string `json:"date"`
	Label  string `json:"label"`
}

type specialDayPayload struct {
	School      string  `json:"school"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
}

// ListSchedules godoc
// @Summary List A/B day labels
// @Tags Days
// @Produce json
// @Param school query string true "School code"
// @Success 200 {object} response.Envelope
// @Router /day-schedules [get]
func (h *DayHandler) ListSchedules(c *gin.Context) {
	labels, err := h.labels.List(c.Request.Context(), c.Query("school"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, labels)
}

// SetSchedule godoc
// @Summary Set or clear a date's A/B day label
// @Tags Days
// @Accept json
// @Produce json
// @Param payload body dayLabelPayload true "Day label payload"
// @Success 200 {object} response.Envelope
// @Router /day-schedules [post]
func (h *DayHandler) SetSchedule(c *gin.Context) {
	var req dayLabelPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid day label payload"))
		return
	}
	label, err := h.labels.Set(c.Request.Context(), req.School, req.Date, req.Label)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, label)
}

// ListTypes godoc
// @Summary List special days
// @Tags Days
// @Produce json
// @Param school query string true "School code"
// @Success 200 {object} response.Envelope
// @Router /day-types [get]
func (h *DayHandler) ListTypes(c *gin.Context) {
	days, err := h.special.List(c.Request.Context(), c.Query("school"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, days)
}

// SetType godoc
// @Summary Set or clear a date's special day type
// @Tags Days
// @Accept json
// @Produce json
// @Param payload body specialDayPayload true "Special day payload"
// @Success 200 {object} response.Envelope
// @Router /day-types [post]
func (h *DayHandler) SetType(c *gin.Context) {
	var req specialDayPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid special day payload"))
		return
	}
	day, err := h.special.Set(c.Request.Context(), req.School, req.Date, req.Type, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, day)
}

// ListLabelsForSchool godoc
// @Summary List a school's A/B day labels
// @Tags Days
// @Produce json
// @Param school path string true "School code"
// @Success 200 {object} response.Envelope
// @Router /{school}/day-labels [get]
func (h *DayHandler) ListLabelsForSchool(c *gin.Context) {
	labels, err := h.labels.List(c.Request.Context(), c.Param("school"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, labels)
}

// PutLabel godoc
// @Summary Set or clear the label for one date
// @Tags Days
// @Accept json
// @Produce json
// @Param school path string true "School code"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param payload body dayLabelPayload true "Label payload"
// @Success 200 {object} response.Envelope
// @Router /{school}/day-labels/{date} [put]
func (h *DayHandler) PutLabel(c *gin.Context) {
	var req dayLabelPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid day label payload"))
		return
	}
	label, err := h.labels.Set(c.Request.Context(), c.Param("school"), c.Param("date"), req.Label)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, label)
}

// ListSpecialForSchool godoc
// @Summary List a school's special days
// @Tags Days
// @Produce json
// @Param school path string true "School code"
// @Success 200 {object} response.Envelope
// @Router /{school}/special-days [get]
func (h *DayHandler) ListSpecialForSchool(c *gin.Context) {
	days, err := h.special.List(c.Request.Context(), c.Param("school"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, days)
}

// PutSpecial godoc
// @Summary Set or clear the special day type for one date
// @Tags Days
// @Accept json
// @Produce json
// @Param school path string true "School code"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param payload body specialDayPayload true "Special day payload"
// @Success 200 {object} response.Envelope
// @Router /{school}/special-days/{date} [put]
func (h *DayHandler) PutSpecial(c *gin.Context) {
	var req specialDayPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid special day payload"))
		return
	}
	day, err := h.special.Set(c.Request.Context(), c.Param("school"), c.Param("date"), req.Type, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, day)
}
