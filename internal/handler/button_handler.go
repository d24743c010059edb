package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wlsd/calendar-api/internal/models"
	"github.com/wlsd/calendar-api/internal/service"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
	"github.com/wlsd/calendar-api/pkg/response"
)

type buttonService interface {
	List(ctx context.Context) ([]models.HomeButton, error)
	Get(ctx context.Context, school string) (*models.HomeButton, error)
	Put(ctx context.Context, school string, req service.ButtonRequest) (*models.HomeButton, error)
}

// ButtonHandler exposes home-page button endpoints.
type ButtonHandler struct {
	service buttonService
}

// NewButtonHandler builds a new handler.
func NewButtonHandler(service buttonService) *ButtonHandler {
	return &ButtonHandler{service: service}
}

// List godoc
// @Summary List every school's home button
// @Tags Buttons
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /home/buttons [get]
func (h *ButtonHandler) List(c *gin.Context) {
	buttons, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, buttons)
}

// Get godoc
// @Summary Fetch one school's home button
// @Tags Buttons
// @Produce json
// @Param school path string true "School code"
// @Success 200 {object} response.Envelope
// @Router /home/buttons/{school} [get]
func (h *ButtonHandler) Get(c *gin.Context) {
	button, err := h.service.Get(c.Request.Context(), c.Param("school"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, button)
}

// Put godoc
// @Summary Replace one school's home button
// @Tags Buttons
// @Accept json
// @Produce json
// @Param school path string true "School code"
// @Param payload body service.ButtonRequest true "Button payload"
// @Success 200 {object} response.Envelope
// @Router /home/buttons/{school} [put]
func (h *ButtonHandler) Put(c *gin.Context) {
	var req service.ButtonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid button payload"))
		return
	}
	button, err := h.service.Put(c.Request.Context(), c.Param("school"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, button)
}
