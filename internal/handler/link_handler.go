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

type linkService interface {
	List(ctx context.Context, school string) ([]models.CustomLink, error)
	Create(ctx context.Context, school string, req service.LinkRequest) (*models.CustomLink, error)
	Update(ctx context.Context, school string, id int64, req service.LinkRequest) (*models.CustomLink, error)
	Delete(ctx context.Context, school string, id int64) error
}

// LinkHandler exposes per-school custom link endpoints.
type LinkHandler struct {
	service linkService
}

// NewLinkHandler builds a new handler.
func NewLinkHandler(service linkService) *LinkHandler {
	return &LinkHandler{service: service}
}

// List godoc
// @Summary List a school's links in slot order
// @Tags Links
// @Produce json
// @Param school path string true "School code"
// @Success 200 {object} response.Envelope
// @Router /{school}/links [get]
func (h *LinkHandler) List(c *gin.Context) {
	links, err := h.service.List(c.Request.Context(), c.Param("school"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, links)
}

// Create godoc
// @Summary Create a link
// @Tags Links
// @Accept json
// @Produce json
// @Param school path string true "School code"
// @Param payload body service.LinkRequest true "Link payload"
// @Success 200 {object} response.Envelope
// @Router /{school}/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req service.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid link payload"))
		return
	}
	link, err := h.service.Create(c.Request.Context(), c.Param("school"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, link)
}

// Update godoc
// @Summary Update a link
// @Tags Links
// @Accept json
// @Produce json
// @Param school path string true "School code"
// @Param id path int true "Link ID"
// @Param payload body service.LinkRequest true "Link payload"
// @Success 200 {object} response.Envelope
// @Router /{school}/links/{id} [put]
func (h *LinkHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid link payload"))
		return
	}
	link, err := h.service.Update(c.Request.Context(), c.Param("school"), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, link)
}

// Delete godoc
// @Summary Delete a link
// @Tags Links
// @Produce json
// @Param school path string true "School code"
// @Param id path int true "Link ID"
// @Success 200 {object} response.Envelope
// @Router /{school}/links/{id} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.Param("school"), id); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"deleted": true})
}
