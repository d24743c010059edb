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

type materialService interface {
	List(ctx context.Context, school string) ([]models.Material, error)
	Create(ctx context.Context, req service.MaterialRequest) (*models.Material, error)
	Update(ctx context.Context, id int64, req service.MaterialRequest) (*models.Material, error)
	Delete(ctx context.Context, id int64) error
}

// MaterialHandler exposes supplementary material endpoints.
type MaterialHandler struct {
	service materialService
}

// NewMaterialHandler builds a new handler.
func NewMaterialHandler(service materialService) *MaterialHandler {
	return &MaterialHandler{service: service}
}

// List godoc
// @Summary List a school's materials
// @Tags Materials
// @Produce json
// @Param school query string true "School code"
// @Success 200 {object} response.Envelope
// @Router /materials [get]
func (h *MaterialHandler) List(c *gin.Context) {
	materials, err := h.service.List(c.Request.Context(), c.Query("school"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, materials)
}

// Create godoc
// @Summary Create a material
// @Tags Materials
// @Accept json
// @Produce json
// @Param payload body service.MaterialRequest true "Material payload"
// @Success 200 {object} response.Envelope
// @Router /materials [post]
func (h *MaterialHandler) Create(c *gin.Context) {
	var req service.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid material payload"))
		return
	}
	material, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, material)
}

// Update godoc
// @Summary Update a material
// @Tags Materials
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param payload body service.MaterialRequest true "Material payload"
// @Success 200 {object} response.Envelope
// @Router /materials/{id} [put]
func (h *MaterialHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid material payload"))
		return
	}
	material, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, material)
}

// Delete godoc
// @Summary Delete a material
// @Tags Materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} response.Envelope
// @Router /materials/{id} [delete]
func (h *MaterialHandler) Delete(c *gin.Context) {
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
