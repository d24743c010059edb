package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wlsd/calendar-api/internal/models"
	"github.com/wlsd/calendar-api/internal/service"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
	"github.com/wlsd/calendar-api/pkg/response"
)

type settingsService interface {
	Get(ctx context.Context, school string) (*models.SchoolSettings, error)
	Put(ctx context.Context, school string, document json.RawMessage) (*models.SchoolSettings, error)
}

type bannerService interface {
	Get(ctx context.Context, school string) (*models.Banner, error)
	Put(ctx context.Context, school string, req service.BannerRequest) (*models.Banner, error)
}

// SiteHandler exposes the per-school style document and the announcement
// banner.
type SiteHandler struct {
	settings settingsService
	banner   bannerService
}

// NewSiteHandler builds a new handler.
func NewSiteHandler(settings settingsService, banner bannerService) *SiteHandler {
	return &SiteHandler{settings: settings, banner: banner}
}

type settingsPayload struct {
	Settings json.RawMessage `json:"settings"`
}

// GetSettings godoc
// @Summary Fetch a school's style document
// @Tags Site
// @Produce json
// @Param school path string true "School code"
// @Success 200 {object} response.Envelope
// @Router /{school}/settings [get]
func (h *SiteHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context(), c.Param("school"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}

// PutSettings godoc
// @Summary Replace a school's style document
// @Tags Site
// @Accept json
// @Produce json
// @Param school path string true "School code"
// @Param payload body settingsPayload true "Settings payload"
// @Success 200 {object} response.Envelope
// @Router /{school}/settings [put]
func (h *SiteHandler) PutSettings(c *gin.Context) {
	var req settingsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid settings payload"))
		return
	}
	settings, err := h.settings.Put(c.Request.Context(), c.Param("school"), req.Settings)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}

// GetBanner godoc
// @Summary Fetch a school's banner
// @Tags Site
// @Produce json
// @Param school path string true "School code"
// @Success 200 {object} response.Envelope
// @Router /{school}/banner [get]
func (h *SiteHandler) GetBanner(c *gin.Context) {
	banner, err := h.banner.Get(c.Request.Context(), c.Param("school"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, banner)
}

// PutBanner godoc
// @Summary Replace a school's banner
// @Tags Site
// @Accept json
// @Produce json
// @Param school path string true "School code"
// @Param payload body service.BannerRequest true "Banner payload"
// @Success 200 {object} response.Envelope
// @Router /{school}/banner [put]
func (h *SiteHandler) PutBanner(c *gin.Context) {
	var req service.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid banner payload"))
		return
	}
	banner, err := h.banner.Put(c.Request.Context(), c.Param("school"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, banner)
}
