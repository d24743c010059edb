package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wlsd/calendar-api/internal/middleware"
	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
	"github.com/wlsd/calendar-api/pkg/response"
)

type authService interface {
	Login(ctx context.Context, password string) (*models.AdminSession, error)
	Validate(ctx context.Context, token string) (bool, error)
	Logout(ctx context.Context, token string) error
}

// AuthHandler exposes the shared-password admin session endpoints.
type AuthHandler struct {
	service authService
}

// NewAuthHandler builds a new handler.
func NewAuthHandler(service authService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login godoc
// @Summary Exchange the admin password for a session token
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}
	session, err := h.service.Login(c.Request.Context(), req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
	})
}

// Logout godoc
// @Summary Revoke the presented session token
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), c.GetHeader(middleware.SessionHeader)); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"logged_out": true})
}

// Verify godoc
// @Summary Report whether the presented session token is live
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	ok, err := h.service.Validate(c.Request.Context(), c.GetHeader(middleware.SessionHeader))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"valid": ok})
}
