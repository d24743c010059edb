package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/wlsd/calendar-api/internal/service"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
	"github.com/wlsd/calendar-api/pkg/response"
)

// SessionHeader is the request header carrying the admin session token.
const SessionHeader = "X-Admin-Session"

// AdminGate protects routes by requiring a live admin session token.
func AdminGate(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(SessionHeader)
		if token == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "admin session required"))
			c.Abort()
			return
		}

		ok, err := authService.Validate(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if !ok {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "admin session expired or revoked"))
			c.Abort()
			return
		}

		c.Next()
	}
}
