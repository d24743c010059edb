package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlsd/calendar-api/internal/middleware"
	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type authServiceMock struct {
	password string
	revoked  []string
	valid    bool
}

func (m *authServiceMock) Login(ctx context.Context, password string) (*models.AdminSession, error) {
	if password != m.password {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid admin password")
	}
	now := time.Now().UTC()
	return &models.AdminSession{Token: "token.abcd", CreatedAt: now, ExpiresAt: now.Add(8 * time.Hour)}, nil
}

func (m *authServiceMock) Validate(ctx context.Context, token string) (bool, error) {
	return m.valid, nil
}

func (m *authServiceMock) Logout(ctx context.Context, token string) error {
	m.revoked = append(m.revoked, token)
	return nil
}

func TestAuthHandlerLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&authServiceMock{password: "Lions"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(map[string]string{"password": "Lions"})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Login(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token.abcd")
}

func TestAuthHandlerLoginWrongPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&authServiceMock{password: "Lions"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(map[string]string{"password": "Tigers"})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Login(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerLogout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &authServiceMock{}
	handler := NewAuthHandler(mock)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.Header.Set(middleware.SessionHeader, "token.abcd")
	c.Request = req

	handler.Logout(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"token.abcd"}, mock.revoked)
}

func TestAuthHandlerVerify(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&authServiceMock{valid: true})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/admin/verify", nil)
	req.Header.Set(middleware.SessionHeader, "token.abcd")
	c.Request = req

	handler.Verify(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)
}
