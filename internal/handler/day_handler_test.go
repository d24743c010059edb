package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
	"github.com/wlsd/calendar-api/pkg/response"
)

type dayLabelServiceMock struct {
	setSchool string
	setDate   string
	setLabel  string
	listErr   error
}

func (m *dayLabelServiceMock) List(ctx context.Context, school string) ([]models.DayLabel, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return []models.DayLabel{}, nil
}

func (m *dayLabelServiceMock) Set(ctx context.Context, school, date, label string) (*models.DayLabel, error) {
	m.setSchool, m.setDate, m.setLabel = school, date, label
	if label == "" {
		return nil, nil
	}
	parsed, err := models.ParseDate(date)
	if err != nil {
		return nil, appErrors.Validation("date", err.Error())
	}
	return &models.DayLabel{School: models.School(school), Date: parsed, Label: label}, nil
}

type specialDayServiceMock struct{}

func (m *specialDayServiceMock) List(ctx context.Context, school string) ([]models.SpecialDay, error) {
	return []models.SpecialDay{}, nil
}

func (m *specialDayServiceMock) Set(ctx context.Context, school, date, dayType string, description *string) (*models.SpecialDay, error) {
	return nil, nil
}

func TestDayHandlerPutLabel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &dayLabelServiceMock{}
	handler := NewDayHandler(mock, &specialDayServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(map[string]string{"label": "A"})
	req := httptest.NewRequest(http.MethodPut, "/wlhs/day-labels/2025-06-01", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "school", Value: "wlhs"}, {Key: "date", Value: "2025-06-01"}}

	handler.PutLabel(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "wlhs", mock.setSchool)
	assert.Equal(t, "2025-06-01", mock.setDate)
	assert.Equal(t, "A", mock.setLabel)
}

func TestDayHandlerPutLabelClearSentinel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &dayLabelServiceMock{}
	handler := NewDayHandler(mock, &specialDayServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(map[string]string{"label": ""})
	req := httptest.NewRequest(http.MethodPut, "/wlhs/day-labels/2025-06-01", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "school", Value: "wlhs"}, {Key: "date", Value: "2025-06-01"}}

	handler.PutLabel(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", mock.setLabel)
}

func TestDayHandlerListSchedulesInvalidSchool(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &dayLabelServiceMock{listErr: appErrors.Validation("school", "unknown school code")}
	handler := NewDayHandler(mock, &specialDayServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/day-schedules?school=zzz", nil)

	handler.ListSchedules(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrValidation.Code, envelope.Error.Code)
}

func TestDayHandlerSetScheduleInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDayHandler(&dayLabelServiceMock{}, &specialDayServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/day-schedules", bytes.NewReader([]byte(`{`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.SetSchedule(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
