package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type eventListerStub struct {
	events []models.Event
}

func (s *eventListerStub) List(ctx context.Context, school models.School, department string) ([]models.Event, error) {
	return s.events, nil
}

func TestExportServiceGenerateCSV(t *testing.T) {
	date, err := models.ParseDate("2025-10-03")
	require.NoError(t, err)
	lister := &eventListerStub{events: []models.Event{
		{School: models.SchoolWLHS, Date: date, Title: "Homecoming"},
	}}
	svc := NewExportService(lister, nil, nil, nil)

	result, err := svc.Generate(context.Background(), "wlhs", "master", ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	payload := string(result.Payload)
	assert.Contains(t, payload, "Homecoming")
	assert.Contains(t, payload, "2025-10-03")
}

func TestExportServiceGeneratePDF(t *testing.T) {
	date, err := models.ParseDate("2025-10-03")
	require.NoError(t, err)
	lister := &eventListerStub{events: []models.Event{
		{School: models.SchoolWVHS, Date: date, Title: "Homecoming"},
	}}
	svc := NewExportService(lister, nil, nil, nil)

	result, err := svc.Generate(context.Background(), "wvhs", "", ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.NotEmpty(t, result.Payload)
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(&eventListerStub{}, nil, nil, nil)

	_, err := svc.Generate(context.Background(), "wlhs", "", ExportFormat("xlsx"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
