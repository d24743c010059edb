package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
	"github.com/wlsd/calendar-api/pkg/export"
)

type eventLister interface {
	List(ctx context.Context, school models.School, department string) ([]models.Event, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFormat names a supported schedule export encoding.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportResult carries a rendered schedule export.
type ExportResult struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders a school's event schedule as CSV or PDF.
type ExportService struct {
	events eventLister
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(events eventLister, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{events: events, csv: csv, pdf: pdf, logger: logger}
}

var scheduleHeaders = []string{"Date", "Title", "Time", "Department", "Description"}

// Generate builds the schedule dataset and renders it in the requested format.
func (s *ExportService) Generate(ctx context.Context, school, department string, format ExportFormat) (*ExportResult, error) {
	if err := validateSchool(school); err != nil {
		return nil, err
	}

	events, err := s.events.List(ctx, models.School(school), department)
	if err != nil {
		s.logger.Error("export schedule failed", zap.String("school", school), zap.Error(err))
		return nil, storageError(err, "failed to load events for export")
	}

	dataset := export.Dataset{Headers: scheduleHeaders, Rows: make([]map[string]string, 0, len(events))}
	for _, event := range events {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":        event.Date.String(),
			"Title":       event.Title,
			"Time":        stringOrEmpty(event.TimeOfDay),
			"Department":  stringOrEmpty(event.Department),
			"Description": stringOrEmpty(event.Description),
		})
	}

	stamp := time.Now().UTC().Format("2006-01-02")
	switch format {
	case ExportFormatCSV:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("%s-schedule-%s.csv", school, stamp),
			ContentType: "text/csv",
			Payload:     payload,
		}, nil
	case ExportFormatPDF:
		payload, err := s.pdf.Render(dataset, fmt.Sprintf("%s event schedule", school))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("%s-schedule-%s.pdf", school, stamp),
			ContentType: "application/pdf",
			Payload:     payload,
		}, nil
	default:
		return nil, appErrors.Validation("format", `must be "csv" or "pdf"`)
	}
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
