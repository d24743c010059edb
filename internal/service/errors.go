package service

import (
	"errors"
	"strings"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

// storageError passes typed errors (configuration, connectivity) through
// unchanged and wraps everything else as a storage failure. The driver error
// stays attached for server-side logs only; response bodies carry the message.
func storageError(err error, message string) error {
	var typed *appErrors.Error
	if errors.As(err, &typed) {
		return typed
	}
	return appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, message)
}

// validateSchool rejects any school code outside the fixed set before a query
// is built.
func validateSchool(code string) error {
	if code == "" {
		return appErrors.Validation("school", "is required")
	}
	if !models.ValidSchool(code) {
		return appErrors.Validation("school", "must be one of "+schoolCodes())
	}
	return nil
}

func schoolCodes() string {
	known := models.Schools()
	codes := make([]string, len(known))
	for i, school := range known {
		codes[i] = string(school)
	}
	return strings.Join(codes, ", ")
}
