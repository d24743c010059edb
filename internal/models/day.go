package models

import "time"

// DayLabel records the A/B rotation label for a calendar date. A date with no
// row is unlabeled; clearing is expressed by deleting the row, never by
// storing an empty label.
type DayLabel struct {
	School    School    `db:"school" json:"school"`
	Date      Date      `db:"label_date" json:"date"`
	Label     string    `db:"label" json:"label"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

const (
	DayLabelA = "A"
	DayLabelB = "B"
)

// ValidDayLabel reports whether the label is in the rotation set.
func ValidDayLabel(label string) bool {
	return label == DayLabelA || label == DayLabelB
}

// SpecialDay flags a calendar date with a non-normal day type. "normal" is a
// clear sentinel: writing it removes the row.
type SpecialDay struct {
	School      School    `db:"school" json:"school"`
	Date        Date      `db:"day_date" json:"date"`
	Type        string    `db:"day_type" json:"type"`
	Description *string   `db:"description" json:"description,omitempty"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// SpecialDayNormal clears a special day when written.
const SpecialDayNormal = "normal"

var specialDayTypes = map[string]struct{}{
	"finals":            {},
	"grading":           {},
	"holiday":           {},
	"early-release":     {},
	"staff-development": {},
	"access":            {},
}

// ValidSpecialDayType reports whether the type is in the fixed enumeration.
// The clear sentinel is not a storable type.
func ValidSpecialDayType(dayType string) bool {
	_, ok := specialDayTypes[dayType]
	return ok
}
