package models

import "time"

// DepartmentAll disables department filtering when listing events.
const DepartmentAll = "master"

// Event is a dated calendar entry owned by one school.
type Event struct {
	ID          int64     `db:"id" json:"id"`
	School      School    `db:"school" json:"school"`
	Date        Date      `db:"event_date" json:"date"`
	Title       string    `db:"title" json:"title"`
	TimeOfDay   *string   `db:"time_of_day" json:"time,omitempty"`
	Department  *string   `db:"department" json:"department,omitempty"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	// Curriculum is always present in responses. An event without entries
	// carries an empty list, never null and never an omitted field.
	Curriculum []CurriculumEntry `db:"-" json:"life_curriculum"`
}

// CurriculumEntry attaches a grade-specific resource to an event. Entries
// vanish with their parent event; duplicates per grade are allowed.
type CurriculumEntry struct {
	ID          int64   `db:"id" json:"id"`
	EventID     int64   `db:"event_id" json:"event_id"`
	Grade       int     `db:"grade" json:"grade"`
	Links       *string `db:"links" json:"links,omitempty"`
	Description *string `db:"description" json:"description,omitempty"`
}

const (
	GradeMin = 9
	GradeMax = 12
)

// ValidGrade reports whether the grade level is in the supported range.
func ValidGrade(grade int) bool {
	return grade >= GradeMin && grade <= GradeMax
}
