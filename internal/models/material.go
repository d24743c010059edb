package models

import "time"

// Material is a standalone supplementary resource, not parented to an event.
// The optional password is a presentation-layer gate, not a security boundary,
// and is stored as supplied.
type Material struct {
	ID          int64     `db:"id" json:"id"`
	School      School    `db:"school" json:"school"`
	Date        Date      `db:"material_date" json:"date"`
	Grade       int       `db:"grade" json:"grade"`
	Title       string    `db:"title" json:"title"`
	Link        *string   `db:"link" json:"link,omitempty"`
	Description *string   `db:"description" json:"description,omitempty"`
	Password    *string   `db:"password" json:"password,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
