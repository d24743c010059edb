package models

import (
	"encoding/json"
	"time"
)

// SchoolSettings holds the free-form style document for one school. An absent
// row means the defaults apply.
type SchoolSettings struct {
	School    School          `db:"school" json:"school"`
	Document  json.RawMessage `db:"document" json:"settings"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// DefaultSettingsDocument is served when a school has no stored settings.
func DefaultSettingsDocument() json.RawMessage {
	return json.RawMessage(`{"theme":{"primaryColor":"#00471b","accentColor":"#a2aaad"},"calendar":{"showWeekends":false}}`)
}

// Banner is the per-school announcement strip. An absent or inactive row reads
// back as the default "no banner" shape.
type Banner struct {
	School          School    `db:"school" json:"school"`
	Message         string    `db:"message" json:"message"`
	Active          bool      `db:"active" json:"active"`
	TextSize        string    `db:"text_size" json:"text_size"`
	TextColor       string    `db:"text_color" json:"text_color"`
	BackgroundColor string    `db:"background_color" json:"background_color"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// DefaultBanner is the response shape for schools without an active banner.
func DefaultBanner(school School) *Banner {
	return &Banner{
		School:          school,
		Message:         "",
		Active:          false,
		TextSize:        "medium",
		TextColor:       "#ffffff",
		BackgroundColor: "#00471b",
	}
}

// CustomLink is a configurable navigation link pinned to one of two slots.
type CustomLink struct {
	ID              int64     `db:"id" json:"id"`
	School          School    `db:"school" json:"school"`
	Position        string    `db:"position" json:"position"`
	Title           string    `db:"title" json:"title"`
	URL             string    `db:"url" json:"url"`
	SortIndex       int       `db:"sort_index" json:"sort_index"`
	TextColor       string    `db:"text_color" json:"text_color"`
	BackgroundColor string    `db:"background_color" json:"background_color"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

const (
	LinkPositionLeft  = "left"
	LinkPositionRight = "right"
)

// ValidLinkPosition reports whether the slot name is one of the fixed pair.
func ValidLinkPosition(position string) bool {
	return position == LinkPositionLeft || position == LinkPositionRight
}

// HomeButton is the landing-page button for one school, optionally carrying an
// inline image stored as base64 text with its MIME type.
type HomeButton struct {
	School    School    `db:"school" json:"school"`
	Title     string    `db:"title" json:"title"`
	ImageData *string   `db:"image_data" json:"image_data,omitempty"`
	ImageMime *string   `db:"image_mime" json:"image_mime,omitempty"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
