package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventMarshalKeepsEmptyCurriculum(t *testing.T) {
	date, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	event := Event{
		ID:         2,
		School:     SchoolWLHS,
		Date:       date,
		Title:      "Assembly",
		Curriculum: []CurriculumEntry{},
	}

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &decoded))
	raw, present := decoded["life_curriculum"]
	require.True(t, present, "childless events must still carry the curriculum field")
	assert.JSONEq(t, `[]`, string(raw))
}

func TestEventMarshalCurriculumEntries(t *testing.T) {
	date, err := ParseDate("2025-09-02")
	require.NoError(t, err)
	links := "https://example.test/syllabus"
	event := Event{
		ID:     7,
		School: SchoolWVHS,
		Date:   date,
		Title:  "First Day",
		Curriculum: []CurriculumEntry{
			{ID: 1, EventID: 7, Grade: 9, Links: &links},
			{ID: 2, EventID: 7, Grade: 11},
		},
	}

	body, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"life_curriculum":[`)
	assert.Contains(t, string(body), `"grade":9`)
	assert.Contains(t, string(body), `"grade":11`)
}
