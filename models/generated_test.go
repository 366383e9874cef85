package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGeneratedItineraryValid(t *testing.T) {
	text := `{
		"days": [
			{
				"day_number": 1,
				"title": "Old Town",
				"summary": "Historic center on foot.",
				"blocks": [
					{"type": "heading", "title": "Day 1: Old Town"},
					{"type": "activity", "title": "Castle walk", "description": "Morning walk.", "start_time": "09:00", "end_time": "11:30", "duration_minutes": 150, "location": "Castelo", "cost_estimate": 12.5, "currency": "EUR"},
					{"type": "food", "title": "Pastel break", "cost_estimate": 0}
				]
			}
		]
	}`

	it, err := ParseGeneratedItinerary(text)
	assert.NoError(t, err)
	assert.Len(t, it.Days, 1)
	assert.Equal(t, 1, it.Days[0].DayNumber)
	assert.Len(t, it.Days[0].Blocks, 3)
	assert.Equal(t, BlockTypeHeading, it.Days[0].Blocks[0].Type)
	assert.Equal(t, 12.5, *it.Days[0].Blocks[1].CostEstimate)
}

func TestParseGeneratedItineraryEmptyDays(t *testing.T) {
	it, err := ParseGeneratedItinerary(`{"days": []}`)
	assert.NoError(t, err)
	assert.Empty(t, it.Days)
}

func TestParseGeneratedItineraryNotJSON(t *testing.T) {
	_, err := ParseGeneratedItinerary("not json")
	assert.Error(t, err)
}

func TestParseGeneratedItineraryMissingDays(t *testing.T) {
	_, err := ParseGeneratedItinerary(`{"itinerary": []}`)
	assert.Error(t, err)
}

func TestParseGeneratedItineraryStructuralChecks(t *testing.T) {
	cases := map[string]string{
		"bad day number": `{"days":[{"day_number":0,"title":"x","summary":"","blocks":[]}]}`,
		"unknown type":   `{"days":[{"day_number":1,"title":"x","summary":"","blocks":[{"type":"party","title":"y"}]}]}`,
		"missing title":  `{"days":[{"day_number":1,"title":"x","summary":"","blocks":[{"type":"activity","title":""}]}]}`,
		"bad time":       `{"days":[{"day_number":1,"title":"x","summary":"","blocks":[{"type":"activity","title":"y","start_time":"25:99"}]}]}`,
		"negative cost":  `{"days":[{"day_number":1,"title":"x","summary":"","blocks":[{"type":"activity","title":"y","cost_estimate":-3}]}]}`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseGeneratedItinerary(text)
			assert.Error(t, err)
		})
	}
}

func TestValidBlockType(t *testing.T) {
	for _, bt := range []BlockType{BlockTypeActivity, BlockTypeTransport, BlockTypeAccommodation, BlockTypeFood, BlockTypeNote, BlockTypeHeading} {
		assert.True(t, ValidBlockType(bt))
	}
	assert.False(t, ValidBlockType("sightseeing"))
}
