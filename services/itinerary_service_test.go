package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wanderboard/models"
)

func TestNewAcceptedBlockFillsDefaults(t *testing.T) {
	b := newAcceptedBlock(models.GeneratedBlock{})

	assert.Equal(t, models.BlockTypeActivity, b.Type)
	assert.Equal(t, "Untitled", b.Title)
	assert.Equal(t, "USD", b.Currency)
	assert.True(t, b.AIGenerated)
}

func TestNewAcceptedBlockKeepsProvidedFields(t *testing.T) {
	cost := 42.5
	b := newAcceptedBlock(models.GeneratedBlock{
		Type:            models.BlockTypeFood,
		Title:           "Ichiran Ramen",
		Description:     "Late lunch",
		StartTime:       "13:00",
		EndTime:         "14:00",
		DurationMinutes: 60,
		Location:        "Shibuya",
		CostEstimate:    &cost,
		Currency:        "JPY",
	})

	assert.Equal(t, models.BlockTypeFood, b.Type)
	assert.Equal(t, "Ichiran Ramen", b.Title)
	assert.Equal(t, "JPY", b.Currency)
	assert.Equal(t, "13:00", b.StartTime)
	assert.Equal(t, 60, b.DurationMinutes)
	assert.Equal(t, &cost, b.CostEstimate)
	assert.True(t, b.AIGenerated)
}

func TestNewAcceptedBlockNormalizesUnknownType(t *testing.T) {
	b := newAcceptedBlock(models.GeneratedBlock{Type: "sightseeing", Title: "Temple"})
	assert.Equal(t, models.BlockTypeActivity, b.Type)
	assert.Equal(t, "Temple", b.Title)
}
