package models

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// GeneratedItinerary is the structured output of the generation service.
// It round-trips losslessly into ItineraryDay/ItineraryBlock on acceptance.
type GeneratedItinerary struct {
	Days []GeneratedDay `json:"days"`
}

type GeneratedDay struct {
	DayNumber int              `json:"day_number"`
	Title     string           `json:"title"`
	Summary   string           `json:"summary"`
	Blocks    []GeneratedBlock `json:"blocks"`
}

type GeneratedBlock struct {
	Type            BlockType `json:"type"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	StartTime       string    `json:"start_time,omitempty"`
	EndTime         string    `json:"end_time,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Location        string    `json:"location,omitempty"`
	CostEstimate    *float64  `json:"cost_estimate,omitempty"`
	Currency        string    `json:"currency,omitempty"`
}

var clockRe = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// ParseGeneratedItinerary parses raw model output into a validated
// GeneratedItinerary. Any unmarshal or structural failure is returned as-is;
// callers surface it as a parse error distinct from transport errors.
func ParseGeneratedItinerary(text string) (*GeneratedItinerary, error) {
	var it GeneratedItinerary
	if err := json.Unmarshal([]byte(text), &it); err != nil {
		return nil, err
	}
	if err := it.Validate(); err != nil {
		return nil, err
	}
	return &it, nil
}

// Validate checks the structural constraints of a generated itinerary
// before it is trusted: present days array, positive day numbers, known
// block types, non-empty titles, HH:MM times and non-negative costs.
func (g *GeneratedItinerary) Validate() error {
	if g.Days == nil {
		return fmt.Errorf("generated itinerary has no days field")
	}
	for i, day := range g.Days {
		if day.DayNumber < 1 {
			return fmt.Errorf("day %d: day_number must be >= 1, got %d", i+1, day.DayNumber)
		}
		for j, b := range day.Blocks {
			if !ValidBlockType(b.Type) {
				return fmt.Errorf("day %d block %d: unknown block type %q", i+1, j+1, b.Type)
			}
			if b.Title == "" {
				return fmt.Errorf("day %d block %d: missing title", i+1, j+1)
			}
			if b.StartTime != "" && !clockRe.MatchString(b.StartTime) {
				return fmt.Errorf("day %d block %d: invalid start_time %q", i+1, j+1, b.StartTime)
			}
			if b.EndTime != "" && !clockRe.MatchString(b.EndTime) {
				return fmt.Errorf("day %d block %d: invalid end_time %q", i+1, j+1, b.EndTime)
			}
			if b.DurationMinutes < 0 {
				return fmt.Errorf("day %d block %d: negative duration_minutes", i+1, j+1)
			}
			if b.CostEstimate != nil && *b.CostEstimate < 0 {
				return fmt.Errorf("day %d block %d: negative cost_estimate", i+1, j+1)
			}
		}
	}
	return nil
}
