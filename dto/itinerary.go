package dto

import "wanderboard/models"

// AcceptItineraryDTO is the body of POST /api/v1/itinerary: the full days
// array of an accepted GeneratedItinerary.
type AcceptItineraryDTO struct {
	TripID string                `json:"trip_id" binding:"required"`
	Days   []models.GeneratedDay `json:"days" binding:"required"`
}

// UpdateDayDTO is the body of PATCH /api/v1/itinerary/days/:dayId.
type UpdateDayDTO struct {
	Title   *string `json:"title,omitempty"`
	Summary *string `json:"summary,omitempty"`
	Date    *string `json:"date,omitempty"`
}

// CreateBlockDTO is the body of POST /api/v1/itinerary/blocks.
type CreateBlockDTO struct {
	DayID           string   `json:"day_id" binding:"required"`
	Type            string   `json:"type,omitempty"`
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description,omitempty"`
	StartTime       string   `json:"start_time,omitempty"`
	EndTime         string   `json:"end_time,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	Location        string   `json:"location,omitempty"`
	CostEstimate    *float64 `json:"cost_estimate,omitempty"`
	Currency        string   `json:"currency,omitempty"`
	URL             string   `json:"url,omitempty"`
	ImageURL        string   `json:"image_url,omitempty"`
}

// UpdateBlockDTO is the body of PATCH /api/v1/itinerary/blocks/:blockId.
type UpdateBlockDTO struct {
	Type            *string  `json:"type,omitempty"`
	Title           *string  `json:"title,omitempty"`
	Description     *string  `json:"description,omitempty"`
	StartTime       *string  `json:"start_time,omitempty"`
	EndTime         *string  `json:"end_time,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Location        *string  `json:"location,omitempty"`
	CostEstimate    *float64 `json:"cost_estimate,omitempty"`
	Currency        *string  `json:"currency,omitempty"`
	URL             *string  `json:"url,omitempty"`
	ImageURL        *string  `json:"image_url,omitempty"`
}

// ReorderBlocksDTO is the body of PUT /api/v1/itinerary/blocks/reorder.
type ReorderBlocksDTO struct {
	Blocks []BlockMoveDTO `json:"blocks" binding:"required"`
}

type BlockMoveDTO struct {
	ID            string `json:"id" binding:"required"`
	DayID         string `json:"day_id,omitempty"`
	PositionIndex int    `json:"position_index"`
}
