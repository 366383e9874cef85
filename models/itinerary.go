package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlockType is the kind of one scheduled unit within an itinerary day.
type BlockType string

const (
	BlockTypeActivity      BlockType = "activity"
	BlockTypeTransport     BlockType = "transport"
	BlockTypeAccommodation BlockType = "accommodation"
	BlockTypeFood          BlockType = "food"
	BlockTypeNote          BlockType = "note"
	BlockTypeHeading       BlockType = "heading"
)

// ValidBlockType reports whether t is one of the known block types.
func ValidBlockType(t BlockType) bool {
	switch t {
	case BlockTypeActivity, BlockTypeTransport, BlockTypeAccommodation,
		BlockTypeFood, BlockTypeNote, BlockTypeHeading:
		return true
	}
	return false
}

// ItineraryDay is one day of a trip's itinerary.
// Collection: itinerary_days
type ItineraryDay struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TripID    primitive.ObjectID `bson:"trip_id" json:"trip_id"`
	DayNumber int                `bson:"day_number" json:"day_number"`
	Date      string             `bson:"date,omitempty" json:"date,omitempty"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	Summary   string             `bson:"summary,omitempty" json:"summary,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	// Blocks is populated on reads, never stored on the day document.
	Blocks []ItineraryBlock `bson:"-" json:"blocks"`
}

// ItineraryBlock is one scheduled unit within a day. PositionIndex defines
// the order within the day.
// Collection: itinerary_blocks
type ItineraryBlock struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DayID           primitive.ObjectID `bson:"day_id" json:"day_id"`
	Type            BlockType          `bson:"type" json:"type"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	StartTime       string             `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime         string             `bson:"end_time,omitempty" json:"end_time,omitempty"`
	DurationMinutes int                `bson:"duration_minutes,omitempty" json:"duration_minutes,omitempty"`
	Location        string             `bson:"location,omitempty" json:"location,omitempty"`
	CostEstimate    *float64           `bson:"cost_estimate,omitempty" json:"cost_estimate,omitempty"`
	Currency        string             `bson:"currency" json:"currency"`
	URL             string             `bson:"url,omitempty" json:"url,omitempty"`
	ImageURL        string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	PositionIndex   int                `bson:"position_index" json:"position_index"`
	AIGenerated     bool               `bson:"ai_generated" json:"ai_generated"`
	SourceInspoID   primitive.ObjectID `bson:"source_inspo_id,omitempty" json:"source_inspo_id,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}
