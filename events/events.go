package events

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType identifies a domain event on the bus.
type EventType string

const (
	GenerationRequested EventType = "generation.requested"
	GenerationCompleted EventType = "generation.completed"
	GenerationFailed    EventType = "generation.failed"
	ItineraryAccepted   EventType = "itinerary.accepted"
	TripCreated         EventType = "trip.created"
	TripDeleted         EventType = "trip.deleted"
)

// GenerationRequestedEvent fires when an itinerary generation starts.
type GenerationRequestedEvent struct {
	TripID    primitive.ObjectID `json:"trip_id"`
	Mode      string             `json:"mode"`
	NumDays   int                `json:"num_days"`
	Model     string             `json:"model"`
	NumInspos int                `json:"num_inspos"`
}

// GenerationCompletedEvent fires when the model stream finished.
type GenerationCompletedEvent struct {
	TripID     primitive.ObjectID `json:"trip_id"`
	Mode       string             `json:"mode"`
	Model      string             `json:"model"`
	OutputSize int                `json:"output_size"`
}

// GenerationFailedEvent fires when streaming from the model errors out.
type GenerationFailedEvent struct {
	TripID primitive.ObjectID `json:"trip_id"`
	Mode   string             `json:"mode"`
	Reason string             `json:"reason"`
}

// ItineraryAcceptedEvent fires when a generated itinerary replaces the
// trip's current one.
type ItineraryAcceptedEvent struct {
	TripID    primitive.ObjectID `json:"trip_id"`
	NumDays   int                `json:"num_days"`
	NumBlocks int                `json:"num_blocks"`
}

// TripCreatedEvent fires on trip creation.
type TripCreatedEvent struct {
	TripID      primitive.ObjectID `json:"trip_id"`
	Destination string             `json:"destination"`
}

// TripDeletedEvent fires when a trip and its contents are removed.
type TripDeletedEvent struct {
	TripID primitive.ObjectID `json:"trip_id"`
}
