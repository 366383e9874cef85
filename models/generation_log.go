package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenerationMode selects the itinerary generation strategy.
// Strict must include every selected inspiration item verbatim; creative
// treats the items as a taste signal only.
type GenerationMode string

const (
	ModeStrict   GenerationMode = "strict"
	ModeCreative GenerationMode = "creative"
)

// GenerationLog is an append-only audit record of one generation request.
// Written once before streaming starts, never mutated.
// Collection: generation_logs
type GenerationLog struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TripID         primitive.ObjectID `bson:"trip_id" json:"trip_id"`
	Mode           GenerationMode     `bson:"mode" json:"mode"`
	NumDays        int                `bson:"num_days" json:"num_days"`
	Model          string             `bson:"model" json:"model"`
	PromptSnapshot string             `bson:"prompt_snapshot" json:"prompt_snapshot"`
	InspoSnapshot  []InspoItem        `bson:"inspo_snapshot" json:"inspo_snapshot"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
