package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TripStatus tracks a trip through the planning flow.
type TripStatus string

const (
	TripStatusPlanning  TripStatus = "planning"
	TripStatusGenerated TripStatus = "generated"
	TripStatusFinalized TripStatus = "finalized"
	TripStatusArchived  TripStatus = "archived"
)

// ValidTripStatus reports whether s is one of the known statuses.
func ValidTripStatus(s TripStatus) bool {
	switch s {
	case TripStatusPlanning, TripStatusGenerated, TripStatusFinalized, TripStatusArchived:
		return true
	}
	return false
}

// Trip is one travel project owned by a user.
// Collection: trips
type Trip struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Destination   string             `bson:"destination,omitempty" json:"destination,omitempty"`
	CoverImageURL string             `bson:"cover_image_url,omitempty" json:"cover_image_url,omitempty"`
	StartDate     string             `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate       string             `bson:"end_date,omitempty" json:"end_date,omitempty"`
	StayAddress   string             `bson:"stay_address,omitempty" json:"stay_address,omitempty"`
	Status        TripStatus         `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
