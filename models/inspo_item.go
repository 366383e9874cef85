package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InspoType classifies a saved piece of inspiration.
type InspoType string

const (
	InspoTypeLink    InspoType = "link"
	InspoTypeImage   InspoType = "image"
	InspoTypeVideo   InspoType = "video"
	InspoTypeArticle InspoType = "article"
	InspoTypeNote    InspoType = "note"
)

// ValidInspoType reports whether t is one of the known inspo types.
func ValidInspoType(t InspoType) bool {
	switch t {
	case InspoTypeLink, InspoTypeImage, InspoTypeVideo, InspoTypeArticle, InspoTypeNote:
		return true
	}
	return false
}

// InspoItem is one saved piece of trip inspiration: a link, image, video,
// article or free-form note. PositionIndex defines the display order within
// a trip; it is stable but not necessarily contiguous.
// Collection: inspo_items
type InspoItem struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TripID        primitive.ObjectID `bson:"trip_id" json:"trip_id"`
	Type          InspoType          `bson:"type" json:"type"`
	URL           string             `bson:"url,omitempty" json:"url,omitempty"`
	Title         string             `bson:"title,omitempty" json:"title,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL      string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	SiteName      string             `bson:"site_name,omitempty" json:"site_name,omitempty"`
	FaviconURL    string             `bson:"favicon_url,omitempty" json:"favicon_url,omitempty"`
	UserNote      string             `bson:"user_note,omitempty" json:"user_note,omitempty"`
	Tags          []string           `bson:"tags" json:"tags"`
	PositionIndex int                `bson:"position_index" json:"position_index"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
