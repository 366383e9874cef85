package dto

import (
	"time"

	"wanderboard/models"
)

// InspoItemDTO exposes inspiration item fields for API consumers.
type InspoItemDTO struct {
	ID            string    `json:"id"`
	TripID        string    `json:"trip_id"`
	Type          string    `json:"type"`
	URL           string    `json:"url,omitempty"`
	Title         string    `json:"title,omitempty"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	SiteName      string    `json:"site_name,omitempty"`
	FaviconURL    string    `json:"favicon_url,omitempty"`
	UserNote      string    `json:"user_note,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	PositionIndex int       `json:"position_index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewInspoItemDTO constructs InspoItemDTO from models.InspoItem
func NewInspoItemDTO(it models.InspoItem) InspoItemDTO {
	return InspoItemDTO{
		ID:            it.ID.Hex(),
		TripID:        it.TripID.Hex(),
		Type:          string(it.Type),
		URL:           it.URL,
		Title:         it.Title,
		Description:   it.Description,
		ImageURL:      it.ImageURL,
		SiteName:      it.SiteName,
		FaviconURL:    it.FaviconURL,
		UserNote:      it.UserNote,
		Tags:          it.Tags,
		PositionIndex: it.PositionIndex,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

// CreateInspoDTO is the body of POST /api/v1/inspo.
type CreateInspoDTO struct {
	TripID      string   `json:"trip_id" binding:"required"`
	Type        string   `json:"type,omitempty"`
	URL         string   `json:"url,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	SiteName    string   `json:"site_name,omitempty"`
	FaviconURL  string   `json:"favicon_url,omitempty"`
	UserNote    string   `json:"user_note,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateInspoDTO is the body of PATCH /api/v1/inspo/:id.
type UpdateInspoDTO struct {
	Type        *string   `json:"type,omitempty"`
	URL         *string   `json:"url,omitempty"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	UserNote    *string   `json:"user_note,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

// ReorderInspoDTO is the body of PUT /api/v1/inspo/reorder.
type ReorderInspoDTO struct {
	Items []ReorderEntryDTO `json:"items" binding:"required"`
}

type ReorderEntryDTO struct {
	ID            string `json:"id" binding:"required"`
	PositionIndex int    `json:"position_index"`
}

// ParseURLDTO is the body of POST /api/v1/inspo/parse.
type ParseURLDTO struct {
	URL string `json:"url" binding:"required"`
}
