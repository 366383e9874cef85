package dto

import (
	"time"

	"wanderboard/models"
)

// TripDTO exposes trip fields for API consumers. IDs are hex strings to
// keep transport simple.
type TripDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Destination   string    `json:"destination,omitempty"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	StartDate     string    `json:"start_date,omitempty"`
	EndDate       string    `json:"end_date,omitempty"`
	StayAddress   string    `json:"stay_address,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewTripDTO constructs TripDTO from models.Trip
func NewTripDTO(t models.Trip) TripDTO {
	return TripDTO{
		ID:            t.ID.Hex(),
		Title:         t.Title,
		Description:   t.Description,
		Destination:   t.Destination,
		CoverImageURL: t.CoverImageURL,
		StartDate:     t.StartDate,
		EndDate:       t.EndDate,
		StayAddress:   t.StayAddress,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// CreateTripDTO is the body of POST /api/v1/trips.
type CreateTripDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	Destination string `json:"destination,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	StayAddress string `json:"stay_address,omitempty"`
}

// UpdateTripDTO is the body of PATCH /api/v1/trips/:id.
// Nil pointers mean "leave unchanged".
type UpdateTripDTO struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Destination   *string `json:"destination,omitempty"`
	CoverImageURL *string `json:"cover_image_url,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	StayAddress   *string `json:"stay_address,omitempty"`
	Status        *string `json:"status,omitempty"`
}
