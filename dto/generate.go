package dto

import (
	"time"

	"wanderboard/models"
)

// GenerationLogDTO summarizes one generation request for the history
// endpoint. The prompt and inspo snapshots stay server-side.
type GenerationLogDTO struct {
	ID        string    `json:"id"`
	TripID    string    `json:"trip_id"`
	Mode      string    `json:"mode"`
	NumDays   int       `json:"num_days"`
	Model     string    `json:"model"`
	NumInspos int       `json:"num_inspos"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGenerationLogDTO constructs GenerationLogDTO from models.GenerationLog
func NewGenerationLogDTO(l models.GenerationLog) GenerationLogDTO {
	return GenerationLogDTO{
		ID:        l.ID.Hex(),
		TripID:    l.TripID.Hex(),
		Mode:      string(l.Mode),
		NumDays:   l.NumDays,
		Model:     l.Model,
		NumInspos: len(l.InspoSnapshot),
		CreatedAt: l.CreatedAt,
	}
}

// GenerateRequestDTO is the body of POST /api/v1/generate.
// Mode defaults to "creative", NumDays to 3. An absent or empty selection
// means every inspiration item of the trip.
type GenerateRequestDTO struct {
	TripID           string   `json:"trip_id" binding:"required"`
	Mode             string   `json:"mode,omitempty"`
	NumDays          int      `json:"num_days,omitempty"`
	SelectedInspoIDs []string `json:"selected_inspo_ids,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	StayAddress      string   `json:"stay_address,omitempty"`
}
