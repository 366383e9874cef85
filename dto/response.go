package dto

// ErrorResponseDTO is the shared error envelope.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"trip_id is required"`
}

// MessageResponseDTO is the shared plain-message envelope.
type MessageResponseDTO struct {
	Message string `json:"message" example:"ok"`
}
