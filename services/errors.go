package services

import "errors"

// Validation errors handlers map onto HTTP status codes.
var (
	ErrTripNotFound   = errors.New("trip not found")
	ErrDayNotFound    = errors.New("itinerary day not found")
	ErrInspoNotFound  = errors.New("inspo item not found")
	ErrInvalidID      = errors.New("invalid id")
	ErrNoInspoItems   = errors.New("no inspo items to generate from")
	ErrInvalidPayload = errors.New("invalid payload")
)
