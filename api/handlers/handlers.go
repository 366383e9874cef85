package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderboard/dto"
	"wanderboard/services"
)

// abortWithServiceError maps service-level errors onto HTTP statuses.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTripNotFound),
		errors.Is(err, services.ErrDayNotFound),
		errors.Is(err, services.ErrInspoNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrNoInspoItems),
		errors.Is(err, services.ErrInvalidPayload),
		errors.Is(err, services.ErrInvalidURL):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
	}
}
