package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderboard/dto"
	"wanderboard/services"
)

// ListTripsHandler godoc
// @Summary      List trips
// @Description  List all trips, most recently updated first
// @Tags         trips
// @Produce      json
// @Success      200  {array}  dto.TripDTO
// @Router       /trips [get]
func ListTripsHandler(svc *services.TripService) gin.HandlerFunc {
	return func(c *gin.Context) {
		trips, err := svc.List(c.Request.Context())
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, trips)
	}
}

// GetTripHandler godoc
// @Summary      Get trip by id
// @Tags         trips
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.TripDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /trips/{id} [get]
func GetTripHandler(svc *services.TripService) gin.HandlerFunc {
	return func(c *gin.Context) {
		trip, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, trip)
	}
}

// CreateTripHandler godoc
// @Summary      Create trip
// @Tags         trips
// @Accept       json
// @Param        body  body  dto.CreateTripDTO  true  "Trip"
// @Produce      json
// @Success      201  {object}  dto.TripDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /trips [post]
func CreateTripHandler(svc *services.TripService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CreateTripDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		trip, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, trip)
	}
}

// UpdateTripHandler godoc
// @Summary      Update trip fields
// @Tags         trips
// @Accept       json
// @Param        id    path  string             true  "ObjectID"
// @Param        body  body  dto.UpdateTripDTO  true  "Fields to change"
// @Produce      json
// @Success      200  {object}  dto.TripDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /trips/{id} [patch]
func UpdateTripHandler(svc *services.TripService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.UpdateTripDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		trip, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, trip)
	}
}

// DeleteTripHandler godoc
// @Summary      Delete trip
// @Description  Delete a trip with its inspo items and itinerary
// @Tags         trips
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /trips/{id} [delete]
func DeleteTripHandler(svc *services.TripService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "deleted"})
	}
}
