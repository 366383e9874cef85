package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderboard/dto"
	"wanderboard/services"
)

// GetItineraryHandler godoc
// @Summary      Get the itinerary of a trip
// @Tags         itinerary
// @Param        trip_id  query  string  true  "Trip ObjectID"
// @Produce      json
// @Success      200  {array}  models.ItineraryDay
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /itinerary [get]
func GetItineraryHandler(svc *services.ItineraryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tripID := c.Query("trip_id")
		if tripID == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "trip_id is required"})
			return
		}
		days, err := svc.ListByTrip(c.Request.Context(), tripID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, days)
	}
}

// AcceptItineraryHandler godoc
// @Summary      Accept a generated itinerary
// @Description  Replace the trip's itinerary with the generated days and
// @Description  mark the trip as generated
// @Tags         itinerary
// @Accept       json
// @Param        body  body  dto.AcceptItineraryDTO  true  "Generated days"
// @Produce      json
// @Success      201  {array}  models.ItineraryDay
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /itinerary [post]
func AcceptItineraryHandler(svc *services.ItineraryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.AcceptItineraryDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		days, err := svc.Accept(c.Request.Context(), in)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, days)
	}
}

// UpdateDayHandler godoc
// @Summary      Update an itinerary day
// @Tags         itinerary
// @Accept       json
// @Param        dayId  path  string            true  "Day ObjectID"
// @Param        body   body  dto.UpdateDayDTO  true  "Fields to change"
// @Produce      json
// @Success      200  {object}  models.ItineraryDay
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /itinerary/days/{dayId} [patch]
func UpdateDayHandler(svc *services.ItineraryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.UpdateDayDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		day, err := svc.UpdateDay(c.Request.Context(), c.Param("dayId"), in)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, day)
	}
}

// CreateBlockHandler godoc
// @Summary      Add a block to a day
// @Tags         itinerary
// @Accept       json
// @Param        body  body  dto.CreateBlockDTO  true  "Block"
// @Produce      json
// @Success      201  {object}  models.ItineraryBlock
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /itinerary/blocks [post]
func CreateBlockHandler(svc *services.ItineraryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CreateBlockDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		block, err := svc.CreateBlock(c.Request.Context(), in)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, block)
	}
}

// UpdateBlockHandler godoc
// @Summary      Update a block
// @Tags         itinerary
// @Accept       json
// @Param        blockId  path  string              true  "Block ObjectID"
// @Param        body     body  dto.UpdateBlockDTO  true  "Fields to change"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /itinerary/blocks/{blockId} [patch]
func UpdateBlockHandler(svc *services.ItineraryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.UpdateBlockDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		if err := svc.UpdateBlock(c.Request.Context(), c.Param("blockId"), in); err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "ok"})
	}
}

// DeleteBlockHandler godoc
// @Summary      Delete a block
// @Tags         itinerary
// @Param        blockId  path  string  true  "Block ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /itinerary/blocks/{blockId} [delete]
func DeleteBlockHandler(svc *services.ItineraryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteBlock(c.Request.Context(), c.Param("blockId")); err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "deleted"})
	}
}

// ReorderBlocksHandler godoc
// @Summary      Reorder blocks
// @Description  Move blocks within or across days
// @Tags         itinerary
// @Accept       json
// @Param        body  body  dto.ReorderBlocksDTO  true  "Moves"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /itinerary/blocks/reorder [put]
func ReorderBlocksHandler(svc *services.ItineraryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.ReorderBlocksDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		if err := svc.ReorderBlocks(c.Request.Context(), in); err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "ok"})
	}
}
