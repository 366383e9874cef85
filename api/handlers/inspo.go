package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderboard/dto"
	"wanderboard/services"
)

// ListInspoHandler godoc
// @Summary      List inspo items of a trip
// @Tags         inspo
// @Param        trip_id  query  string  true  "Trip ObjectID"
// @Produce      json
// @Success      200  {array}  dto.InspoItemDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /inspo [get]
func ListInspoHandler(svc *services.InspoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tripID := c.Query("trip_id")
		if tripID == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "trip_id is required"})
			return
		}
		items, err := svc.ListByTrip(c.Request.Context(), tripID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// CreateInspoHandler godoc
// @Summary      Save an inspo item
// @Tags         inspo
// @Accept       json
// @Param        body  body  dto.CreateInspoDTO  true  "Item"
// @Produce      json
// @Success      201  {object}  dto.InspoItemDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /inspo [post]
func CreateInspoHandler(svc *services.InspoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CreateInspoDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		item, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// UpdateInspoHandler godoc
// @Summary      Update an inspo item
// @Tags         inspo
// @Accept       json
// @Param        id    path  string              true  "ObjectID"
// @Param        body  body  dto.UpdateInspoDTO  true  "Fields to change"
// @Produce      json
// @Success      200  {object}  dto.InspoItemDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /inspo/{id} [patch]
func UpdateInspoHandler(svc *services.InspoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.UpdateInspoDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		item, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DeleteInspoHandler godoc
// @Summary      Delete an inspo item
// @Tags         inspo
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /inspo/{id} [delete]
func DeleteInspoHandler(svc *services.InspoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "deleted"})
	}
}

// ReorderInspoHandler godoc
// @Summary      Reorder inspo items
// @Tags         inspo
// @Accept       json
// @Param        body  body  dto.ReorderInspoDTO  true  "New positions"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /inspo/reorder [put]
func ReorderInspoHandler(svc *services.InspoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.ReorderInspoDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		if err := svc.Reorder(c.Request.Context(), in); err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "ok"})
	}
}

// ParseURLHandler godoc
// @Summary      Preview a URL
// @Description  Resolve redirects and extract OpenGraph/oEmbed metadata
// @Tags         inspo
// @Accept       json
// @Param        body  body  dto.ParseURLDTO  true  "URL"
// @Produce      json
// @Success      200  {object}  preview.Preview
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /inspo/parse [post]
func ParseURLHandler(svc *services.PreviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.ParseURLDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		p, err := svc.Resolve(c.Request.Context(), in.URL)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
