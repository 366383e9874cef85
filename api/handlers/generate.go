package handlers

import (
	"iter"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wanderboard/dto"
	"wanderboard/logger"
	"wanderboard/services"
	"wanderboard/stream"
	"wanderboard/trace"
)

// GenerateHandler godoc
// @Summary      Generate an itinerary
// @Description  Stream an AI-generated itinerary as SSE data frames. Each
// @Description  frame carries one text fragment; a [DONE] frame terminates
// @Description  a complete stream. A stream that ends without [DONE] failed
// @Description  mid-transfer.
// @Tags         generate
// @Accept       json
// @Param        body  body  dto.GenerateRequestDTO  true  "Request"
// @Produce      text/event-stream
// @Success      200  {string}  string  "SSE stream"
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /generate [post]
func GenerateHandler(svc *services.GenerateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.GenerateRequestDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		ctx := c.Request.Context()
		g, err := svc.Generate(ctx, in)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}

		relayStream(c, g.Stream(ctx))
	}
}

// relayStream copies text fragments to the client as SSE data frames,
// flushing after each one. An upstream failure ends the stream without
// the done frame so consumers can tell completion from truncation.
func relayStream(c *gin.Context, fragments iter.Seq2[string, error]) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	flusher, _ := c.Writer.(http.Flusher)
	flush := func() {
		if flusher != nil {
			flusher.Flush()
		}
	}

	for fragment, err := range fragments {
		if err != nil {
			logger.WarnWithFields("generation stream failed", logger.Fields{
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
				"error":      err.Error(),
			})
			return
		}
		if _, err := c.Writer.Write(stream.EncodeFrame(fragment)); err != nil {
			// client went away
			return
		}
		flush()
	}

	c.Writer.Write(stream.EncodeDone())
	flush()
}

// GenerationHistoryHandler godoc
// @Summary      List generation history of a trip
// @Tags         generate
// @Param        trip_id  query  string  true   "Trip ObjectID"
// @Param        limit    query  int     false  "Max records"
// @Produce      json
// @Success      200  {array}  dto.GenerationLogDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /generate/history [get]
func GenerationHistoryHandler(svc *services.GenerateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tripID := c.Query("trip_id")
		if tripID == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "trip_id is required"})
			return
		}
		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

		logs, err := svc.History(c.Request.Context(), tripID, limit)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, logs)
	}
}
