package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderboard/dto"
)

func bindAccept(t *testing.T, body string) (dto.AcceptItineraryDTO, error) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/itinerary", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var in dto.AcceptItineraryDTO
	err := c.ShouldBindJSON(&in)
	return in, err
}

// An empty days array is the one itinerary the generator can legitimately
// produce with nothing in it; accepting it wipes the trip's itinerary.
func TestAcceptBodyBindsWithEmptyDays(t *testing.T) {
	in, err := bindAccept(t, `{"trip_id":"64f000000000000000000001","days":[]}`)
	require.NoError(t, err)
	assert.NotNil(t, in.Days)
	assert.Len(t, in.Days, 0)
}

func TestAcceptBodyRejectsMissingDays(t *testing.T) {
	_, err := bindAccept(t, `{"trip_id":"64f000000000000000000001"}`)
	assert.Error(t, err)
}
