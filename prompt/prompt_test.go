package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"wanderboard/models"
	"wanderboard/prompt"
)

func lisbonItems() []models.InspoItem {
	return []models.InspoItem{
		{
			Title:       "Time Out Market",
			Description: "Food hall with 40+ vendors",
			URL:         "https://www.timeoutmarket.com/lisboa",
			Tags:        []string{"food", "market"},
		},
		{
			Title:    "Tram 28 ride",
			URL:      "https://example.com/tram28",
			UserNote: "go early to beat the line",
		},
		{
			Title: "LX Factory",
		},
	}
}

func TestBuildStrictPromptListsEveryItemInOrder(t *testing.T) {
	p := prompt.BuildStrictPrompt(lisbonItems(), "Lisbon", 2, prompt.TripContext{})

	assert.Contains(t, p, "Generate a 2-day travel itinerary for Lisbon.")
	assert.Contains(t, p, "STRICT MODE")

	i1 := strings.Index(p, "1. Time Out Market")
	i2 := strings.Index(p, "2. Tram 28 ride")
	i3 := strings.Index(p, "3. LX Factory")
	assert.True(t, i1 >= 0 && i2 > i1 && i3 > i2, "items must appear once, in input order")

	// strict mode keeps URLs
	assert.Contains(t, p, "(https://www.timeoutmarket.com/lisboa)")
	assert.Contains(t, p, "(https://example.com/tram28)")
}

func TestBuildCreativePromptOmitsURLs(t *testing.T) {
	p := prompt.BuildCreativePrompt(lisbonItems(), "Lisbon", 3, prompt.TripContext{})

	assert.Contains(t, p, "CREATIVE MODE")
	assert.NotContains(t, p, "timeoutmarket.com")
	assert.NotContains(t, p, "example.com/tram28")
	// everything else still renders
	assert.Contains(t, p, "1. Time Out Market - Food hall with 40+ vendors")
	assert.Contains(t, p, `Note: "go early to beat the line"`)
	assert.Contains(t, p, "Tags: food, market")
}

func TestRenderOmitsAbsentFields(t *testing.T) {
	items := []models.InspoItem{{Title: "Sintra day trip"}}
	p := prompt.BuildStrictPrompt(items, "", 1, prompt.TripContext{})

	assert.Contains(t, p, "1. Sintra day trip\n")
	assert.NotContains(t, p, "Note:")
	assert.NotContains(t, p, "Tags:")
	assert.NotContains(t, p, "()")
	assert.Contains(t, p, "this destination")
}

func TestOneLinePerItem(t *testing.T) {
	items := lisbonItems()
	p := prompt.BuildCreativePrompt(items, "Lisbon", 2, prompt.TripContext{})

	for _, marker := range []string{"1. ", "2. ", "3. "} {
		assert.Equal(t, 1, strings.Count(p, marker), "item marker %q must appear exactly once", marker)
	}
}

func TestDateRangeContext(t *testing.T) {
	tc := prompt.TripContext{StartDate: "2026-04-03", EndDate: "2026-04-05"}
	p := prompt.BuildStrictPrompt(lisbonItems(), "Lisbon", 3, tc)

	assert.Contains(t, p, "April 3, 2026 to April 5, 2026")
	assert.Contains(t, p, "literal calendar dates")
}

func TestStayAddressContext(t *testing.T) {
	tc := prompt.TripContext{StayAddress: "Rua da Prata 80, Baixa"}
	p := prompt.BuildCreativePrompt(lisbonItems(), "Lisbon", 3, tc)

	assert.Contains(t, p, "staying at: Rua da Prata 80, Baixa")
	assert.Contains(t, p, "meal suggestions")
}

func TestNoContextNoContextLines(t *testing.T) {
	p := prompt.BuildStrictPrompt(lisbonItems(), "Lisbon", 2, prompt.TripContext{})
	assert.NotContains(t, p, "Travel dates:")
	assert.NotContains(t, p, "staying at:")

	// only one of the two dates present renders nothing
	p = prompt.BuildStrictPrompt(lisbonItems(), "Lisbon", 2, prompt.TripContext{StartDate: "2026-04-03"})
	assert.NotContains(t, p, "Travel dates:")
}

func TestSystemInstructionSchema(t *testing.T) {
	assert.Contains(t, prompt.SYSTEM_INSTRUCTION, `"days"`)
	assert.Contains(t, prompt.SYSTEM_INSTRUCTION, "day_number")
	assert.Contains(t, prompt.SYSTEM_INSTRUCTION, "4-8 blocks")
	assert.Contains(t, prompt.SYSTEM_INSTRUCTION, "ONLY the JSON")
}
