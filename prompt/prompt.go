// Package prompt renders the instruction strings sent to the generation
// service. Building is a pure transformation: absent fields are omitted,
// never padded with placeholders, and no error paths exist.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"wanderboard/models"
)

// SYSTEM_INSTRUCTION is the fixed first message of every generation request.
// It pins the output schema; the user prompt built below carries the
// trip-specific content.
const SYSTEM_INSTRUCTION = `You are a travel planning assistant. You generate detailed day-by-day travel itineraries in JSON format.

Your output must be valid JSON matching this schema:
{
  "days": [
    {
      "day_number": 1,
      "title": "Exploring the Old City",
      "summary": "A day spent wandering through historic neighborhoods...",
      "blocks": [
        {
          "type": "activity" | "transport" | "accommodation" | "food" | "note" | "heading",
          "title": "Visit the Grand Bazaar",
          "description": "Spend the morning exploring...",
          "start_time": "09:00",
          "end_time": "11:30",
          "duration_minutes": 150,
          "location": "Grand Bazaar, Istanbul",
          "cost_estimate": 0,
          "currency": "USD"
        }
      ]
    }
  ]
}

Guidelines:
- Each day should have 4-8 blocks
- Include a mix of activities, food, and transport
- Start each day with a "heading" block for the day theme
- Be specific with times, locations, and cost estimates
- Descriptions should be 1-3 sentences, vivid and helpful
- Cost estimates in USD unless specified
- Always output ONLY the JSON, no markdown or extra text`

// TripContext carries the optional date-range and lodging hints.
// Dates are ISO strings (YYYY-MM-DD); empty means absent.
type TripContext struct {
	StartDate   string
	EndDate     string
	StayAddress string
}

// BuildStrictPrompt renders the strict-mode instruction: the itinerary must
// include every listed item verbatim, so item URLs are kept in the summary.
func BuildStrictPrompt(items []models.InspoItem, destination string, numDays int, tc TripContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %d-day travel itinerary for %s.\n\n", numDays, destinationOrDefault(destination))

	b.WriteString("STRICT MODE: You MUST include ALL of the following specific places, activities, and restaurants from the user's inspiration. Build the itinerary around these exact locations. Do not substitute or replace them with alternatives.\n\n")

	b.WriteString("User's Inspiration Items:\n")
	b.WriteString(renderItemLines(items, true))
	b.WriteString("\n")

	writeContextLines(&b, tc)

	b.WriteString("\nCreate a practical day-by-day plan that visits every single item listed above, arranged in a logical geographic and timing order.")
	return b.String()
}

// BuildCreativePrompt renders the creative-mode instruction: items are a
// taste signal only, so URLs are dropped from the rendered lines.
func BuildCreativePrompt(items []models.InspoItem, destination string, numDays int, tc TripContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %d-day travel itinerary for %s.\n\n", numDays, destinationOrDefault(destination))

	b.WriteString("CREATIVE MODE: Use the following inspiration items to understand the traveler's vibes, interests, and aesthetic preferences. Then create a unique itinerary that captures the SPIRIT of what they like. Feel free to suggest hidden gems, local favorites, and unexpected experiences that match their taste.\n\n")

	b.WriteString("User's Inspiration Vibes:\n")
	b.WriteString(renderItemLines(items, false))
	b.WriteString("\n")

	writeContextLines(&b, tc)

	b.WriteString("\nCreate a creative, surprising itinerary that a travel-savvy adventurer would love. Mix popular spots with off-the-beaten-path discoveries.")
	return b.String()
}

func destinationOrDefault(destination string) string {
	if destination == "" {
		return "this destination"
	}
	return destination
}

// renderItemLines renders one summary line per item, in input order.
// Absent fields are omitted entirely.
func renderItemLines(items []models.InspoItem, includeURLs bool) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		parts := []string{fmt.Sprintf("%d.", i+1)}
		if item.Title != "" {
			parts = append(parts, item.Title)
		}
		if item.Description != "" {
			parts = append(parts, "- "+item.Description)
		}
		if includeURLs && item.URL != "" {
			parts = append(parts, "("+item.URL+")")
		}
		if item.UserNote != "" {
			parts = append(parts, fmt.Sprintf("Note: %q", item.UserNote))
		}
		if len(item.Tags) > 0 {
			parts = append(parts, "Tags: "+strings.Join(item.Tags, ", "))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

func writeContextLines(b *strings.Builder, tc TripContext) {
	if tc.StartDate != "" && tc.EndDate != "" {
		fmt.Fprintf(b, "\nTravel dates: %s to %s. Use the literal calendar dates in the day titles (e.g. \"Day 1 - %s\").\n",
			humanDate(tc.StartDate), humanDate(tc.EndDate), humanDate(tc.StartDate))
	}
	if tc.StayAddress != "" {
		fmt.Fprintf(b, "\nThe traveler is staying at: %s. Order activities so each day starts and ends near this address, and prefer meal suggestions within a reasonable distance of it.\n", tc.StayAddress)
	}
}

// humanDate turns an ISO date into a readable form; unparseable input is
// passed through as-is.
func humanDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("January 2, 2006")
}
