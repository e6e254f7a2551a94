package service

import (
	"fmt"
	"strings"

	"travelguide_backend/internal/itinerary/transport"
)

const maxSuggestions = 5

// paceDescriptions translates the pace enum into the fixed phrasing the
// model is instructed with. Unrecognized values fall through with an
// empty description.
var paceDescriptions = map[string]string{
	transport.PaceRelaxed:  "2 to 3 highlights per day with short walking distances and longer meal breaks",
	transport.PaceBalanced: "3 to 4 highlights per day mixing indoor and outdoor activities",
	transport.PaceFast:     "4+ highlights per day with efficient routing between districts",
}

// BuildPrompt renders the natural-language instruction for the model.
// It is a pure function: identical inputs always produce the identical
// string, which keeps prompt output testable byte for byte.
func BuildPrompt(cityName string, prefs NormalizedPreferences, existing []transport.LocationReference) string {
	knownPlaces := "None provided"
	if len(existing) > 0 {
		lines := make([]string, 0, len(existing))
		for _, place := range existing {
			lines = append(lines, fmt.Sprintf("- %s (%s) near %v,%v", place.Name, place.Category, place.Lat, place.Lng))
		}
		knownPlaces = strings.Join(lines, "\n")
	}

	interests := strings.Join(prefs.Interests, ", ")
	if interests == "" {
		interests = "general sightseeing"
	}

	return fmt.Sprintf(`You are an experienced Spanish travel planner creating family-friendly itineraries.
City: %s
Trip length: %d days
Travel pace: %s -> %s
Traveler style: %s
Interests: %s

Known locations already covered in the printed guide:
%s

Goal:
- Suggest up to %d ADDITIONAL locations inside %s that complement the known list.
- Prioritize authentic, well-reviewed spots and include at least one food-related recommendation when interests include food.
- Favor places that match the interests and travel style.
- Provide concise reasons and approximate confidence (0.5 to 0.95).

Response format (valid JSON):
{
  "locations": [
    {
      "id": "string-slug",
      "name": "Place name",
      "description": "1-2 sentence description",
      "lat": number,
      "lng": number,
      "category": "Museum | Food & Drink | Landmark | Park | Viewpoint | Historic Site | Shopping | Religious Site | Neighborhood",
      "reason": "Why this fits the traveler",
      "confidence": 0.0-1.0
    }
  ]
}

Return ONLY the JSON object.`,
		cityName,
		prefs.Days,
		prefs.Pace,
		paceDescriptions[prefs.Pace],
		prefs.Style,
		interests,
		knownPlaces,
		maxSuggestions,
		cityName,
	)
}
