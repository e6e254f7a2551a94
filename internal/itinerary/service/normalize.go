package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"travelguide_backend/internal/itinerary/transport"

	"github.com/google/uuid"
)

const (
	fallbackName       = "Untitled location"
	fallbackCategory   = "Landmark"
	fallbackConfidence = 0.6
)

// ExtractCandidates locates the first embedded JSON object in the raw model
// reply and returns its "locations" array. The model routinely wraps the
// object in prose, so the slice between the first '{' and the last '}' is
// what gets parsed. Any shape problem, from empty input to truncated JSON
// to a non-array locations field, yields nil rather than an error: garbage
// upstream output degrades to zero suggestions.
func ExtractCandidates(raw string) []any {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return nil
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return nil
	}

	candidates, ok := parsed["locations"].([]any)
	if !ok {
		return nil
	}
	return candidates
}

// NormalizeCandidates coerces untrusted candidate records into the strict
// suggestion schema. Candidates without finite coordinates are dropped;
// relative order of the survivors is preserved. Every surviving record is
// tagged with the machine-origin source.
func NormalizeCandidates(candidates []any) []transport.SuggestedLocation {
	normalized := make([]transport.SuggestedLocation, 0, len(candidates))

	for _, candidate := range candidates {
		fields, ok := candidate.(map[string]any)
		if !ok {
			continue
		}

		lat, latOK := coerceNumber(fields["lat"])
		lng, lngOK := coerceNumber(fields["lng"])
		if !latOK || !lngOK {
			continue
		}

		normalized = append(normalized, transport.SuggestedLocation{
			ID:          stringOr(fields["id"], "ai-"+uuid.NewString()),
			Name:        stringOr(fields["name"], fallbackName),
			Description: stringOr(fields["description"], ""),
			Lat:         lat,
			Lng:         lng,
			Category:    stringOr(fields["category"], fallbackCategory),
			Reason:      stringOr(fields["reason"], ""),
			Confidence:  confidenceOr(fields["confidence"]),
			Source:      transport.SourceAI,
		})
	}

	return normalized
}

func stringOr(value any, fallback string) string {
	if s, ok := value.(string); ok && s != "" {
		return s
	}
	return fallback
}

// coerceNumber accepts JSON numbers and numeric strings; anything else,
// or a non-finite result, disqualifies the candidate.
func coerceNumber(value any) (float64, bool) {
	var n float64
	switch typed := value.(type) {
	case float64:
		n = typed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// confidenceOr only trusts a real JSON number; everything else gets the
// fixed default.
func confidenceOr(value any) float64 {
	if n, ok := value.(float64); ok && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return n
	}
	return fallbackConfidence
}
