// Package transport defines the wire types for the AI itinerary endpoint.
package transport

import (
	"encoding/json"
	"strconv"
)

// SourceAI tags every suggestion produced by the generative model.
const SourceAI = "ai"

// Travel pace values understood by the prompt builder. Unrecognized values
// are passed through to the model rather than rejected.
const (
	PaceRelaxed  = "relaxed"
	PaceBalanced = "balanced"
	PaceFast     = "fast"
)

// Travel style values. Passed through like pace.
const (
	StyleFamily    = "family"
	StyleCulture   = "culture"
	StyleFoodie    = "foodie"
	StyleNightlife = "nightlife"
)

// FlexibleNumber accepts any JSON value without failing the decode and
// remembers whether a usable number was present. Client payloads routinely
// carry "3" where 3 is meant; the normalization step decides what to do
// with non-numeric values.
type FlexibleNumber struct {
	present bool
	value   float64
	valid   bool
}

// UnmarshalJSON never returns an error: a malformed value is recorded as
// present-but-not-numeric so validation can distinguish "missing" from "junk".
func (f *FlexibleNumber) UnmarshalJSON(data []byte) error {
	f.present = true
	f.valid = false

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		f.value = n
		f.valid = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			f.value = parsed
			f.valid = true
		}
	}

	return nil
}

// MarshalJSON writes the numeric value when one exists, null otherwise.
func (f FlexibleNumber) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// Present reports whether the field appeared in the payload at all.
func (f FlexibleNumber) Present() bool { return f.present }

// Number returns the numeric value and whether one was usable.
func (f FlexibleNumber) Number() (float64, bool) { return f.value, f.valid }

// NumberOf builds a valid FlexibleNumber, mainly for request construction.
func NumberOf(v float64) FlexibleNumber {
	return FlexibleNumber{present: true, value: v, valid: true}
}

// FlexibleStrings accepts a JSON array and keeps its string elements.
// Any other shape decodes to an empty list instead of failing.
type FlexibleStrings []string

// UnmarshalJSON never returns an error; non-array input yields nil.
func (f *FlexibleStrings) UnmarshalJSON(data []byte) error {
	*f = nil

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			result = append(result, s)
		}
	}
	*f = result
	return nil
}

// TravelPreferences is the raw preferences block as sent by the client.
type TravelPreferences struct {
	Days      FlexibleNumber  `json:"days"`
	Pace      string          `json:"pace"`
	Style     string          `json:"style"`
	Interests FlexibleStrings `json:"interests"`
}

// LocationReference is a known itinerary entry fed to the prompt as context.
// It is never persisted.
type LocationReference struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Category string  `json:"category"`
}

// ItineraryRequest is the body of POST /api/ai/itinerary.
type ItineraryRequest struct {
	CityID            string              `json:"cityId" validate:"required"`
	CityName          string              `json:"cityName" validate:"required"`
	Preferences       *TravelPreferences  `json:"preferences"`
	ExistingLocations []LocationReference `json:"existingLocations"`
}

// SuggestedLocation is one normalized machine-proposed point of interest.
// Lifetime is the single response; nothing is stored.
type SuggestedLocation struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Category    string  `json:"category"`
	Reason      string  `json:"reason"`
	Confidence  float64 `json:"confidence"`
	Source      string  `json:"source"`
}

// Metadata reports what the upstream model disclosed about the generation.
type Metadata struct {
	Model           string `json:"model,omitempty"`
	TotalDuration   int64  `json:"total_duration,omitempty"`
	PromptEvalCount int    `json:"prompt_eval_count,omitempty"`
	EvalCount       int    `json:"eval_count,omitempty"`
}

// SuggestionsResponse is the success body of POST /api/ai/itinerary.
type SuggestionsResponse struct {
	Locations []SuggestedLocation `json:"locations"`
	Metadata  *Metadata           `json:"metadata,omitempty"`
}
