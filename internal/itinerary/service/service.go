// Package service implements the AI suggestion pipeline: validate the
// request, render the prompt, call the model, and normalize its reply.
package service

import (
	"context"

	"travelguide_backend/internal/itinerary/transport"
	"travelguide_backend/platform/ai/ollama"
	"travelguide_backend/platform/apperr"
	"travelguide_backend/platform/logger"
	"travelguide_backend/platform/validator"
)

// Invoker is the upstream generative-text dependency.
type Invoker interface {
	Generate(ctx context.Context, prompt string) (*ollama.Result, error)
}

// NormalizedPreferences is the cleaned preferences block handed to the
// prompt builder. Normalization happens here, never inside the template.
type NormalizedPreferences struct {
	Days      int
	Pace      string
	Style     string
	Interests []string
}

// Service orchestrates one suggestion request from payload to response.
type Service struct {
	invoker Invoker
	val     *validator.Validator
	log     *logger.Logger
}

func New(invoker Invoker, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{invoker: invoker, val: val, log: log}
}

// Suggest runs the full pipeline. Validation failures return before any
// upstream call is made. Upstream failures surface as typed apperr values;
// malformed model output is not a failure and degrades to an empty list.
func (s *Service) Suggest(ctx context.Context, req transport.ItineraryRequest) (*transport.SuggestionsResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	prefs := normalizePreferences(req.Preferences)
	prompt := BuildPrompt(req.CityName, prefs, req.ExistingLocations)

	result, err := s.invoker.Generate(ctx, prompt)
	if err != nil {
		if apperr.GetKind(err) != apperr.KindUnknown {
			s.log.UpstreamError("ollama", "generate", err)
		}
		return nil, err
	}

	locations := NormalizeCandidates(ExtractCandidates(result.Response))

	return &transport.SuggestionsResponse{
		Locations: locations,
		Metadata: &transport.Metadata{
			Model:           result.Model,
			TotalDuration:   result.TotalDuration,
			PromptEvalCount: result.PromptEvalCount,
			EvalCount:       result.EvalCount,
		},
	}, nil
}

// validate enforces the required-field contract: cityId, cityName, and a
// preferences block carrying at least pace and days. Unknown pace or style
// values pass through; the original service accepted them and the model
// copes with free text.
func (s *Service) validate(req transport.ItineraryRequest) error {
	if err := s.val.Struct(req); err != nil {
		return apperr.Validation("cityId and cityName are required.")
	}
	if req.Preferences == nil || req.Preferences.Pace == "" || !req.Preferences.Days.Present() {
		return apperr.Validation("preferences with pace and days are required.")
	}
	return nil
}

// normalizePreferences coerces days to a positive integer (fallback 1 on
// missing, zero, negative or non-numeric input) and guarantees a non-nil
// interests slice.
func normalizePreferences(prefs *transport.TravelPreferences) NormalizedPreferences {
	days := 1
	if n, ok := prefs.Days.Number(); ok && int(n) > 0 {
		days = int(n)
	}

	interests := []string(prefs.Interests)
	if interests == nil {
		interests = []string{}
	}

	return NormalizedPreferences{
		Days:      days,
		Pace:      prefs.Pace,
		Style:     prefs.Style,
		Interests: interests,
	}
}
