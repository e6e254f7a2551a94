package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"travelguide_backend/internal/itinerary/transport"
	"travelguide_backend/platform/ai/ollama"
	"travelguide_backend/platform/apperr"
	"travelguide_backend/platform/logger"
	"travelguide_backend/platform/validator"
)

type fakeInvoker struct {
	calls  int
	prompt string
	result *ollama.Result
	err    error
}

func (f *fakeInvoker) Generate(_ context.Context, prompt string) (*ollama.Result, error) {
	f.calls++
	f.prompt = prompt
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestService(invoker *fakeInvoker) *Service {
	return New(invoker, validator.New(), logger.New("development"))
}

func decodeRequest(t *testing.T, raw string) transport.ItineraryRequest {
	t.Helper()
	var req transport.ItineraryRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("failed to decode request fixture: %v", err)
	}
	return req
}

func TestSuggestRejectsMissingCityWithoutUpstreamCall(t *testing.T) {
	invoker := &fakeInvoker{result: &ollama.Result{}}
	svc := newTestService(invoker)

	cases := []string{
		`{}`,
		`{"cityName":"Madrid","preferences":{"days":2,"pace":"relaxed"}}`,
		`{"cityId":"madrid","preferences":{"days":2,"pace":"relaxed"}}`,
	}

	for _, raw := range cases {
		_, err := svc.Suggest(context.Background(), decodeRequest(t, raw))
		if !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("request %s: expected validation error, got %v", raw, err)
		}
		if code := err.(*apperr.Error).Code(); code != "INVALID_PAYLOAD" {
			t.Fatalf("request %s: expected INVALID_PAYLOAD, got %s", raw, code)
		}
	}

	if invoker.calls != 0 {
		t.Fatalf("expected no upstream calls for invalid payloads, got %d", invoker.calls)
	}
}

func TestSuggestRejectsMissingPreferenceFields(t *testing.T) {
	invoker := &fakeInvoker{result: &ollama.Result{}}
	svc := newTestService(invoker)

	cases := []string{
		`{"cityId":"madrid","cityName":"Madrid"}`,
		`{"cityId":"madrid","cityName":"Madrid","preferences":{"days":2}}`,
		`{"cityId":"madrid","cityName":"Madrid","preferences":{"pace":"relaxed"}}`,
	}

	for _, raw := range cases {
		_, err := svc.Suggest(context.Background(), decodeRequest(t, raw))
		if !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("request %s: expected validation error, got %v", raw, err)
		}
	}

	if invoker.calls != 0 {
		t.Fatalf("expected no upstream calls, got %d", invoker.calls)
	}
}

func TestSuggestNormalizesDaysToPositiveInteger(t *testing.T) {
	cases := []struct {
		days string
		want string
	}{
		{`3`, "Trip length: 3 days"},
		{`0`, "Trip length: 1 days"},
		{`-4`, "Trip length: 1 days"},
		{`"abc"`, "Trip length: 1 days"},
		{`"2"`, "Trip length: 2 days"},
		{`null`, "Trip length: 1 days"},
		{`{"nested":true}`, "Trip length: 1 days"},
	}

	for _, tc := range cases {
		invoker := &fakeInvoker{result: &ollama.Result{Response: "{}"}}
		svc := newTestService(invoker)

		raw := `{"cityId":"madrid","cityName":"Madrid","preferences":{"days":` + tc.days + `,"pace":"balanced"}}`
		if _, err := svc.Suggest(context.Background(), decodeRequest(t, raw)); err != nil {
			t.Fatalf("days=%s: unexpected error: %v", tc.days, err)
		}
		if !strings.Contains(invoker.prompt, tc.want) {
			t.Fatalf("days=%s: prompt missing %q", tc.days, tc.want)
		}
	}
}

func TestSuggestTreatsNonArrayInterestsAsEmpty(t *testing.T) {
	invoker := &fakeInvoker{result: &ollama.Result{Response: "{}"}}
	svc := newTestService(invoker)

	raw := `{"cityId":"madrid","cityName":"Madrid","preferences":{"days":2,"pace":"balanced","interests":"tapas"}}`
	if _, err := svc.Suggest(context.Background(), decodeRequest(t, raw)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(invoker.prompt, "Interests: general sightseeing") {
		t.Fatalf("expected general sightseeing fallback, prompt was:\n%s", invoker.prompt)
	}
}

func TestSuggestPassesUnknownPaceThrough(t *testing.T) {
	invoker := &fakeInvoker{result: &ollama.Result{Response: "{}"}}
	svc := newTestService(invoker)

	raw := `{"cityId":"madrid","cityName":"Madrid","preferences":{"days":2,"pace":"leisurely"}}`
	if _, err := svc.Suggest(context.Background(), decodeRequest(t, raw)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(invoker.prompt, "Travel pace: leisurely") {
		t.Fatalf("expected unknown pace passed through, prompt was:\n%s", invoker.prompt)
	}
}

func TestSuggestPropagatesUpstreamErrors(t *testing.T) {
	invoker := &fakeInvoker{err: apperr.Timeout("Ollama did not respond within 15000ms")}
	svc := newTestService(invoker)

	raw := `{"cityId":"madrid","cityName":"Madrid","preferences":{"days":2,"pace":"balanced"}}`
	_, err := svc.Suggest(context.Background(), decodeRequest(t, raw))
	if !apperr.Is(err, apperr.KindTimeout) {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestSuggestMalformedModelOutputYieldsEmptyList(t *testing.T) {
	invoker := &fakeInvoker{result: &ollama.Result{
		Response: "I could not produce JSON this time, sorry!",
		Model:    "llama3.1",
	}}
	svc := newTestService(invoker)

	raw := `{"cityId":"madrid","cityName":"Madrid","preferences":{"days":2,"pace":"balanced"}}`
	resp, err := svc.Suggest(context.Background(), decodeRequest(t, raw))
	if err != nil {
		t.Fatalf("malformed model output must not fail the request: %v", err)
	}
	if len(resp.Locations) != 0 {
		t.Fatalf("expected zero suggestions, got %d", len(resp.Locations))
	}
	if resp.Metadata == nil || resp.Metadata.Model != "llama3.1" {
		t.Fatalf("expected metadata to carry the model name, got %+v", resp.Metadata)
	}
}

func TestSuggestEndToEndMadridExample(t *testing.T) {
	invoker := &fakeInvoker{result: &ollama.Result{
		Response:        `Here you go: {"locations":[{"name":"Chocolatería San Ginés","lat":40.415,"lng":-3.707,"category":"Food & Drink","reason":"matches foodie interest","confidence":0.8}]}`,
		Model:           "llama3.1",
		TotalDuration:   1234,
		PromptEvalCount: 42,
		EvalCount:       7,
	}}
	svc := newTestService(invoker)

	raw := `{"cityId":"madrid","cityName":"Madrid","preferences":{"days":3,"pace":"balanced","style":"family","interests":["foodie finds"]},"existingLocations":[]}`
	resp, err := svc.Suggest(context.Background(), decodeRequest(t, raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Locations) != 1 {
		t.Fatalf("expected exactly one suggestion, got %d", len(resp.Locations))
	}
	got := resp.Locations[0]
	if got.Name != "Chocolatería San Ginés" {
		t.Fatalf("expected suggestion name Chocolatería San Ginés, got %q", got.Name)
	}
	if got.Source != transport.SourceAI {
		t.Fatalf("expected source %q, got %q", transport.SourceAI, got.Source)
	}
	if got.Confidence != 0.8 {
		t.Fatalf("expected confidence 0.8, got %v", got.Confidence)
	}
	if got.ID == "" {
		t.Fatalf("expected a generated id for a suggestion without one")
	}

	if !strings.Contains(invoker.prompt, "City: Madrid") {
		t.Fatalf("prompt missing city name:\n%s", invoker.prompt)
	}
	if !strings.Contains(invoker.prompt, "foodie finds") {
		t.Fatalf("prompt missing interests:\n%s", invoker.prompt)
	}
}
