package exports

import (
	"strings"
	"testing"
	"time"

	"travelguide_backend/internal/cities"
	"travelguide_backend/internal/itinerary/transport"
	"travelguide_backend/platform/apperr"
)

func newTestService() *Service {
	svc := NewService(cities.NewService())
	svc.now = func() time.Time { return time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestExportProducesPDFDocument(t *testing.T) {
	svc := newTestService()

	doc, filename, err := svc.Export(ExportRequest{CityID: "madrid"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filename != "madrid-travel-guide.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
	if !strings.HasPrefix(string(doc), "%PDF") {
		t.Fatalf("output is not a PDF document, starts with %q", string(doc[:min(len(doc), 8)]))
	}
	if len(doc) < 1000 {
		t.Fatalf("document suspiciously small: %d bytes", len(doc))
	}
}

func TestExportIncludesAcceptedSuggestions(t *testing.T) {
	svc := newTestService()

	withSuggestions, _, err := svc.Export(ExportRequest{
		CityID: "segovia",
		Suggestions: []transport.SuggestedLocation{
			{
				ID: "ai-1", Name: "Casa de los Picos", Description: "Renaissance facade studded with granite points.",
				Lat: 40.9486, Lng: -4.1222, Category: "Landmark",
				Reason: "short detour from the Aqueduct", Confidence: 0.8, Source: transport.SourceAI,
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	without, _, err := svc.Export(ExportRequest{CityID: "segovia"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(withSuggestions) <= len(without) {
		t.Fatalf("suggestions did not grow the document: %d vs %d bytes", len(withSuggestions), len(without))
	}
}

func TestExportUnknownCity(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Export(ExportRequest{CityID: "barcelona"})
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
