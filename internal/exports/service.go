// Package exports produces downloadable PDF itineraries.
package exports

import (
	"fmt"
	"strings"
	"time"

	"travelguide_backend/internal/cities"
	"travelguide_backend/internal/itinerary/transport"
	"travelguide_backend/internal/pdf"
)

// ExportRequest is the body of POST /api/v1/exports/itinerary. Suggestions
// are optional: the client sends whichever AI proposals the traveler kept.
type ExportRequest struct {
	CityID      string                        `json:"cityId" validate:"required"`
	Suggestions []transport.SuggestedLocation `json:"suggestions"`
}

// Service assembles guide documents from the curated datasets plus any
// accepted AI suggestions.
type Service struct {
	cities *cities.Service
	now    func() time.Time
}

func NewService(citySvc *cities.Service) *Service {
	return &Service{cities: citySvc, now: time.Now}
}

// Export renders the guide for one city. Returns the PDF bytes and the
// download filename.
func (s *Service) Export(req ExportRequest) ([]byte, string, error) {
	city, err := s.cities.CityByID(req.CityID)
	if err != nil {
		return nil, "", err
	}

	locations, err := s.cities.LocationsByCity(req.CityID)
	if err != nil {
		return nil, "", err
	}

	data := pdf.GuideData{
		CityName:    city.Name,
		GeneratedAt: s.now(),
		Locations:   make([]pdf.Entry, 0, len(locations)),
		Suggestions: make([]pdf.SuggestionEntry, 0, len(req.Suggestions)),
	}
	for _, location := range locations {
		data.Locations = append(data.Locations, pdf.Entry{
			Name:        location.Name,
			Category:    location.Category,
			Description: location.Description,
		})
	}
	for _, suggestion := range req.Suggestions {
		data.Suggestions = append(data.Suggestions, pdf.SuggestionEntry{
			Entry: pdf.Entry{
				Name:        suggestion.Name,
				Category:    suggestion.Category,
				Description: suggestion.Description,
			},
			Reason:     suggestion.Reason,
			Confidence: suggestion.Confidence,
		})
	}

	doc, err := pdf.GenerateGuidePDF(data)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s-travel-guide.pdf", strings.ToLower(city.Name))
	return doc, filename, nil
}
