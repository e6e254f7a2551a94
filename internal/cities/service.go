package cities

import (
	"fmt"

	"travelguide_backend/platform/apperr"
)

// Service answers lookups against the curated datasets. Reads only; the
// data never changes at runtime so no locking is needed.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Cities lists every guide city.
func (s *Service) Cities() []City {
	out := make([]City, len(cityList))
	copy(out, cityList)
	return out
}

// CityByID finds one city by its identifier.
func (s *Service) CityByID(id string) (City, error) {
	for _, city := range cityList {
		if city.ID == id {
			return city, nil
		}
	}
	return City{}, apperr.NotFound(fmt.Sprintf("unknown city %q", id))
}

// LocationsByCity returns the curated points of interest for a city.
func (s *Service) LocationsByCity(id string) ([]Location, error) {
	locations, ok := cityLocations[id]
	if !ok {
		return nil, apperr.NotFound(fmt.Sprintf("unknown city %q", id))
	}
	out := make([]Location, len(locations))
	copy(out, locations)
	return out, nil
}
