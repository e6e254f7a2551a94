package cities

import (
	"testing"

	"travelguide_backend/platform/apperr"
)

func TestCitiesListsBothGuideCities(t *testing.T) {
	svc := NewService()

	got := svc.Cities()
	if len(got) != 2 {
		t.Fatalf("expected 2 cities, got %d", len(got))
	}
	if got[0].ID != "madrid" || got[1].ID != "segovia" {
		t.Fatalf("unexpected city order: %q, %q", got[0].ID, got[1].ID)
	}

	// Callers must not be able to corrupt the dataset.
	got[0].Name = "mutated"
	if svc.Cities()[0].Name != "Madrid" {
		t.Fatal("Cities returned the backing slice")
	}
}

func TestCityByID(t *testing.T) {
	svc := NewService()

	city, err := svc.CityByID("segovia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if city.Name != "Segovia" || city.Lat != 40.95 || city.Lng != -4.1251 || city.Zoom != 14 {
		t.Fatalf("unexpected city: %+v", city)
	}

	_, err = svc.CityByID("barcelona")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLocationsByCity(t *testing.T) {
	svc := NewService()

	locations, err := svc.LocationsByCity("madrid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locations) != 8 {
		t.Fatalf("expected 8 Madrid locations, got %d", len(locations))
	}
	if locations[0].ID != "madrid-1" || locations[0].Name != "Museo del Prado" {
		t.Fatalf("unexpected first location: %+v", locations[0])
	}

	_, err = svc.LocationsByCity("barcelona")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDatasetIsInternallyConsistent(t *testing.T) {
	svc := NewService()

	for _, city := range svc.Cities() {
		locations, err := svc.LocationsByCity(city.ID)
		if err != nil {
			t.Fatalf("city %q has no locations: %v", city.ID, err)
		}

		seen := map[string]bool{}
		for _, loc := range locations {
			if loc.ID == "" || loc.Name == "" || loc.Description == "" || loc.Category == "" {
				t.Fatalf("city %q location %q has empty fields", city.ID, loc.ID)
			}
			if seen[loc.ID] {
				t.Fatalf("duplicate location id %q in %q", loc.ID, city.ID)
			}
			seen[loc.ID] = true
			if loc.Lat < 35 || loc.Lat > 45 || loc.Lng > 0 || loc.Lng < -10 {
				t.Fatalf("location %q has implausible coordinates %v,%v", loc.ID, loc.Lat, loc.Lng)
			}
		}
	}
}

func TestReferencesProjectPromptFields(t *testing.T) {
	svc := NewService()

	locations, err := svc.LocationsByCity("segovia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	refs := References(locations)
	if len(refs) != len(locations) {
		t.Fatalf("expected %d references, got %d", len(locations), len(refs))
	}
	if refs[0].ID != "segovia-1" || refs[0].Name != "Roman Aqueduct" || refs[0].Category != CategoryHistoricSite {
		t.Fatalf("unexpected reference: %+v", refs[0])
	}
	if refs[0].Lat != 40.9481 || refs[0].Lng != -4.1187 {
		t.Fatalf("coordinates not carried over: %+v", refs[0])
	}
}
