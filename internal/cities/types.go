// Package cities serves the static per-city travel guide datasets.
package cities

import "travelguide_backend/internal/itinerary/transport"

// Closed category set used by the curated datasets. AI suggestions may
// carry free-text categories; these are the ones the guide itself uses.
const (
	CategoryMuseum        = "Museum"
	CategoryFoodAndDrink  = "Food & Drink"
	CategoryLandmark      = "Landmark"
	CategoryPark          = "Park"
	CategoryViewpoint     = "Viewpoint"
	CategoryHistoricSite  = "Historic Site"
	CategoryShopping      = "Shopping"
	CategoryReligiousSite = "Religious Site"
	CategoryNeighborhood  = "Neighborhood"
)

// City describes one guide city and its map viewport.
type City struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom"`
}

// Location is one curated point of interest.
type Location struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Category    string  `json:"category"`
}

// References reduces curated locations to the reference shape the
// suggestion prompt consumes as context.
func References(locations []Location) []transport.LocationReference {
	refs := make([]transport.LocationReference, 0, len(locations))
	for _, location := range locations {
		refs = append(refs, transport.LocationReference{
			ID:       location.ID,
			Name:     location.Name,
			Lat:      location.Lat,
			Lng:      location.Lng,
			Category: location.Category,
		})
	}
	return refs
}
