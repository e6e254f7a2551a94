package cities

// Curated guide data. The dataset is intentionally static: the guide covers
// a fixed pair of cities and the AI endpoint supplies everything dynamic.

var cityList = []City{
	{ID: "madrid", Name: "Madrid", Lat: 40.4168, Lng: -3.7038, Zoom: 13},
	{ID: "segovia", Name: "Segovia", Lat: 40.95, Lng: -4.1251, Zoom: 14},
}

var cityLocations = map[string][]Location{
	"madrid": {
		{
			ID:          "madrid-1",
			Name:        "Museo del Prado",
			Description: "One of the world's finest art museums, housing masterpieces by Velázquez, Goya, and El Greco. Allow 2-3 hours minimum.",
			Lat:         40.4138,
			Lng:         -3.6921,
			Category:    CategoryMuseum,
		},
		{
			ID:          "madrid-2",
			Name:        "Royal Palace of Madrid",
			Description: "Spain's official royal residence. Stunning baroque architecture with over 3,000 rooms. Visit early morning to avoid crowds.",
			Lat:         40.4179,
			Lng:         -3.7143,
			Category:    CategoryHistoricSite,
		},
		{
			ID:          "madrid-3",
			Name:        "Plaza Mayor",
			Description: "Madrid's grand central square surrounded by beautiful historic buildings. Perfect spot for coffee and people-watching.",
			Lat:         40.4155,
			Lng:         -3.7074,
			Category:    CategoryLandmark,
		},
		{
			ID:          "madrid-4",
			Name:        "Retiro Park",
			Description: "A beautiful 125-hectare park perfect for relaxing strolls. Don't miss the Crystal Palace and rowing boats on the lake.",
			Lat:         40.4153,
			Lng:         -3.6844,
			Category:    CategoryPark,
		},
		{
			ID:          "madrid-5",
			Name:        "Gran Vía",
			Description: "Madrid's most famous shopping street. Lined with stunning early 20th-century architecture, shops, and theaters.",
			Lat:         40.4201,
			Lng:         -3.7064,
			Category:    CategoryShopping,
		},
		{
			ID:          "madrid-6",
			Name:        "Puerta del Sol",
			Description: "The symbolic center of Spain and Madrid. Home to the famous Tío Pepe sign and the Bear and Strawberry Tree statue.",
			Lat:         40.4169,
			Lng:         -3.7035,
			Category:    CategoryLandmark,
		},
		{
			ID:          "madrid-7",
			Name:        "Mercado de San Miguel",
			Description: "Historic covered market offering delicious tapas and local delicacies. A foodie paradise near Plaza Mayor.",
			Lat:         40.4155,
			Lng:         -3.7089,
			Category:    CategoryFoodAndDrink,
		},
		{
			ID:          "madrid-8",
			Name:        "Reina Sofía Museum",
			Description: "Home to Picasso's Guernica and modern Spanish art. Essential for art lovers. Free entry Mon-Sat 7-9pm, Sun 1:30-7pm.",
			Lat:         40.408,
			Lng:         -3.6947,
			Category:    CategoryMuseum,
		},
	},
	"segovia": {
		{
			ID:          "segovia-1",
			Name:        "Roman Aqueduct",
			Description: "Incredible 2,000-year-old Roman engineering marvel. The symbol of Segovia. Best photos from Plaza del Azoguejo.",
			Lat:         40.9481,
			Lng:         -4.1187,
			Category:    CategoryHistoricSite,
		},
		{
			ID:          "segovia-2",
			Name:        "Alcázar of Segovia",
			Description: "Fairy-tale castle that inspired Disney's Cinderella Castle. Don't miss the tower climb for panoramic views!",
			Lat:         40.9531,
			Lng:         -4.1312,
			Category:    CategoryHistoricSite,
		},
		{
			ID:          "segovia-3",
			Name:        "Segovia Cathedral",
			Description: "The \"Lady of Spanish Cathedrals\" - stunning Gothic architecture in the heart of the old town.",
			Lat:         40.9529,
			Lng:         -4.1251,
			Category:    CategoryReligiousSite,
		},
		{
			ID:          "segovia-4",
			Name:        "Plaza Mayor",
			Description: "Segovia's charming main square. Surrounded by cafes and shops, perfect for a leisurely break.",
			Lat:         40.949,
			Lng:         -4.1251,
			Category:    CategoryLandmark,
		},
		{
			ID:          "segovia-5",
			Name:        "Mesón de Cándido",
			Description: "THE place for cochinillo (roast suckling pig) - Segovia's signature dish. Reserve ahead! Near the Aqueduct.",
			Lat:         40.9483,
			Lng:         -4.118,
			Category:    CategoryFoodAndDrink,
		},
		{
			ID:          "segovia-6",
			Name:        "José María Restaurant",
			Description: "Another excellent traditional restaurant famous for cochinillo. Locals' favorite with warm atmosphere.",
			Lat:         40.9495,
			Lng:         -4.1255,
			Category:    CategoryFoodAndDrink,
		},
		{
			ID:          "segovia-7",
			Name:        "Mirador de la Pradera de San Marcos",
			Description: "Beautiful viewpoint offering stunning vistas of the Alcázar and city walls. Short walk from the center.",
			Lat:         40.9515,
			Lng:         -4.1335,
			Category:    CategoryViewpoint,
		},
		{
			ID:          "segovia-8",
			Name:        "Jewish Quarter",
			Description: "Historic neighborhood with narrow medieval streets. Rich history and charming atmosphere for exploring.",
			Lat:         40.951,
			Lng:         -4.127,
			Category:    CategoryHistoricSite,
		},
	},
}
