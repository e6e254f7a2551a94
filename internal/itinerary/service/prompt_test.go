package service

import (
	"strings"
	"testing"

	"travelguide_backend/internal/itinerary/transport"
)

func TestBuildPromptIsDeterministic(t *testing.T) {
	prefs := NormalizedPreferences{
		Days:      3,
		Pace:      transport.PaceBalanced,
		Style:     transport.StyleFamily,
		Interests: []string{"tapas", "architecture"},
	}
	existing := []transport.LocationReference{
		{ID: "madrid-1", Name: "Museo del Prado", Lat: 40.4138, Lng: -3.6921, Category: "Museum"},
	}

	first := BuildPrompt("Madrid", prefs, existing)
	second := BuildPrompt("Madrid", prefs, existing)
	if first != second {
		t.Fatalf("prompt builder is not deterministic")
	}
}

func TestBuildPromptEnumeratesExistingLocations(t *testing.T) {
	prefs := NormalizedPreferences{Days: 2, Pace: transport.PaceRelaxed, Style: transport.StyleCulture, Interests: []string{}}
	existing := []transport.LocationReference{
		{Name: "Museo del Prado", Lat: 40.4138, Lng: -3.6921, Category: "Museum"},
		{Name: "Retiro Park", Lat: 40.4153, Lng: -3.6844, Category: "Park"},
	}

	prompt := BuildPrompt("Madrid", prefs, existing)

	if !strings.Contains(prompt, "- Museo del Prado (Museum) near 40.4138,-3.6921") {
		t.Fatalf("prompt missing first known place line:\n%s", prompt)
	}
	if !strings.Contains(prompt, "- Retiro Park (Park) near 40.4153,-3.6844") {
		t.Fatalf("prompt missing second known place line:\n%s", prompt)
	}
	if strings.Contains(prompt, "None provided") {
		t.Fatalf("prompt should not claim no locations were provided")
	}
}

func TestBuildPromptHandlesEmptyLocationList(t *testing.T) {
	prefs := NormalizedPreferences{Days: 1, Pace: transport.PaceFast, Style: transport.StyleNightlife, Interests: []string{}}

	prompt := BuildPrompt("Segovia", prefs, nil)

	if !strings.Contains(prompt, "None provided") {
		t.Fatalf("prompt missing None provided marker:\n%s", prompt)
	}
}

func TestBuildPromptTranslatesPaceEnum(t *testing.T) {
	cases := map[string]string{
		transport.PaceRelaxed:  "2 to 3 highlights per day with short walking distances and longer meal breaks",
		transport.PaceBalanced: "3 to 4 highlights per day mixing indoor and outdoor activities",
		transport.PaceFast:     "4+ highlights per day with efficient routing between districts",
	}

	for pace, phrase := range cases {
		prefs := NormalizedPreferences{Days: 2, Pace: pace, Style: transport.StyleFamily, Interests: []string{}}
		prompt := BuildPrompt("Madrid", prefs, nil)
		if !strings.Contains(prompt, "Travel pace: "+pace+" -> "+phrase) {
			t.Fatalf("pace %s: prompt missing fixed phrase %q", pace, phrase)
		}
	}
}

func TestBuildPromptStatesSuggestionLimitAndSchema(t *testing.T) {
	prefs := NormalizedPreferences{Days: 4, Pace: transport.PaceBalanced, Style: transport.StyleFoodie, Interests: []string{"local food"}}

	prompt := BuildPrompt("Madrid", prefs, nil)

	if !strings.Contains(prompt, "Suggest up to 5 ADDITIONAL locations inside Madrid") {
		t.Fatalf("prompt missing suggestion limit:\n%s", prompt)
	}
	for _, field := range []string{`"id"`, `"name"`, `"description"`, `"lat"`, `"lng"`, `"category"`, `"reason"`, `"confidence"`} {
		if !strings.Contains(prompt, field) {
			t.Fatalf("prompt schema missing field %s", field)
		}
	}
	if !strings.Contains(prompt, "Return ONLY the JSON object.") {
		t.Fatalf("prompt missing JSON-only instruction")
	}
}
