package catalog

import "testing"

func TestFindDestination(t *testing.T) {
	cat := New()

	dest, found := cat.FindDestination("Goa")
	if !found {
		t.Fatal("expected Goa to be in the catalog")
	}
	if dest.Name != "Goa" {
		t.Errorf("expected name Goa, got %s", dest.Name)
	}
	if len(dest.Attractions) == 0 || len(dest.Food) == 0 {
		t.Error("expected attractions and food to be populated")
	}

	if _, found := cat.FindDestination("Atlantis"); found {
		t.Error("expected unknown destination to be missing")
	}
}

func TestDestinationsForMoodFallback(t *testing.T) {
	cat := New()

	happy := cat.DestinationsForMood(MoodHappy)
	if len(happy) == 0 {
		t.Fatal("expected happy destinations")
	}

	fallback := cat.DestinationsForMood(Mood("angry"))
	if len(fallback) != len(happy) || fallback[0].Name != happy[0].Name {
		t.Error("expected unknown mood to fall back to happy destinations")
	}
}

func TestStayAndDiningRegionMatch(t *testing.T) {
	cat := New()

	stays, dining, matched := cat.StayAndDining("Goa")
	if !matched {
		t.Fatal("expected Goa to match a region")
	}
	if len(stays.MidRange) == 0 || len(dining.StreetFood) == 0 {
		t.Error("expected region data to be populated")
	}

	// "Kerala Backwaters" contains the region key "Kerala".
	_, dining, matched = cat.StayAndDining("Kerala Backwaters")
	if !matched {
		t.Error("expected substring match on Kerala Backwaters")
	}
	if dining.SpecialtyName != "backwater_dining" {
		t.Errorf("expected Kerala specialty, got %s", dining.SpecialtyName)
	}
}

func TestStayAndDiningDefaults(t *testing.T) {
	cat := New()

	stays, dining, matched := cat.StayAndDining("Leh-Ladakh")
	if matched {
		t.Fatal("expected no region match for Leh-Ladakh")
	}
	if len(stays.Budget) == 0 || len(dining.LocalCuisine) == 0 {
		t.Error("expected generic defaults to be populated")
	}
	if dining.SpecialtyName != "cafes" {
		t.Errorf("expected default specialty cafes, got %s", dining.SpecialtyName)
	}
}

func TestEveryMoodHasDestinations(t *testing.T) {
	cat := New()
	for _, mood := range MoodOrder {
		if len(cat.DestinationsForMood(mood)) != 3 {
			t.Errorf("expected 3 destinations for mood %s", mood)
		}
	}
}
