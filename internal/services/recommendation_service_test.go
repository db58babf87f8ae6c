package services

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"moodtrip/internal/catalog"
)

func newTestRecommendationService(seed int64) *recommendationService {
	return &recommendationService{
		catalog: catalog.New(),
		newRand: func() *rand.Rand { return rand.New(rand.NewSource(seed)) },
	}
}

func TestDetectMoodDefaultsToHappy(t *testing.T) {
	svc := newTestRecommendationService(1)

	for _, text := range []string{"", "qwerty asdf", "the weather is nice"} {
		if mood := svc.DetectMood(text); mood != catalog.MoodHappy {
			t.Errorf("DetectMood(%q) = %s, expected happy", text, mood)
		}
	}
}

func TestDetectMoodKeywords(t *testing.T) {
	svc := newTestRecommendationService(1)

	cases := map[string]catalog.Mood{
		"calm":                                   catalog.MoodCalm,
		"I feel so stressed and tired from work": catalog.MoodStressed,
		"romantic getaway with my partner":       catalog.MoodRomantic,
		"want adventure and trekking":            catalog.MoodAdventurous,
		"PARTY TIME":                             catalog.MoodExcited,
	}
	for text, expected := range cases {
		if mood := svc.DetectMood(text); mood != expected {
			t.Errorf("DetectMood(%q) = %s, expected %s", text, mood, expected)
		}
	}
}

func TestDetectMoodTieBreaksByOrder(t *testing.T) {
	svc := newTestRecommendationService(1)

	// "calm" scores 2 as a prefix and "fun" scores 2 as a suffix; calm is
	// enumerated first so it wins the tie.
	if mood := svc.DetectMood("calm fun"); mood != catalog.MoodCalm {
		t.Errorf("expected tie to resolve to calm, got %s", mood)
	}
}

func TestMoodScoreWeights(t *testing.T) {
	cases := []struct {
		text     string
		expected int
	}{
		{"calm", 3},
		{"calm down everyone", 2},
		{"i am very calm", 2},
		{"a calm place to visit", 1},
	}
	for _, tc := range cases {
		lowered := strings.ToLower(tc.text)
		trimmed := strings.TrimSpace(lowered)
		if got := moodScore(catalog.MoodCalm, lowered, trimmed); got != tc.expected {
			t.Errorf("moodScore(calm, %q) = %d, expected %d", tc.text, got, tc.expected)
		}
	}
}

func TestMoodScorePhrases(t *testing.T) {
	lowered := "i really need a break"
	score := moodScore(catalog.MoodStressed, lowered, lowered)
	// "need break" is not a substring here, so only the phrase fires.
	if score != 2 {
		t.Errorf("expected phrase score 2, got %d", score)
	}
}

func TestRecommendSelectsThreeDistinct(t *testing.T) {
	svc := newTestRecommendationService(7)

	resp := svc.Recommend(catalog.MoodCalm, "want peace")
	if resp.Mood != "calm" {
		t.Errorf("expected mood calm, got %s", resp.Mood)
	}
	if resp.Query != "want peace" {
		t.Errorf("query not echoed back: %s", resp.Query)
	}
	if len(resp.Destinations) != 3 {
		t.Fatalf("expected 3 destinations, got %d", len(resp.Destinations))
	}

	pool := catalog.New().DestinationsForMood(catalog.MoodCalm)
	names := map[string]bool{}
	for _, dest := range pool {
		names[dest.Name] = true
	}
	seen := map[string]bool{}
	for _, dest := range resp.Destinations {
		if !names[dest.Name] {
			t.Errorf("destination %s not in calm pool", dest.Name)
		}
		if seen[dest.Name] {
			t.Errorf("destination %s selected twice", dest.Name)
		}
		seen[dest.Name] = true
	}

	if !strings.Contains(resp.Message, fmt.Sprintf("%d", len(resp.Destinations))) {
		t.Errorf("message should mention the count: %s", resp.Message)
	}
}

func TestRecommendUnknownMoodFallsBack(t *testing.T) {
	svc := newTestRecommendationService(3)

	resp := svc.Recommend(catalog.Mood("angry"), "grr")
	if resp.Mood != "happy" {
		t.Errorf("expected fallback to happy, got %s", resp.Mood)
	}
	if len(resp.Destinations) != 3 {
		t.Errorf("expected 3 destinations, got %d", len(resp.Destinations))
	}
}
