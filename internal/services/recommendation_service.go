package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"moodtrip/internal/catalog"
	"moodtrip/internal/models/response_models"
)

// Keyword tables drive lexical mood detection. An input matches at most one
// weight per keyword: exact match on the trimmed text scores 3, a prefix or
// suffix match scores 2, any other substring occurrence scores 1.
var moodKeywords = map[catalog.Mood][]string{
	catalog.MoodCalm: {"calm", "peaceful", "serene", "quiet", "tranquil", "relaxed", "zen", "meditate",
		"peace", "still", "silence", "soothing", "gentle", "soft", "restful", "mindful"},
	catalog.MoodExcited: {"excited", "energetic", "party", "fun", "adventure", "wild", "crazy", "lively",
		"thrilled", "enthusiastic", "pumped", "hyper", "upbeat", "dynamic", "spirited"},
	catalog.MoodRomantic: {"romantic", "love", "couple", "honeymoon", "intimate", "cozy", "date",
		"partner", "relationship", "valentine", "anniversary", "together", "romantic getaway"},
	catalog.MoodAdventurous: {"adventurous", "thrill", "extreme", "hiking", "trekking", "adrenaline", "challenge",
		"daring", "bold", "brave", "explore", "discover", "expedition", "wilderness"},
	catalog.MoodStressed: {"stressed", "tired", "exhausted", "overwhelmed", "need break", "burnout", "pressure",
		"anxiety", "tension", "worried", "hectic", "busy", "overworked", "mental health"},
	catalog.MoodHappy: {"happy", "joyful", "cheerful", "celebrate", "vibrant", "colorful", "festive",
		"elated", "delighted", "content", "pleased", "optimistic", "positive", "good mood"},
}

// Multi-word phrases score a flat 2 each, on top of any keyword scores.
var moodPhrases = map[catalog.Mood][]string{
	catalog.MoodStressed:    {"need a break", "feeling overwhelmed", "work stress", "too much pressure"},
	catalog.MoodCalm:        {"want peace", "need quiet", "seek tranquility", "peaceful place"},
	catalog.MoodExcited:     {"want fun", "party time", "full of energy", "ready to explore"},
	catalog.MoodRomantic:    {"with partner", "date night", "romantic getaway", "couple trip"},
	catalog.MoodAdventurous: {"want adventure", "thrill seeking", "extreme sports", "mountain climbing"},
	catalog.MoodHappy:       {"feeling good", "want to celebrate", "in good mood", "cheerful"},
}

var moodMessages = map[catalog.Mood]string{
	catalog.MoodCalm:        "I sense you're looking for some tranquility! Here are %d peaceful destinations perfect for your current mood:",
	catalog.MoodExcited:     "You sound full of energy! Here are %d exciting places that match your adventurous spirit:",
	catalog.MoodRomantic:    "Planning something special? Here are %d romantic destinations perfect for you and your loved one:",
	catalog.MoodAdventurous: "Ready for an adrenaline rush? Here are %d thrilling destinations for the adventurer in you:",
	catalog.MoodStressed:    "You need some relaxation! Here are %d stress-free destinations to help you unwind:",
	catalog.MoodHappy:       "I love your positive energy! Here are %d vibrant destinations to keep those good vibes going:",
}

type RecommendationService interface {
	DetectMood(text string) catalog.Mood
	Recommend(mood catalog.Mood, query string) response_models.RecommendationResponse
}

type recommendationService struct {
	catalog *catalog.Catalog
	newRand func() *rand.Rand
}

func NewRecommendationService(cat *catalog.Catalog) RecommendationService {
	return &recommendationService{catalog: cat, newRand: defaultRand}
}

func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// DetectMood scores the text against each mood's keywords and phrases and
// returns the highest scorer. Zero everywhere falls back to happy; ties go
// to the mood scored first.
func (s *recommendationService) DetectMood(text string) catalog.Mood {
	lowered := strings.ToLower(text)
	trimmed := strings.TrimSpace(lowered)

	best := catalog.MoodHappy
	bestScore := 0
	for _, mood := range catalog.MoodOrder {
		score := moodScore(mood, lowered, trimmed)
		if score > bestScore {
			best = mood
			bestScore = score
		}
	}
	return best
}

func moodScore(mood catalog.Mood, lowered string, trimmed string) int {
	score := 0
	for _, keyword := range moodKeywords[mood] {
		if !strings.Contains(lowered, keyword) {
			continue
		}
		switch {
		case keyword == trimmed:
			score += 3
		case strings.HasPrefix(lowered, keyword) || strings.HasSuffix(lowered, keyword):
			score += 2
		default:
			score++
		}
	}
	for _, phrase := range moodPhrases[mood] {
		if strings.Contains(lowered, phrase) {
			score += 2
		}
	}
	return score
}

// Recommend picks up to three destinations for the mood, in random order so
// repeat queries feel fresh.
func (s *recommendationService) Recommend(mood catalog.Mood, query string) response_models.RecommendationResponse {
	if !mood.Valid() {
		mood = catalog.MoodHappy
	}

	pool := s.catalog.DestinationsForMood(mood)
	count := len(pool)
	if count > 3 {
		count = 3
	}

	rng := s.newRand()
	selected := make([]catalog.Destination, 0, count)
	for _, idx := range rng.Perm(len(pool))[:count] {
		selected = append(selected, pool[idx])
	}

	return response_models.RecommendationResponse{
		Mood:         string(mood),
		Query:        query,
		Destinations: selected,
		Message:      responseMessage(mood, len(selected)),
	}
}

func responseMessage(mood catalog.Mood, count int) string {
	format, ok := moodMessages[mood]
	if !ok {
		format = "Here are %d amazing destinations in India for you:"
	}
	return fmt.Sprintf(format, count)
}
