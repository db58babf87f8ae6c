package services

import (
	"math/rand"
	"strings"
	"testing"

	"moodtrip/internal/catalog"
	"moodtrip/pkg/utils"
)

func TestBuildPlanThreeDays(t *testing.T) {
	cat := catalog.New()
	dest, _ := cat.FindDestination("Goa")
	plan := buildPlan(cat, rand.New(rand.NewSource(42)), dest, 3)

	if plan.Destination != "Goa" || plan.Duration != 3 {
		t.Fatalf("unexpected header: %s/%d", plan.Destination, plan.Duration)
	}
	if len(plan.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(plan.Days))
	}

	if plan.Days[0].Title != "Arrival Day - Welcome to Goa" {
		t.Errorf("day 1 title: %s", plan.Days[0].Title)
	}
	if len(plan.Days[0].Activities) != 5 {
		t.Errorf("arrival day should have 5 activities, got %d", len(plan.Days[0].Activities))
	}

	if !strings.HasPrefix(plan.Days[1].Title, "Day 2 - Exploring ") {
		t.Errorf("day 2 title: %s", plan.Days[1].Title)
	}
	if len(plan.Days[1].Activities) != 6 {
		t.Errorf("exploration day should have 6 activities, got %d", len(plan.Days[1].Activities))
	}

	if plan.Days[2].Title != "Departure Day - Farewell Goa" {
		t.Errorf("day 3 title: %s", plan.Days[2].Title)
	}
	if !plan.Days[2].Accommodation.Checkout {
		t.Error("final day accommodation should be flagged for checkout")
	}
	if len(plan.Days[2].Activities) != 5 {
		t.Errorf("departure day should have 5 activities, got %d", len(plan.Days[2].Activities))
	}
}

func TestBuildPlanBudgetBreakdown(t *testing.T) {
	cat := catalog.New()
	dest, _ := cat.FindDestination("Goa")
	plan := buildPlan(cat, rand.New(rand.NewSource(1)), dest, 4)

	daily, ok := utils.ParseDailyBudget(dest.Budget)
	if !ok {
		t.Fatalf("catalog budget should parse: %s", dest.Budget)
	}
	total := daily * 4

	b := plan.BudgetBreakdown
	if b.Total != total {
		t.Errorf("total: expected %d, got %d", total, b.Total)
	}
	if b.Accommodation != total*40/100 || b.Food != total*30/100 ||
		b.Transportation != total*20/100 || b.Activities != total*10/100 {
		t.Errorf("unexpected split: %+v", b)
	}
	if plan.EstimatedBudget != utils.FormatRupees(total) {
		t.Errorf("estimated budget: %s", plan.EstimatedBudget)
	}
}

func TestBuildPlanSingleDay(t *testing.T) {
	cat := catalog.New()
	dest, _ := cat.FindDestination("Manali")
	plan := buildPlan(cat, rand.New(rand.NewSource(5)), dest, 1)

	if len(plan.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(plan.Days))
	}
	// A one-day trip gets only the arrival template.
	if !strings.HasPrefix(plan.Days[0].Title, "Arrival Day") {
		t.Errorf("expected arrival day, got %s", plan.Days[0].Title)
	}
	if plan.Days[0].Accommodation.Checkout {
		t.Error("arrival day should not be a checkout day")
	}
}

func TestBuildPlanUnparseableBudgetDefaults(t *testing.T) {
	cat := catalog.New()
	dest := catalog.Destination{
		Name:        "Testville",
		Description: "A test town",
		BestTime:    "Anytime",
		Budget:      "free",
		Attractions: []string{"Town Square"},
		Food:        []string{"Street Chaat"},
	}
	plan := buildPlan(cat, rand.New(rand.NewSource(9)), dest, 2)

	if plan.BudgetBreakdown.Total != utils.DefaultDailyBudget*2 {
		t.Errorf("expected default daily budget, got total %d", plan.BudgetBreakdown.Total)
	}
}

func TestBuildPlanRecommendationSections(t *testing.T) {
	cat := catalog.New()
	dest, _ := cat.FindDestination("Goa")
	plan := buildPlan(cat, rand.New(rand.NewSource(2)), dest, 3)

	acc := plan.AccommodationRecommendations
	if acc.PrimaryHotel == "" {
		t.Error("expected a primary hotel")
	}
	if len(acc.BudgetOptions) == 0 || len(acc.BudgetOptions) > 3 {
		t.Errorf("budget options out of range: %d", len(acc.BudgetOptions))
	}
	if len(acc.MidRangeOptions) > 3 || len(acc.LuxuryOptions) > 3 {
		t.Error("tier options should be capped at 3")
	}

	dining := plan.DiningRecommendations
	if len(dining.FeaturedRestaurants) == 0 || len(dining.FeaturedRestaurants) > 6 {
		t.Errorf("featured restaurants out of range: %d", len(dining.FeaturedRestaurants))
	}
	if len(plan.TravelTips) != 9 {
		t.Errorf("expected 9 travel tips, got %d", len(plan.TravelTips))
	}
	if !strings.Contains(plan.TravelTips[0], dest.BestTime) {
		t.Errorf("first tip should mention best time: %s", plan.TravelTips[0])
	}
}

func TestBuildPlanDeterministicForSeed(t *testing.T) {
	cat := catalog.New()
	dest, _ := cat.FindDestination("Udaipur")

	a := buildPlan(cat, rand.New(rand.NewSource(11)), dest, 3)
	b := buildPlan(cat, rand.New(rand.NewSource(11)), dest, 3)

	if a.AccommodationRecommendations.PrimaryHotel != b.AccommodationRecommendations.PrimaryHotel {
		t.Error("same seed should pick the same hotel")
	}
	if len(a.DiningRecommendations.FeaturedRestaurants) != len(b.DiningRecommendations.FeaturedRestaurants) {
		t.Fatal("same seed should pick the same restaurant pool")
	}
	for i := range a.DiningRecommendations.FeaturedRestaurants {
		if a.DiningRecommendations.FeaturedRestaurants[i] != b.DiningRecommendations.FeaturedRestaurants[i] {
			t.Error("same seed should pick the same restaurant pool")
			break
		}
	}
}
