package services

import (
	"math/rand"
	"strings"
	"testing"

	"moodtrip/internal/catalog"
	"moodtrip/pkg/utils"
)

func newTestOptimizer(seed int64) *optimizerService {
	return &optimizerService{
		catalog: catalog.New(),
		newRand: func() *rand.Rand { return rand.New(rand.NewSource(seed)) },
	}
}

func TestSuggestAmounts(t *testing.T) {
	svc := newTestOptimizer(1)

	result := svc.Suggest("Goa", 3, "₹10,000 per day")
	if result.OriginalBudget != "₹30,000" {
		t.Errorf("original: %s", result.OriginalBudget)
	}
	if result.Medium.OptimizedBudget != "₹22,500" || result.Medium.Savings != "₹7,500" {
		t.Errorf("medium: %+v", result.Medium)
	}
	if result.Medium.SavingsPercentage != "25%" {
		t.Errorf("medium percentage: %s", result.Medium.SavingsPercentage)
	}
	if result.High.OptimizedBudget != "₹7,500" || result.High.Savings != "₹22,500" {
		t.Errorf("high: %+v", result.High)
	}
	if result.High.SavingsPercentage != "75%" {
		t.Errorf("high percentage: %s", result.High.SavingsPercentage)
	}
}

func TestSuggestDefaultBudget(t *testing.T) {
	svc := newTestOptimizer(1)

	result := svc.Suggest("Goa", 3, "whatever")
	if result.OriginalBudget != "₹15,000" {
		t.Errorf("expected flat default, got %s", result.OriginalBudget)
	}
}

func TestSuggestRegionTips(t *testing.T) {
	svc := newTestOptimizer(1)

	goa := svc.Suggest("Goa", 3, "₹5,000 per day")
	foundGoaTip := false
	for _, tip := range goa.Medium.AccommodationTips {
		if strings.Contains(tip, "North Goa") {
			foundGoaTip = true
		}
	}
	if !foundGoaTip {
		t.Error("expected Goa-specific accommodation tip in medium tier")
	}

	// A destination outside any region gets only the base tips.
	generic := svc.Suggest("Leh-Ladakh", 3, "₹5,000 per day")
	if len(generic.Medium.AccommodationTips) != len(mediumBaseTips.accommodation) {
		t.Errorf("expected base tips only, got %d", len(generic.Medium.AccommodationTips))
	}

	// Region tips must not leak into the shared base slices.
	if len(mediumBaseTips.accommodation) != 5 {
		t.Errorf("base medium accommodation tips mutated: %d", len(mediumBaseTips.accommodation))
	}
}

func TestApplyHighOptimization(t *testing.T) {
	cat := catalog.New()
	dest, _ := cat.FindDestination("Goa")
	plan := buildPlan(cat, rand.New(rand.NewSource(42)), dest, 3)
	originalBudget := plan.EstimatedBudget
	originalAmount, _ := utils.ParseRupees(originalBudget)

	svc := newTestOptimizer(7)
	svc.Apply(&plan, "Goa", "high")

	expected := originalAmount * 25 / 100
	if plan.EstimatedBudget != utils.FormatRupees(expected) {
		t.Errorf("expected %s, got %s", utils.FormatRupees(expected), plan.EstimatedBudget)
	}

	applied := plan.OptimizationApplied
	if applied == nil {
		t.Fatal("expected optimization_applied to be set")
	}
	if applied.Level != "high" || applied.SavingsPercentage != "75%" {
		t.Errorf("applied: %+v", applied)
	}
	if applied.OriginalBudget != originalBudget {
		t.Errorf("original budget: %s", applied.OriginalBudget)
	}

	if plan.AccommodationRecommendations.SelectedTier != "budget" {
		t.Errorf("tier: %s", plan.AccommodationRecommendations.SelectedTier)
	}
	if plan.DiningRecommendations.Focus != "street food & local eateries" {
		t.Errorf("focus: %s", plan.DiningRecommendations.Focus)
	}

	hotel := plan.AccommodationRecommendations.PrimaryHotel
	for _, day := range plan.Days {
		if day.Accommodation.Name != hotel || day.Accommodation.Type != "Budget Accommodation" {
			t.Errorf("day %d accommodation not rewritten: %+v", day.Day, day.Accommodation)
		}
	}
	if !plan.Days[2].Accommodation.Checkout {
		t.Error("checkout flag should survive optimization")
	}
}

func TestApplyRewritesVenueReferences(t *testing.T) {
	cat := catalog.New()
	dest, _ := cat.FindDestination("Goa")
	plan := buildPlan(cat, rand.New(rand.NewSource(3)), dest, 3)

	svc := newTestOptimizer(11)
	svc.Apply(&plan, "Goa", "medium")

	hotel := plan.AccommodationRecommendations.PrimaryHotel
	restaurantPool := map[string]bool{}
	for _, name := range plan.DiningRecommendations.FeaturedRestaurants {
		restaurantPool[name] = true
	}

	for _, day := range plan.Days {
		for _, activity := range day.Activities {
			if activity.Hotel != "" {
				if activity.Hotel != hotel {
					t.Errorf("activity hotel not rewritten: %s", activity.Hotel)
				}
				if !strings.Contains(activity.Description, hotel) {
					t.Errorf("description missing new hotel: %s", activity.Description)
				}
			}
			if activity.Restaurant != "" {
				if !restaurantPool[activity.Restaurant] {
					t.Errorf("restaurant %s not from optimized pool", activity.Restaurant)
				}
				if !strings.Contains(activity.Title, activity.Restaurant) &&
					!strings.Contains(activity.Description, activity.Restaurant) {
					t.Errorf("restaurant rename not reflected in text: %s", activity.Title)
				}
			}
		}
	}
}

func TestApplyCompounds(t *testing.T) {
	cat := catalog.New()
	dest, _ := cat.FindDestination("Goa")
	plan := buildPlan(cat, rand.New(rand.NewSource(8)), dest, 3)
	start, _ := utils.ParseRupees(plan.EstimatedBudget)

	svc := newTestOptimizer(2)
	svc.Apply(&plan, "Goa", "medium")
	first, _ := utils.ParseRupees(plan.EstimatedBudget)
	if first != start*75/100 {
		t.Fatalf("first pass: expected %d, got %d", start*75/100, first)
	}

	svc.Apply(&plan, "Goa", "medium")
	second, _ := utils.ParseRupees(plan.EstimatedBudget)
	if second != first*75/100 {
		t.Errorf("second pass should compound on the reduced budget: expected %d, got %d", first*75/100, second)
	}
}

func TestApplyTravelTips(t *testing.T) {
	cat := catalog.New()
	dest, _ := cat.FindDestination("Goa")
	plan := buildPlan(cat, rand.New(rand.NewSource(4)), dest, 3)

	svc := newTestOptimizer(5)
	svc.Apply(&plan, "Goa", "high")

	if len(plan.TravelTips) != 3+len(appliedOptimizationTips["high"]) {
		t.Fatalf("expected %d tips, got %d", 3+len(appliedOptimizationTips["high"]), len(plan.TravelTips))
	}
	if !strings.HasPrefix(plan.TravelTips[0], "Budget optimized for 75% savings") {
		t.Errorf("first tip: %s", plan.TravelTips[0])
	}
	if !strings.Contains(plan.TravelTips[1], plan.AccommodationRecommendations.PrimaryHotel) {
		t.Errorf("second tip should name the hotel: %s", plan.TravelTips[1])
	}

	response := plan.DiningRecommendations
	if response.FineDining != nil || response.LocalCuisine != nil || response.StreetFood != nil {
		t.Error("optimized dining summary should drop the tier lists")
	}
}

func TestRestaurantPoolForLevels(t *testing.T) {
	cat := catalog.New()
	_, dining, _ := cat.StayAndDining("Goa")

	dest, _ := cat.FindDestination("Goa")

	highPlan := buildPlan(cat, rand.New(rand.NewSource(6)), dest, 3)
	svc := newTestOptimizer(9)
	svc.Apply(&highPlan, "Goa", "high")

	// High optimization draws from street food first, then local cuisine.
	allowed := map[string]bool{}
	for _, name := range dining.StreetFood {
		allowed[name] = true
	}
	for _, name := range dining.LocalCuisine {
		allowed[name] = true
	}
	for _, name := range highPlan.DiningRecommendations.FeaturedRestaurants {
		if !allowed[name] {
			t.Errorf("unexpected restaurant in high pool: %s", name)
		}
	}
}
