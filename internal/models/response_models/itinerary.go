package response_models

// Activity is one scheduled item of a day. Hotel and Restaurant are set only
// on items bound to a specific venue; budget optimization rewrites them.
type Activity struct {
	Time        string   `json:"time"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Hotel       string   `json:"hotel,omitempty"`
	Restaurant  string   `json:"restaurant,omitempty"`
}

type Accommodation struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Checkout bool   `json:"checkout,omitempty"`
}

type DayPlan struct {
	Day           int           `json:"day"`
	Title         string        `json:"title"`
	Activities    []Activity    `json:"activities"`
	Accommodation Accommodation `json:"accommodation"`
}

type BudgetBreakdown struct {
	Accommodation  int `json:"accommodation"`
	Food           int `json:"food"`
	Transportation int `json:"transportation"`
	Activities     int `json:"activities"`
	Total          int `json:"total"`
}

type AccommodationSummary struct {
	PrimaryHotel      string   `json:"primary_hotel"`
	OptimizationLevel string   `json:"optimization_level,omitempty"`
	SelectedTier      string   `json:"selected_tier,omitempty"`
	BudgetOptions     []string `json:"budget_options"`
	MidRangeOptions   []string `json:"mid_range_options,omitempty"`
	LuxuryOptions     []string `json:"luxury_options,omitempty"`
}

type DiningSummary struct {
	FeaturedRestaurants []string `json:"featured_restaurants"`
	OptimizationLevel   string   `json:"optimization_level,omitempty"`
	Focus               string   `json:"focus,omitempty"`
	FineDining          []string `json:"fine_dining,omitempty"`
	LocalCuisine        []string `json:"local_cuisine,omitempty"`
	StreetFood          []string `json:"street_food,omitempty"`
}

type OptimizationApplied struct {
	Level             string `json:"level"`
	OriginalBudget    string `json:"original_budget"`
	OptimizedBudget   string `json:"optimized_budget"`
	Savings           string `json:"savings"`
	SavingsPercentage string `json:"savings_percentage"`
}

// ItineraryPlan is the full generated plan. It is what gets persisted as the
// itinerary's detailed plan and what optimization rewrites in place.
type ItineraryPlan struct {
	Destination                  string               `json:"destination"`
	Duration                     int                  `json:"duration"`
	BudgetRange                  string               `json:"budget_range"`
	EstimatedBudget              string               `json:"estimated_budget"`
	BudgetBreakdown              BudgetBreakdown      `json:"budget_breakdown"`
	BestTime                     string               `json:"best_time"`
	Days                         []DayPlan            `json:"days"`
	AccommodationRecommendations AccommodationSummary `json:"accommodation_recommendations"`
	DiningRecommendations        DiningSummary        `json:"dining_recommendations"`
	TravelTips                   []string             `json:"travel_tips"`
	OptimizationApplied          *OptimizationApplied `json:"optimization_applied,omitempty"`
}
