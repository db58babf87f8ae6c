package response_models

type TierSuggestion struct {
	OptimizedBudget   string   `json:"optimized_budget"`
	Savings           string   `json:"savings"`
	SavingsPercentage string   `json:"savings_percentage"`
	AccommodationTips []string `json:"accommodation_tips"`
	FoodTips          []string `json:"food_tips"`
	TransportTips     []string `json:"transport_tips"`
	ActivityTips      []string `json:"activity_tips"`
}

type OptimizationResult struct {
	OriginalBudget string         `json:"original_budget"`
	Medium         TierSuggestion `json:"medium"`
	High           TierSuggestion `json:"high"`
}
