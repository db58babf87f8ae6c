package response_models

type ItinerarySummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Destination  string `json:"destination"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	DurationDays int    `json:"duration_days"`
	Budget       string `json:"budget"`
	MoodTag      string `json:"mood_tag"`
	IsCompleted  bool   `json:"is_completed"`
	IsFavorite   bool   `json:"is_favorite"`
}

type DashboardResponse struct {
	DisplayName       string                  `json:"display_name"`
	MemberSince       string                  `json:"member_since"`
	TotalSearches     int64                   `json:"total_searches"`
	TotalItineraries  int64                   `json:"total_itineraries"`
	RecentSearches    []SearchHistoryResponse `json:"recent_searches"`
	RecentItineraries []ItinerarySummary      `json:"recent_itineraries"`
}
