package response_models

import "moodtrip/internal/catalog"

type RecommendationResponse struct {
	Mood         string                `json:"mood"`
	Query        string                `json:"query"`
	Destinations []catalog.Destination `json:"destinations"`
	Message      string                `json:"message"`
}
