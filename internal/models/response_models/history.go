package response_models

type SearchHistoryResponse struct {
	ID           string   `json:"id"`
	Mood         string   `json:"mood"`
	Query        string   `json:"query"`
	Destinations []string `json:"destinations"`
	Rating       *int     `json:"rating"`
	IsFavorite   bool     `json:"is_favorite"`
	CreatedAt    string   `json:"created_at"`
}
