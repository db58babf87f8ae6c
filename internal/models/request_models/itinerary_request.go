package request_models

type CreateItineraryRequest struct {
	Destination string `json:"destination" binding:"required"`
	Duration    int    `json:"duration"`
	StartDate   string `json:"start_date" binding:"required"`
	Mood        string `json:"mood"`
}

type ApplyOptimizationRequest struct {
	OptimizationLevel string `json:"optimization_level" binding:"required,oneof=medium high"`
}

type RateSearchRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

type FavoriteRequest struct {
	Favorite *bool `json:"favorite" binding:"required"`
}
