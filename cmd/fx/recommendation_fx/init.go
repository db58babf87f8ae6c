package recommendation_fx

import (
	"go.uber.org/fx"

	"moodtrip/internal/catalog"
	"moodtrip/internal/services"
)

var Module = fx.Provide(provideRecommendationService)

func provideRecommendationService(cat *catalog.Catalog) services.RecommendationService {
	return services.NewRecommendationService(cat)
}
