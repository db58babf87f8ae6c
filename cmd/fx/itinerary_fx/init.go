package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"moodtrip/internal/catalog"
	"moodtrip/internal/repositories"
	"moodtrip/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo, provideOptimizerService, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideOptimizerService(cat *catalog.Catalog) services.OptimizerService {
	return services.NewOptimizerService(cat)
}

func provideItineraryService(cat *catalog.Catalog, optimizer services.OptimizerService, itineraryRepo repositories.ItineraryRepository) services.ItineraryService {
	return services.NewItineraryService(cat, optimizer, itineraryRepo)
}
