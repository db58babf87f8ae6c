package history_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"moodtrip/internal/repositories"
	"moodtrip/internal/services"
)

var Module = fx.Provide(
	provideHistoryRepo, provideHistoryService)

func provideHistoryRepo(db *gorm.DB) repositories.SearchHistoryRepository {
	return repositories.NewSearchHistoryRepository(db)
}

func provideHistoryService(historyRepo repositories.SearchHistoryRepository) services.HistoryService {
	return services.NewHistoryService(historyRepo)
}
