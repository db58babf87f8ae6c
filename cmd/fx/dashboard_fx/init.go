package dashboard_fx

import (
	"go.uber.org/fx"

	"moodtrip/internal/repositories"
	"moodtrip/internal/services"
)

var Module = fx.Provide(provideDashboardService)

func provideDashboardService(accountRepo repositories.AccountRepository, historyRepo repositories.SearchHistoryRepository, itineraryRepo repositories.ItineraryRepository) services.DashboardService {
	return services.NewDashboardService(accountRepo, historyRepo, itineraryRepo)
}
