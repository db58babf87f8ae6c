package controllers_fx

import (
	"go.uber.org/fx"

	"moodtrip/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewHistoryController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewDashboardController))
