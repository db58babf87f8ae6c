package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"moodtrip/cmd/fx/account_fx"
	"moodtrip/cmd/fx/catalog_fx"
	"moodtrip/cmd/fx/controllers_fx"
	"moodtrip/cmd/fx/dashboard_fx"
	"moodtrip/cmd/fx/db_fx"
	"moodtrip/cmd/fx/history_fx"
	"moodtrip/cmd/fx/itinerary_fx"
	"moodtrip/cmd/fx/memcache_fx"
	"moodtrip/cmd/fx/recommendation_fx"
	"moodtrip/internal/api/controllers"
	"moodtrip/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		catalog_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		recommendation_fx.Module,
		history_fx.Module,
		itinerary_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	chatController *controllers.ChatController,
	historyController *controllers.HistoryController,
	itineraryController *controllers.ItineraryController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, chatController, historyController, itineraryController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	chatController *controllers.ChatController,
	historyController *controllers.HistoryController,
	itineraryController *controllers.ItineraryController,
	dashboardController *controllers.DashboardController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)
	accountsGroup.POST("/forgot-password", accountController.ForgotPassword)
	accountsGroup.POST("/reset-password", accountController.ResetPassword)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())

	authed.POST("/chat", chatController.Chat)

	authed.GET("/history", historyController.List)
	authed.POST("/history/:id/rating", historyController.Rate)
	authed.POST("/history/:id/favorite", historyController.Favorite)

	authed.POST("/itineraries", itineraryController.Create)
	authed.GET("/itineraries", itineraryController.List)
	authed.GET("/itineraries/:id", itineraryController.Get)
	authed.POST("/itineraries/:id/optimize", itineraryController.Optimize)
	authed.POST("/itineraries/:id/apply-optimization", itineraryController.ApplyOptimization)

	authed.GET("/dashboard", dashboardController.Get)
}
