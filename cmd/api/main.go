package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jobpulse/jobpulse/internal/auth"
	"github.com/jobpulse/jobpulse/internal/config"
	"github.com/jobpulse/jobpulse/internal/database"
	"github.com/jobpulse/jobpulse/internal/handlers"
	"github.com/jobpulse/jobpulse/internal/services"
	"github.com/jobpulse/jobpulse/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}
	cfg := config.Load()

	// 2. Storage: postgres for signed-in users, seeded memory store for demo
	db := database.Connect(cfg.DatabaseDSN)
	primary := store.NewGormStore(db)
	demo := store.NewDemoStore(time.Now())
	st := store.NewRoutedStore(primary, demo)

	// 3. Core Services
	jobService := services.NewJobService(st)
	reminderService := services.NewReminderService(st)
	analyticsService := services.NewAnalyticsService(st)
	subscriptionService := services.NewSubscriptionService(st)

	// 4. Identity
	google := auth.NewGoogleAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectURL)
	sessions := auth.NewSessionManager()
	if !google.Configured() {
		log.Println("Google OAuth not configured; only demo sessions will work")
	}

	// 5. Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	authHandler := handlers.NewAuthHandler(google, sessions, st)

	// 6. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	if cfg.AllowedOrigin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.AllowedOrigin}
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.GET("/auth/login", authHandler.Login)
		api.GET("/auth/callback", authHandler.Callback)
		api.POST("/auth/demo", authHandler.Demo)
		api.POST("/auth/logout", authHandler.Logout)

		private := api.Group("")
		private.Use(auth.Middleware(sessions))
		{
			private.GET("/auth/me", authHandler.Me)

			private.GET("/jobs", jobHandler.List)
			private.POST("/jobs", jobHandler.Create)
			private.GET("/jobs/:id", jobHandler.Get)
			private.PUT("/jobs/:id", jobHandler.Update)
			private.DELETE("/jobs/:id", jobHandler.Delete)

			private.GET("/analytics", analyticsHandler.Metrics)
			private.GET("/calendar", analyticsHandler.Calendar)

			private.GET("/reminders", reminderHandler.List)
			private.POST("/reminders", reminderHandler.Create)
			private.PATCH("/reminders/:id/toggle", reminderHandler.Toggle)
			private.DELETE("/reminders/:id", reminderHandler.Delete)

			private.GET("/subscription", subscriptionHandler.Current)
			private.POST("/subscription/checkout", subscriptionHandler.Checkout)
			private.POST("/subscription/cancel", subscriptionHandler.Cancel)
		}
	}

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
