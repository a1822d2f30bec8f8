package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"fotomodel-backend/internal/config"
	"fotomodel-backend/internal/database"
	"fotomodel-backend/internal/gemini"
	"fotomodel-backend/internal/handlers"
	"fotomodel-backend/internal/middleware"
	"fotomodel-backend/internal/services"
	"fotomodel-backend/internal/supabase"
	"fotomodel-backend/pkg/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.DatabaseURL == "" {
		log.Error("DATABASE_URL is required; set it to the Supabase PostgreSQL connection string")
		os.Exit(1)
	}

	// Gemini client for background generation
	geminiClient, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiImageModel)
	if err != nil {
		log.Error("failed to initialize gemini client", "error", err)
		os.Exit(1)
	}

	// Supabase clients
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize supabase client", "error", err)
		os.Exit(1)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Error("failed to initialize storage client", "error", err)
		os.Exit(1)
	}

	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)
	authClient := supabase.NewAuthClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to initialize database client", "error", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	// Run migrations
	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Warn("failed to initialize migrator", "error", err)
	} else {
		if err := migrator.Run(); err != nil {
			log.Warn("migration failed", "error", err)
		} else {
			log.Info("migrations completed")
		}
		migrator.Close()
	}

	// Services
	wardrobeService := services.NewWardrobeService(dbClient, dbClient, storageClient)
	galleryService := services.NewGalleryService(dbClient)
	generationService := services.NewGenerationService(dbClient, realtimeClient, cfg.GenerationCreditCost, log)

	// Handlers
	creditsHandler := handlers.NewCreditsHandler(dbClient)
	galleryHandler := handlers.NewGalleryHandler(galleryService)
	wardrobeHandler := handlers.NewWardrobeHandler(wardrobeService, dbClient, storageClient)
	userHandler := handlers.NewUserHandler(dbClient)
	generateHandler := handlers.NewGenerateHandler(geminiClient)
	generationsHandler := handlers.NewGenerationsHandler(generationService)
	chatHandler := handlers.NewChatHandler(dbClient)
	authHandler := handlers.NewAuthHandler(authClient, dbClient)
	webhookHandler := handlers.NewWebhookHandler(cfg, generationService)
	posesHandler := handlers.NewPosesHandler(dbClient)

	// Router
	router := gin.Default()

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// OAuth callback (no auth, establishes the session)
	router.GET("/auth/callback", authHandler.Callback)

	// Reference data seed (no auth, idempotent)
	router.GET("/api/seed-poses", posesHandler.Seed)

	// Pipeline callback (no auth, shared token)
	router.POST("/api/webhooks/generation", webhookHandler.HandleGeneration)

	// API routes
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))

	api.GET("/credits/history", creditsHandler.History)

	api.GET("/gallery", galleryHandler.List)
	api.POST("/gallery/save", galleryHandler.Save)

	api.GET("/wardrobe/can-add", wardrobeHandler.CanAdd)
	api.POST("/wardrobe/save-items", wardrobeHandler.SaveItems)
	api.GET("/wardrobe", wardrobeHandler.List)
	api.DELETE("/wardrobe/:item_id", wardrobeHandler.Delete)

	api.POST("/user/update-name", userHandler.UpdateName)
	api.GET("/user/phone", userHandler.GetPhone)
	api.POST("/user/phone", userHandler.UpdatePhone)

	api.POST("/ai/generate-background", generateHandler.GenerateBackground)

	api.POST("/generations", generationsHandler.Create)
	api.GET("/generations/:generation_id", generationsHandler.Get)

	api.GET("/chat/conversations", chatHandler.ListConversations)
	api.POST("/chat/conversations", chatHandler.CreateConversation)
	api.DELETE("/chat/conversations/:conversation_id", chatHandler.DeleteConversation)

	log.Info("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
