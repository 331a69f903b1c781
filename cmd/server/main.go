// @title           Storyprint Backend API
// @version         1.0.0
// @description     Backend API for the Storyprint photo-book creator. Handles the guided
// @description     creation wizard, page editing with AI captions, the photo library and
// @description     order placement.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storyprint-backend/docs"
	"storyprint-backend/internal/config"
	"storyprint-backend/internal/gemini"
	"storyprint-backend/internal/generation"
	"storyprint-backend/internal/handlers"
	"storyprint-backend/internal/middleware"
	"storyprint-backend/internal/state"
	"storyprint-backend/internal/storage"
	"storyprint-backend/internal/store"
	"storyprint-backend/internal/wizard"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	// Open the persistent store and restore saved state
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	app := state.New(st)
	if err := app.Load(); err != nil {
		log.Printf("Warning: failed to restore saved state: %v", err)
	}

	// Photo ingestion: Supabase bucket when configured, inline data URLs
	// otherwise
	var objectStorage storage.ObjectStorage
	if cfg.SupabaseURL != "" {
		objectStorage, err = storage.NewSupabaseStorage(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseBucket)
		if err != nil {
			log.Fatalf("Failed to initialize supabase storage: %v", err)
		}
	} else {
		log.Println("SUPABASE_URL not set, storing photos as inline data URLs")
		objectStorage = storage.NewDataURLStorage()
	}

	// Generation service over the Gemini client
	geminiClient := gemini.NewClient(cfg.GeminiAPIBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel)
	genService := generation.NewService(geminiClient)

	// Wizard flow
	flow := wizard.NewFlow(genService)

	// Initialize handlers
	wizardHandler := handlers.NewWizardHandler(flow, app, objectStorage)
	projectsHandler := handlers.NewProjectsHandler(app)
	photosHandler := handlers.NewPhotosHandler(app, objectStorage)
	ordersHandler := handlers.NewOrdersHandler(app)
	generateHandler := handlers.NewGenerateHandler(app, genService, objectStorage)

	// Setup router
	router := gin.Default()

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	// Wizard
	api.POST("/wizard", wizardHandler.Start)
	api.GET("/wizard/:session_id", wizardHandler.Get)
	api.POST("/wizard/:session_id/next", wizardHandler.Next)
	api.POST("/wizard/:session_id/back", wizardHandler.Back)
	api.POST("/wizard/:session_id/photo", wizardHandler.UploadPortrait)
	api.DELETE("/wizard/:session_id/photo", wizardHandler.RemovePortrait)
	api.POST("/wizard/:session_id/complete", wizardHandler.Complete)

	// Projects and pages
	api.GET("/projects", projectsHandler.List)
	api.GET("/projects/:project_id", projectsHandler.Get)
	api.POST("/projects/:project_id/open", projectsHandler.Open)
	api.PATCH("/projects/:project_id/pages/:page_index", projectsHandler.UpdatePage)
	api.POST("/projects/:project_id/pages/:page_index/caption", generateHandler.Caption)

	// Photo library
	api.POST("/photos", photosHandler.Upload)
	api.GET("/photos", photosHandler.List)

	// Orders
	api.POST("/orders", ordersHandler.Place)
	api.GET("/orders", ordersHandler.List)
	api.GET("/orders/:order_id", ordersHandler.Get)
	api.GET("/orders/:order_id/pipeline", ordersHandler.Pipeline)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
