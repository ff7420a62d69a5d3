package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"speedboat-api/config"
	"speedboat-api/database"
	"speedboat-api/middleware"
	"speedboat-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with sample data (optional - for development)
	if cfg.Environment == "development" {
		if err := database.SeedData(db); err != nil {
			log.Printf("Warning: Failed to seed database: %v", err)
		}
	}

	// Set Gin mode based on environment
	if cfg.Environment == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	// Request logging middleware
	router.Use(gin.Logger())

	// Recovery middleware
	router.Use(gin.Recovery())

	// API middleware: CORS for stateless JSON clients, request ids,
	// JSON content-type enforcement and error logging
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequireJSON())
	router.Use(middleware.ErrorHandler())

	// Setup routes
	routes.SetupRoutes(router, db)

	// Start server
	log.Printf("Starting Speedboat API server on port %s", cfg.Port)
	log.Printf("Speedboat resource available at: http://localhost:%s/api/speedboats", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
