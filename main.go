package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sh-sahil/emp-repo/client"
	"github.com/sh-sahil/emp-repo/config"
	"github.com/sh-sahil/emp-repo/handler"
	"github.com/sh-sahil/emp-repo/service"
	"github.com/sh-sahil/emp-repo/store"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Connect document store
	ctx := context.Background()
	db, err := store.NewDB(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	userRepo := store.NewUserRepo(db)
	taxDetailsRepo := store.NewTaxDetailsRepo(db)
	responseRepo := store.NewResponseRepo(db)

	// Initialize model client
	modelClient := client.NewHTTPModelClient(cfg.ModelAPIURL)

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	taxService := service.NewTaxService(userRepo, taxDetailsRepo, pdfProcessor, cfg.UploadDir)
	adviceService := service.NewAdviceService(modelClient, responseRepo, userRepo, cfg.RequireJSONAdvice)

	// Initialize handler layer
	taxHandler := handler.NewTaxHandler(taxService)
	adviceHandler := handler.NewAdviceHandler(adviceService)
	userHandler := handler.NewUserHandler(userRepo)

	// Setup Gin router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	// Configure max multipart memory
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Form-16 Tax Advisor",
		})
	})

	// API routes
	router.POST("/upload", taxHandler.Upload)
	router.GET("/tax-details", taxHandler.ListTaxDetails)
	router.POST("/generate", adviceHandler.Generate)
	router.POST("/save-response", adviceHandler.SaveResponse)
	router.POST("/users", userHandler.CreateUser)

	// Start server
	log.Printf("Starting Form-16 Tax Advisor Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
