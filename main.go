package main

import (
	"log"

	"github.com/pensionbox/meitav-import/client"
	"github.com/pensionbox/meitav-import/config"
	"github.com/pensionbox/meitav-import/handler"
	"github.com/pensionbox/meitav-import/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize bulk-import client
	importClient := client.NewImportClient(cfg.ImportAPIURL)

	// Initialize service layer
	statementService := service.NewStatementService(pdfProcessor, importClient)

	// Initialize handler layer
	statementHandler := handler.NewStatementHandler(statementService, cfg.MaxFileSize)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Meitav Statement Import",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		statements := api.Group("/statements")
		{
			statements.POST("/parse", statementHandler.ParseStatement)
			statements.POST("/raw-text", statementHandler.RawText)
			statements.POST("/import", statementHandler.ImportStatement)
		}
	}

	// Start server
	log.Printf("Starting Meitav Statement Import Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
