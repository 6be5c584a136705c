package main

import (
	"log"

	"github.com/Aashish23092/receipt-scan-service/client"
	"github.com/Aashish23092/receipt-scan-service/config"
	"github.com/Aashish23092/receipt-scan-service/handler"
	"github.com/Aashish23092/receipt-scan-service/service"
	"github.com/Aashish23092/receipt-scan-service/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize QR decoder and PDF processor
	qrClient := client.NewQRClient()
	pdfProcessor := service.NewPDFProcessor()

	parseOpts := utils.ParseOptions{
		MaxAmount:       decimal.NewFromFloat(cfg.AmountCeiling),
		DefaultCurrency: cfg.DefaultCurrency,
	}

	// Initialize service layer
	scanService := service.NewScanService(tesseractClient, qrClient, pdfProcessor, parseOpts)

	// Initialize handler layer
	scanHandler := handler.NewScanHandler(scanService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Receipt Scan Service",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		scan := api.Group("/scan")
		{
			scan.POST("/text", scanHandler.ScanText)
			scan.POST("/qr", scanHandler.ScanQR)
			scan.POST("/upload", scanHandler.ScanUpload)
		}
		api.GET("/categories", scanHandler.Categories)
		api.GET("/currencies", scanHandler.Currencies)
	}

	// Start server
	log.Printf("Starting Receipt Scan Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
