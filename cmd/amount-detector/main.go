package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thedev2003/amount-detector/internal/api"
	"github.com/thedev2003/amount-detector/internal/api/handlers"
	"github.com/thedev2003/amount-detector/internal/service"
	"github.com/thedev2003/amount-detector/pkg/config"
	"github.com/thedev2003/amount-detector/pkg/logger"

	"go.uber.org/zap"
)

// @title Amount Detection API
// @version 1.0
// @description Extracts financial amounts from receipt/invoice images and raw text.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting amount detector service")

	// Initialize services
	ocrService := service.NewOCRService(&cfg.OCR, appLogger)
	analyzerService := service.NewAnalyzerService(&cfg.Analyzer, appLogger)
	detectService := service.NewDetectionService(ocrService, analyzerService, appLogger)

	// Initialize handlers
	detectHandler := handlers.NewDetectHandler(detectService, appLogger)

	// Setup router
	app := api.SetupRouter(&cfg.Server, detectHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
