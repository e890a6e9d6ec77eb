package main

import (
	"fmt"
	"os"

	"treasury/internal/config"
	"treasury/internal/logger"
	"treasury/internal/server"
	"treasury/internal/services"
	"treasury/internal/storage"
	"treasury/internal/validator"
)

// @title           Treasury API
// @version         1.0
// @description     Offline cash treasury: transactions, daily reconciliation and user administration.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the key-value store (migrating SQL media)
	handle, err := storage.Open(appConfig)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := handle.Close(); err != nil {
			log.Warnf("storage close error: %v", err)
		}
	}()

	validator.Register()

	svc := server.NewServices(handle.Store, appConfig.Currency, services.NewCalendar(appConfig.Location))
	router := server.NewRouter(svc)

	log.Infow("Starting treasury server",
		"port", appConfig.Port,
		"storage", appConfig.StorageDriver,
		"currency", appConfig.Currency,
		"timezone", appConfig.Location.String(),
	)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
