package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opinet-gateway/internal/config"
	httpDelivery "github.com/opinet-gateway/internal/delivery/http"
	"github.com/opinet-gateway/internal/delivery/http/handler"
	"github.com/opinet-gateway/internal/infrastructure/opinet"
	"github.com/opinet-gateway/internal/pkg/logger"
	"github.com/opinet-gateway/internal/pkg/projection"
	"github.com/opinet-gateway/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Coordinate Conversion API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Build coordinate transformers - once per process, shared
	// read-only by every request handler
	katec, err := projection.ParseDefinition(projection.KATECDefinition)
	if err != nil {
		log.Fatal("Failed to parse KATEC definition", zap.Error(err))
	}
	wgs84, err := projection.ParseDefinition(projection.WGS84Definition)
	if err != nil {
		log.Fatal("Failed to parse WGS84 definition", zap.Error(err))
	}

	toWGS84, err := projection.NewTransformer(katec, wgs84)
	if err != nil {
		log.Fatal("Failed to build KATEC->WGS84 transformer", zap.Error(err))
	}
	toKATEC, err := projection.NewTransformer(wgs84, katec)
	if err != nil {
		log.Fatal("Failed to build WGS84->KATEC transformer", zap.Error(err))
	}

	log.Info("Coordinate transformers initialized")

	// 4. Initialize Opinet client
	stationRepo := opinet.NewClient(&cfg.Opinet, log)
	log.Info("Opinet client initialized", zap.String("base_url", cfg.Opinet.BaseURL))

	// 5. Initialize Use Cases
	convertUC := usecase.NewConvertUseCase(toWGS84, toKATEC, log)
	stationUC := usecase.NewStationUseCase(stationRepo, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	convertHandler := handler.NewConvertHandler(convertUC, log)
	stationHandler := handler.NewStationHandler(stationUC, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		convertHandler,
		stationHandler,
	)

	log.Info("HTTP server initialized")

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
