package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bimbelin/bimbelin/internal/pkg/config"
	"github.com/bimbelin/bimbelin/internal/pkg/database"
	"github.com/bimbelin/bimbelin/internal/pkg/health"
	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/middleware"
	nsqpkg "github.com/bimbelin/bimbelin/internal/pkg/nsq"
	"github.com/bimbelin/bimbelin/internal/pkg/server"
	"github.com/bimbelin/bimbelin/services/wallet/gateway"
	"github.com/bimbelin/bimbelin/services/wallet/handler"
	httpHandler "github.com/bimbelin/bimbelin/services/wallet/handler/http"
	"github.com/bimbelin/bimbelin/services/wallet/repository"
	"github.com/bimbelin/bimbelin/services/wallet/usecase"
)

func main() {
	appName := "wallet-service"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithField("app", appName).
		WithField("environment", configs.App.Environment).
		Info("Starting application")

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Initialize NSQ producer for payment and wallet events
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to NSQ")
	}
	defer producer.Stop()

	// Initialize repository
	walletRepo := repository.NewWalletRepository(configs, postgresClient.GetDB())

	// Initialize gateways
	settlementGW := gateway.NewSettlementGateway(configs.Settlement, appLogger)
	eventsGW := gateway.NewPaymentEventsGateway(producer, appLogger)

	// Initialize use case
	walletUC := usecase.NewWalletUC(configs, walletRepo, settlementGW, eventsGW, redisClient, appLogger)

	// Initialize handlers
	walletHandler := httpHandler.NewWalletHandler(walletUC, appLogger)
	h := handler.NewHandler(walletHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, appName)
	h.RegisterRoutes(e)

	// Register cleanup for components that need ordered shutdown
	shutdownManager := server.NewShutdownManager(appLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Error("Server stopped with error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	shutdownManager.Shutdown(ctx)
}
