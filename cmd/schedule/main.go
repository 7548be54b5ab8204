package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bimbelin/bimbelin/internal/pkg/config"
	"github.com/bimbelin/bimbelin/internal/pkg/constants"
	"github.com/bimbelin/bimbelin/internal/pkg/database"
	"github.com/bimbelin/bimbelin/internal/pkg/health"
	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/middleware"
	nsqpkg "github.com/bimbelin/bimbelin/internal/pkg/nsq"
	"github.com/bimbelin/bimbelin/internal/pkg/server"
	"github.com/bimbelin/bimbelin/services/schedule/handler"
	httpHandler "github.com/bimbelin/bimbelin/services/schedule/handler/http"
	nsqHandler "github.com/bimbelin/bimbelin/services/schedule/handler/nsq"
	"github.com/bimbelin/bimbelin/services/schedule/repository"
	"github.com/bimbelin/bimbelin/services/schedule/usecase"
)

func main() {
	appName := "schedule-service"
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

	// Initialize Redis client for session detail caching
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Initialize repository and use case
	scheduleRepo := repository.NewScheduleRepository(configs, postgresClient)
	scheduleUC := usecase.NewScheduleUC(configs, scheduleRepo, redisClient, appLogger)

	// Consume payment events so paid sessions get marked
	paymentHandler := nsqHandler.NewPaymentEventHandler(scheduleUC, appLogger)
	consumer, err := nsqpkg.NewConsumer(
		constants.TopicPaymentCompleted,
		constants.ChannelScheduleService,
		configs.NSQ.Address,
		paymentHandler.HandlePaymentCompleted,
	)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to start NSQ consumer")
	}
	defer consumer.Stop()

	if len(configs.NSQ.LookupAddresses) > 0 {
		if err := consumer.ConnectToLookupd(configs.NSQ.LookupAddresses); err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to NSQ lookupd")
		}
	}

	// Initialize handlers
	scheduleHandler := httpHandler.NewScheduleHandler(scheduleUC, appLogger)
	h := handler.NewHandler(scheduleHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, appName)
	h.RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(appLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		consumer.Stop()
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
