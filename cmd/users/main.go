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
	"github.com/bimbelin/bimbelin/internal/pkg/server"
	"github.com/bimbelin/bimbelin/services/users/handler"
	httpHandler "github.com/bimbelin/bimbelin/services/users/handler/http"
	"github.com/bimbelin/bimbelin/services/users/repository"
	"github.com/bimbelin/bimbelin/services/users/usecase"
)

func main() {
	appName := "users-service"
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

	// Initialize Redis client for the teacher geo index
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(configs, postgresClient)
	locationRepo := repository.NewLocationRepository(redisClient)

	// Initialize use case
	userUC := usecase.NewUserUC(configs, userRepo, locationRepo, appLogger)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(userUC, appLogger)
	userHandler := httpHandler.NewUserHandler(userUC, appLogger)
	h := handler.NewHandler(authHandler, userHandler, configs)

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
