package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/duetalk/chat-backend/internal/config"
	"github.com/duetalk/chat-backend/internal/database"
	"github.com/duetalk/chat-backend/internal/events"
	"github.com/duetalk/chat-backend/internal/handlers"
	"github.com/duetalk/chat-backend/internal/middleware"
	"github.com/duetalk/chat-backend/internal/repository"
	"github.com/duetalk/chat-backend/internal/routes"
	"github.com/duetalk/chat-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.App.Env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer func() {
		_ = logger.Sync()
	}()
	sugar := logger.Sugar()
	sugar.Infof("starting chat-backend in %s environment on port %d", cfg.App.Env, cfg.App.Port)

	db, mongoClient, err := database.Connect(cfg.Mongo.URI, cfg.Mongo.Database, sugar)
	if err != nil {
		sugar.Fatal(err)
	}

	userRepo := repository.NewMongoUserRepo(db)
	chatRepo := repository.NewMongoChatRepo(db)

	authSvc := services.NewAuthService(userRepo, cfg.Security.PasswordHashCost, sugar)
	chatSvc := services.NewChatService(chatRepo, userRepo, sugar)

	publisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, sugar)
	if publisher == nil {
		sugar.Info("no Kafka brokers configured, event publishing disabled")
	}

	authHandler := handlers.NewAuthHandler(authSvc)
	chatHandler := handlers.NewChatHandler(chatSvc, publisher)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
		IdleTimeout:  cfg.App.IdleTimeout,
		ErrorHandler: handlers.ErrorHandler(sugar),
	})

	app.Use(middleware.Recovery(sugar))
	app.Use(middleware.RequestID())
	app.Use(middleware.Logging(logger))

	routes.Register(app, authHandler, chatHandler)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		if err := app.Listen(addr); err != nil {
			sugar.Fatalf("server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	sugar.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		sugar.Errorf("server shutdown error: %v", err)
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			sugar.Errorf("event publisher close error: %v", err)
		}
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		sugar.Errorf("MongoDB disconnect error: %v", err)
	}

	sugar.Info("shutdown complete")
}
