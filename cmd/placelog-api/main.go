package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"go.uber.org/zap"

	"github.com/adriagil/placelog-api/internal/assets"
	"github.com/adriagil/placelog-api/internal/config"
	"github.com/adriagil/placelog-api/internal/database"
	"github.com/adriagil/placelog-api/internal/handlers"
	"github.com/adriagil/placelog-api/internal/logging"
	"github.com/adriagil/placelog-api/internal/repository"
	"github.com/adriagil/placelog-api/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone %q: %v", cfg.Timezone, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.New(ctx, cfg.MongoURI, cfg.DBName)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close(context.Background()) }()

	if err := db.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	assetStore, err := assets.NewCloudinaryStore(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		log.Fatalf("Failed to create asset store: %v", err)
	}
	reconciler := assets.NewReconciler(assetStore, logger)

	reviewService := services.NewReviewService(repository.NewMongoReviewRepository(db), reconciler, location)
	userService := services.NewUserService(repository.NewMongoUserRepository(db))

	reviewHandler := handlers.NewReviewHandler(reviewService)
	userHandler := handlers.NewUserHandler(userService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	api.Get("/reviews", reviewHandler.List)
	api.Post("/reviews", reviewHandler.Create)
	api.Get("/reviews/:id", reviewHandler.Get)
	api.Patch("/reviews/:id", reviewHandler.Update)
	api.Delete("/reviews/:id", reviewHandler.Delete)

	api.Get("/users", userHandler.List)
	api.Post("/users", userHandler.Create)
	api.Get("/users/:id", userHandler.Get)
	api.Patch("/users/:id", userHandler.Update)
	api.Delete("/users/:id", userHandler.Delete)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info("server starting", zap.String("addr", addr))
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
}
