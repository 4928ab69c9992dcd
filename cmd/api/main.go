package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DELasso/Airbnb-Project/internal/config"
	"github.com/DELasso/Airbnb-Project/internal/connect"
	"github.com/DELasso/Airbnb-Project/internal/container"
	"github.com/DELasso/Airbnb-Project/internal/models"
	"github.com/DELasso/Airbnb-Project/internal/routes"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	cld, err := connect.CloudinaryCredentials()
	if err != nil {
		logger.Error("Failed to initialize Cloudinary", "error", err)
		os.Exit(1)
	}
	connect.Cld = cld

	supabaseClient, supaUrl, supaKey, err := connect.InitSupabase()
	if err != nil {
		logger.Error("Failed to connect to Supabase", "error", err)
		os.Exit(1)
	}
	defer connect.Disconnect()

	// Mongo backs favourites and view tracking only. The catalog itself
	// is seeded in memory, so the API still serves listings, reviews and
	// bookings without it.
	var mongoClient *mongo.Client
	if cfg.HasMongoDB() {
		mongoClient, err = connect.MongoDBConnect()
		if err != nil {
			logger.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := connect.MongoDBDisconnect(); err != nil {
				logger.Error("Failed to disconnect MongoDB", "error", err)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := models.MongodbNewRepo(mongoClient).EnsureViewIndexes(ctx); err != nil {
			logger.Warn("Failed to ensure view tracking indexes", "error", err)
		}
		cancel()
	} else {
		logger.Info("MONGODB_URI not set, favourites and view tracking disabled")
	}

	appContainer := container.NewContainer(logger, cld, supabaseClient, mongoClient, supaUrl, supaKey)

	router := routes.SetupRoutes(appContainer)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("Server exited gracefully")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
