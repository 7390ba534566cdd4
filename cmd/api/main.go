package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"realtime-checklist/config"
	_ "realtime-checklist/docs" // Swagger docs
	"realtime-checklist/internal/checklist/feed"
	"realtime-checklist/internal/checklist/repository/sqlite"
	"realtime-checklist/internal/httpserver"
	"realtime-checklist/pkg/log"
)

// @title       Realtime Checklist API
// @description Website audit checklists with live progress over a websocket change feed.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Realtime Checklist API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Store
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open SQLite store: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "SQLite store ready at %s", cfg.Database.Path)

	// 4. Change feed
	hub := feed.New(logger, cfg.Realtime.FeedBuffer)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Hub:         hub,
		Auth:        cfg.Auth,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
