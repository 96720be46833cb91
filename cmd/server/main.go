package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/localnerve/roulette-api/internal/config"
	"github.com/localnerve/roulette-api/internal/database"
	"github.com/localnerve/roulette-api/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Roulette API
// @version 0.1.0
// @description A roulette application API for random name selection
// @contact.name LocalNerve
// @contact.url https://www.localnerve.com
// @contact.email info@localnerve.com
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logging.Setup(cfg)

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		slog.Error("Failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	app := newApp(cfg, db, registry)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		slog.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	slog.Info("Starting server", slog.String("port", cfg.Port), slog.String("cors_origin", cfg.CORSOrigin))
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Failed to start server", slog.Any("error", err))
		return
	}

	slog.Info("Server stopped")
}
