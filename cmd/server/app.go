// app.go
//
// Backend data service for the roulette name picker
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of roulette-api.
// roulette-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// roulette-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with roulette-api.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/roulette-api/internal/config"
	"github.com/localnerve/roulette-api/internal/handlers"
	"github.com/localnerve/roulette-api/internal/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	_ "github.com/localnerve/roulette-api/docs/api" // Swagger docs
)

// newApp builds the Fiber application. Metrics are registered with registry.
func newApp(cfg *config.Config, db *gorm.DB, registry *prometheus.Registry) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Roulette API " + middleware.APIVersion,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: true,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.VersionMiddleware())

	// Prometheus metrics
	prom := fiberprometheus.NewWithRegistry(registry, "roulette-api", "roulette", "http", nil)
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	root := &handlers.RootHandler{Config: cfg, DB: db}
	app.Get("/", root.Root)
	app.Get("/health", root.Health)
	app.Get("/health/ready", root.Ready)

	// 404 handler
	app.Use(handlers.NotFound)

	return app
}
