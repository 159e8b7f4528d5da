// Package router wires the Fiber application: routes, middlewares and the
// handler instance.
package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ratescope/ratescope/internal/config"
	"github.com/ratescope/ratescope/internal/handlers"
	"github.com/ratescope/ratescope/internal/logging"
	"github.com/ratescope/ratescope/internal/middleware"
	"github.com/ratescope/ratescope/internal/repository"
)

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, repo repository.SeriesRepository, cfg config.Config) *handlers.Handler {
	h := handlers.New(logger, repo, cfg.Analytics)

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger))

	// Dashboard and health check
	app.Get("/", h.Dashboard)
	app.Get("/health", h.Health)

	// API v1 routes
	v1 := app.Group("/v1")
	v1.Get("/rates", h.GetRates)
	v1.Post("/rates", h.UpdateRates)
	v1.Get("/rates/stats", h.GetStatistics)
	v1.Get("/rates/moving-average", h.GetMovingAverage)
	v1.Get("/rates/variations", h.GetVariations)
	v1.Get("/rates/chart", h.GetChart)
	v1.Get("/rates/range", h.GetDateRange)

	// 404 handler
	app.Use(h.NotFound)

	return h
}

// New creates a new Fiber app with configuration
func New(logger *logging.Logger, repo repository.SeriesRepository, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Ratescope API",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	Setup(app, logger, repo, cfg)

	return app
}
