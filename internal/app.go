package internal

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kvermeij/reversi/internal/config"
	"github.com/kvermeij/reversi/internal/middleware"
	"github.com/kvermeij/reversi/internal/repository"
	"github.com/kvermeij/reversi/internal/routes"
	"github.com/kvermeij/reversi/internal/services"
	"github.com/kvermeij/reversi/internal/session"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 1024 * 1024 // 1MB
)

func SetupApp() (*fiber.App, *config.ServerConfig) {
	// Load configuration
	cfg := config.LoadServerConfig()

	// Create Fiber app. No prefork: live sessions are held in memory, so
	// all requests for a session must land in the same process.
	app := fiber.New(fiber.Config{
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Initialize services
	services, err := services.InitServices(cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	// Session manager on top of the redis store and the postgres archive
	sessions := session.NewManager(
		repository.NewSessionRepository(services),
		repository.NewArchiveRepository(services),
	)

	// Setup connections to external services and config in Fiber app
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("services", services)
		c.Locals("config", cfg)
		c.Locals("sessions", sessions)
		return c.Next()
	})

	// Add logging middleware
	app.Use(middleware.Logging())

	// Setup all routes
	routes.SetupRoutes(app)

	return app, cfg
}
