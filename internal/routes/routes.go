package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kvermeij/reversi/internal/routes/api"
	"github.com/kvermeij/reversi/internal/routes/version"
	"github.com/kvermeij/reversi/internal/routes/ws"
)

func rootHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"name": "reversi", "status": "ok"})
}

func SetupRoutes(app *fiber.App) {
	// Serve API routes
	api.SetupRoutes(app)

	// Serve websocket notifications
	ws.SetupRoutes(app)

	// Serve version info
	version.SetupRoutes(app)

	// Serve root page
	app.Get("/", rootHandler)
}
