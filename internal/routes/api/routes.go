package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kvermeij/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Game session routes
	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Delete("/games/:id", DeleteGame)
	apiGroup.Get("/games/:id/moves", GetMoves)
	apiGroup.Post("/games/:id/moves", SubmitMove)
	apiGroup.Post("/games/:id/undo", UndoMove)
	apiGroup.Post("/games/:id/redo", RedoMove)

	// Archive routes
	apiGroup.Get("/archive", middleware.TokenAuth(), RecentGames)
}
