package ws

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/kvermeij/reversi/internal/session"
	"github.com/kvermeij/reversi/internal/ws"
)

func handleWs(c *websocket.Conn) {
	manager := c.Locals("sessions").(*session.Manager) //nolint: errcheck

	sess, err := manager.Get(context.Background(), c.Params("id"))
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			slog.Error("ws session lookup error", "error", err)
		}
		_ = c.WriteJSON(ws.Event{Event: "error", Data: fiber.Map{"error": "Game not found"}})
		return
	}

	h := ws.NewHandler(c, sess)
	err = h.Handle()
	if err != nil {
		slog.Error("ws handle error", "error", err)
	}
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App) {
	app.Get("/ws/games/:id", websocket.New(handleWs))
}
