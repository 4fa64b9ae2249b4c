package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kvermeij/reversi/internal/config"
	"github.com/kvermeij/reversi/internal/models"
	"github.com/kvermeij/reversi/internal/repository"
	"github.com/kvermeij/reversi/internal/services"
	"github.com/kvermeij/reversi/internal/session"
)

// lookupSession resolves the :id path parameter to a live session.
func lookupSession(c *fiber.Ctx) (*session.Session, error) {
	manager := c.Locals("sessions").(*session.Manager) //nolint: errcheck
	return manager.Get(c.Context(), c.Params("id"))
}

func sessionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, session.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Game not found",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// CreateGame starts a new game session.
func CreateGame(c *fiber.Ctx) error {
	var payload models.CreateGamePayload
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Bot sessions that do not set a delay get the configured default.
	if payload.BotColor != "" && payload.BotDelayMs == 0 {
		cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck
		payload.BotDelayMs = cfg.BotDelayMs
	}

	manager := c.Locals("sessions").(*session.Manager) //nolint: errcheck
	sess, err := manager.Create(c.Context(), payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewGameResponse(sess.ID(), sess.Game()))
}

// GetGame returns the current state of a game session.
func GetGame(c *fiber.Ctx) error {
	sess, err := lookupSession(c)
	if err != nil {
		return sessionError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(sess.ID(), sess.Game()))
}

// GetMoves returns the legal moves for the active player, with the discs
// each move would flip.
func GetMoves(c *fiber.Ctx) error {
	sess, err := lookupSession(c)
	if err != nil {
		return sessionError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewMoveRecords(sess.Game().MovePreviews()))
}

// SubmitMove plays a move for the active player.
func SubmitMove(c *fiber.Ctx) error {
	var payload models.MovePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	sess, err := lookupSession(c)
	if err != nil {
		return sessionError(c, err)
	}

	if !sess.Submit(payload.Coord()) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Illegal move",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(sess.ID(), sess.Game()))
}

// UndoMove rewinds the game to the previous human turn.
func UndoMove(c *fiber.Ctx) error {
	sess, err := lookupSession(c)
	if err != nil {
		return sessionError(c, err)
	}

	if !sess.Undo() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Nothing to undo",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(sess.ID(), sess.Game()))
}

// RedoMove replays a previously undone turn.
func RedoMove(c *fiber.Ctx) error {
	sess, err := lookupSession(c)
	if err != nil {
		return sessionError(c, err)
	}

	if !sess.Redo() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Nothing to redo",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(sess.ID(), sess.Game()))
}

// DeleteGame drops a game session.
func DeleteGame(c *fiber.Ctx) error {
	manager := c.Locals("sessions").(*session.Manager) //nolint: errcheck

	if err := manager.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

// RecentGames returns the most recently archived games.
func RecentGames(c *fiber.Ctx) error {
	svc := c.Locals("services").(*services.Services) //nolint: errcheck

	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit must be between 1 and 100",
		})
	}

	repo := repository.NewArchiveRepository(svc)
	games, err := repo.RecentGames(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(games)
}
