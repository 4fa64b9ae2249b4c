package repository

import (
	"context"
	"fmt"

	"github.com/kvermeij/reversi/internal/models"
	"github.com/kvermeij/reversi/internal/services"
)

// ArchiveRepository records finished games in Postgres. It implements
// session.Archiver.
type ArchiveRepository struct {
	services *services.Services
}

func NewArchiveRepository(services *services.Services) *ArchiveRepository {
	return &ArchiveRepository{services: services}
}

// Archive inserts a finished game. Re-archiving the same session id is a
// no-op, so a replayed game-over notification cannot duplicate rows.
func (repo *ArchiveRepository) Archive(ctx context.Context, game models.FinishedGame) error {
	pgConn := repo.services.Postgres

	query := `
		INSERT INTO finished_games (id, black_score, white_score, winner, plies, final_board, finished_at)
		VALUES (:id, :black_score, :white_score, :winner, :plies, :final_board, :finished_at)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := pgConn.NamedExecContext(ctx, query, game); err != nil {
		return fmt.Errorf("error archiving game: %w", err)
	}

	return nil
}

// RecentGames returns the most recently finished games.
func (repo *ArchiveRepository) RecentGames(ctx context.Context, limit int) ([]models.FinishedGame, error) {
	pgConn := repo.services.Postgres

	query := `
		SELECT id, black_score, white_score, winner, plies, final_board, finished_at
		FROM finished_games
		ORDER BY finished_at DESC
		LIMIT $1
	`

	games := make([]models.FinishedGame, 0)
	if err := pgConn.SelectContext(ctx, &games, query, limit); err != nil {
		return nil, fmt.Errorf("error loading finished games: %w", err)
	}

	return games, nil
}
