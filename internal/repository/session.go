package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kvermeij/reversi/internal/config"
	"github.com/kvermeij/reversi/internal/models"
	"github.com/kvermeij/reversi/internal/services"
	"github.com/kvermeij/reversi/internal/session"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionRepository keeps live session state in Redis so sessions survive
// a server restart. It implements session.Store.
type SessionRepository struct {
	services *services.Services
}

func NewSessionRepository(services *services.Services) *SessionRepository {
	return &SessionRepository{services: services}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Save stores the session state under its key and refreshes the TTL.
func (repo *SessionRepository) Save(ctx context.Context, state *models.SessionState) error {
	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("error marshaling session state: %w", err)
	}

	redisConn := repo.services.Redis

	err = redisConn.Set(ctx, sessionKey(state.ID), jsonData, config.SessionTTL).Err()
	if err != nil {
		return fmt.Errorf("error storing session: %w", err)
	}

	return nil
}

// Load reads a session state. A missing key maps to session.ErrNotFound.
func (repo *SessionRepository) Load(ctx context.Context, id string) (*models.SessionState, error) {
	redisConn := repo.services.Redis

	jsonData, err := redisConn.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("session %s: %w", id, session.ErrNotFound)
		}
		return nil, fmt.Errorf("error getting session: %w", err)
	}

	var state models.SessionState
	if err = json.Unmarshal(jsonData, &state); err != nil {
		return nil, fmt.Errorf("error unmarshaling session state: %w", err)
	}

	return &state, nil
}

// Delete removes a session state. Deleting an absent key is not an error.
func (repo *SessionRepository) Delete(ctx context.Context, id string) error {
	redisConn := repo.services.Redis

	if err := redisConn.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}
