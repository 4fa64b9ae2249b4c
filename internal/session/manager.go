package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kvermeij/reversi/internal/config"
	"github.com/kvermeij/reversi/internal/models"
	"github.com/kvermeij/reversi/internal/reversi"
)

// Manager owns the live game sessions. Each session is created, looked up
// and deleted through the manager, which also revives sessions from the
// store after a restart.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	store    Store
	archiver Archiver
}

// NewManager creates a session manager on top of a store and an archiver.
func NewManager(store Store, archiver Archiver) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		store:    store,
		archiver: archiver,
	}
}

// Create starts a new session from a validated payload and persists its
// initial state.
func (m *Manager) Create(ctx context.Context, payload models.CreateGamePayload) (*Session, error) {
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}

	session, err := m.buildSession(uuid.New().String(), payload.BotColor, payload.BotStrategy, payload.BotDelayMs, nil)
	if err != nil {
		return nil, err
	}

	if err := m.store.Save(ctx, session.State()); err != nil {
		session.close()
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	m.mu.Lock()
	m.evictIdleLocked(time.Now())
	m.sessions[session.id] = session
	m.mu.Unlock()

	return session, nil
}

// Get returns a live session, reviving it from the store when the manager
// does not hold it in memory.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	m.evictIdleLocked(time.Now())
	session, ok := m.sessions[id]
	m.mu.Unlock()

	if ok {
		session.touch()
		return session, nil
	}

	state, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	session, err = m.buildSession(state.ID, state.BotColor, state.BotStrategy, state.BotDelayMs, &state.Game)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another request may have revived the session concurrently.
	if existing, ok := m.sessions[id]; ok {
		session.close()
		return existing, nil
	}

	m.sessions[id] = session
	return session, nil
}

// Delete drops a session from memory and from the store.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	session, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		session.close()
	}

	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}

	return nil
}

// evictIdleLocked drops sessions that have seen no activity for
// config.SessionIdleTimeout, keeping the in-memory map bounded. Their
// store copy is untouched, so a later Get revives them.
func (m *Manager) evictIdleLocked(now time.Time) {
	for id, session := range m.sessions {
		if now.UnixNano()-session.lastActive.Load() > int64(config.SessionIdleTimeout) {
			session.close()
			delete(m.sessions, id)
		}
	}
}

func (m *Manager) buildSession(id, botColor, botStrategy string, botDelayMs int, restore *reversi.GameState) (*Session, error) {
	session := &Session{
		id:          id,
		botColor:    botColor,
		botStrategy: botStrategy,
		botDelayMs:  botDelayMs,
		store:       m.store,
		archiver:    m.archiver,
		dirty:       make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
	session.touch()

	opts := []reversi.Option{
		reversi.WithObserver(sessionObserver{session: session}),
	}

	if botColor != "" {
		color, err := reversi.ParseDisc(botColor)
		if err != nil {
			return nil, fmt.Errorf("invalid bot color: %w", err)
		}

		strategy, err := reversi.ParseStrategy(botStrategy)
		if err != nil {
			return nil, fmt.Errorf("invalid bot strategy: %w", err)
		}

		opts = append(opts,
			reversi.WithBot(color, strategy),
			reversi.WithBotDelay(time.Duration(botDelayMs)*time.Millisecond),
		)
	}

	session.game = reversi.NewGame(opts...)

	if restore != nil {
		if err := session.game.Restore(*restore); err != nil {
			return nil, fmt.Errorf("failed to restore session %s: %w", id, err)
		}
	}

	go session.persistLoop()

	return session, nil
}
