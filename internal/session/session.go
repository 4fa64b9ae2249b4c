package session

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/kvermeij/reversi/internal/models"
	"github.com/kvermeij/reversi/internal/reversi"
)

const persistTimeout = 5 * time.Second

// ErrNotFound is returned when a session does not exist, neither in
// memory nor in the store.
var ErrNotFound = errors.New("session not found")

// Store persists live session state. Load must return an error wrapping
// ErrNotFound when the session is absent.
type Store interface {
	Save(ctx context.Context, state *models.SessionState) error
	Load(ctx context.Context, id string) (*models.SessionState, error)
	Delete(ctx context.Context, id string) error
}

// Archiver records finished games.
type Archiver interface {
	Archive(ctx context.Context, game models.FinishedGame) error
}

// Session binds one game to a session id and keeps the store and the
// archive up to date as the game progresses.
type Session struct {
	id   string
	game *reversi.Game

	botColor    string
	botStrategy string
	botDelayMs  int

	store    Store
	archiver Archiver

	// dirty coalesces persistence work; the persist loop drains it so
	// saves never run on the goroutine that holds the game mutex.
	dirty chan struct{}
	done  chan struct{}

	// lastActive is unix nanos of the most recent use, read by the
	// manager's idle sweep.
	lastActive atomic.Int64
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Game returns the underlying game for queries and observer wiring.
func (s *Session) Game() *reversi.Game {
	return s.game
}

// Submit forwards a move to the game. State persistence happens
// asynchronously via the session's observer.
func (s *Session) Submit(c reversi.Coord) bool {
	s.touch()
	return s.game.Submit(c)
}

// Undo forwards an undo to the game.
func (s *Session) Undo() bool {
	s.touch()
	return s.game.Undo()
}

// Redo forwards a redo to the game.
func (s *Session) Redo() bool {
	s.touch()
	return s.game.Redo()
}

func (s *Session) touch() {
	s.lastActive.Store(time.Now().UnixNano())
}

// State captures the serializable session state.
func (s *Session) State() *models.SessionState {
	return &models.SessionState{
		ID:          s.id,
		BotColor:    s.botColor,
		BotStrategy: s.botStrategy,
		BotDelayMs:  s.botDelayMs,
		Game:        s.game.State(),
	}
}

func (s *Session) markDirty() {
	select {
	case s.dirty <- struct{}{}:
	default:
	}
}

// persistLoop serializes store writes for this session. Reading the state
// here, after the mutating call released the game mutex, guarantees the
// latest state wins.
func (s *Session) persistLoop() {
	for {
		select {
		case <-s.done:
			return
		case <-s.dirty:
			ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
			if err := s.store.Save(ctx, s.State()); err != nil {
				slog.Error("failed to persist session", "session_id", s.id, "error", err)
			}
			cancel()
		}
	}
}

func (s *Session) archive(score reversi.Score) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	record := models.FinishedGame{
		ID:         s.id,
		BlackScore: score.Black,
		WhiteScore: score.White,
		Winner:     score.Winner().String(),
		Plies:      s.game.Turn(),
		FinalBoard: s.game.Board().String(),
		FinishedAt: time.Now().UTC(),
	}

	if err := s.archiver.Archive(ctx, record); err != nil {
		slog.Error("failed to archive finished game", "session_id", s.id, "error", err)
	}
}

func (s *Session) close() {
	close(s.done)
}

// sessionObserver translates game notifications into persistence work.
// Callbacks run under the game mutex, so they only hand off.
type sessionObserver struct {
	reversi.NopObserver
	session *Session
}

func (o sessionObserver) BoardChanged(reversi.Board) {
	o.session.markDirty()
}

func (o sessionObserver) TurnChanged(reversi.Disc, int) {
	o.session.markDirty()
}

func (o sessionObserver) GameOver(score reversi.Score) {
	go o.session.archive(score)
}
