package ws

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/kvermeij/reversi/internal/models"
	"github.com/kvermeij/reversi/internal/reversi"
	"github.com/kvermeij/reversi/internal/session"
)

const sendBufferSize = 64

// Handler streams game notifications for one session over a websocket
// connection. It observes the session's game and forwards every
// notification as a JSON event.
type Handler struct {
	ws      *websocket.Conn
	session *session.Session

	events    chan Event
	closed    chan struct{}
	closeOnce sync.Once
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, session *session.Session) *Handler {
	return &Handler{
		ws:      ws,
		session: session,
		events:  make(chan Event, sendBufferSize),
		closed:  make(chan struct{}),
	}
}

// Handle subscribes to the game and pumps events until the client
// disconnects.
func (h *Handler) Handle() error {
	game := h.session.Game()

	game.AddObserver(h)
	defer game.RemoveObserver(h)

	// Send the full state first so the client does not need a separate
	// HTTP round trip to draw the board.
	h.enqueue(Event{Event: "state", Data: models.NewGameResponse(h.session.ID(), game)})

	go h.readLoop()

	for {
		select {
		case <-h.closed:
			return nil
		case event := <-h.events:
			if err := h.ws.WriteJSON(event); err != nil {
				return fmt.Errorf("ws write error: %w", err)
			}
		}
	}
}

// readLoop drains incoming frames; the stream is one-way, reading only
// detects disconnects.
func (h *Handler) readLoop() {
	for {
		if _, _, err := h.ws.ReadMessage(); err != nil {
			h.close()
			return
		}
	}
}

func (h *Handler) close() {
	h.closeOnce.Do(func() {
		close(h.closed)
	})
}

// enqueue hands an event to the write pump. Observer callbacks run under
// the game mutex, so they must never block: a slow consumer loses
// intermediate events and can resynchronize from a state event.
func (h *Handler) enqueue(event Event) {
	select {
	case h.events <- event:
	case <-h.closed:
	default:
		slog.Warn("ws event buffer full, dropping event", "session_id", h.session.ID(), "event", event.Event)
	}
}

func (h *Handler) BoardChanged(b reversi.Board) {
	h.enqueue(Event{Event: "board", Data: BoardData{Board: b.String(), Score: b.Score()}})
}

func (h *Handler) TurnChanged(player reversi.Disc, turn int) {
	h.enqueue(Event{Event: "turn", Data: TurnData{Player: player.String(), Turn: turn}})
}

func (h *Handler) MoveSkipped(player reversi.Disc) {
	h.enqueue(Event{Event: "skipped", Data: SkipData{Player: player.String()}})
}

func (h *Handler) GameOver(score reversi.Score) {
	h.enqueue(Event{Event: "game_over", Data: GameOverData{Score: score, Winner: score.Winner().String()}})
}

func (h *Handler) InteractiveChanged(on bool) {
	h.enqueue(Event{Event: "interactive", Data: InteractiveData{Interactive: on}})
}
