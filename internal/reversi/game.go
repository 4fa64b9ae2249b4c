package reversi

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Phase is the progression state of a game.
type Phase int

const (
	// PhaseAwaitingMove accepts move submissions for the active player.
	PhaseAwaitingMove Phase = iota

	// PhaseResolving is the transient state while a move is applied.
	PhaseResolving

	// PhaseSkipped is the transient state while a forced pass resolves.
	PhaseSkipped

	// PhaseGameOver is terminal until the game is reset.
	PhaseGameOver
)

// Observer receives game notifications. Callbacks run synchronously on the
// goroutine that mutated the game and must not call back into it.
type Observer interface {
	BoardChanged(b Board)
	TurnChanged(player Disc, turn int)
	MoveSkipped(player Disc)
	GameOver(score Score)
	InteractiveChanged(on bool)
}

// NopObserver implements Observer with no-ops, for embedding.
type NopObserver struct{}

func (NopObserver) BoardChanged(Board)      {}
func (NopObserver) TurnChanged(Disc, int)   {}
func (NopObserver) MoveSkipped(Disc)        {}
func (NopObserver) GameOver(Score)          {}
func (NopObserver) InteractiveChanged(bool) {}

// Option configures a Game.
type Option func(*Game)

// WithBot assigns one color to a computer opponent.
func WithBot(color Disc, strategy Strategy) Option {
	return func(g *Game) {
		g.botColor = color
		g.botStrategy = strategy
	}
}

// WithBotDelay sets the bot thinking delay. With a zero or negative delay
// the bot resolves synchronously inside the triggering call, which is what
// tests and the terminal client want.
func WithBotDelay(d time.Duration) Option {
	return func(g *Game) {
		g.botDelay = d
	}
}

// WithObserver registers an observer before the initial reset, so it also
// sees the init notifications.
func WithObserver(o Observer) Option {
	return func(g *Game) {
		g.observers = append(g.observers, o)
	}
}

// WithRand sets the random source used by bot strategies.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// Game owns the board, the turn tracker and the snapshot history, and
// orchestrates move resolution: validate, mutate, advance, record, then
// evaluate skip and game over. All entry points serialize on one mutex;
// the scheduled bot resolution is the only other entrant.
type Game struct {
	mu sync.Mutex

	board   Board
	tracker tracker
	hist    history
	phase   Phase

	// interactive gates human input. It is off while a bot move is
	// pending so the board cannot be mutated mid-resolution.
	interactive bool

	// generation invalidates scheduled bot resolutions: a reset, undo,
	// redo or restore bumps it, and a resolution whose generation no
	// longer matches aborts without touching the game.
	generation uint64

	observers []Observer

	botColor    Disc // Empty when no bot is configured
	botStrategy Strategy
	botDelay    time.Duration
	rng         *rand.Rand
}

// NewGame creates a game at the starting position. With a black bot and a
// synchronous delay the bot's first move is already resolved on return.
func NewGame(opts ...Option) *Game {
	g := &Game{
		botColor:    Empty,
		interactive: true,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()

	return g
}

// Reset restores the starting position. Idempotent: resetting twice yields
// identical board, turn and history state.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
}

func (g *Game) resetLocked() {
	g.generation++
	g.board.Reset()
	g.tracker.reset()
	g.hist.reset()
	g.hist.push(0, g.tracker.player(), g.board)
	g.phase = PhaseAwaitingMove

	g.setInteractiveLocked(true)
	g.notifyBoardLocked()
	g.notifyTurnLocked()

	g.maybeScheduleBotLocked()
}

// Submit attempts a human move. It reports failure without any state
// change when input is gated, the game is over, it is the bot's turn, or
// the move is illegal.
func (g *Game) Submit(c Coord) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.interactive || g.phase == PhaseGameOver {
		return false
	}
	if g.botColor != Empty && g.tracker.player() == g.botColor {
		return false
	}

	if !g.applyLocked(c) {
		return false
	}

	g.afterMoveLocked()
	return true
}

// applyLocked validates and applies one move for the active player. Both
// human and bot moves go through here.
func (g *Game) applyLocked(c Coord) bool {
	mover := g.tracker.player()

	flips := FlipCandidates(g.board, c, mover)
	if flips == nil {
		return false
	}

	g.phase = PhaseResolving
	g.board.SetCell(c, mover)
	g.board.FlipAll(flips, mover)
	g.tracker.advance()
	g.hist.push(g.tracker.turn, g.tracker.player(), g.board)

	g.notifyBoardLocked()
	g.notifyTurnLocked()

	return true
}

// afterMoveLocked decides between normal continuation, a forced pass and
// game over, then hands the turn to the bot when it is up.
func (g *Game) afterMoveLocked() {
	next := g.tracker.player()

	if HasMove(g.board, next) {
		g.phase = PhaseAwaitingMove
		g.maybeScheduleBotLocked()
		return
	}

	if HasMove(g.board, next.Opponent()) {
		// The next player forfeits: the pass consumes a ply and play
		// returns to the mover.
		g.phase = PhaseSkipped
		for _, o := range g.observers {
			o.MoveSkipped(next)
		}

		g.tracker.skip()
		g.hist.push(g.tracker.turn, g.tracker.player(), g.board)
		g.notifyTurnLocked()

		g.phase = PhaseAwaitingMove
		g.maybeScheduleBotLocked()
		return
	}

	g.phase = PhaseGameOver
	g.setInteractiveLocked(true)
	score := g.board.Score()
	for _, o := range g.observers {
		o.GameOver(score)
	}
}

func (g *Game) maybeScheduleBotLocked() {
	if g.botColor == Empty || g.phase != PhaseAwaitingMove || g.tracker.player() != g.botColor {
		g.setInteractiveLocked(true)
		return
	}

	g.setInteractiveLocked(false)

	if g.botDelay <= 0 {
		g.resolveBotLocked()
		return
	}

	generation := g.generation
	time.AfterFunc(g.botDelay, func() {
		g.mu.Lock()
		defer g.mu.Unlock()

		// Stale when a reset, undo or redo intervened during the delay.
		if generation != g.generation {
			return
		}
		if g.phase != PhaseAwaitingMove || g.tracker.player() != g.botColor {
			return
		}

		g.resolveBotLocked()
	})
}

func (g *Game) resolveBotLocked() {
	moves := MovesAndFlips(g.board, g.botColor)
	if len(moves) == 0 {
		// Cannot happen: skip evaluation never hands the turn to a
		// player without moves.
		g.setInteractiveLocked(true)
		return
	}

	choice := g.botStrategy.Select(moves, g.rng)

	g.applyLocked(choice.Coord)
	g.setInteractiveLocked(true)
	g.afterMoveLocked()
}

// Undo steps back to the previous snapshot, stepping past bot-owned plies
// and pass plies until an actionable position or the history boundary. It
// reports false, with no state change, when there is nothing to undo.
func (g *Game) Undo() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.interactive {
		return false
	}
	return g.stepLocked(-1)
}

// Redo is symmetric to Undo.
func (g *Game) Redo() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.interactive {
		return false
	}
	return g.stepLocked(+1)
}

func (g *Game) stepLocked(delta int) bool {
	moved := false

	for {
		target := g.tracker.turn + delta
		player, board, ok := g.hist.get(target)
		if !ok {
			break
		}

		g.board.Load(board)
		g.tracker.turn = target
		g.tracker.setPlayer(player)
		moved = true

		if g.botColor != Empty && player == g.botColor {
			continue
		}

		// Pass plies record a player without a legal move; nobody can act
		// there, so keep stepping.
		if !HasMove(g.board, player) && HasMove(g.board, player.Opponent()) {
			continue
		}

		break
	}

	if !moved {
		return false
	}

	g.generation++
	g.recomputePhaseLocked()
	g.setInteractiveLocked(true)
	g.notifyBoardLocked()
	g.notifyTurnLocked()

	// Landing on a bot-owned ply only happens at a history boundary; the
	// bot then resolves afresh so the game cannot stall.
	g.maybeScheduleBotLocked()

	return true
}

func (g *Game) recomputePhaseLocked() {
	if !HasMove(g.board, Black) && !HasMove(g.board, White) {
		g.phase = PhaseGameOver
		return
	}
	g.phase = PhaseAwaitingMove
}

// AddObserver registers an observer on a running game.
func (g *Game) AddObserver(o Observer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.observers = append(g.observers, o)
}

// RemoveObserver unregisters an observer previously registered with
// AddObserver or WithObserver.
func (g *Game) RemoveObserver(o Observer) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, registered := range g.observers {
		if registered == o {
			g.observers = append(g.observers[:i], g.observers[i+1:]...)
			return
		}
	}
}

func (g *Game) setInteractiveLocked(on bool) {
	if g.interactive == on {
		return
	}
	g.interactive = on
	for _, o := range g.observers {
		o.InteractiveChanged(on)
	}
}

func (g *Game) notifyBoardLocked() {
	for _, o := range g.observers {
		o.BoardChanged(g.board)
	}
}

func (g *Game) notifyTurnLocked() {
	player := g.tracker.player()
	turn := g.tracker.turn
	for _, o := range g.observers {
		o.TurnChanged(player, turn)
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board
}

// Player returns the active color.
func (g *Game) Player() Disc {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tracker.player()
}

// Turn returns the current turn index.
func (g *Game) Turn() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tracker.turn
}

// Phase returns the progression state.
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// CanUndo reports whether a previous snapshot exists.
func (g *Game) CanUndo() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hist.has(g.tracker.turn - 1)
}

// CanRedo reports whether a later snapshot exists.
func (g *Game) CanRedo() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hist.has(g.tracker.turn + 1)
}

// IsGameOver reports whether the game reached its terminal state.
func (g *Game) IsGameOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase == PhaseGameOver
}

// Interactive reports whether human input is currently accepted.
func (g *Game) Interactive() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.interactive
}

// Score returns the current disc counts.
func (g *Game) Score() Score {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Score()
}

// LegalMoves returns the active player's legal moves, or nil when the
// game is over.
func (g *Game) LegalMoves() []Coord {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == PhaseGameOver {
		return nil
	}
	return ValidMoves(g.board, g.tracker.player())
}

// MovePreviews returns the active player's legal moves with their flip
// sets, recomputed on demand and never stored.
func (g *Game) MovePreviews() []Move {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == PhaseGameOver {
		return nil
	}
	return MovesAndFlips(g.board, g.tracker.player())
}

// GameState is the serializable form of a game, used by the session store.
type GameState struct {
	Board   string     `json:"board"`
	Turn    int        `json:"turn"`
	Skips   int        `json:"skips"`
	History []Snapshot `json:"history"`
}

// Snapshot is one serialized history entry.
type Snapshot struct {
	Player string `json:"player"`
	Board  string `json:"board"`
}

// State captures the full game state for persistence.
func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := GameState{
		Board:   g.board.String(),
		Turn:    g.tracker.turn,
		Skips:   g.tracker.skips,
		History: make([]Snapshot, g.hist.len()),
	}

	for i := 0; i < g.hist.len(); i++ {
		player, board, _ := g.hist.get(i)
		state.History[i] = Snapshot{Player: player.String(), Board: board.String()}
	}

	return state
}

// Restore replaces the game state with a previously captured one. A
// pending bot resolution is invalidated; when the restored position is the
// bot's to play, a fresh resolution is scheduled.
func (g *Game) Restore(state GameState) error {
	board, err := ParseBoard(state.Board)
	if err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}

	if state.Turn < 0 || state.Turn >= len(state.History) {
		return fmt.Errorf("turn %d out of history range 0..%d", state.Turn, len(state.History)-1)
	}

	entries := make([]historyEntry, len(state.History))
	for i, snapshot := range state.History {
		player, err := ParseDisc(snapshot.Player)
		if err != nil {
			return fmt.Errorf("history entry %d: %w", i, err)
		}

		entryBoard, err := ParseBoard(snapshot.Board)
		if err != nil {
			return fmt.Errorf("history entry %d: %w", i, err)
		}

		entries[i] = historyEntry{player: player, board: entryBoard}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.generation++
	g.board = board
	g.tracker.turn = state.Turn
	g.tracker.skips = state.Skips
	g.hist.entries = entries
	g.recomputePhaseLocked()

	g.setInteractiveLocked(true)
	g.notifyBoardLocked()
	g.notifyTurnLocked()

	g.maybeScheduleBotLocked()

	return nil
}
