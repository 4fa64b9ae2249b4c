package models

import (
	"fmt"
	"time"

	"github.com/kvermeij/reversi/internal/reversi"
)

// CreateGamePayload configures a new game session. All fields are
// optional; an empty payload creates a two-human game.
type CreateGamePayload struct {
	BotColor    string `json:"bot_color,omitempty"`
	BotStrategy string `json:"bot_strategy,omitempty"`
	BotDelayMs  int    `json:"bot_delay_ms,omitempty"`
}

// Validate checks the payload before a session is created.
func (p CreateGamePayload) Validate() error {
	if p.BotColor != "" {
		if _, err := reversi.ParseDisc(p.BotColor); err != nil {
			return fmt.Errorf("bot_color: %w", err)
		}
		if _, err := reversi.ParseStrategy(p.BotStrategy); err != nil {
			return fmt.Errorf("bot_strategy: %w", err)
		}
	}

	if p.BotColor == "" && p.BotStrategy != "" {
		return fmt.Errorf("bot_strategy requires bot_color")
	}

	if p.BotDelayMs < 0 {
		return fmt.Errorf("bot_delay_ms must not be negative")
	}

	return nil
}

// MovePayload is a move submission.
type MovePayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Validate checks that the target cell is on the board.
func (p MovePayload) Validate() error {
	if !p.Coord().InBounds() {
		return fmt.Errorf("coordinate (%d,%d) is off the board", p.Row, p.Col)
	}
	return nil
}

// Coord converts the payload to an engine coordinate.
func (p MovePayload) Coord() reversi.Coord {
	return reversi.Coord{Row: p.Row, Col: p.Col}
}

// GameResponse is the full session state returned by the API.
type GameResponse struct {
	ID          string        `json:"id"`
	Board       string        `json:"board"`
	Player      string        `json:"player"`
	Turn        int           `json:"turn"`
	Score       reversi.Score `json:"score"`
	GameOver    bool          `json:"game_over"`
	CanUndo     bool          `json:"can_undo"`
	CanRedo     bool          `json:"can_redo"`
	Interactive bool          `json:"interactive"`
}

// NewGameResponse builds a response from a live game.
func NewGameResponse(id string, g *reversi.Game) GameResponse {
	return GameResponse{
		ID:          id,
		Board:       g.Board().String(),
		Player:      g.Player().String(),
		Turn:        g.Turn(),
		Score:       g.Score(),
		GameOver:    g.IsGameOver(),
		CanUndo:     g.CanUndo(),
		CanRedo:     g.CanRedo(),
		Interactive: g.Interactive(),
	}
}

// MoveRecord is one legal move with the discs it would flip, used for
// previews. It is recomputed on demand and never stored.
type MoveRecord struct {
	Row   int             `json:"row"`
	Col   int             `json:"col"`
	Field string          `json:"field"`
	Flips []reversi.Coord `json:"flips"`
}

// NewMoveRecords converts engine move previews to API form.
func NewMoveRecords(moves []reversi.Move) []MoveRecord {
	records := make([]MoveRecord, len(moves))
	for i, move := range moves {
		records[i] = MoveRecord{
			Row:   move.Coord.Row,
			Col:   move.Coord.Col,
			Field: move.Coord.String(),
			Flips: move.Flips,
		}
	}
	return records
}

// SessionState is the serialized form of a session kept in the session
// store, so a session survives a server restart.
type SessionState struct {
	ID          string            `json:"id"`
	BotColor    string            `json:"bot_color,omitempty"`
	BotStrategy string            `json:"bot_strategy,omitempty"`
	BotDelayMs  int               `json:"bot_delay_ms,omitempty"`
	Game        reversi.GameState `json:"game"`
}

// FinishedGame is an archived game record.
type FinishedGame struct {
	ID         string    `json:"id" db:"id"`
	BlackScore int       `json:"black_score" db:"black_score"`
	WhiteScore int       `json:"white_score" db:"white_score"`
	Winner     string    `json:"winner" db:"winner"`
	Plies      int       `json:"plies" db:"plies"`
	FinalBoard string    `json:"final_board" db:"final_board"`
	FinishedAt time.Time `json:"finished_at" db:"finished_at"`
}
