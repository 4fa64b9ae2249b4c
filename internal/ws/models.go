package ws

import (
	"github.com/kvermeij/reversi/internal/reversi"
)

// Event is one outgoing notification frame.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type BoardData struct {
	Board string        `json:"board"`
	Score reversi.Score `json:"score"`
}

type TurnData struct {
	Player string `json:"player"`
	Turn   int    `json:"turn"`
}

type SkipData struct {
	Player string `json:"player"`
}

type GameOverData struct {
	Score  reversi.Score `json:"score"`
	Winner string        `json:"winner"`
}

type InteractiveData struct {
	Interactive bool `json:"interactive"`
}
