package reversi

import (
	"fmt"
	"math/rand"
)

// Strategy is the closed set of bot move-selection policies.
type Strategy int

const (
	// StrategyRandom picks uniformly among the legal moves.
	StrategyRandom Strategy = iota

	// StrategyGreedy maximizes the flip count, breaking ties uniformly
	// at random.
	StrategyGreedy

	// StrategyCorner picks uniformly among legal corner moves when any
	// exist, and falls back to greedy otherwise.
	StrategyCorner
)

func (s Strategy) String() string {
	switch s {
	case StrategyRandom:
		return "random"
	case StrategyGreedy:
		return "greedy"
	case StrategyCorner:
		return "corner"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy parses a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "random":
		return StrategyRandom, nil
	case "greedy":
		return StrategyGreedy, nil
	case "corner":
		return StrategyCorner, nil
	default:
		return 0, fmt.Errorf("invalid strategy: %q", s)
	}
}

var corners = [4]Coord{
	{Row: 0, Col: 0},
	{Row: 0, Col: BoardSize - 1},
	{Row: BoardSize - 1, Col: 0},
	{Row: BoardSize - 1, Col: BoardSize - 1},
}

// Select picks one entry from a non-empty move list. The move list must be
// in the deterministic order produced by MovesAndFlips for the choice to
// be reproducible under a fixed seed.
func (s Strategy) Select(moves []Move, rng *rand.Rand) Move {
	switch s {
	case StrategyGreedy:
		return selectGreedy(moves, rng)
	case StrategyCorner:
		return selectCorner(moves, rng)
	default:
		return moves[rng.Intn(len(moves))]
	}
}

func selectGreedy(moves []Move, rng *rand.Rand) Move {
	best := make([]Move, 0, len(moves))
	bestFlips := 0

	for _, move := range moves {
		switch {
		case len(move.Flips) > bestFlips:
			bestFlips = len(move.Flips)
			best = append(best[:0], move)
		case len(move.Flips) == bestFlips:
			best = append(best, move)
		}
	}

	return best[rng.Intn(len(best))]
}

func selectCorner(moves []Move, rng *rand.Rand) Move {
	var cornerMoves []Move
	for _, move := range moves {
		for _, corner := range corners {
			if move.Coord == corner {
				cornerMoves = append(cornerMoves, move)
				break
			}
		}
	}

	if len(cornerMoves) > 0 {
		return cornerMoves[rng.Intn(len(cornerMoves))]
	}

	return selectGreedy(moves, rng)
}
