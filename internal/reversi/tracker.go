package reversi

// tracker maps the monotonically increasing ply counter to the active
// player. Passes consume a ply like any move, so alternation continues
// straight through them; the skip offset only changes when undo/redo
// resynchronizes the active player against a history entry.
type tracker struct {
	turn  int
	skips int
}

func (t *tracker) reset() {
	t.turn = 0
	t.skips = 0
}

// player returns the active color for the current ply.
func (t *tracker) player() Disc {
	return Disc((t.turn + t.skips) % 2)
}

// next previews the active color one ply ahead without mutating state.
func (t *tracker) next() Disc {
	return Disc((t.turn + 1 + t.skips) % 2)
}

func (t *tracker) advance() {
	t.turn++
}

// skip records a forfeited ply: the pass consumes a turn index, which
// flips the parity formula and hands the move back to the mover.
func (t *tracker) skip() {
	t.turn++
}

// setPlayer recomputes the skip offset so that player() yields d at the
// current turn. Used by undo/redo to resynchronize with history.
func (t *tracker) setPlayer(d Disc) {
	t.skips = (int(d) - t.turn%2 + 2) % 2
}
