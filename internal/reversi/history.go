package reversi

// history is the snapshot log used by undo and redo. Entries are indexed
// by turn: entry t holds the board after ply t-1 was resolved, together
// with the color to move at turn t. Boards are stored by value, so every
// entry is an independent copy of the grid.
type history struct {
	entries []historyEntry
}

type historyEntry struct {
	player Disc
	board  Board
}

func (h *history) reset() {
	h.entries = h.entries[:0]
}

// push stores a snapshot at the given turn. Pushing at an index inside the
// existing log discards everything from that index on first: after a redo
// branch is abandoned by a new move, the stale future must not survive.
func (h *history) push(turn int, player Disc, board Board) {
	if turn < 0 {
		return
	}
	if turn < len(h.entries) {
		h.entries = h.entries[:turn]
	}
	h.entries = append(h.entries, historyEntry{player: player, board: board})
}

// get returns the snapshot at the given turn. It never panics: out of
// range lookups report ok=false.
func (h *history) get(turn int) (Disc, Board, bool) {
	if turn < 0 || turn >= len(h.entries) {
		return Empty, Board{}, false
	}
	entry := h.entries[turn]
	return entry.player, entry.board, true
}

// has reports whether a snapshot exists at the given turn.
func (h *history) has(turn int) bool {
	return turn >= 0 && turn < len(h.entries)
}

func (h *history) len() int {
	return len(h.entries)
}
