package reversi

// The rules functions are pure reads over a Board. They never mutate.

var directions = [8]Coord{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

// Move pairs a playable coordinate with the opponent discs it would flip.
type Move struct {
	Coord Coord
	Flips []Coord
}

// FlipCandidates returns the opponent discs flipped by placing d at c, or
// nil when the move is illegal: the cell is occupied, or no direction holds
// a run of opponent discs bracketed by a disc of the mover's color. A
// non-nil result always contains at least one coordinate.
func FlipCandidates(b Board, c Coord, d Disc) []Coord {
	if d != Black && d != White {
		return nil
	}
	if !c.InBounds() || b.Cell(c) != Empty {
		return nil
	}

	opponent := d.Opponent()

	var flips []Coord
	for _, dir := range directions {
		var run []Coord

		n := Coord{Row: c.Row + dir.Row, Col: c.Col + dir.Col}
		for n.InBounds() && b.Cell(n) == opponent {
			run = append(run, n)
			n = Coord{Row: n.Row + dir.Row, Col: n.Col + dir.Col}
		}

		// The run only counts when it ends on the mover's own disc.
		if len(run) > 0 && n.InBounds() && b.Cell(n) == d {
			flips = append(flips, run...)
		}
	}

	return flips
}

// ValidMoves returns every coordinate where d can legally move, scanning
// the board in row-major order. The ordering is deterministic so that bot
// selection is reproducible under a fixed random seed.
func ValidMoves(b Board, d Disc) []Coord {
	var moves []Coord
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			coord := Coord{Row: row, Col: col}
			if FlipCandidates(b, coord, d) != nil {
				moves = append(moves, coord)
			}
		}
	}
	return moves
}

// MovesAndFlips returns every legal move for d paired with its flip set,
// in the same row-major order as ValidMoves.
func MovesAndFlips(b Board, d Disc) []Move {
	var moves []Move
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			coord := Coord{Row: row, Col: col}
			if flips := FlipCandidates(b, coord, d); flips != nil {
				moves = append(moves, Move{Coord: coord, Flips: flips})
			}
		}
	}
	return moves
}

// HasMove reports whether d has at least one legal move, returning early
// on the first hit.
func HasMove(b Board, d Disc) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if FlipCandidates(b, Coord{Row: row, Col: col}, d) != nil {
				return true
			}
		}
	}
	return false
}
