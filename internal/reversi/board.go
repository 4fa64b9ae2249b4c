package reversi

import (
	"fmt"
	"strings"
)

// Disc is the content of a single board cell. Black and White double as
// player identifiers: their values match the parity of the turn counter,
// black moves on even plies.
type Disc int8

const (
	Black Disc = 0
	White Disc = 1
	Empty Disc = 2
)

// Opponent returns the other player color.
func (d Disc) Opponent() Disc {
	return Black + White - d
}

func (d Disc) String() string {
	switch d {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// ParseDisc parses "black" or "white". Anything else is an error.
func ParseDisc(s string) (Disc, error) {
	switch s {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	default:
		return Empty, fmt.Errorf("invalid disc: %q", s)
	}
}

// BoardSize is the number of rows and columns.
const BoardSize = 8

// Coord addresses a single board cell. Row and Col are in [0,7].
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the coordinate is on the board.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// String returns the field name, e.g. "d3" for row 2, column 3.
func (c Coord) String() string {
	if !c.InBounds() {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col, c.Row+1)
}

// ParseCoord parses a field name like "d3" into a coordinate.
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("invalid field: %q", s)
	}

	col := int(s[0] - 'a')
	row := int(s[1] - '1')

	coord := Coord{Row: row, Col: col}
	if !coord.InBounds() {
		return Coord{}, fmt.Errorf("invalid field: %q", s)
	}

	return coord, nil
}

// Board is an 8x8 grid of cells. It is a value type: assignment copies the
// whole grid, so snapshots taken by value are always independent of the
// live board.
type Board [BoardSize][BoardSize]Disc

// NewBoard returns a board with the four center discs placed.
func NewBoard() Board {
	var b Board
	b.Reset()
	return b
}

// Reset restores the starting layout: white on d4/e5, black on e4/d5.
func (b *Board) Reset() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b[row][col] = Empty
		}
	}

	mid := BoardSize / 2
	b[mid-1][mid-1] = White
	b[mid][mid] = White
	b[mid-1][mid] = Black
	b[mid][mid-1] = Black
}

// Cell returns the disc at the given coordinate, or Empty when the
// coordinate is off the board.
func (b Board) Cell(c Coord) Disc {
	if !c.InBounds() {
		return Empty
	}
	return b[c.Row][c.Col]
}

// SetCell overwrites a cell unconditionally. Legality checks are the
// responsibility of the rules functions.
func (b *Board) SetCell(c Coord, d Disc) {
	if !c.InBounds() {
		return
	}
	b[c.Row][c.Col] = d
}

// FlipAll sets every given coordinate to the given disc.
func (b *Board) FlipAll(coords []Coord, d Disc) {
	for _, c := range coords {
		b.SetCell(c, d)
	}
}

// Snapshot returns an independent copy of the grid.
func (b Board) Snapshot() Board {
	return b
}

// Load replaces the grid with a copy of the given board.
func (b *Board) Load(other Board) {
	*b = other
}

// Score holds the disc counts per color. Empty cells are not counted.
type Score struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// Winner returns the color with more discs, or Empty on a draw.
func (s Score) Winner() Disc {
	switch {
	case s.Black > s.White:
		return Black
	case s.White > s.Black:
		return White
	default:
		return Empty
	}
}

// Score counts the discs on the board.
func (b Board) Score() Score {
	var score Score
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b[row][col] {
			case Black:
				score.Black++
			case White:
				score.White++
			}
		}
	}
	return score
}

// String returns the 64-character row-major representation of the board,
// with 'x' for black, 'o' for white and '-' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b[row][col] {
			case Black:
				sb.WriteByte('x')
			case White:
				sb.WriteByte('o')
			default:
				sb.WriteByte('-')
			}
		}
	}

	return sb.String()
}

// ParseBoard parses the representation produced by Board.String.
func ParseBoard(s string) (Board, error) {
	if len(s) != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("board string must be %d characters long, got %d", BoardSize*BoardSize, len(s))
	}

	var b Board
	for i := 0; i < len(s); i++ {
		coord := Coord{Row: i / BoardSize, Col: i % BoardSize}
		switch s[i] {
		case 'x':
			b.SetCell(coord, Black)
		case 'o':
			b.SetCell(coord, White)
		case '-':
			b.SetCell(coord, Empty)
		default:
			return Board{}, fmt.Errorf("invalid board character %q at offset %d", s[i], i)
		}
	}

	return b, nil
}

// ASCIIArtLines renders the board for terminal display. Cells listed in
// moves are marked with a dot.
func (b Board) ASCIIArtLines(moves []Coord) []string {
	moveSet := make(map[Coord]bool, len(moves))
	for _, m := range moves {
		moveSet[m] = true
	}

	lines := make([]string, BoardSize+2)
	lines[0] = "+-a-b-c-d-e-f-g-h-+"

	for row := 0; row < BoardSize; row++ {
		line := fmt.Sprintf("%d ", row+1)

		for col := 0; col < BoardSize; col++ {
			coord := Coord{Row: row, Col: col}
			switch {
			case b[row][col] == Black:
				line += "● "
			case b[row][col] == White:
				line += "○ "
			case moveSet[coord]:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[BoardSize+1] = "+-----------------+"

	return lines
}
