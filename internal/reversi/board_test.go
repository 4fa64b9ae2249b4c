package reversi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	board := NewBoard()

	require.Equal(t, White, board.Cell(Coord{Row: 3, Col: 3}))
	require.Equal(t, White, board.Cell(Coord{Row: 4, Col: 4}))
	require.Equal(t, Black, board.Cell(Coord{Row: 3, Col: 4}))
	require.Equal(t, Black, board.Cell(Coord{Row: 4, Col: 3}))

	score := board.Score()
	require.Equal(t, Score{Black: 2, White: 2}, score)
}

func TestBoard_CellOutOfRange(t *testing.T) {
	board := NewBoard()

	require.Equal(t, Empty, board.Cell(Coord{Row: -1, Col: 0}))
	require.Equal(t, Empty, board.Cell(Coord{Row: 0, Col: 8}))
}

func TestBoard_SnapshotIndependence(t *testing.T) {
	board := NewBoard()
	snapshot := board.Snapshot()

	board.SetCell(Coord{Row: 0, Col: 0}, Black)

	require.Equal(t, Black, board.Cell(Coord{Row: 0, Col: 0}))
	require.Equal(t, Empty, snapshot.Cell(Coord{Row: 0, Col: 0}))
}

func TestBoard_Load(t *testing.T) {
	board := NewBoard()
	snapshot := board.Snapshot()

	board.SetCell(Coord{Row: 0, Col: 0}, White)
	board.Load(snapshot)

	require.Equal(t, snapshot, board)
	require.Equal(t, Empty, board.Cell(Coord{Row: 0, Col: 0}))
}

func TestBoard_FlipAll(t *testing.T) {
	board := NewBoard()

	board.FlipAll([]Coord{{Row: 3, Col: 3}, {Row: 4, Col: 4}}, Black)
	require.Equal(t, Score{Black: 4, White: 0}, board.Score())

	// Empty list is a no-op.
	before := board.Snapshot()
	board.FlipAll(nil, White)
	require.Equal(t, before, board)
}

func TestBoard_StringRoundTrip(t *testing.T) {
	board := NewBoard()
	board.SetCell(Coord{Row: 0, Col: 0}, Black)
	board.SetCell(Coord{Row: 7, Col: 7}, White)

	parsed, err := ParseBoard(board.String())
	require.NoError(t, err)
	require.Equal(t, board, parsed)
}

func TestParseBoard_Invalid(t *testing.T) {
	_, err := ParseBoard("too short")
	require.Error(t, err)

	bad := NewBoard().String()
	bad = "?" + bad[1:]
	_, err = ParseBoard(bad)
	require.Error(t, err)
}

func TestCoord_String(t *testing.T) {
	require.Equal(t, "a1", Coord{Row: 0, Col: 0}.String())
	require.Equal(t, "d3", Coord{Row: 2, Col: 3}.String())
	require.Equal(t, "h8", Coord{Row: 7, Col: 7}.String())
}

func TestParseCoord(t *testing.T) {
	coord, err := ParseCoord("d3")
	require.NoError(t, err)
	require.Equal(t, Coord{Row: 2, Col: 3}, coord)

	for _, invalid := range []string{"", "d", "i1", "a9", "33", "d3x"} {
		_, err = ParseCoord(invalid)
		require.Error(t, err, "field %q should not parse", invalid)
	}
}

func TestDisc_Opponent(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
}

func TestScore_Winner(t *testing.T) {
	require.Equal(t, Black, Score{Black: 33, White: 31}.Winner())
	require.Equal(t, White, Score{Black: 31, White: 33}.Winner())
	require.Equal(t, Empty, Score{Black: 32, White: 32}.Winner())
}

func TestBoard_ASCIIArtLines(t *testing.T) {
	board := NewBoard()
	lines := board.ASCIIArtLines(ValidMoves(board, Black))

	require.Len(t, lines, BoardSize+2)
	require.Contains(t, lines[4], "○")
	require.Contains(t, lines[4], "●")
	require.Contains(t, lines[3], "·")
}
