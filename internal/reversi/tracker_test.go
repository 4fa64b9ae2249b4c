package reversi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_Alternation(t *testing.T) {
	var tr tracker
	tr.reset()

	require.Equal(t, Black, tr.player())
	require.Equal(t, White, tr.next())

	tr.advance()
	require.Equal(t, 1, tr.turn)
	require.Equal(t, White, tr.player())
	require.Equal(t, Black, tr.next())

	tr.advance()
	require.Equal(t, Black, tr.player())
}

func TestTracker_Skip(t *testing.T) {
	var tr tracker
	tr.reset()

	// Black moves, white must pass: the pass consumes a ply and black is
	// active again.
	tr.advance()
	require.Equal(t, White, tr.player())

	tr.skip()
	require.Equal(t, 2, tr.turn)
	require.Equal(t, Black, tr.player())
}

func TestTracker_SetPlayer(t *testing.T) {
	tests := []struct {
		name   string
		turn   int
		target Disc
	}{
		{name: "black on even turn", turn: 4, target: Black},
		{name: "white on even turn", turn: 4, target: White},
		{name: "black on odd turn", turn: 5, target: Black},
		{name: "white on odd turn", turn: 5, target: White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tracker{turn: tt.turn}
			tr.setPlayer(tt.target)

			require.Equal(t, tt.target, tr.player())
			require.Equal(t, tt.turn, tr.turn)
		})
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := tracker{turn: 7, skips: 3}
	tr.reset()

	require.Equal(t, 0, tr.turn)
	require.Equal(t, Black, tr.player())
}
