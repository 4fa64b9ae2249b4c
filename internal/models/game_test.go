package models

import (
	"testing"

	"github.com/kvermeij/reversi/internal/reversi"
	"github.com/stretchr/testify/require"
)

func TestCreateGamePayload_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload CreateGamePayload
		wantErr bool
	}{
		{name: "empty", payload: CreateGamePayload{}, wantErr: false},
		{name: "white corner bot", payload: CreateGamePayload{BotColor: "white", BotStrategy: "corner"}, wantErr: false},
		{name: "black random bot with delay", payload: CreateGamePayload{BotColor: "black", BotStrategy: "random", BotDelayMs: 500}, wantErr: false},
		{name: "invalid color", payload: CreateGamePayload{BotColor: "green", BotStrategy: "random"}, wantErr: true},
		{name: "invalid strategy", payload: CreateGamePayload{BotColor: "white", BotStrategy: "smart"}, wantErr: true},
		{name: "missing strategy", payload: CreateGamePayload{BotColor: "white"}, wantErr: true},
		{name: "strategy without color", payload: CreateGamePayload{BotStrategy: "greedy"}, wantErr: true},
		{name: "negative delay", payload: CreateGamePayload{BotColor: "white", BotStrategy: "greedy", BotDelayMs: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMovePayload_Validate(t *testing.T) {
	require.NoError(t, MovePayload{Row: 0, Col: 0}.Validate())
	require.NoError(t, MovePayload{Row: 7, Col: 7}.Validate())
	require.Error(t, MovePayload{Row: -1, Col: 0}.Validate())
	require.Error(t, MovePayload{Row: 0, Col: 8}.Validate())
}

func TestNewGameResponse(t *testing.T) {
	g := reversi.NewGame()
	response := NewGameResponse("some-id", g)

	require.Equal(t, "some-id", response.ID)
	require.Equal(t, g.Board().String(), response.Board)
	require.Equal(t, "black", response.Player)
	require.Equal(t, 0, response.Turn)
	require.Equal(t, reversi.Score{Black: 2, White: 2}, response.Score)
	require.False(t, response.GameOver)
	require.True(t, response.Interactive)
}

func TestNewMoveRecords(t *testing.T) {
	g := reversi.NewGame()
	records := NewMoveRecords(g.MovePreviews())

	require.Len(t, records, 4)
	require.Equal(t, "d3", records[0].Field)
	require.Equal(t, 2, records[0].Row)
	require.Equal(t, 3, records[0].Col)
	require.NotEmpty(t, records[0].Flips)
}
