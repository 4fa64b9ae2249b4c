package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/kvermeij/reversi/internal/config"
	"github.com/kvermeij/reversi/internal/models"
	"github.com/kvermeij/reversi/internal/routes/api"
	"github.com/kvermeij/reversi/internal/session"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu     sync.Mutex
	states map[string]*models.SessionState
}

func newFakeStore() *fakeStore {
	return &fakeStore{states: make(map[string]*models.SessionState)}
}

func (s *fakeStore) Save(_ context.Context, state *models.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.ID] = state
	return nil
}

func (s *fakeStore) Load(_ context.Context, id string) (*models.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, session.ErrNotFound)
	}
	return state, nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, id)
	return nil
}

type fakeArchiver struct{}

func (fakeArchiver) Archive(context.Context, models.FinishedGame) error {
	return nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	manager := session.NewManager(newFakeStore(), fakeArchiver{})
	cfg := &config.ServerConfig{Token: "test-token"}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("sessions", manager)
		c.Locals("config", cfg)
		return c.Next()
	})

	api.SetupRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeGame(t *testing.T, resp *http.Response) models.GameResponse {
	t.Helper()
	defer resp.Body.Close()

	var game models.GameResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&game))
	return game
}

func createGame(t *testing.T, app *fiber.App, payload any) models.GameResponse {
	t.Helper()

	resp := doRequest(t, app, http.MethodPost, "/api/games", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeGame(t, resp)
}

func TestCreateAndGetGame(t *testing.T) {
	app := newTestApp(t)

	created := createGame(t, app, nil)
	require.NotEmpty(t, created.ID)
	require.Len(t, created.Board, 64)
	require.Equal(t, "black", created.Player)
	require.Equal(t, 0, created.Turn)
	require.False(t, created.GameOver)
	require.True(t, created.Interactive)

	resp := doRequest(t, app, http.MethodGet, "/api/games/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	fetched := decodeGame(t, resp)
	require.Equal(t, created, fetched)
}

func TestCreateGameInvalidPayload(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/games",
		models.CreateGamePayload{BotColor: "purple", BotStrategy: "random"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGameNotFound(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/games/no-such-game", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetMoves(t *testing.T) {
	app := newTestApp(t)
	created := createGame(t, app, nil)

	resp := doRequest(t, app, http.MethodGet, "/api/games/"+created.ID+"/moves", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var moves []models.MoveRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&moves))

	// Black opens with four symmetric options.
	require.Len(t, moves, 4)
	require.Equal(t, "d3", moves[0].Field)
	require.Len(t, moves[0].Flips, 1)
}

func TestSubmitMove(t *testing.T) {
	app := newTestApp(t)
	created := createGame(t, app, nil)

	resp := doRequest(t, app, http.MethodPost, "/api/games/"+created.ID+"/moves",
		models.MovePayload{Row: 2, Col: 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	state := decodeGame(t, resp)
	require.Equal(t, 1, state.Turn)
	require.Equal(t, "white", state.Player)
	require.Equal(t, 4, state.Score.Black)
	require.Equal(t, 1, state.Score.White)
}

func TestSubmitMoveIllegal(t *testing.T) {
	app := newTestApp(t)
	created := createGame(t, app, nil)

	// Center cell is already occupied.
	resp := doRequest(t, app, http.MethodPost, "/api/games/"+created.ID+"/moves",
		models.MovePayload{Row: 3, Col: 3})
	defer resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSubmitMoveOffBoard(t *testing.T) {
	app := newTestApp(t)
	created := createGame(t, app, nil)

	resp := doRequest(t, app, http.MethodPost, "/api/games/"+created.ID+"/moves",
		models.MovePayload{Row: 9, Col: 0})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUndoRedo(t *testing.T) {
	app := newTestApp(t)
	created := createGame(t, app, nil)

	resp := doRequest(t, app, http.MethodPost, "/api/games/"+created.ID+"/moves",
		models.MovePayload{Row: 2, Col: 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/games/"+created.ID+"/undo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decodeGame(t, resp)
	require.Equal(t, 0, state.Turn)
	require.Equal(t, "black", state.Player)

	// Nothing left to undo at the starting position.
	resp = doRequest(t, app, http.MethodPost, "/api/games/"+created.ID+"/undo", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/games/"+created.ID+"/redo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state = decodeGame(t, resp)
	require.Equal(t, 1, state.Turn)

	resp = doRequest(t, app, http.MethodPost, "/api/games/"+created.ID+"/redo", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestDeleteGame(t *testing.T) {
	app := newTestApp(t)
	created := createGame(t, app, nil)

	resp := doRequest(t, app, http.MethodDelete, "/api/games/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/games/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
