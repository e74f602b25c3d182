package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/nullboard/internal/apperror"
	"github.com/rocketscienceinc/nullboard/internal/entity"
	"github.com/rocketscienceinc/nullboard/internal/usecase"
	mockedRest "github.com/rocketscienceinc/nullboard/mocks/rest"
)

var errRedisDown = errors.New("redis down")

func newTestRouter(t *testing.T) (http.Handler, *mockedRest.MockGameUseCase) {
	t.Helper()

	games := mockedRest.NewMockGameUseCase(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewRouter(NewHandlers(logger, games)), games
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestRegisterPlayer(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		// Given: a usecase that accepts the player
		router, games := newTestRouter(t)
		games.EXPECT().
			RegisterPlayer(mock.Anything, "7", "Ann").
			Return(&entity.Player{ID: "7", DisplayName: "Ann"}, nil).
			Once()

		// When: posting a registration
		rec := serve(router, http.MethodPost, "/players", `{"id":"7","name":"Ann"}`)

		// Then: the player is echoed back
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":"7","display_name":"Ann"}`, rec.Body.String())
	})

	cases := map[string]struct {
		err  error
		code int
	}{
		"name too long": {apperror.ErrNameTooLong, http.StatusBadRequest},
		"empty name":    {apperror.ErrEmptyName, http.StatusBadRequest},
		"duplicate":     {apperror.ErrPlayerAlreadyExists, http.StatusConflict},
		"storage down":  {errRedisDown, http.StatusInternalServerError},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			router, games := newTestRouter(t)
			games.EXPECT().
				RegisterPlayer(mock.Anything, "7", "Ann").
				Return((*entity.Player)(nil), tc.err).
				Once()

			rec := serve(router, http.MethodPost, "/players", `{"id":"7","name":"Ann"}`)

			assert.Equal(t, tc.code, rec.Code)
		})
	}

	t.Run("Malformed body", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := serve(router, http.MethodPost, "/players", `{"id":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetPlayer(t *testing.T) {
	router, games := newTestRouter(t)
	games.EXPECT().
		GetPlayer(mock.Anything, "7").
		Return(&entity.Player{ID: "7", DisplayName: "Ann"}, nil).
		Once()
	games.EXPECT().
		GetPlayer(mock.Anything, "8").
		Return((*entity.Player)(nil), apperror.ErrPlayerNotFound).
		Once()

	found := serve(router, http.MethodGet, "/players/7", "")
	missing := serve(router, http.MethodGet, "/players/8", "")

	assert.Equal(t, http.StatusOK, found.Code)
	assert.JSONEq(t, `{"id":"7","display_name":"Ann"}`, found.Body.String())
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestStartGame(t *testing.T) {
	t.Run("Returns the rendered image", func(t *testing.T) {
		// Given: a usecase that rendered a board to disk
		path := filepath.Join(t.TempDir(), "00000042.png")
		require.NoError(t, os.WriteFile(path, []byte("\x89PNG fake"), 0o600))

		router, games := newTestRouter(t)
		games.EXPECT().
			StartGame(mock.Anything, []string{"1", "2", "3"}).
			Return(&usecase.StartedGame{ActiveGame: usecase.ActiveGame{ID: "00000042"}, ImagePath: path}, nil).
			Once()

		// When: starting a game
		rec := serve(router, http.MethodPost, "/games", `{"player_ids":["1","2","3"]}`)

		// Then: the image bytes are the response body
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "00000042", rec.Header().Get("X-Game-Id"))
		assert.Equal(t, "\x89PNG fake", rec.Body.String())
	})

	t.Run("Invalid player count", func(t *testing.T) {
		router, games := newTestRouter(t)
		games.EXPECT().
			StartGame(mock.Anything, []string{"1", "2"}).
			Return((*usecase.StartedGame)(nil), apperror.ErrInvalidPlayerCount).
			Once()

		rec := serve(router, http.MethodPost, "/games", `{"player_ids":["1","2"]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown player", func(t *testing.T) {
		router, games := newTestRouter(t)
		games.EXPECT().
			StartGame(mock.Anything, mock.Anything).
			Return((*usecase.StartedGame)(nil), apperror.ErrPlayerNotFound).
			Once()

		rec := serve(router, http.MethodPost, "/games", `{"player_ids":["1","2","9"]}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Missing glyph is an internal error", func(t *testing.T) {
		router, games := newTestRouter(t)
		games.EXPECT().
			StartGame(mock.Anything, mock.Anything).
			Return((*usecase.StartedGame)(nil), &apperror.GlyphNotFoundError{Rune: '뉴'}).
			Once()

		rec := serve(router, http.MethodPost, "/games", `{"player_ids":["1","2","3"]}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "뉴")
	})
}

func TestCurrentGame(t *testing.T) {
	t.Run("Active game", func(t *testing.T) {
		board, err := entity.NewBoard([]entity.Player{
			{ID: "1", DisplayName: "Ann"},
			{ID: "2", DisplayName: "Bo"},
			{ID: "3", DisplayName: "Cy"},
		}, entity.WithStartingStat(10))
		require.NoError(t, err)

		router, games := newTestRouter(t)
		games.EXPECT().
			CurrentGame().
			Return(&usecase.ActiveGame{ID: "42", Board: board}, nil).
			Once()

		rec := serve(router, http.MethodGet, "/games/current", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var body usecase.GameSnapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "42", body.ID)
		assert.Equal(t, 7, body.Size)
		require.Len(t, body.Players, 3)
		assert.Equal(t, usecase.SlotSnapshot{PlayerID: "2", DisplayName: "Bo", Stat: 10, Row: 1, Col: 5}, body.Players[1])
	})

	t.Run("No game", func(t *testing.T) {
		router, games := newTestRouter(t)
		games.EXPECT().
			CurrentGame().
			Return((*usecase.ActiveGame)(nil), apperror.ErrNoActiveGame).
			Once()

		rec := serve(router, http.MethodGet, "/games/current", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodDelete, "/games", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
