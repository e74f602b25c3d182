package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/rocketscienceinc/nullboard/internal/apperror"
	"github.com/rocketscienceinc/nullboard/internal/usecase"
)

const maxBodyBytes = 1 << 16

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	RegisterPlayer(w http.ResponseWriter, r *http.Request)
	GetPlayer(w http.ResponseWriter, r *http.Request)

	StartGame(w http.ResponseWriter, r *http.Request)
	CurrentGame(w http.ResponseWriter, r *http.Request)
}

type registerRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type startGameRequest struct {
	PlayerIDs []string `json:"player_ids"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger *slog.Logger
	games  usecase.GameUseCase
}

func NewHandlers(logger *slog.Logger, games usecase.GameUseCase) Handlers {
	return &handlers{
		logger: logger.With("component", "rest_handlers"),
		games:  games,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	player, err := that.games.RegisterPlayer(r.Context(), req.ID, req.Name)
	if err != nil {
		that.writeError(w, "RegisterPlayer", err)
		return
	}

	writeJSON(w, http.StatusCreated, player)
}

func (that *handlers) GetPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := that.games.GetPlayer(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "GetPlayer", err)
		return
	}

	writeJSON(w, http.StatusOK, player)
}

// StartGame - starts a game and answers with the rendered board image.
func (that *handlers) StartGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	started, err := that.games.StartGame(r.Context(), req.PlayerIDs)
	if err != nil {
		that.writeError(w, "StartGame", err)
		return
	}

	image, err := os.Open(started.ImagePath)
	if err != nil {
		that.writeError(w, "StartGame", err)
		return
	}
	defer image.Close()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Game-Id", started.ID)
	w.WriteHeader(http.StatusCreated)

	if _, err = io.Copy(w, image); err != nil {
		that.logger.Error("could not send board image", "method", "StartGame", "error", err)
	}
}

func (that *handlers) CurrentGame(w http.ResponseWriter, _ *http.Request) {
	game, err := that.games.CurrentGame()
	if err != nil {
		that.writeError(w, "CurrentGame", err)
		return
	}

	writeJSON(w, http.StatusOK, game.Snapshot())
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidPlayerCount),
		errors.Is(err, apperror.ErrNameTooLong),
		errors.Is(err, apperror.ErrEmptyName),
		errors.Is(err, apperror.ErrEmptyPlayerID):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrPlayerNotFound),
		errors.Is(err, apperror.ErrNoActiveGame):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrPlayerAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	return decoder.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
