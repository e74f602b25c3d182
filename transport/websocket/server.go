package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/rocketscienceinc/nullboard/internal/apperror"
	"github.com/rocketscienceinc/nullboard/internal/entity"
	"github.com/rocketscienceinc/nullboard/internal/pkg"
	"github.com/rocketscienceinc/nullboard/internal/usecase"
)

var errInvalidRequest = errors.New("invalid request")

type handlerFunc func(ctx context.Context, message *Message, conn *connection) error

// Server - command channel over WebSocket. Every text message is a Message
// whose Action selects the handler.
type Server struct {
	logger *slog.Logger
	games  usecase.GameUseCase

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, games usecase.GameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		games:  games,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers["player:register"] = server.handleRegister
	server.handlers["player:who"] = server.handleWho
	server.handlers["game:start"] = server.handleStartGame
	server.handlers["game:current"] = server.handleCurrentGame

	return server
}

// ServeHTTP - upgrades the connection to WebSocket and serves it until the peer leaves.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	if !strings.EqualFold(req.Header.Get("Upgrade"), "websocket") {
		http.Error(writer, "not a websocket upgrade", http.StatusBadRequest)
		return
	}

	key := req.Header.Get("Sec-WebSocket-Key")
	if key == "" {
		http.Error(writer, "missing Sec-WebSocket-Key", http.StatusBadRequest)
		return
	}

	hijacker, ok := writer.(http.Hijacker)
	if !ok {
		log.Error("web server does not support hijacking")
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	conn, bufrw, err := hijacker.Hijack()
	if err != nil {
		log.Error("failed to hijack connection", "error", err)
		return
	}

	defer conn.Close()

	handshake := "HTTP/1.1 101 Switching Protocols\r\n" +
		"Upgrade: websocket\r\n" +
		"Connection: Upgrade\r\n" +
		"Sec-WebSocket-Accept: " + pkg.GenerateAcceptKey(key) + "\r\n\r\n"

	if _, err = bufrw.WriteString(handshake); err == nil {
		err = bufrw.Flush()
	}
	if err != nil {
		log.Error("failed to complete handshake", "error", err)
		return
	}

	log.Info("WebSocket connection established")

	if err = that.handleMessages(req.Context(), newConnection(bufrw)); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages")

	for {
		body, err := conn.readMessage()
		if isClosed(err) {
			return nil
		}
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(body, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = that.sendError(conn, fmt.Errorf("%w: %w", errInvalidRequest, err)); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = that.sendError(conn, fmt.Errorf("%w: unknown action %q", errInvalidRequest, message.Action)); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, &message, conn); err != nil {
			return fmt.Errorf("%s: %w", message.Action, err)
		}
	}
}

type registerPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type whoPayload struct {
	ID string `json:"id"`
}

type startPayload struct {
	PlayerIDs []string `json:"player_ids"`
}

// ResponsePayload - body of every server message.
type ResponsePayload struct {
	Player *entity.Player        `json:"player,omitempty"`
	Game   *usecase.GameSnapshot `json:"game,omitempty"`
	Error  string                `json:"error,omitempty"`
}

func (that *Server) handleRegister(ctx context.Context, message *Message, conn *connection) error {
	var payload registerPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return that.sendError(conn, fmt.Errorf("%w: %w", errInvalidRequest, err))
	}

	player, err := that.games.RegisterPlayer(ctx, payload.ID, payload.Name)
	if err != nil {
		return that.sendError(conn, err)
	}

	return conn.send("player:registered", ResponsePayload{Player: player})
}

func (that *Server) handleWho(ctx context.Context, message *Message, conn *connection) error {
	var payload whoPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return that.sendError(conn, fmt.Errorf("%w: %w", errInvalidRequest, err))
	}

	player, err := that.games.GetPlayer(ctx, payload.ID)
	if err != nil {
		return that.sendError(conn, err)
	}

	return conn.send("player:info", ResponsePayload{Player: player})
}

// handleStartGame - answers with the game snapshot followed by a binary
// message holding the PNG.
func (that *Server) handleStartGame(ctx context.Context, message *Message, conn *connection) error {
	var payload startPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return that.sendError(conn, fmt.Errorf("%w: %w", errInvalidRequest, err))
	}

	started, err := that.games.StartGame(ctx, payload.PlayerIDs)
	if err != nil {
		return that.sendError(conn, err)
	}

	image, err := os.ReadFile(started.ImagePath)
	if err != nil {
		return that.sendError(conn, fmt.Errorf("could not read board image: %w", err))
	}

	snapshot := started.Snapshot()
	if err = conn.send("game:started", ResponsePayload{Game: &snapshot}); err != nil {
		return err
	}

	return conn.sendBinary(image)
}

func (that *Server) handleCurrentGame(_ context.Context, _ *Message, conn *connection) error {
	game, err := that.games.CurrentGame()
	if err != nil {
		return that.sendError(conn, err)
	}

	snapshot := game.Snapshot()

	return conn.send("game:current", ResponsePayload{Game: &snapshot})
}

// sendError - reports err to the client. Errors the client cannot act on are
// logged and replaced by a generic message.
func (that *Server) sendError(conn *connection, err error) error {
	message := err.Error()
	if !apperror.IsClientError(err) && !errors.Is(err, errInvalidRequest) {
		that.logger.Error("command failed", "error", err)
		message = "internal error"
	}

	return conn.send("error", ResponsePayload{Error: message})
}
