package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/rocketscienceinc/nullboard/internal/apperror"
	"github.com/rocketscienceinc/nullboard/internal/entity"
	"github.com/rocketscienceinc/nullboard/internal/pkg"
)

const outputDirPerm = 0o755

type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepoDep
	renderer   boardRendererDep
	slot       *GameSlot

	outputDir  string
	buildBoard BoardBuilder
	newGameID  func() (string, error)

	// renderMu serializes renders; only one board is drawn at a time.
	renderMu sync.Mutex
}

type Option func(*GameManager)

// WithBoardBuilder - replaces the default board construction.
func WithBoardBuilder(builder BoardBuilder) Option {
	return func(that *GameManager) {
		that.buildBoard = builder
	}
}

// WithStartingStat - boards built by the default builder give every player stat.
func WithStartingStat(stat float64) Option {
	return func(that *GameManager) {
		that.buildBoard = func(players []entity.Player) (*entity.Board, error) {
			return entity.NewBoard(players, entity.WithStartingStat(stat))
		}
	}
}

// WithGameIDGenerator - replaces the random game id source.
func WithGameIDGenerator(generate func() (string, error)) Option {
	return func(that *GameManager) {
		that.newGameID = generate
	}
}

func NewGameManager(
	logger *slog.Logger,
	playerRepo playerRepoDep,
	renderer boardRendererDep,
	slot *GameSlot,
	outputDir string,
	opts ...Option,
) *GameManager {
	manager := &GameManager{
		logger:     logger.With("component", "game_manager"),
		playerRepo: playerRepo,
		renderer:   renderer,
		slot:       slot,
		outputDir:  outputDir,
		buildBoard: func(players []entity.Player) (*entity.Board, error) {
			return entity.NewBoard(players)
		},
		newGameID: pkg.GenerateGameID,
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

// RegisterPlayer - validates the display name and stores a new player.
func (that *GameManager) RegisterPlayer(ctx context.Context, id, name string) (*entity.Player, error) {
	if id == "" {
		return nil, apperror.ErrEmptyPlayerID
	}

	if err := entity.ValidateDisplayName(name); err != nil {
		return nil, err
	}

	player := &entity.Player{ID: id, DisplayName: name}
	if err := that.playerRepo.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	that.logger.Info("player registered", "method", "RegisterPlayer", "player", id)

	return player, nil
}

func (that *GameManager) GetPlayer(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player %s: %w", id, err)
	}

	return player, nil
}

// StartGame - resolves the players, installs a new board as the active game and
// renders it to <output-dir>/<game-id>.png.
func (that *GameManager) StartGame(ctx context.Context, playerIDs []string) (*StartedGame, error) {
	log := that.logger.With("method", "StartGame")

	if len(playerIDs) < entity.MinPlayers || len(playerIDs) > entity.MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidPlayerCount, len(playerIDs))
	}

	players := make([]entity.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		player, err := that.GetPlayer(ctx, id)
		if err != nil {
			return nil, err
		}

		players = append(players, *player)
	}

	board, err := that.buildBoard(players)
	if err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}

	gameID, err := that.newGameID()
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.slot.Replace(gameID, board)
	log.Info("game started", "game", gameID, "players", len(players))

	path, err := that.render(gameID, board)
	if err != nil {
		return nil, err
	}

	return &StartedGame{
		ActiveGame: ActiveGame{ID: gameID, Board: board},
		ImagePath:  path,
	}, nil
}

func (that *GameManager) CurrentGame() (*ActiveGame, error) {
	return that.slot.Current()
}

func (that *GameManager) render(gameID string, board *entity.Board) (string, error) {
	that.renderMu.Lock()
	defer that.renderMu.Unlock()

	if err := os.MkdirAll(that.outputDir, outputDirPerm); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(that.outputDir, gameID+".png")
	if err := that.renderer.Render(board, path); err != nil {
		return "", fmt.Errorf("failed to render game %s: %w", gameID, err)
	}

	return path, nil
}
