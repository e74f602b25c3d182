package usecase

import (
	"context"

	"github.com/rocketscienceinc/nullboard/internal/entity"
)

type GameUseCase interface {
	RegisterPlayer(ctx context.Context, id, name string) (*entity.Player, error)
	GetPlayer(ctx context.Context, id string) (*entity.Player, error)

	StartGame(ctx context.Context, playerIDs []string) (*StartedGame, error)
	CurrentGame() (*ActiveGame, error)
}

type playerRepoDep interface {
	Create(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type boardRendererDep interface {
	Render(board *entity.Board, path string) error
}

// BoardBuilder - turns the resolved players into a fresh board.
type BoardBuilder func(players []entity.Player) (*entity.Board, error)

// ActiveGame is the game currently held by a GameSlot.
type ActiveGame struct {
	ID    string
	Board *entity.Board
}

// StartedGame is the result of StartGame.
type StartedGame struct {
	ActiveGame
	ImagePath string
}

// SlotSnapshot is one occupied cell of a board.
type SlotSnapshot struct {
	PlayerID    string  `json:"player_id"`
	DisplayName string  `json:"display_name"`
	Stat        float64 `json:"stat"`
	Row         int     `json:"row"`
	Col         int     `json:"col"`
}

// GameSnapshot is the serializable view of an active game.
type GameSnapshot struct {
	ID      string         `json:"id"`
	Size    int            `json:"size"`
	Players []SlotSnapshot `json:"players"`
}

// Snapshot - players are listed in row-major order of their cells.
func (that *ActiveGame) Snapshot() GameSnapshot {
	snapshot := GameSnapshot{
		ID:      that.ID,
		Size:    that.Board.Size(),
		Players: []SlotSnapshot{},
	}

	that.Board.ForEach(func(row, col int, cell entity.Cell) {
		occupied, ok := cell.(entity.Occupied)
		if !ok {
			return
		}

		snapshot.Players = append(snapshot.Players, SlotSnapshot{
			PlayerID:    occupied.Slot.PlayerID,
			DisplayName: occupied.Slot.DisplayName,
			Stat:        occupied.Slot.Stat,
			Row:         row,
			Col:         col,
		})
	})

	return snapshot
}
