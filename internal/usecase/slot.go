package usecase

import (
	"sync"

	"github.com/rocketscienceinc/nullboard/internal/apperror"
	"github.com/rocketscienceinc/nullboard/internal/entity"
)

// GameSlot holds the single active game. Starting a game replaces the
// previous one.
type GameSlot struct {
	mu      sync.RWMutex
	current *ActiveGame
}

func NewGameSlot() *GameSlot {
	return &GameSlot{}
}

func (that *GameSlot) Replace(id string, board *entity.Board) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.current = &ActiveGame{ID: id, Board: board}
}

func (that *GameSlot) Current() (*ActiveGame, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if that.current == nil {
		return nil, apperror.ErrNoActiveGame
	}

	active := *that.current

	return &active, nil
}
