package entity

import (
	"fmt"

	"github.com/rocketscienceinc/nullboard/internal/apperror"
)

const (
	BoardSize = 7

	MinPlayers = 3
	MaxPlayers = 4

	// DefaultStartingStat is the health every player starts with.
	// The value has no documented meaning; it is kept configurable.
	DefaultStartingStat = 123.5764846945
)

// Position is a zero-based (row, column) pair on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// StartPositions lists where the n-th player is placed when a game starts.
var StartPositions = [MaxPlayers]Position{
	{Row: 1, Col: 1},
	{Row: 1, Col: 5},
	{Row: 5, Col: 1},
	{Row: 5, Col: 5},
}

// PlayerSlot holds what the board needs to know about a seated player.
type PlayerSlot struct {
	PlayerID    string  `json:"player_id"`
	DisplayName string  `json:"display_name"`
	Stat        float64 `json:"stat"`
}

// Cell is either Empty or Occupied.
type Cell interface {
	isCell()
}

type Empty struct{}

type Occupied struct {
	Slot PlayerSlot
}

func (Empty) isCell()    {}
func (Occupied) isCell() {}

// Board is an immutable snapshot of the grid.
type Board struct {
	cells   [BoardSize][BoardSize]Cell
	players []PlayerSlot
}

type boardOptions struct {
	startingStat float64
	positions    []Position
}

type BoardOption func(*boardOptions)

// WithStartingStat overrides the stat every player starts with.
func WithStartingStat(stat float64) BoardOption {
	return func(o *boardOptions) {
		o.startingStat = stat
	}
}

// WithPositions seats player i on positions[i] instead of StartPositions[i].
func WithPositions(positions ...Position) BoardOption {
	return func(o *boardOptions) {
		o.positions = positions
	}
}

// NewBoard - seats 3 or 4 players in the start positions, in input order.
func NewBoard(players []Player, opts ...BoardOption) (*Board, error) {
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidPlayerCount, len(players))
	}

	options := boardOptions{startingStat: DefaultStartingStat, positions: StartPositions[:]}
	for _, opt := range opts {
		opt(&options)
	}

	if err := validatePositions(options.positions, len(players)); err != nil {
		return nil, err
	}

	board := &Board{
		players: make([]PlayerSlot, 0, len(players)),
	}

	for row := range board.cells {
		for col := range board.cells[row] {
			board.cells[row][col] = Empty{}
		}
	}

	for i, player := range players {
		slot := PlayerSlot{
			PlayerID:    player.ID,
			DisplayName: player.DisplayName,
			Stat:        options.startingStat,
		}

		pos := options.positions[i]
		board.cells[pos.Row][pos.Col] = Occupied{Slot: slot}
		board.players = append(board.players, slot)
	}

	return board, nil
}

func validatePositions(positions []Position, players int) error {
	if len(positions) < players {
		return fmt.Errorf("%w: %d positions for %d players", apperror.ErrInvalidPosition, len(positions), players)
	}

	seen := make(map[Position]struct{}, players)
	for _, pos := range positions[:players] {
		if pos.Row < 0 || pos.Row >= BoardSize || pos.Col < 0 || pos.Col >= BoardSize {
			return fmt.Errorf("%w: (%d,%d) is off the board", apperror.ErrInvalidPosition, pos.Row, pos.Col)
		}

		if _, ok := seen[pos]; ok {
			return fmt.Errorf("%w: (%d,%d) used twice", apperror.ErrInvalidPosition, pos.Row, pos.Col)
		}
		seen[pos] = struct{}{}
	}

	return nil
}

// Size returns the number of rows (and columns).
func (that *Board) Size() int {
	return BoardSize
}

// At returns the cell at row, col. Out of range positions are Empty.
func (that *Board) At(row, col int) Cell {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Empty{}
	}

	return that.cells[row][col]
}

// Players returns a copy of the seated players in seating order.
func (that *Board) Players() []PlayerSlot {
	players := make([]PlayerSlot, len(that.players))
	copy(players, that.players)

	return players
}

// ForEach visits every cell in row-major order.
func (that *Board) ForEach(fn func(row, col int, cell Cell)) {
	for row := range that.cells {
		for col, cell := range that.cells[row] {
			fn(row, col, cell)
		}
	}
}
