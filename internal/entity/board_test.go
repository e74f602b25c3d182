package entity

import (
	"testing"

	"github.com/rocketscienceinc/nullboard/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlayers(names ...string) []Player {
	players := make([]Player, 0, len(names))
	for i, name := range names {
		players = append(players, Player{ID: string(rune('1' + i)), DisplayName: name})
	}

	return players
}

func TestNewBoard_PlayerCount(t *testing.T) {
	for _, count := range []int{3, 4} {
		// Given: a valid number of players
		players := testPlayers("Ann", "Bo", "Cy", "Di")[:count]

		// When: building a board
		board, err := NewBoard(players)

		// Then: it should succeed
		require.NoError(t, err, "count %d", count)
		assert.Len(t, board.Players(), count)
	}

	for _, count := range []int{0, 1, 2, 5, 6} {
		// Given: an invalid number of players
		players := make([]Player, count)

		// When: building a board
		board, err := NewBoard(players)

		// Then: it should fail with ErrInvalidPlayerCount
		require.ErrorIs(t, err, apperror.ErrInvalidPlayerCount, "count %d", count)
		assert.Nil(t, board)
	}
}

func TestNewBoard_Placement(t *testing.T) {
	t.Run("Three players leave the last corner empty", func(t *testing.T) {
		// Given: three players
		players := testPlayers("Ann", "Bo", "Cy")

		// When: building a board
		board, err := NewBoard(players)
		require.NoError(t, err)

		// Then: the first three corners hold the players in input order
		for i, player := range players {
			pos := StartPositions[i]
			cell, ok := board.At(pos.Row, pos.Col).(Occupied)
			require.True(t, ok, "position %v", pos)
			assert.Equal(t, player.ID, cell.Slot.PlayerID)
			assert.Equal(t, player.DisplayName, cell.Slot.DisplayName)
		}

		// Then: (5,5) stays empty
		assert.Equal(t, Empty{}, board.At(5, 5))
	})

	t.Run("Four players fill all corners", func(t *testing.T) {
		// Given: four players
		players := testPlayers("Ann", "Bo", "Cy", "Di")

		// When: building a board
		board, err := NewBoard(players)
		require.NoError(t, err)

		// Then: (5,5) holds the fourth player
		cell, ok := board.At(5, 5).(Occupied)
		require.True(t, ok)
		assert.Equal(t, "Di", cell.Slot.DisplayName)
	})

	t.Run("All other cells are empty", func(t *testing.T) {
		// Given: a four player board
		board, err := NewBoard(testPlayers("Ann", "Bo", "Cy", "Di"))
		require.NoError(t, err)

		// When: counting occupied cells outside the start positions
		occupied := 0
		board.ForEach(func(row, col int, cell Cell) {
			if _, ok := cell.(Occupied); !ok {
				return
			}
			occupied++
			assert.Contains(t, StartPositions[:], Position{Row: row, Col: col})
		})

		// Then: only the four corners are occupied
		assert.Equal(t, 4, occupied)
	})
}

func TestNewBoard_Stat(t *testing.T) {
	t.Run("Default starting stat", func(t *testing.T) {
		// Given: a board built without options
		board, err := NewBoard(testPlayers("Ann", "Bo", "Cy"))
		require.NoError(t, err)

		// Then: every player starts with the default stat
		for _, slot := range board.Players() {
			assert.InDelta(t, DefaultStartingStat, slot.Stat, 1e-12)
		}
	})

	t.Run("Custom starting stat", func(t *testing.T) {
		// Given: a board built with a custom stat
		board, err := NewBoard(testPlayers("Ann", "Bo", "Cy"), WithStartingStat(100))
		require.NoError(t, err)

		// Then: the occupied cells carry that stat
		cell, ok := board.At(1, 1).(Occupied)
		require.True(t, ok)
		assert.InDelta(t, 100.0, cell.Slot.Stat, 1e-12)
	})
}

func TestBoard_Immutability(t *testing.T) {
	// Given: a board
	board, err := NewBoard(testPlayers("Ann", "Bo", "Cy"))
	require.NoError(t, err)

	// When: mutating the returned player list
	players := board.Players()
	players[0].DisplayName = "Mallory"

	// Then: the board is unchanged
	assert.Equal(t, "Ann", board.Players()[0].DisplayName)
	assert.Equal(t, BoardSize, board.Size())
	assert.Equal(t, Empty{}, board.At(-1, 99))
}

func TestNewBoard_WithPositions(t *testing.T) {
	// Given: custom seats for three players
	seats := []Position{{0, 0}, {3, 3}, {6, 2}}

	// When: building the board
	board, err := NewBoard(testPlayers("Ann", "Bo", "Cy"), WithPositions(seats...))

	// Then: players sit on those cells and the corners stay empty
	require.NoError(t, err)
	for i, seat := range seats {
		occupied, ok := board.At(seat.Row, seat.Col).(Occupied)
		require.True(t, ok, "seat %v", seat)
		assert.Equal(t, board.Players()[i], occupied.Slot)
	}
	assert.Equal(t, Empty{}, board.At(1, 1))
	assert.Equal(t, Empty{}, board.At(1, 5))
}

func TestNewBoard_WithPositions_Invalid(t *testing.T) {
	cases := map[string][]Position{
		"too few seats": {{0, 0}, {1, 1}},
		"off the board": {{0, 0}, {1, 1}, {7, 0}},
		"negative":      {{0, 0}, {-1, 1}, {2, 2}},
		"shared seat":   {{0, 0}, {2, 2}, {2, 2}},
	}

	for name, seats := range cases {
		_, err := NewBoard(testPlayers("Ann", "Bo", "Cy"), WithPositions(seats...))

		require.ErrorIs(t, err, apperror.ErrInvalidPosition, name)
	}
}
