package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
)

const (
	o = PlayerMark
	x = AgentMark
	e = EmptyCell
)

func TestBoard_Winner(t *testing.T) {
	t.Run("Every winning line is detected for both marks", func(t *testing.T) {
		for _, combo := range WinCombos {
			for _, mark := range []Mark{PlayerMark, AgentMark} {
				// Given: a board where one line is filled with the same mark
				var board Board
				for _, cell := range combo {
					board[cell] = mark
				}

				// When: determining the winner
				winner := board.Winner()

				// Then: the mark of the line should be returned
				assert.Equal(t, mark, winner, "combo %v", combo)
			}
		}
	})

	t.Run("Mixed line is not a win", func(t *testing.T) {
		// Given: a top row with two player marks and one agent mark
		board := Board{o, o, x, e, e, e, e, e, e}

		// When: determining the winner
		winner := board.Winner()

		// Then: nobody should win
		assert.Equal(t, EmptyCell, winner)
	})
}

func TestDetermineResult(t *testing.T) {
	t.Run("Returns ResultPlayerWon when Player wins", func(t *testing.T) {
		// Given: a board where the player owns the left column
		board := Board{
			o, x, e,
			o, x, e,
			o, e, e,
		}

		// When: determining the result
		result := DetermineResult(board)

		// Then: the player should win
		assert.Equal(t, ResultPlayerWon, result)
	})

	t.Run("Returns ResultAgentWon when Agent wins", func(t *testing.T) {
		// Given: a board where the agent owns the anti-diagonal
		board := Board{
			o, o, x,
			e, x, e,
			x, e, o,
		}

		// When: determining the result
		result := DetermineResult(board)

		// Then: the agent should win
		assert.Equal(t, ResultAgentWon, result)
	})

	t.Run("Returns ResultDraw when the board is full", func(t *testing.T) {
		// Given: a full board without a winning line
		board := Board{
			x, o, x,
			o, x, o,
			o, x, o,
		}

		// When: determining the result
		result := DetermineResult(board)

		// Then: the game should be a draw
		assert.Equal(t, ResultDraw, result)
	})

	t.Run("Win on the last free cell beats draw", func(t *testing.T) {
		// Given: a full board whose last mark completed a line
		board := Board{
			o, o, o,
			x, x, o,
			x, o, x,
		}

		// When: determining the result
		result := DetermineResult(board)

		// Then: the line wins
		assert.Equal(t, ResultPlayerWon, result)
	})

	t.Run("Returns ResultNone when the game is ongoing", func(t *testing.T) {
		// Given: a board that is still in play
		board := Board{
			x, o, e,
			e, x, e,
			e, e, o,
		}

		// When: determining the result
		result := DetermineResult(board)

		// Then: the game should continue
		assert.Equal(t, ResultNone, result)
		assert.False(t, result.IsTerminal())
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Successful placement", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: the player marks the center
		next, err := board.Place(PlayerMark, 4)

		// Then: only the new board contains the mark
		require.NoError(t, err)
		assert.Equal(t, PlayerMark, next[4])
		assert.Equal(t, EmptyCell, board[4])
		assert.Equal(t, 1, next.Marks())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where cell 0 belongs to the agent
		board := Board{x, e, e, e, e, e, e, e, e}

		// When: the player tries to overwrite it
		next, err := board.Place(PlayerMark, 0)

		// Then: ErrCellOccupied should be returned and the board stays unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, board, next)
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		var board Board

		for _, cell := range []int{-1, 9, 20} {
			// When: an out-of-range index is passed
			_, err := board.Place(PlayerMark, cell)

			// Then: ErrInvalidCell should be returned
			assert.ErrorIs(t, err, apperror.ErrInvalidCell)
		}
	})
}

func TestBoard_Matrix(t *testing.T) {
	// Given: a board with a player mark in the center and an agent mark in the corner
	board := Board{x, e, e, e, o, e, e, e, e}

	// When: encoding the board for the move service
	matrix := board.Matrix()

	// Then: player is -1, agent is 1 and empty cells are 0 in row-major order
	assert.Equal(t, [3][3]int{{1, 0, 0}, {0, -1, 0}, {0, 0, 0}}, matrix)
}

func TestMove(t *testing.T) {
	t.Run("Index is row * 3 + column", func(t *testing.T) {
		assert.Equal(t, 0, Move{Row: 0, Col: 0}.Index())
		assert.Equal(t, 2, Move{Row: 0, Col: 2}.Index())
		assert.Equal(t, 5, Move{Row: 1, Col: 2}.Index())
		assert.Equal(t, 8, Move{Row: 2, Col: 2}.Index())
	})

	t.Run("Valid rejects coordinates outside the grid", func(t *testing.T) {
		assert.True(t, Move{Row: 2, Col: 0}.Valid())
		assert.False(t, Move{Row: 3, Col: 0}.Valid())
		assert.False(t, Move{Row: 0, Col: -1}.Valid())
	})
}
