package presenter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
)

func apply(t *testing.T, state tictactoe.State, events ...tictactoe.Event) tictactoe.State {
	t.Helper()

	for _, event := range events {
		next, _, err := tictactoe.Transition(state, event)
		require.NoError(t, err)
		state = next
	}

	return state
}

func TestNewView(t *testing.T) {
	t.Run("Player turn shows the prompt and playable empty cells", func(t *testing.T) {
		// Given: A game after one exchange
		state := apply(t, tictactoe.NewGame(),
			tictactoe.PlayerMoved{Cell: 0},
			tictactoe.AgentReplied{Generation: 1, Move: entity.Move{Row: 1, Col: 1}},
		)

		// When: Presenting it
		view := NewView(state)

		// Then: Marks are shown and only empty cells are playable
		assert.Equal(t, StatusPlayerTurn, view.Status)
		assert.False(t, view.Thinking)
		assert.False(t, view.GameOver)
		assert.Equal(t, "O", view.Cells[0])
		assert.Equal(t, "X", view.Cells[4])
		assert.Equal(t, "", view.Cells[8])
		assert.False(t, view.Playable[0])
		assert.False(t, view.Playable[4])
		assert.True(t, view.Playable[8])
		assert.Equal(t, ResetLabel, view.ResetLabel)
	})

	t.Run("Agent thinking shows the indicator and blocks the board", func(t *testing.T) {
		// Given: A pending move request
		state := apply(t, tictactoe.NewGame(), tictactoe.PlayerMoved{Cell: 0})

		// When: Presenting it
		view := NewView(state)

		// Then: The thinking indicator is on and no cell is playable
		assert.Equal(t, StatusThinking, view.Status)
		assert.True(t, view.Thinking)
		assert.Equal(t, [entity.BoardSize]bool{}, view.Playable)
	})

	t.Run("Failed request shows the error message", func(t *testing.T) {
		// Given: A failed move request
		state := apply(t, tictactoe.NewGame(),
			tictactoe.PlayerMoved{Cell: 0},
			tictactoe.AgentReplied{Generation: 1, Err: errors.New("connection refused")},
		)

		// When: Presenting it
		view := NewView(state)

		// Then: A generic failure is shown and the game is not over
		assert.Equal(t, StatusFailed, view.Failure)
		assert.Equal(t, StatusStalled, view.Status)
		assert.NotEqual(t, view.Failure, view.Status)
		assert.False(t, view.Thinking)
		assert.False(t, view.GameOver)
		assert.Empty(t, view.Banner)
	})

	t.Run("Finished game shows the banner", func(t *testing.T) {
		// Given: The player completes the top row
		state := apply(t, tictactoe.NewGame(),
			tictactoe.PlayerMoved{Cell: 0},
			tictactoe.AgentReplied{Generation: 1, Move: entity.Move{Row: 1, Col: 0}},
			tictactoe.PlayerMoved{Cell: 1},
			tictactoe.AgentReplied{Generation: 2, Move: entity.Move{Row: 1, Col: 1}},
			tictactoe.PlayerMoved{Cell: 2},
		)

		// When: Presenting it
		view := NewView(state)

		// Then: The result is announced and nothing is playable
		assert.True(t, view.GameOver)
		assert.Equal(t, entity.ResultPlayerWon, view.Result)
		assert.Equal(t, BannerPlayerWon, view.Banner)
		assert.Equal(t, [entity.BoardSize]bool{}, view.Playable)
	})
}

func TestBanner(t *testing.T) {
	assert.Equal(t, BannerPlayerWon, Banner(entity.ResultPlayerWon))
	assert.Equal(t, BannerAgentWon, Banner(entity.ResultAgentWon))
	assert.Equal(t, BannerDraw, Banner(entity.ResultDraw))
	assert.Empty(t, Banner(entity.ResultNone))
}
