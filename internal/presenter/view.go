package presenter

import (
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
)

const (
	StatusPlayerTurn = "Your turn! You are O"
	StatusThinking   = "Agent is thinking..."
	StatusFailed     = "Error processing agent move"
	StatusStalled    = "Choose " + ResetLabel + " to play again"

	BannerPlayerWon = "You won!"
	BannerAgentWon  = "Agent won!"
	BannerDraw      = "Draw!"

	ResetLabel = "New game"
)

// View is everything a UI needs to draw a game state.
type View struct {
	Cells    [entity.BoardSize]string `json:"cells"`
	Playable [entity.BoardSize]bool   `json:"playable"`

	Phase    tictactoe.Phase `json:"phase"`
	Status   string          `json:"status"`
	Thinking bool            `json:"thinking"`
	Failure  string          `json:"failure,omitempty"`

	GameOver bool          `json:"game_over"`
	Result   entity.Result `json:"result,omitempty"`
	Banner   string        `json:"banner,omitempty"`

	ResetLabel string `json:"reset_label"`
}

func NewView(state tictactoe.State) View {
	board := state.Board()

	view := View{
		Phase:      state.Phase(),
		ResetLabel: ResetLabel,
	}

	for cell, mark := range board {
		view.Cells[cell] = string(mark)
		view.Playable[cell] = tictactoe.AcceptsMove(state, cell)
	}

	switch current := state.(type) {
	case tictactoe.PlayerTurn:
		view.Status = StatusPlayerTurn
	case tictactoe.AgentThinking:
		if current.Pending() {
			view.Status = StatusThinking
			view.Thinking = true
		} else {
			// the cause is logged; players only see a generic message
			view.Status = StatusStalled
			view.Failure = StatusFailed
		}
	case tictactoe.GameOver:
		view.GameOver = true
		view.Result = current.Result()
		view.Banner = Banner(current.Result())
		view.Status = view.Banner
	}

	return view
}

// Banner returns the text announcing result, or "" for an unfinished game.
func Banner(result entity.Result) string {
	switch result {
	case entity.ResultPlayerWon:
		return BannerPlayerWon
	case entity.ResultAgentWon:
		return BannerAgentWon
	case entity.ResultDraw:
		return BannerDraw
	default:
		return ""
	}
}
