package entity

type Result string

const (
	ResultNone      Result = ""
	ResultPlayerWon Result = "player_won"
	ResultAgentWon  Result = "agent_won"
	ResultDraw      Result = "draw"
)

// DetermineResult checks the winning lines first; a draw needs a full board without a winner.
func DetermineResult(board Board) Result {
	switch board.Winner() {
	case PlayerMark:
		return ResultPlayerWon
	case AgentMark:
		return ResultAgentWon
	}

	if board.IsFull() {
		return ResultDraw
	}

	return ResultNone
}

func (that Result) IsTerminal() bool {
	return that != ResultNone
}
