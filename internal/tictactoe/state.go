package tictactoe

import "github.com/rocketscienceinc/tictactoe-agent/internal/entity"

type Phase string

const (
	PhasePlayerTurn    Phase = "player_turn"
	PhaseAgentThinking Phase = "agent_thinking"
	PhaseGameOver      Phase = "game_over"
)

// State is one of PlayerTurn, AgentThinking or GameOver.
type State interface {
	Phase() Phase
	Board() entity.Board
	// Generation identifies the last move request issued for this state.
	Generation() uint64

	isState()
}

type base struct {
	board      entity.Board
	generation uint64
}

func (that base) Board() entity.Board { return that.board }
func (that base) Generation() uint64  { return that.generation }
func (base) isState()                 {}

// PlayerTurn waits for the human player to mark a cell.
type PlayerTurn struct {
	base
}

func (PlayerTurn) Phase() Phase { return PhasePlayerTurn }

// AgentThinking has a move request in flight, or, once failure is set,
// is stalled until the game is reset.
type AgentThinking struct {
	base
	failure error
}

func (AgentThinking) Phase() Phase { return PhaseAgentThinking }

// Pending reports whether the move request is still outstanding.
func (that AgentThinking) Pending() bool { return that.failure == nil }

func (that AgentThinking) Failure() error { return that.failure }

// GameOver is terminal; only a reset leaves it.
type GameOver struct {
	base
	result entity.Result
}

func (GameOver) Phase() Phase { return PhaseGameOver }

func (that GameOver) Result() entity.Result { return that.result }

// NewGame returns the initial state: empty board, player to move.
func NewGame() State {
	return PlayerTurn{}
}

// ResultOf returns the result of a finished game, or ResultNone.
func ResultOf(state State) entity.Result {
	if over, ok := state.(GameOver); ok {
		return over.result
	}

	return entity.ResultNone
}

// AcceptsMove reports whether a player move into cell would be accepted.
func AcceptsMove(state State, cell int) bool {
	_, ok := state.(PlayerTurn)
	return ok && state.Board().IsEmptyCell(cell)
}
