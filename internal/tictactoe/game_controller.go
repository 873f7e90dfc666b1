package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

// Event is an input to Transition.
type Event interface {
	isEvent()
}

// PlayerMoved asks to put the player's mark into Cell.
type PlayerMoved struct {
	Cell int
}

// AgentReplied carries the outcome of the move request tagged with Generation.
type AgentReplied struct {
	Generation uint64
	Move       entity.Move
	Err        error
}

type ResetRequested struct{}

func (PlayerMoved) isEvent()    {}
func (AgentReplied) isEvent()   {}
func (ResetRequested) isEvent() {}

// Effect is a side effect the caller must perform after a transition.
type Effect interface {
	isEffect()
}

// RequestMove asks the move service for the agent's move on Board.
type RequestMove struct {
	Generation uint64
	Board      entity.Board
}

// CancelRequest abandons the outstanding move request of Generation.
type CancelRequest struct {
	Generation uint64
}

func (RequestMove) isEffect()   {}
func (CancelRequest) isEffect() {}

// Transition applies event to state. A rejected event returns the unchanged state and an error.
func Transition(state State, event Event) (State, []Effect, error) {
	switch ev := event.(type) {
	case PlayerMoved:
		return playerMove(state, ev.Cell)
	case AgentReplied:
		return agentReply(state, ev)
	case ResetRequested:
		return reset(state)
	default:
		return state, nil, fmt.Errorf("unknown event %T", event)
	}
}

func playerMove(state State, cell int) (State, []Effect, error) {
	switch current := state.(type) {
	case GameOver:
		return state, nil, apperror.ErrGameFinished
	case AgentThinking:
		if current.Pending() {
			return state, nil, apperror.ErrAgentThinking
		}
		return state, nil, fmt.Errorf("%w: %w", apperror.ErrAgentFailed, current.failure)
	case PlayerTurn:
	default:
		return state, nil, fmt.Errorf("unknown state %T", state)
	}

	board, err := state.Board().Place(entity.PlayerMark, cell)
	if err != nil {
		return state, nil, fmt.Errorf("invalid turn: %w", err)
	}

	if result := entity.DetermineResult(board); result.IsTerminal() {
		return GameOver{base: base{board: board, generation: state.Generation()}, result: result}, nil, nil
	}

	generation := state.Generation() + 1
	next := AgentThinking{base: base{board: board, generation: generation}}

	return next, []Effect{RequestMove{Generation: generation, Board: board}}, nil
}

func agentReply(state State, reply AgentReplied) (State, []Effect, error) {
	thinking, ok := state.(AgentThinking)
	if !ok || !thinking.Pending() || thinking.generation != reply.Generation {
		return state, nil, fmt.Errorf("%w: generation %d", apperror.ErrStaleReply, reply.Generation)
	}

	if reply.Err != nil {
		return thinking.fail(reply.Err), nil, nil
	}

	if !reply.Move.Valid() {
		return thinking.fail(fmt.Errorf("%w: %s out of range", apperror.ErrInvalidMove, reply.Move)), nil, nil
	}

	board, err := thinking.board.Place(entity.AgentMark, reply.Move.Index())
	if err != nil {
		return thinking.fail(fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)), nil, nil
	}

	next := base{board: board, generation: thinking.generation}
	if result := entity.DetermineResult(board); result.IsTerminal() {
		return GameOver{base: next, result: result}, nil, nil
	}

	return PlayerTurn{base: next}, nil, nil
}

func reset(state State) (State, []Effect, error) {
	var effects []Effect
	if thinking, ok := state.(AgentThinking); ok && thinking.Pending() {
		effects = append(effects, CancelRequest{Generation: thinking.generation})
	}

	// the generation keeps growing so that replies issued before the reset never match
	return PlayerTurn{base: base{generation: state.Generation() + 1}}, effects, nil
}

func (that AgentThinking) fail(err error) AgentThinking {
	that.failure = err
	return that
}
