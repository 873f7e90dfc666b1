package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrAgentThinking = errors.New("agent is thinking")
	ErrAgentFailed   = errors.New("agent failed to make a move")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrStaleReply    = errors.New("stale agent reply")
	ErrGameStopped   = errors.New("game is stopped")

	ErrServiceUnavailable = errors.New("move service is unavailable")
	ErrServiceRejected    = errors.New("move service returned an error")
	ErrMalformedResponse  = errors.New("malformed move service response")
	ErrInvalidMove        = errors.New("move service returned an invalid move")
)
