package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-agent/internal/presenter"
	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
)

var errCellRequired = errors.New("cell is required")

type gameManager interface {
	MakeTurn(ctx context.Context, cell int) error
	Reset(ctx context.Context) error
}

// handleGameTurn - puts the player's mark into the requested cell.
func (that *Server) handleGameTurn(ctx context.Context, game gameManager, msg *Message) error {
	var payload TurnPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Cell == nil {
		return errCellRequired
	}

	return game.MakeTurn(ctx, *payload.Cell)
}

func (that *Server) handleGameReset(ctx context.Context, game gameManager, _ *Message) error {
	return game.Reset(ctx)
}

// pushStates - sends every game state to the client until the subscription ends.
func (that *Server) pushStates(conn *connection, states <-chan tictactoe.State) {
	log := that.logger.With("method", "pushStates", "conn_id", conn.id)

	for state := range states {
		if err := conn.Send(actionGameState, presenter.NewView(state)); err != nil {
			log.Error("failed to send state", "error", err)
		}
	}
}
