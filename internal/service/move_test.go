package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/rocketscienceinc/tictactoe-agent/testing/suite"
)

func TestMoveService_SelectMove(t *testing.T) {
	t.Run("Sends the board matrix and decodes the move", func(t *testing.T) {
		// Given: A move service that answers [1, 2]
		ctx, st := suite.New(t)
		st.MoveService.Enqueue(suite.MoveReply(1, 2))

		board, err := entity.Board{}.Place(entity.PlayerMark, 4)
		require.NoError(t, err)

		moveService := NewMoveService(st.URL, time.Second)

		// When: Asking for a move
		move, err := moveService.SelectMove(ctx, board)

		// Then: The move is decoded and the request carries the player's mark as -1
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)

		requests := st.MoveService.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, [3][3]int{{0, 0, 0}, {0, -1, 0}, {0, 0, 0}}, requests[0])
	})

	t.Run("Trailing slash in base url is ignored", func(t *testing.T) {
		// Given: A base url ending with a slash
		ctx, st := suite.New(t)
		moveService := NewMoveService(st.URL+"/", time.Second)

		// When: Asking for a move on an empty board
		move, err := moveService.SelectMove(ctx, entity.Board{})

		// Then: The request reaches /make_move
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})

	t.Run("Error field is reported as a rejection", func(t *testing.T) {
		// Given: A service that has no valid moves
		ctx, st := suite.New(t)
		st.MoveService.Enqueue(suite.ErrorReply("No valid moves"))

		// When: Asking for a move
		_, err := NewMoveService(st.URL, time.Second).SelectMove(ctx, entity.Board{})

		// Then: The error carries the service message
		require.ErrorIs(t, err, apperror.ErrServiceRejected)
		assert.Contains(t, err.Error(), "No valid moves")
	})

	t.Run("Non-2xx status is reported as unavailable", func(t *testing.T) {
		// Given: A failing service
		ctx, st := suite.New(t)
		st.MoveService.Enqueue(suite.Reply{Status: http.StatusInternalServerError, Body: "boom"})

		// When: Asking for a move
		_, err := NewMoveService(st.URL, time.Second).SelectMove(ctx, entity.Board{})

		// Then: The service is unavailable
		require.ErrorIs(t, err, apperror.ErrServiceUnavailable)
	})

	t.Run("Malformed bodies are rejected", func(t *testing.T) {
		for name, body := range map[string]string{
			"not json":      "move: 1,2",
			"empty object":  "{}",
			"short move":    `{"move": [1]}`,
			"too long move": `{"move": [1, 2, 3]}`,
		} {
			t.Run(name, func(t *testing.T) {
				// Given: A service answering with a malformed body
				ctx, st := suite.New(t)
				st.MoveService.Enqueue(suite.Reply{Status: http.StatusOK, Body: body})

				// When: Asking for a move
				_, err := NewMoveService(st.URL, time.Second).SelectMove(ctx, entity.Board{})

				// Then: The response is reported as malformed
				require.ErrorIs(t, err, apperror.ErrMalformedResponse)
			})
		}
	})

	t.Run("Unreachable service is reported as unavailable", func(t *testing.T) {
		// Given: No service listening
		moveService := NewMoveService("http://127.0.0.1:1", time.Second)

		// When: Asking for a move
		_, err := moveService.SelectMove(context.Background(), entity.Board{})

		// Then: The service is unavailable
		require.ErrorIs(t, err, apperror.ErrServiceUnavailable)
	})

	t.Run("Canceled context abandons the request", func(t *testing.T) {
		// Given: A service that never answers
		_, st := suite.New(t)
		hold := make(chan struct{})
		t.Cleanup(func() { close(hold) })
		st.MoveService.Enqueue(suite.Reply{Status: http.StatusOK, Hold: hold})

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		// When: Asking for a move with a short deadline
		_, err := NewMoveService(st.URL, 0).SelectMove(ctx, entity.Board{})

		// Then: The context error is preserved
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
