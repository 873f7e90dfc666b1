package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

const (
	makeMovePath    = "/make_move"
	maxResponseSize = 1 << 20

	// a move is a [row, column] pair
	moveLength = 2
)

// MoveService asks the external move-selection service for the agent's next move.
type MoveService interface {
	SelectMove(ctx context.Context, board entity.Board) (entity.Move, error)
}

type moveRequest struct {
	Board [entity.RowSize][entity.RowSize]int `json:"board"`
}

type moveResponse struct {
	Move  []int  `json:"move,omitempty"`
	Error string `json:"error,omitempty"`
}

type moveService struct {
	url    string
	client *http.Client
}

// NewMoveService returns a client for the service at baseURL. A zero timeout leaves
// the request bounded only by the caller's context and the transport defaults.
func NewMoveService(baseURL string, timeout time.Duration) MoveService {
	return &moveService{
		url:    strings.TrimSuffix(baseURL, "/") + makeMovePath,
		client: &http.Client{Timeout: timeout},
	}
}

func (that *moveService) SelectMove(ctx context.Context, board entity.Board) (entity.Move, error) {
	body, err := json.Marshal(moveRequest{Board: board.Matrix()})
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to marshal board: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, that.url, bytes.NewReader(body))
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := that.client.Do(req)
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %w", apperror.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return entity.Move{}, fmt.Errorf("%w: status %d", apperror.ErrServiceUnavailable, resp.StatusCode)
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to read response: %w", err)
	}

	return decodeMove(respBody)
}

func decodeMove(body []byte) (entity.Move, error) {
	var response moveResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return entity.Move{}, fmt.Errorf("%w: %w", apperror.ErrMalformedResponse, err)
	}

	if response.Error != "" {
		return entity.Move{}, fmt.Errorf("%w: %s", apperror.ErrServiceRejected, response.Error)
	}

	if len(response.Move) != moveLength {
		return entity.Move{}, fmt.Errorf("%w: move %v", apperror.ErrMalformedResponse, response.Move)
	}

	return entity.Move{Row: response.Move[0], Col: response.Move[1]}, nil
}
