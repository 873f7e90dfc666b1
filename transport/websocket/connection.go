package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

const (
	actionGameTurn  = "game:turn"
	actionGameReset = "game:reset"
	actionGameState = "game:state"
	actionError     = "error"
)

var errMalformedMessage = errors.New("malformed message")

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type TurnPayload struct {
	Cell *int `json:"cell"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// connection serialises writes to one websocket.
type connection struct {
	id     string
	socket *websocket.Conn

	mu     sync.Mutex
	closed bool
}

func newConnection(socket *websocket.Conn) *connection {
	return &connection{
		id:     uuid.New().String(),
		socket: socket,
	}
}

// ReadMessage reads the next message. Undecodable text is reported as errMalformedMessage.
func (that *connection) ReadMessage() (*Message, error) {
	_, data, err := that.socket.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("failed to read message: %w", err)
	}

	var message Message
	if err = json.Unmarshal(data, &message); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedMessage, err)
	}

	return &message, nil
}

func (that *connection) Send(action string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return websocket.ErrCloseSent
	}

	if err = that.socket.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.socket.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) SendError(message string) error {
	return that.Send(actionError, ErrorPayload{Error: message})
}

func (that *connection) Close() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return nil
	}
	that.closed = true

	return that.socket.Close()
}
