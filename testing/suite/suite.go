package suite

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"
)

const maxWaitDuration = 30 * time.Second

// Reply is a scripted answer of the fake move service.
type Reply struct {
	Status int
	Body   string
	// Hold blocks the reply until it is closed or the request is abandoned.
	Hold chan struct{}
}

// MoveReply answers with {"move": [row, col]}.
func MoveReply(row, col int) Reply {
	body, _ := json.Marshal(map[string][2]int{"move": {row, col}})
	return Reply{Status: http.StatusOK, Body: string(body)}
}

// ErrorReply answers with {"error": message}.
func ErrorReply(message string) Reply {
	body, _ := json.Marshal(map[string]string{"error": message})
	return Reply{Status: http.StatusOK, Body: string(body)}
}

// MoveService is a scripted stand-in for the external move-selection service.
type MoveService struct {
	mu       sync.Mutex
	replies  []Reply
	requests [][3][3]int
}

// Enqueue appends replies served in order. With no reply queued the first empty cell is returned.
func (that *MoveService) Enqueue(replies ...Reply) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.replies = append(that.replies, replies...)
}

// Requests returns the boards received so far.
func (that *MoveService) Requests() [][3][3]int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([][3][3]int(nil), that.requests...)
}

func (that *MoveService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/make_move" {
		http.NotFound(w, r)
		return
	}

	var request struct {
		Board [3][3]int `json:"board"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reply := that.next(request.Board)

	if reply.Hold != nil {
		select {
		case <-reply.Hold:
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = w.Write([]byte(reply.Body))
}

func (that *MoveService) next(board [3][3]int) Reply {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.requests = append(that.requests, board)

	if len(that.replies) > 0 {
		reply := that.replies[0]
		that.replies = that.replies[1:]
		return reply
	}

	for row := range board {
		for col := range board[row] {
			if board[row][col] == 0 {
				return MoveReply(row, col)
			}
		}
	}

	return ErrorReply("No valid moves")
}

type Suite struct {
	*testing.T
	Logger *slog.Logger

	MoveService *MoveService
	URL         string
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	moveService := &MoveService{}

	server := httptest.NewServer(moveService)
	t.Cleanup(func() {
		server.CloseClientConnections()
		server.Close()
	})

	return ctx, &Suite{
		T:           t,
		Logger:      logger,
		MoveService: moveService,
		URL:         server.URL,
	}
}
