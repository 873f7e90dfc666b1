package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
)

type moveServiceDep interface {
	SelectMove(ctx context.Context, board entity.Board) (entity.Move, error)
}

type command struct {
	event tictactoe.Event
	// nil for agent replies
	reply chan error
}

// GameManager runs one game: a single loop goroutine applies every event to the state
// and performs the resulting effects.
type GameManager struct {
	logger      *slog.Logger
	moveService moveServiceDep

	commands chan command
	done     chan struct{}

	// owned by the loop goroutine
	inFlight map[uint64]context.CancelFunc

	mu          sync.RWMutex
	state       tictactoe.State
	subscribers map[int]chan tictactoe.State
	nextSubID   int
	stopped     bool
}

func NewGameManager(logger *slog.Logger, moveService moveServiceDep) *GameManager {
	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		moveService: moveService,

		commands: make(chan command),
		done:     make(chan struct{}),

		inFlight: make(map[uint64]context.CancelFunc),

		state:       tictactoe.NewGame(),
		subscribers: make(map[int]chan tictactoe.State),
	}
}

// Run processes events until ctx is done. It must be called exactly once.
func (that *GameManager) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	defer that.stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("game loop stopped")
			return nil
		case cmd := <-that.commands:
			err := that.apply(ctx, cmd.event)
			if cmd.reply != nil {
				cmd.reply <- err
			}
		}
	}
}

// MakeTurn puts the player's mark into cell. A rejected move leaves the game unchanged.
func (that *GameManager) MakeTurn(ctx context.Context, cell int) error {
	if err := that.dispatch(ctx, tictactoe.PlayerMoved{Cell: cell}); err != nil {
		return fmt.Errorf("failed make turn: %w", err)
	}

	return nil
}

// Reset starts a new game from any state, abandoning an outstanding move request.
func (that *GameManager) Reset(ctx context.Context) error {
	if err := that.dispatch(ctx, tictactoe.ResetRequested{}); err != nil {
		return fmt.Errorf("failed reset game: %w", err)
	}

	return nil
}

func (that *GameManager) State() tictactoe.State {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.state
}

// Subscribe returns a channel that receives the current state and then every new one.
// A slow reader only sees the latest state. The channel is closed by the returned
// function or when the game stops.
func (that *GameManager) Subscribe() (<-chan tictactoe.State, func()) {
	that.mu.Lock()
	defer that.mu.Unlock()

	ch := make(chan tictactoe.State, 1)
	ch <- that.state

	if that.stopped {
		close(ch)
		return ch, func() {}
	}

	id := that.nextSubID
	that.nextSubID++
	that.subscribers[id] = ch

	return ch, func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		if sub, ok := that.subscribers[id]; ok {
			delete(that.subscribers, id)
			close(sub)
		}
	}
}

func (that *GameManager) dispatch(ctx context.Context, event tictactoe.Event) error {
	reply := make(chan error, 1)

	select {
	case that.commands <- command{event: event, reply: reply}:
	case <-that.done:
		return apperror.ErrGameStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (that *GameManager) apply(ctx context.Context, event tictactoe.Event) error {
	log := that.logger.With("method", "apply")

	if reply, ok := event.(tictactoe.AgentReplied); ok {
		that.release(reply.Generation)
	}

	next, effects, err := tictactoe.Transition(that.State(), event)
	if err != nil {
		if errors.Is(err, apperror.ErrStaleReply) {
			log.Warn("agent reply discarded", "error", err)
		}

		return err
	}

	that.publish(next)

	if thinking, ok := next.(tictactoe.AgentThinking); ok && !thinking.Pending() {
		log.Error("agent move failed", "generation", thinking.Generation(), "error", thinking.Failure())
	}

	for _, effect := range effects {
		switch eff := effect.(type) {
		case tictactoe.RequestMove:
			that.requestMove(ctx, eff)
		case tictactoe.CancelRequest:
			log.Info("move request canceled", "generation", eff.Generation)
			that.release(eff.Generation)
		}
	}

	return nil
}

func (that *GameManager) requestMove(ctx context.Context, effect tictactoe.RequestMove) {
	reqCtx, cancel := context.WithCancel(ctx)
	that.inFlight[effect.Generation] = cancel

	go func() {
		move, err := that.moveService.SelectMove(reqCtx, effect.Board)
		if err != nil {
			err = fmt.Errorf("failed to select move: %w", err)
		}

		reply := tictactoe.AgentReplied{Generation: effect.Generation, Move: move, Err: err}

		select {
		case that.commands <- command{event: reply}:
		case <-that.done:
		}
	}()
}

func (that *GameManager) release(generation uint64) {
	if cancel, ok := that.inFlight[generation]; ok {
		cancel()
		delete(that.inFlight, generation)
	}
}

func (that *GameManager) publish(state tictactoe.State) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.state = state

	for _, ch := range that.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}

func (that *GameManager) stop() {
	for generation := range that.inFlight {
		that.release(generation)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.stopped = true
	for id, ch := range that.subscribers {
		delete(that.subscribers, id)
		close(ch)
	}

	close(that.done)
}
