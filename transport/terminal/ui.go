package terminal

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/rocketscienceinc/tictactoe-agent/internal/presenter"
	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
)

type game interface {
	MakeTurn(ctx context.Context, cell int) error
	Reset(ctx context.Context) error
	Subscribe() (<-chan tictactoe.State, func())
}

type action int

const (
	actionNone action = iota
	actionUp
	actionDown
	actionLeft
	actionRight
	actionPlace
	actionReset
	actionQuit
)

type keybinding struct {
	k tcell.Key
	r rune
	a action
}

var keybindings = []keybinding{
	{k: tcell.KeyUp, a: actionUp},
	{k: tcell.KeyDown, a: actionDown},
	{k: tcell.KeyLeft, a: actionLeft},
	{k: tcell.KeyRight, a: actionRight},
	{r: 'k', a: actionUp},
	{r: 'j', a: actionDown},
	{r: 'h', a: actionLeft},
	{r: 'l', a: actionRight},
	{k: tcell.KeyEnter, a: actionPlace},
	{r: ' ', a: actionPlace},
	{r: 'r', a: actionReset},
	{r: 'R', a: actionReset},
	{r: 'q', a: actionQuit},
	{r: 'Q', a: actionQuit},
	{k: tcell.KeyEscape, a: actionQuit},
	{k: tcell.KeyCtrlC, a: actionQuit},
}

// UI is a full-screen board driven by the keyboard.
type UI struct {
	logger *slog.Logger
	screen tcell.Screen
	game   game

	view   presenter.View
	cursor int
}

// New wraps an initialised screen. Run finalises it.
func New(logger *slog.Logger, screen tcell.Screen, game game) *UI {
	return &UI{
		logger: logger.With("component", "terminal"),
		screen: screen,
		game:   game,

		cursor: entity.BoardSize / 2,
	}
}

// Run draws every game state and handles keys until the player quits, the game stops or ctx is done.
func (that *UI) Run(ctx context.Context) error {
	defer that.screen.Fini()

	states, unsubscribe := that.game.Subscribe()
	defer unsubscribe()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)

	go that.screen.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return nil
		case state, ok := <-states:
			if !ok {
				return nil
			}
			that.view = presenter.NewView(state)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				that.screen.Sync()
			case *tcell.EventKey:
				if that.handleKey(ctx, ev) == actionQuit {
					return nil
				}
			}
		}

		that.draw()
	}
}

func (that *UI) handleKey(ctx context.Context, ev *tcell.EventKey) action {
	log := that.logger.With("method", "handleKey")

	if ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '9' {
		that.cursor = int(ev.Rune() - '1')
		that.place(ctx, log)
		return actionPlace
	}

	act := lookup(ev)

	switch act {
	case actionUp:
		that.moveCursor(-entity.RowSize)
	case actionDown:
		that.moveCursor(entity.RowSize)
	case actionLeft:
		if that.cursor%entity.RowSize > 0 {
			that.cursor--
		}
	case actionRight:
		if that.cursor%entity.RowSize < entity.RowSize-1 {
			that.cursor++
		}
	case actionPlace:
		that.place(ctx, log)
	case actionReset:
		if err := that.game.Reset(ctx); err != nil {
			log.Error("failed to reset game", "error", err)
		}
	}

	return act
}

func (that *UI) place(ctx context.Context, log *slog.Logger) {
	if err := that.game.MakeTurn(ctx, that.cursor); err != nil {
		log.Debug("turn rejected", "cell", that.cursor, "error", err)
	}
}

func (that *UI) moveCursor(delta int) {
	if next := that.cursor + delta; next >= 0 && next < entity.BoardSize {
		that.cursor = next
	}
}

func lookup(ev *tcell.EventKey) action {
	for _, bind := range keybindings {
		if bind.k != 0 && bind.k == ev.Key() {
			return bind.a
		}
		if bind.r != 0 && ev.Key() == tcell.KeyRune && bind.r == ev.Rune() {
			return bind.a
		}
	}

	return actionNone
}
