package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/rocketscienceinc/tictactoe-agent/internal/presenter"
	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
)

const spinnerCharSet = 14

type game interface {
	MakeTurn(ctx context.Context, cell int) error
	Reset(ctx context.Context) error
	Subscribe() (<-chan tictactoe.State, func())
}

var (
	playerColor  = color.New(color.FgGreen, color.Bold)
	agentColor   = color.New(color.FgRed, color.Bold)
	hintColor    = color.New(color.Faint)
	bannerColor  = color.New(color.Bold)
	failureColor = color.New(color.FgRed)
)

// Console plays in line mode: it prints the board after every change and reads commands from in.
type Console struct {
	logger  *slog.Logger
	in      io.Reader
	out     io.Writer
	game    game
	spinner *spinner.Spinner
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, game game) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		in:     in,
		out:    out,
		game:   game,
		spinner: spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond, spinner.WithWriter(out)),
	}
}

// Run returns when the input ends, the player quits, the game stops or ctx is done.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	defer that.spinner.Stop()

	states, unsubscribe := that.game.Subscribe()
	defer unsubscribe()

	// the board is shown before any input is taken
	if state, ok := <-states; ok {
		that.render(presenter.NewView(state))
	}

	lines := make(chan string)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			log.Error("failed to read input", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case state, ok := <-states:
			if !ok {
				return nil
			}
			that.render(presenter.NewView(state))
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := that.handleLine(ctx, line); quit {
				return nil
			}
		}
	}
}

func (that *Console) handleLine(ctx context.Context, line string) bool {
	log := that.logger.With("method", "handleLine")

	switch strings.ToLower(line) {
	case "":
		return false
	case "q", "quit":
		return true
	case "r", "reset":
		if err := that.game.Reset(ctx); err != nil {
			log.Error("failed to reset game", "error", err)
		}
		return false
	}

	number, err := strconv.Atoi(line)
	if err != nil || number < 1 || number > entity.BoardSize {
		fmt.Fprintf(that.out, "Unknown command %q: enter 1-9, r or q\n", line)
		return false
	}

	if err = that.game.MakeTurn(ctx, number-1); err != nil {
		log.Debug("turn rejected", "cell", number-1, "error", err)
		fmt.Fprintf(that.out, "Cell %d is not available\n", number)
	}

	return false
}

func (that *Console) render(view presenter.View) {
	if view.Thinking {
		that.printBoard(view)
		fmt.Fprintln(that.out, view.Status)
		// the spinner only runs when out is a terminal
		that.spinner.Start()
		return
	}

	that.spinner.Stop()
	that.printBoard(view)

	switch {
	case view.Failure != "":
		failureColor.Fprintln(that.out, view.Failure)
	case view.GameOver:
		bannerColor.Fprintln(that.out, view.Banner)
	default:
		fmt.Fprintln(that.out, view.Status)
	}

	if view.GameOver || view.Failure != "" {
		hintColor.Fprintf(that.out, "r: %s  q: quit\n", view.ResetLabel)
	}
}

func (that *Console) printBoard(view presenter.View) {
	fmt.Fprintln(that.out)

	for row := range entity.RowSize {
		cells := make([]string, entity.RowSize)
		for col := range entity.RowSize {
			cell := row*entity.RowSize + col
			cells[col] = cellText(view.Cells[cell], cell)
		}

		fmt.Fprintln(that.out, " "+strings.Join(cells, " | "))
		if row < entity.RowSize-1 {
			fmt.Fprintln(that.out, "---+---+---")
		}
	}

	fmt.Fprintln(that.out)
}

func cellText(mark string, cell int) string {
	switch mark {
	case string(entity.PlayerMark):
		return playerColor.Sprint(mark)
	case string(entity.AgentMark):
		return agentColor.Sprint(mark)
	default:
		return hintColor.Sprint(strconv.Itoa(cell + 1))
	}
}
