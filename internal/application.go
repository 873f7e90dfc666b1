package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-agent/internal/config"
	"github.com/rocketscienceinc/tictactoe-agent/internal/service"
	"github.com/rocketscienceinc/tictactoe-agent/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-agent/transport/console"
	"github.com/rocketscienceinc/tictactoe-agent/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-agent/transport/websocket"
)

// RunServer - runs the web UI server until SIGINT or SIGTERM.
func RunServer(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signalContext(log)
	defer cancel()

	moveService := service.NewMoveService(conf.MoveService.URL, conf.MoveService.Timeout)

	// run HTTP + WebSocket server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "move_service", conf.MoveService.URL)
		wsServer := websocket.New(logger, moveService)
		if httpErr := wsServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// RunTerminal - plays one game in the terminal, full screen or in line mode when plain is set.
func RunTerminal(logger *slog.Logger, conf *config.Config, plain bool, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signalContext(log)
	defer cancel()

	moveService := service.NewMoveService(conf.MoveService.URL, conf.MoveService.Timeout)
	game := usecase.NewGameManager(logger, moveService)

	gameErrCh := make(chan error, 1)
	go func() {
		gameErrCh <- game.Run(ctx)
	}()

	var err error
	if plain {
		err = console.New(logger, in, out, game).Run(ctx)
	} else {
		err = runScreen(ctx, logger, game)
	}

	cancel()

	if gameErr := <-gameErrCh; gameErr != nil {
		log.Error("game stopped", "error", gameErr)
	}

	return err
}

func runScreen(ctx context.Context, logger *slog.Logger, game *usecase.GameManager) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}

	if err = terminal.New(logger, screen, game).Run(ctx); err != nil {
		return fmt.Errorf("terminal ui failed: %w", err)
	}

	return nil
}

func signalContext(log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigs)

		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
