package websocket

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-agent/internal/service"
	"github.com/rocketscienceinc/tictactoe-agent/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-agent/transport/rest"
)

const shutdownTimeout = 5 * time.Second

//go:embed static/index.html
var indexPage []byte

type handler func(ctx context.Context, game gameManager, message *Message) error

type Server struct {
	logger      *slog.Logger
	moveService service.MoveService
	upgrader    websocket.Upgrader

	handlers map[string]handler
}

func New(logger *slog.Logger, moveService service.MoveService) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		moveService: moveService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},

		handlers: make(map[string]handler),
	}

	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameReset] = server.handleGameReset

	return server
}

// Handler returns the routes of the web UI: the page, its websocket and /ping.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", that.handleIndex)
	mux.HandleFunc("/ws", that.upgradeToWebSocket)
	rest.RegisterRoutes(mux)

	return mux
}

// Start - starts the web UI server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	log := that.logger.With("method", "Start")

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexPage)
}

// upgradeToWebSocket - upgrades the connection and plays one game on it until it closes.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	socket, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		that.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := newConnection(socket)
	defer conn.Close()

	log := that.logger.With("method", "upgradeToWebSocket", "conn_id", conn.id)
	log.Info("WebSocket connection established")

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	// hijacked connections are not closed by the http server on shutdown
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	game := usecase.NewGameManager(that.logger.With("conn_id", conn.id), that.moveService)

	states, unsubscribe := game.Subscribe()
	defer unsubscribe()

	gameDone := make(chan struct{})
	go func() {
		defer close(gameDone)
		if runErr := game.Run(ctx); runErr != nil {
			log.Error("game stopped", "error", runErr)
		}
	}()

	pushDone := make(chan struct{})
	go func() {
		defer close(pushDone)
		that.pushStates(conn, states)
	}()

	if err = that.handleMessages(ctx, conn, game); err != nil {
		log.Info("WebSocket connection closed", "error", err)
	}

	cancel()
	<-gameDone
	<-pushDone
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *connection, game gameManager) error {
	log := that.logger.With("method", "handleMessages", "conn_id", conn.id)

	for {
		message, err := conn.ReadMessage()
		if err != nil {
			if errors.Is(err, errMalformedMessage) {
				log.Warn("failed to decode message", "error", err)
				if err = conn.SendError(err.Error()); err != nil {
					return err
				}
				continue
			}

			return err
		}

		handle, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = conn.SendError(fmt.Sprintf("unknown action %q", message.Action)); err != nil {
				return err
			}
			continue
		}

		if err = handle(ctx, game, message); err != nil {
			log.Info("message rejected", "action", message.Action, "error", err)
		}
	}
}
