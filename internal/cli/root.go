package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-agent/internal/config"
)

// Set via ldflags at build time.
var Version = "dev"

type options struct {
	configPath string
	logLevel   string

	conf *config.Config
}

// Root returns the tictactoe command with all subcommands.
func Root() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against a remote agent",
		Long: heredoc.Doc(`
			tictactoe plays tic-tac-toe between you (O) and an agent (X).

			You always move first. After each of your moves the board is sent
			to the move-selection service, which answers with the agent's move.
			The game can be played in a browser (serve) or in the terminal (play).`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(config.ResolvePath(opts.configPath))
			if err != nil {
				return err
			}

			if opts.logLevel != "" {
				conf.LogLevel = opts.logLevel
			}

			opts.conf = conf
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"config file (default ./config.yml, then $XDG_CONFIG_HOME/tictactoe/config.yml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.Version = Version
	root.SetVersionTemplate("tictactoe {{.Version}}\n")

	root.AddCommand(Serve(opts))
	root.AddCommand(Play(opts))
	root.AddCommand(VersionCmd())

	return root
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return Root().Execute()
}

// initialize logger.
func initLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// openLogFile returns the writer for logs of the terminal UI, which must not share the screen.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
