package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-agent/internal"
)

// tictactoe play
func Play(opts *options) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`
			play draws the board full screen. Press 1-9 to mark a cell
			(1 is the top left corner), or move with the arrow keys and
			press enter. r starts a new game and q quits.

			With --plain the board is printed line by line instead, and
			commands are read one per line.

			Logs go to terminal.log-file from the config, or nowhere.`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			logFile, err := openLogFile(opts.conf.Terminal.LogFile)
			if err != nil {
				return err
			}
			defer logFile.Close()

			logger := initLogger(opts.conf.LogLevel, logFile)

			return app.RunTerminal(logger, opts.conf, plain, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "line mode instead of full screen")

	return cmd
}
