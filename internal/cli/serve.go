package cli

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-agent/internal"
)

// tictactoe serve
func Serve(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the game as a web page",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`
			serve starts an HTTP server on the configured http-port. Open
			http://localhost:<port>/ in a browser to play. Every browser tab
			plays its own game, which is lost when the tab is reloaded.

			GET /ping answers "pong" and can be used as a health check.`),
		RunE: func(_ *cobra.Command, _ []string) error {
			logger := initLogger(opts.conf.LogLevel, os.Stdout)

			return app.RunServer(logger, opts.conf)
		},
	}
}
