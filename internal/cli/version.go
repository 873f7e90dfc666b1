package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// tictactoe version
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// the config is not needed to print the version
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tictactoe %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
